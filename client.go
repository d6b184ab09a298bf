// Package tabnews is a client for the TabNews public REST API.
//
// Every operation issues exactly one request and returns a *Result: a 2xx
// response carries the decoded Value, any other status carries the server's
// error payload in Fault with a nil error. A non-nil error means the request
// never completed (network failure, timeout, canceled context), the body could
// not be decoded, or the input was rejected before sending.
//
//	c, err := tabnews.New()
//	if err != nil {
//		return err
//	}
//	res, err := c.ListPosts(ctx, &tabnews.ContentParams{Strategy: tabnews.StrategyNew})
//	if err != nil {
//		return err // transport fault
//	}
//	if !res.OK() {
//		return res.Err() // API fault
//	}
//	for _, post := range res.Value {
//		fmt.Println(post.OwnerUsername, post.Slug)
//	}
package tabnews

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tabnews/tabnews-go/internal/api"
	"github.com/tabnews/tabnews-go/internal/transport"
)

// DefaultBaseURL is the public TabNews API root.
const DefaultBaseURL = "https://www.tabnews.com.br/api/v1"

const defaultTimeout = 30 * time.Second

// --------------------------------------------------------------------
// Client core
// --------------------------------------------------------------------

// Client is safe for concurrent use. The underlying transport is built once
// in New and reused for every call.
type Client struct {
	baseURL string
	headers map[string]string
	timeout time.Duration
	http    *http.Client
	debug   bool
	log     zerolog.Logger

	rest *resty.Client
}

// New constructs a Client against DefaultBaseURL. Options are merged over the
// defaults in the order given.
func New(opts ...Option) (*Client, error) {
	c := &Client{
		baseURL: DefaultBaseURL,
		headers: map[string]string{
			"Accept-Encoding": transport.AcceptEncoding,
			"Content-Type":    "application/json",
		},
		timeout: defaultTimeout,
		http:    &http.Client{},
		log:     zerolog.Nop(),
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	c.rest = c.newRestClient()
	return c, nil
}

// newRestClient assembles the transport chain:
// resty -> debugTransport (optional) -> Decompressor -> base transport.
func (c *Client) newRestClient() *resty.Client {
	hc := *c.http
	var rt http.RoundTripper = transport.NewDecompressor(hc.Transport)
	if c.debug {
		rt = &debugTransport{base: rt, log: c.log}
	}
	hc.Transport = rt

	rc := resty.NewWithClient(&hc).
		SetBaseURL(c.baseURL).
		SetHeaders(c.headers).
		SetTimeout(c.timeout).
		SetLogger(restyLogger{log: c.log}).
		OnBeforeRequest(setRequestID)
	return rc
}

// setRequestID tags each outgoing request unless the caller already set one,
// per request or as a default header.
func setRequestID(rc *resty.Client, r *resty.Request) error {
	if r.Header.Get(requestIDHeader) == "" && rc.Header.Get(requestIDHeader) == "" {
		r.SetHeader(requestIDHeader, uuid.NewString())
	}
	return nil
}

// BaseURL returns the API root the client talks to.
func (c *Client) BaseURL() string { return c.baseURL }

// --------------------------------------------------------------------
// Content operations - delegated to internal/api
// --------------------------------------------------------------------

// ListPosts returns the homepage listing. Listed contents carry no body.
func (c *Client) ListPosts(ctx context.Context, params *ContentParams) (*Result[[]ContentWithoutBody], error) {
	return observe("list_posts", func() (*Result[[]ContentWithoutBody], error) {
		return api.ListPosts(ctx, c.rest, params)
	})
}

// ListPostsByUser returns the contents of username, or an empty slice if
// they have none.
func (c *Client) ListPostsByUser(ctx context.Context, username string, params *ContentParams) (*Result[[]Content], error) {
	return observe("list_posts_by_user", func() (*Result[[]Content], error) {
		return api.ListPostsByUser(ctx, c.rest, username, params)
	})
}

// GetPostDetails returns a single content including its body.
func (c *Client) GetPostDetails(ctx context.Context, user, slug string) (*Result[Content], error) {
	return observe("get_post_details", func() (*Result[Content], error) {
		return api.GetPostDetails(ctx, c.rest, user, slug)
	})
}

// GetPostComments returns the replies below a content.
func (c *Client) GetPostComments(ctx context.Context, user, slug string) (*Result[[]Content], error) {
	return observe("get_post_comments", func() (*Result[[]Content], error) {
		return api.GetPostComments(ctx, c.rest, user, slug)
	})
}

// GetPostThumbnail returns the thumbnail image bytes, undecoded.
func (c *Client) GetPostThumbnail(ctx context.Context, user, slug string) (*Result[[]byte], error) {
	return observe("get_post_thumbnail", func() (*Result[[]byte], error) {
		return api.GetPostThumbnail(ctx, c.rest, user, slug)
	})
}

// --------------------------------------------------------------------
// Analytics operations
// --------------------------------------------------------------------

// UserAnalytics returns registrations per day.
func (c *Client) UserAnalytics(ctx context.Context) (*Result[[]StatusPoint], error) {
	return observe("user_analytics", func() (*Result[[]StatusPoint], error) {
		return api.UserAnalytics(ctx, c.rest)
	})
}

// PostAnalytics returns published posts per day.
func (c *Client) PostAnalytics(ctx context.Context) (*Result[[]StatusPoint], error) {
	return observe("post_analytics", func() (*Result[[]StatusPoint], error) {
		return api.PostAnalytics(ctx, c.rest)
	})
}

// CommentsAnalytics returns published replies per day.
func (c *Client) CommentsAnalytics(ctx context.Context) (*Result[[]StatusPoint], error) {
	return observe("comments_analytics", func() (*Result[[]StatusPoint], error) {
		return api.CommentsAnalytics(ctx, c.rest)
	})
}

// --------------------------------------------------------------------
// Account operations
// --------------------------------------------------------------------

// CreateUser registers an account. The response is returned as raw JSON;
// decode it into User if needed.
func (c *Client) CreateUser(ctx context.Context, req CreateUserRequest) (*Result[json.RawMessage], error) {
	return observe("create_user", func() (*Result[json.RawMessage], error) {
		return api.CreateUser(ctx, c.rest, req)
	})
}

// Login opens a session and returns its token.
func (c *Client) Login(ctx context.Context, req LoginRequest) (*Result[UserToken], error) {
	return observe("login", func() (*Result[UserToken], error) {
		return api.Login(ctx, c.rest, req)
	})
}

// Recovery requests a password reset. Exactly one of req.Username or
// req.Email must be set, otherwise ErrInvalidRecovery is returned and nothing
// is sent.
func (c *Client) Recovery(ctx context.Context, req RecoveryRequest) (*Result[json.RawMessage], error) {
	return observe("recovery", func() (*Result[json.RawMessage], error) {
		return api.Recovery(ctx, c.rest, req)
	})
}
