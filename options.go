package tabnews

// This file defines functional options that configure the Client during
// construction.

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Option configures a Client during construction in New.
type Option func(*Client) error

// WithBaseURL points the client at another API root, e.g. a staging
// deployment or a local test server.
func WithBaseURL(raw string) Option {
	return func(c *Client) error {
		u, err := url.Parse(strings.TrimSpace(raw))
		if err != nil {
			return fmt.Errorf("%w: base url: %v", ErrInvalidOption, err)
		}
		if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("%w: base url must be absolute http(s), got %q", ErrInvalidOption, raw)
		}
		c.baseURL = strings.TrimSuffix(u.String(), "/")
		return nil
	}
}

// WithHeader sets a default header, replacing the built-in value if any.
func WithHeader(key, value string) Option {
	return func(c *Client) error {
		if strings.TrimSpace(key) == "" {
			return fmt.Errorf("%w: empty header name", ErrInvalidOption)
		}
		c.headers[http.CanonicalHeaderKey(key)] = value
		return nil
	}
}

// WithHeaders merges several default headers.
func WithHeaders(headers map[string]string) Option {
	return func(c *Client) error {
		for k, v := range headers {
			if err := WithHeader(k, v)(c); err != nil {
				return err
			}
		}
		return nil
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return WithHeader("User-Agent", ua)
}

// WithHTTPTimeout bounds the total time of a single request, including
// reading the response body. Prefer context deadlines for per-call limits.
// The value must be greater than zero.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("%w: http timeout must be > 0", ErrInvalidOption)
		}
		c.timeout = d
		return nil
	}
}

// WithHTTPClient injects a custom *http.Client, e.g. for TLS settings or a
// proxy. The client is copied; its Transport becomes the innermost layer of
// the chain and its Timeout is replaced by the client timeout.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		if hc == nil {
			return fmt.Errorf("%w: nil http client", ErrInvalidOption)
		}
		c.http = hc
		return nil
	}
}

// WithLogger sets the logger used for debug output and transport warnings.
// The default discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) error {
		c.log = l
		return nil
	}
}

// WithDebugLogging dumps every request and response at debug level when
// enabled. Dumps include headers and bodies, credentials included; do not
// enable it in production.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		c.debug = enabled
		return nil
	}
}
