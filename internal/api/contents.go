package api

import (
	"context"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/tabnews/tabnews-go/internal/types"
)

// ListPosts retrieves the homepage listing.
func ListPosts(ctx context.Context, rc *resty.Client, params *types.ContentParams) (*types.Result[[]types.ContentWithoutBody], error) {
	req := rc.R().SetQueryParamsFromValues(params.Values())
	res, err := execute(ctx, req, http.MethodGet, "/contents/", decodeJSON[[]types.ContentWithoutBody])
	if res != nil && res.OK() && res.Value == nil {
		res.Value = []types.ContentWithoutBody{}
	}
	return res, err
}

// ListPostsByUser retrieves the contents published by username.
func ListPostsByUser(ctx context.Context, rc *resty.Client, username string, params *types.ContentParams) (*types.Result[[]types.Content], error) {
	if err := types.ValidatePathSegment(username, "username"); err != nil {
		return nil, err
	}
	req := rc.R().
		SetPathParam("username", username).
		SetQueryParamsFromValues(params.Values())
	res, err := execute(ctx, req, http.MethodGet, "/contents/{username}", decodeJSON[[]types.Content])
	if res != nil && res.OK() && res.Value == nil {
		res.Value = []types.Content{}
	}
	return res, err
}

// GetPostDetails retrieves a single content including its body.
func GetPostDetails(ctx context.Context, rc *resty.Client, user, slug string) (*types.Result[types.Content], error) {
	req, err := contentRequest(rc, user, slug)
	if err != nil {
		return nil, err
	}
	return execute(ctx, req, http.MethodGet, "/contents/{user}/{slug}", decodeJSON[types.Content])
}

// GetPostComments retrieves the reply tree below a content.
func GetPostComments(ctx context.Context, rc *resty.Client, user, slug string) (*types.Result[[]types.Content], error) {
	req, err := contentRequest(rc, user, slug)
	if err != nil {
		return nil, err
	}
	res, err := execute(ctx, req, http.MethodGet, "/contents/{user}/{slug}/children", decodeJSON[[]types.Content])
	if res != nil && res.OK() && res.Value == nil {
		res.Value = []types.Content{}
	}
	return res, err
}

// GetPostThumbnail retrieves the generated thumbnail image as raw bytes.
func GetPostThumbnail(ctx context.Context, rc *resty.Client, user, slug string) (*types.Result[[]byte], error) {
	req, err := contentRequest(rc, user, slug)
	if err != nil {
		return nil, err
	}
	return execute(ctx, req, http.MethodGet, "/contents/{user}/{slug}/thumbnail", decodeBytes)
}

func contentRequest(rc *resty.Client, user, slug string) (*resty.Request, error) {
	if err := types.ValidatePathSegment(user, "user"); err != nil {
		return nil, err
	}
	if err := types.ValidatePathSegment(slug, "slug"); err != nil {
		return nil, err
	}
	return rc.R().SetPathParams(map[string]string{"user": user, "slug": slug}), nil
}
