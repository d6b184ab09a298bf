// Package api maps client operations onto TabNews endpoints. Every function
// issues exactly one request through the shared resty client and splits the
// outcome three ways: a decoded value, an API fault (non-2xx), or the
// transport error returned unchanged.
package api

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-resty/resty/v2"

	apierrors "github.com/tabnews/tabnews-go/internal/errors"
	"github.com/tabnews/tabnews-go/internal/types"
)

// execute sends req and shapes the response. decode turns a 2xx body into
// the operation's value.
func execute[T any](ctx context.Context, req *resty.Request, method, path string, decode func([]byte) (T, error)) (*types.Result[T], error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	resp, err := req.SetContext(ctx).Execute(method, path)
	if err != nil {
		return nil, err
	}

	res := &types.Result[T]{
		StatusCode: resp.StatusCode(),
		Header:     resp.Header(),
	}
	if !resp.IsSuccess() {
		res.Fault = apierrors.NewAPIFault(resp.StatusCode(), resp.Header(), resp.Body())
		return res, nil
	}

	v, err := decode(resp.Body())
	if err != nil {
		return nil, err
	}
	res.Value = v
	return res, nil
}

func decodeJSON[T any](body []byte) (T, error) {
	var v T
	if err := json.Unmarshal(body, &v); err != nil {
		return v, fmt.Errorf("%w: %v", types.ErrDecode, err)
	}
	return v, nil
}

// decodeRaw keeps the body as opaque JSON.
func decodeRaw(body []byte) (json.RawMessage, error) {
	if len(body) == 0 {
		return json.RawMessage("null"), nil
	}
	if !json.Valid(body) {
		return nil, fmt.Errorf("%w: body is not valid JSON", types.ErrDecode)
	}
	raw := make(json.RawMessage, len(body))
	copy(raw, body)
	return raw, nil
}

func decodeBytes(body []byte) ([]byte, error) {
	out := make([]byte, len(body))
	copy(out, body)
	return out, nil
}

// jsonBody marshals a request payload and attaches it to req.
func jsonBody(req *resty.Request, payload any) (*resty.Request, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return req.SetHeader("Content-Type", "application/json").SetBody(b), nil
}
