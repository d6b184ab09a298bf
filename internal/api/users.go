package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/tabnews/tabnews-go/internal/types"
)

// CreateUser registers a new account. The response shape is not documented
// upstream and is returned as raw JSON.
func CreateUser(ctx context.Context, rc *resty.Client, req types.CreateUserRequest) (*types.Result[json.RawMessage], error) {
	r, err := jsonBody(rc.R(), req)
	if err != nil {
		return nil, err
	}
	return execute(ctx, r, http.MethodPost, "/users", decodeRaw)
}

// Login opens a session for the given credentials.
func Login(ctx context.Context, rc *resty.Client, req types.LoginRequest) (*types.Result[types.UserToken], error) {
	r, err := jsonBody(rc.R(), req)
	if err != nil {
		return nil, err
	}
	return execute(ctx, r, http.MethodPost, "/sessions", decodeJSON[types.UserToken])
}

// Recovery starts password recovery for exactly one of username or email.
func Recovery(ctx context.Context, rc *resty.Client, req types.RecoveryRequest) (*types.Result[json.RawMessage], error) {
	if err := types.ValidateRecovery(req); err != nil {
		return nil, err
	}
	r, err := jsonBody(rc.R(), req)
	if err != nil {
		return nil, err
	}
	return execute(ctx, r, http.MethodPost, "/recovery", decodeRaw)
}
