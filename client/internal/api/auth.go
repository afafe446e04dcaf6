package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-resty/resty/v2"

	errs "github.com/Akash8377/futuresoulmate-admin/client/internal/errors"
	"github.com/Akash8377/futuresoulmate-admin/client/internal/types"
)

// Login exchanges admin credentials for a bearer token. The backend returns
// the account as the first element of "data".
func Login(ctx context.Context, rc *resty.Client, creds types.Credentials) (*types.LoginResult, error) {
	const op = "auth.login"
	trimmed := types.TrimCredentials(creds)
	if err := validate(op, trimmed); err != nil {
		return nil, err
	}
	creds.Email = trimmed.Email
	body, err := do(ctx, rc, op, http.MethodPost, "/login", creds)
	if err != nil {
		return nil, err
	}
	var lr types.LoginResponse
	if err := json.Unmarshal(body, &lr); err != nil {
		return nil, errs.Shape(op, "decode login response: "+err.Error(), body)
	}
	if len(lr.Data) == 0 {
		return nil, errs.Shape(op, "User data is missing", body)
	}
	if lr.Token == "" {
		return nil, errs.Shape(op, "token is missing", body)
	}
	return &types.LoginResult{Token: lr.Token, User: lr.Data[0]}, nil
}

// UpdateAdmin changes the admin account's email, username and password.
func UpdateAdmin(ctx context.Context, rc *resty.Client, id types.ID, req types.ProfileUpdate) (*types.User, error) {
	const op = "auth.update_admin"
	if err := requireID(op, id); err != nil {
		return nil, err
	}
	if err := validate(op, req); err != nil {
		return nil, err
	}
	body, err := do(ctx, rc, op, http.MethodPut, idPath("/admin/update", id), req)
	if err != nil {
		return nil, err
	}
	return decodeData[types.User](op, body)
}
