package api

import (
	"context"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/Akash8377/futuresoulmate-admin/client/internal/types"
)

// ListUsers returns every member from GET /users/get-users.
func ListUsers(ctx context.Context, rc *resty.Client) ([]types.User, error) {
	const op = "users.list"
	body, err := do(ctx, rc, op, http.MethodGet, "/users/get-users", nil)
	if err != nil {
		return nil, err
	}
	return decodeKeyed[types.User](op, body, "users")
}

// GetUserDetails retrieves one member's full profile. The body is the user
// itself, not an envelope.
func GetUserDetails(ctx context.Context, rc *resty.Client, id types.ID) (*types.User, error) {
	const op = "users.get"
	if err := requireID(op, id); err != nil {
		return nil, err
	}
	body, err := do(ctx, rc, op, http.MethodGet, idPath("/user-details", id), nil)
	if err != nil {
		return nil, err
	}
	return decodeRaw[types.User](op, body)
}
