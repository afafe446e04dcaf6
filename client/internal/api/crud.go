package api

import (
	"context"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/Akash8377/futuresoulmate-admin/client/internal/types"
)

// endpoint is a REST collection that follows the backend's CRUD layout:
// GET/POST on path, GET/PUT/DELETE on path/{id}, PATCH on path/{id}/status.
type endpoint[T any, P any] struct {
	name string // metrics and error op prefix, e.g. "plans"
	path string
	key  string // envelope key of the list response
}

func (e endpoint[T, P]) list(ctx context.Context, rc *resty.Client) ([]T, error) {
	op := e.name + ".list"
	body, err := do(ctx, rc, op, http.MethodGet, e.path, nil)
	if err != nil {
		return nil, err
	}
	return decodeKeyed[T](op, body, e.key)
}

func (e endpoint[T, P]) get(ctx context.Context, rc *resty.Client, id types.ID) (*T, error) {
	op := e.name + ".get"
	if err := requireID(op, id); err != nil {
		return nil, err
	}
	body, err := do(ctx, rc, op, http.MethodGet, idPath(e.path, id), nil)
	if err != nil {
		return nil, err
	}
	return decodeData[T](op, body)
}

func (e endpoint[T, P]) create(ctx context.Context, rc *resty.Client, payload P) (*T, error) {
	op := e.name + ".create"
	if err := validate(op, payload); err != nil {
		return nil, err
	}
	body, err := do(ctx, rc, op, http.MethodPost, e.path, payload)
	if err != nil {
		return nil, err
	}
	return decodeData[T](op, body)
}

func (e endpoint[T, P]) update(ctx context.Context, rc *resty.Client, id types.ID, payload P) (*T, error) {
	op := e.name + ".update"
	if err := requireID(op, id); err != nil {
		return nil, err
	}
	if err := validate(op, payload); err != nil {
		return nil, err
	}
	body, err := do(ctx, rc, op, http.MethodPut, idPath(e.path, id), payload)
	if err != nil {
		return nil, err
	}
	return decodeData[T](op, body)
}

func (e endpoint[T, P]) setStatus(ctx context.Context, rc *resty.Client, id types.ID, status string) (*T, error) {
	op := e.name + ".status"
	if err := requireID(op, id); err != nil {
		return nil, err
	}
	payload := types.StatusPayload{Status: status}
	if err := validate(op, payload); err != nil {
		return nil, err
	}
	body, err := do(ctx, rc, op, http.MethodPatch, idPath(e.path, id, "status"), payload)
	if err != nil {
		return nil, err
	}
	return decodeData[T](op, body)
}

func (e endpoint[T, P]) delete(ctx context.Context, rc *resty.Client, id types.ID) error {
	op := e.name + ".delete"
	if err := requireID(op, id); err != nil {
		return err
	}
	_, err := do(ctx, rc, op, http.MethodDelete, idPath(e.path, id), nil)
	return err
}
