// Package localstate persists the admin session (bearer token and account id)
// between runs, the way a browser keeps it in local storage.
package localstate

import (
	"context"
	"errors"
)

// Keys written by the session slice.
const (
	KeyToken = "token"
	KeyID    = "id"
)

// ErrClosed is returned by operations on a closed store.
var ErrClosed = errors.New("localstate: store closed")

// Storage is a small string key-value store.
type Storage interface {
	// Get returns the value for key and whether it was present.
	Get(ctx context.Context, key string) (string, bool, error)
	// Set writes key.
	Set(ctx context.Context, key, value string) error
	// Delete removes keys; missing keys are not an error.
	Delete(ctx context.Context, keys ...string) error
}
