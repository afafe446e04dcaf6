package types

import "encoding/json"

// ------------------------------
// Response Types
// ------------------------------

// LoginResponse mirrors the POST /login body.
type LoginResponse struct {
	Token   string `json:"token"`
	Data    []User `json:"data"`
	Message string `json:"message,omitempty"`
}

// LoginResult is a successful login: the bearer token and the admin account.
type LoginResult struct {
	Token string
	User  User
}

// DataEnvelope wraps a single entity in {"data": ...}.
type DataEnvelope[T any] struct {
	Data    T      `json:"data"`
	Message string `json:"message,omitempty"`
}

// Envelope is a collection response keyed by resource name, e.g.
// {"users": [...]} or {"data": [...]}. Values stay raw until the caller
// picks the key it expects.
type Envelope map[string]json.RawMessage

// MessageResponse is the body returned by delete and status endpoints.
type MessageResponse struct {
	Message string `json:"message"`
}
