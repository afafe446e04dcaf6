package errors

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net"
	"net/http"
)

// FromStatus classifies a non-2xx response. The server's {"message": ...}
// field, when present, becomes the error message.
//
// - 401/403 are auth failures and never retried
// - 408, 429 and 5xx are recoverable
// - every other 4xx is irrecoverable
func FromStatus(op string, statusCode int, body []byte) *Error {
	kind := KindNetwork
	if statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden {
		kind = KindAuth
	}
	return &Error{
		Kind:       kind,
		Category:   categoryFor(statusCode),
		Op:         op,
		StatusCode: statusCode,
		Message:    serverMessage(body),
		Body:       string(body),
		Underlying: fmt.Errorf("%s failed: HTTP %d", op, statusCode),
	}
}

// categoryFor maps HTTP status codes to error categories.
func categoryFor(statusCode int) ErrorCategory {
	switch {
	case statusCode == http.StatusRequestTimeout, statusCode == http.StatusTooManyRequests:
		return Recoverable
	case statusCode >= 400 && statusCode < 500:
		return Irrecoverable
	default:
		return Recoverable
	}
}

// serverMessage extracts the "message" field of an error body. Bodies that
// are not JSON objects yield "".
func serverMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if len(body) == 0 || json.Unmarshal(body, &payload) != nil {
		return ""
	}
	if payload.Message != "" {
		return payload.Message
	}
	return payload.Error
}

// Network wraps a transport-level failure. Deadline expiry becomes KindTimeout.
func Network(op string, err error) *Error {
	var ne net.Error
	if stderrors.Is(err, context.DeadlineExceeded) || (stderrors.As(err, &ne) && ne.Timeout()) {
		return Timeout(op, err)
	}
	return &Error{
		Kind:       KindNetwork,
		Category:   Recoverable,
		Op:         op,
		Underlying: fmt.Errorf("%s network error: %w", op, err),
	}
}

// Timeout reports a request that exceeded its ceiling.
func Timeout(op string, err error) *Error {
	return &Error{
		Kind:       KindTimeout,
		Category:   Recoverable,
		Op:         op,
		Message:    "request timed out",
		Underlying: err,
	}
}

// Validation reports a local rejection; it never reaches the network.
func Validation(op, message string) *Error {
	return &Error{
		Kind:     KindValidation,
		Category: Irrecoverable,
		Op:       op,
		Message:  message,
	}
}

// Auth reports a missing or rejected credential detected locally.
func Auth(op, message string) *Error {
	return &Error{
		Kind:     KindAuth,
		Category: Irrecoverable,
		Op:       op,
		Message:  message,
	}
}

// Shape reports a body that does not match the expected envelope.
func Shape(op, message string, body []byte) *Error {
	return &Error{
		Kind:     KindShape,
		Category: Irrecoverable,
		Op:       op,
		Message:  message,
		Body:     string(body),
	}
}
