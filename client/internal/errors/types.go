// Package errors provides the error taxonomy shared by the client SDK and the
// state store. Every failure is classified twice: by Kind (what went wrong,
// surfaced to operators) and by Category (whether a retry can help).
package errors

import (
	stderrors "errors"
	"fmt"
)

// Kind names the failure family an operation ended in.
type Kind int

const (
	// KindValidation is a local, pre-network rejection (blank required field).
	KindValidation Kind = iota
	// KindAuth is a missing credential or a 401/403 from the backend.
	KindAuth
	// KindNetwork is a transport failure or any other non-2xx response.
	KindNetwork
	// KindShape is a response body that does not match the expected envelope.
	KindShape
	// KindTimeout is a request that outlived its deadline.
	KindTimeout
)

// String returns a human-readable representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindAuth:
		return "auth"
	case KindNetwork:
		return "network"
	case KindShape:
		return "shape"
	case KindTimeout:
		return "timeout"
	default:
		return fmt.Sprintf("Unknown(%d)", int(k))
	}
}

// ErrorCategory determines how errors should be handled by retry logic.
type ErrorCategory int

const (
	// Recoverable errors may be retried with exponential backoff.
	// Examples: 500 Internal Server Error, network timeouts, connection failures.
	Recoverable ErrorCategory = iota

	// Irrecoverable errors should fail immediately without retry.
	// Examples: 401 Unauthorized, 400 Bad Request, local validation.
	Irrecoverable
)

// String returns a human-readable representation of the error category.
func (c ErrorCategory) String() string {
	switch c {
	case Recoverable:
		return "Recoverable"
	case Irrecoverable:
		return "Irrecoverable"
	default:
		return fmt.Sprintf("Unknown(%d)", int(c))
	}
}

// Error is the single error type operations resolve to.
type Error struct {
	Kind       Kind
	Category   ErrorCategory
	Op         string // e.g. "plans.create"
	StatusCode int    // HTTP status code (0 for non-HTTP errors)
	Message    string // server-provided or locally composed message
	Body       string // raw response body for debugging
	Underlying error
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Message
	if msg == "" && e.Underlying != nil {
		msg = e.Underlying.Error()
	}
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s: [%s] HTTP %d: %s", e.Op, e.Kind, e.StatusCode, msg)
	}
	return fmt.Sprintf("%s: [%s] %s", e.Op, e.Kind, msg)
}

// Unwrap returns the underlying error for error chain compatibility.
func (e *Error) Unwrap() error {
	return e.Underlying
}

// Display returns the message an operator should see. The server message wins;
// fallback is used when the backend sent no structured body.
func (e *Error) Display(fallback string) string {
	if e == nil {
		return ""
	}
	if e.Message != "" {
		return e.Message
	}
	return fallback
}

// As extracts an *Error from err's chain.
func As(err error) (*Error, bool) {
	var e *Error
	if stderrors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, k Kind) bool {
	e, ok := As(err)
	return ok && e.Kind == k
}

// IsRecoverable returns true if a retry may succeed.
func IsRecoverable(err error) bool {
	e, ok := As(err)
	return ok && e.Category == Recoverable
}

// IsIrrecoverable returns true if the error should not be retried.
func IsIrrecoverable(err error) bool {
	e, ok := As(err)
	return ok && e.Category == Irrecoverable
}
