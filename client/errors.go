package client

import errs "github.com/Akash8377/futuresoulmate-admin/client/internal/errors"

// Re-export the error taxonomy so callers compare against a single package.
type (
	Error         = errs.Error
	Kind          = errs.Kind
	ErrorCategory = errs.ErrorCategory
)

const (
	KindValidation = errs.KindValidation
	KindAuth       = errs.KindAuth
	KindNetwork    = errs.KindNetwork
	KindShape      = errs.KindShape
	KindTimeout    = errs.KindTimeout

	Recoverable   = errs.Recoverable
	Irrecoverable = errs.Irrecoverable
)

var (
	// AsError extracts a *Error from err's chain.
	AsError = errs.As
	// IsKind reports whether err carries kind k.
	IsKind = errs.IsKind
	// IsRecoverable reports whether a retry may succeed.
	IsRecoverable = errs.IsRecoverable

	NewValidationError = errs.Validation
	NewAuthError       = errs.Auth
	NewNetworkError    = errs.Network
	NewTimeoutError    = errs.Timeout
	NewShapeError      = errs.Shape
)
