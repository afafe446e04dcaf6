package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/Akash8377/futuresoulmate-admin/client"
	"github.com/Akash8377/futuresoulmate-admin/store/internal/runner"
)

// ErrClosed fails tickets dispatched after Close.
var ErrClosed = errors.New("store: closed")

// normalize turns any failure from an effect into a *client.Error whose
// Message is operator-ready, using fallback when the backend sent none.
func normalize(op string, err error, fallback string) *client.Error {
	var e *client.Error
	var pe *runner.PanicError
	switch {
	case err == nil:
		return nil
	case errors.As(err, &e):
		// copy so the stored value never aliases the caller's error
		cp := *e
		e = &cp
	case errors.As(err, &pe):
		e = client.NewNetworkError(op, err)
		e.Message = "unexpected internal error"
	case errors.Is(err, runner.ErrQueueFull):
		e = client.NewNetworkError(op, err)
		e.Message = "too many requests in flight, try again"
	case errors.Is(err, runner.ErrClosed), errors.Is(err, ErrClosed):
		e = client.NewNetworkError(op, err)
		e.Message = "the session is shutting down"
	case errors.Is(err, context.DeadlineExceeded):
		e = client.NewTimeoutError(op, err)
	default:
		e = client.NewNetworkError(op, err)
	}
	if e.Message == "" {
		e.Message = fallback
	}
	return e
}

func failMessage(verb, noun string) string {
	return fmt.Sprintf("Failed to %s %s", verb, noun)
}
