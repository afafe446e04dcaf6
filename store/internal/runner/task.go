package runner

import (
	"context"
	"fmt"
)

// Task is one unit of asynchronous work.
type Task struct {
	// Name labels metrics and logs, e.g. "plans/fetchAll".
	Name string
	// Retryable marks idempotent work that may be re-run on recoverable errors.
	Retryable bool
	// Run performs the work. ctx carries the per-attempt deadline.
	Run func(ctx context.Context) error
	// Done receives the final outcome exactly once for every accepted task.
	Done func(err error)
}

// PanicError is the error a task resolves to when Run panics.
type PanicError struct {
	Task  string
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("runner: task %s panicked: %v", e.Task, e.Value)
}
