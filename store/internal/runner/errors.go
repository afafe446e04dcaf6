package runner

import (
	"errors"
	"fmt"
)

var (
	// ErrQueueFull is returned (wrapped in *QueueFullError) when the queue
	// stays full for EnqueueTimeout.
	ErrQueueFull = errors.New("runner: queue full")
	// ErrClosed is returned by Submit after Stop.
	ErrClosed = errors.New("runner: closed")
)

// QueueFullError reports the queue state at rejection time.
type QueueFullError struct {
	Length   int
	Capacity int
}

func (e *QueueFullError) Error() string {
	return fmt.Sprintf("runner: queue full (%d/%d)", e.Length, e.Capacity)
}

// Is lets errors.Is(err, ErrQueueFull) match.
func (e *QueueFullError) Is(target error) bool { return target == ErrQueueFull }
