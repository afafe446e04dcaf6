package runner

import (
	"time"

	"github.com/Akash8377/futuresoulmate-admin/client"
)

// Config tunes the runner. Zero values take the defaults noted per field.
type Config struct {
	Workers        int           // concurrent tasks (8)
	QueueSize      int           // buffered tasks (128)
	EnqueueTimeout time.Duration // wait for queue space (100ms)
	MaxAttempts    int           // attempts per retryable task (3)
	BaseBackoff    time.Duration // first retry delay (100ms)
	MaxInterval    time.Duration // retry delay ceiling (2s)
	RequestTimeout time.Duration // per-attempt deadline (20s)

	// ShouldRetry decides whether a failed attempt of a Retryable task is
	// re-run. Default: any error not classified as irrecoverable.
	ShouldRetry func(error) bool
	// ErrorHandler observes every final failure. Panics inside it are recovered.
	ErrorHandler func(task string, err error)
}

func (c Config) withDefaults() Config {
	if c.Workers <= 0 {
		c.Workers = 8
	}
	if c.QueueSize <= 0 {
		c.QueueSize = 128
	}
	if c.EnqueueTimeout <= 0 {
		c.EnqueueTimeout = 100 * time.Millisecond
	}
	if c.MaxAttempts <= 0 {
		c.MaxAttempts = 3
	}
	if c.BaseBackoff <= 0 {
		c.BaseBackoff = 100 * time.Millisecond
	}
	if c.MaxInterval <= 0 {
		c.MaxInterval = 2 * time.Second
	}
	if c.RequestTimeout <= 0 {
		c.RequestTimeout = 20 * time.Second
	}
	if c.ShouldRetry == nil {
		c.ShouldRetry = defaultShouldRetry
	}
	return c
}

func defaultShouldRetry(err error) bool {
	if e, ok := client.AsError(err); ok {
		return e.Category == client.Recoverable
	}
	return true
}
