// Package logger provides a configured zerolog logger.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	pkgerrors "github.com/pkg/errors"
	"github.com/rs/zerolog"
	zpkgerrors "github.com/rs/zerolog/pkgerrors"
)

// Option adjusts a logger built by New.
type Option func(*options)

type options struct {
	out     io.Writer
	console bool
}

// WithOutput writes to w instead of stdout.
func WithOutput(w io.Writer) Option {
	return func(o *options) { o.out = w }
}

// WithConsole renders human-readable lines. Used by the CLI, which keeps
// stdout for command output and logs to stderr.
func WithConsole() Option {
	return func(o *options) {
		o.console = true
		if o.out == nil {
			o.out = os.Stderr
		}
	}
}

// New returns a logger tagged with serviceName at the given level. An
// unknown or empty level means info. Call sites should use .Stack() on
// error events to include stacks.
func New(serviceName, level string, opts ...Option) zerolog.Logger {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.out == nil {
		o.out = os.Stdout
	}

	// A stack is attached to std errors when .Stack() is used.
	zerolog.ErrorStackMarshaler = func(err error) interface{} {
		type stackTracer interface{ StackTrace() pkgerrors.StackTrace }
		if _, ok := err.(stackTracer); !ok {
			err = pkgerrors.WithStack(err)
		}
		return zpkgerrors.MarshalStack(err)
	}

	out := o.out
	if o.console {
		out = zerolog.ConsoleWriter{Out: o.out, TimeFormat: time.Kitchen}
	}
	return zerolog.New(out).Level(ParseLevel(level)).With().
		Str("service", serviceName).
		Timestamp().
		Logger()
}

// ParseLevel maps a level name to a zerolog level, defaulting to info.
func ParseLevel(level string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}
