// Package app wires configuration, persisted session storage, the REST
// client and the store into one handle shared by the CLI commands, the
// console and the MCP server.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/Akash8377/futuresoulmate-admin/client"
	"github.com/Akash8377/futuresoulmate-admin/console"
	"github.com/Akash8377/futuresoulmate-admin/internal/config"
	"github.com/Akash8377/futuresoulmate-admin/localstate"
	"github.com/Akash8377/futuresoulmate-admin/store"
)

// App owns everything a command needs. Close releases it in reverse order.
type App struct {
	Config  *config.Config
	Log     zerolog.Logger
	Storage localstate.Storage
	Client  *client.Client
	Store   *store.Store
	History *console.History

	closers []io.Closer
}

// Option adjusts Open.
type Option func(*openOptions)

type openOptions struct {
	storage localstate.Storage
}

// WithStorage uses s instead of the SQLite session file.
func WithStorage(s localstate.Storage) Option {
	return func(o *openOptions) { o.storage = s }
}

// Open builds the stack described by cfg. The store is hydrated from the
// persisted session before Open returns.
func Open(ctx context.Context, cfg *config.Config, log zerolog.Logger, opts ...Option) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	var o openOptions
	for _, opt := range opts {
		opt(&o)
	}

	a := &App{Config: cfg, Log: log, History: &console.History{}}

	a.Storage = o.storage
	if a.Storage == nil {
		sq, err := localstate.OpenDefault(ctx, cfg.StateHome)
		if err != nil {
			return nil, fmt.Errorf("open session storage: %w", err)
		}
		log.Debug().Str("path", sq.Path()).Msg("session storage opened")
		a.Storage = sq
		a.closers = append(a.closers, sq)
	}

	c, err := client.New(cfg.BaseURL(),
		client.WithHTTPTimeout(cfg.HTTPTimeout),
		client.WithDebugLogging(cfg.Debug),
		client.WithTokenSource(store.TokenFrom(a.Storage)),
	)
	if err != nil {
		_ = a.Close()
		return nil, fmt.Errorf("build client: %w", err)
	}
	a.Client = c
	a.closers = append(a.closers, c)

	st, err := store.New(
		store.Deps{Client: c, Storage: a.Storage, Logger: log, Navigator: a.History},
		store.WithRunner(store.RunnerConfig{
			Workers:        cfg.Workers,
			QueueSize:      cfg.QueueSize,
			MaxAttempts:    cfg.MaxAttempts,
			RequestTimeout: cfg.RequestTimeout,
		}),
		store.WithSuccessTTL(cfg.SuccessTTL),
	)
	if err != nil {
		_ = a.Close()
		return nil, err
	}
	a.Store = st
	a.closers = append(a.closers, st)
	return a, nil
}

// RequireSession fails unless a persisted session was hydrated.
func (a *App) RequireSession() error {
	if !a.Store.State().Session.IsAuthenticated() {
		return ErrNotLoggedIn
	}
	return nil
}

// ErrNotLoggedIn is returned by commands that need a session.
var ErrNotLoggedIn = errors.New("not logged in: run `adminctl login` first")

// Close stops the store, then releases the client and storage.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}
