// Package mcp serves the admin back office as Model Context Protocol tools.
package mcp

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"

	"github.com/Akash8377/futuresoulmate-admin/console/pages"
	"github.com/Akash8377/futuresoulmate-admin/mcp/internal/handlers"
)

// Options selects the transport.
type Options struct {
	Name    string
	Version string
	// HTTPAddr serves Streamable HTTP at /mcp; empty means stdio.
	HTTPAddr        string
	ShutdownTimeout time.Duration
	HTTPIdleTimeout time.Duration

	// Stdin and Stdout default to the process streams.
	Stdin  io.Reader
	Stdout io.Writer
}

func (o Options) withDefaults() Options {
	if o.Name == "" {
		o.Name = "futuresoulmate-admin"
	}
	if o.Version == "" {
		o.Version = "0.1.0"
	}
	if o.ShutdownTimeout <= 0 {
		o.ShutdownTimeout = 10 * time.Second
	}
	if o.HTTPIdleTimeout <= 0 {
		o.HTTPIdleTimeout = 120 * time.Second
	}
	if o.Stdin == nil {
		o.Stdin = os.Stdin
	}
	if o.Stdout == nil {
		o.Stdout = os.Stdout
	}
	return o
}

// NewServer builds an MCP server with every admin tool registered.
func NewServer(st pages.Store, name, version string) (*server.MCPServer, error) {
	s := server.NewMCPServer(name, version, server.WithToolCapabilities(true))

	for _, h := range []struct {
		name    string
		handler handlers.ToolRegisterer
	}{
		{"users", handlers.NewUsersHandler(st)},
		{"subscriptions", handlers.NewSubscriptionsHandler(st)},
		{"catalog", handlers.NewCatalogHandler(st)},
		{"dashboard", handlers.NewDashboardHandler(st)},
	} {
		if err := h.handler.RegisterTools(s); err != nil {
			return nil, fmt.Errorf("register %s tools: %w", h.name, err)
		}
	}
	return s, nil
}

// Run serves until ctx ends or the transport closes.
func Run(ctx context.Context, st pages.Store, opts Options, log zerolog.Logger) error {
	opts = opts.withDefaults()
	s, err := NewServer(st, opts.Name, opts.Version)
	if err != nil {
		return err
	}

	if opts.HTTPAddr == "" {
		log.Info().Msg("Starting MCP server (stdio transport)")
		return server.NewStdioServer(s).Listen(ctx, opts.Stdin, opts.Stdout)
	}

	log.Info().Str("addr", opts.HTTPAddr).Msg("Starting MCP server (Streamable HTTP)")
	streamSrv := server.NewStreamableHTTPServer(s,
		server.WithEndpointPath("/mcp"),
		server.WithHeartbeatInterval(30*time.Second),
	)
	srv := &http.Server{
		Addr:        opts.HTTPAddr,
		Handler:     streamSrv,
		ReadTimeout: 5 * time.Second,
		// No write deadline: responses may stream.
		WriteTimeout: 0,
		IdleTimeout:  opts.HTTPIdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), opts.ShutdownTimeout)
		defer cancel()
		log.Info().Msg("Shutting down MCP server")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("Error during HTTP server shutdown")
			return err
		}
		if err := streamSrv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("Error during MCP server shutdown")
			return err
		}
		return nil
	case err := <-errCh:
		log.Error().Err(err).Msg("HTTP server error")
		return err
	}
}
