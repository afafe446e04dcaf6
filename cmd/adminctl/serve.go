package main

import (
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/Akash8377/futuresoulmate-admin/console"
	"github.com/Akash8377/futuresoulmate-admin/console/health"
	"github.com/Akash8377/futuresoulmate-admin/mcp"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

const healthInterval = 30 * time.Second

func newServeCmd(g *globalFlags) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the admin console over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := g.open(cmd)
			if err != nil {
				return err
			}
			defer a.Close()
			if addr == "" {
				addr = a.Config.ConsoleAddr
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			mon := health.NewMonitor(a.Log, health.Backend(a.Config.BaseURL()), health.Storage(a.Storage))
			go mon.Start(ctx, healthInterval)

			shell := console.NewShell(a.Store, a.History, a.Log, console.WithHealth(mon))
			return console.Serve(ctx, addr, shell, a.Log)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default $ADMIN_CONSOLE_ADDR or :8090)")
	return cmd
}

func newMCPCmd(g *globalFlags) *cobra.Command {
	var httpAddr string

	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Expose the back office as MCP tools over stdio or HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := g.session(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return mcp.Run(ctx, a.Store, mcp.Options{
				Version:  version,
				HTTPAddr: httpAddr,
				Stdin:    cmd.InOrStdin(),
				Stdout:   cmd.OutOrStdout(),
			}, a.Log)
		},
	}
	cmd.Flags().StringVar(&httpAddr, "http", "", "Serve Streamable HTTP on this address instead of stdio")
	return cmd
}
