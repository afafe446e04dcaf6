package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/Akash8377/futuresoulmate-admin/client"
	"github.com/Akash8377/futuresoulmate-admin/internal/app"
	"github.com/Akash8377/futuresoulmate-admin/internal/config"
	"github.com/Akash8377/futuresoulmate-admin/internal/logger"
)

// commandTimeout bounds one CLI command, retries included.
const commandTimeout = 2 * time.Minute

func main() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		log.Error().Msg(errorMessage(err))
		os.Exit(1)
	}
}

// globalFlags are the persistent flags shared by every command.
type globalFlags struct {
	apiURL    string
	stateHome string
	debug     bool
}

// NewRootCmd constructs the root CLI command; exposed for unit testing.
func NewRootCmd() *cobra.Command {
	g := &globalFlags{}
	rootCmd := &cobra.Command{
		Use:           "adminctl",
		Short:         "Back office for the futuresoulmate matrimonial platform",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := "info"
			if g.debug {
				level = "debug"
			}
			log.Logger = logger.New("adminctl", level, logger.WithOutput(cmd.ErrOrStderr()), logger.WithConsole())
		},
	}

	rootCmd.PersistentFlags().StringVar(&g.apiURL, "api-url", "", "Admin API base URL (default $ADMIN_API_BASE_URL or http://localhost:5000/api)")
	rootCmd.PersistentFlags().StringVar(&g.stateHome, "state-home", "", "Directory holding the persisted session (default $ADMIN_STATE_HOME or ~/.futuresoulmate-admin)")
	rootCmd.PersistentFlags().BoolVarP(&g.debug, "debug", "d", false, "Enable debug logging and HTTP dumps")

	rootCmd.AddCommand(newLoginCmd(g))
	rootCmd.AddCommand(newLogoutCmd(g))
	rootCmd.AddCommand(newWhoamiCmd(g))
	rootCmd.AddCommand(newProfileCmd(g))
	rootCmd.AddCommand(newUsersCmd(g))
	rootCmd.AddCommand(newSubscriptionsCmd(g))
	rootCmd.AddCommand(newPlansCmd(g))
	rootCmd.AddCommand(newServicesCmd(g))
	rootCmd.AddCommand(newDashboardCmd(g))
	rootCmd.AddCommand(newServeCmd(g))
	rootCmd.AddCommand(newMCPCmd(g))

	return rootCmd
}

// open loads configuration, applies the persistent flags and builds the
// app. Logs go to the command's stderr.
func (g *globalFlags) open(cmd *cobra.Command) (*app.App, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, err
	}
	if g.apiURL != "" {
		cfg.APIBaseURL = g.apiURL
	}
	if g.stateHome != "" {
		cfg.StateHome = g.stateHome
	}
	if g.debug {
		cfg.Debug = true
		cfg.LogLevel = "debug"
	}
	lg := logger.New("adminctl", cfg.LogLevel, logger.WithOutput(cmd.ErrOrStderr()), logger.WithConsole())
	lg.Debug().Str("api_base_url", cfg.BaseURL()).Msg("opening session")
	return app.Open(cmd.Context(), cfg, lg)
}

// session is open plus RequireSession.
func (g *globalFlags) session(cmd *cobra.Command) (*app.App, error) {
	a, err := g.open(cmd)
	if err != nil {
		return nil, err
	}
	if err := a.RequireSession(); err != nil {
		_ = a.Close()
		return nil, err
	}
	return a, nil
}

func commandContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return context.WithTimeout(cmd.Context(), commandTimeout)
}

func printJSON(cmd *cobra.Command, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(b))
	return err
}

// errorMessage prefers the operator-facing text of a store error.
func errorMessage(err error) string {
	var e *client.Error
	if errors.As(err, &e) {
		if msg := e.Display(""); msg != "" {
			return msg
		}
	}
	return err.Error()
}

// failed wraps err so that cobra prints the operator-facing message.
func failed(err error) error {
	if err == nil {
		return nil
	}
	if msg := errorMessage(err); msg != err.Error() {
		return fmt.Errorf("%s: %w", msg, err)
	}
	return err
}
