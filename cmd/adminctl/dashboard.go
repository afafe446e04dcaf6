package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/Akash8377/futuresoulmate-admin/console/pages"
)

func newDashboardCmd(g *globalFlags) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Print headline numbers and distributions",
		Long: `Loads users, subscriptions, plans, conversations and notifications and
prints the dashboard analytics. A source that fails to load is reported on
stderr and counted as empty, unless --strict is given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := g.session(cmd)
			if err != nil {
				return err
			}
			defer a.Close()
			ctx, cancel := commandContext(cmd)
			defer cancel()

			page := pages.NewDashboardPage(a.Store)
			if err := page.Mount().Wait(ctx); err != nil {
				if strict || errors.Is(err, ctx.Err()) {
					return failed(err)
				}
				a.Log.Warn().Msg(errorMessage(err))
			}
			return printJSON(cmd, page.Analytics())
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "Fail when any source cannot be loaded")
	return cmd
}
