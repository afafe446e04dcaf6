package main

import (
	"github.com/spf13/cobra"

	"github.com/Akash8377/futuresoulmate-admin/client"
	"github.com/Akash8377/futuresoulmate-admin/console/pages"
	"github.com/Akash8377/futuresoulmate-admin/store"
)

type subscriptionFlags struct {
	userID       string
	planName     string
	price        float64
	billingCycle string
	startDate    string
	endDate      string
	status       string
	features     []string
}

func (f *subscriptionFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.userID, "user-id", "", "Member id")
	cmd.Flags().StringVar(&f.planName, "plan-name", "", "Plan name")
	cmd.Flags().Float64Var(&f.price, "price", 0, "Price paid")
	cmd.Flags().StringVar(&f.billingCycle, "billing-cycle", "", "monthly, quarterly or yearly")
	cmd.Flags().StringVar(&f.startDate, "start-date", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.endDate, "end-date", "", "End date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.status, "status", "", "active, inactive, canceled or expired")
	cmd.Flags().StringSliceVar(&f.features, "feature", nil, "Feature line (repeatable; replaces the current list)")
}

func (f *subscriptionFlags) applyTo(p *client.SubscriptionPayload, cmd *cobra.Command) error {
	fs := cmd.Flags()
	if fs.Changed("user-id") {
		p.UserID = client.ID(f.userID)
	}
	if fs.Changed("plan-name") {
		p.PlanName = f.planName
	}
	if fs.Changed("price") {
		p.Price = client.Amount(f.price)
	}
	if fs.Changed("billing-cycle") {
		p.BillingCycle = f.billingCycle
	}
	if fs.Changed("start-date") {
		p.StartDate = f.startDate
	}
	if fs.Changed("end-date") {
		p.EndDate = f.endDate
	}
	if fs.Changed("status") {
		p.Status = f.status
	}
	if fs.Changed("feature") {
		p.Features = append([]string(nil), f.features...)
	}
	if p.Features == nil {
		p.Features = []string{}
	}
	return nil
}

func newSubscriptionsCmd(g *globalFlags) *cobra.Command {
	r := resourceCmds[client.Subscription, client.SubscriptionPayload]{
		g:           g,
		res:         store.Subscriptions,
		singular:    "subscription",
		payloadFrom: client.SubscriptionPayloadFrom,
		flags:       func() payloadFlags[client.SubscriptionPayload] { return &subscriptionFlags{} },
	}
	cmd := &cobra.Command{
		Use:   "subscriptions",
		Short: "Manage member subscriptions",
	}
	cmd.AddCommand(newSubscriptionsListCmd(g), newSubscriptionsForUserCmd(g), r.show(), r.create(), r.update(), r.remove())
	return cmd
}

func newSubscriptionsForUserCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "for-user USER_ID",
		Short: "List one member's subscriptions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := g.session(cmd)
			if err != nil {
				return err
			}
			defer a.Close()
			ctx, cancel := commandContext(cmd)
			defer cancel()

			st, err := a.Store.Do(ctx, store.Subscriptions.FetchAllForUser(client.ID(args[0])))
			if err != nil {
				return failed(err)
			}
			return printJSON(cmd, st.Subscriptions.Items)
		},
	}
}

func newSubscriptionsListCmd(g *globalFlags) *cobra.Command {
	var search, status, userID string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List subscriptions, optionally for one member",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := g.session(cmd)
			if err != nil {
				return err
			}
			defer a.Close()
			ctx, cancel := commandContext(cmd)
			defer cancel()

			page := pages.NewSubscriptionsPage(a.Store)
			page.SetSearch(search)
			page.SetStatus(status)
			var t *store.Ticket
			if userID != "" {
				t = page.ForUser(client.ID(userID))
			} else {
				t = page.Mount()
			}
			if err := t.Wait(ctx); err != nil {
				return failed(err)
			}
			return printJSON(cmd, page.View().Items)
		},
	}
	cmd.Flags().StringVar(&search, "search", "", "Match member name, email or plan name")
	cmd.Flags().StringVar(&status, "status", "", "Only subscriptions with this status")
	cmd.Flags().StringVar(&userID, "user", "", "Only this member's subscriptions")
	return cmd
}
