package main

import (
	"github.com/spf13/cobra"

	"github.com/Akash8377/futuresoulmate-admin/client"
	"github.com/Akash8377/futuresoulmate-admin/console/pages"
	"github.com/Akash8377/futuresoulmate-admin/store"
)

type userRow struct {
	ID     client.ID   `json:"id"`
	UserID client.Text `json:"user_id,omitempty"`
	Name   string      `json:"name"`
	Email  client.Text `json:"email,omitempty"`
	Phone  string      `json:"phone,omitempty"`
	Gender client.Text `json:"gender,omitempty"`
}

func newUsersCmd(g *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Browse platform members",
	}
	cmd.AddCommand(newUsersListCmd(g), newUsersShowCmd(g))
	return cmd
}

func newUsersListCmd(g *globalFlags) *cobra.Command {
	var search, gender string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List members",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := g.session(cmd)
			if err != nil {
				return err
			}
			defer a.Close()
			ctx, cancel := commandContext(cmd)
			defer cancel()

			page := pages.NewUsersPage(a.Store)
			page.SetSearch(search)
			page.SetGender(gender)
			if err := page.Mount().Wait(ctx); err != nil {
				return failed(err)
			}
			view := page.View()
			rows := make([]userRow, 0, len(view.Items))
			for _, u := range view.Items {
				rows = append(rows, userRow{
					ID:     u.ID,
					UserID: u.UserID,
					Name:   u.FullName(),
					Email:  u.Email,
					Phone:  pages.FormatPhoneNumber(string(u.Phone)),
					Gender: u.Gender,
				})
			}
			return printJSON(cmd, rows)
		},
	}
	cmd.Flags().StringVar(&search, "search", "", "Match user id, email, phone or name")
	cmd.Flags().StringVar(&gender, "gender", "", "Only members of this gender")
	return cmd
}

func newUsersShowCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show a member's full profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := g.session(cmd)
			if err != nil {
				return err
			}
			defer a.Close()
			ctx, cancel := commandContext(cmd)
			defer cancel()

			st, err := a.Store.Do(ctx, store.Users.FetchByID(client.ID(args[0])))
			if err != nil {
				return failed(err)
			}
			return printJSON(cmd, st.Users.Current)
		},
	}
}
