package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Akash8377/futuresoulmate-admin/client"
	"github.com/Akash8377/futuresoulmate-admin/store"
)

func newLoginCmd(g *globalFlags) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and persist the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := g.open(cmd)
			if err != nil {
				return err
			}
			defer a.Close()
			ctx, cancel := commandContext(cmd)
			defer cancel()

			st, err := a.Store.Do(ctx, store.Login(client.Credentials{Email: email, Password: password}))
			if err != nil {
				return failed(err)
			}
			name := ""
			if st.Session.Profile != nil {
				name = strings.TrimSpace(st.Session.Profile.FullName())
			}
			if name == "" {
				name = email
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s\n", name)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Admin email (required)")
	cmd.Flags().StringVar(&password, "password", "", "Admin password (required)")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newLogoutCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the persisted session",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := g.open(cmd)
			if err != nil {
				return err
			}
			defer a.Close()
			ctx, cancel := commandContext(cmd)
			defer cancel()

			if _, err := a.Store.Do(ctx, store.Logout()); err != nil {
				return failed(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
			return nil
		},
	}
}

type whoami struct {
	ID        client.ID    `json:"id"`
	Profile   *client.User `json:"profile"`
	ExpiresAt *time.Time   `json:"expiresAt,omitempty"`
}

func newWhoamiCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged-in admin",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := g.session(cmd)
			if err != nil {
				return err
			}
			defer a.Close()
			ctx, cancel := commandContext(cmd)
			defer cancel()

			st, err := a.Store.Do(ctx, store.FetchProfile())
			if err != nil {
				return failed(err)
			}
			out := whoami{ID: st.Session.UserID, Profile: st.Session.Profile}
			if !st.Session.ExpiresAt.IsZero() {
				out.ExpiresAt = &st.Session.ExpiresAt
			}
			return printJSON(cmd, out)
		},
	}
}

func newProfileCmd(g *globalFlags) *cobra.Command {
	profile := &cobra.Command{
		Use:   "profile",
		Short: "Admin account operations",
	}

	var email, username, password string
	update := &cobra.Command{
		Use:   "update",
		Short: "Update the admin's email, username or password",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := g.session(cmd)
			if err != nil {
				return err
			}
			defer a.Close()
			ctx, cancel := commandContext(cmd)
			defer cancel()

			// Unchanged fields keep their current values.
			st, err := a.Store.Do(ctx, store.FetchProfile())
			if err != nil {
				return failed(err)
			}
			req := client.ProfileUpdate{
				Email:    string(st.Session.Profile.Email),
				Username: string(st.Session.Profile.Username),
			}
			if cmd.Flags().Changed("email") {
				req.Email = email
			}
			if cmd.Flags().Changed("username") {
				req.Username = username
			}
			req.Password = password

			st, err = a.Store.Do(ctx, store.UpdateProfile(st.Session.UserID, req))
			if err != nil {
				return failed(err)
			}
			return printJSON(cmd, st.Session.Profile)
		},
	}
	update.Flags().StringVar(&email, "email", "", "New email")
	update.Flags().StringVar(&username, "username", "", "New username")
	update.Flags().StringVar(&password, "password", "", "New password")
	profile.AddCommand(update)
	return profile
}
