package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Akash8377/futuresoulmate-admin/client"
	"github.com/Akash8377/futuresoulmate-admin/store"
)

// payloadFlags binds a payload's fields to command flags. applyTo copies
// only the flags the operator set, so an update keeps every other field.
type payloadFlags[P any] interface {
	register(cmd *cobra.Command)
	applyTo(p *P, cmd *cobra.Command) error
}

// resourceCmds builds the show/create/update/delete/status subcommands
// shared by subscriptions, plans and services.
type resourceCmds[T client.Entity, P any] struct {
	g           *globalFlags
	res         *store.Resource[T, P]
	singular    string
	payloadFrom func(T) P
	flags       func() payloadFlags[P]
	status      func(T) string
}

func (r resourceCmds[T, P]) list() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: fmt.Sprintf("List all %ss", r.singular),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := r.g.session(cmd)
			if err != nil {
				return err
			}
			defer a.Close()
			ctx, cancel := commandContext(cmd)
			defer cancel()

			st, err := a.Store.Do(ctx, r.res.FetchAll())
			if err != nil {
				return failed(err)
			}
			return printJSON(cmd, r.res.Of(st).Items)
		},
	}
}

func (r resourceCmds[T, P]) show() *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: fmt.Sprintf("Show one %s", r.singular),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := r.g.session(cmd)
			if err != nil {
				return err
			}
			defer a.Close()
			ctx, cancel := commandContext(cmd)
			defer cancel()

			st, err := a.Store.Do(ctx, r.res.FetchByID(client.ID(args[0])))
			if err != nil {
				return failed(err)
			}
			return printJSON(cmd, r.res.Of(st).Current)
		},
	}
}

func (r resourceCmds[T, P]) create() *cobra.Command {
	pf := r.flags()
	cmd := &cobra.Command{
		Use:   "create",
		Short: fmt.Sprintf("Create a %s", r.singular),
		RunE: func(cmd *cobra.Command, args []string) error {
			var p P
			if err := pf.applyTo(&p, cmd); err != nil {
				return err
			}
			a, err := r.g.session(cmd)
			if err != nil {
				return err
			}
			defer a.Close()
			ctx, cancel := commandContext(cmd)
			defer cancel()

			st, err := a.Store.Do(ctx, r.res.Create(p))
			if err != nil {
				return failed(err)
			}
			items := r.res.Of(st).Items
			if len(items) == 0 {
				return fmt.Errorf("%s created but not returned", r.singular)
			}
			return printJSON(cmd, items[0])
		},
	}
	pf.register(cmd)
	return cmd
}

func (r resourceCmds[T, P]) update() *cobra.Command {
	pf := r.flags()
	cmd := &cobra.Command{
		Use:   "update ID",
		Short: fmt.Sprintf("Update a %s; unset flags keep their current value", r.singular),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := client.ID(args[0])
			a, err := r.g.session(cmd)
			if err != nil {
				return err
			}
			defer a.Close()
			ctx, cancel := commandContext(cmd)
			defer cancel()

			st, err := a.Store.Do(ctx, r.res.FetchByID(id))
			if err != nil {
				return failed(err)
			}
			cur := r.res.Of(st).Current
			if cur == nil {
				return fmt.Errorf("%s %s not found", r.singular, id)
			}
			p := r.payloadFrom(*cur)
			if err := pf.applyTo(&p, cmd); err != nil {
				return err
			}
			// FetchByID left the entity in Current, which Update patches.
			st, err = a.Store.Do(ctx, r.res.Update(id, p))
			if err != nil {
				return failed(err)
			}
			return printJSON(cmd, r.res.Of(st).Current)
		},
	}
	pf.register(cmd)
	return cmd
}

func (r resourceCmds[T, P]) remove() *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: fmt.Sprintf("Delete a %s", r.singular),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := r.g.session(cmd)
			if err != nil {
				return err
			}
			defer a.Close()
			ctx, cancel := commandContext(cmd)
			defer cancel()

			if _, err := a.Store.Do(ctx, r.res.Delete(client.ID(args[0]))); err != nil {
				return failed(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s %s\n", r.singular, args[0])
			return nil
		},
	}
}

// setStatus takes an explicit status, or flips the current one when the
// argument is omitted.
func (r resourceCmds[T, P]) setStatus() *cobra.Command {
	return &cobra.Command{
		Use:   "status ID [active|inactive]",
		Short: fmt.Sprintf("Set or toggle a %s's status", r.singular),
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := client.ID(args[0])
			a, err := r.g.session(cmd)
			if err != nil {
				return err
			}
			defer a.Close()
			ctx, cancel := commandContext(cmd)
			defer cancel()

			st, err := a.Store.Do(ctx, r.res.FetchAll())
			if err != nil {
				return failed(err)
			}
			item, idx := r.res.Of(st).Find(id)
			if idx < 0 {
				return fmt.Errorf("%s %s not found", r.singular, id)
			}
			status := client.ToggleStatus(r.status(item))
			if len(args) == 2 {
				status = args[1]
			}
			st, err = a.Store.Do(ctx, r.res.UpdateStatus(id, status))
			if err != nil {
				return failed(err)
			}
			item, _ = r.res.Of(st).Find(id)
			return printJSON(cmd, item)
		},
	}
}
