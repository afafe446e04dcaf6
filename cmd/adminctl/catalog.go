package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Akash8377/futuresoulmate-admin/client"
	"github.com/Akash8377/futuresoulmate-admin/store"
)

type planFlags struct {
	name        string
	price       float64
	description string
	status      string
	services    []string
}

func (f *planFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "name", "", "Plan name")
	cmd.Flags().Float64Var(&f.price, "price", 0, "Plan price")
	cmd.Flags().StringVar(&f.description, "description", "", "Plan description")
	cmd.Flags().StringVar(&f.status, "status", "", "active or inactive")
	cmd.Flags().StringSliceVar(&f.services, "service", nil, "Attached service as ID:COUNT (repeatable; replaces the current set)")
}

func (f *planFlags) applyTo(p *client.PlanPayload, cmd *cobra.Command) error {
	fs := cmd.Flags()
	if fs.Changed("name") {
		p.Name = f.name
	}
	if fs.Changed("price") {
		p.Price = client.Amount(f.price)
	}
	if fs.Changed("description") {
		p.Description = f.description
	}
	if fs.Changed("status") {
		p.Status = f.status
	}
	if fs.Changed("service") {
		services, err := parseServiceCounts(f.services)
		if err != nil {
			return err
		}
		p.Services = services
	}
	if p.Services == nil {
		p.Services = []client.PlanServiceCount{}
	}
	return nil
}

// parseServiceCounts reads ID:COUNT pairs; a bare ID counts once.
func parseServiceCounts(raw []string) ([]client.PlanServiceCount, error) {
	out := make([]client.PlanServiceCount, 0, len(raw))
	for _, s := range raw {
		id, count, found := strings.Cut(strings.TrimSpace(s), ":")
		n := 1
		if found {
			var err error
			if n, err = strconv.Atoi(count); err != nil || n < 0 {
				return nil, fmt.Errorf("invalid service count in %q", s)
			}
		}
		if id == "" {
			return nil, fmt.Errorf("missing service id in %q", s)
		}
		out = append(out, client.PlanServiceCount{ID: client.ID(id), Count: n})
	}
	return out, nil
}

func newPlansCmd(g *globalFlags) *cobra.Command {
	r := resourceCmds[client.Plan, client.PlanPayload]{
		g:           g,
		res:         store.Plans,
		singular:    "plan",
		payloadFrom: client.PlanPayloadFrom,
		flags:       func() payloadFlags[client.PlanPayload] { return &planFlags{} },
		status:      func(p client.Plan) string { return p.Status },
	}
	cmd := &cobra.Command{
		Use:   "plans",
		Short: "Manage subscription plans",
	}
	cmd.AddCommand(r.list(), r.show(), r.create(), r.update(), r.setStatus(), r.remove())
	return cmd
}

type serviceFlags struct {
	name        string
	description string
	status      string
}

func (f *serviceFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "name", "", "Service name")
	cmd.Flags().StringVar(&f.description, "description", "", "Service description")
	cmd.Flags().StringVar(&f.status, "status", "", "active or inactive")
}

func (f *serviceFlags) applyTo(p *client.ServicePayload, cmd *cobra.Command) error {
	fs := cmd.Flags()
	if fs.Changed("name") {
		p.Name = f.name
	}
	if fs.Changed("description") {
		p.Description = f.description
	}
	if fs.Changed("status") {
		p.Status = f.status
	}
	return nil
}

func newServicesCmd(g *globalFlags) *cobra.Command {
	r := resourceCmds[client.PlanService, client.ServicePayload]{
		g:           g,
		res:         store.Services,
		singular:    "service",
		payloadFrom: client.ServicePayloadFrom,
		flags:       func() payloadFlags[client.ServicePayload] { return &serviceFlags{} },
		status:      func(s client.PlanService) string { return s.Status },
	}
	cmd := &cobra.Command{
		Use:   "services",
		Short: "Manage the services plans can bundle",
	}
	cmd.AddCommand(r.list(), r.show(), r.create(), r.update(), r.setStatus(), r.remove())
	return cmd
}
