package handlers

import (
	"context"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog/log"

	"github.com/Akash8377/futuresoulmate-admin/client"
	"github.com/Akash8377/futuresoulmate-admin/console/pages"
	"github.com/Akash8377/futuresoulmate-admin/store"
)

// CatalogHandler covers subscription plans and the services they bundle.
type CatalogHandler struct {
	st pages.Store
}

func NewCatalogHandler(st pages.Store) *CatalogHandler { return &CatalogHandler{st: st} }

// RegisterTools registers the plan and service tools.
func (ch *CatalogHandler) RegisterTools(s *server.MCPServer) error {
	listPlans := mcp.NewTool("list_plans",
		mcp.WithDescription("List subscription plans with price, status and bundled services"),
	)
	listServices := mcp.NewTool("list_services",
		mcp.WithDescription("List the services plans can bundle"),
	)
	setPlan := mcp.NewTool("set_plan_status",
		mcp.WithDescription("Activate or deactivate a subscription plan"),
		mcp.WithString("id", mcp.Required(), mcp.Description("Plan id")),
		mcp.WithString("status", mcp.Required(), mcp.Enum(client.StatusActive, client.StatusInactive), mcp.Description("active or inactive")),
	)
	setService := mcp.NewTool("set_service_status",
		mcp.WithDescription("Activate or deactivate a plan service"),
		mcp.WithString("id", mcp.Required(), mcp.Description("Service id")),
		mcp.WithString("status", mcp.Required(), mcp.Enum(client.StatusActive, client.StatusInactive), mcp.Description("active or inactive")),
	)
	s.AddTool(listPlans, ch.handleListPlans)
	s.AddTool(listServices, ch.handleListServices)
	s.AddTool(setPlan, ch.handleSetPlanStatus)
	s.AddTool(setService, ch.handleSetServiceStatus)
	return nil
}

type planRow struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Price    float64  `json:"price"`
	Status   string   `json:"status"`
	Services []string `json:"services,omitempty"`
}

func (ch *CatalogHandler) handleListPlans(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	p := pages.NewPlansPage(ch.st)
	start := time.Now()
	// Services only feed the form; a failure there does not hide plans.
	tickets := p.Mount()
	err := tickets[0].Wait(ctx)
	elapsed := time.Since(start)
	if err != nil {
		log.Error().Err(err).Dur("elapsed", elapsed).Msg("list_plans failed")
		return failure("failed to list plans", err), nil
	}

	v := p.View()
	rows := make([]planRow, len(v.Items))
	for i, pl := range v.Items {
		names := make([]string, 0, len(pl.Services))
		for _, s := range pl.Services {
			if s.Name != "" {
				names = append(names, s.Name)
			} else {
				names = append(names, s.ID.String())
			}
		}
		rows[i] = planRow{ID: pl.ID.String(), Name: pl.Name, Price: float64(pl.Price), Status: pl.Status, Services: names}
	}
	return jsonResult(map[string]any{"plans": rows, "count": len(rows)})
}

func (ch *CatalogHandler) handleListServices(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	p := pages.NewServicesPage(ch.st)
	if err := p.Mount().Wait(ctx); err != nil {
		log.Error().Err(err).Msg("list_services failed")
		return failure("failed to list services", err), nil
	}
	v := p.View()
	return jsonResult(map[string]any{"services": v.Items, "count": len(v.Items)})
}

func (ch *CatalogHandler) handleSetPlanStatus(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return setStatus(ctx, ch.st, store.Plans, req, func(p client.Plan) string { return p.Status })
}

func (ch *CatalogHandler) handleSetServiceStatus(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return setStatus(ctx, ch.st, store.Services, req, func(s client.PlanService) string { return s.Status })
}

func setStatus[T client.Entity, P any](ctx context.Context, st pages.Store, res *store.Resource[T, P], req mcp.CallToolRequest, status func(T) string) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError("id parameter is required"), nil
	}
	want, err := req.RequireString("status")
	if err != nil {
		return mcp.NewToolResultError("status parameter is required"), nil
	}

	log.Debug().Str("resource", res.Name()).Str("id", id).Str("status", want).Msg("set status invoked")

	start := time.Now()
	err = st.Dispatch(res.UpdateStatus(client.ID(id), want)).Wait(ctx)
	elapsed := time.Since(start)
	if err != nil {
		log.Error().Err(err).Str("resource", res.Name()).Dur("elapsed", elapsed).Msg("set status failed")
		return failure("failed to update status", err), nil
	}

	out := map[string]any{"id": id, "status": want}
	if item, idx := res.Of(st.State()).Find(client.ID(id)); idx >= 0 {
		out["status"] = status(item)
	}
	return jsonResult(out)
}
