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

// SubscriptionsHandler lists subscriptions.
type SubscriptionsHandler struct {
	st pages.Store
}

func NewSubscriptionsHandler(st pages.Store) *SubscriptionsHandler {
	return &SubscriptionsHandler{st: st}
}

// RegisterTools registers list_subscriptions.
func (sh *SubscriptionsHandler) RegisterTools(s *server.MCPServer) error {
	list := mcp.NewTool("list_subscriptions",
		mcp.WithDescription("List subscriptions, optionally for one member or filtered by search and status"),
		mcp.WithString("user_id", mcp.Description("Only this member's subscriptions")),
		mcp.WithString("search", mcp.Description("Case-insensitive match on member name, email or plan name")),
		mcp.WithString("status", mcp.Description("active, inactive, canceled or expired")),
	)
	s.AddTool(list, sh.handleListSubscriptions)
	return nil
}

type subscriptionRow struct {
	ID       string  `json:"id"`
	UserID   string  `json:"userId"`
	Name     string  `json:"name,omitempty"`
	Email    string  `json:"email,omitempty"`
	PlanName string  `json:"planName"`
	Price    float64 `json:"price"`
	Status   string  `json:"status"`
	Start    string  `json:"startDate,omitempty"`
	End      string  `json:"endDate,omitempty"`
}

func (sh *SubscriptionsHandler) handleListSubscriptions(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	p := pages.NewSubscriptionsPage(sh.st)
	p.SetSearch(optString(req, "search"))
	p.SetStatus(optString(req, "status"))

	var t *store.Ticket
	if owner := optString(req, "user_id"); owner != "" {
		log.Debug().Str("user_id", owner).Msg("list_subscriptions invoked")
		t = p.ForUser(client.ID(owner))
	} else {
		t = p.Mount()
	}

	start := time.Now()
	err := t.Wait(ctx)
	elapsed := time.Since(start)
	if err != nil {
		log.Error().Err(err).Dur("elapsed", elapsed).Msg("list_subscriptions failed")
		return failure("failed to list subscriptions", err), nil
	}

	v := p.View()
	rows := make([]subscriptionRow, len(v.Items))
	for i, s := range v.Items {
		name := string(s.FirstName)
		if s.LastName != "" {
			name += " " + string(s.LastName)
		}
		rows[i] = subscriptionRow{
			ID:       s.ID.String(),
			UserID:   s.UserID.String(),
			Name:     name,
			Email:    string(s.Email),
			PlanName: s.PlanName,
			Price:    float64(s.Price),
			Status:   s.Status,
			Start:    string(s.StartDate),
			End:      string(s.EndDate),
		}
	}
	return jsonResult(map[string]any{"subscriptions": rows, "count": len(rows)})
}
