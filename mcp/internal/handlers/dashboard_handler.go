package handlers

import (
	"context"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog/log"

	"github.com/Akash8377/futuresoulmate-admin/console/pages"
)

// DashboardHandler summarises the back office.
type DashboardHandler struct {
	st pages.Store
}

func NewDashboardHandler(st pages.Store) *DashboardHandler { return &DashboardHandler{st: st} }

// RegisterTools registers dashboard_summary.
func (dh *DashboardHandler) RegisterTools(s *server.MCPServer) error {
	summary := mcp.NewTool("dashboard_summary",
		mcp.WithDescription("Headline numbers and distributions over members, subscriptions, plans, conversations and notifications"),
	)
	s.AddTool(summary, dh.handleSummary)
	return nil
}

func (dh *DashboardHandler) handleSummary(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	p := pages.NewDashboardPage(dh.st)
	start := time.Now()
	err := p.Mount().Wait(ctx)
	elapsed := time.Since(start)

	// Partial data is still a summary; failed sources are reported.
	out := map[string]any{"analytics": p.Analytics()}
	if err != nil {
		log.Warn().Err(err).Dur("elapsed", elapsed).Msg("dashboard_summary incomplete")
		st := dh.st.State()
		failed := map[string]string{}
		for name, msg := range map[string]string{
			"users":         st.Users.ErrMessage(),
			"subscriptions": st.Subscriptions.ErrMessage(),
			"plans":         st.Plans.ErrMessage(),
			"conversations": st.Conversations.ErrMessage(),
			"notifications": st.Notifications.ErrMessage(),
		} {
			if msg != "" {
				failed[name] = msg
			}
		}
		out["failed"] = failed
	}
	return jsonResult(out)
}
