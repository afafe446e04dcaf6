package handlers

import (
	"context"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog/log"

	"github.com/Akash8377/futuresoulmate-admin/console/pages"
)

// UsersHandler lists members.
type UsersHandler struct {
	st pages.Store
}

func NewUsersHandler(st pages.Store) *UsersHandler { return &UsersHandler{st: st} }

// RegisterTools registers list_users.
func (uh *UsersHandler) RegisterTools(s *server.MCPServer) error {
	list := mcp.NewTool("list_users",
		mcp.WithDescription("List members, optionally filtered by a search term and gender"),
		mcp.WithString("search", mcp.Description("Case-insensitive match on user id, email, phone or name")),
		mcp.WithString("gender", mcp.Description("Exact gender, e.g. male or female")),
	)
	s.AddTool(list, uh.handleListUsers)
	return nil
}

type userRow struct {
	ID     string `json:"id"`
	UserID string `json:"userId,omitempty"`
	Name   string `json:"name"`
	Email  string `json:"email,omitempty"`
	Phone  string `json:"phone"`
	Gender string `json:"gender,omitempty"`
	Online bool   `json:"online"`
}

func (uh *UsersHandler) handleListUsers(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	p := pages.NewUsersPage(uh.st)
	p.SetSearch(optString(req, "search"))
	p.SetGender(optString(req, "gender"))

	start := time.Now()
	err := p.Mount().Wait(ctx)
	elapsed := time.Since(start)
	if err != nil {
		log.Error().Err(err).Dur("elapsed", elapsed).Msg("list_users failed")
		return failure("failed to list users", err), nil
	}

	v := p.View()
	rows := make([]userRow, len(v.Items))
	for i, u := range v.Items {
		rows[i] = userRow{
			ID:     u.ID.String(),
			UserID: string(u.UserID),
			Name:   u.FullName(),
			Email:  string(u.Email),
			Phone:  pages.FormatPhoneNumber(string(u.Phone)),
			Gender: string(u.Gender),
			Online: u.OnlineStatus == "online",
		}
	}
	return jsonResult(map[string]any{"users": rows, "count": len(rows), "total": v.Total})
}
