// Package handlers exposes the admin store as MCP tools.
package handlers

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/Akash8377/futuresoulmate-admin/client"
)

// ToolRegisterer adds a group of tools to a server.
type ToolRegisterer interface {
	RegisterTools(s *server.MCPServer) error
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(b)), nil
}

// failure renders a store error the way the console shows it.
func failure(fallback string, err error) *mcp.CallToolResult {
	msg := err.Error()
	if e, ok := client.AsError(err); ok {
		msg = e.Display(fallback)
	}
	return mcp.NewToolResultError(fmt.Sprintf("%s: %s", fallback, msg))
}

func optString(req mcp.CallToolRequest, key string) string {
	if v, ok := req.GetArguments()[key].(string); ok {
		return strings.TrimSpace(v)
	}
	return ""
}
