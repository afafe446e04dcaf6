package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Akash8377/futuresoulmate-admin/client"
	"github.com/Akash8377/futuresoulmate-admin/internal/backendtest"
)

func call(args map[string]any) mcp.CallToolRequest {
	return mcp.CallToolRequest{Params: mcp.CallToolParams{Arguments: args}}
}

func ctxFor(t *testing.T) context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func text(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, res)
	require.NotEmpty(t, res.Content)
	return res.Content[0].(mcp.TextContent).Text
}

func decode[T any](t *testing.T, res *mcp.CallToolResult) T {
	t.Helper()
	require.False(t, res.IsError, text(t, res))
	var v T
	require.NoError(t, json.Unmarshal([]byte(text(t, res)), &v))
	return v
}

func TestListUsersTool(t *testing.T) {
	b := backendtest.New(t)
	b.Users = []client.User{
		{ID: "10", FirstName: "Ann", LastName: "Lee", Phone: "+919876543210", Gender: "female", OnlineStatus: "online"},
		{ID: "11", FirstName: "Bo", Gender: "male"},
	}
	st, _ := b.LoggedIn(t)
	h := NewUsersHandler(st)

	res, err := h.handleListUsers(ctxFor(t), call(map[string]any{"gender": "female"}))
	require.NoError(t, err)
	out := decode[struct {
		Users []userRow `json:"users"`
		Count int       `json:"count"`
		Total int       `json:"total"`
	}](t, res)
	require.Equal(t, 1, out.Count)
	assert.Equal(t, 2, out.Total)
	assert.Equal(t, "Ann Lee", out.Users[0].Name)
	assert.Equal(t, "+91 98765 43210", out.Users[0].Phone)
	assert.True(t, out.Users[0].Online)
}

func TestListSubscriptionsTool(t *testing.T) {
	b := backendtest.New(t)
	b.SeedSubscriptions(
		client.Subscription{ID: "1", UserID: "7", FirstName: "Ann", PlanName: "Gold", Price: 10, Status: "active"},
		client.Subscription{ID: "2", UserID: "8", FirstName: "Bo", PlanName: "Silver", Price: 5, Status: "expired"},
	)
	st, _ := b.LoggedIn(t)
	h := NewSubscriptionsHandler(st)

	res, err := h.handleListSubscriptions(ctxFor(t), call(map[string]any{"status": "ACTIVE"}))
	require.NoError(t, err)
	out := decode[struct {
		Subscriptions []subscriptionRow `json:"subscriptions"`
	}](t, res)
	require.Len(t, out.Subscriptions, 1)
	assert.Equal(t, "Gold", out.Subscriptions[0].PlanName)

	res, err = h.handleListSubscriptions(ctxFor(t), call(map[string]any{"user_id": "8"}))
	require.NoError(t, err)
	out = decode[struct {
		Subscriptions []subscriptionRow `json:"subscriptions"`
	}](t, res)
	require.Len(t, out.Subscriptions, 1)
	assert.Equal(t, "2", out.Subscriptions[0].ID)
	assert.Contains(t, b.Requests(), "GET /subscriptions/user/8")
}

func TestCatalogTools(t *testing.T) {
	b := backendtest.New(t)
	b.SeedPlans(client.Plan{ID: "1", Name: "Gold", Price: 499, Status: "active", Services: []client.PlanServiceRef{{ID: "5", Name: "Chat", ServiceCount: 3}}})
	b.SeedServices(client.PlanService{ID: "5", Name: "Chat", Status: "active"})
	st, _ := b.LoggedIn(t)
	h := NewCatalogHandler(st)

	res, err := h.handleListPlans(ctxFor(t), call(nil))
	require.NoError(t, err)
	plans := decode[struct {
		Plans []planRow `json:"plans"`
	}](t, res)
	require.Len(t, plans.Plans, 1)
	assert.Equal(t, []string{"Chat"}, plans.Plans[0].Services)

	res, err = h.handleSetPlanStatus(ctxFor(t), call(map[string]any{"id": "1", "status": "inactive"}))
	require.NoError(t, err)
	assert.Equal(t, "inactive", decode[map[string]any](t, res)["status"])
	assert.Equal(t, "inactive", b.Plans()[0].Status)

	res, err = h.handleSetServiceStatus(ctxFor(t), call(map[string]any{"id": "5", "status": "paused"}))
	require.NoError(t, err)
	assert.True(t, res.IsError, "only active and inactive are accepted")
	assert.Equal(t, "active", b.Services()[0].Status)

	res, err = h.handleSetServiceStatus(ctxFor(t), call(map[string]any{"status": "active"}))
	require.NoError(t, err)
	assert.True(t, res.IsError)

	res, err = h.handleListServices(ctxFor(t), call(nil))
	require.NoError(t, err)
	assert.Equal(t, float64(1), decode[map[string]any](t, res)["count"])
}

func TestListPlansFailure(t *testing.T) {
	b := backendtest.New(t)
	b.FailWith(http.MethodGet, "/plans", http.StatusInternalServerError)
	st, _ := b.LoggedIn(t)

	res, err := NewCatalogHandler(st).handleListPlans(ctxFor(t), call(nil))
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Contains(t, text(t, res), "failed to list plans")
}

func TestDashboardSummaryReportsFailedSources(t *testing.T) {
	b := backendtest.New(t)
	b.FailWith(http.MethodGet, "/notifications", http.StatusBadGateway)
	st, _ := b.LoggedIn(t)

	res, err := NewDashboardHandler(st).handleSummary(ctxFor(t), call(nil))
	require.NoError(t, err)
	out := decode[struct {
		Analytics map[string]any    `json:"analytics"`
		Failed    map[string]string `json:"failed"`
	}](t, res)
	assert.NotEmpty(t, out.Analytics)
	assert.Contains(t, out.Failed, "notifications")
	assert.NotContains(t, out.Failed, "users")
}
