package pages

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Akash8377/futuresoulmate-admin/client"
	"github.com/Akash8377/futuresoulmate-admin/store"
)

func TestComputeAnalytics(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	st := store.InitialState()
	st.Users.Items = []client.User{
		{ID: "1", Gender: "female", Religion: "Hindu", Country: "India", BirthYear: "2003", Status: "active", OnlineStatus: "online", BoostedUntil: "2025-06-02T00:00:00.000Z"},
		{ID: "2", Gender: "male", Religion: "Hindu", Country: "India", BirthYear: "1990", Status: "inactive", BoostedUntil: "2025-05-01 10:00:00"},
		{ID: "3", Gender: "", BirthYear: "unknown"},
	}
	st.Subscriptions.Items = []client.Subscription{
		{ID: "s1", PlanName: "Gold", Price: 499, Status: "active"},
		{ID: "s2", PlanName: "Gold", Price: 499.5, Status: "expired"},
		{ID: "s3", PlanName: "Silver", Price: 100, Status: "active"},
	}
	st.Plans.Items = []client.Plan{{ID: "p1"}, {ID: "p2"}}
	st.Conversations.Items = []client.Conversation{
		{ID: "c1", Messages: client.Messages{
			{SenderID: "1", Content: "hi", SentAt: "2025-05-31T09:15:00Z"},
			{SenderID: "2", Content: "hello", SentAt: "2025-05-31T09:45:00Z"},
		}},
		{ID: "c2"},
	}
	st.Notifications.Items = []client.Notification{
		{ID: "n1", Type: "connect", Status: "pending"},
		{ID: "n2", Type: "connect", Status: "accepted", IsRead: true},
		{ID: "n3", Type: "like", Status: "sent"},
	}

	a := ComputeAnalytics(st, now)

	assert.Equal(t, map[string]int{"female": 1, "male": 1, Unknown: 1}, a.Gender)
	assert.Equal(t, map[string]int{"18-24": 1, "35+": 1}, a.AgeGroups)
	assert.Equal(t, 1, a.ActiveUsers)
	assert.Equal(t, 1, a.OnlineUsers)
	assert.Equal(t, 1, a.BoostedUsers)

	assert.Equal(t, map[string]int{"Gold": 2, "Silver": 1}, a.PlanDistribution)
	assert.Equal(t, map[string]int{"active": 2, "expired": 1}, a.SubscriptionStatus)
	assert.InDelta(t, 1098.5, a.TotalRevenue, 1e-9)
	assert.InDelta(t, 998.5, a.RevenueByPlan["Gold"], 1e-9)

	assert.Equal(t, 2, a.Interactions.Conversations)
	assert.Equal(t, 2, a.Interactions.Messages)
	assert.Equal(t, map[int]int{9: 2}, a.Interactions.MessagesByHour)

	n := a.Notifications
	assert.Equal(t, 3, n.Total)
	assert.Equal(t, 1, n.Read)
	assert.Equal(t, 2, n.Unread)
	assert.Equal(t, 2, n.ConnectionRequests)
	assert.Equal(t, 1, n.PendingConnections)
	assert.Equal(t, 1, n.AcceptedConnections)

	require.Len(t, a.Cards, 4)
	assert.Equal(t, "1 active, 1 online", a.Cards[0].Description)
	assert.Equal(t, "$1098.50 monthly revenue", a.Cards[1].Description)
	assert.Equal(t, "2 active plans", a.Cards[2].Description)
	assert.Equal(t, 2, a.Cards[2].Value)
}

func TestComputeAnalyticsEmpty(t *testing.T) {
	a := ComputeAnalytics(store.InitialState(), time.Now())
	assert.Zero(t, a.Users)
	assert.Empty(t, a.Gender)
	assert.Zero(t, a.TotalRevenue)
	assert.Len(t, a.Cards, 4)
}
