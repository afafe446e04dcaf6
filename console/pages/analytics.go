package pages

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-openapi/strfmt"

	"github.com/Akash8377/futuresoulmate-admin/client"
	"github.com/Akash8377/futuresoulmate-admin/store"
)

// Unknown labels a distribution bucket for a missing value.
const Unknown = "unknown"

// Analytics is everything the dashboard charts show.
type Analytics struct {
	Users         int `json:"users"`
	Subscriptions int `json:"subscriptions"`
	Plans         int `json:"plans"`

	Gender        map[string]int `json:"gender"`
	Religion      map[string]int `json:"religion"`
	Country       map[string]int `json:"country"`
	MaritalStatus map[string]int `json:"marital_status"`
	AgeGroups     map[string]int `json:"age_groups"`

	SubscriptionStatus map[string]int     `json:"subscription_status"`
	PlanDistribution   map[string]int     `json:"plan_distribution"`
	TotalRevenue       float64            `json:"total_revenue"`
	RevenueByPlan      map[string]float64 `json:"revenue_by_plan"`

	ActiveUsers  int `json:"active_users"`
	OnlineUsers  int `json:"online_users"`
	BoostedUsers int `json:"boosted_users"`

	Interactions  InteractionStats  `json:"interactions"`
	Notifications NotificationStats `json:"notifications"`
	Cards         []SummaryCard     `json:"cards"`
}

// InteractionStats summarises conversations.
type InteractionStats struct {
	Conversations  int         `json:"conversations"`
	Messages       int         `json:"messages"`
	MessagesByHour map[int]int `json:"messages_by_hour"`
}

// NotificationStats summarises notifications.
type NotificationStats struct {
	Total               int            `json:"total"`
	ByType              map[string]int `json:"by_type"`
	ByStatus            map[string]int `json:"by_status"`
	Read                int            `json:"read"`
	Unread              int            `json:"unread"`
	ConnectionRequests  int            `json:"connection_requests"`
	PendingConnections  int            `json:"pending_connections"`
	AcceptedConnections int            `json:"accepted_connections"`
}

// SummaryCard is one headline tile linking to a page.
type SummaryCard struct {
	Title       string `json:"title"`
	Value       int    `json:"value"`
	Description string `json:"description"`
	Path        string `json:"path"`
}

// ComputeAnalytics derives the dashboard from st. now anchors ages, boost
// expiry and the hour buckets' time zone.
func ComputeAnalytics(st store.State, now time.Time) Analytics {
	users := st.Users.Items
	subs := st.Subscriptions.Items
	a := Analytics{
		Users:              len(users),
		Subscriptions:      len(subs),
		Plans:              len(st.Plans.Items),
		Gender:             map[string]int{},
		Religion:           map[string]int{},
		Country:            map[string]int{},
		MaritalStatus:      map[string]int{},
		AgeGroups:          map[string]int{},
		SubscriptionStatus: map[string]int{},
		PlanDistribution:   map[string]int{},
		RevenueByPlan:      map[string]float64{},
	}

	for _, u := range users {
		a.Gender[bucket(string(u.Gender))]++
		a.Religion[bucket(string(u.Religion))]++
		a.Country[bucket(string(u.Country))]++
		a.MaritalStatus[bucket(string(u.MaritalStatus))]++
		if group, ok := ageGroup(string(u.BirthYear), now); ok {
			a.AgeGroups[group]++
		}
		if u.Status == "active" {
			a.ActiveUsers++
		}
		if u.OnlineStatus == "online" {
			a.OnlineUsers++
		}
		if until, ok := parseTime(string(u.BoostedUntil)); ok && until.After(now) {
			a.BoostedUsers++
		}
	}

	for _, s := range subs {
		a.SubscriptionStatus[bucket(s.Status)]++
		plan := bucket(s.PlanName)
		a.PlanDistribution[plan]++
		a.TotalRevenue += float64(s.Price)
		a.RevenueByPlan[plan] += float64(s.Price)
	}

	a.Interactions = interactions(st.Conversations.Items, now.Location())
	a.Notifications = notifications(st.Notifications.Items)
	a.Cards = []SummaryCard{
		{Title: "Total Users", Value: a.Users, Description: fmt.Sprintf("%d active, %d online", a.ActiveUsers, a.OnlineUsers), Path: "/users"},
		{Title: "Total Subscriptions", Value: a.Subscriptions, Description: fmt.Sprintf("$%.2f monthly revenue", a.TotalRevenue), Path: "/subscriptions"},
		{Title: "Subscription Plans", Value: a.Plans, Description: fmt.Sprintf("%d active plans", len(a.PlanDistribution)), Path: "/plans"},
		{Title: "Boosted Profiles", Value: a.BoostedUsers, Description: "Currently active boosts", Path: "/users"},
	}
	return a
}

func interactions(convs []client.Conversation, loc *time.Location) InteractionStats {
	out := InteractionStats{MessagesByHour: map[int]int{}}
	for _, c := range convs {
		out.Conversations++
		out.Messages += len(c.Messages)
		for _, m := range c.Messages {
			if at, ok := parseTime(string(m.SentAt)); ok {
				out.MessagesByHour[at.In(loc).Hour()]++
			}
		}
	}
	return out
}

func notifications(ns []client.Notification) NotificationStats {
	out := NotificationStats{ByType: map[string]int{}, ByStatus: map[string]int{}}
	for _, n := range ns {
		out.Total++
		out.ByType[bucket(string(n.Type))]++
		out.ByStatus[bucket(string(n.Status))]++
		if n.IsRead {
			out.Read++
		} else {
			out.Unread++
		}
		if n.Type == "connect" {
			out.ConnectionRequests++
			switch n.Status {
			case "pending":
				out.PendingConnections++
			case "accepted":
				out.AcceptedConnections++
			}
		}
	}
	return out
}

func bucket(v string) string {
	if v = strings.TrimSpace(v); v == "" {
		return Unknown
	}
	return v
}

// ageGroup buckets a birth year; unreadable years are skipped.
func ageGroup(birthYear string, now time.Time) (string, bool) {
	year, err := strconv.Atoi(strings.TrimSpace(birthYear))
	if err != nil || year <= 0 {
		return "", false
	}
	switch age := now.Year() - year; {
	case age < 25:
		return "18-24", true
	case age < 30:
		return "25-29", true
	case age < 35:
		return "30-34", true
	default:
		return "35+", true
	}
}

// parseTime reads the backend's timestamps: RFC 3339 variants and the
// database's "2006-01-02 15:04:05" form.
func parseTime(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if dt, err := strfmt.ParseDateTime(s); err == nil {
		return time.Time(dt), true
	}
	if t, err := time.Parse(time.DateTime, s); err == nil {
		return t, true
	}
	return time.Time{}, false
}
