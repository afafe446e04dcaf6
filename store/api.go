package store

import (
	"context"

	"github.com/Akash8377/futuresoulmate-admin/client"
)

// API is the backend surface the store drives. *client.Client implements it.
type API interface {
	Login(ctx context.Context, creds client.Credentials) (*client.LoginResult, error)
	UpdateAdmin(ctx context.Context, id client.ID, req client.ProfileUpdate) (*client.User, error)
	GetUserDetails(ctx context.Context, id client.ID) (*client.User, error)

	ListUsers(ctx context.Context) ([]client.User, error)
	ListConversations(ctx context.Context) ([]client.Conversation, error)
	ListNotifications(ctx context.Context) ([]client.Notification, error)

	ListPlans(ctx context.Context) ([]client.Plan, error)
	GetPlan(ctx context.Context, id client.ID) (*client.Plan, error)
	CreatePlan(ctx context.Context, req client.PlanPayload) (*client.Plan, error)
	UpdatePlan(ctx context.Context, id client.ID, req client.PlanPayload) (*client.Plan, error)
	UpdatePlanStatus(ctx context.Context, id client.ID, status string) (*client.Plan, error)
	DeletePlan(ctx context.Context, id client.ID) error

	ListServices(ctx context.Context) ([]client.PlanService, error)
	GetService(ctx context.Context, id client.ID) (*client.PlanService, error)
	CreateService(ctx context.Context, req client.ServicePayload) (*client.PlanService, error)
	UpdateService(ctx context.Context, id client.ID, req client.ServicePayload) (*client.PlanService, error)
	UpdateServiceStatus(ctx context.Context, id client.ID, status string) (*client.PlanService, error)
	DeleteService(ctx context.Context, id client.ID) error

	ListSubscriptions(ctx context.Context) ([]client.Subscription, error)
	ListUserSubscriptions(ctx context.Context, userID client.ID) ([]client.Subscription, error)
	GetSubscription(ctx context.Context, id client.ID) (*client.Subscription, error)
	CreateSubscription(ctx context.Context, req client.SubscriptionPayload) (*client.Subscription, error)
	UpdateSubscription(ctx context.Context, id client.ID, req client.SubscriptionPayload) (*client.Subscription, error)
	DeleteSubscription(ctx context.Context, id client.ID) error
}

// Navigator receives navigation requests emitted by commands (login sends
// the operator to /dashboard).
type Navigator interface {
	Navigate(path string)
}

// NavigatorFunc adapts a function to a Navigator.
type NavigatorFunc func(path string)

// Navigate implements Navigator.
func (f NavigatorFunc) Navigate(path string) { f(path) }

var _ API = (*client.Client)(nil)
