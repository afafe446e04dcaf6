package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync/atomic"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/Akash8377/futuresoulmate-admin/client/internal/api"
)

// --------------------------------------------------------------------
// Client core
// --------------------------------------------------------------------

// Client talks to the admin REST backend. It is safe for concurrent use.
type Client struct {
	baseURL     string
	rc          *resty.Client
	tokens      TokenSource
	httpTimeout time.Duration
	transport   http.RoundTripper
	debug       bool

	closedOnce uint32 // ensures Close is idempotent
}

// TokenSource supplies the bearer token. It is read before every request so a
// login or logout takes effect on the next call.
type TokenSource interface {
	Token() string
}

// TokenFunc adapts a function to a TokenSource.
type TokenFunc func() string

// Token implements TokenSource.
func (f TokenFunc) Token() string { return f() }

// StaticToken is a fixed bearer token.
type StaticToken string

// Token implements TokenSource.
func (s StaticToken) Token() string { return string(s) }

// New constructs a Client for the API rooted at baseURL, e.g.
// "http://localhost:5000/api".
func New(baseURL string, opts ...Option) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, fmt.Errorf("baseURL cannot be empty")
	}
	if u, err := url.Parse(baseURL); err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid baseURL %q", baseURL)
	}

	c := &Client{
		baseURL:     baseURL,
		httpTimeout: 30 * time.Second,
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	transport := c.transport
	if transport == nil {
		transport = http.DefaultTransport
	}
	if c.debug {
		transport = &debugTransport{base: transport}
	}

	c.rc = resty.New().
		SetBaseURL(baseURL).
		SetTimeout(c.httpTimeout).
		SetTransport(transport).
		SetHeader("Content-Type", "application/json").
		OnBeforeRequest(c.authorize)
	return c, nil
}

// authorize stamps the bearer token and a request id on every request.
func (c *Client) authorize(_ *resty.Client, r *resty.Request) error {
	if c.tokens != nil {
		if tok := c.tokens.Token(); tok != "" {
			r.SetAuthToken(tok)
		}
	}
	id := RequestIDFromContext(r.Context())
	if id == "" {
		id = uuid.NewString()
	}
	r.SetHeader("X-Request-ID", id)
	return nil
}

// BaseURL returns the API root the client was built with.
func (c *Client) BaseURL() string { return c.baseURL }

// Close releases idle connections. Safe to call multiple times.
func (c *Client) Close() error {
	if !atomic.CompareAndSwapUint32(&c.closedOnce, 0, 1) {
		return nil
	}
	if t, ok := c.rc.GetClient().Transport.(interface{ CloseIdleConnections() }); ok {
		t.CloseIdleConnections()
	}
	return nil
}

type requestIDKey struct{}

// ContextWithRequestID makes requests issued with ctx carry id as X-Request-ID.
func ContextWithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFromContext returns the id set by ContextWithRequestID, or "".
func RequestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// --------------------------------------------------------------------
// Auth operations - delegated to internal/api
// --------------------------------------------------------------------

// Login exchanges credentials for a token and the admin account.
func (c *Client) Login(ctx context.Context, creds Credentials) (*LoginResult, error) {
	return observe("auth", "login", func() (*LoginResult, error) {
		return api.Login(ctx, c.rc, creds)
	})
}

// UpdateAdmin changes the admin account.
func (c *Client) UpdateAdmin(ctx context.Context, id ID, req ProfileUpdate) (*User, error) {
	return observe("auth", "update", func() (*User, error) {
		return api.UpdateAdmin(ctx, c.rc, id, req)
	})
}

// --------------------------------------------------------------------
// Member operations - delegated to internal/api
// --------------------------------------------------------------------

// GetUserDetails retrieves one member's full profile.
func (c *Client) GetUserDetails(ctx context.Context, id ID) (*User, error) {
	return observe("users", "get", func() (*User, error) {
		return api.GetUserDetails(ctx, c.rc, id)
	})
}

// ListUsers returns every member.
func (c *Client) ListUsers(ctx context.Context) ([]User, error) {
	return observe("users", "list", func() ([]User, error) {
		return api.ListUsers(ctx, c.rc)
	})
}

// ListConversations returns every conversation.
func (c *Client) ListConversations(ctx context.Context) ([]Conversation, error) {
	return observe("conversations", "list", func() ([]Conversation, error) {
		return api.ListConversations(ctx, c.rc)
	})
}

// ListNotifications returns every notification.
func (c *Client) ListNotifications(ctx context.Context) ([]Notification, error) {
	return observe("notifications", "list", func() ([]Notification, error) {
		return api.ListNotifications(ctx, c.rc)
	})
}

// --------------------------------------------------------------------
// Plan operations - delegated to internal/api
// --------------------------------------------------------------------

// ListPlans returns every plan.
func (c *Client) ListPlans(ctx context.Context) ([]Plan, error) {
	return observe("plans", "list", func() ([]Plan, error) { return api.ListPlans(ctx, c.rc) })
}

// GetPlan retrieves a plan by ID.
func (c *Client) GetPlan(ctx context.Context, id ID) (*Plan, error) {
	return observe("plans", "get", func() (*Plan, error) { return api.GetPlan(ctx, c.rc, id) })
}

// CreatePlan creates a plan.
func (c *Client) CreatePlan(ctx context.Context, req PlanPayload) (*Plan, error) {
	return observe("plans", "create", func() (*Plan, error) { return api.CreatePlan(ctx, c.rc, req) })
}

// UpdatePlan updates a plan.
func (c *Client) UpdatePlan(ctx context.Context, id ID, req PlanPayload) (*Plan, error) {
	return observe("plans", "update", func() (*Plan, error) { return api.UpdatePlan(ctx, c.rc, id, req) })
}

// UpdatePlanStatus sets a plan active or inactive.
func (c *Client) UpdatePlanStatus(ctx context.Context, id ID, status string) (*Plan, error) {
	return observe("plans", "status", func() (*Plan, error) { return api.UpdatePlanStatus(ctx, c.rc, id, status) })
}

// DeletePlan removes a plan.
func (c *Client) DeletePlan(ctx context.Context, id ID) error {
	_, err := observe("plans", "delete", func() (struct{}, error) { return struct{}{}, api.DeletePlan(ctx, c.rc, id) })
	return err
}

// --------------------------------------------------------------------
// Plan service operations - delegated to internal/api
// --------------------------------------------------------------------

// ListServices returns every plan service.
func (c *Client) ListServices(ctx context.Context) ([]PlanService, error) {
	return observe("services", "list", func() ([]PlanService, error) { return api.ListServices(ctx, c.rc) })
}

// GetService retrieves a plan service by ID.
func (c *Client) GetService(ctx context.Context, id ID) (*PlanService, error) {
	return observe("services", "get", func() (*PlanService, error) { return api.GetService(ctx, c.rc, id) })
}

// CreateService creates a plan service.
func (c *Client) CreateService(ctx context.Context, req ServicePayload) (*PlanService, error) {
	return observe("services", "create", func() (*PlanService, error) { return api.CreateService(ctx, c.rc, req) })
}

// UpdateService updates a plan service.
func (c *Client) UpdateService(ctx context.Context, id ID, req ServicePayload) (*PlanService, error) {
	return observe("services", "update", func() (*PlanService, error) { return api.UpdateService(ctx, c.rc, id, req) })
}

// UpdateServiceStatus sets a plan service active or inactive.
func (c *Client) UpdateServiceStatus(ctx context.Context, id ID, status string) (*PlanService, error) {
	return observe("services", "status", func() (*PlanService, error) { return api.UpdateServiceStatus(ctx, c.rc, id, status) })
}

// DeleteService removes a plan service.
func (c *Client) DeleteService(ctx context.Context, id ID) error {
	_, err := observe("services", "delete", func() (struct{}, error) { return struct{}{}, api.DeleteService(ctx, c.rc, id) })
	return err
}

// --------------------------------------------------------------------
// Subscription operations - delegated to internal/api
// --------------------------------------------------------------------

// ListSubscriptions returns every subscription.
func (c *Client) ListSubscriptions(ctx context.Context) ([]Subscription, error) {
	return observe("subscriptions", "list", func() ([]Subscription, error) { return api.ListSubscriptions(ctx, c.rc) })
}

// ListUserSubscriptions returns the subscriptions of one member.
func (c *Client) ListUserSubscriptions(ctx context.Context, userID ID) ([]Subscription, error) {
	return observe("subscriptions", "list_user", func() ([]Subscription, error) {
		return api.ListUserSubscriptions(ctx, c.rc, userID)
	})
}

// GetSubscription retrieves a subscription by ID.
func (c *Client) GetSubscription(ctx context.Context, id ID) (*Subscription, error) {
	return observe("subscriptions", "get", func() (*Subscription, error) { return api.GetSubscription(ctx, c.rc, id) })
}

// CreateSubscription creates a subscription.
func (c *Client) CreateSubscription(ctx context.Context, req SubscriptionPayload) (*Subscription, error) {
	return observe("subscriptions", "create", func() (*Subscription, error) { return api.CreateSubscription(ctx, c.rc, req) })
}

// UpdateSubscription updates a subscription.
func (c *Client) UpdateSubscription(ctx context.Context, id ID, req SubscriptionPayload) (*Subscription, error) {
	return observe("subscriptions", "update", func() (*Subscription, error) { return api.UpdateSubscription(ctx, c.rc, id, req) })
}

// DeleteSubscription removes a subscription.
func (c *Client) DeleteSubscription(ctx context.Context, id ID) error {
	_, err := observe("subscriptions", "delete", func() (struct{}, error) { return struct{}{}, api.DeleteSubscription(ctx, c.rc, id) })
	return err
}
