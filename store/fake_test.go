package store

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/Akash8377/futuresoulmate-admin/client"
	"github.com/Akash8377/futuresoulmate-admin/localstate"
)

var errNotStubbed = errors.New("not stubbed")

// fakeAPI counts calls and delegates to whichever hooks a test sets.
type fakeAPI struct {
	mu    sync.Mutex
	calls map[string]int

	login       func(context.Context, client.Credentials) (*client.LoginResult, error)
	userDetails func(context.Context, client.ID) (*client.User, error)
	updateAdmin func(context.Context, client.ID, client.ProfileUpdate) (*client.User, error)

	listUsers         func(context.Context) ([]client.User, error)
	listConversations func(context.Context) ([]client.Conversation, error)
	listNotifications func(context.Context) ([]client.Notification, error)

	listPlans        func(context.Context) ([]client.Plan, error)
	createPlan       func(context.Context, client.PlanPayload) (*client.Plan, error)
	updatePlan       func(context.Context, client.ID, client.PlanPayload) (*client.Plan, error)
	updatePlanStatus func(context.Context, client.ID, string) (*client.Plan, error)
	deletePlan       func(context.Context, client.ID) error

	listServices func(context.Context) ([]client.PlanService, error)

	listSubscriptions     func(context.Context) ([]client.Subscription, error)
	listUserSubscriptions func(context.Context, client.ID) ([]client.Subscription, error)
}

func (f *fakeAPI) hit(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.calls == nil {
		f.calls = map[string]int{}
	}
	f.calls[name]++
}

func (f *fakeAPI) count(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[name]
}

func (f *fakeAPI) total() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		n += c
	}
	return n
}

func (f *fakeAPI) Login(ctx context.Context, c client.Credentials) (*client.LoginResult, error) {
	f.hit("Login")
	if f.login == nil {
		return nil, errNotStubbed
	}
	return f.login(ctx, c)
}

func (f *fakeAPI) UpdateAdmin(ctx context.Context, id client.ID, r client.ProfileUpdate) (*client.User, error) {
	f.hit("UpdateAdmin")
	if f.updateAdmin == nil {
		return nil, errNotStubbed
	}
	return f.updateAdmin(ctx, id, r)
}

func (f *fakeAPI) GetUserDetails(ctx context.Context, id client.ID) (*client.User, error) {
	f.hit("GetUserDetails")
	if f.userDetails == nil {
		return nil, errNotStubbed
	}
	return f.userDetails(ctx, id)
}

func (f *fakeAPI) ListUsers(ctx context.Context) ([]client.User, error) {
	f.hit("ListUsers")
	if f.listUsers == nil {
		return nil, errNotStubbed
	}
	return f.listUsers(ctx)
}

func (f *fakeAPI) ListConversations(ctx context.Context) ([]client.Conversation, error) {
	f.hit("ListConversations")
	if f.listConversations == nil {
		return nil, errNotStubbed
	}
	return f.listConversations(ctx)
}

func (f *fakeAPI) ListNotifications(ctx context.Context) ([]client.Notification, error) {
	f.hit("ListNotifications")
	if f.listNotifications == nil {
		return nil, errNotStubbed
	}
	return f.listNotifications(ctx)
}

func (f *fakeAPI) ListPlans(ctx context.Context) ([]client.Plan, error) {
	f.hit("ListPlans")
	if f.listPlans == nil {
		return nil, errNotStubbed
	}
	return f.listPlans(ctx)
}

func (f *fakeAPI) GetPlan(context.Context, client.ID) (*client.Plan, error) {
	f.hit("GetPlan")
	return nil, errNotStubbed
}

func (f *fakeAPI) CreatePlan(ctx context.Context, r client.PlanPayload) (*client.Plan, error) {
	f.hit("CreatePlan")
	if f.createPlan == nil {
		return nil, errNotStubbed
	}
	return f.createPlan(ctx, r)
}

func (f *fakeAPI) UpdatePlan(ctx context.Context, id client.ID, r client.PlanPayload) (*client.Plan, error) {
	f.hit("UpdatePlan")
	if f.updatePlan == nil {
		return nil, errNotStubbed
	}
	return f.updatePlan(ctx, id, r)
}

func (f *fakeAPI) UpdatePlanStatus(ctx context.Context, id client.ID, s string) (*client.Plan, error) {
	f.hit("UpdatePlanStatus")
	if f.updatePlanStatus == nil {
		return nil, errNotStubbed
	}
	return f.updatePlanStatus(ctx, id, s)
}

func (f *fakeAPI) DeletePlan(ctx context.Context, id client.ID) error {
	f.hit("DeletePlan")
	if f.deletePlan == nil {
		return errNotStubbed
	}
	return f.deletePlan(ctx, id)
}

func (f *fakeAPI) ListServices(ctx context.Context) ([]client.PlanService, error) {
	f.hit("ListServices")
	if f.listServices == nil {
		return nil, errNotStubbed
	}
	return f.listServices(ctx)
}

func (f *fakeAPI) GetService(context.Context, client.ID) (*client.PlanService, error) {
	f.hit("GetService")
	return nil, errNotStubbed
}

func (f *fakeAPI) CreateService(context.Context, client.ServicePayload) (*client.PlanService, error) {
	f.hit("CreateService")
	return nil, errNotStubbed
}

func (f *fakeAPI) UpdateService(context.Context, client.ID, client.ServicePayload) (*client.PlanService, error) {
	f.hit("UpdateService")
	return nil, errNotStubbed
}

func (f *fakeAPI) UpdateServiceStatus(context.Context, client.ID, string) (*client.PlanService, error) {
	f.hit("UpdateServiceStatus")
	return nil, errNotStubbed
}

func (f *fakeAPI) DeleteService(context.Context, client.ID) error {
	f.hit("DeleteService")
	return errNotStubbed
}

func (f *fakeAPI) ListSubscriptions(ctx context.Context) ([]client.Subscription, error) {
	f.hit("ListSubscriptions")
	if f.listSubscriptions == nil {
		return nil, errNotStubbed
	}
	return f.listSubscriptions(ctx)
}

func (f *fakeAPI) ListUserSubscriptions(ctx context.Context, id client.ID) ([]client.Subscription, error) {
	f.hit("ListUserSubscriptions")
	if f.listUserSubscriptions == nil {
		return nil, errNotStubbed
	}
	return f.listUserSubscriptions(ctx, id)
}

func (f *fakeAPI) GetSubscription(context.Context, client.ID) (*client.Subscription, error) {
	f.hit("GetSubscription")
	return nil, errNotStubbed
}

func (f *fakeAPI) CreateSubscription(context.Context, client.SubscriptionPayload) (*client.Subscription, error) {
	f.hit("CreateSubscription")
	return nil, errNotStubbed
}

func (f *fakeAPI) UpdateSubscription(context.Context, client.ID, client.SubscriptionPayload) (*client.Subscription, error) {
	f.hit("UpdateSubscription")
	return nil, errNotStubbed
}

func (f *fakeAPI) DeleteSubscription(context.Context, client.ID) error {
	f.hit("DeleteSubscription")
	return errNotStubbed
}

// navRecorder remembers every navigation.
type navRecorder struct {
	mu    sync.Mutex
	paths []string
}

func (n *navRecorder) Navigate(path string) {
	n.mu.Lock()
	n.paths = append(n.paths, path)
	n.mu.Unlock()
}

func (n *navRecorder) all() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.paths...)
}

type harness struct {
	store   *Store
	api     *fakeAPI
	storage *localstate.MemoryStore
	nav     *navRecorder
}

func newHarness(t *testing.T, api *fakeAPI, opts ...Option) *harness {
	t.Helper()
	h := &harness{api: api, storage: localstate.NewMemoryStore(), nav: &navRecorder{}}
	h.store = h.open(t, opts...)
	return h
}

// open builds a store over the harness storage; tests that preload storage
// call it directly.
func (h *harness) open(t *testing.T, opts ...Option) *Store {
	t.Helper()
	base := []Option{
		WithRunner(RunnerConfig{Workers: 4, MaxAttempts: 1, BaseBackoff: time.Millisecond}),
		WithRequestTimeout(2 * time.Second),
	}
	s, err := New(Deps{Client: h.api, Storage: h.storage, Logger: zerolog.Nop(), Navigator: h.nav}, append(base, opts...)...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

// do dispatches cmd and waits for it, returning the ticket error.
func (h *harness) do(t *testing.T, cmd Command) error {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	err := h.store.Dispatch(cmd).Wait(ctx)
	require.NotErrorIs(t, err, context.DeadlineExceeded, "dispatch %s did not settle", cmd.Name())
	return err
}

func plan(id, name, status string) client.Plan {
	return client.Plan{ID: client.ID(id), Name: name, Status: status}
}

func planIDs(c Collection[client.Plan]) []string {
	ids := make([]string, 0, len(c.Items))
	for _, p := range c.Items {
		ids = append(ids, p.ID.String())
	}
	return ids
}
