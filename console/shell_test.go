package console

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Akash8377/futuresoulmate-admin/client"
	"github.com/Akash8377/futuresoulmate-admin/console/respond"
	"github.com/Akash8377/futuresoulmate-admin/internal/backendtest"
	"github.com/Akash8377/futuresoulmate-admin/store"
)

type shellHarness struct {
	t       *testing.T
	backend *backendtest.Backend
	store   *store.Store
	shell   *Shell
}

func newShell(t *testing.T, loggedIn bool) *shellHarness {
	t.Helper()
	b := backendtest.New(t)
	b.SeedPlans(
		client.Plan{ID: "1", Name: "Gold", Price: 499, Status: "active"},
		client.Plan{ID: "2", Name: "Silver", Price: 199, Status: "inactive"},
	)
	b.SeedServices(client.PlanService{ID: "5", Name: "Chat", Status: "active"})
	hist := &History{}
	var st *store.Store
	if loggedIn {
		st, _ = b.LoggedIn(t, store.WithNavigator(hist))
	} else {
		st, _ = b.Store(t, store.WithNavigator(hist))
	}
	return &shellHarness{t: t, backend: b, store: st, shell: NewShell(st, hist, zerolog.Nop())}
}

func (h *shellHarness) request(method, path string, body any) *httptest.ResponseRecorder {
	h.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(h.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	rr := httptest.NewRecorder()
	h.shell.ServeHTTP(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&v), rr.Body.String())
	return v
}

type layoutOf[P any] struct {
	Sidebar []NavLink `json:"sidebar"`
	Header  Header    `json:"header"`
	Page    P         `json:"page"`
}

func TestShellAnonymous(t *testing.T) {
	h := newShell(t, false)

	rr := h.request(http.MethodGet, "/plans", nil)
	assert.Equal(t, http.StatusFound, rr.Code)
	assert.Equal(t, LoginPath, rr.Header().Get("Location"))

	rr = h.request(http.MethodGet, "/nowhere", nil)
	assert.Equal(t, http.StatusFound, rr.Code)
	assert.Equal(t, LoginPath, rr.Header().Get("Location"))

	rr = h.request(http.MethodPost, "/plans", map[string]any{"name": "x", "price": 1})
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	rr = h.request(http.MethodGet, LoginPath, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Login", decode[LoginView](t, rr).Title)

	assert.Empty(t, h.backend.Requests(), "anonymous requests never reach the backend")
}

func TestShellLoginAndLogout(t *testing.T) {
	h := newShell(t, false)

	rr := h.request(http.MethodPost, LoginPath, client.Credentials{Email: backendtest.AdminEmail, Password: "wrong"})
	require.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "Invalid credentials", decode[respond.ErrorResponse](t, rr).Message)

	rr = h.request(http.MethodPost, LoginPath, client.Credentials{Email: " ", Password: ""})
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = h.request(http.MethodPost, LoginPath, client.Credentials{Email: backendtest.AdminEmail, Password: backendtest.AdminPassword})
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, DashboardPath, decode[map[string]any](t, rr)["redirect"])
	assert.True(t, h.store.State().Session.IsAuthenticated())

	for _, p := range []string{LoginPath, "/"} {
		rr = h.request(http.MethodGet, p, nil)
		assert.Equal(t, http.StatusFound, rr.Code, p)
		assert.Equal(t, DashboardPath, rr.Header().Get("Location"), p)
	}
	assert.Equal(t, http.StatusNotFound, h.request(http.MethodGet, "/nowhere", nil).Code)

	rr = h.request(http.MethodPost, LogoutPath, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.False(t, h.store.State().Session.IsAuthenticated())
	assert.Equal(t, http.StatusFound, h.request(http.MethodGet, DashboardPath, nil).Code)

	// A second logout is harmless.
	assert.Equal(t, http.StatusOK, h.request(http.MethodPost, LogoutPath, nil).Code)
}

func TestShellPlansLayout(t *testing.T) {
	h := newShell(t, true)

	rr := h.request(http.MethodGet, "/plans", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	l := decode[layoutOf[struct {
		Items    []client.Plan        `json:"items"`
		Services []client.PlanService `json:"services"`
	}]](t, rr)

	assert.Equal(t, "Subscription Plans", l.Header.Title)
	require.NotNil(t, l.Header.Profile)
	assert.Equal(t, client.Text("admin"), l.Header.Profile.Username)
	assert.Len(t, l.Page.Items, 2)
	assert.Len(t, l.Page.Services, 1)

	require.Len(t, l.Sidebar, 3)
	assert.False(t, l.Sidebar[0].Active)
	assert.True(t, l.Sidebar[2].Active, "the subscriptions group contains /plans")
	assert.True(t, l.Sidebar[2].Children[0].Active)
}

func TestShellPlanMutations(t *testing.T) {
	h := newShell(t, true)

	// Update before the page was ever loaded fetches the collection first.
	rr := h.request(http.MethodPut, "/plans/1", client.PlanPayload{Name: "Gold+", Price: 599})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.Equal(t, "Gold+", h.store.State().Plans.Items[0].Name)

	rr = h.request(http.MethodPost, "/plans", client.PlanPayload{Name: "Bronze", Price: 99})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	assert.Len(t, h.backend.Plans(), 3)
	assert.Equal(t, "Bronze", h.store.State().Plans.Items[0].Name)

	rr = h.request(http.MethodPost, "/plans", client.PlanPayload{Price: 99})
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = h.request(http.MethodPost, "/plans/2/status", nil)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	p, idx := store.Plans.Of(h.store.State()).Find("2")
	require.GreaterOrEqual(t, idx, 0)
	assert.Equal(t, "active", p.Status)

	rr = h.request(http.MethodDelete, "/plans/2", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	_, idx = store.Plans.Of(h.store.State()).Find("2")
	assert.Equal(t, -1, idx)

	assert.Equal(t, http.StatusNotFound, h.request(http.MethodDelete, "/plans/404", nil).Code)
	assert.Equal(t, http.StatusNotFound, h.request(http.MethodPost, "/subscriptions/1/status", nil).Code)
}

func TestShellBackendRejection(t *testing.T) {
	h := newShell(t, true)
	h.backend.FailWith(http.MethodDelete, "/plan-services/5", http.StatusConflict)

	rr := h.request(http.MethodDelete, "/services/5", nil)
	require.Equal(t, http.StatusConflict, rr.Code)
	assert.Equal(t, "injected 409", decode[respond.ErrorResponse](t, rr).Message)
	assert.Len(t, h.store.State().Services.Items, 1, "a failed delete keeps the item")
}

func TestShellDashboardSurvivesFailedFetch(t *testing.T) {
	h := newShell(t, true)
	h.backend.FailWith(http.MethodGet, "/conversations", http.StatusInternalServerError)

	rr := h.request(http.MethodGet, DashboardPath, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	l := decode[layoutOf[struct {
		Cards []struct {
			Title string `json:"title"`
		} `json:"cards"`
	}]](t, rr)
	assert.Equal(t, "Dashboard", l.Header.Title)
	assert.NotEmpty(t, l.Page.Cards)
	assert.NotEmpty(t, h.store.State().Conversations.ErrMessage())
}

func TestShellHealthBypassesGuard(t *testing.T) {
	h := newShell(t, false)
	rr := h.request(http.MethodGet, HealthPath, nil)
	assert.Equal(t, http.StatusFound, rr.Code, "without a health handler the path is guarded")

	h.shell = NewShell(h.store, nil, zerolog.Nop(), WithHealth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respond.WriteJSON(w, http.StatusOK, map[string]string{"status": "UP"})
	})))
	rr = h.request(http.MethodGet, HealthPath, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "UP", decode[map[string]string](t, rr)["status"])
	assert.Empty(t, h.backend.Requests())
}
