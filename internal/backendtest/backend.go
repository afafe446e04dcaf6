// Package backendtest runs an in-memory stand-in for the admin REST backend
// on an httptest server. Tests across the console, MCP and CLI packages
// drive the real client and store against it.
package backendtest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gorilla/mux"

	"github.com/Akash8377/futuresoulmate-admin/client"
)

// Default admin account accepted by POST /login.
const (
	AdminEmail    = "admin@example.com"
	AdminPassword = "secret"
	AdminToken    = "test-token"
	AdminID       = "1"
)

// Backend is a fake admin API. Fields may be seeded before the first
// request; afterwards use the accessor methods.
type Backend struct {
	mu sync.Mutex

	Admin         client.User
	Users         []client.User
	Conversations []client.Conversation
	Notifications []client.Notification

	plans    collection[client.Plan, client.PlanPayload]
	services collection[client.PlanService, client.ServicePayload]
	subs     collection[client.Subscription, client.SubscriptionPayload]

	// Fail maps "METHOD /path" to a status code returned instead of the
	// normal response.
	Fail map[string]int

	requests []string
	srv      *httptest.Server
}

// New starts a backend seeded with the admin account and closes it when t
// ends.
func New(t testing.TB) *Backend {
	t.Helper()
	b := &Backend{
		Admin:         client.User{ID: AdminID, Email: AdminEmail, Username: "admin", FirstName: "Site", LastName: "Admin"},
		Users:         []client.User{},
		Conversations: []client.Conversation{},
		Notifications: []client.Notification{},
		Fail:          map[string]int{},
		plans: collection[client.Plan, client.PlanPayload]{
			build: func(id client.ID, p client.PlanPayload) client.Plan {
				refs := make([]client.PlanServiceRef, 0, len(p.Services))
				for _, s := range p.Services {
					refs = append(refs, client.PlanServiceRef{ID: s.ID, ServiceCount: s.Count})
				}
				return client.Plan{ID: id, Name: p.Name, Price: p.Price, Description: p.Description, Status: orActive(p.Status), Services: refs}
			},
			setStatus: func(p *client.Plan, s string) { p.Status = s },
		},
		services: collection[client.PlanService, client.ServicePayload]{
			build: func(id client.ID, p client.ServicePayload) client.PlanService {
				return client.PlanService{ID: id, Name: p.Name, Description: p.Description, Status: orActive(p.Status)}
			},
			setStatus: func(s *client.PlanService, st string) { s.Status = st },
		},
		subs: collection[client.Subscription, client.SubscriptionPayload]{
			build: func(id client.ID, p client.SubscriptionPayload) client.Subscription {
				return client.Subscription{
					ID: id, UserID: p.UserID, PlanName: p.PlanName, Price: p.Price,
					BillingCycle: p.BillingCycle, StartDate: client.Text(p.StartDate), EndDate: client.Text(p.EndDate),
					Status: orActive(p.Status), Features: p.Features,
				}
			},
		},
	}
	b.srv = httptest.NewServer(b.router())
	t.Cleanup(b.srv.Close)
	return b
}

// URL is the API base URL, including the /api prefix.
func (b *Backend) URL() string { return b.srv.URL + "/api" }

// SeedPlans replaces the plan table.
func (b *Backend) SeedPlans(items ...client.Plan) {
	b.mu.Lock()
	b.plans.seed(items)
	b.mu.Unlock()
}

// SeedServices replaces the service table.
func (b *Backend) SeedServices(items ...client.PlanService) {
	b.mu.Lock()
	b.services.seed(items)
	b.mu.Unlock()
}

// SeedSubscriptions replaces the subscription table.
func (b *Backend) SeedSubscriptions(items ...client.Subscription) {
	b.mu.Lock()
	b.subs.seed(items)
	b.mu.Unlock()
}

// Plans returns the stored plans.
func (b *Backend) Plans() []client.Plan {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.plans.snapshot()
}

// Services returns the stored services.
func (b *Backend) Services() []client.PlanService {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.services.snapshot()
}

// Subscriptions returns the stored subscriptions.
func (b *Backend) Subscriptions() []client.Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.subs.snapshot()
}

// FailWith makes "METHOD /path" answer status from now on.
func (b *Backend) FailWith(method, path string, status int) {
	b.mu.Lock()
	b.Fail[method+" "+path] = status
	b.mu.Unlock()
}

// Requests lists "METHOD /path" for every request received.
func (b *Backend) Requests() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.requests...)
}

func (b *Backend) router() http.Handler {
	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()
	api.Use(b.record)

	api.HandleFunc("/login", b.login).Methods(http.MethodPost)

	auth := api.NewRoute().Subrouter()
	auth.Use(b.authenticate)
	auth.HandleFunc("/user-details/{id}", b.userDetails).Methods(http.MethodGet)
	auth.HandleFunc("/admin/update/{id}", b.updateAdmin).Methods(http.MethodPut)
	auth.HandleFunc("/users/get-users", b.list("users", func() any { return b.Users })).Methods(http.MethodGet)
	auth.HandleFunc("/conversations", b.list("conversations", func() any { return b.Conversations })).Methods(http.MethodGet)
	auth.HandleFunc("/notifications", b.list("notifications", func() any { return b.Notifications })).Methods(http.MethodGet)
	auth.HandleFunc("/subscriptions/user/{id}", b.userSubscriptions).Methods(http.MethodGet)

	mount(auth, "/plans", &b.mu, &b.plans, true)
	mount(auth, "/plan-services", &b.mu, &b.services, true)
	mount(auth, "/subscriptions", &b.mu, &b.subs, false)
	return r
}

func (b *Backend) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Method + " " + strings.TrimPrefix(r.URL.Path, "/api")
		b.mu.Lock()
		b.requests = append(b.requests, key)
		status := b.Fail[key]
		b.mu.Unlock()
		if status != 0 {
			writeJSON(w, status, map[string]string{"message": fmt.Sprintf("injected %d", status)})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (b *Backend) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+AdminToken {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Unauthorized"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (b *Backend) login(w http.ResponseWriter, r *http.Request) {
	var creds client.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Invalid JSON"})
		return
	}
	if creds.Email != AdminEmail || creds.Password != AdminPassword {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Invalid credentials"})
		return
	}
	b.mu.Lock()
	admin := b.Admin
	b.mu.Unlock()
	writeJSON(w, http.StatusOK, map[string]any{"token": AdminToken, "data": []client.User{admin}})
}

func (b *Backend) userDetails(w http.ResponseWriter, r *http.Request) {
	id := client.ID(mux.Vars(r)["id"])
	b.mu.Lock()
	defer b.mu.Unlock()
	if id == b.Admin.ID {
		writeJSON(w, http.StatusOK, b.Admin)
		return
	}
	for _, u := range b.Users {
		if u.ID == id {
			writeJSON(w, http.StatusOK, u)
			return
		}
	}
	writeJSON(w, http.StatusNotFound, map[string]string{"message": "User not found"})
}

func (b *Backend) updateAdmin(w http.ResponseWriter, r *http.Request) {
	var req client.ProfileUpdate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Invalid JSON"})
		return
	}
	b.mu.Lock()
	b.Admin.Email = client.Text(req.Email)
	b.Admin.Username = client.Text(req.Username)
	admin := b.Admin
	b.mu.Unlock()
	writeJSON(w, http.StatusOK, map[string]any{"data": admin})
}

func (b *Backend) list(key string, items func() any) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		body := map[string]any{key: items()}
		b.mu.Unlock()
		writeJSON(w, http.StatusOK, body)
	}
}

func (b *Backend) userSubscriptions(w http.ResponseWriter, r *http.Request) {
	owner := client.ID(mux.Vars(r)["id"])
	b.mu.Lock()
	out := []client.Subscription{}
	for _, s := range b.subs.items {
		if s.UserID == owner {
			out = append(out, s)
		}
	}
	b.mu.Unlock()
	writeJSON(w, http.StatusOK, map[string]any{"data": out})
}

// collection is one CRUD table.
type collection[T client.Entity, P any] struct {
	items     []T
	next      int
	build     func(id client.ID, p P) T
	setStatus func(*T, string)
}

func (c *collection[T, P]) seed(items []T) {
	c.items = append([]T(nil), items...)
	c.next = len(items)
}

func (c *collection[T, P]) snapshot() []T { return append([]T(nil), c.items...) }

func (c *collection[T, P]) find(id client.ID) int {
	for i, it := range c.items {
		if it.EntityID() == id {
			return i
		}
	}
	return -1
}

func mount[T client.Entity, P any](r *mux.Router, path string, mu *sync.Mutex, c *collection[T, P], withStatus bool) {
	notFound := func(w http.ResponseWriter) {
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "Not found"})
	}
	r.HandleFunc(path, func(w http.ResponseWriter, _ *http.Request) {
		mu.Lock()
		items := c.snapshot()
		mu.Unlock()
		if items == nil {
			items = []T{}
		}
		writeJSON(w, http.StatusOK, map[string]any{"data": items})
	}).Methods(http.MethodGet)

	r.HandleFunc(path, func(w http.ResponseWriter, req *http.Request) {
		var p P
		if err := json.NewDecoder(req.Body).Decode(&p); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Invalid JSON"})
			return
		}
		mu.Lock()
		c.next++
		item := c.build(client.ID(fmt.Sprint(c.next+100)), p)
		c.items = append(c.items, item)
		mu.Unlock()
		writeJSON(w, http.StatusCreated, map[string]any{"data": item})
	}).Methods(http.MethodPost)

	r.HandleFunc(path+"/{id}", func(w http.ResponseWriter, req *http.Request) {
		mu.Lock()
		defer mu.Unlock()
		i := c.find(client.ID(mux.Vars(req)["id"]))
		if i < 0 {
			notFound(w)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"data": c.items[i]})
	}).Methods(http.MethodGet)

	r.HandleFunc(path+"/{id}", func(w http.ResponseWriter, req *http.Request) {
		var p P
		if err := json.NewDecoder(req.Body).Decode(&p); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Invalid JSON"})
			return
		}
		mu.Lock()
		defer mu.Unlock()
		id := client.ID(mux.Vars(req)["id"])
		i := c.find(id)
		if i < 0 {
			notFound(w)
			return
		}
		c.items[i] = c.build(id, p)
		writeJSON(w, http.StatusOK, map[string]any{"data": c.items[i]})
	}).Methods(http.MethodPut)

	r.HandleFunc(path+"/{id}", func(w http.ResponseWriter, req *http.Request) {
		mu.Lock()
		defer mu.Unlock()
		i := c.find(client.ID(mux.Vars(req)["id"]))
		if i < 0 {
			notFound(w)
			return
		}
		c.items = append(c.items[:i:i], c.items[i+1:]...)
		writeJSON(w, http.StatusOK, map[string]string{"message": "Deleted"})
	}).Methods(http.MethodDelete)

	if !withStatus {
		return
	}
	r.HandleFunc(path+"/{id}/status", func(w http.ResponseWriter, req *http.Request) {
		var body struct {
			Status string `json:"status"`
		}
		if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Invalid JSON"})
			return
		}
		mu.Lock()
		defer mu.Unlock()
		i := c.find(client.ID(mux.Vars(req)["id"]))
		if i < 0 {
			notFound(w)
			return
		}
		c.setStatus(&c.items[i], body.Status)
		writeJSON(w, http.StatusOK, map[string]any{"data": c.items[i]})
	}).Methods(http.MethodPatch)
}

func orActive(status string) string {
	if status == "" {
		return client.StatusActive
	}
	return status
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
