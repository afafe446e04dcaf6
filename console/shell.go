package console

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/Akash8377/futuresoulmate-admin/client"
	"github.com/Akash8377/futuresoulmate-admin/console/pages"
	"github.com/Akash8377/futuresoulmate-admin/console/recovery"
	"github.com/Akash8377/futuresoulmate-admin/console/respond"
	"github.com/Akash8377/futuresoulmate-admin/store"
)

// LogoutPath and HealthPath are reachable with or without a session.
const (
	LogoutPath = "/logout"
	HealthPath = "/healthz"
)

var errNotFound = errors.New("not found")

// NavLink is one sidebar entry.
type NavLink struct {
	Key      string    `json:"key"`
	Label    string    `json:"label"`
	Path     string    `json:"path,omitempty"`
	Active   bool      `json:"active"`
	Children []NavLink `json:"children,omitempty"`
}

// Header is the top bar of every protected page.
type Header struct {
	Title   string       `json:"title"`
	Profile *client.User `json:"profile,omitempty"`
}

// Layout wraps a page view with the sidebar and header.
type Layout struct {
	Sidebar []NavLink `json:"sidebar"`
	Header  Header    `json:"header"`
	Page    any       `json:"page"`
}

// LoginView is the public login page.
type LoginView struct {
	Title   string `json:"title"`
	Loading bool   `json:"loading"`
	Error   string `json:"error,omitempty"`
}

var sidebar = []NavLink{
	{Key: "dashboard", Label: "Dashboard", Path: DashboardPath},
	{Key: "users", Label: "Users", Path: "/users"},
	{Key: "subscriptions", Label: "Subscriptions", Children: []NavLink{
		{Key: "plans", Label: "Subscription Plans", Path: "/plans"},
		{Key: "services", Label: "Subscription Services", Path: "/services"},
		{Key: "all-subscriptions", Label: "All Subscriptions", Path: "/subscriptions"},
	}},
}

// Shell serves the console. Page views and mutations go through the same
// store the CLI and MCP surfaces drive.
type Shell struct {
	st      pages.Store
	guard   Guard
	history *History
	log     zerolog.Logger
	health  http.Handler
	handler http.Handler
}

// ShellOption configures a Shell.
type ShellOption func(*Shell)

// WithHealth serves h at HealthPath.
func WithHealth(h http.Handler) ShellOption {
	return func(s *Shell) { s.health = h }
}

// NewShell builds the router. history should be the navigator the store
// was built with; it may be nil.
func NewShell(st pages.Store, history *History, log zerolog.Logger, opts ...ShellOption) *Shell {
	if history == nil {
		history = &History{}
	}
	s := &Shell{
		st:      st,
		guard:   NewGuard(),
		history: history,
		log:     log.With().Str("component", "console").Logger(),
	}
	for _, opt := range opts {
		opt(s)
	}

	r := mux.NewRouter()
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respond.WriteNotFound(w, "page not found")
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respond.WriteError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	r.HandleFunc(LoginPath, s.loginPage).Methods("GET")
	r.HandleFunc(LoginPath, s.login).Methods("POST")
	r.HandleFunc(LogoutPath, s.logout).Methods("POST")
	if s.health != nil {
		r.Handle(HealthPath, s.health).Methods("GET", "HEAD")
	}

	r.HandleFunc(DashboardPath, s.dashboard).Methods("GET")
	r.HandleFunc("/users", s.users).Methods("GET")
	r.HandleFunc("/subscriptions", s.subscriptions).Methods("GET")
	r.HandleFunc("/plans", s.plans).Methods("GET")
	r.HandleFunc("/services", s.services).Methods("GET")

	planRoutes := crudRoute[client.Plan, client.PlanPayload, *pages.PlansPage]{
		shell: s,
		res:   store.Plans,
		open:  pages.NewPlansPage,
		view:  func(p *pages.PlansPage) any { return p.View() },
		toggle: func(p *pages.PlansPage, id client.ID) (*store.Ticket, error) {
			return p.ToggleStatus(id)
		},
	}
	planRoutes.mount(r, "/plans")

	serviceRoutes := crudRoute[client.PlanService, client.ServicePayload, *pages.ServicesPage]{
		shell: s,
		res:   store.Services,
		open:  pages.NewServicesPage,
		view:  func(p *pages.ServicesPage) any { return p.View() },
		toggle: func(p *pages.ServicesPage, id client.ID) (*store.Ticket, error) {
			return p.ToggleStatus(id)
		},
	}
	serviceRoutes.mount(r, "/services")

	subscriptionRoutes := crudRoute[client.Subscription, client.SubscriptionPayload, *pages.SubscriptionsPage]{
		shell: s,
		res:   store.Subscriptions,
		open:  pages.NewSubscriptionsPage,
		view:  func(p *pages.SubscriptionsPage) any { return p.View() },
	}
	subscriptionRoutes.mount(r, "/subscriptions")

	s.handler = recovery.Middleware(s.log)(s.guarded(r))
	return s
}

// ServeHTTP implements http.Handler.
func (s *Shell) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

// guarded applies the route guard before the router sees the request, so
// unknown paths redirect to the login page too. Reads are redirected;
// anonymous writes get 401.
func (s *Shell) guarded(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == LogoutPath || (r.URL.Path == HealthPath && s.health != nil) {
			next.ServeHTTP(w, r)
			return
		}
		d := s.guard.Resolve(r.URL.Path, s.st.State().Session.IsAuthenticated())
		switch {
		case d.Allow:
			next.ServeHTTP(w, r)
		case d.NotFound:
			respond.WriteNotFound(w, "page not found")
		case r.Method == http.MethodGet || r.Method == http.MethodHead:
			http.Redirect(w, r, d.Redirect, http.StatusFound)
		case d.Redirect == LoginPath:
			respond.WriteUnauthorized(w, "login required")
		default:
			http.Redirect(w, r, d.Redirect, http.StatusSeeOther)
		}
	})
}

func (s *Shell) loginPage(w http.ResponseWriter, r *http.Request) {
	sess := s.st.State().Session
	respond.WriteJSON(w, http.StatusOK, LoginView{Title: "Login", Loading: sess.Loading, Error: sess.ErrMessage()})
}

// login POST /login
func (s *Shell) login(w http.ResponseWriter, r *http.Request) {
	var creds client.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	if err := s.st.Dispatch(store.Login(creds)).Wait(r.Context()); err != nil {
		respond.WriteStoreError(w, err, "Login failed")
		return
	}
	to := s.history.Last()
	if to == "" {
		to = DashboardPath
	}
	respond.WriteJSON(w, http.StatusOK, map[string]any{
		"redirect": to,
		"profile":  s.st.State().Session.Profile,
	})
}

// logout POST /logout
func (s *Shell) logout(w http.ResponseWriter, r *http.Request) {
	if err := s.st.Dispatch(store.Logout()).Wait(r.Context()); err != nil {
		respond.WriteStoreError(w, err, "Logout failed")
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]string{"redirect": LoginPath})
}

// dashboard GET /dashboard
func (s *Shell) dashboard(w http.ResponseWriter, r *http.Request) {
	p := pages.NewDashboardPage(s.st)
	// Failed fetches surface as per-slice errors in the state.
	_ = p.Mount().Wait(r.Context())
	s.render(w, r, p.Analytics())
}

// users GET /users?search=&gender=&id=
func (s *Shell) users(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	p := pages.NewUsersPage(s.st)
	p.SetSearch(q.Get("search"))
	p.SetGender(q.Get("gender"))
	_ = p.Mount().Wait(r.Context())
	if id := q.Get("id"); id != "" && !p.Select(client.ID(id)) {
		respond.WriteNotFound(w, "user "+id+" not found")
		return
	}
	s.render(w, r, p.View())
}

// subscriptions GET /subscriptions?search=&status=&user=
func (s *Shell) subscriptions(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	p := pages.NewSubscriptionsPage(s.st)
	p.SetSearch(q.Get("search"))
	p.SetStatus(q.Get("status"))
	t := p.Mount()
	if user := q.Get("user"); user != "" {
		_ = t.Wait(r.Context())
		t = p.ForUser(client.ID(user))
	}
	_ = t.Wait(r.Context())
	s.render(w, r, p.View())
}

// plans GET /plans
func (s *Shell) plans(w http.ResponseWriter, r *http.Request) {
	p := pages.NewPlansPage(s.st)
	_ = p.Mount().Wait(r.Context())
	s.render(w, r, p.View())
}

// services GET /services
func (s *Shell) services(w http.ResponseWriter, r *http.Request) {
	p := pages.NewServicesPage(s.st)
	_ = p.Mount().Wait(r.Context())
	s.render(w, r, p.View())
}

// render wraps page in the layout, loading the operator's profile for the
// header the first time.
func (s *Shell) render(w http.ResponseWriter, r *http.Request, page any) {
	if !s.st.State().Session.ProfileLoaded() {
		if err := s.st.Dispatch(store.FetchProfile()).Wait(r.Context()); err != nil {
			s.log.Debug().Err(err).Msg("header profile unavailable")
		}
	}
	st := s.st.State()
	respond.WriteJSON(w, http.StatusOK, Layout{
		Sidebar: activeLinks(sidebar, section(r.URL.Path)),
		Header:  Header{Title: st.Heading, Profile: st.Session.Profile},
		Page:    page,
	})
}

func activeLinks(links []NavLink, current string) []NavLink {
	out := make([]NavLink, len(links))
	for i, l := range links {
		l.Children = activeLinks(l.Children, current)
		l.Active = l.Path == current
		for _, c := range l.Children {
			l.Active = l.Active || c.Active
		}
		out[i] = l
	}
	return out
}

// editor is the form and delete flow the CRUD pages share.
type editor[P any] interface {
	OpenCreate()
	OpenEdit(id client.ID) error
	Submit(ctx context.Context, p P) error
	RequestDelete(id client.ID) error
	ConfirmDelete(ctx context.Context) error
}

// crudRoute mounts the mutation endpoints of one resource. Each request
// drives a fresh page controller, so concurrent requests never share
// form state.
type crudRoute[T client.Entity, P any, E editor[P]] struct {
	shell  *Shell
	res    *store.Resource[T, P]
	open   func(pages.Store) E
	view   func(E) any
	toggle func(E, client.ID) (*store.Ticket, error)
}

func (c crudRoute[T, P, E]) mount(r *mux.Router, path string) {
	r.HandleFunc(path, c.create).Methods("POST")
	r.HandleFunc(path+"/{id}", c.update).Methods("PUT")
	r.HandleFunc(path+"/{id}", c.remove).Methods("DELETE")
	if c.toggle != nil {
		r.HandleFunc(path+"/{id}/status", c.toggleStatus).Methods("POST")
	}
}

func (c crudRoute[T, P, E]) create(w http.ResponseWriter, r *http.Request) {
	var payload P
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	p := c.open(c.shell.st)
	p.OpenCreate()
	if err := p.Submit(r.Context(), payload); err != nil {
		respond.WriteStoreError(w, err, "Failed to create "+c.res.Name())
		return
	}
	respond.WriteJSON(w, http.StatusCreated, c.view(p))
}

func (c crudRoute[T, P, E]) update(w http.ResponseWriter, r *http.Request) {
	var payload P
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	id := client.ID(mux.Vars(r)["id"])
	if !c.located(w, r, id) {
		return
	}
	p := c.open(c.shell.st)
	if err := p.OpenEdit(id); err != nil {
		respond.WriteNotFound(w, err.Error())
		return
	}
	if err := p.Submit(r.Context(), payload); err != nil {
		respond.WriteStoreError(w, err, "Failed to update "+c.res.Name())
		return
	}
	respond.WriteJSON(w, http.StatusOK, c.view(p))
}

func (c crudRoute[T, P, E]) remove(w http.ResponseWriter, r *http.Request) {
	id := client.ID(mux.Vars(r)["id"])
	if !c.located(w, r, id) {
		return
	}
	p := c.open(c.shell.st)
	if err := p.RequestDelete(id); err != nil {
		respond.WriteNotFound(w, err.Error())
		return
	}
	if err := p.ConfirmDelete(r.Context()); err != nil {
		respond.WriteStoreError(w, err, "Failed to delete "+c.res.Name())
		return
	}
	respond.WriteJSON(w, http.StatusOK, c.view(p))
}

func (c crudRoute[T, P, E]) toggleStatus(w http.ResponseWriter, r *http.Request) {
	id := client.ID(mux.Vars(r)["id"])
	if !c.located(w, r, id) {
		return
	}
	p := c.open(c.shell.st)
	t, err := c.toggle(p, id)
	if err != nil {
		respond.WriteNotFound(w, err.Error())
		return
	}
	if err := t.Wait(r.Context()); err != nil {
		respond.WriteStoreError(w, err, "Failed to update "+c.res.Name()+" status")
		return
	}
	respond.WriteJSON(w, http.StatusOK, c.view(p))
}

// located makes sure id is in the loaded collection, fetching it once if
// the page was never mounted. It writes the error response and returns
// false otherwise.
func (c crudRoute[T, P, E]) located(w http.ResponseWriter, r *http.Request, id client.ID) bool {
	err := c.find(r.Context(), id)
	switch {
	case err == nil:
		return true
	case errors.Is(err, errNotFound):
		respond.WriteNotFound(w, c.res.Name()+" "+id.String()+" not found")
	default:
		respond.WriteStoreError(w, err, "Failed to fetch "+c.res.Name())
	}
	return false
}

func (c crudRoute[T, P, E]) find(ctx context.Context, id client.ID) error {
	st := c.shell.st
	if _, idx := c.res.Of(st.State()).Find(id); idx >= 0 {
		return nil
	}
	if err := st.Dispatch(c.res.FetchAll()).Wait(ctx); err != nil {
		return err
	}
	if _, idx := c.res.Of(st.State()).Find(id); idx < 0 {
		return errNotFound
	}
	return nil
}
