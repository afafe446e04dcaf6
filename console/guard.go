// Package console is the admin back office served over HTTP: a route guard
// in front of JSON page views and the mutation endpoints the pages call.
package console

import "strings"

const (
	LoginPath     = "/login"
	DashboardPath = "/dashboard"
)

// ProtectedPaths are the pages an operator reaches once logged in.
var ProtectedPaths = []string{"/", DashboardPath, "/users", "/subscriptions", "/plans", "/services"}

// Decision is the outcome of resolving a path. Exactly one of Allow,
// Redirect and NotFound is set.
type Decision struct {
	Allow    bool
	Redirect string
	NotFound bool
}

// Guard decides whether a path is reachable for the current session.
type Guard struct {
	protected map[string]bool
}

// NewGuard guards ProtectedPaths.
func NewGuard() Guard {
	g := Guard{protected: make(map[string]bool, len(ProtectedPaths))}
	for _, p := range ProtectedPaths {
		g.protected[p] = true
	}
	return g
}

// Resolve maps (path, authenticated) to a decision. Sub-paths such as
// /plans/7/status inherit the guard of their first segment. A redirect
// target always resolves to Allow under the same session.
func (g Guard) Resolve(path string, authenticated bool) Decision {
	root := section(path)
	if !authenticated {
		if root == LoginPath {
			return Decision{Allow: true}
		}
		return Decision{Redirect: LoginPath}
	}
	switch {
	case root == LoginPath || root == "/":
		return Decision{Redirect: DashboardPath}
	case g.protected[root]:
		return Decision{Allow: true}
	default:
		return Decision{NotFound: true}
	}
}

// section returns the first path segment with a leading slash.
func section(path string) string {
	p := strings.Trim(path, "/")
	if p == "" {
		return "/"
	}
	if i := strings.IndexByte(p, '/'); i >= 0 {
		p = p[:i]
	}
	return "/" + p
}
