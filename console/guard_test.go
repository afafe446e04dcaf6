package console

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGuardResolve(t *testing.T) {
	g := NewGuard()
	cases := []struct {
		path string
		auth bool
		want Decision
	}{
		{"/login", false, Decision{Allow: true}},
		{"/login/", false, Decision{Allow: true}},
		{"/", false, Decision{Redirect: LoginPath}},
		{"/dashboard", false, Decision{Redirect: LoginPath}},
		{"/plans/7/status", false, Decision{Redirect: LoginPath}},
		{"/nowhere", false, Decision{Redirect: LoginPath}},

		{"/login", true, Decision{Redirect: DashboardPath}},
		{"/", true, Decision{Redirect: DashboardPath}},
		{"", true, Decision{Redirect: DashboardPath}},
		{"/dashboard", true, Decision{Allow: true}},
		{"/users", true, Decision{Allow: true}},
		{"/subscriptions/", true, Decision{Allow: true}},
		{"/plans/7/status", true, Decision{Allow: true}},
		{"/services", true, Decision{Allow: true}},
		{"/nowhere", true, Decision{NotFound: true}},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, g.Resolve(c.path, c.auth), "%q auth=%v", c.path, c.auth)
	}
}

func TestGuardRedirectTargetsAreReachable(t *testing.T) {
	g := NewGuard()
	paths := append([]string{"/login", "/nowhere", "/plans/1"}, ProtectedPaths...)
	for _, auth := range []bool{false, true} {
		for _, p := range paths {
			d := g.Resolve(p, auth)
			if d.Redirect == "" {
				continue
			}
			assert.True(t, g.Resolve(d.Redirect, auth).Allow, "%q -> %q loops (auth=%v)", p, d.Redirect, auth)
		}
	}
}

func TestHistory(t *testing.T) {
	var h History
	assert.Empty(t, h.Last())
	h.Navigate("/dashboard")
	h.Navigate("/plans")
	assert.Equal(t, "/plans", h.Last())
	assert.Equal(t, []string{"/dashboard", "/plans"}, h.Paths())
}
