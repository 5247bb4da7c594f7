package routes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeAuth struct {
	authenticated bool
	admin         bool
}

func (f *fakeAuth) IsAuthenticated() bool { return f.authenticated }
func (f *fakeAuth) IsAdmin() bool         { return f.admin }

func staticView(s string) View {
	return ViewFunc(func() string { return s })
}

func testShell(content string) string {
	return "[shell]" + content
}

func newTestRouter(auth *fakeAuth) *Router {
	r := NewRouter(staticView("not found"))
	r.Handle(HomePath, staticView("home"))
	r.Handle("/login", LoggedOutOnly(auth, staticView("login")))
	r.Handle("/dashboard", Authenticated(auth, testShell, staticView("dashboard")))
	r.Handle("/inventory", AdminOnly(auth, testShell, staticView("inventory")))
	return r
}

func TestRouter_GuardedNavigation(t *testing.T) {
	tests := []struct {
		name         string
		auth         fakeAuth
		path         string
		expected     string
		expectedPath string
	}{
		{
			name:         "anonymous home",
			path:         HomePath,
			expected:     "home",
			expectedPath: HomePath,
		},
		{
			name:         "anonymous login form",
			path:         "/login",
			expected:     "login",
			expectedPath: "/login",
		},
		{
			name:         "anonymous redirected from dashboard",
			path:         "/dashboard",
			expected:     "home",
			expectedPath: HomePath,
		},
		{
			name:         "authenticated dashboard in shell",
			auth:         fakeAuth{authenticated: true},
			path:         "/dashboard",
			expected:     "[shell]dashboard",
			expectedPath: "/dashboard",
		},
		{
			name:         "authenticated redirected from login form",
			auth:         fakeAuth{authenticated: true},
			path:         "/login",
			expected:     "home",
			expectedPath: HomePath,
		},
		{
			name:         "non-admin redirected from inventory",
			auth:         fakeAuth{authenticated: true},
			path:         "/inventory",
			expected:     "home",
			expectedPath: HomePath,
		},
		{
			name:         "admin inventory in shell",
			auth:         fakeAuth{authenticated: true, admin: true},
			path:         "/inventory",
			expected:     "[shell]inventory",
			expectedPath: "/inventory",
		},
		{
			name:         "unknown path",
			path:         "/nope",
			expected:     "not found",
			expectedPath: "/nope",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(&tt.auth)
			router.Navigate(tt.path)

			assert.Equal(t, tt.expected, router.Render())
			assert.Equal(t, tt.expectedPath, router.Current())
		})
	}
}

func TestRouter_RedirectTargetGuarded(t *testing.T) {
	auth := &fakeAuth{}

	// Home itself guarded and failing would cycle; the hop budget bails out
	r := NewRouter(staticView("not found"))
	r.Handle(HomePath, Authenticated(auth, nil, staticView("home")))
	r.Handle("/dashboard", Authenticated(auth, nil, staticView("dashboard")))
	r.Navigate("/dashboard")

	assert.Equal(t, "not found", r.Render())
}

func TestLazyView(t *testing.T) {
	loads := 0
	lazy := NewLazyView(func() View {
		loads++
		return staticView("loaded")
	}, "loading...")

	assert.Equal(t, "loading...", lazy.Render())

	lazy.Load()
	lazy.Load()

	assert.Equal(t, "loaded", lazy.Render())
	assert.Equal(t, 1, loads)
}

func TestLoggedOutOnly_NoShell(t *testing.T) {
	auth := &fakeAuth{}
	r := NewRouter(staticView("not found"))
	r.Handle("/login", LoggedOutOnly(auth, staticView("login")))
	r.Navigate("/login")

	// Login renders bare, without the page chrome
	assert.Equal(t, "login", r.Render())
}
