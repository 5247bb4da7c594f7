// Package routes composes client views with the auth-state predicates.
// The guards here are UI conveniences; the authoritative enforcement is
// always server-side.
package routes

import (
	"sync"
)

// HomePath is where failed guards redirect to
const HomePath = "/"

// View renders a client view
type View interface {
	Render() string
}

// ViewFunc adapts a plain function to the View interface
type ViewFunc func() string

// Render implements View
func (f ViewFunc) Render() string {
	return f()
}

// Shell wraps a rendered view in the common page chrome
type Shell func(content string) string

// Auth is the subset of the auth-state manager the guards consume
type Auth interface {
	IsAuthenticated() bool
	IsAdmin() bool
}

// LazyView defers loading a view module until Load is called. Until then,
// rendering shows the loading fallback.
type LazyView struct {
	mu       sync.Mutex
	load     func() View
	view     View
	fallback string
}

// NewLazyView creates a lazy view with the given loader and fallback
func NewLazyView(load func() View, fallback string) *LazyView {
	return &LazyView{load: load, fallback: fallback}
}

// Load fetches the underlying view module. Subsequent calls are no-ops.
func (l *LazyView) Load() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.view == nil {
		l.view = l.load()
	}
}

// Render shows the view once loaded, the fallback before that
func (l *LazyView) Render() string {
	l.mu.Lock()
	view := l.view
	l.mu.Unlock()

	if view == nil {
		return l.fallback
	}
	return view.Render()
}

// guardedView renders its view only when allow passes; otherwise the router
// follows the redirect.
type guardedView struct {
	allow    func() bool
	view     View
	redirect string
}

func (g *guardedView) Render() string {
	return g.view.Render()
}

// Authenticated renders the view inside the shell iff the session predicate
// passes; otherwise redirects home.
func Authenticated(auth Auth, shell Shell, v View) View {
	return &guardedView{
		allow:    auth.IsAuthenticated,
		view:     shellView{shell: shell, view: v},
		redirect: HomePath,
	}
}

// AdminOnly renders the view inside the shell iff the stored claims carry
// the admin role; otherwise redirects home.
func AdminOnly(auth Auth, shell Shell, v View) View {
	return &guardedView{
		allow:    auth.IsAdmin,
		view:     shellView{shell: shell, view: v},
		redirect: HomePath,
	}
}

// LoggedOutOnly renders the view iff there is no live session (login and
// signup forms); otherwise redirects home.
func LoggedOutOnly(auth Auth, v View) View {
	return &guardedView{
		allow:    func() bool { return !auth.IsAuthenticated() },
		view:     v,
		redirect: HomePath,
	}
}

// shellView wraps a view's output in the page chrome
type shellView struct {
	shell Shell
	view  View
}

func (s shellView) Render() string {
	if s.shell == nil {
		return s.view.Render()
	}
	return s.shell(s.view.Render())
}

// Router maps paths to views and resolves guards on render
type Router struct {
	mu       sync.Mutex
	views    map[string]View
	notFound View
	current  string
}

// NewRouter creates a router positioned at the home path
func NewRouter(notFound View) *Router {
	return &Router{
		views:    make(map[string]View),
		notFound: notFound,
		current:  HomePath,
	}
}

// Handle registers a view for a path
func (r *Router) Handle(path string, v View) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.views[path] = v
}

// Navigate moves the router to the given path
func (r *Router) Navigate(path string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.current = path
}

// Current returns the path the router is at, after any guard redirects
// applied by the last Render.
func (r *Router) Current() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}

// Render resolves the current path to a view, following guard redirects,
// and renders it. Guard chains are short, so a small hop budget guards
// against accidental redirect cycles.
func (r *Router) Render() string {
	r.mu.Lock()
	defer r.mu.Unlock()

	for hop := 0; hop < 4; hop++ {
		v, ok := r.views[r.current]
		if !ok {
			return r.notFound.Render()
		}

		g, guarded := v.(*guardedView)
		if !guarded {
			return v.Render()
		}
		if g.allow() {
			return g.Render()
		}
		if r.current == g.redirect {
			return r.notFound.Render()
		}
		r.current = g.redirect
	}

	return r.notFound.Render()
}
