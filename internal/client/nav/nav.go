// Package nav routes between screens and guards each route with an
// auth policy. The guard runs before a screen is constructed and again
// whenever the session changes, so a logout while a protected screen is
// mounted redirects immediately.
package nav

import (
	"sync"
)

// Route names, mirroring the app's screen map.
const (
	RouteLogin     = "/login"
	RouteRegister  = "/register"
	RouteHome      = "/home"
	RouteAdd       = "/add"
	RouteHistory   = "/history"
	RouteAnalytics = "/analytics"
	RouteBadges    = "/badges"
	RouteChallenge = "/daily-challenge"
	RouteProfile   = "/profile"
)

// Policy is the per-route auth configuration.
type Policy struct {
	// RequireAuth protects the route from anonymous sessions.
	RequireAuth bool
	// RedirectTo receives unauthenticated visitors. Empty means RouteLogin.
	RedirectTo string
}

// DefaultPolicy is what unregistered routes get: protected, redirecting
// to login.
func DefaultPolicy() Policy {
	return Policy{RequireAuth: true, RedirectTo: RouteLogin}
}

// Session is the slice of session state the gate needs.
type Session interface {
	Hydrated() bool
	IsAuthenticated() bool
}

// Decision is the gate's verdict for a route.
type Decision int

const (
	// Wait means the session is still rehydrating; render a neutral
	// loading indicator and make no redirect decision yet.
	Wait Decision = iota
	// Render means the route may show its screen.
	Render
	// Redirect means navigate away and render nothing.
	Redirect
)

// Resolution is a Decision plus the redirect target when applicable.
type Resolution struct {
	Decision Decision
	Target   string
}

// Resolve applies the gate algorithm for one route policy.
func Resolve(sess Session, p Policy) Resolution {
	if !sess.Hydrated() {
		return Resolution{Decision: Wait}
	}
	if p.RequireAuth && !sess.IsAuthenticated() {
		target := p.RedirectTo
		if target == "" {
			target = RouteLogin
		}
		return Resolution{Decision: Redirect, Target: target}
	}
	// Anonymous-only routes (login, register) bounce authenticated
	// users to the fixed home route.
	if !p.RequireAuth && sess.IsAuthenticated() {
		return Resolution{Decision: Redirect, Target: RouteHome}
	}
	return Resolution{Decision: Render}
}

// Navigator owns the route registry and the current location. Go is
// fire-and-forget: the departing screen is simply not rendered again.
type Navigator struct {
	mu        sync.Mutex
	sess      Session
	routes    map[string]Policy
	current   string
	listeners []func(route string)
}

// New returns a Navigator gated by sess, positioned at RouteLogin.
func New(sess Session) *Navigator {
	return &Navigator{
		sess:    sess,
		routes:  make(map[string]Policy),
		current: RouteLogin,
	}
}

// Register sets the policy for a route. Routes never registered fall
// back to DefaultPolicy.
func (n *Navigator) Register(route string, p Policy) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.routes[route] = p
}

// PolicyFor returns the effective policy for a route.
func (n *Navigator) PolicyFor(route string) Policy {
	n.mu.Lock()
	defer n.mu.Unlock()
	if p, ok := n.routes[route]; ok {
		return p
	}
	return DefaultPolicy()
}

// Current returns the current route.
func (n *Navigator) Current() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current
}

// OnChange registers fn to run after every landed navigation.
func (n *Navigator) OnChange(fn func(route string)) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.listeners = append(n.listeners, fn)
}

// Go navigates to route, applying the guard before the screen is
// constructed. Redirects are followed (bounded, in case of a policy
// cycle) and the landed route is returned. While the session is
// rehydrating the location changes but the caller must keep rendering
// the loading state until ReEvaluate.
func (n *Navigator) Go(route string) string {
	for hops := 0; hops < 4; hops++ {
		res := Resolve(n.sess, n.PolicyFor(route))
		if res.Decision != Redirect {
			break
		}
		route = res.Target
	}

	n.mu.Lock()
	n.current = route
	listeners := make([]func(string), len(n.listeners))
	copy(listeners, n.listeners)
	n.mu.Unlock()

	for _, fn := range listeners {
		fn(route)
	}
	return route
}

// ReEvaluate re-runs the guard for the current route. Wire it to the
// session store's change notifications: a logout or 401 while a
// protected screen is mounted lands back on login.
func (n *Navigator) ReEvaluate() string {
	return n.Go(n.Current())
}

// Resolution returns the gate verdict for the current route, used by
// the renderer to pick between loading state and screen body.
func (n *Navigator) Resolution() Resolution {
	return Resolve(n.sess, n.PolicyFor(n.Current()))
}
