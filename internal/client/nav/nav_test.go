package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// fakeSession implements Session with fixed answers.
type fakeSession struct {
	hydrated bool
	authed   bool
}

func (f *fakeSession) Hydrated() bool        { return f.hydrated }
func (f *fakeSession) IsAuthenticated() bool { return f.authed }

func TestResolve_WaitWhileRehydrating(t *testing.T) {
	sess := &fakeSession{hydrated: false, authed: false}
	res := Resolve(sess, DefaultPolicy())
	assert.Equal(t, Wait, res.Decision)
	assert.Empty(t, res.Target)
}

func TestResolve_ProtectedRouteRedirectsAnonymous(t *testing.T) {
	sess := &fakeSession{hydrated: true, authed: false}

	res := Resolve(sess, DefaultPolicy())
	assert.Equal(t, Redirect, res.Decision)
	assert.Equal(t, RouteLogin, res.Target)

	res = Resolve(sess, Policy{RequireAuth: true, RedirectTo: "/welcome"})
	assert.Equal(t, "/welcome", res.Target)

	// Empty RedirectTo falls back to login.
	res = Resolve(sess, Policy{RequireAuth: true})
	assert.Equal(t, RouteLogin, res.Target)
}

func TestResolve_AnonymousOnlyRouteRedirectsAuthenticated(t *testing.T) {
	sess := &fakeSession{hydrated: true, authed: true}
	res := Resolve(sess, Policy{RequireAuth: false})
	assert.Equal(t, Redirect, res.Decision)
	assert.Equal(t, RouteHome, res.Target)
}

func TestResolve_Renders(t *testing.T) {
	authed := &fakeSession{hydrated: true, authed: true}
	assert.Equal(t, Render, Resolve(authed, DefaultPolicy()).Decision)

	anon := &fakeSession{hydrated: true, authed: false}
	assert.Equal(t, Render, Resolve(anon, Policy{RequireAuth: false}).Decision)
}

func TestNavigator_GoFollowsRedirects(t *testing.T) {
	sess := &fakeSession{hydrated: true, authed: false}
	n := New(sess)
	n.Register(RouteLogin, Policy{RequireAuth: false})
	n.Register(RouteHome, DefaultPolicy())

	landed := n.Go(RouteHome)
	assert.Equal(t, RouteLogin, landed)
	assert.Equal(t, RouteLogin, n.Current())
}

func TestNavigator_AuthedUserBouncedOffLogin(t *testing.T) {
	sess := &fakeSession{hydrated: true, authed: true}
	n := New(sess)
	n.Register(RouteLogin, Policy{RequireAuth: false})
	n.Register(RouteHome, DefaultPolicy())

	landed := n.Go(RouteLogin)
	assert.Equal(t, RouteHome, landed)
}

func TestNavigator_ReEvaluateOnLogout(t *testing.T) {
	sess := &fakeSession{hydrated: true, authed: true}
	n := New(sess)
	n.Register(RouteLogin, Policy{RequireAuth: false})
	n.Register(RouteHome, DefaultPolicy())

	n.Go(RouteHome)
	assert.Equal(t, RouteHome, n.Current())

	// Session cleared while the protected screen is mounted.
	sess.authed = false
	landed := n.ReEvaluate()
	assert.Equal(t, RouteLogin, landed)
}

func TestNavigator_UnregisteredRouteIsProtected(t *testing.T) {
	sess := &fakeSession{hydrated: true, authed: false}
	n := New(sess)
	n.Register(RouteLogin, Policy{RequireAuth: false})

	landed := n.Go("/somewhere-new")
	assert.Equal(t, RouteLogin, landed)
}

func TestNavigator_NotifiesListeners(t *testing.T) {
	sess := &fakeSession{hydrated: true, authed: true}
	n := New(sess)
	n.Register(RouteHome, DefaultPolicy())

	var routes []string
	n.OnChange(func(route string) { routes = append(routes, route) })

	n.Go(RouteHome)
	assert.Equal(t, []string{RouteHome}, routes)
}
