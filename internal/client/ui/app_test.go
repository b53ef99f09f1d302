package ui

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jejakarbon/cli/internal/client/api"
	"github.com/jejakarbon/cli/internal/client/nav"
	"github.com/jejakarbon/cli/internal/client/session"
	"github.com/jejakarbon/cli/internal/models"
)

func newTestApp(t *testing.T, authed bool) (*App, *session.Store) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "session.json")
	sess := session.NewStore(path)
	require.NoError(t, sess.Load())
	if authed {
		require.NoError(t, sess.SetAuth("tok", models.RoleUser, &models.User{ID: "u1", Name: "Budi"}))
	}

	deps := Deps{
		API:     api.New("http://127.0.0.1:1", sess, path, nil),
		Session: sess,
		Nav:     nav.New(sess),
		Log:     zap.NewNop(),
	}
	app := NewApp(deps)
	_ = app.Init()
	return app, sess
}

func TestApp_AnonymousLandsOnLogin(t *testing.T) {
	app, _ := newTestApp(t, false)

	assert.Equal(t, nav.RouteLogin, app.deps.Nav.Current())
	view := app.View()
	assert.Contains(t, view, "Welcome to JejaKarbon")
	// The protected home body never renders for an anonymous session.
	assert.NotContains(t, view, "Today's Carbon Footprint")
}

func TestApp_AuthenticatedLandsOnHome(t *testing.T) {
	app, _ := newTestApp(t, true)

	assert.Equal(t, nav.RouteHome, app.deps.Nav.Current())
	assert.Contains(t, app.View(), "Daily Challenge")
}

func TestApp_LogoutRedirectsMountedScreen(t *testing.T) {
	app, sess := newTestApp(t, true)
	require.Equal(t, nav.RouteHome, app.deps.Nav.Current())

	// Session cleared while home is mounted (logout or a 401).
	require.NoError(t, sess.Logout())
	model, _ := app.Update(sessionChangedMsg{})
	app = model.(*App)

	assert.Equal(t, nav.RouteLogin, app.deps.Nav.Current())
	assert.Contains(t, app.View(), "Welcome to JejaKarbon")
}

func TestApp_StaleResultIsDiscarded(t *testing.T) {
	app, sess := newTestApp(t, true)

	// The home screen's fetch resolves after the user logged out. The
	// update must be a no-op rather than a panic or a rendered body.
	require.NoError(t, sess.Logout())
	model, _ := app.Update(sessionChangedMsg{})
	app = model.(*App)

	model, _ = app.Update(homeDashboardMsg{dash: &models.Dashboard{}})
	app = model.(*App)
	assert.Equal(t, nav.RouteLogin, app.deps.Nav.Current())
	assert.NotContains(t, app.View(), "Today's Carbon Footprint")
}

func TestApp_WaitsWhileRehydrating(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	sess := session.NewStore(path) // Load never called

	deps := Deps{
		API:     api.New("http://127.0.0.1:1", sess, path, nil),
		Session: sess,
		Nav:     nav.New(sess),
		Log:     zap.NewNop(),
	}
	app := NewApp(deps)
	_ = app.Init()

	view := app.View()
	assert.Contains(t, view, "Loading session")
	assert.NotContains(t, view, "Welcome to JejaKarbon")
}
