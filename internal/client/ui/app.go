package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jejakarbon/cli/internal/client/nav"
)

// App is the root Bubble Tea model. It owns the navigator, mounts the
// screen for the current route, and shows the toast line. All data
// fetching lives in the screens; all gating lives in the navigator.
type App struct {
	deps    Deps
	route   string
	current screen
	width   int
	toast   string
}

// NewApp wires the route table and positions the navigator. The guard
// decides whether the start route is home or login.
func NewApp(deps Deps) *App {
	n := deps.Nav
	n.Register(nav.RouteLogin, nav.Policy{RequireAuth: false})
	n.Register(nav.RouteRegister, nav.Policy{RequireAuth: false})
	for _, route := range []string{
		nav.RouteHome, nav.RouteAdd, nav.RouteHistory, nav.RouteAnalytics,
		nav.RouteBadges, nav.RouteChallenge, nav.RouteProfile,
	} {
		n.Register(route, nav.DefaultPolicy())
	}

	return &App{deps: deps, width: 64}
}

// mount constructs the screen for a route. The gate has already run;
// this is pure construction.
func (a *App) mount(route string) (screen, tea.Cmd) {
	var s screen
	switch route {
	case nav.RouteRegister:
		s = newRegisterScreen(a.deps)
	case nav.RouteHome:
		s = newHomeScreen(a.deps)
	case nav.RouteAdd:
		s = newAddEntryScreen(a.deps)
	case nav.RouteHistory:
		s = newHistoryScreen(a.deps)
	case nav.RouteAnalytics:
		s = newAnalyticsScreen(a.deps)
	case nav.RouteBadges:
		s = newBadgesScreen(a.deps)
	case nav.RouteChallenge:
		s = newChallengeScreen(a.deps)
	case nav.RouteProfile:
		s = newProfileScreen(a.deps)
	default:
		s = newLoginScreen(a.deps)
	}
	return s, s.Init()
}

func (a *App) Init() tea.Cmd {
	a.route = a.deps.Nav.Go(nav.RouteHome)
	var cmd tea.Cmd
	a.current, cmd = a.mount(a.route)
	return cmd
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		a.toast = ""

	case sessionChangedMsg:
		a.deps.Nav.ReEvaluate()
		return a, a.syncRoute()

	case toastMsg:
		a.toast = msg.text
		return a, nil
	}

	// While the gate says Wait or Redirect, the screen body gets no
	// messages; stale fetch results are dropped here, not applied.
	if a.deps.Nav.Resolution().Decision != nav.Render {
		return a, a.syncRoute()
	}

	var cmd tea.Cmd
	if a.current != nil {
		a.current, cmd = a.current.Update(msg)
	}
	return a, tea.Batch(cmd, a.syncRoute())
}

// syncRoute remounts when a screen or the gate navigated somewhere else.
func (a *App) syncRoute() tea.Cmd {
	route := a.deps.Nav.Current()
	if route == a.route && a.current != nil {
		return nil
	}
	a.deps.Log.Debug("navigating", zap.String("from", a.route), zap.String("to", route))
	a.route = route
	var cmd tea.Cmd
	a.current, cmd = a.mount(route)
	return cmd
}

func (a *App) View() string {
	header := headerStyle.Width(a.width).Render(titleStyle.Render("JejaKarbon"))

	var body string
	switch a.deps.Nav.Resolution().Decision {
	case nav.Wait:
		body = labelStyle.Render("Loading session…")
	case nav.Render:
		if a.current != nil {
			body = a.current.View(a.width)
		}
	default:
		// Redirect in flight: render nothing, the next frame mounts
		// the target screen.
		body = ""
	}

	out := header + "\n" + body
	if a.toast != "" {
		out += "\n" + toastStyle.Render(a.toast)
	}
	return out + "\n" + helpStyle.Render("ctrl+c quit")
}
