package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jejakarbon/cli/internal/client/nav"
)

// Run starts the terminal UI and blocks until the user quits. Session
// changes from any source (login, logout, a 401 clearing the store) are
// forwarded into the program so the gate re-evaluates immediately.
func Run(deps Deps) error {
	app := NewApp(deps)
	p := tea.NewProgram(app, tea.WithAltScreen())

	deps.Session.Subscribe(func() {
		p.Send(sessionChangedMsg{})
	})
	deps.API.OnUnauthorized(func() {
		deps.Nav.Go(nav.RouteLogin)
	})

	_, err := p.Run()
	return err
}
