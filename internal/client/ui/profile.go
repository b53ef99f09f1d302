package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jejakarbon/cli/internal/client/nav"
	"github.com/jejakarbon/cli/internal/models"
)

type profileMsg struct {
	user *models.User
	err  error
}

// profileScreen shows the account and hosts the logout action. Logout
// clears the session; the gate then bounces every protected screen to
// login on its own.
type profileScreen struct {
	deps    Deps
	user    *models.User
	err     error
	loading bool
}

func newProfileScreen(deps Deps) *profileScreen {
	return &profileScreen{deps: deps}
}

func (s *profileScreen) Init() tea.Cmd {
	s.loading = true
	// Render the cached user immediately; refresh from the API behind it.
	s.user = s.deps.Session.User()
	deps := s.deps
	return func() tea.Msg {
		user, err := deps.API.Me(ctx())
		return profileMsg{user: user, err: err}
	}
}

func (s *profileScreen) Update(msg tea.Msg) (screen, tea.Cmd) {
	switch msg := msg.(type) {
	case profileMsg:
		s.loading = false
		if msg.err != nil {
			s.err = msg.err
			return s, nil
		}
		s.user = msg.user
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "l":
			if err := s.deps.Session.Logout(); err != nil {
				s.deps.Log.Error("logout", zap.Error(err))
			}
			return s, toast("Signed out")
		case "esc":
			s.deps.Nav.Go(nav.RouteHome)
		}
	}
	return s, nil
}

func (s *profileScreen) View(width int) string {
	w := width - 2
	body := titleStyle.Render("Profile") + "\n\n"
	switch {
	case s.user != nil:
		body += "Name   " + s.user.Name + "\n"
		body += "Email  " + s.user.Email + "\n"
		body += "Role   " + string(s.user.Role) + "\n"
		if s.user.TelpNumber != "" {
			body += "Phone  " + s.user.TelpNumber + "\n"
		}
	case s.loading:
		body += labelStyle.Render("Loading profile…") + "\n"
	case s.err != nil:
		body += errorStyle.Render(userMessage(s.err)) + "\n"
	}
	body += "\n" + helpStyle.Render("l log out · esc home")
	return cardStyle.Width(w).Render(body)
}
