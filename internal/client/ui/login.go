package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jejakarbon/cli/internal/client/forms"
	"github.com/jejakarbon/cli/internal/client/nav"
	"github.com/jejakarbon/cli/internal/models"
)

type loginResultMsg struct {
	res *models.LoginResult
	err error
}

type loginScreen struct {
	deps   Deps
	email  textinput.Model
	pass   textinput.Model
	focus  int
	errs   forms.Errors
	busy   bool
}

func newLoginScreen(deps Deps) *loginScreen {
	email := textinput.New()
	email.Placeholder = "Email"
	email.Focus()

	pass := textinput.New()
	pass.Placeholder = "Password"
	pass.EchoMode = textinput.EchoPassword

	return &loginScreen{deps: deps, email: email, pass: pass}
}

func (s *loginScreen) Init() tea.Cmd { return textinput.Blink }

func (s *loginScreen) submit() tea.Cmd {
	email, pass := s.email.Value(), s.pass.Value()
	return func() tea.Msg {
		res, err := s.deps.API.Login(ctx(), email, pass)
		return loginResultMsg{res: res, err: err}
	}
}

func (s *loginScreen) Update(msg tea.Msg) (screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loginResultMsg:
		s.busy = false
		if msg.err != nil {
			return s, toast(userMessage(msg.err))
		}
		if err := s.deps.Session.SetAuth(msg.res.Token, msg.res.Role, msg.res.User); err != nil {
			s.deps.Log.Error("persist session", zap.Error(err))
		}
		s.deps.Nav.Go(nav.RouteHome)
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "tab", "shift+tab", "down", "up":
			s.focus = (s.focus + 1) % 2
			if s.focus == 0 {
				s.email.Focus()
				s.pass.Blur()
			} else {
				s.pass.Focus()
				s.email.Blur()
			}
			return s, nil
		case "enter":
			if s.busy {
				return s, nil
			}
			// Validation failures never reach the server.
			s.errs = forms.ValidateLogin(s.email.Value(), s.pass.Value())
			if !s.errs.Valid() {
				return s, nil
			}
			s.busy = true
			return s, s.submit()
		case "ctrl+r":
			s.deps.Nav.Go(nav.RouteRegister)
			return s, nil
		}
	}

	var cmds [2]tea.Cmd
	s.email, cmds[0] = s.email.Update(msg)
	s.pass, cmds[1] = s.pass.Update(msg)
	return s, tea.Batch(cmds[0], cmds[1])
}

func (s *loginScreen) View(width int) string {
	body := titleStyle.Render("Welcome to JejaKarbon") + "\n\n"
	body += labelStyle.Render("Email") + "\n" + s.email.View() + "\n"
	if msg, ok := s.errs["email"]; ok {
		body += errorStyle.Render(msg) + "\n"
	}
	body += labelStyle.Render("Password") + "\n" + s.pass.View() + "\n"
	if msg, ok := s.errs["password"]; ok {
		body += errorStyle.Render(msg) + "\n"
	}
	if s.busy {
		body += "\n" + labelStyle.Render("Signing in…")
	}
	body += "\n" + helpStyle.Render("enter sign in · tab next field · ctrl+r register")
	return cardStyle.Width(width - 2).Render(body)
}
