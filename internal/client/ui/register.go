package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jejakarbon/cli/internal/client/api"
	"github.com/jejakarbon/cli/internal/client/forms"
	"github.com/jejakarbon/cli/internal/client/nav"
	"github.com/jejakarbon/cli/internal/models"
)

type registerResultMsg struct {
	user *models.User
	err  error
}

type registerScreen struct {
	deps   Deps
	inputs []textinput.Model
	focus  int
	errs   forms.Errors
	busy   bool
}

const (
	regName = iota
	regEmail
	regTelp
	regPassword
	regConfirm
	regFieldCount
)

func newRegisterScreen(deps Deps) *registerScreen {
	placeholders := [regFieldCount]string{"Name", "Email", "Phone number (optional)", "Password", "Confirm password"}
	inputs := make([]textinput.Model, regFieldCount)
	for i := range inputs {
		ti := textinput.New()
		ti.Placeholder = placeholders[i]
		if i == regPassword || i == regConfirm {
			ti.EchoMode = textinput.EchoPassword
		}
		inputs[i] = ti
	}
	inputs[regName].Focus()
	return &registerScreen{deps: deps, inputs: inputs}
}

func (s *registerScreen) Init() tea.Cmd { return textinput.Blink }

func (s *registerScreen) submit() tea.Cmd {
	req := api.RegisterRequest{
		Name:       s.inputs[regName].Value(),
		Email:      s.inputs[regEmail].Value(),
		Password:   s.inputs[regPassword].Value(),
		TelpNumber: s.inputs[regTelp].Value(),
	}
	return func() tea.Msg {
		user, err := s.deps.API.Register(ctx(), req)
		return registerResultMsg{user: user, err: err}
	}
}

func (s *registerScreen) setFocus(i int) {
	s.focus = (i + regFieldCount) % regFieldCount
	for j := range s.inputs {
		if j == s.focus {
			s.inputs[j].Focus()
		} else {
			s.inputs[j].Blur()
		}
	}
}

func (s *registerScreen) Update(msg tea.Msg) (screen, tea.Cmd) {
	switch msg := msg.(type) {
	case registerResultMsg:
		s.busy = false
		if msg.err != nil {
			return s, toast(userMessage(msg.err))
		}
		s.deps.Nav.Go(nav.RouteLogin)
		return s, toast("Account created. Please sign in.")

	case tea.KeyMsg:
		switch msg.String() {
		case "tab", "down":
			s.setFocus(s.focus + 1)
			return s, nil
		case "shift+tab", "up":
			s.setFocus(s.focus - 1)
			return s, nil
		case "enter":
			if s.busy {
				return s, nil
			}
			s.errs = forms.ValidateRegister(
				s.inputs[regName].Value(),
				s.inputs[regEmail].Value(),
				s.inputs[regPassword].Value(),
				s.inputs[regConfirm].Value(),
			)
			if !s.errs.Valid() {
				return s, nil
			}
			s.busy = true
			return s, s.submit()
		case "esc":
			s.deps.Nav.Go(nav.RouteLogin)
			return s, nil
		}
	}

	cmds := make([]tea.Cmd, len(s.inputs))
	for i := range s.inputs {
		s.inputs[i], cmds[i] = s.inputs[i].Update(msg)
	}
	return s, tea.Batch(cmds...)
}

func (s *registerScreen) View(width int) string {
	fieldErr := [regFieldCount]string{"name", "email", "", "password", "confirm"}
	body := titleStyle.Render("Create your account") + "\n\n"
	for i, in := range s.inputs {
		body += in.View() + "\n"
		if key := fieldErr[i]; key != "" {
			if msg, ok := s.errs[key]; ok {
				body += errorStyle.Render(msg) + "\n"
			}
		}
	}
	if s.busy {
		body += "\n" + labelStyle.Render("Creating account…")
	}
	body += "\n" + helpStyle.Render("enter register · tab next field · esc back to login")
	return cardStyle.Width(width - 2).Render(body)
}
