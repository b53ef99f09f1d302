package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jejakarbon/cli/internal/client/nav"
	"github.com/jejakarbon/cli/internal/client/token"
	"github.com/jejakarbon/cli/internal/client/viewmodel"
	"github.com/jejakarbon/cli/internal/models"
)

type historyMsg struct {
	entries []models.Activity
	err     error
}

type historyDeletedMsg struct {
	err error
}

// historyScreen lists carbon entries grouped by day, newest day first.
// Deleting an entry always re-fetches the list; entries are immutable
// once fetched.
type historyScreen struct {
	deps    Deps
	groups  []viewmodel.DayGroup
	flat    []models.Activity
	cursor  int
	err     error
	loading bool
}

func newHistoryScreen(deps Deps) *historyScreen {
	return &historyScreen{deps: deps}
}

func (s *historyScreen) userID() string {
	if u := s.deps.Session.User(); u != nil {
		return u.ID
	}
	id, _ := token.UserID(s.deps.Session.Token())
	return id
}

func (s *historyScreen) fetch() tea.Cmd {
	s.loading = true
	deps := s.deps
	userID := s.userID()
	return func() tea.Msg {
		entries, err := deps.API.ActivitiesByUser(ctx(), userID)
		return historyMsg{entries: entries, err: err}
	}
}

func (s *historyScreen) Init() tea.Cmd { return s.fetch() }

func (s *historyScreen) Update(msg tea.Msg) (screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyMsg:
		s.loading = false
		s.err = msg.err
		s.groups = viewmodel.GroupByDay(msg.entries, time.Now().UTC())
		s.flat = s.flat[:0]
		for _, g := range s.groups {
			s.flat = append(s.flat, g.Entries...)
		}
		if s.cursor >= len(s.flat) {
			s.cursor = 0
		}
		return s, nil

	case historyDeletedMsg:
		if msg.err != nil {
			return s, toast(userMessage(msg.err))
		}
		return s, tea.Batch(toast("Activity deleted"), s.fetch())

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if s.cursor > 0 {
				s.cursor--
			}
		case "down", "j":
			if s.cursor < len(s.flat)-1 {
				s.cursor++
			}
		case "x":
			if s.cursor < len(s.flat) {
				id := s.flat[s.cursor].ID
				deps := s.deps
				return s, func() tea.Msg {
					return historyDeletedMsg{err: deps.API.DeleteActivity(ctx(), id)}
				}
			}
		case "r":
			return s, s.fetch()
		case "esc":
			s.deps.Nav.Go(nav.RouteHome)
		}
	}
	return s, nil
}

func (s *historyScreen) View(width int) string {
	w := width - 2
	if s.loading {
		return cardStyle.Width(w).Render(labelStyle.Render("Loading carbon history…"))
	}
	if s.err != nil {
		return cardStyle.Width(w).Render(errorStyle.Render(userMessage(s.err))) +
			"\n" + helpStyle.Render("r reload · esc home")
	}

	var b strings.Builder
	idx := 0
	for _, g := range s.groups {
		b.WriteString(titleStyle.Render(g.Label) + "  " +
			labelStyle.Render(viewmodel.FormatKg(g.Total)) + "\n")
		for _, e := range g.Entries {
			marker := "  "
			if idx == s.cursor {
				marker = "> "
			}
			b.WriteString(fmt.Sprintf("%s%-12s %-24s %.1f kg\n",
				marker, e.Source, e.Description, e.CarbonOutput))
			idx++
		}
	}
	if idx == 0 {
		b.WriteString(labelStyle.Render("No carbon entries yet"))
	}

	out := cardStyle.Width(w).Render(strings.TrimRight(b.String(), "\n"))
	out += "\n" + helpStyle.Render("↑/↓ select · x delete · r reload · esc home")
	return out
}
