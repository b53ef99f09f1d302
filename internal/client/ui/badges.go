package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jejakarbon/cli/internal/client/nav"
	"github.com/jejakarbon/cli/internal/client/token"
	"github.com/jejakarbon/cli/internal/client/viewmodel"
	"github.com/jejakarbon/cli/internal/models"
)

type badgesMsg struct {
	all    []models.Badge
	earned []models.Badge
	err    error
}

// badgesScreen shows every badge with the user's unlock overlay. A
// failed user-badges fetch degrades to everything locked instead of
// failing the screen.
type badgesScreen struct {
	deps    Deps
	badges  []viewmodel.BadgeStatus
	err     error
	loading bool
}

func newBadgesScreen(deps Deps) *badgesScreen {
	return &badgesScreen{deps: deps}
}

func (s *badgesScreen) fetch() tea.Cmd {
	s.loading = true
	deps := s.deps
	sess := s.deps.Session
	return func() tea.Msg {
		all, err := deps.API.Badges(ctx())
		if err != nil {
			return badgesMsg{err: err}
		}

		userID := ""
		if u := sess.User(); u != nil {
			userID = u.ID
		} else {
			userID, _ = token.UserID(sess.Token())
		}

		var earned []models.Badge
		if userID != "" {
			earned, err = deps.API.UserBadges(ctx(), userID)
			if err != nil {
				// Degrade to all-locked; the full list still renders.
				deps.Log.Info("user badges unavailable", zap.Error(err))
				earned = nil
			}
		}
		return badgesMsg{all: all, earned: earned}
	}
}

func (s *badgesScreen) Init() tea.Cmd { return s.fetch() }

func (s *badgesScreen) Update(msg tea.Msg) (screen, tea.Cmd) {
	switch msg := msg.(type) {
	case badgesMsg:
		s.loading = false
		s.err = msg.err
		s.badges = viewmodel.OverlayBadges(msg.all, msg.earned)
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			return s, s.fetch()
		case "esc":
			s.deps.Nav.Go(nav.RouteHome)
		}
	}
	return s, nil
}

func (s *badgesScreen) View(width int) string {
	w := width - 2
	if s.loading {
		return cardStyle.Width(w).Render(labelStyle.Render("Loading achievements…"))
	}
	if s.err != nil {
		return cardStyle.Width(w).Render(errorStyle.Render(userMessage(s.err))) +
			"\n" + helpStyle.Render("r reload · esc home")
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Your Achievements") + "\n\n")
	for _, badge := range s.badges {
		if badge.Unlocked {
			b.WriteString(unlockedStyle.Render("★ "+badge.Name) + "\n")
		} else {
			b.WriteString(lockedStyle.Render("☆ "+badge.Name+" (locked)") + "\n")
		}
		b.WriteString(labelStyle.Render("  "+badge.Description) + "\n")
	}
	if len(s.badges) == 0 {
		b.WriteString(labelStyle.Render("No badges defined"))
	}

	out := cardStyle.Width(w).Render(strings.TrimRight(b.String(), "\n"))
	out += "\n" + helpStyle.Render("r reload · esc home")
	return out
}
