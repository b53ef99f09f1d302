package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jejakarbon/cli/internal/client/nav"
	"github.com/jejakarbon/cli/internal/client/viewmodel"
	"github.com/jejakarbon/cli/internal/models"
)

type challengesLoadedMsg struct {
	challenges []models.UserChallenge
	err        error
}

type progressSavedMsg struct {
	err error
}

// challengeScreen tracks today's challenges, their milestones and the
// overall progress card. Reporting progress goes through the API and is
// followed by a full re-fetch.
type challengeScreen struct {
	deps       Deps
	challenges []models.UserChallenge
	cursor     int
	err        error
	loading    bool
}

func newChallengeScreen(deps Deps) *challengeScreen {
	return &challengeScreen{deps: deps}
}

func (s *challengeScreen) fetch() tea.Cmd {
	s.loading = true
	deps := s.deps
	return func() tea.Msg {
		challenges, err := deps.API.DailyChallenge(ctx())
		return challengesLoadedMsg{challenges: challenges, err: err}
	}
}

func (s *challengeScreen) Init() tea.Cmd { return s.fetch() }

func (s *challengeScreen) report(delta float64) tea.Cmd {
	if s.cursor >= len(s.challenges) {
		return nil
	}
	ch := s.challenges[s.cursor]
	progress := ch.CurrentProgress + delta
	if progress < 0 {
		progress = 0
	}
	deps := s.deps
	return func() tea.Msg {
		_, err := deps.API.UpdateChallengeProgress(ctx(), ch.ID, progress)
		return progressSavedMsg{err: err}
	}
}

func (s *challengeScreen) Update(msg tea.Msg) (screen, tea.Cmd) {
	switch msg := msg.(type) {
	case challengesLoadedMsg:
		s.loading = false
		s.challenges, s.err = msg.challenges, msg.err
		if s.cursor >= len(s.challenges) {
			s.cursor = 0
		}
		return s, nil

	case progressSavedMsg:
		if msg.err != nil {
			return s, toast(userMessage(msg.err))
		}
		return s, s.fetch()

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if s.cursor > 0 {
				s.cursor--
			}
		case "down", "j":
			if s.cursor < len(s.challenges)-1 {
				s.cursor++
			}
		case "+", "=":
			return s, s.report(1)
		case "-":
			return s, s.report(-1)
		case "r":
			return s, s.fetch()
		case "esc":
			s.deps.Nav.Go(nav.RouteHome)
		}
	}
	return s, nil
}

func (s *challengeScreen) View(width int) string {
	w := width - 2
	if s.loading {
		return cardStyle.Width(w).Render(labelStyle.Render("Loading daily challenge…"))
	}
	if s.err != nil {
		return cardStyle.Width(w).Render(errorStyle.Render(userMessage(s.err))) +
			"\n" + helpStyle.Render("r reload · esc home")
	}

	completed, total, percent := viewmodel.OverallProgress(s.challenges)
	overall := titleStyle.Render("Overall Progress") + "\n"
	overall += progressBar(percent, w-6) + "\n"
	overall += fmt.Sprintf("%d/%d completed", completed, total)
	out := cardStyle.Width(w).Render(overall) + "\n"

	for i, ch := range s.challenges {
		view := viewmodel.ChallengeProgress(ch)
		marker := "  "
		if i == s.cursor {
			marker = "> "
		}
		body := marker + view.ChallengeName + "\n"
		body += labelStyle.Render("  "+view.ChallengeDescription) + "\n"
		body += "  " + progressBar(view.Percent, w-10) + "\n"
		for _, m := range view.Milestones {
			mark := "☐"
			if m.IsAchieved {
				mark = "☑"
			}
			body += labelStyle.Render(fmt.Sprintf("  %s %.0f — %s", mark, m.Target, m.Reward)) + "\n"
		}
		out += cardStyle.Width(w).Render(strings.TrimRight(body, "\n")) + "\n"
	}
	if total == 0 {
		out += cardStyle.Width(w).Render(labelStyle.Render("No challenges today")) + "\n"
	}

	out += helpStyle.Render("↑/↓ select · +/- progress · r reload · esc home")
	return out
}
