package ui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jejakarbon/cli/internal/client/nav"
	"github.com/jejakarbon/cli/internal/client/token"
	"github.com/jejakarbon/cli/internal/client/viewmodel"
	"github.com/jejakarbon/cli/internal/models"
)

type homeDashboardMsg struct {
	dash *models.Dashboard
	err  error
}

type homeActivitiesMsg struct {
	entries []models.Activity
	err     error
}

type homeChallengesMsg struct {
	challenges []models.UserChallenge
	err        error
}

// homeScreen is the landing dashboard: footprint card, daily-challenge
// card and today's activities. The three fetches are independent; one
// failing degrades only its own card.
type homeScreen struct {
	deps Deps

	dash    *models.Dashboard
	dashErr error

	entries    []models.Activity
	entriesErr error

	challenges    []models.UserChallenge
	challengesErr error
}

func newHomeScreen(deps Deps) *homeScreen {
	return &homeScreen{deps: deps}
}

// userID prefers the session's user record and falls back to the token
// claims for sessions persisted before the user payload was stored.
func (s *homeScreen) userID() string {
	if u := s.deps.Session.User(); u != nil {
		return u.ID
	}
	id, _ := token.UserID(s.deps.Session.Token())
	return id
}

func (s *homeScreen) Init() tea.Cmd {
	deps := s.deps
	userID := s.userID()
	return tea.Batch(
		func() tea.Msg {
			dash, err := deps.API.Dashboard(ctx(), "7_days")
			return homeDashboardMsg{dash: dash, err: err}
		},
		func() tea.Msg {
			entries, err := deps.API.ActivitiesByUser(ctx(), userID)
			return homeActivitiesMsg{entries: entries, err: err}
		},
		func() tea.Msg {
			challenges, err := deps.API.DailyChallenge(ctx())
			return homeChallengesMsg{challenges: challenges, err: err}
		},
	)
}

func (s *homeScreen) Update(msg tea.Msg) (screen, tea.Cmd) {
	switch msg := msg.(type) {
	case homeDashboardMsg:
		s.dash, s.dashErr = msg.dash, msg.err
		return s, nil
	case homeActivitiesMsg:
		s.entries, s.entriesErr = msg.entries, msg.err
		return s, nil
	case homeChallengesMsg:
		s.challenges, s.challengesErr = msg.challenges, msg.err
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "a":
			s.deps.Nav.Go(nav.RouteAnalytics)
		case "n":
			s.deps.Nav.Go(nav.RouteAdd)
		case "h":
			s.deps.Nav.Go(nav.RouteHistory)
		case "b":
			s.deps.Nav.Go(nav.RouteBadges)
		case "c":
			s.deps.Nav.Go(nav.RouteChallenge)
		case "p":
			s.deps.Nav.Go(nav.RouteProfile)
		case "r":
			// Manual reload is the only retry policy.
			return s, s.Init()
		}
	}
	return s, nil
}

func (s *homeScreen) footprintCard(width int) string {
	if s.dashErr != nil {
		return cardStyle.Width(width).Render(errorStyle.Render(userMessage(s.dashErr)))
	}
	if s.dash == nil {
		return cardStyle.Width(width).Render(labelStyle.Render("Loading footprint…"))
	}
	daily := s.dash.DailyAverage
	body := labelStyle.Render("Today's Carbon Footprint") + "\n"
	body += titleStyle.Render(viewmodel.FormatKg(daily.Value)) + "\n"
	body += deltaStyle(daily.IsIncrease).Render(viewmodel.FormatDelta(daily))
	return cardStyle.Width(width).Render(body)
}

func (s *homeScreen) challengeCard(width int) string {
	if s.challengesErr != nil {
		return cardStyle.Width(width).Render(errorStyle.Render(userMessage(s.challengesErr)))
	}
	completed, total, percent := viewmodel.OverallProgress(s.challenges)
	body := labelStyle.Render("Daily Challenge") + "\n"
	if total == 0 {
		body += "No challenges today"
	} else {
		body += progressBar(percent, width-6) + "\n"
		body += fmt.Sprintf("%d/%d completed", completed, total)
	}
	return cardStyle.Width(width).Render(body)
}

func (s *homeScreen) activitiesCard(width int) string {
	if s.entriesErr != nil {
		return cardStyle.Width(width).Render(errorStyle.Render(userMessage(s.entriesErr)))
	}
	body := labelStyle.Render("Today's Activities") + "\n"
	groups := viewmodel.GroupByDay(s.entries, time.Now().UTC())
	if len(groups) == 0 || groups[0].Label != "Today" {
		body += "No activities logged today"
	} else {
		for _, e := range groups[0].Entries {
			body += fmt.Sprintf("%-12s %s  +%.1f kg\n", e.Source, e.Description, e.CarbonOutput)
		}
		body += labelStyle.Render(fmt.Sprintf("Total %s", viewmodel.FormatKg(groups[0].Total)))
	}
	return cardStyle.Width(width).Render(body)
}

func (s *homeScreen) View(width int) string {
	w := width - 2
	out := s.footprintCard(w) + "\n" + s.challengeCard(w) + "\n" + s.activitiesCard(w)
	out += "\n" + helpStyle.Render("a analytics · n new entry · h history · b badges · c challenge · p profile · r reload")
	return out
}
