package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jejakarbon/cli/internal/client/nav"
	"github.com/jejakarbon/cli/internal/client/viewmodel"
	"github.com/jejakarbon/cli/internal/models"
)

type analyticsMsg struct {
	timeframe string
	dash      *models.Dashboard
	err       error
}

// analyticsScreen shows averages, the carbon trend for the selected
// timeframe, and per-source deltas. Changing the timeframe re-fetches
// and replaces the snapshot wholesale.
type analyticsScreen struct {
	deps      Deps
	frames    []viewmodel.Timeframe
	selected  int
	dash      *models.Dashboard
	err       error
	loading   bool
}

func newAnalyticsScreen(deps Deps) *analyticsScreen {
	frames := viewmodel.Timeframes()
	// Default to the six-month window like the original screen.
	selected := 0
	for i, f := range frames {
		if f.Token == "6_months" {
			selected = i
		}
	}
	return &analyticsScreen{deps: deps, frames: frames, selected: selected}
}

func (s *analyticsScreen) fetch() tea.Cmd {
	s.loading = true
	timeframe := s.frames[s.selected].Token
	deps := s.deps
	return func() tea.Msg {
		dash, err := deps.API.Dashboard(ctx(), timeframe)
		return analyticsMsg{timeframe: timeframe, dash: dash, err: err}
	}
}

func (s *analyticsScreen) Init() tea.Cmd { return s.fetch() }

func (s *analyticsScreen) Update(msg tea.Msg) (screen, tea.Cmd) {
	switch msg := msg.(type) {
	case analyticsMsg:
		// A slow response for a timeframe no longer selected is stale;
		// dropping it keeps the snapshot and selector consistent.
		if msg.timeframe != s.frames[s.selected].Token {
			return s, nil
		}
		s.loading = false
		s.dash, s.err = msg.dash, msg.err
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "left":
			s.selected = (s.selected + len(s.frames) - 1) % len(s.frames)
			return s, s.fetch()
		case "right":
			s.selected = (s.selected + 1) % len(s.frames)
			return s, s.fetch()
		case "r":
			return s, s.fetch()
		case "esc":
			s.deps.Nav.Go(nav.RouteHome)
			return s, nil
		}
	}
	return s, nil
}

func (s *analyticsScreen) trendChart(width int) string {
	series := viewmodel.TrendFor(s.dash, s.frames[s.selected].Token)
	if len(series) == 0 {
		return labelStyle.Render("No trend data for this timeframe")
	}
	var max float64
	for _, p := range series {
		if p.Value > max {
			max = p.Value
		}
	}
	barWidth := width - 16
	if barWidth < 8 {
		barWidth = 8
	}
	var b strings.Builder
	for _, p := range series {
		filled := 0
		if max > 0 {
			filled = int(p.Value / max * float64(barWidth))
		}
		b.WriteString(fmt.Sprintf("%-8s %s %.1f\n", p.Label,
			strings.Repeat("▇", filled), p.Value))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (s *analyticsScreen) sourceRows() string {
	var b strings.Builder
	for _, src := range s.dash.EmissionSources {
		delta := deltaStyle(src.IsIncrease).Render(
			fmt.Sprintf("%s %.1f%%", viewmodel.Arrow(src.IsIncrease), src.PercentageChange))
		b.WriteString(fmt.Sprintf("%-14s %8.1f kg  %s\n", src.DisplayName, src.Value, delta))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (s *analyticsScreen) View(width int) string {
	w := width - 2

	var tabs []string
	for i, f := range s.frames {
		if i == s.selected {
			tabs = append(tabs, activeTabStyle.Render(f.Label))
		} else {
			tabs = append(tabs, tabStyle.Render(f.Label))
		}
	}
	out := strings.Join(tabs, "") + "\n"

	switch {
	case s.loading:
		out += cardStyle.Width(w).Render(labelStyle.Render("Loading analytics…"))
	case s.err != nil:
		out += cardStyle.Width(w).Render(errorStyle.Render(userMessage(s.err)))
	case s.dash != nil:
		daily, monthly := s.dash.DailyAverage, s.dash.MonthlyAverage
		averages := "Daily average    " + viewmodel.FormatKg(daily.Value) + "  " +
			deltaStyle(daily.IsIncrease).Render(viewmodel.FormatDelta(daily)) + "\n"
		averages += "Monthly average  " + viewmodel.FormatKg(monthly.Value) + "  " +
			deltaStyle(monthly.IsIncrease).Render(viewmodel.FormatDelta(monthly))
		out += cardStyle.Width(w).Render(averages) + "\n"
		out += cardStyle.Width(w).Render(s.trendChart(w)) + "\n"
		out += cardStyle.Width(w).Render(s.sourceRows())
	}

	out += "\n" + helpStyle.Render("←/→ timeframe · r reload · esc home")
	return out
}
