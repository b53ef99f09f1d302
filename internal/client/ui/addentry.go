package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jejakarbon/cli/internal/client/api"
	"github.com/jejakarbon/cli/internal/client/nav"
	"github.com/jejakarbon/cli/internal/client/token"
	"github.com/jejakarbon/cli/internal/models"
)

type entrySavedMsg struct {
	activity *models.Activity
	err      error
}

var addCategories = []string{models.SourceVehicle, models.SourceElectronics, models.SourceFood}

// addEntryScreen is the activity-entry form. The category picks which
// detail fields are shown; the request always carries all three detail
// records with the unused two zero-valued, as the API expects.
type addEntryScreen struct {
	deps     Deps
	category int
	desc     textinput.Model
	fieldA   textinput.Model // fuel type / item / food item
	fieldB   textinput.Model // distance / duration / weight
	focus    int
	busy     bool
	errText  string
}

func newAddEntryScreen(deps Deps) *addEntryScreen {
	desc := textinput.New()
	desc.Placeholder = "Description"
	desc.Focus()

	fieldA := textinput.New()
	fieldB := textinput.New()

	s := &addEntryScreen{deps: deps, desc: desc, fieldA: fieldA, fieldB: fieldB}
	s.applyCategory()
	return s
}

func (s *addEntryScreen) applyCategory() {
	switch addCategories[s.category] {
	case models.SourceVehicle:
		s.fieldA.Placeholder = "Fuel type (Gasoline/Diesel/Electric/Hybrid/CNG)"
		s.fieldB.Placeholder = "Distance (km)"
	case models.SourceElectronics:
		s.fieldA.Placeholder = "Item"
		s.fieldB.Placeholder = "Duration (hours)"
	case models.SourceFood:
		s.fieldA.Placeholder = "Food item"
		s.fieldB.Placeholder = "Weight (kg)"
	}
}

func (s *addEntryScreen) Init() tea.Cmd { return textinput.Blink }

func (s *addEntryScreen) request() (api.ActivityRequest, bool) {
	userID := ""
	if u := s.deps.Session.User(); u != nil {
		userID = u.ID
	} else {
		userID, _ = token.UserID(s.deps.Session.Token())
	}
	if userID == "" {
		s.errText = "User not authenticated"
		return api.ActivityRequest{}, false
	}

	amount, err := strconv.ParseFloat(strings.TrimSpace(s.fieldB.Value()), 64)
	if err != nil || amount <= 0 {
		s.errText = "Enter a positive number"
		return api.ActivityRequest{}, false
	}
	if strings.TrimSpace(s.fieldA.Value()) == "" {
		s.errText = "Fill in all fields"
		return api.ActivityRequest{}, false
	}

	req := api.ActivityRequest{
		UserID:      userID,
		Source:      addCategories[s.category],
		Description: s.desc.Value(),
	}
	switch req.Source {
	case models.SourceVehicle:
		req.Vehicle = models.VehicleDetails{FuelType: s.fieldA.Value(), Distance: amount}
	case models.SourceElectronics:
		req.Electronics = models.ElectronicsDetails{Item: s.fieldA.Value(), DurationUsage: amount}
	case models.SourceFood:
		req.Food = models.FoodDetails{FoodItem: s.fieldA.Value(), Weight: amount}
	}
	s.errText = ""
	return req, true
}

func (s *addEntryScreen) setFocus(i int) {
	s.focus = (i + 3) % 3
	inputs := []*textinput.Model{&s.desc, &s.fieldA, &s.fieldB}
	for j, in := range inputs {
		if j == s.focus {
			in.Focus()
		} else {
			in.Blur()
		}
	}
}

func (s *addEntryScreen) Update(msg tea.Msg) (screen, tea.Cmd) {
	switch msg := msg.(type) {
	case entrySavedMsg:
		s.busy = false
		if msg.err != nil {
			return s, toast(userMessage(msg.err))
		}
		s.deps.Nav.Go(nav.RouteHome)
		return s, toast("Carbon entry saved")

	case tea.KeyMsg:
		switch msg.String() {
		case "tab", "down":
			s.setFocus(s.focus + 1)
			return s, nil
		case "shift+tab", "up":
			s.setFocus(s.focus - 1)
			return s, nil
		case "left":
			s.category = (s.category + len(addCategories) - 1) % len(addCategories)
			s.applyCategory()
			return s, nil
		case "right":
			s.category = (s.category + 1) % len(addCategories)
			s.applyCategory()
			return s, nil
		case "enter":
			if s.busy {
				return s, nil
			}
			req, ok := s.request()
			if !ok {
				return s, nil
			}
			s.busy = true
			deps := s.deps
			return s, func() tea.Msg {
				activity, err := deps.API.CreateActivity(ctx(), req)
				return entrySavedMsg{activity: activity, err: err}
			}
		case "esc":
			s.deps.Nav.Go(nav.RouteHome)
			return s, nil
		}
	}

	var cmds [3]tea.Cmd
	s.desc, cmds[0] = s.desc.Update(msg)
	s.fieldA, cmds[1] = s.fieldA.Update(msg)
	s.fieldB, cmds[2] = s.fieldB.Update(msg)
	return s, tea.Batch(cmds[0], cmds[1], cmds[2])
}

func (s *addEntryScreen) View(width int) string {
	var tabs []string
	for i, c := range addCategories {
		if i == s.category {
			tabs = append(tabs, activeTabStyle.Render(c))
		} else {
			tabs = append(tabs, tabStyle.Render(c))
		}
	}

	body := titleStyle.Render("Add Carbon Entry") + "\n"
	body += strings.Join(tabs, "") + "\n\n"
	body += s.desc.View() + "\n"
	body += s.fieldA.View() + "\n"
	body += s.fieldB.View() + "\n"
	if s.errText != "" {
		body += errorStyle.Render(s.errText) + "\n"
	}
	if s.busy {
		body += labelStyle.Render("Saving…") + "\n"
	}
	body += "\n" + helpStyle.Render("←/→ category · tab next field · enter save · esc home")
	return cardStyle.Width(width - 2).Render(body)
}
