// Package ui renders the client's screens with Bubble Tea. Each screen
// is a small model mounted by the root App according to the navigator;
// the auth gate runs before any screen is constructed.
package ui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jejakarbon/cli/internal/client/api"
	"github.com/jejakarbon/cli/internal/client/nav"
	"github.com/jejakarbon/cli/internal/client/session"
)

// Deps are the shared collaborators handed to every screen.
type Deps struct {
	API     *api.Client
	Session *session.Store
	Nav     *nav.Navigator
	Log     *zap.Logger
}

// screen is the contract between the root App and a mounted screen.
// Update returns the (possibly replaced) screen plus follow-up work.
type screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (screen, tea.Cmd)
	View(width int) string
}

// sessionChangedMsg is sent from outside the program whenever the
// session store mutates (login, logout, 401); the root re-runs the gate.
type sessionChangedMsg struct{}

// toastMsg shows a transient user-visible message.
type toastMsg struct{ text string }

func toast(text string) tea.Cmd {
	return func() tea.Msg { return toastMsg{text: text} }
}

// userMessage maps an error to the string shown to the user. Raw
// stack traces never reach the screen.
func userMessage(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, api.ErrUnauthorized) {
		return "Session expired. Please log in again."
	}
	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return "Could not reach server. Please try again."
}

// ctx returns the context for screen-issued fetches. There is no
// cancellation: a screen unmounted mid-flight simply has its result
// dropped by the root.
func ctx() context.Context {
	return context.Background()
}
