// Package session is the single source of truth for "who is logged in".
// The state is persisted to one JSON slot on disk and rehydrated at
// process start, so a reload keeps the user signed in.
package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/jejakarbon/cli/internal/models"
)

// State is the client's belief about the current login.
type State struct {
	Token string       `json:"token"`
	Role  models.Role  `json:"role,omitempty"`
	User  *models.User `json:"user,omitempty"`
}

// envelope is the on-disk shape of the session slot.
type envelope struct {
	State State `json:"state"`
}

// Store holds the session in memory and mirrors every mutation to the
// persisted slot. All access is mutex-guarded; the 401-clear path may
// race a fresh login and last write wins.
type Store struct {
	mu       sync.Mutex
	path     string
	state    State
	hydrated bool
	subs     []func()
}

// NewStore returns a Store persisting to path. The store starts
// unhydrated; call Load before the first render.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load rehydrates the session from disk. A missing or corrupt slot
// yields a clean logged-out state, never a half-populated session.
func (s *Store) Load() error {
	s.mu.Lock()
	s.state = State{}
	s.hydrated = true

	data, err := os.ReadFile(s.path)
	if err != nil {
		s.mu.Unlock()
		s.notify()
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil || env.State.Token == "" {
		// Corrupt or token-less slot: fail open to logged out.
		s.state = State{}
	} else {
		s.state = env.State
	}
	s.mu.Unlock()
	s.notify()
	return nil
}

// SetAuth stores the credentials from a successful login and persists
// them. The token is opaque; nothing is validated here.
func (s *Store) SetAuth(token string, role models.Role, user *models.User) error {
	s.mu.Lock()
	s.state = State{Token: token, Role: role, User: user}
	s.hydrated = true
	err := s.save()
	s.mu.Unlock()
	s.notify()
	return err
}

// Logout clears the session and the persisted slot. Calling it on an
// already logged-out store is a no-op with the same resulting state.
func (s *Store) Logout() error {
	s.mu.Lock()
	s.state = State{}
	err := s.save()
	s.mu.Unlock()
	s.notify()
	return err
}

// save writes the current state under the zustand-style {state: ...}
// envelope. Caller holds s.mu.
func (s *Store) save() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	data, err := json.Marshal(envelope{State: s.state})
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Token returns the current auth token, empty when logged out.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Token
}

// User returns the current user, nil when logged out.
func (s *Store) User() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.User
}

// IsAuthenticated reports whether a non-empty token is present.
func (s *Store) IsAuthenticated() bool {
	return s.Token() != ""
}

// Hydrated reports whether Load has completed. The auth gate renders a
// neutral loading state until then to avoid redirect flicker.
func (s *Store) Hydrated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hydrated
}

// Subscribe registers fn to run after every state change. Used by the
// auth gate to re-evaluate mounted screens on logout or a 401.
func (s *Store) Subscribe(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// notify runs outside the lock so subscribers may read the store.
func (s *Store) notify() {
	s.mu.Lock()
	subs := make([]func(), len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()
	for _, fn := range subs {
		fn()
	}
}

// ReadToken reads the token straight from the persisted slot, covering
// callers that run before the store has hydrated. Any failure yields an
// empty token and the request simply goes out unauthenticated.
func ReadToken(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return ""
	}
	return env.State.Token
}
