package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/jejakarbon/cli/internal/models"
)

func storePath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "session.json")
}

func TestLoad_FileNotExist(t *testing.T) {
	s := NewStore(storePath(t))
	if err := s.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if s.IsAuthenticated() {
		t.Error("expected logged-out state for missing slot")
	}
	if !s.Hydrated() {
		t.Error("expected store to be hydrated after Load")
	}
}

func TestLoad_CorruptFile(t *testing.T) {
	path := storePath(t)
	os.WriteFile(path, []byte("{not json"), 0o600)

	s := NewStore(path)
	if err := s.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if s.IsAuthenticated() || s.Token() != "" || s.User() != nil {
		t.Errorf("corrupt slot must fail open to logged out, got %+v", s.Snapshot())
	}
}

func TestSetAuth_RoundTrip(t *testing.T) {
	path := storePath(t)
	s := NewStore(path)

	user := &models.User{ID: "u1", Name: "Budi", Email: "budi@example.com"}
	if err := s.SetAuth("tok-123", models.RoleUser, user); err != nil {
		t.Fatalf("SetAuth failed: %v", err)
	}

	got := s.Snapshot()
	if got.Token != "tok-123" || got.Role != models.RoleUser || got.User == nil || got.User.ID != "u1" {
		t.Errorf("unexpected state after SetAuth: %+v", got)
	}
	if !s.IsAuthenticated() {
		t.Error("expected IsAuthenticated after SetAuth")
	}

	// Persisted shape is {"state":{...}}.
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	var env map[string]json.RawMessage
	if err := json.Unmarshal(data, &env); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if _, ok := env["state"]; !ok {
		t.Errorf("persisted slot missing state envelope: %s", data)
	}

	// A second store rehydrates the same session.
	s2 := NewStore(path)
	if err := s2.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if s2.Token() != "tok-123" || !s2.IsAuthenticated() {
		t.Errorf("rehydrated state mismatch: %+v", s2.Snapshot())
	}
}

func TestLogout_Idempotent(t *testing.T) {
	s := NewStore(storePath(t))
	s.SetAuth("tok", models.RoleAdmin, &models.User{ID: "u"})

	for i := 0; i < 3; i++ {
		if err := s.Logout(); err != nil {
			t.Fatalf("Logout #%d failed: %v", i, err)
		}
		if s.IsAuthenticated() || s.Token() != "" {
			t.Fatalf("expected logged-out state after Logout #%d", i)
		}
	}
}

func TestSubscribe_NotifiedOnChange(t *testing.T) {
	s := NewStore(storePath(t))
	calls := 0
	s.Subscribe(func() { calls++ })

	s.SetAuth("tok", models.RoleUser, nil)
	s.Logout()

	if calls != 2 {
		t.Errorf("expected 2 notifications, got %d", calls)
	}
}

func TestReadToken(t *testing.T) {
	path := storePath(t)
	if got := ReadToken(path); got != "" {
		t.Errorf("expected empty token for missing slot, got %q", got)
	}

	s := NewStore(path)
	s.SetAuth("raw-token", models.RoleUser, nil)
	if got := ReadToken(path); got != "raw-token" {
		t.Errorf("ReadToken = %q; want %q", got, "raw-token")
	}
}
