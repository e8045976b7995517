package session

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spellcms/spellcms/types"
)

func sessionPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "session.json")
}

func TestFreshSessionIsSignedOut(t *testing.T) {
	m := NewManager(sessionPath(t))

	if m.Authenticated() {
		t.Fatal("a fresh session must be signed out")
	}
	if err := m.Require(); !errors.Is(err, ErrNotAuthenticated) {
		t.Fatalf("Require = %v, want ErrNotAuthenticated", err)
	}
	if m.Theme() != ThemeLight {
		t.Fatalf("default theme = %q, want %q", m.Theme(), ThemeLight)
	}
}

func TestSetPersistsAcrossReload(t *testing.T) {
	path := sessionPath(t)

	m := NewManager(path)
	user := types.User{ID: 7, Email: "a@b.c", Name: "Ada"}
	if err := m.Set("token-abc", user); err != nil {
		t.Fatalf("Set: %v", err)
	}

	reloaded := NewManager(path)
	if reloaded.Token() != "token-abc" {
		t.Fatalf("Token = %q", reloaded.Token())
	}
	if got := reloaded.User(); got.ID != 7 || got.Email != "a@b.c" {
		t.Fatalf("User = %+v", got)
	}
	if err := reloaded.Require(); err != nil {
		t.Fatalf("Require = %v, want nil", err)
	}
}

func TestClearKeepsTheme(t *testing.T) {
	path := sessionPath(t)

	m := NewManager(path)
	if err := m.Set("tok", types.User{ID: 1}); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := m.SetTheme(ThemeDark); err != nil {
		t.Fatalf("SetTheme: %v", err)
	}
	if err := m.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}

	if m.Authenticated() {
		t.Fatal("Clear must sign out")
	}
	if m.Theme() != ThemeDark {
		t.Fatalf("theme after Clear = %q, want %q", m.Theme(), ThemeDark)
	}

	reloaded := NewManager(path)
	if reloaded.Authenticated() {
		t.Fatal("cleared session must stay signed out after reload")
	}
	if reloaded.Theme() != ThemeDark {
		t.Fatalf("theme after reload = %q, want %q", reloaded.Theme(), ThemeDark)
	}
}

func TestSetThemeRejectsUnknown(t *testing.T) {
	m := NewManager(sessionPath(t))
	if err := m.SetTheme("solarized"); err == nil {
		t.Fatal("expected an error for an unknown theme")
	}
	if m.Theme() != ThemeLight {
		t.Fatalf("theme = %q, want %q", m.Theme(), ThemeLight)
	}
}

func TestCorruptFileFallsBackToSignedOut(t *testing.T) {
	path := sessionPath(t)
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	m := NewManager(path)
	if m.Authenticated() {
		t.Fatal("corrupt file must start signed out")
	}
	if m.Theme() != ThemeLight {
		t.Fatalf("theme = %q, want %q", m.Theme(), ThemeLight)
	}
}
