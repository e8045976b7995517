// Package session is the single source of truth for the admin panel's
// authentication state and UI preferences, persisted in one JSON file.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/spellcms/spellcms/types"
)

// ErrNotAuthenticated is returned by Require when no token is stored.
// Callers treat it as a redirect to the login view.
var ErrNotAuthenticated = errors.New("not authenticated")

// Themes the panel supports.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

type persisted struct {
	Token string     `json:"token,omitempty"`
	User  types.User `json:"user,omitempty"`
	Theme string     `json:"theme,omitempty"`
}

// Manager owns the persisted session. Every component that needs the
// token reads it from here rather than from ambient storage.
type Manager struct {
	mu    sync.Mutex
	path  string
	state persisted
}

// NewManager loads the session file if present. A missing or unreadable
// file starts a signed-out session.
func NewManager(path string) *Manager {
	m := &Manager{path: path}

	data, err := os.ReadFile(path)
	if err == nil {
		_ = json.Unmarshal(data, &m.state)
	} else if !errors.Is(err, fs.ErrNotExist) {
		// Corrupt or unreadable session files fall back to signed out.
		m.state = persisted{}
	}
	if m.state.Theme == "" {
		m.state.Theme = ThemeLight
	}
	return m
}

// Set stores the token and user from a successful login or register.
func (m *Manager) Set(token string, user types.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.Token = token
	m.state.User = user
	return m.save()
}

// Clear signs out: the token and user are dropped, the theme survives.
func (m *Manager) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.Token = ""
	m.state.User = types.User{}
	return m.save()
}

// Token yields the stored token. Implements the client token source.
func (m *Manager) Token() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.Token
}

// User returns the stored user.
func (m *Manager) User() types.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.User
}

// Authenticated reports whether a token is present.
func (m *Manager) Authenticated() bool {
	return m.Token() != ""
}

// Require is the route guard: nil when a token is present,
// ErrNotAuthenticated otherwise.
func (m *Manager) Require() error {
	if !m.Authenticated() {
		return ErrNotAuthenticated
	}
	return nil
}

// Theme returns the persisted theme preference.
func (m *Manager) Theme() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.Theme
}

// SetTheme persists the theme preference.
func (m *Manager) SetTheme(theme string) error {
	if theme != ThemeLight && theme != ThemeDark {
		return fmt.Errorf("unknown theme %q", theme)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.Theme = theme
	return m.save()
}

// save writes the session file. Callers must hold m.mu.
func (m *Manager) save() error {
	data, err := json.MarshalIndent(m.state, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(m.path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(m.path, data, 0o600)
}
