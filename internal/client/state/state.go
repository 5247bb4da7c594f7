// Package state holds the client-side mirror of the server session. It is
// advisory for view routing only; the server remains the sole source of
// truth on every request.
package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/orbitlabs/orbit/internal/models"
)

// LoginPath is where Logout navigates to
const LoginPath = "/login"

// AuthInfo is the persisted session mirror: last-known claims, expiry and,
// when available, the raw token.
type AuthInfo struct {
	UserInfo  models.UserInfo `json:"userInfo"`
	ExpiresAt int64           `json:"expiresAt"`
	Token     string          `json:"token,omitempty"`
}

// Store abstracts the durable client-side storage so a reload does not lose
// the session. Load returns nil when nothing is persisted.
type Store interface {
	Load() (*AuthInfo, error)
	Save(info *AuthInfo) error
	Clear() error
}

// Navigator performs the navigation side effect after state changes
type Navigator interface {
	Navigate(path string)
}

// Manager owns the in-memory auth state and keeps it in sync with the
// store. Safe for concurrent use.
type Manager struct {
	mu    sync.Mutex
	store Store
	nav   Navigator
	cur   *AuthInfo
	now   func() time.Time
}

// NewManager creates a manager, restoring any persisted session
func NewManager(store Store, nav Navigator) (*Manager, error) {
	info, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load auth state: %w", err)
	}

	return &Manager{
		store: store,
		nav:   nav,
		cur:   info,
		now:   time.Now,
	}, nil
}

// IsAuthenticated reports whether an expiry is recorded and has not passed.
// It never contacts the server.
func (m *Manager) IsAuthenticated() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.cur == nil || m.cur.ExpiresAt == 0 {
		return false
	}
	return m.now().Unix() < m.cur.ExpiresAt
}

// IsAdmin reports whether the stored claims carry the admin role
func (m *Manager) IsAdmin() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.cur != nil && m.cur.UserInfo.Role == models.RoleAdmin
}

// SetAuthInfo persists and updates the state after a successful
// authentication response
func (m *Manager) SetAuthInfo(info models.UserInfo, expiresAt int64, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	next := &AuthInfo{
		UserInfo:  info,
		ExpiresAt: expiresAt,
		Token:     token,
	}

	if err := m.store.Save(next); err != nil {
		return fmt.Errorf("failed to persist auth state: %w", err)
	}

	m.cur = next
	return nil
}

// Current returns a copy of the stored auth info, if any
func (m *Manager) Current() (AuthInfo, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.cur == nil {
		return AuthInfo{}, false
	}
	return *m.cur, true
}

// Logout clears persisted and in-memory state, then navigates to the login
// view
func (m *Manager) Logout() error {
	m.mu.Lock()
	if err := m.store.Clear(); err != nil {
		m.mu.Unlock()
		return fmt.Errorf("failed to clear auth state: %w", err)
	}
	m.cur = nil
	m.mu.Unlock()

	if m.nav != nil {
		m.nav.Navigate(LoginPath)
	}
	return nil
}
