// Package session holds the per-login SessionProfile mirrors in memory.
// It replaces the framework-global session object of a typical web stack
// with an explicit registry keyed by username.
package session

import (
	"sync"

	"github.com/iudanet/studybuddy/internal/models"
)

// Manager хранит активные сессии пользователей
type Manager struct {
	sessions map[string]*models.SessionProfile
	mu       sync.RWMutex
}

// NewManager создает новый пустой registry сессий
func NewManager() *Manager {
	return &Manager{
		sessions: make(map[string]*models.SessionProfile),
	}
}

// Create builds a fresh session profile hydrated from the stored account
// and registers it. An existing session for the username is replaced:
// study history always starts empty on a new login.
func (m *Manager) Create(username string, user *models.User) *models.SessionProfile {
	profile := models.NewSessionProfile()
	profile.HydrateFromUser(user)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[username] = profile

	return profile
}

// Get returns the active session profile, or false if the user
// has no session (not logged in or already logged out).
func (m *Manager) Get(username string) (*models.SessionProfile, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	profile, ok := m.sessions[username]
	return profile, ok
}

// Delete discards the session entirely. Study history and progress are
// not persisted anywhere: they are gone after this call.
func (m *Manager) Delete(username string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, username)
}
