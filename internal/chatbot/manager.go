package chatbot

import (
	"sync"

	"github.com/Pablo751/3mchatbot/internal/catalog"
)

// Manager is a session-keyed factory: one Session per end-user
// conversation, never shared across users. All sessions read the same
// catalog through the same gateway.
type Manager struct {
	mu       sync.RWMutex
	sessions map[int64]*Session

	catalog *catalog.Store
	gateway *Gateway
}

func NewManager(cat *catalog.Store, gw *Gateway) *Manager {
	return &Manager{
		sessions: make(map[int64]*Session),
		catalog:  cat,
		gateway:  gw,
	}
}

// Session returns the session for the given conversation key, creating it
// on first use.
func (m *Manager) Session(id int64) *Session {
	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()
	if ok {
		return s
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[id]; ok {
		return s
	}
	s = NewSession(m.catalog, m.gateway)
	m.sessions[id] = s
	return s
}

// Reset clears the conversation for the given key. A session that was
// never created stays absent.
func (m *Manager) Reset(id int64) {
	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()
	if ok {
		s.Reset()
	}
}
