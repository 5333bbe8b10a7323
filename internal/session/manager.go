package session

import (
	"sort"
	"sync"

	"webterm/internal/catalog"
	"webterm/internal/errors"
	"webterm/internal/log"
)

// ErrTooManySessions is returned by Open when the session limit is reached
var ErrTooManySessions = errors.New("too many sessions")

// Manager hands out sessions that share one immutable catalog. Replacing
// the catalog only affects sessions opened afterwards.
type Manager struct {
	mu       sync.RWMutex
	catalog  *catalog.Catalog
	opts     Options
	max      int
	sessions map[string]*Session
}

// NewManager creates a manager. max <= 0 means unlimited.
func NewManager(c *catalog.Catalog, opts Options, max int) *Manager {
	return &Manager{
		catalog:  c,
		opts:     opts,
		max:      max,
		sessions: make(map[string]*Session),
	}
}

// Open starts a new session for user
func (m *Manager) Open(user string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.max > 0 && len(m.sessions) >= m.max {
		return nil, ErrTooManySessions
	}

	opts := m.opts
	if user != "" {
		opts.User = user
	}
	s := New(m.catalog, opts)
	m.sessions[s.ID()] = s
	log.LogWithFields(log.F("session", s.ID()), log.F("user", s.User())).Info("session opened")
	return s, nil
}

// Close forgets the session with id
func (m *Manager) Close(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sessions[id]; ok {
		delete(m.sessions, id)
		log.LogWithFields(log.F("session", id)).Info("session closed")
	}
}

// Get returns the session with id
func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	return s, ok
}

// IDs returns the ids of open sessions, sorted
func (m *Manager) IDs() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ids := make([]string, 0, len(m.sessions))
	for id := range m.sessions {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Len returns the number of open sessions
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// Catalog returns the catalog new sessions will use
func (m *Manager) Catalog() *catalog.Catalog {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.catalog
}

// SetCatalog swaps the catalog for sessions opened from now on
func (m *Manager) SetCatalog(c *catalog.Catalog) {
	if c == nil {
		return
	}
	m.mu.Lock()
	m.catalog = c
	m.mu.Unlock()
	log.Info("catalog replaced, %d directories", len(c.Directories()))
}
