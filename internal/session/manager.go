package session

import (
	"net/http"

	"github.com/google/uuid"
)

// Manager binds browser cookies to registry entries.
type Manager struct {
	registry *Registry
	codec    *CookieCodec
	newID    func() string
}

// NewManager wires a registry and cookie codec.
func NewManager(registry *Registry, codec *CookieCodec) *Manager {
	return &Manager{registry: registry, codec: codec, newID: uuid.NewString}
}

// Load returns the visitor's session and re-issues its cookie, so the cookie
// lifetime slides along with the registry entry. A missing or forged cookie
// gets a new ID; a signed ID the registry no longer knows resumes as a fresh
// session.
func (m *Manager) Load(w http.ResponseWriter, r *http.Request) (*Session, error) {
	id, ok := m.codec.Read(r)
	if !ok {
		id = m.newID()
	}
	s, found := m.registry.Get(id)
	if !found {
		s = New(id)
	}
	if err := m.codec.Write(w, id); err != nil {
		return nil, err
	}
	return s, nil
}

// Save persists the session after a handler applied its transitions. Only
// signed-in sessions are stored; a guest's page comes from the URL it asks for.
func (m *Manager) Save(s *Session) {
	if !s.Authenticated {
		m.registry.Delete(s.ID)
		return
	}
	m.registry.Put(s)
}

// Renew discards s and issues a brand new session under a new ID.
func (m *Manager) Renew(w http.ResponseWriter, s *Session) (*Session, error) {
	if s != nil {
		m.registry.Delete(s.ID)
	}
	s = New(m.newID())
	if err := m.codec.Write(w, s.ID); err != nil {
		return nil, err
	}
	return s, nil
}
