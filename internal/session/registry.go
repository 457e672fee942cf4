package session

import (
	"sync"
	"time"
)

type entry struct {
	session Session
	expires time.Time
}

// Registry holds live sessions in memory. Callers receive copies, so one
// request never observes another's half-applied transition.
type Registry struct {
	mu        sync.Mutex
	sessions  map[string]entry
	ttl       time.Duration
	now       func() time.Time
	nextSweep time.Time
}

// sweepInterval bounds how often Put scans for expired entries.
const sweepInterval = time.Minute

// NewRegistry creates a registry whose entries expire ttl after last use.
func NewRegistry(ttl time.Duration) *Registry {
	return &Registry{
		sessions: make(map[string]entry),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Get returns a copy of the live session with id.
func (r *Registry) Get(id string) (*Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.sessions[id]
	if !ok {
		return nil, false
	}
	if r.now().After(e.expires) {
		delete(r.sessions, id)
		return nil, false
	}
	s := e.session
	return &s, true
}

// Put stores a copy of s and refreshes its expiry.
func (r *Registry) Put(s *Session) {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := r.now()
	if now.After(r.nextSweep) {
		for id, e := range r.sessions {
			if now.After(e.expires) {
				delete(r.sessions, id)
			}
		}
		r.nextSweep = now.Add(sweepInterval)
	}
	r.sessions[s.ID] = entry{session: *s, expires: now.Add(r.ttl)}
}

// Delete forgets a session.
func (r *Registry) Delete(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
}
