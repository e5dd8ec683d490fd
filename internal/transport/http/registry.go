package http

import (
	"log"
	"sync"
)

// session is the registry's view of one attendee connection.
type session interface {
	ID() string
	Send(frame []byte) error
	Close()
}

// Registry tracks every currently connected attendee. It owns connection
// lifetime: a send failure during broadcast unregisters and closes the
// offending session without touching the others.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]session
}

func NewRegistry() *Registry {
	return &Registry{sessions: make(map[string]session)}
}

// Register admits a session under its id.
func (r *Registry) Register(s session) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[s.ID()] = s
}

// Unregister removes and closes a session. Idempotent; safe on abrupt
// disconnect.
func (r *Registry) Unregister(id string) {
	r.mu.Lock()
	s, ok := r.sessions[id]
	if ok {
		delete(r.sessions, id)
	}
	r.mu.Unlock()
	if ok {
		s.Close()
	}
}

// Broadcast sends the frame to every registered session. Iteration happens
// over a snapshot so registration churn during fan-out is safe.
func (r *Registry) Broadcast(frame []byte) {
	r.mu.RLock()
	snapshot := make([]session, 0, len(r.sessions))
	for _, s := range r.sessions {
		snapshot = append(snapshot, s)
	}
	r.mu.RUnlock()

	for _, s := range snapshot {
		if err := s.Send(frame); err != nil {
			log.Printf("dropping session %s: %v", s.ID(), err)
			r.Unregister(s.ID())
		}
	}
}

// Count returns the number of connected attendees.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
