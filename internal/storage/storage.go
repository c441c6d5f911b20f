package storage

import (
	"sync"

	"github.com/ecoleta/registrar/internal/form"
	"github.com/ecoleta/registrar/internal/metrics"
)

// SessionStore holds the live form sessions of the HTTP adapter
type SessionStore struct {
	sessions map[string]*form.Session
	mu       sync.RWMutex
}

func New() *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*form.Session),
	}
}

func (s *SessionStore) Get(sessionID string) (*form.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, exists := s.sessions[sessionID]
	return session, exists
}

func (s *SessionStore) Set(sessionID string, session *form.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sessionID] = session
	metrics.SessionsActive.Set(float64(len(s.sessions)))
}

func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Delete removes a session and releases its staged preview
func (s *SessionStore) Delete(sessionID string) {
	s.mu.Lock()
	session, exists := s.sessions[sessionID]
	delete(s.sessions, sessionID)
	metrics.SessionsActive.Set(float64(len(s.sessions)))
	s.mu.Unlock()

	if exists {
		session.Close()
	}
}
