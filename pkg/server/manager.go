package server

import (
	"sync"
)

// SessionManager tracks connected sessions and enforces the session cap.
type SessionManager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	max      int

	totalCreated int
	totalClosed  int
	peak         int
}

// NewSessionManager creates a manager with the given cap (zero = no cap).
func NewSessionManager(max int) *SessionManager {
	return &SessionManager{
		sessions: make(map[string]*Session),
		max:      max,
	}
}

// Register adds a session, failing when the cap is reached.
func (sm *SessionManager) Register(s *Session) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if sm.max > 0 && len(sm.sessions) >= sm.max {
		return ErrMaxSessionsReached
	}
	sm.sessions[s.ID()] = s
	sm.totalCreated++
	if len(sm.sessions) > sm.peak {
		sm.peak = len(sm.sessions)
	}
	metrics().activeSessions.Inc()
	metrics().sessionsTotal.Inc()
	return nil
}

// Unregister removes a session.
func (sm *SessionManager) Unregister(s *Session) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if _, ok := sm.sessions[s.ID()]; !ok {
		return
	}
	delete(sm.sessions, s.ID())
	sm.totalClosed++
	metrics().activeSessions.Dec()
}

// Get returns a session by id.
func (sm *SessionManager) Get(id string) (*Session, error) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	s, ok := sm.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// Len returns the number of connected sessions.
func (sm *SessionManager) Len() int {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return len(sm.sessions)
}

// Each calls fn for every connected session.
func (sm *SessionManager) Each(fn func(*Session)) {
	sm.mu.RLock()
	snapshot := make([]*Session, 0, len(sm.sessions))
	for _, s := range sm.sessions {
		snapshot = append(snapshot, s)
	}
	sm.mu.RUnlock()
	for _, s := range snapshot {
		fn(s)
	}
}

// CloseAll closes every session.
func (sm *SessionManager) CloseAll() {
	sm.Each(func(s *Session) { s.Close() })
}

// Stats reports manager counters.
type Stats struct {
	Active       int
	TotalCreated int
	TotalClosed  int
	Peak         int
}

// Stats returns a snapshot of the manager counters.
func (sm *SessionManager) Stats() Stats {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return Stats{
		Active:       len(sm.sessions),
		TotalCreated: sm.totalCreated,
		TotalClosed:  sm.totalClosed,
		Peak:         sm.peak,
	}
}
