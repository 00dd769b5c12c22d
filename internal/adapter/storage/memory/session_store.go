package memory

import (
	"context"
	"sync"
	"time"

	"solana-money-mover/internal/core/domain"
)

type entry struct {
	session   *domain.Session
	expiresAt time.Time
}

// SessionStore is an in-memory implementation of ports.SessionStore for
// single-instance deployments. Expired entries are invisible to Get
// immediately; Sweep reclaims their memory on a schedule.
type SessionStore struct {
	mu      sync.RWMutex
	entries map[string]entry
	now     func() time.Time
}

// NewSessionStore creates an empty in-memory session store.
func NewSessionStore() *SessionStore {
	return &SessionStore{
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

// Put stores a session under its token with the given TTL.
func (s *SessionStore) Put(_ context.Context, session *domain.Session, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[session.Token] = entry{
		session:   session,
		expiresAt: s.now().Add(ttl),
	}
	return nil
}

// Get returns the session for a token, or nil if unknown or expired.
func (s *SessionStore) Get(_ context.Context, token string) (*domain.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[token]
	if !ok || s.now().After(e.expiresAt) {
		return nil, nil
	}
	return e.session, nil
}

// Sweep evicts expired entries and returns the number evicted.
func (s *SessionStore) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	evicted := 0
	for token, e := range s.entries {
		if now.After(e.expiresAt) {
			delete(s.entries, token)
			evicted++
		}
	}
	return evicted
}

// Len returns the number of live plus not-yet-swept entries.
func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
