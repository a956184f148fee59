// Package memory is the single-process session backend. State is lost on
// restart; use the redis or postgres backend when running more than one
// instance.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/nhs-digital-gp-it-futures/order-form-sub000/internal/application"
)

var (
	_ application.SessionStore          = (*SessionStore)(nil)
	_ application.ExpiredSessionRemover = (*SessionStore)(nil)
)

type entry struct {
	values    map[string][]byte
	expiresAt time.Time
}

type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*entry
	ttl      time.Duration
	now      func() time.Time
}

func NewSessionStore(ttl time.Duration) *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*entry),
		ttl:      ttl,
		now:      time.Now,
	}
}

func (s *SessionStore) Get(_ context.Context, sessionID, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.sessions[sessionID]
	if !ok || !s.now().Before(e.expiresAt) {
		return nil, false, nil
	}

	value, ok := e.values[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, true, nil
}

// Set writes key and extends the whole session's lifetime.
func (s *SessionStore) Set(_ context.Context, sessionID, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	e, ok := s.sessions[sessionID]
	if !ok || !now.Before(e.expiresAt) {
		e = &entry{values: make(map[string][]byte)}
		s.sessions[sessionID] = e
	}

	stored := make([]byte, len(value))
	copy(stored, value)
	e.values[key] = stored
	e.expiresAt = now.Add(s.ttl)
	return nil
}

func (s *SessionStore) Clear(_ context.Context, sessionID string, keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(keys) == 0 {
		delete(s.sessions, sessionID)
		return nil
	}

	e, ok := s.sessions[sessionID]
	if !ok {
		return nil
	}
	for _, k := range keys {
		delete(e.values, k)
	}
	return nil
}

func (s *SessionStore) Touch(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if e, ok := s.sessions[sessionID]; ok && now.Before(e.expiresAt) {
		e.expiresAt = now.Add(s.ttl)
	}
	return nil
}

// DeleteExpired drops up to limit sessions that expired before the given
// time and reports how many went.
func (s *SessionStore) DeleteExpired(_ context.Context, before time.Time, limit int) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var removed int64
	for id, e := range s.sessions {
		if limit > 0 && removed >= int64(limit) {
			break
		}
		if !e.expiresAt.After(before) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed, nil
}

// Len is the number of sessions held, expired or not.
func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
