// Package session holds the in-process session store used when no Redis is
// configured.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/99minutos/storefront-system/internal/core/domain"
)

type entry struct {
	identity  domain.Identity
	expiresAt time.Time
}

// MemoryStore implements ports.SessionStore in memory. Sessions do not
// survive a restart.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]entry
	now      func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]entry),
		now:      time.Now,
	}
}

func (s *MemoryStore) Put(_ context.Context, id string, identity domain.Identity, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[id] = entry{identity: identity, expiresAt: s.now().Add(ttl)}
	return nil
}

// Get returns domain.ErrSessionNotFound for unknown ids and drops expired
// sessions on access.
func (s *MemoryStore) Get(_ context.Context, id string) (*domain.Identity, error) {
	s.mu.RLock()
	e, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return nil, domain.ErrSessionNotFound
	}

	if !s.now().Before(e.expiresAt) {
		s.mu.Lock()
		if cur, ok := s.sessions[id]; ok && cur.expiresAt.Equal(e.expiresAt) {
			delete(s.sessions, id)
		}
		s.mu.Unlock()
		return nil, domain.ErrSessionNotFound
	}

	identity := e.identity
	return &identity, nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}

// Ping always succeeds.
func (s *MemoryStore) Ping(context.Context) error { return nil }
