package auth

import (
	"context"
	"sync"
	"time"
)

// SessionStore tracks live refresh sessions by ID. The Redis store implements
// it for deployments; MemorySessions backs single-node runs and tests.
type SessionStore interface {
	Put(ctx context.Context, sessionID string, ttl time.Duration) error
	Revoke(ctx context.Context, sessionID string) error
	Active(ctx context.Context, sessionID string) (bool, error)
}

// MemorySessions is an in-process SessionStore (sessionID -> expiry).
// Expired entries are dropped lazily on lookup.
type MemorySessions struct {
	entries sync.Map
}

func NewMemorySessions() *MemorySessions {
	return &MemorySessions{}
}

func (m *MemorySessions) Put(_ context.Context, sessionID string, ttl time.Duration) error {
	m.entries.Store(sessionID, time.Now().Add(ttl))
	return nil
}

func (m *MemorySessions) Revoke(_ context.Context, sessionID string) error {
	m.entries.Delete(sessionID)
	return nil
}

func (m *MemorySessions) Active(_ context.Context, sessionID string) (bool, error) {
	v, ok := m.entries.Load(sessionID)
	if !ok {
		return false, nil
	}

	expiry, ok := v.(time.Time)
	if !ok || time.Now().After(expiry) {
		m.entries.Delete(sessionID)
		return false, nil
	}

	return true, nil
}
