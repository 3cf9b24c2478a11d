// Package memory implements the Session and collection stores in process
// memory. It backs the "memory" storage driver and tests.
package memory

import (
	"context"
	"sync"

	"github.com/realto/plots-api/internal/core/domain"
)

// SessionStore holds one Session per instance.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]domain.Session
}

func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]domain.Session)}
}

func (s *SessionStore) Get(_ context.Context, instanceID string) (*domain.Session, error) {
	s.mu.RLock()
	sess, ok := s.sessions[instanceID]
	s.mu.RUnlock()
	if !ok {
		return nil, domain.ErrNoSession
	}
	return &sess, nil
}

// Put stores a copy of sess, replacing any previous value.
func (s *SessionStore) Put(_ context.Context, sess *domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.InstanceID] = *sess
	return nil
}

func (s *SessionStore) Delete(_ context.Context, instanceID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, instanceID)
	return nil
}

// CollectionStore is a byte-slice map keyed like the Redis store.
type CollectionStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewCollectionStore() *CollectionStore {
	return &CollectionStore{data: make(map[string][]byte)}
}

func (s *CollectionStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	v, ok := s.data[key]
	s.mu.RUnlock()
	if !ok {
		return nil, domain.ErrRecordNotFound
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

func (s *CollectionStore) Put(_ context.Context, key string, payload []byte) error {
	cp := make([]byte, len(payload))
	copy(cp, payload)
	s.mu.Lock()
	s.data[key] = cp
	s.mu.Unlock()
	return nil
}
