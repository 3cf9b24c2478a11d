package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/realto/plots-api/internal/core/domain"
)

// SessionStore keeps one Session per app instance in Redis.
// Key format: session:<instance_id>
type SessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSessionStore creates a SessionStore. Entries expire after ttl so an
// abandoned instance does not hold a Session forever; ttl <= 0 disables expiry.
func NewSessionStore(client *redis.Client, ttl time.Duration) *SessionStore {
	return &SessionStore{client: client, ttl: ttl}
}

func (s *SessionStore) Get(ctx context.Context, instanceID string) (*domain.Session, error) {
	raw, err := s.client.Get(ctx, s.key(instanceID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrNoSession
	}
	if err != nil {
		return nil, fmt.Errorf("session get: %w", err)
	}

	var sess domain.Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		return nil, fmt.Errorf("session decode: %w", err)
	}
	return &sess, nil
}

// Put overwrites the instance's Session. Concurrent writers resolve to the
// last write.
func (s *SessionStore) Put(ctx context.Context, sess *domain.Session) error {
	raw, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("session encode: %w", err)
	}
	return s.client.Set(ctx, s.key(sess.InstanceID), raw, s.ttl).Err()
}

func (s *SessionStore) Delete(ctx context.Context, instanceID string) error {
	return s.client.Del(ctx, s.key(instanceID)).Err()
}

func (s *SessionStore) key(instanceID string) string {
	return "session:" + instanceID
}
