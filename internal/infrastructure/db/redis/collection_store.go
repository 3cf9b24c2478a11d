package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/realto/plots-api/internal/core/domain"
)

// CollectionStore persists collection snapshots as plain string values.
// Keys are built by the caller and never expire.
type CollectionStore struct {
	client *redis.Client
}

func NewCollectionStore(client *redis.Client) *CollectionStore {
	return &CollectionStore{client: client}
}

func (s *CollectionStore) Get(ctx context.Context, key string) ([]byte, error) {
	raw, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrRecordNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("collection get: %w", err)
	}
	return raw, nil
}

func (s *CollectionStore) Put(ctx context.Context, key string, payload []byte) error {
	return s.client.Set(ctx, key, payload, 0).Err()
}
