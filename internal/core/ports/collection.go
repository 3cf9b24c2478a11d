package ports

import (
	"context"

	"github.com/realto/plots-api/internal/core/domain"
	"github.com/realto/plots-api/internal/core/query"
)

// CollectionStore is a key-value byte store for Persisted Collections.
type CollectionStore interface {
	// Get returns domain.ErrRecordNotFound when the key was never written.
	Get(ctx context.Context, key string) ([]byte, error)
	CollectionWriter
}

// CollectionWriter rewrites a full collection snapshot under key.
// Implementations may apply the write asynchronously.
type CollectionWriter interface {
	Put(ctx context.Context, key string, payload []byte) error
}

// CollectionView is a collection snapshot with its record type erased, as
// served over HTTP.
type CollectionView struct {
	Name   domain.CollectionName `json:"name"`
	Items  any                   `json:"items"`
	Notice string                `json:"notice,omitempty"`
}

// CollectionService is one named collection. Owners are app instances.
type CollectionService interface {
	Name() domain.CollectionName
	Search(ctx context.Context, owner string, q query.Query) (*CollectionView, error)
	// Add decodes raw as one record of the collection's type.
	Add(ctx context.Context, owner string, raw []byte) (*CollectionView, error)
	Remove(ctx context.Context, owner, id string) (*CollectionView, error)
}
