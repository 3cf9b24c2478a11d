package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/realto/plots-api/internal/core/domain"
	"github.com/realto/plots-api/internal/core/ports"
	"github.com/realto/plots-api/internal/core/query"
)

// Erase exposes a typed collection through ports.CollectionService so
// callers can hold collections of different record types side by side.
func Erase[T Record](s *CollectionService[T]) ports.CollectionService {
	return erased[T]{s: s}
}

type erased[T Record] struct {
	s *CollectionService[T]
}

func (e erased[T]) Name() domain.CollectionName { return e.s.Name() }

func (e erased[T]) Search(ctx context.Context, owner string, q query.Query) (*ports.CollectionView, error) {
	snap, err := e.s.Search(ctx, owner, q)
	if err != nil {
		return nil, err
	}
	return view(snap), nil
}

func (e erased[T]) Add(ctx context.Context, owner string, raw []byte) (*ports.CollectionView, error) {
	var item T
	if err := json.Unmarshal(raw, &item); err != nil {
		return nil, fmt.Errorf("%w: malformed %s record", domain.ErrValidation, e.s.Name())
	}
	snap, err := e.s.Add(ctx, owner, item)
	if err != nil {
		return nil, err
	}
	return view(snap), nil
}

func (e erased[T]) Remove(ctx context.Context, owner, id string) (*ports.CollectionView, error) {
	snap, err := e.s.Remove(ctx, owner, id)
	if err != nil {
		return nil, err
	}
	return view(snap), nil
}

func view[T Record](snap Snapshot[T]) *ports.CollectionView {
	return &ports.CollectionView{Name: snap.Name, Items: snap.Items, Notice: snap.Notice}
}
