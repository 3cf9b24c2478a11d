package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"hash/fnv"
	"slices"
	"sync"

	"github.com/rs/zerolog"

	"github.com/realto/plots-api/internal/core/domain"
	"github.com/realto/plots-api/internal/core/ports"
	"github.com/realto/plots-api/internal/core/query"
)

// Record is anything a Persisted Collection can hold.
type Record interface {
	RecordID() string
}

// Snapshot is a collection as last read or written. Notice carries a
// non-fatal storage problem the app should show to the user.
type Snapshot[T Record] struct {
	Name   domain.CollectionName
	Items  []T
	Notice string

	loaded bool
}

// CollectionKey is the storage key of one instance's collection.
func CollectionKey(owner string, name domain.CollectionName) string {
	return "collection:" + owner + ":" + string(name)
}

const ownerLockStripes = 32

// CollectionService keeps one named list per owner. Every mutation
// rewrites the full list; there are no partial updates. Read-modify-write
// cycles of one owner are serialised, so concurrent requests from the
// same instance do not drop each other's changes.
type CollectionService[T Record] struct {
	name     domain.CollectionName
	defaults []T
	spec     query.Spec[T]
	store    ports.CollectionStore
	writer   ports.CollectionWriter
	log      zerolog.Logger

	locks [ownerLockStripes]sync.Mutex
}

// NewCollectionService wires a collection. When writer is nil, writes go
// straight to store.
func NewCollectionService[T Record](
	name domain.CollectionName,
	defaults []T,
	spec query.Spec[T],
	store ports.CollectionStore,
	writer ports.CollectionWriter,
	log zerolog.Logger,
) *CollectionService[T] {
	if writer == nil {
		writer = store
	}
	return &CollectionService[T]{
		name:     name,
		defaults: defaults,
		spec:     spec,
		store:    store,
		writer:   writer,
		log:      log.With().Str("component", "collection").Str("collection", string(name)).Logger(),
	}
}

func (s *CollectionService[T]) Name() domain.CollectionName { return s.name }

// Load reads the owner's list. A list that was never written is seeded
// with the defaults and written back at once. Read failures fall back to
// an empty list and a Notice.
func (s *CollectionService[T]) Load(ctx context.Context, owner string) Snapshot[T] {
	unlock := s.lock(owner)
	defer unlock()
	return s.load(ctx, owner)
}

// lock holds the owner's stripe until the returned func is called.
func (s *CollectionService[T]) lock(owner string) func() {
	h := fnv.New32a()
	_, _ = h.Write([]byte(owner))
	mu := &s.locks[h.Sum32()%ownerLockStripes]
	mu.Lock()
	return mu.Unlock
}

func (s *CollectionService[T]) load(ctx context.Context, owner string) Snapshot[T] {
	key := CollectionKey(owner, s.name)

	raw, err := s.store.Get(ctx, key)
	if errors.Is(err, domain.ErrRecordNotFound) {
		items := slices.Clone(s.defaults)
		if items == nil {
			items = []T{}
		}
		snap := Snapshot[T]{Name: s.name, Items: items, loaded: true}
		if err := s.write(ctx, key, items); err != nil {
			snap.Notice = s.saveNotice()
		}
		s.log.Debug().Str("key", key).Int("items", len(items)).Msg("seeded default collection")
		return snap
	}
	if err != nil {
		s.warn(&domain.StorageError{Op: "read", Key: key, Err: err})
		return Snapshot[T]{Name: s.name, Items: []T{}, Notice: s.loadNotice()}
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		s.warn(&domain.StorageError{Op: "decode", Key: key, Err: err})
		return Snapshot[T]{Name: s.name, Items: []T{}, Notice: s.loadNotice()}
	}
	if items == nil {
		items = []T{}
	}
	return Snapshot[T]{Name: s.name, Items: items, loaded: true}
}

// Search loads the list and applies q to it.
func (s *CollectionService[T]) Search(ctx context.Context, owner string, q query.Query) (Snapshot[T], error) {
	if err := s.spec.Validate(q); err != nil {
		return Snapshot[T]{Name: s.name, Items: []T{}}, err
	}
	snap := s.Load(ctx, owner)
	snap.Items = query.Apply(snap.Items, q, s.spec)
	return snap, nil
}

// Remove deletes the record with id and rewrites the list.
func (s *CollectionService[T]) Remove(ctx context.Context, owner, id string) (Snapshot[T], error) {
	unlock := s.lock(owner)
	defer unlock()

	snap := s.load(ctx, owner)
	if !snap.loaded {
		return snap, s.unavailable(owner)
	}

	idx := slices.IndexFunc(snap.Items, func(it T) bool { return it.RecordID() == id })
	if idx < 0 {
		return snap, fmt.Errorf("%w: %s", domain.ErrRecordNotFound, id)
	}
	next := slices.Delete(slices.Clone(snap.Items), idx, idx+1)
	return s.replace(ctx, owner, next), nil
}

// Add appends item and rewrites the list.
func (s *CollectionService[T]) Add(ctx context.Context, owner string, item T) (Snapshot[T], error) {
	if item.RecordID() == "" {
		return Snapshot[T]{Name: s.name, Items: []T{}}, fmt.Errorf("%w: id is required", domain.ErrValidation)
	}
	unlock := s.lock(owner)
	defer unlock()

	snap := s.load(ctx, owner)
	if !snap.loaded {
		return snap, s.unavailable(owner)
	}

	if slices.ContainsFunc(snap.Items, func(it T) bool { return it.RecordID() == item.RecordID() }) {
		return snap, fmt.Errorf("%w: %s", domain.ErrDuplicateRecord, item.RecordID())
	}
	next := append(slices.Clone(snap.Items), item)
	return s.replace(ctx, owner, next), nil
}

func (s *CollectionService[T]) replace(ctx context.Context, owner string, items []T) Snapshot[T] {
	snap := Snapshot[T]{Name: s.name, Items: items, loaded: true}
	if err := s.write(ctx, CollectionKey(owner, s.name), items); err != nil {
		snap.Notice = s.saveNotice()
	}
	return snap
}

func (s *CollectionService[T]) write(ctx context.Context, key string, items []T) error {
	payload, err := json.Marshal(items)
	if err != nil {
		s.warn(&domain.StorageError{Op: "encode", Key: key, Err: err})
		return err
	}
	if err := s.writer.Put(ctx, key, payload); err != nil {
		s.warn(&domain.StorageError{Op: "write", Key: key, Err: err})
		return err
	}
	return nil
}

// A mutation on top of a failed read would overwrite stored data with the
// empty fallback, so it is refused instead.
func (s *CollectionService[T]) unavailable(owner string) error {
	return &domain.StorageError{Op: "read", Key: CollectionKey(owner, s.name), Err: errors.New("collection unavailable")}
}

func (s *CollectionService[T]) warn(err *domain.StorageError) {
	s.log.Warn().Err(err.Err).Str("op", err.Op).Str("key", err.Key).Msg("collection storage failure")
}

func (s *CollectionService[T]) loadNotice() string {
	return fmt.Sprintf("Failed to load %s", s.name)
}

func (s *CollectionService[T]) saveNotice() string {
	return fmt.Sprintf("Failed to save %s", s.name)
}
