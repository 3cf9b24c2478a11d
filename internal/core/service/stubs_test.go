package service

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog"

	"github.com/realto/plots-api/internal/core/domain"
)

var discardLogger = zerolog.Nop()

// ---------------------------------------------------------------------------
// Session store
// ---------------------------------------------------------------------------

type stubSessionStore struct {
	mu       sync.Mutex
	sessions map[string]*domain.Session
	putErr   error
}

func newStubSessionStore() *stubSessionStore {
	return &stubSessionStore{sessions: make(map[string]*domain.Session)}
}

func (s *stubSessionStore) Get(_ context.Context, instanceID string) (*domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[instanceID]
	if !ok {
		return nil, domain.ErrNoSession
	}
	clone := *sess
	return &clone, nil
}

func (s *stubSessionStore) Put(_ context.Context, sess *domain.Session) error {
	if s.putErr != nil {
		return s.putErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := *sess
	s.sessions[sess.InstanceID] = &clone
	return nil
}

func (s *stubSessionStore) Delete(_ context.Context, instanceID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, instanceID)
	return nil
}

// ---------------------------------------------------------------------------
// Collection store
// ---------------------------------------------------------------------------

type stubCollectionStore struct {
	mu     sync.Mutex
	data   map[string][]byte
	puts   int
	getErr error
	putErr error
}

func newStubCollectionStore() *stubCollectionStore {
	return &stubCollectionStore{data: make(map[string][]byte)}
}

func (s *stubCollectionStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.getErr != nil {
		return nil, s.getErr
	}
	v, ok := s.data[key]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}
	return append([]byte(nil), v...), nil
}

func (s *stubCollectionStore) Put(_ context.Context, key string, payload []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.puts++
	if s.putErr != nil {
		return s.putErr
	}
	s.data[key] = append([]byte(nil), payload...)
	return nil
}

// ---------------------------------------------------------------------------
// Catalog repositories
// ---------------------------------------------------------------------------

type stubPlotRepo struct {
	plots   []domain.Plot
	listErr error
}

func (r *stubPlotRepo) FindByID(_ context.Context, id string) (*domain.Plot, error) {
	for _, p := range r.plots {
		if p.ID == id {
			clone := p
			return &clone, nil
		}
	}
	return nil, domain.ErrPlotNotFound
}

func (r *stubPlotRepo) ListByOwner(_ context.Context, ownerID string) ([]domain.Plot, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	var out []domain.Plot
	for _, p := range r.plots {
		if p.OwnerID == ownerID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *stubPlotRepo) ListByProject(_ context.Context, projectID string) ([]domain.Plot, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	var out []domain.Plot
	for _, p := range r.plots {
		if p.ProjectID == projectID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *stubPlotRepo) Upsert(_ context.Context, p *domain.Plot) error {
	r.plots = append(r.plots, *p)
	return nil
}

type stubProjectRepo struct {
	projects []domain.Project
}

func (r *stubProjectRepo) FindByID(_ context.Context, id string) (*domain.Project, error) {
	for _, p := range r.projects {
		if p.ID == id {
			clone := p
			return &clone, nil
		}
	}
	return nil, domain.ErrProjectNotFound
}

func (r *stubProjectRepo) List(_ context.Context) ([]domain.Project, error) {
	return append([]domain.Project(nil), r.projects...), nil
}

func (r *stubProjectRepo) Upsert(_ context.Context, p *domain.Project) error {
	r.projects = append(r.projects, *p)
	return nil
}

func catalogFixture() (*stubPlotRepo, *stubProjectRepo) {
	projects := &stubProjectRepo{projects: []domain.Project{
		{ID: "p1", Name: "Green Valley", City: "Chennai", Description: "Premium residential plots", Site: domain.Coordinates{Lat: 13.0827, Lng: 80.2707}},
		{ID: "p2", Name: "Lakeside Manor", City: "Bangalore", Description: "Luxury plots with lake views", Site: domain.Coordinates{Lat: 12.9716, Lng: 77.5946}},
	}}
	plots := &stubPlotRepo{plots: []domain.Plot{
		{ID: "1", ProjectID: "p1", ProjectName: "Green Valley", OwnerID: "client-001", Title: "Premium Villa Plot", Location: "Green Valley, Pune Road", PlotNumber: "A-123", ValueEstimate: "₹1.85 Cr"},
		{ID: "2", ProjectID: "p2", ProjectName: "Lakeside Manor", OwnerID: "client-001", Title: "Commercial Plot", Location: "Tech Park, MIDC Shiroli", PlotNumber: "C-45", ValueEstimate: "₹3.2 Cr"},
		{ID: "3", ProjectID: "p1", ProjectName: "Green Valley", OwnerID: "", Title: "Residential Plot", Location: "Green Valley, Phase 2", PlotNumber: "A-200"},
	}}
	return plots, projects
}

var errBoom = errors.New("boom")
