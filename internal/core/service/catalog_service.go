package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/realto/plots-api/internal/core/domain"
	"github.com/realto/plots-api/internal/core/ports"
	"github.com/realto/plots-api/internal/core/query"
)

// CatalogService serves the project and plot lists. Repositories return
// whole lists; narrowing is done in memory by the query engine.
type CatalogService struct {
	plots    ports.PlotRepository
	projects ports.ProjectRepository
	log      zerolog.Logger
}

func NewCatalogService(plots ports.PlotRepository, projects ports.ProjectRepository, log zerolog.Logger) *CatalogService {
	return &CatalogService{
		plots:    plots,
		projects: projects,
		log:      log.With().Str("component", "catalog").Logger(),
	}
}

func (s *CatalogService) ListOwnedPlots(ctx context.Context, ownerID string, q query.Query) ([]domain.Plot, error) {
	if err := query.Plots.Validate(q); err != nil {
		return nil, err
	}
	plots, err := s.plots.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return query.Apply(plots, q, query.Plots), nil
}

func (s *CatalogService) GetPlot(ctx context.Context, id string) (*domain.Plot, error) {
	return s.plots.FindByID(ctx, id)
}

func (s *CatalogService) ListProjects(ctx context.Context, q query.Query) ([]domain.Project, error) {
	if err := query.Projects.Validate(q); err != nil {
		return nil, err
	}
	projects, err := s.projects.List(ctx)
	if err != nil {
		return nil, err
	}
	return query.Apply(projects, q, query.Projects), nil
}

func (s *CatalogService) ListProjectPlots(ctx context.Context, projectID string, q query.Query) ([]domain.Plot, error) {
	if err := query.Plots.Validate(q); err != nil {
		return nil, err
	}
	if _, err := s.projects.FindByID(ctx, projectID); err != nil {
		return nil, err
	}
	plots, err := s.plots.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return query.Apply(plots, q, query.Plots), nil
}
