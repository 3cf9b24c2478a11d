package ports

import (
	"context"

	"github.com/realto/plots-api/internal/core/domain"
	"github.com/realto/plots-api/internal/core/query"
)

// PlotRepository defines persistence operations for plots.
type PlotRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Plot, error)
	ListByOwner(ctx context.Context, ownerID string) ([]domain.Plot, error)
	ListByProject(ctx context.Context, projectID string) ([]domain.Plot, error)
	Upsert(ctx context.Context, p *domain.Plot) error
}

// ProjectRepository defines persistence operations for projects.
type ProjectRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context) ([]domain.Project, error)
	Upsert(ctx context.Context, p *domain.Project) error
}

// CatalogService answers the read-only list screens.
type CatalogService interface {
	ListOwnedPlots(ctx context.Context, ownerID string, q query.Query) ([]domain.Plot, error)
	GetPlot(ctx context.Context, id string) (*domain.Plot, error)
	ListProjects(ctx context.Context, q query.Query) ([]domain.Project, error)
	ListProjectPlots(ctx context.Context, projectID string, q query.Query) ([]domain.Plot, error)
}
