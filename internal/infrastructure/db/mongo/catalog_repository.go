package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/realto/plots-api/internal/core/domain"
)

const (
	collectionPlots    = "plots"
	collectionProjects = "projects"
)

type PlotRepository struct {
	col *mongo.Collection
}

func NewPlotRepository(db *mongo.Database) *PlotRepository {
	return &PlotRepository{col: db.Collection(collectionPlots)}
}

func (r *PlotRepository) FindByID(ctx context.Context, id string) (*domain.Plot, error) {
	return findOne[domain.Plot](ctx, r.col, bson.M{"_id": id}, domain.ErrPlotNotFound)
}

// ListByOwner returns the owner's plots in insertion order, which is the
// order the app shows them in.
func (r *PlotRepository) ListByOwner(ctx context.Context, ownerID string) ([]domain.Plot, error) {
	return findAll[domain.Plot](ctx, r.col, bson.M{"owner_id": ownerID}, bson.D{{Key: "_id", Value: 1}})
}

func (r *PlotRepository) ListByProject(ctx context.Context, projectID string) ([]domain.Plot, error) {
	return findAll[domain.Plot](ctx, r.col, bson.M{"project_id": projectID}, bson.D{{Key: "_id", Value: 1}})
}

func (r *PlotRepository) Upsert(ctx context.Context, p *domain.Plot) error {
	return upsertByID(ctx, r.col, p.ID, p)
}

func (r *PlotRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	_, err := r.col.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "owner_id", Value: 1}}},
		{Keys: bson.D{{Key: "project_id", Value: 1}}},
	})
	return err
}

type ProjectRepository struct {
	col *mongo.Collection
}

func NewProjectRepository(db *mongo.Database) *ProjectRepository {
	return &ProjectRepository{col: db.Collection(collectionProjects)}
}

func (r *ProjectRepository) FindByID(ctx context.Context, id string) (*domain.Project, error) {
	return findOne[domain.Project](ctx, r.col, bson.M{"_id": id}, domain.ErrProjectNotFound)
}

func (r *ProjectRepository) List(ctx context.Context) ([]domain.Project, error) {
	return findAll[domain.Project](ctx, r.col, bson.M{}, bson.D{{Key: "_id", Value: 1}})
}

func (r *ProjectRepository) Upsert(ctx context.Context, p *domain.Project) error {
	return upsertByID(ctx, r.col, p.ID, p)
}
