package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/realto/plots-api/internal/core/domain"
)

const collectionVisits = "site_visits"

type VisitRepository struct {
	col *mongo.Collection
}

func NewVisitRepository(db *mongo.Database) *VisitRepository {
	return &VisitRepository{col: db.Collection(collectionVisits)}
}

func (r *VisitRepository) Create(ctx context.Context, v *domain.SiteVisit) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, v)
	if mongo.IsDuplicateKeyError(err) {
		return domain.ErrDuplicateRecord
	}
	return err
}

func (r *VisitRepository) FindByID(ctx context.Context, id string) (*domain.SiteVisit, error) {
	return findOne[domain.SiteVisit](ctx, r.col, bson.M{"_id": id}, domain.ErrVisitNotFound)
}

// ListByVisitor returns visits ordered by booking time. An empty visitorID
// lists every visit.
func (r *VisitRepository) ListByVisitor(ctx context.Context, visitorID string) ([]domain.SiteVisit, error) {
	filter := bson.M{}
	if visitorID != "" {
		filter["visitor_id"] = visitorID
	}
	return findAll[domain.SiteVisit](ctx, r.col, filter, bson.D{{Key: "created_at", Value: 1}})
}

func (r *VisitRepository) Update(ctx context.Context, v *domain.SiteVisit) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": v.ID}, v)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrVisitNotFound
	}
	return nil
}

func (r *VisitRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	_, err := r.col.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "visitor_id", Value: 1}, {Key: "created_at", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	})
	return err
}
