package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/realto/plots-api/internal/core/domain"
)

const collectionSellRequests = "sell_requests"

type SellRequestRepository struct {
	col *mongo.Collection
}

func NewSellRequestRepository(db *mongo.Database) *SellRequestRepository {
	return &SellRequestRepository{col: db.Collection(collectionSellRequests)}
}

func (r *SellRequestRepository) Create(ctx context.Context, req *domain.SellRequest) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, req)
	return err
}

func (r *SellRequestRepository) ListByClient(ctx context.Context, clientID string) ([]domain.SellRequest, error) {
	return findAll[domain.SellRequest](ctx, r.col, bson.M{"client_id": clientID}, bson.D{{Key: "created_at", Value: -1}})
}

func (r *SellRequestRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "client_id", Value: 1}, {Key: "created_at", Value: -1}},
	})
	return err
}
