package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/realto/plots-api/internal/core/domain"
)

const collectionAttendance = "attendance"

type AttendanceRepository struct {
	col *mongo.Collection
}

func NewAttendanceRepository(db *mongo.Database) *AttendanceRepository {
	return &AttendanceRepository{col: db.Collection(collectionAttendance)}
}

func (r *AttendanceRepository) FindByManagerDay(ctx context.Context, managerID, day string) (*domain.Attendance, error) {
	return findOne[domain.Attendance](ctx, r.col, bson.M{"manager_id": managerID, "day": day}, domain.ErrRecordNotFound)
}

// Create relies on the unique (manager_id, day) index to reject a second
// check-in that raced past FindByManagerDay.
func (r *AttendanceRepository) Create(ctx context.Context, a *domain.Attendance) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, a)
	if mongo.IsDuplicateKeyError(err) {
		return domain.ErrAttendanceMarked
	}
	return err
}

func (r *AttendanceRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "manager_id", Value: 1}, {Key: "day", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
