package repositories

import (
	"context"

	"revista-editorial-api/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type PendingRepository interface {
	Create(ctx context.Context, pending *models.Pending) error
	GetByID(ctx context.Context, id string) (*models.Pending, error)
	GetList(ctx context.Context, status models.PendingStatus, params models.ListParams) ([]models.Pending, int64, error)
	Update(ctx context.Context, pending *models.Pending) error
}

type pendingRepository struct {
	coll *mongo.Collection
}

func NewPendingRepository(db *mongo.Database) PendingRepository {
	return &pendingRepository{coll: db.Collection("pending_requests")}
}

func (r *pendingRepository) Create(ctx context.Context, pending *models.Pending) error {
	_, err := r.coll.InsertOne(ctx, pending)
	return err
}

func (r *pendingRepository) GetByID(ctx context.Context, id string) (*models.Pending, error) {
	var pending models.Pending
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&pending)
	if err != nil {
		return nil, err
	}
	return &pending, nil
}

func (r *pendingRepository) GetList(ctx context.Context, status models.PendingStatus, params models.ListParams) ([]models.Pending, int64, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}

	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64(params.Page * params.PageSize)).
		SetLimit(int64(params.PageSize))

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var pendings []models.Pending
	if err := cursor.All(ctx, &pendings); err != nil {
		return nil, 0, err
	}
	return pendings, total, nil
}

func (r *pendingRepository) Update(ctx context.Context, pending *models.Pending) error {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": pending.ID}, pending)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
