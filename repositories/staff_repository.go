package repositories

import (
	"context"
	"time"

	"revista-editorial-api/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type StaffRepository interface {
	Create(ctx context.Context, staff *models.Staff) error
	GetByID(ctx context.Context, id string) (*models.Staff, error)
	GetByExternalUserID(ctx context.Context, externalUserID string) (*models.Staff, error)
	Update(ctx context.Context, staff *models.Staff) error
	GetList(ctx context.Context, params models.ListParams) ([]models.Staff, int64, error)
}

type staffRepository struct {
	coll *mongo.Collection
}

func NewStaffRepository(db *mongo.Database) StaffRepository {
	return &staffRepository{coll: db.Collection("staff")}
}

func (r *staffRepository) Create(ctx context.Context, staff *models.Staff) error {
	_, err := r.coll.InsertOne(ctx, staff)
	return err
}

func (r *staffRepository) GetByID(ctx context.Context, id string) (*models.Staff, error) {
	var staff models.Staff
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&staff)
	if err != nil {
		return nil, err
	}
	return &staff, nil
}

func (r *staffRepository) GetByExternalUserID(ctx context.Context, externalUserID string) (*models.Staff, error) {
	var staff models.Staff
	err := r.coll.FindOne(ctx, bson.M{"external_user_id": externalUserID}).Decode(&staff)
	if err != nil {
		return nil, err
	}
	return &staff, nil
}

func (r *staffRepository) Update(ctx context.Context, staff *models.Staff) error {
	staff.UpdatedAt = time.Now()
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": staff.ID}, staff)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *staffRepository) GetList(ctx context.Context, params models.ListParams) ([]models.Staff, int64, error) {
	total, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64(params.Page * params.PageSize)).
		SetLimit(int64(params.PageSize))

	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var staff []models.Staff
	if err := cursor.All(ctx, &staff); err != nil {
		return nil, 0, err
	}
	return staff, total, nil
}
