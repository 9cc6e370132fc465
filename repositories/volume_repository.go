package repositories

import (
	"context"
	"time"

	"revista-editorial-api/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type VolumeRepository interface {
	Create(ctx context.Context, volume *models.Volume) error
	GetByID(ctx context.Context, id string) (*models.Volume, error)
	GetList(ctx context.Context, params models.ListParams) ([]models.Volume, int64, error)
	Update(ctx context.Context, volume *models.Volume) error
	PushArticleID(ctx context.Context, volumeID, articleID string) error
}

type volumeRepository struct {
	coll *mongo.Collection
}

func NewVolumeRepository(db *mongo.Database) VolumeRepository {
	return &volumeRepository{coll: db.Collection("volumes")}
}

func (r *volumeRepository) Create(ctx context.Context, volume *models.Volume) error {
	_, err := r.coll.InsertOne(ctx, volume)
	return err
}

func (r *volumeRepository) GetByID(ctx context.Context, id string) (*models.Volume, error) {
	var volume models.Volume
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&volume)
	if err != nil {
		return nil, err
	}
	return &volume, nil
}

func (r *volumeRepository) GetList(ctx context.Context, params models.ListParams) ([]models.Volume, int64, error) {
	total, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "year", Value: -1}, {Key: "month", Value: -1}, {Key: "edition", Value: -1}}).
		SetSkip(int64(params.Page * params.PageSize)).
		SetLimit(int64(params.PageSize))

	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var volumes []models.Volume
	if err := cursor.All(ctx, &volumes); err != nil {
		return nil, 0, err
	}
	return volumes, total, nil
}

func (r *volumeRepository) Update(ctx context.Context, volume *models.Volume) error {
	volume.UpdatedAt = time.Now()
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": volume.ID}, volume)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *volumeRepository) PushArticleID(ctx context.Context, volumeID, articleID string) error {
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": volumeID}, bson.M{
		"$addToSet": bson.M{"article_ids": articleID},
		"$set":      bson.M{"updated_at": time.Now()},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
