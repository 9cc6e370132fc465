package repositories

import (
	"context"
	"time"

	"revista-editorial-api/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AuthorRepository interface {
	Create(ctx context.Context, author *models.Author) error
	GetByID(ctx context.Context, id string) (*models.Author, error)
	GetByExternalUserID(ctx context.Context, externalUserID string) (*models.Author, error)
	Update(ctx context.Context, author *models.Author) error
	GetList(ctx context.Context, params models.ListParams) ([]models.Author, int64, error)
}

type authorRepository struct {
	coll *mongo.Collection
}

func NewAuthorRepository(db *mongo.Database) AuthorRepository {
	return &authorRepository{coll: db.Collection("authors")}
}

func (r *authorRepository) Create(ctx context.Context, author *models.Author) error {
	_, err := r.coll.InsertOne(ctx, author)
	return err
}

func (r *authorRepository) GetByID(ctx context.Context, id string) (*models.Author, error) {
	var author models.Author
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&author)
	if err != nil {
		return nil, err
	}
	return &author, nil
}

func (r *authorRepository) GetByExternalUserID(ctx context.Context, externalUserID string) (*models.Author, error) {
	var author models.Author
	err := r.coll.FindOne(ctx, bson.M{"external_user_id": externalUserID}).Decode(&author)
	if err != nil {
		return nil, err
	}
	return &author, nil
}

func (r *authorRepository) Update(ctx context.Context, author *models.Author) error {
	author.UpdatedAt = time.Now()
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": author.ID}, author)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *authorRepository) GetList(ctx context.Context, params models.ListParams) ([]models.Author, int64, error) {
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

	var authors []models.Author
	if err := cursor.All(ctx, &authors); err != nil {
		return nil, 0, err
	}
	return authors, total, nil
}
