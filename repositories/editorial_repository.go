package repositories

import (
	"context"
	"time"

	"revista-editorial-api/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type EditorialRepository interface {
	Create(ctx context.Context, editorial *models.Editorial) error
	GetByID(ctx context.Context, id string) (*models.Editorial, error)
	GetByArticleID(ctx context.Context, articleID string) (*models.Editorial, error)
	Update(ctx context.Context, editorial *models.Editorial) error
	PushCommentID(ctx context.Context, editorialID, commentID string) error
	Delete(ctx context.Context, id string) error
}

type editorialRepository struct {
	coll *mongo.Collection
}

func NewEditorialRepository(db *mongo.Database) EditorialRepository {
	return &editorialRepository{coll: db.Collection("editorials")}
}

func (r *editorialRepository) Create(ctx context.Context, editorial *models.Editorial) error {
	_, err := r.coll.InsertOne(ctx, editorial)
	return err
}

func (r *editorialRepository) GetByID(ctx context.Context, id string) (*models.Editorial, error) {
	var editorial models.Editorial
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&editorial)
	if err != nil {
		return nil, err
	}
	return &editorial, nil
}

func (r *editorialRepository) GetByArticleID(ctx context.Context, articleID string) (*models.Editorial, error) {
	var editorial models.Editorial
	err := r.coll.FindOne(ctx, bson.M{"article_id": articleID}).Decode(&editorial)
	if err != nil {
		return nil, err
	}
	return &editorial, nil
}

func (r *editorialRepository) Update(ctx context.Context, editorial *models.Editorial) error {
	editorial.UpdatedAt = time.Now()
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": editorial.ID}, editorial)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// PushCommentID appends atomically, unlike the whole-document Update.
func (r *editorialRepository) PushCommentID(ctx context.Context, editorialID, commentID string) error {
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": editorialID}, bson.M{
		"$push": bson.M{"comment_ids": commentID},
		"$set":  bson.M{"updated_at": time.Now()},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *editorialRepository) Delete(ctx context.Context, id string) error {
	_, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
