package repositories

import (
	"context"

	"revista-editorial-api/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ArticleHistoryRepository interface {
	Create(ctx context.Context, history *models.ArticleHistory) error
	GetByID(ctx context.Context, id string) (*models.ArticleHistory, error)
	ListByArticleID(ctx context.Context, articleID string) ([]models.ArticleHistory, error)
	DeleteByArticleID(ctx context.Context, articleID string) error
}

type articleHistoryRepository struct {
	coll *mongo.Collection
}

func NewArticleHistoryRepository(db *mongo.Database) ArticleHistoryRepository {
	return &articleHistoryRepository{coll: db.Collection("article_histories")}
}

func (r *articleHistoryRepository) Create(ctx context.Context, history *models.ArticleHistory) error {
	_, err := r.coll.InsertOne(ctx, history)
	return err
}

func (r *articleHistoryRepository) GetByID(ctx context.Context, id string) (*models.ArticleHistory, error) {
	var history models.ArticleHistory
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&history)
	if err != nil {
		return nil, err
	}
	return &history, nil
}

func (r *articleHistoryRepository) ListByArticleID(ctx context.Context, articleID string) ([]models.ArticleHistory, error) {
	opts := options.Find().SetSort(bson.D{{Key: "version", Value: 1}, {Key: "created_at", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{"article_id": articleID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var histories []models.ArticleHistory
	if err := cursor.All(ctx, &histories); err != nil {
		return nil, err
	}
	return histories, nil
}

func (r *articleHistoryRepository) DeleteByArticleID(ctx context.Context, articleID string) error {
	_, err := r.coll.DeleteMany(ctx, bson.M{"article_id": articleID})
	return err
}
