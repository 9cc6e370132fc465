package repositories

import (
	"context"

	"revista-editorial-api/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ArticleRepository interface {
	Create(ctx context.Context, article *models.Article) error
	GetByID(ctx context.Context, id string) (*models.Article, error)
	GetList(ctx context.Context, params models.ArticleListParams, publicOnly bool) ([]models.Article, int64, error)
	Update(ctx context.Context, article *models.Article) error
	Delete(ctx context.Context, id string) error
	IncrementCounters(ctx context.Context, id string, comments, interactions int) error
	ListIDs(ctx context.Context) ([]string, error)
}

type articleRepository struct {
	coll *mongo.Collection
}

func NewArticleRepository(db *mongo.Database) ArticleRepository {
	return &articleRepository{coll: db.Collection("articles")}
}

func (r *articleRepository) Create(ctx context.Context, article *models.Article) error {
	_, err := r.coll.InsertOne(ctx, article)
	return err
}

func (r *articleRepository) GetByID(ctx context.Context, id string) (*models.Article, error) {
	var article models.Article
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&article)
	if err != nil {
		return nil, err
	}
	return &article, nil
}

func (r *articleRepository) GetList(ctx context.Context, params models.ArticleListParams, publicOnly bool) ([]models.Article, int64, error) {
	filter := bson.M{}

	if publicOnly {
		filter["status"] = models.StatusPublished
	} else if params.Status != "" {
		filter["status"] = params.Status
	}
	if params.Type != "" {
		filter["type"] = params.Type
	}
	if params.Title != "" {
		filter["title"] = bson.M{"$regex": params.Title, "$options": "i"}
	}
	if params.AuthorID != "" {
		filter["author_ids"] = params.AuthorID
	}
	if params.VolumeID != "" {
		filter["volume_id"] = params.VolumeID
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

	var articles []models.Article
	if err := cursor.All(ctx, &articles); err != nil {
		return nil, 0, err
	}
	return articles, total, nil
}

// Update replaces the whole document. Concurrent writers race
// last-writer-wins; there is no optimistic locking here.
func (r *articleRepository) Update(ctx context.Context, article *models.Article) error {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": article.ID}, article)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *articleRepository) Delete(ctx context.Context, id string) error {
	_, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (r *articleRepository) IncrementCounters(ctx context.Context, id string, comments, interactions int) error {
	_, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$inc": bson.M{
			"total_comments":     comments,
			"total_interactions": interactions,
		},
	})
	return err
}

func (r *articleRepository) ListIDs(ctx context.Context) ([]string, error) {
	opts := options.Find().SetProjection(bson.M{"_id": 1})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []struct {
		ID string `bson:"_id"`
	}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	ids := make([]string, len(docs))
	for i, d := range docs {
		ids[i] = d.ID
	}
	return ids, nil
}
