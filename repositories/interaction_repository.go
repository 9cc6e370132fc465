package repositories

import (
	"context"
	"time"

	"revista-editorial-api/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type InteractionRepository interface {
	Create(ctx context.Context, interaction *models.Interaction) error
	GetByID(ctx context.Context, id string) (*models.Interaction, error)
	ListByArticleID(ctx context.Context, articleID string, kind models.InteractionType, params models.ListParams) ([]models.Interaction, int64, error)
	CountByArticleID(ctx context.Context, articleID string, kind models.InteractionType) (int64, error)
	Update(ctx context.Context, interaction *models.Interaction) error
	Delete(ctx context.Context, id string) error
	DeleteByArticleID(ctx context.Context, articleID string) error
}

type interactionRepository struct {
	coll *mongo.Collection
}

func NewInteractionRepository(db *mongo.Database) InteractionRepository {
	return &interactionRepository{coll: db.Collection("interactions")}
}

func (r *interactionRepository) Create(ctx context.Context, interaction *models.Interaction) error {
	_, err := r.coll.InsertOne(ctx, interaction)
	return err
}

func (r *interactionRepository) GetByID(ctx context.Context, id string) (*models.Interaction, error) {
	var interaction models.Interaction
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&interaction)
	if err != nil {
		return nil, err
	}
	return &interaction, nil
}

func (r *interactionRepository) ListByArticleID(ctx context.Context, articleID string, kind models.InteractionType, params models.ListParams) ([]models.Interaction, int64, error) {
	filter := bson.M{"article_id": articleID, "type": kind}

	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: 1}}).
		SetSkip(int64(params.Page * params.PageSize)).
		SetLimit(int64(params.PageSize))

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var interactions []models.Interaction
	if err := cursor.All(ctx, &interactions); err != nil {
		return nil, 0, err
	}
	return interactions, total, nil
}

func (r *interactionRepository) CountByArticleID(ctx context.Context, articleID string, kind models.InteractionType) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{"article_id": articleID, "type": kind})
}

func (r *interactionRepository) Update(ctx context.Context, interaction *models.Interaction) error {
	interaction.UpdatedAt = time.Now()
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": interaction.ID}, interaction)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *interactionRepository) Delete(ctx context.Context, id string) error {
	_, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (r *interactionRepository) DeleteByArticleID(ctx context.Context, articleID string) error {
	_, err := r.coll.DeleteMany(ctx, bson.M{"article_id": articleID})
	return err
}
