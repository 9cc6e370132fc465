package services

import (
	"context"
	"time"

	"revista-editorial-api/models"
	"revista-editorial-api/repositories"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type InteractionService interface {
	CreatePublicComment(ctx context.Context, articleID string, req models.CreateCommentRequest) (*models.Interaction, error)
	CreateEditorialComment(ctx context.Context, articleID, content, actorID string) (*models.Interaction, error)
	ListByArticle(ctx context.Context, articleID string, kind models.InteractionType, params models.ListParams, actorID string) ([]models.Interaction, int64, error)
	Update(ctx context.Context, commentID, content, actorID string) (*models.Interaction, error)
	Delete(ctx context.Context, commentID, actorID string) error
}

type interactionService struct {
	interactionRepo repositories.InteractionRepository
	articleRepo     repositories.ArticleRepository
	editorialRepo   repositories.EditorialRepository
	staffRepo       repositories.StaffRepository
	log             *logrus.Entry
}

func NewInteractionService(
	interactionRepo repositories.InteractionRepository,
	articleRepo repositories.ArticleRepository,
	editorialRepo repositories.EditorialRepository,
	staffRepo repositories.StaffRepository,
) InteractionService {
	return &interactionService{
		interactionRepo: interactionRepo,
		articleRepo:     articleRepo,
		editorialRepo:   editorialRepo,
		staffRepo:       staffRepo,
		log:             logrus.WithField("service", "interaction"),
	}
}

// CreatePublicComment accepts anonymous actors; the only gate is that
// the article is published. The denormalized counters are bumped by a
// second write after the insert, so they can drift under concurrency;
// the reconcile job trues them up.
func (s *interactionService) CreatePublicComment(ctx context.Context, articleID string, req models.CreateCommentRequest) (*models.Interaction, error) {
	article, err := s.articleRepo.GetByID(ctx, articleID)
	if err != nil {
		return nil, asNotFound(err, "article not found")
	}
	if article.Status != models.StatusPublished {
		return nil, models.ErrorInvalidOperation{Message: "comments are only open on published articles"}
	}

	if req.ParentCommentID != nil {
		parent, err := s.interactionRepo.GetByID(ctx, *req.ParentCommentID)
		if err != nil {
			return nil, asNotFound(err, "parent comment not found")
		}
		if parent.Type != models.InteractionPublicComment || parent.ArticleID != articleID {
			return nil, models.ErrorInvalidOperation{Message: "public comments may only reply to public comments on the same article"}
		}
	}

	now := time.Now()
	interaction := &models.Interaction{
		ID:              primitive.NewObjectID().Hex(),
		ArticleID:       articleID,
		ExternalUserID:  req.ExternalUserID,
		Content:         req.Content,
		Type:            models.InteractionPublicComment,
		ParentCommentID: req.ParentCommentID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.interactionRepo.Create(ctx, interaction); err != nil {
		return nil, err
	}

	if err := s.articleRepo.IncrementCounters(ctx, articleID, 1, 1); err != nil {
		s.log.WithError(err).WithField("article_id", articleID).Warn("counter increment failed")
	}
	return interaction, nil
}

// CreateEditorialComment is team-gated and never threaded: the parent
// id is always nil. The comment id lands in the editorial via an atomic
// list push.
func (s *interactionService) CreateEditorialComment(ctx context.Context, articleID, content, actorID string) (*models.Interaction, error) {
	editorial, err := s.editorialRepo.GetByArticleID(ctx, articleID)
	if err != nil {
		return nil, asNotFound(err, "editorial not found")
	}
	if !CanCreateEditorialComment(editorial, actorID) {
		return nil, models.ErrorUnauthorized{Message: "only the editorial team may comment here"}
	}

	now := time.Now()
	interaction := &models.Interaction{
		ID:             primitive.NewObjectID().Hex(),
		ArticleID:      articleID,
		ExternalUserID: actorID,
		Content:        content,
		Type:           models.InteractionEditorialComment,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.interactionRepo.Create(ctx, interaction); err != nil {
		return nil, err
	}

	if err := s.editorialRepo.PushCommentID(ctx, editorial.ID, interaction.ID); err != nil {
		return nil, err
	}
	return interaction, nil
}

func (s *interactionService) ListByArticle(ctx context.Context, articleID string, kind models.InteractionType, params models.ListParams, actorID string) ([]models.Interaction, int64, error) {
	if kind == models.InteractionEditorialComment {
		editorial, err := s.editorialRepo.GetByArticleID(ctx, articleID)
		if err != nil {
			return nil, 0, asNotFound(err, "editorial not found")
		}
		if !CanCreateEditorialComment(editorial, actorID) {
			return nil, 0, models.ErrorUnauthorized{Message: "only the editorial team may read internal comments"}
		}
	}
	return s.interactionRepo.ListByArticleID(ctx, articleID, kind, params)
}

func (s *interactionService) Update(ctx context.Context, commentID, content, actorID string) (*models.Interaction, error) {
	interaction, err := s.interactionRepo.GetByID(ctx, commentID)
	if err != nil {
		return nil, asNotFound(err, "comment not found")
	}
	if !s.canModerate(ctx, interaction, actorID) {
		return nil, models.ErrorUnauthorized{Message: "not allowed to edit this comment"}
	}

	interaction.Content = content
	if err := s.interactionRepo.Update(ctx, interaction); err != nil {
		return nil, err
	}
	return interaction, nil
}

func (s *interactionService) Delete(ctx context.Context, commentID, actorID string) error {
	interaction, err := s.interactionRepo.GetByID(ctx, commentID)
	if err != nil {
		return asNotFound(err, "comment not found")
	}
	if !s.canModerate(ctx, interaction, actorID) {
		return models.ErrorUnauthorized{Message: "not allowed to delete this comment"}
	}

	if err := s.interactionRepo.Delete(ctx, commentID); err != nil {
		return err
	}

	if interaction.Type == models.InteractionPublicComment {
		if err := s.articleRepo.IncrementCounters(ctx, interaction.ArticleID, -1, -1); err != nil {
			s.log.WithError(err).WithField("article_id", interaction.ArticleID).Warn("counter decrement failed")
		}
	}
	return nil
}

// canModerate: the comment's author, or any active staff member.
func (s *interactionService) canModerate(ctx context.Context, interaction *models.Interaction, actorID string) bool {
	if actorID == "" {
		return false
	}
	if interaction.ExternalUserID != "" && interaction.ExternalUserID == actorID {
		return true
	}
	staff, err := s.staffRepo.GetByExternalUserID(ctx, actorID)
	if err != nil {
		return false
	}
	return staff.IsActive
}
