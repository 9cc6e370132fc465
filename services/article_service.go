package services

import (
	"context"
	"errors"
	"time"

	"revista-editorial-api/models"
	"revista-editorial-api/repositories"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type ArticleService interface {
	CreateArticle(ctx context.Context, req models.CreateArticleRequest, requesterID string) (*models.Article, error)
	GetArticle(ctx context.Context, id, actorID string, isPublic bool) (*models.Article, error)
	GetArticles(ctx context.Context, params models.ArticleListParams, isPublic bool) ([]models.Article, int64, error)
	DeleteArticle(ctx context.Context, id, actorID string) error
	ReviseContent(ctx context.Context, articleID string, req models.ReviseContentRequest, actorID string) (*models.ArticleHistory, error)
	UpdateStatus(ctx context.Context, articleID string, status models.ArticleStatus, actorID string) error
	AdvancePosition(ctx context.Context, articleID string, position models.EditorialPosition, actorID string) error
	AddTeamMember(ctx context.Context, articleID string, req models.AddTeamMemberRequest, actorID string) error
	AssignToVolume(ctx context.Context, articleID, volumeID, actorID string) error
	GetEditorial(ctx context.Context, articleID, actorID string) (*models.Editorial, error)
	GetHistory(ctx context.Context, articleID, historyID, actorID string) (*models.ArticleHistory, error)
	ListHistory(ctx context.Context, articleID, actorID string) ([]models.ArticleHistory, error)
}

type articleService struct {
	articleRepo     repositories.ArticleRepository
	editorialRepo   repositories.EditorialRepository
	historyRepo     repositories.ArticleHistoryRepository
	authorRepo      repositories.AuthorRepository
	staffRepo       repositories.StaffRepository
	volumeRepo      repositories.VolumeRepository
	interactionRepo repositories.InteractionRepository
	log             *logrus.Entry
}

func NewArticleService(
	articleRepo repositories.ArticleRepository,
	editorialRepo repositories.EditorialRepository,
	historyRepo repositories.ArticleHistoryRepository,
	authorRepo repositories.AuthorRepository,
	staffRepo repositories.StaffRepository,
	volumeRepo repositories.VolumeRepository,
	interactionRepo repositories.InteractionRepository,
) ArticleService {
	return &articleService{
		articleRepo:     articleRepo,
		editorialRepo:   editorialRepo,
		historyRepo:     historyRepo,
		authorRepo:      authorRepo,
		staffRepo:       staffRepo,
		volumeRepo:      volumeRepo,
		interactionRepo: interactionRepo,
		log:             logrus.WithField("service", "article"),
	}
}

// CreateArticle writes the first history snapshot, the editorial record,
// the author link and finally the article itself. The writes are
// sequential single-document inserts; a failure partway through leaves
// the earlier documents in place.
func (s *articleService) CreateArticle(ctx context.Context, req models.CreateArticleRequest, requesterID string) (*models.Article, error) {
	now := time.Now()

	// The requester is always the first author; duplicate ids collapse.
	authorIDs := []string{requesterID}
	for _, id := range req.AuthorIDs {
		authorIDs = appendUnique(authorIDs, id)
	}

	article := &models.Article{
		ID:           primitive.NewObjectID().Hex(),
		Title:        req.Title,
		Summary:      req.Summary,
		Status:       models.StatusDraft,
		Type:         req.Type,
		AuthorIDs:    authorIDs,
		Media:        req.Media,
		CreatedAt:    now,
		LastEditedAt: now,
	}

	history := &models.ArticleHistory{
		ID:        primitive.NewObjectID().Hex(),
		ArticleID: article.ID,
		Version:   models.VersionOriginal,
		Content:   req.Content,
		Media:     req.Media,
		CreatedAt: now,
	}
	if err := s.historyRepo.Create(ctx, history); err != nil {
		return nil, err
	}

	editorial := &models.Editorial{
		ID:               primitive.NewObjectID().Hex(),
		ArticleID:        article.ID,
		Position:         models.PositionSubmitted,
		CurrentHistoryID: history.ID,
		HistoryIDs:       []string{history.ID},
		CommentIDs:       []string{},
		Team: models.EditorialTeam{
			AuthorIDs:    article.AuthorIDs,
			EditorIDs:    []string{},
			ReviewerIDs:  []string{},
			CorrectorIDs: []string{},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.editorialRepo.Create(ctx, editorial); err != nil {
		return nil, err
	}

	article.EditorialID = editorial.ID

	for i, authorID := range article.AuthorIDs {
		role := models.RoleCoAuthor
		if i == 0 {
			role = models.RolePrincipalAuthor
		}
		if err := s.upsertAuthorContribution(ctx, authorID, article.ID, role); err != nil {
			s.log.WithError(err).WithField("external_user_id", authorID).Warn("author upsert failed")
		}
	}

	if err := s.articleRepo.Create(ctx, article); err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{"article_id": article.ID, "editorial_id": editorial.ID}).Info("article created")
	return article, nil
}

func (s *articleService) GetArticle(ctx context.Context, id, actorID string, isPublic bool) (*models.Article, error) {
	article, err := s.articleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, asNotFound(err, "article not found")
	}

	if isPublic {
		if article.Status != models.StatusPublished {
			return nil, models.ErrorNotFound{Message: "article not found"}
		}
		return article, nil
	}

	editorial, err := s.editorialRepo.GetByArticleID(ctx, id)
	if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}
	if !CanReadArticle(article, editorial, actorID) {
		return nil, models.ErrorUnauthorized{Message: "not allowed to read this article"}
	}
	return article, nil
}

func (s *articleService) GetArticles(ctx context.Context, params models.ArticleListParams, isPublic bool) ([]models.Article, int64, error) {
	return s.articleRepo.GetList(ctx, params, isPublic)
}

// DeleteArticle removes the article and its dependents. Administrators
// only. The deletes are sequential and best-effort.
func (s *articleService) DeleteArticle(ctx context.Context, id, actorID string) error {
	staff := s.loadStaff(ctx, actorID)
	if !CanManageStaff(staff) {
		return models.ErrorUnauthorized{Message: "only administrators may delete articles"}
	}

	article, err := s.articleRepo.GetByID(ctx, id)
	if err != nil {
		return asNotFound(err, "article not found")
	}

	if err := s.articleRepo.Delete(ctx, article.ID); err != nil {
		return err
	}
	if err := s.editorialRepo.Delete(ctx, article.EditorialID); err != nil {
		s.log.WithError(err).WithField("editorial_id", article.EditorialID).Warn("editorial delete failed")
	}
	if err := s.historyRepo.DeleteByArticleID(ctx, article.ID); err != nil {
		s.log.WithError(err).WithField("article_id", article.ID).Warn("history delete failed")
	}
	if err := s.interactionRepo.DeleteByArticleID(ctx, article.ID); err != nil {
		s.log.WithError(err).WithField("article_id", article.ID).Warn("interaction delete failed")
	}
	return nil
}

// ReviseContent appends a history snapshot and moves the editorial's
// current-history pointer. The version label is min(existing snapshots,
// Final): it saturates instead of erroring past the last stage.
func (s *articleService) ReviseContent(ctx context.Context, articleID string, req models.ReviseContentRequest, actorID string) (*models.ArticleHistory, error) {
	article, err := s.articleRepo.GetByID(ctx, articleID)
	if err != nil {
		return nil, asNotFound(err, "article not found")
	}
	editorial, err := s.editorialRepo.GetByArticleID(ctx, articleID)
	if err != nil {
		return nil, asNotFound(err, "editorial not found")
	}

	if !CanEditArticle(article, editorial, actorID) {
		return nil, models.ErrorUnauthorized{Message: "not allowed to edit this article"}
	}

	now := time.Now()
	history := &models.ArticleHistory{
		ID:        primitive.NewObjectID().Hex(),
		ArticleID: articleID,
		Version:   models.NextVersion(len(editorial.HistoryIDs)),
		Content:   req.Content,
		Media:     req.Media,
		CreatedAt: now,
	}
	if err := s.historyRepo.Create(ctx, history); err != nil {
		return nil, err
	}

	editorial.CurrentHistoryID = history.ID
	editorial.HistoryIDs = append(editorial.HistoryIDs, history.ID)
	if err := s.editorialRepo.Update(ctx, editorial); err != nil {
		return nil, err
	}

	article.LastEditedAt = now
	if err := s.articleRepo.Update(ctx, article); err != nil {
		s.log.WithError(err).WithField("article_id", articleID).Warn("last-edited stamp failed")
	}

	return history, nil
}

// UpdateStatus is gated on staff role alone, not team membership. No
// transition graph is enforced.
func (s *articleService) UpdateStatus(ctx context.Context, articleID string, status models.ArticleStatus, actorID string) error {
	staff := s.loadStaff(ctx, actorID)
	if !CanModifyStatus(staff) {
		return models.ErrorUnauthorized{Message: "not allowed to change article status"}
	}
	if !models.ValidArticleStatus(status) {
		return models.ErrorInvalidOperation{Message: "unknown article status: " + string(status)}
	}

	article, err := s.articleRepo.GetByID(ctx, articleID)
	if err != nil {
		return asNotFound(err, "article not found")
	}

	article.Status = status
	if status == models.StatusPublished && article.PublishedAt == nil {
		now := time.Now()
		article.PublishedAt = &now
	}
	return s.articleRepo.Update(ctx, article)
}

func (s *articleService) AdvancePosition(ctx context.Context, articleID string, position models.EditorialPosition, actorID string) error {
	staff := s.loadStaff(ctx, actorID)
	if !CanModifyStatus(staff) {
		return models.ErrorUnauthorized{Message: "not allowed to advance editorial position"}
	}
	if !models.ValidEditorialPosition(position) {
		return models.ErrorInvalidOperation{Message: "unknown editorial position: " + string(position)}
	}

	editorial, err := s.editorialRepo.GetByArticleID(ctx, articleID)
	if err != nil {
		return asNotFound(err, "editorial not found")
	}

	editorial.Position = position
	return s.editorialRepo.Update(ctx, editorial)
}

func (s *articleService) AddTeamMember(ctx context.Context, articleID string, req models.AddTeamMemberRequest, actorID string) error {
	staff := s.loadStaff(ctx, actorID)
	if !CanModifyStatus(staff) {
		return models.ErrorUnauthorized{Message: "not allowed to manage the editorial team"}
	}

	editorial, err := s.editorialRepo.GetByArticleID(ctx, articleID)
	if err != nil {
		return asNotFound(err, "editorial not found")
	}

	switch req.Role {
	case models.RolePrincipalAuthor, models.RoleCoAuthor:
		editorial.Team.AuthorIDs = appendUnique(editorial.Team.AuthorIDs, req.ExternalUserID)
	case models.RoleEditor:
		editorial.Team.EditorIDs = appendUnique(editorial.Team.EditorIDs, req.ExternalUserID)
	case models.RoleReviewer:
		editorial.Team.ReviewerIDs = appendUnique(editorial.Team.ReviewerIDs, req.ExternalUserID)
	case models.RoleCorrector:
		editorial.Team.CorrectorIDs = appendUnique(editorial.Team.CorrectorIDs, req.ExternalUserID)
	default:
		return models.ErrorInvalidOperation{Message: "unknown contributor role"}
	}

	if err := s.editorialRepo.Update(ctx, editorial); err != nil {
		return err
	}

	if err := s.upsertAuthorContribution(ctx, req.ExternalUserID, articleID, req.Role); err != nil {
		s.log.WithError(err).WithField("external_user_id", req.ExternalUserID).Warn("author upsert failed")
	}
	return nil
}

func (s *articleService) AssignToVolume(ctx context.Context, articleID, volumeID, actorID string) error {
	staff := s.loadStaff(ctx, actorID)
	if !CanModifyStatus(staff) {
		return models.ErrorUnauthorized{Message: "not allowed to assign volumes"}
	}

	article, err := s.articleRepo.GetByID(ctx, articleID)
	if err != nil {
		return asNotFound(err, "article not found")
	}
	if article.Status != models.StatusPublished {
		return models.ErrorInvalidOperation{Message: "only published articles can join a volume"}
	}

	if _, err := s.volumeRepo.GetByID(ctx, volumeID); err != nil {
		return asNotFound(err, "volume not found")
	}

	article.VolumeID = volumeID
	if err := s.articleRepo.Update(ctx, article); err != nil {
		return err
	}
	return s.volumeRepo.PushArticleID(ctx, volumeID, articleID)
}

func (s *articleService) GetEditorial(ctx context.Context, articleID, actorID string) (*models.Editorial, error) {
	article, err := s.articleRepo.GetByID(ctx, articleID)
	if err != nil {
		return nil, asNotFound(err, "article not found")
	}
	editorial, err := s.editorialRepo.GetByArticleID(ctx, articleID)
	if err != nil {
		return nil, asNotFound(err, "editorial not found")
	}
	if !CanReadArticle(article, editorial, actorID) {
		return nil, models.ErrorUnauthorized{Message: "not allowed to read this editorial"}
	}
	return editorial, nil
}

func (s *articleService) GetHistory(ctx context.Context, articleID, historyID, actorID string) (*models.ArticleHistory, error) {
	if _, err := s.checkHistoryAccess(ctx, articleID, actorID); err != nil {
		return nil, err
	}
	history, err := s.historyRepo.GetByID(ctx, historyID)
	if err != nil {
		return nil, asNotFound(err, "history not found")
	}
	if history.ArticleID != articleID {
		return nil, models.ErrorNotFound{Message: "history not found"}
	}
	return history, nil
}

func (s *articleService) ListHistory(ctx context.Context, articleID, actorID string) ([]models.ArticleHistory, error) {
	if _, err := s.checkHistoryAccess(ctx, articleID, actorID); err != nil {
		return nil, err
	}
	return s.historyRepo.ListByArticleID(ctx, articleID)
}

func (s *articleService) checkHistoryAccess(ctx context.Context, articleID, actorID string) (*models.Article, error) {
	article, err := s.articleRepo.GetByID(ctx, articleID)
	if err != nil {
		return nil, asNotFound(err, "article not found")
	}
	editorial, err := s.editorialRepo.GetByArticleID(ctx, articleID)
	if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}
	if !CanReadArticle(article, editorial, actorID) {
		return nil, models.ErrorUnauthorized{Message: "not allowed to read this article"}
	}
	return article, nil
}

func (s *articleService) upsertAuthorContribution(ctx context.Context, externalUserID, articleID string, role models.ContributorRole) error {
	author, err := s.authorRepo.GetByExternalUserID(ctx, externalUserID)
	if err != nil {
		if !errors.Is(err, mongo.ErrNoDocuments) {
			return err
		}
		now := time.Now()
		author = &models.Author{
			ID:             primitive.NewObjectID().Hex(),
			ExternalUserID: externalUserID,
			ArticleIDs:     []string{articleID},
			Contributions:  []models.Contribution{{ArticleID: articleID, Role: role}},
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		return s.authorRepo.Create(ctx, author)
	}

	if !author.HasArticle(articleID) {
		author.ArticleIDs = append(author.ArticleIDs, articleID)
	}
	for _, c := range author.Contributions {
		if c.ArticleID == articleID && c.Role == role {
			return s.authorRepo.Update(ctx, author)
		}
	}
	author.Contributions = append(author.Contributions, models.Contribution{ArticleID: articleID, Role: role})
	return s.authorRepo.Update(ctx, author)
}

// loadStaff resolves the actor's staff record, nil when there is none.
func (s *articleService) loadStaff(ctx context.Context, actorID string) *models.Staff {
	if actorID == "" {
		return nil
	}
	staff, err := s.staffRepo.GetByExternalUserID(ctx, actorID)
	if err != nil {
		return nil
	}
	return staff
}

func asNotFound(err error, message string) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.ErrorNotFound{Message: message}
	}
	return err
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

func appendUnique(list []string, v string) []string {
	if contains(list, v) {
		return list
	}
	return append(list, v)
}
