package services

import (
	"context"

	"revista-editorial-api/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// In-memory repositories backing the service suites. They mirror the
// Mongo repositories' behavior, including ErrNoDocuments on misses.

type fakeArticleRepo struct {
	articles map[string]models.Article
	incErr   error
}

func newFakeArticleRepo() *fakeArticleRepo {
	return &fakeArticleRepo{articles: map[string]models.Article{}}
}

func (r *fakeArticleRepo) Create(_ context.Context, article *models.Article) error {
	r.articles[article.ID] = *article
	return nil
}

func (r *fakeArticleRepo) GetByID(_ context.Context, id string) (*models.Article, error) {
	article, ok := r.articles[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	out := article
	return &out, nil
}

func (r *fakeArticleRepo) GetList(_ context.Context, params models.ArticleListParams, publicOnly bool) ([]models.Article, int64, error) {
	var out []models.Article
	for _, article := range r.articles {
		if publicOnly && article.Status != models.StatusPublished {
			continue
		}
		if params.Status != "" && string(article.Status) != params.Status {
			continue
		}
		out = append(out, article)
	}
	return out, int64(len(out)), nil
}

func (r *fakeArticleRepo) Update(_ context.Context, article *models.Article) error {
	if _, ok := r.articles[article.ID]; !ok {
		return mongo.ErrNoDocuments
	}
	r.articles[article.ID] = *article
	return nil
}

func (r *fakeArticleRepo) Delete(_ context.Context, id string) error {
	delete(r.articles, id)
	return nil
}

func (r *fakeArticleRepo) IncrementCounters(_ context.Context, id string, comments, interactions int) error {
	if r.incErr != nil {
		return r.incErr
	}
	article, ok := r.articles[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	article.TotalComments += comments
	article.TotalInteractions += interactions
	r.articles[id] = article
	return nil
}

func (r *fakeArticleRepo) ListIDs(_ context.Context) ([]string, error) {
	ids := make([]string, 0, len(r.articles))
	for id := range r.articles {
		ids = append(ids, id)
	}
	return ids, nil
}

type fakeEditorialRepo struct {
	editorials map[string]models.Editorial
}

func newFakeEditorialRepo() *fakeEditorialRepo {
	return &fakeEditorialRepo{editorials: map[string]models.Editorial{}}
}

func (r *fakeEditorialRepo) Create(_ context.Context, editorial *models.Editorial) error {
	r.editorials[editorial.ID] = *editorial
	return nil
}

func (r *fakeEditorialRepo) GetByID(_ context.Context, id string) (*models.Editorial, error) {
	editorial, ok := r.editorials[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	out := editorial
	return &out, nil
}

func (r *fakeEditorialRepo) GetByArticleID(_ context.Context, articleID string) (*models.Editorial, error) {
	for _, editorial := range r.editorials {
		if editorial.ArticleID == articleID {
			out := editorial
			return &out, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *fakeEditorialRepo) Update(_ context.Context, editorial *models.Editorial) error {
	if _, ok := r.editorials[editorial.ID]; !ok {
		return mongo.ErrNoDocuments
	}
	r.editorials[editorial.ID] = *editorial
	return nil
}

func (r *fakeEditorialRepo) PushCommentID(_ context.Context, editorialID, commentID string) error {
	editorial, ok := r.editorials[editorialID]
	if !ok {
		return mongo.ErrNoDocuments
	}
	editorial.CommentIDs = append(editorial.CommentIDs, commentID)
	r.editorials[editorialID] = editorial
	return nil
}

func (r *fakeEditorialRepo) Delete(_ context.Context, id string) error {
	delete(r.editorials, id)
	return nil
}

type fakeHistoryRepo struct {
	histories map[string]models.ArticleHistory
}

func newFakeHistoryRepo() *fakeHistoryRepo {
	return &fakeHistoryRepo{histories: map[string]models.ArticleHistory{}}
}

func (r *fakeHistoryRepo) Create(_ context.Context, history *models.ArticleHistory) error {
	r.histories[history.ID] = *history
	return nil
}

func (r *fakeHistoryRepo) GetByID(_ context.Context, id string) (*models.ArticleHistory, error) {
	history, ok := r.histories[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	out := history
	return &out, nil
}

func (r *fakeHistoryRepo) ListByArticleID(_ context.Context, articleID string) ([]models.ArticleHistory, error) {
	var out []models.ArticleHistory
	for _, history := range r.histories {
		if history.ArticleID == articleID {
			out = append(out, history)
		}
	}
	return out, nil
}

func (r *fakeHistoryRepo) DeleteByArticleID(_ context.Context, articleID string) error {
	for id, history := range r.histories {
		if history.ArticleID == articleID {
			delete(r.histories, id)
		}
	}
	return nil
}

type fakeAuthorRepo struct {
	authors map[string]models.Author
}

func newFakeAuthorRepo() *fakeAuthorRepo {
	return &fakeAuthorRepo{authors: map[string]models.Author{}}
}

func (r *fakeAuthorRepo) Create(_ context.Context, author *models.Author) error {
	r.authors[author.ID] = *author
	return nil
}

func (r *fakeAuthorRepo) GetByID(_ context.Context, id string) (*models.Author, error) {
	author, ok := r.authors[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	out := author
	return &out, nil
}

func (r *fakeAuthorRepo) GetByExternalUserID(_ context.Context, externalUserID string) (*models.Author, error) {
	for _, author := range r.authors {
		if author.ExternalUserID == externalUserID {
			out := author
			return &out, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *fakeAuthorRepo) Update(_ context.Context, author *models.Author) error {
	if _, ok := r.authors[author.ID]; !ok {
		return mongo.ErrNoDocuments
	}
	r.authors[author.ID] = *author
	return nil
}

func (r *fakeAuthorRepo) GetList(_ context.Context, params models.ListParams) ([]models.Author, int64, error) {
	var out []models.Author
	for _, author := range r.authors {
		out = append(out, author)
	}
	return out, int64(len(out)), nil
}

type fakeStaffRepo struct {
	staff map[string]models.Staff
}

func newFakeStaffRepo() *fakeStaffRepo {
	return &fakeStaffRepo{staff: map[string]models.Staff{}}
}

func (r *fakeStaffRepo) Create(_ context.Context, staff *models.Staff) error {
	r.staff[staff.ID] = *staff
	return nil
}

func (r *fakeStaffRepo) GetByID(_ context.Context, id string) (*models.Staff, error) {
	staff, ok := r.staff[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	out := staff
	return &out, nil
}

func (r *fakeStaffRepo) GetByExternalUserID(_ context.Context, externalUserID string) (*models.Staff, error) {
	for _, staff := range r.staff {
		if staff.ExternalUserID == externalUserID {
			out := staff
			return &out, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *fakeStaffRepo) Update(_ context.Context, staff *models.Staff) error {
	if _, ok := r.staff[staff.ID]; !ok {
		return mongo.ErrNoDocuments
	}
	r.staff[staff.ID] = *staff
	return nil
}

func (r *fakeStaffRepo) GetList(_ context.Context, params models.ListParams) ([]models.Staff, int64, error) {
	var out []models.Staff
	for _, staff := range r.staff {
		out = append(out, staff)
	}
	return out, int64(len(out)), nil
}

type fakeInteractionRepo struct {
	interactions map[string]models.Interaction
}

func newFakeInteractionRepo() *fakeInteractionRepo {
	return &fakeInteractionRepo{interactions: map[string]models.Interaction{}}
}

func (r *fakeInteractionRepo) Create(_ context.Context, interaction *models.Interaction) error {
	r.interactions[interaction.ID] = *interaction
	return nil
}

func (r *fakeInteractionRepo) GetByID(_ context.Context, id string) (*models.Interaction, error) {
	interaction, ok := r.interactions[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	out := interaction
	return &out, nil
}

func (r *fakeInteractionRepo) ListByArticleID(_ context.Context, articleID string, kind models.InteractionType, params models.ListParams) ([]models.Interaction, int64, error) {
	var out []models.Interaction
	for _, interaction := range r.interactions {
		if interaction.ArticleID == articleID && interaction.Type == kind {
			out = append(out, interaction)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeInteractionRepo) CountByArticleID(_ context.Context, articleID string, kind models.InteractionType) (int64, error) {
	var count int64
	for _, interaction := range r.interactions {
		if interaction.ArticleID == articleID && interaction.Type == kind {
			count++
		}
	}
	return count, nil
}

func (r *fakeInteractionRepo) Update(_ context.Context, interaction *models.Interaction) error {
	if _, ok := r.interactions[interaction.ID]; !ok {
		return mongo.ErrNoDocuments
	}
	r.interactions[interaction.ID] = *interaction
	return nil
}

func (r *fakeInteractionRepo) Delete(_ context.Context, id string) error {
	delete(r.interactions, id)
	return nil
}

func (r *fakeInteractionRepo) DeleteByArticleID(_ context.Context, articleID string) error {
	for id, interaction := range r.interactions {
		if interaction.ArticleID == articleID {
			delete(r.interactions, id)
		}
	}
	return nil
}

type fakePendingRepo struct {
	pendings map[string]models.Pending
}

func newFakePendingRepo() *fakePendingRepo {
	return &fakePendingRepo{pendings: map[string]models.Pending{}}
}

func (r *fakePendingRepo) Create(_ context.Context, pending *models.Pending) error {
	r.pendings[pending.ID] = *pending
	return nil
}

func (r *fakePendingRepo) GetByID(_ context.Context, id string) (*models.Pending, error) {
	pending, ok := r.pendings[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	out := pending
	return &out, nil
}

func (r *fakePendingRepo) GetList(_ context.Context, status models.PendingStatus, params models.ListParams) ([]models.Pending, int64, error) {
	var out []models.Pending
	for _, pending := range r.pendings {
		if status != "" && pending.Status != status {
			continue
		}
		out = append(out, pending)
	}
	return out, int64(len(out)), nil
}

func (r *fakePendingRepo) Update(_ context.Context, pending *models.Pending) error {
	if _, ok := r.pendings[pending.ID]; !ok {
		return mongo.ErrNoDocuments
	}
	r.pendings[pending.ID] = *pending
	return nil
}

type fakeVolumeRepo struct {
	volumes map[string]models.Volume
}

func newFakeVolumeRepo() *fakeVolumeRepo {
	return &fakeVolumeRepo{volumes: map[string]models.Volume{}}
}

func (r *fakeVolumeRepo) Create(_ context.Context, volume *models.Volume) error {
	r.volumes[volume.ID] = *volume
	return nil
}

func (r *fakeVolumeRepo) GetByID(_ context.Context, id string) (*models.Volume, error) {
	volume, ok := r.volumes[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	out := volume
	return &out, nil
}

func (r *fakeVolumeRepo) GetList(_ context.Context, params models.ListParams) ([]models.Volume, int64, error) {
	var out []models.Volume
	for _, volume := range r.volumes {
		out = append(out, volume)
	}
	return out, int64(len(out)), nil
}

func (r *fakeVolumeRepo) Update(_ context.Context, volume *models.Volume) error {
	if _, ok := r.volumes[volume.ID]; !ok {
		return mongo.ErrNoDocuments
	}
	r.volumes[volume.ID] = *volume
	return nil
}

func (r *fakeVolumeRepo) PushArticleID(_ context.Context, volumeID, articleID string) error {
	volume, ok := r.volumes[volumeID]
	if !ok {
		return mongo.ErrNoDocuments
	}
	for _, id := range volume.ArticleIDs {
		if id == articleID {
			return nil
		}
	}
	volume.ArticleIDs = append(volume.ArticleIDs, articleID)
	r.volumes[volumeID] = volume
	return nil
}
