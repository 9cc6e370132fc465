package services

import (
	"context"
	"testing"
	"time"

	"revista-editorial-api/models"

	"github.com/stretchr/testify/suite"
)

type ArticleServiceTestSuite struct {
	suite.Suite
	ctx             context.Context
	articleRepo     *fakeArticleRepo
	editorialRepo   *fakeEditorialRepo
	historyRepo     *fakeHistoryRepo
	authorRepo      *fakeAuthorRepo
	staffRepo       *fakeStaffRepo
	volumeRepo      *fakeVolumeRepo
	interactionRepo *fakeInteractionRepo
	service         ArticleService
}

func (suite *ArticleServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.articleRepo = newFakeArticleRepo()
	suite.editorialRepo = newFakeEditorialRepo()
	suite.historyRepo = newFakeHistoryRepo()
	suite.authorRepo = newFakeAuthorRepo()
	suite.staffRepo = newFakeStaffRepo()
	suite.volumeRepo = newFakeVolumeRepo()
	suite.interactionRepo = newFakeInteractionRepo()
	suite.service = NewArticleService(
		suite.articleRepo,
		suite.editorialRepo,
		suite.historyRepo,
		suite.authorRepo,
		suite.staffRepo,
		suite.volumeRepo,
		suite.interactionRepo,
	)
}

func (suite *ArticleServiceTestSuite) seedStaff(externalUserID string, job models.StaffJob) {
	suite.staffRepo.staff["staff-"+externalUserID] = models.Staff{
		ID:             "staff-" + externalUserID,
		ExternalUserID: externalUserID,
		Job:            job,
		IsActive:       true,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}
}

func (suite *ArticleServiceTestSuite) createArticle(requesterID string) *models.Article {
	article, err := suite.service.CreateArticle(suite.ctx, models.CreateArticleRequest{
		Title:   "On Sorting Networks",
		Summary: "A short survey",
		Type:    models.TypeResearch,
		Content: "original content",
	}, requesterID)
	suite.Require().NoError(err)
	return article
}

func (suite *ArticleServiceTestSuite) TestCreateArticleBuildsEditorialAndFirstSnapshot() {
	article := suite.createArticle("writer-1")

	suite.Equal(models.StatusDraft, article.Status)
	suite.Equal([]string{"writer-1"}, article.AuthorIDs)
	suite.NotEmpty(article.EditorialID)

	editorial, err := suite.editorialRepo.GetByArticleID(suite.ctx, article.ID)
	suite.Require().NoError(err)
	suite.Equal(models.PositionSubmitted, editorial.Position)
	suite.Len(editorial.HistoryIDs, 1)
	suite.Equal(editorial.HistoryIDs[0], editorial.CurrentHistoryID)
	suite.Equal([]string{"writer-1"}, editorial.Team.AuthorIDs)

	history, err := suite.historyRepo.GetByID(suite.ctx, editorial.CurrentHistoryID)
	suite.Require().NoError(err)
	suite.Equal(models.VersionOriginal, history.Version)
	suite.Equal("original content", history.Content)

	author, err := suite.authorRepo.GetByExternalUserID(suite.ctx, "writer-1")
	suite.Require().NoError(err)
	suite.Equal([]string{article.ID}, author.ArticleIDs)
	suite.Equal(models.RolePrincipalAuthor, author.Contributions[0].Role)
}

func (suite *ArticleServiceTestSuite) TestCreateArticleKeepsRequesterFirstAuthor() {
	article, err := suite.service.CreateArticle(suite.ctx, models.CreateArticleRequest{
		Title:     "Co-authored piece",
		Type:      models.TypeOpinion,
		Content:   "text",
		AuthorIDs: []string{"writer-2", "writer-3"},
	}, "writer-1")
	suite.Require().NoError(err)

	suite.Equal([]string{"writer-1", "writer-2", "writer-3"}, article.AuthorIDs)

	// A requester already listed is not duplicated.
	article2, err := suite.service.CreateArticle(suite.ctx, models.CreateArticleRequest{
		Title:     "Another",
		Type:      models.TypeOpinion,
		Content:   "text",
		AuthorIDs: []string{"writer-1", "writer-2"},
	}, "writer-1")
	suite.Require().NoError(err)
	suite.Equal([]string{"writer-1", "writer-2"}, article2.AuthorIDs)

	// Duplicate co-author ids in the request collapse to one entry,
	// in the article and in the editorial team alike.
	article3, err := suite.service.CreateArticle(suite.ctx, models.CreateArticleRequest{
		Title:     "Triplicate",
		Type:      models.TypeOpinion,
		Content:   "text",
		AuthorIDs: []string{"writer-2", "writer-2", "writer-3"},
	}, "writer-1")
	suite.Require().NoError(err)
	suite.Equal([]string{"writer-1", "writer-2", "writer-3"}, article3.AuthorIDs)

	editorial, err := suite.editorialRepo.GetByArticleID(suite.ctx, article3.ID)
	suite.Require().NoError(err)
	suite.Equal([]string{"writer-1", "writer-2", "writer-3"}, editorial.Team.AuthorIDs)
}

func (suite *ArticleServiceTestSuite) TestReviseContentAppendsAndSaturates() {
	article := suite.createArticle("writer-1")

	for i := 1; i <= 7; i++ {
		history, err := suite.service.ReviseContent(suite.ctx, article.ID, models.ReviseContentRequest{
			Content: "revision",
		}, "writer-1")
		suite.Require().NoError(err)

		editorial, err := suite.editorialRepo.GetByArticleID(suite.ctx, article.ID)
		suite.Require().NoError(err)
		suite.Len(editorial.HistoryIDs, i+1)
		suite.Equal(history.ID, editorial.CurrentHistoryID)
		suite.Equal(history.ID, editorial.HistoryIDs[len(editorial.HistoryIDs)-1])
	}

	// Seven revisions blow past the last defined stage; the label
	// saturates at Final instead of erroring.
	editorial, err := suite.editorialRepo.GetByArticleID(suite.ctx, article.ID)
	suite.Require().NoError(err)
	last, err := suite.historyRepo.GetByID(suite.ctx, editorial.CurrentHistoryID)
	suite.Require().NoError(err)
	suite.Equal(models.VersionFinal, last.Version)
}

func (suite *ArticleServiceTestSuite) TestReviseContentRejectsNonTeam() {
	article := suite.createArticle("writer-1")

	_, err := suite.service.ReviseContent(suite.ctx, article.ID, models.ReviseContentRequest{Content: "x"}, "stranger")
	var authErr models.ErrorUnauthorized
	suite.ErrorAs(err, &authErr)
}

func (suite *ArticleServiceTestSuite) TestReviseContentRejectsPublished() {
	suite.seedStaff("chief-1", models.JobChiefEditor)
	article := suite.createArticle("writer-1")
	suite.Require().NoError(suite.service.UpdateStatus(suite.ctx, article.ID, models.StatusPublished, "chief-1"))

	_, err := suite.service.ReviseContent(suite.ctx, article.ID, models.ReviseContentRequest{Content: "x"}, "writer-1")
	var authErr models.ErrorUnauthorized
	suite.ErrorAs(err, &authErr)
}

func (suite *ArticleServiceTestSuite) TestUpdateStatusIsRoleGated() {
	article := suite.createArticle("writer-1")

	// No staff record at all.
	err := suite.service.UpdateStatus(suite.ctx, article.ID, models.StatusInReview, "writer-1")
	var authErr models.ErrorUnauthorized
	suite.ErrorAs(err, &authErr)

	// Retired staff.
	suite.seedStaff("old-timer", models.JobRetired)
	err = suite.service.UpdateStatus(suite.ctx, article.ID, models.StatusInReview, "old-timer")
	suite.ErrorAs(err, &authErr)

	// A junior editor outside the team can still flip any article's
	// status; the gate is role-only.
	suite.seedStaff("junior-1", models.JobJuniorEditor)
	suite.Require().NoError(suite.service.UpdateStatus(suite.ctx, article.ID, models.StatusInReview, "junior-1"))

	updated, err := suite.articleRepo.GetByID(suite.ctx, article.ID)
	suite.Require().NoError(err)
	suite.Equal(models.StatusInReview, updated.Status)
}

func (suite *ArticleServiceTestSuite) TestUpdateStatusRejectsOutOfEnumValue() {
	suite.seedStaff("chief-1", models.JobChiefEditor)
	article := suite.createArticle("writer-1")

	err := suite.service.UpdateStatus(suite.ctx, article.ID, models.ArticleStatus("totally_bogus"), "chief-1")
	var invalidErr models.ErrorInvalidOperation
	suite.ErrorAs(err, &invalidErr)

	stored, getErr := suite.articleRepo.GetByID(suite.ctx, article.ID)
	suite.Require().NoError(getErr)
	suite.Equal(models.StatusDraft, stored.Status)
}

func (suite *ArticleServiceTestSuite) TestAdvancePositionRejectsOutOfEnumValue() {
	suite.seedStaff("chief-1", models.JobChiefEditor)
	article := suite.createArticle("writer-1")

	err := suite.service.AdvancePosition(suite.ctx, article.ID, models.EditorialPosition("limbo"), "chief-1")
	var invalidErr models.ErrorInvalidOperation
	suite.ErrorAs(err, &invalidErr)

	editorial, getErr := suite.editorialRepo.GetByArticleID(suite.ctx, article.ID)
	suite.Require().NoError(getErr)
	suite.Equal(models.PositionSubmitted, editorial.Position)
}

func (suite *ArticleServiceTestSuite) TestPublishStampsPublicationDate() {
	suite.seedStaff("chief-1", models.JobChiefEditor)
	article := suite.createArticle("writer-1")

	suite.Require().NoError(suite.service.UpdateStatus(suite.ctx, article.ID, models.StatusPublished, "chief-1"))

	published, err := suite.articleRepo.GetByID(suite.ctx, article.ID)
	suite.Require().NoError(err)
	suite.Require().NotNil(published.PublishedAt)

	stamp := *published.PublishedAt

	// Republishing keeps the original stamp.
	suite.Require().NoError(suite.service.UpdateStatus(suite.ctx, article.ID, models.StatusPublished, "chief-1"))
	again, err := suite.articleRepo.GetByID(suite.ctx, article.ID)
	suite.Require().NoError(err)
	suite.Equal(stamp, *again.PublishedAt)
}

func (suite *ArticleServiceTestSuite) TestAssignToVolume() {
	suite.seedStaff("chief-1", models.JobChiefEditor)
	article := suite.createArticle("writer-1")
	suite.volumeRepo.volumes["vol-1"] = models.Volume{ID: "vol-1", Edition: 3}

	// Draft articles cannot join a volume.
	err := suite.service.AssignToVolume(suite.ctx, article.ID, "vol-1", "chief-1")
	var invalidErr models.ErrorInvalidOperation
	suite.ErrorAs(err, &invalidErr)

	suite.Require().NoError(suite.service.UpdateStatus(suite.ctx, article.ID, models.StatusPublished, "chief-1"))
	suite.Require().NoError(suite.service.AssignToVolume(suite.ctx, article.ID, "vol-1", "chief-1"))

	updated, err := suite.articleRepo.GetByID(suite.ctx, article.ID)
	suite.Require().NoError(err)
	suite.Equal("vol-1", updated.VolumeID)

	volume, err := suite.volumeRepo.GetByID(suite.ctx, "vol-1")
	suite.Require().NoError(err)
	suite.Equal([]string{article.ID}, volume.ArticleIDs)
}

func (suite *ArticleServiceTestSuite) TestAddTeamMemberDedups() {
	suite.seedStaff("chief-1", models.JobChiefEditor)
	article := suite.createArticle("writer-1")

	req := models.AddTeamMemberRequest{ExternalUserID: "reviewer-9", Role: models.RoleReviewer}
	suite.Require().NoError(suite.service.AddTeamMember(suite.ctx, article.ID, req, "chief-1"))
	suite.Require().NoError(suite.service.AddTeamMember(suite.ctx, article.ID, req, "chief-1"))

	editorial, err := suite.editorialRepo.GetByArticleID(suite.ctx, article.ID)
	suite.Require().NoError(err)
	suite.Equal([]string{"reviewer-9"}, editorial.Team.ReviewerIDs)

	// The reviewer can now read the unpublished piece.
	_, err = suite.service.GetArticle(suite.ctx, article.ID, "reviewer-9", false)
	suite.NoError(err)
}

func (suite *ArticleServiceTestSuite) TestDeleteArticleIsAdminOnlyAndCascades() {
	suite.seedStaff("chief-1", models.JobChiefEditor)
	suite.seedStaff("admin-1", models.JobAdministrator)
	article := suite.createArticle("writer-1")
	suite.interactionRepo.interactions["c-1"] = models.Interaction{
		ID:        "c-1",
		ArticleID: article.ID,
		Type:      models.InteractionEditorialComment,
	}

	var authErr models.ErrorUnauthorized
	suite.ErrorAs(suite.service.DeleteArticle(suite.ctx, article.ID, "chief-1"), &authErr)

	suite.Require().NoError(suite.service.DeleteArticle(suite.ctx, article.ID, "admin-1"))

	_, err := suite.articleRepo.GetByID(suite.ctx, article.ID)
	suite.Error(err)
	_, err = suite.editorialRepo.GetByArticleID(suite.ctx, article.ID)
	suite.Error(err)
	histories, err := suite.historyRepo.ListByArticleID(suite.ctx, article.ID)
	suite.Require().NoError(err)
	suite.Empty(histories)
	suite.Empty(suite.interactionRepo.interactions)
}

func (suite *ArticleServiceTestSuite) TestGetArticlePublicHidesUnpublished() {
	article := suite.createArticle("writer-1")

	_, err := suite.service.GetArticle(suite.ctx, article.ID, "", true)
	var notFoundErr models.ErrorNotFound
	suite.ErrorAs(err, &notFoundErr)
}

func TestArticleServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ArticleServiceTestSuite))
}
