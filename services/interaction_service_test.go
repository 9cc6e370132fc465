package services

import (
	"context"
	"testing"
	"time"

	"revista-editorial-api/models"

	"github.com/stretchr/testify/suite"
)

type InteractionServiceTestSuite struct {
	suite.Suite
	ctx             context.Context
	interactionRepo *fakeInteractionRepo
	articleRepo     *fakeArticleRepo
	editorialRepo   *fakeEditorialRepo
	staffRepo       *fakeStaffRepo
	service         InteractionService
}

func (suite *InteractionServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.interactionRepo = newFakeInteractionRepo()
	suite.articleRepo = newFakeArticleRepo()
	suite.editorialRepo = newFakeEditorialRepo()
	suite.staffRepo = newFakeStaffRepo()
	suite.service = NewInteractionService(suite.interactionRepo, suite.articleRepo, suite.editorialRepo, suite.staffRepo)
}

func (suite *InteractionServiceTestSuite) seedArticle(id string, status models.ArticleStatus) {
	suite.articleRepo.articles[id] = models.Article{ID: id, Status: status}
	suite.editorialRepo.editorials["ed-"+id] = models.Editorial{
		ID:        "ed-" + id,
		ArticleID: id,
		Team: models.EditorialTeam{
			AuthorIDs: []string{"writer-1"},
			EditorIDs: []string{"editor-1"},
		},
	}
}

func (suite *InteractionServiceTestSuite) TestPublicCommentRequiresPublishedArticle() {
	suite.seedArticle("art-1", models.StatusDraft)

	_, err := suite.service.CreatePublicComment(suite.ctx, "art-1", models.CreateCommentRequest{Content: "nice"})
	var invalidErr models.ErrorInvalidOperation
	suite.ErrorAs(err, &invalidErr)
}

func (suite *InteractionServiceTestSuite) TestAnonymousPublicCommentBumpsCounters() {
	suite.seedArticle("art-1", models.StatusPublished)

	comment, err := suite.service.CreatePublicComment(suite.ctx, "art-1", models.CreateCommentRequest{Content: "nice"})
	suite.Require().NoError(err)
	suite.Equal(models.InteractionPublicComment, comment.Type)
	suite.Empty(comment.ExternalUserID)

	article, err := suite.articleRepo.GetByID(suite.ctx, "art-1")
	suite.Require().NoError(err)
	suite.Equal(1, article.TotalComments)
	suite.Equal(1, article.TotalInteractions)
}

func (suite *InteractionServiceTestSuite) TestPublicCommentThreading() {
	suite.seedArticle("art-1", models.StatusPublished)
	suite.seedArticle("art-2", models.StatusPublished)

	parent, err := suite.service.CreatePublicComment(suite.ctx, "art-1", models.CreateCommentRequest{Content: "parent"})
	suite.Require().NoError(err)

	reply, err := suite.service.CreatePublicComment(suite.ctx, "art-1", models.CreateCommentRequest{
		Content:         "reply",
		ParentCommentID: &parent.ID,
	})
	suite.Require().NoError(err)
	suite.Equal(parent.ID, *reply.ParentCommentID)

	// No cross-article threads.
	var invalidErr models.ErrorInvalidOperation
	_, err = suite.service.CreatePublicComment(suite.ctx, "art-2", models.CreateCommentRequest{
		Content:         "reply",
		ParentCommentID: &parent.ID,
	})
	suite.ErrorAs(err, &invalidErr)

	// No threading onto editorial comments.
	editorial, err := suite.service.CreateEditorialComment(suite.ctx, "art-1", "internal note", "writer-1")
	suite.Require().NoError(err)
	_, err = suite.service.CreatePublicComment(suite.ctx, "art-1", models.CreateCommentRequest{
		Content:         "reply",
		ParentCommentID: &editorial.ID,
	})
	suite.ErrorAs(err, &invalidErr)
}

func (suite *InteractionServiceTestSuite) TestEditorialCommentIsTeamOnly() {
	suite.seedArticle("art-1", models.StatusDraft)

	var authErr models.ErrorUnauthorized
	_, err := suite.service.CreateEditorialComment(suite.ctx, "art-1", "note", "stranger")
	suite.ErrorAs(err, &authErr)

	comment, err := suite.service.CreateEditorialComment(suite.ctx, "art-1", "note", "editor-1")
	suite.Require().NoError(err)
	suite.Equal(models.InteractionEditorialComment, comment.Type)
	suite.Nil(comment.ParentCommentID)

	editorial, err := suite.editorialRepo.GetByID(suite.ctx, "ed-art-1")
	suite.Require().NoError(err)
	suite.Equal([]string{comment.ID}, editorial.CommentIDs)
}

func (suite *InteractionServiceTestSuite) TestEditorialCommentDoesNotTouchCounters() {
	suite.seedArticle("art-1", models.StatusDraft)

	_, err := suite.service.CreateEditorialComment(suite.ctx, "art-1", "note", "writer-1")
	suite.Require().NoError(err)

	article, err := suite.articleRepo.GetByID(suite.ctx, "art-1")
	suite.Require().NoError(err)
	suite.Zero(article.TotalComments)
	suite.Zero(article.TotalInteractions)
}

func (suite *InteractionServiceTestSuite) TestListEditorialCommentsIsTeamOnly() {
	suite.seedArticle("art-1", models.StatusDraft)

	var authErr models.ErrorUnauthorized
	_, _, err := suite.service.ListByArticle(suite.ctx, "art-1", models.InteractionEditorialComment, models.ListParams{PageSize: 10}, "stranger")
	suite.ErrorAs(err, &authErr)

	_, _, err = suite.service.ListByArticle(suite.ctx, "art-1", models.InteractionEditorialComment, models.ListParams{PageSize: 10}, "writer-1")
	suite.NoError(err)
}

func (suite *InteractionServiceTestSuite) TestModeration() {
	suite.seedArticle("art-1", models.StatusPublished)
	suite.staffRepo.staff["staff-1"] = models.Staff{
		ID:             "staff-1",
		ExternalUserID: "moderator-1",
		Job:            models.JobChiefEditor,
		IsActive:       true,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}

	comment, err := suite.service.CreatePublicComment(suite.ctx, "art-1", models.CreateCommentRequest{
		Content:        "first take",
		ExternalUserID: "reader-1",
	})
	suite.Require().NoError(err)

	// A stranger cannot edit someone else's comment.
	var authErr models.ErrorUnauthorized
	_, err = suite.service.Update(suite.ctx, comment.ID, "defaced", "reader-2")
	suite.ErrorAs(err, &authErr)

	// The author can.
	updated, err := suite.service.Update(suite.ctx, comment.ID, "second take", "reader-1")
	suite.Require().NoError(err)
	suite.Equal("second take", updated.Content)

	// Staff can delete, and the counters come back down.
	suite.Require().NoError(suite.service.Delete(suite.ctx, comment.ID, "moderator-1"))

	article, err := suite.articleRepo.GetByID(suite.ctx, "art-1")
	suite.Require().NoError(err)
	suite.Zero(article.TotalComments)
	suite.Zero(article.TotalInteractions)
}

func TestInteractionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(InteractionServiceTestSuite))
}
