package services

import (
	"context"
	"testing"
	"time"

	"revista-editorial-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReconcileOverwritesDriftedCounters(t *testing.T) {
	articleRepo := newFakeArticleRepo()
	interactionRepo := newFakeInteractionRepo()
	service := NewReconcileService(articleRepo, interactionRepo, time.Minute)

	// Stored counters say 5, the collection holds 2 public comments and
	// an editorial comment that must not be counted.
	articleRepo.articles["art-1"] = models.Article{
		ID:                "art-1",
		Status:            models.StatusPublished,
		TotalComments:     5,
		TotalInteractions: 5,
	}
	interactionRepo.interactions["c-1"] = models.Interaction{ID: "c-1", ArticleID: "art-1", Type: models.InteractionPublicComment}
	interactionRepo.interactions["c-2"] = models.Interaction{ID: "c-2", ArticleID: "art-1", Type: models.InteractionPublicComment}
	interactionRepo.interactions["c-3"] = models.Interaction{ID: "c-3", ArticleID: "art-1", Type: models.InteractionEditorialComment}

	service.Run()

	article, err := articleRepo.GetByID(context.Background(), "art-1")
	require.NoError(t, err)
	assert.Equal(t, 2, article.TotalComments)
	assert.Equal(t, 2, article.TotalInteractions)
}

func TestReconcileLeavesAccurateCountersAlone(t *testing.T) {
	articleRepo := newFakeArticleRepo()
	interactionRepo := newFakeInteractionRepo()
	service := NewReconcileService(articleRepo, interactionRepo, time.Minute)

	articleRepo.articles["art-1"] = models.Article{
		ID:                "art-1",
		Status:            models.StatusPublished,
		TotalComments:     1,
		TotalInteractions: 1,
	}
	interactionRepo.interactions["c-1"] = models.Interaction{ID: "c-1", ArticleID: "art-1", Type: models.InteractionPublicComment}

	require.NoError(t, service.reconcileArticle(context.Background(), "art-1"))

	article, err := articleRepo.GetByID(context.Background(), "art-1")
	require.NoError(t, err)
	assert.Equal(t, 1, article.TotalComments)
}
