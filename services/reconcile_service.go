package services

import (
	"context"
	"time"

	"revista-editorial-api/models"
	"revista-editorial-api/repositories"

	"github.com/getsentry/sentry-go"
	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
)

// ReconcileService periodically recounts the denormalized comment and
// interaction counters. Comment creation bumps them in a second,
// non-atomic write, so they drift under concurrency; this job trues
// them up against the interactions collection.
type ReconcileService struct {
	articleRepo     repositories.ArticleRepository
	interactionRepo repositories.InteractionRepository
	scheduler       *gocron.Scheduler
	interval        time.Duration
	log             *logrus.Entry
}

func NewReconcileService(articleRepo repositories.ArticleRepository, interactionRepo repositories.InteractionRepository, interval time.Duration) *ReconcileService {
	return &ReconcileService{
		articleRepo:     articleRepo,
		interactionRepo: interactionRepo,
		scheduler:       gocron.NewScheduler(time.UTC),
		interval:        interval,
		log:             logrus.WithField("service", "reconcile"),
	}
}

func (s *ReconcileService) Start() {
	s.scheduler.Every(s.interval).SingletonMode().Do(s.Run)
	s.scheduler.StartAsync()
}

func (s *ReconcileService) Stop() {
	s.scheduler.Stop()
}

// Run walks every article and overwrites drifted counters.
func (s *ReconcileService) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	ids, err := s.articleRepo.ListIDs(ctx)
	if err != nil {
		s.log.WithError(err).Error("article id listing failed")
		sentry.CaptureException(err)
		return
	}

	fixed := 0
	for _, id := range ids {
		if err := s.reconcileArticle(ctx, id); err != nil {
			s.log.WithError(err).WithField("article_id", id).Warn("reconcile failed")
			sentry.CaptureException(err)
			continue
		}
		fixed++
	}
	s.log.WithFields(logrus.Fields{"articles": len(ids), "checked": fixed}).Debug("counter reconcile pass done")
}

func (s *ReconcileService) reconcileArticle(ctx context.Context, id string) error {
	article, err := s.articleRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	count, err := s.interactionRepo.CountByArticleID(ctx, id, models.InteractionPublicComment)
	if err != nil {
		return err
	}

	if article.TotalComments == int(count) && article.TotalInteractions == int(count) {
		return nil
	}

	s.log.WithFields(logrus.Fields{
		"article_id": id,
		"stored":     article.TotalComments,
		"actual":     count,
	}).Warn("counter drift detected")

	article.TotalComments = int(count)
	article.TotalInteractions = int(count)
	return s.articleRepo.Update(ctx, article)
}
