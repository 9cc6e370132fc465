package services

import (
	"context"
	"encoding/json"
	"time"

	"revista-editorial-api/models"
	"revista-editorial-api/repositories"

	"github.com/getsentry/sentry-go"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type PendingService interface {
	Create(ctx context.Context, req models.CreatePendingRequest, requesterID string) (*models.Pending, error)
	Get(ctx context.Context, id, actorID string) (*models.Pending, error)
	List(ctx context.Context, status models.PendingStatus, params models.ListParams, actorID string) ([]models.Pending, int64, error)
	Resolve(ctx context.Context, id string, approve bool, resolverID string) (*models.Pending, error)
}

type pendingService struct {
	pendingRepo    repositories.PendingRepository
	staffRepo      repositories.StaffRepository
	articleService ArticleService
	log            *logrus.Entry
}

func NewPendingService(pendingRepo repositories.PendingRepository, staffRepo repositories.StaffRepository, articleService ArticleService) PendingService {
	return &pendingService{
		pendingRepo:    pendingRepo,
		staffRepo:      staffRepo,
		articleService: articleService,
		log:            logrus.WithField("service", "pending"),
	}
}

func (s *pendingService) Create(ctx context.Context, req models.CreatePendingRequest, requesterID string) (*models.Pending, error) {
	staff := s.loadStaff(ctx, requesterID)
	if !CanCreatePending(staff) {
		return nil, models.ErrorUnauthorized{Message: "only junior editors may file pending requests"}
	}

	pending := &models.Pending{
		ID:             uuid.NewString(),
		TargetEntityID: req.TargetEntityID,
		TargetType:     req.TargetType,
		RequesterID:    requesterID,
		CommandType:    req.CommandType,
		Parameters:     req.Parameters,
		Status:         models.PendingAwaitingReview,
		CreatedAt:      time.Now(),
	}
	if err := s.pendingRepo.Create(ctx, pending); err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{"pending_id": pending.ID, "command": pending.CommandType}).Info("pending request filed")
	return pending, nil
}

func (s *pendingService) Get(ctx context.Context, id, actorID string) (*models.Pending, error) {
	staff := s.loadStaff(ctx, actorID)
	if staff == nil || !staff.IsActive {
		return nil, models.ErrorUnauthorized{Message: "staff only"}
	}
	pending, err := s.pendingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, asNotFound(err, "pending request not found")
	}
	return pending, nil
}

func (s *pendingService) List(ctx context.Context, status models.PendingStatus, params models.ListParams, actorID string) ([]models.Pending, int64, error) {
	staff := s.loadStaff(ctx, actorID)
	if staff == nil || !staff.IsActive {
		return nil, 0, models.ErrorUnauthorized{Message: "staff only"}
	}
	return s.pendingRepo.GetList(ctx, status, params)
}

// Resolve moves an awaiting request to its terminal state. Rejection
// never touches the target. Approval deserializes the JSON parameters
// and dispatches on the command-type string; an unrecognized command or
// a failed execution rejects the request and surfaces the error. The
// final status is persisted either way.
func (s *pendingService) Resolve(ctx context.Context, id string, approve bool, resolverID string) (*models.Pending, error) {
	staff := s.loadStaff(ctx, resolverID)
	if !CanResolvePending(staff) {
		return nil, models.ErrorUnauthorized{Message: "not allowed to resolve pending requests"}
	}

	pending, err := s.pendingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, asNotFound(err, "pending request not found")
	}
	if pending.Status != models.PendingAwaitingReview {
		return nil, models.ErrorInvalidOperation{Message: "pending request already resolved"}
	}

	now := time.Now()
	pending.ResolverID = resolverID
	pending.ResolvedAt = &now

	if !approve {
		pending.Status = models.PendingRejected
		if err := s.pendingRepo.Update(ctx, pending); err != nil {
			return nil, err
		}
		return pending, nil
	}

	execErr := s.execute(ctx, pending, resolverID)
	if execErr != nil {
		pending.Status = models.PendingRejected
	} else {
		pending.Status = models.PendingApproved
	}
	if err := s.pendingRepo.Update(ctx, pending); err != nil {
		s.log.WithError(err).WithField("pending_id", pending.ID).Error("final status persist failed")
		sentry.CaptureException(err)
		return nil, err
	}

	if execErr != nil {
		s.log.WithError(execErr).WithFields(logrus.Fields{"pending_id": pending.ID, "command": pending.CommandType}).Warn("pending command rejected")
		sentry.CaptureException(execErr)
		return pending, execErr
	}
	return pending, nil
}

func (s *pendingService) execute(ctx context.Context, pending *models.Pending, resolverID string) error {
	var params map[string]interface{}
	if err := json.Unmarshal([]byte(pending.Parameters), &params); err != nil {
		return models.ErrorInvalidOperation{Message: "malformed command parameters: " + err.Error()}
	}

	switch pending.CommandType {
	case models.CommandChangeArticleStatus:
		newStatus, ok := params["NewStatus"].(string)
		if !ok {
			return models.ErrorInvalidOperation{Message: "ChangeArticleStatus requires NewStatus"}
		}
		return s.articleService.UpdateStatus(ctx, pending.TargetEntityID, models.ArticleStatus(newStatus), resolverID)

	case models.CommandUpdateStaffJob:
		newJob, ok := params["NewJob"].(string)
		if !ok {
			return models.ErrorInvalidOperation{Message: "UpdateStaffJob requires NewJob"}
		}
		job := models.StaffJob(newJob)
		if !models.ValidStaffJob(job) {
			return models.ErrorInvalidOperation{Message: "unknown staff job: " + newJob}
		}
		target, err := s.staffRepo.GetByID(ctx, pending.TargetEntityID)
		if err != nil {
			return asNotFound(err, "target staff not found")
		}
		target.Job = job
		return s.staffRepo.Update(ctx, target)

	case models.CommandAssignArticleVolume:
		volumeID, ok := params["VolumeID"].(string)
		if !ok {
			return models.ErrorInvalidOperation{Message: "AssignArticleVolume requires VolumeID"}
		}
		return s.articleService.AssignToVolume(ctx, pending.TargetEntityID, volumeID, resolverID)
	}

	return models.ErrorInvalidOperation{Message: "unrecognized command type: " + pending.CommandType}
}

func (s *pendingService) loadStaff(ctx context.Context, actorID string) *models.Staff {
	if actorID == "" {
		return nil
	}
	staff, err := s.staffRepo.GetByExternalUserID(ctx, actorID)
	if err != nil {
		return nil
	}
	return staff
}
