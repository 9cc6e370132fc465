package services

import (
	"context"
	"errors"
	"time"

	"revista-editorial-api/models"
	"revista-editorial-api/repositories"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type StaffService interface {
	Create(ctx context.Context, req models.CreateStaffRequest, actorID string) (*models.Staff, error)
	Update(ctx context.Context, id string, req models.UpdateStaffRequest, actorID string) (*models.Staff, error)
	Get(ctx context.Context, id string) (*models.Staff, error)
	GetByExternalUserID(ctx context.Context, externalUserID string) (*models.Staff, error)
	List(ctx context.Context, params models.ListParams) ([]models.Staff, int64, error)
}

type staffService struct {
	staffRepo repositories.StaffRepository
}

func NewStaffService(staffRepo repositories.StaffRepository) StaffService {
	return &staffService{staffRepo: staffRepo}
}

func (s *staffService) Create(ctx context.Context, req models.CreateStaffRequest, actorID string) (*models.Staff, error) {
	actor, err := s.staffRepo.GetByExternalUserID(ctx, actorID)
	if err != nil || !CanManageStaff(actor) {
		return nil, models.ErrorUnauthorized{Message: "only administrators may create staff records"}
	}

	if !models.ValidStaffJob(req.Job) {
		return nil, models.ErrorInvalidOperation{Message: "unknown staff job"}
	}

	existing, err := s.staffRepo.GetByExternalUserID(ctx, req.ExternalUserID)
	if err == nil && existing != nil {
		return nil, models.ErrorConflict{Message: "staff record already exists for this user"}
	}
	if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}

	now := time.Now()
	staff := &models.Staff{
		ID:             primitive.NewObjectID().Hex(),
		ExternalUserID: req.ExternalUserID,
		Job:            req.Job,
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.staffRepo.Create(ctx, staff); err != nil {
		return nil, err
	}
	return staff, nil
}

func (s *staffService) Update(ctx context.Context, id string, req models.UpdateStaffRequest, actorID string) (*models.Staff, error) {
	actor, err := s.staffRepo.GetByExternalUserID(ctx, actorID)
	if err != nil || !CanManageStaff(actor) {
		return nil, models.ErrorUnauthorized{Message: "only administrators may update staff records"}
	}

	staff, err := s.staffRepo.GetByID(ctx, id)
	if err != nil {
		return nil, asNotFound(err, "staff not found")
	}

	if req.Job != "" {
		if !models.ValidStaffJob(req.Job) {
			return nil, models.ErrorInvalidOperation{Message: "unknown staff job"}
		}
		staff.Job = req.Job
	}
	if req.IsActive != nil {
		staff.IsActive = *req.IsActive
	}

	if err := s.staffRepo.Update(ctx, staff); err != nil {
		return nil, err
	}
	return staff, nil
}

func (s *staffService) Get(ctx context.Context, id string) (*models.Staff, error) {
	staff, err := s.staffRepo.GetByID(ctx, id)
	if err != nil {
		return nil, asNotFound(err, "staff not found")
	}
	return staff, nil
}

func (s *staffService) GetByExternalUserID(ctx context.Context, externalUserID string) (*models.Staff, error) {
	staff, err := s.staffRepo.GetByExternalUserID(ctx, externalUserID)
	if err != nil {
		return nil, asNotFound(err, "staff not found")
	}
	return staff, nil
}

func (s *staffService) List(ctx context.Context, params models.ListParams) ([]models.Staff, int64, error) {
	return s.staffRepo.GetList(ctx, params)
}
