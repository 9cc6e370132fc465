package services

import (
	"context"
	"time"

	"revista-editorial-api/models"
	"revista-editorial-api/repositories"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type VolumeService interface {
	Create(ctx context.Context, req models.CreateVolumeRequest, actorID string) (*models.Volume, error)
	Update(ctx context.Context, id string, req models.UpdateVolumeRequest, actorID string) (*models.Volume, error)
	Get(ctx context.Context, id string) (*models.Volume, error)
	List(ctx context.Context, params models.ListParams) ([]models.Volume, int64, error)
}

type volumeService struct {
	volumeRepo repositories.VolumeRepository
	staffRepo  repositories.StaffRepository
}

func NewVolumeService(volumeRepo repositories.VolumeRepository, staffRepo repositories.StaffRepository) VolumeService {
	return &volumeService{volumeRepo: volumeRepo, staffRepo: staffRepo}
}

func (s *volumeService) Create(ctx context.Context, req models.CreateVolumeRequest, actorID string) (*models.Volume, error) {
	actor, err := s.staffRepo.GetByExternalUserID(ctx, actorID)
	if err != nil || !CanManageVolume(actor) {
		return nil, models.ErrorUnauthorized{Message: "not allowed to manage volumes"}
	}

	now := time.Now()
	volume := &models.Volume{
		ID:         primitive.NewObjectID().Hex(),
		Edition:    req.Edition,
		Title:      req.Title,
		Summary:    req.Summary,
		Month:      req.Month,
		Year:       req.Year,
		ArticleIDs: []string{},
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.volumeRepo.Create(ctx, volume); err != nil {
		return nil, err
	}
	return volume, nil
}

func (s *volumeService) Update(ctx context.Context, id string, req models.UpdateVolumeRequest, actorID string) (*models.Volume, error) {
	actor, err := s.staffRepo.GetByExternalUserID(ctx, actorID)
	if err != nil || !CanManageVolume(actor) {
		return nil, models.ErrorUnauthorized{Message: "not allowed to manage volumes"}
	}

	volume, err := s.volumeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, asNotFound(err, "volume not found")
	}

	if req.Title != "" {
		volume.Title = req.Title
	}
	if req.Summary != "" {
		volume.Summary = req.Summary
	}
	if req.Month != 0 {
		volume.Month = req.Month
	}
	if req.Year != 0 {
		volume.Year = req.Year
	}

	if err := s.volumeRepo.Update(ctx, volume); err != nil {
		return nil, err
	}
	return volume, nil
}

func (s *volumeService) Get(ctx context.Context, id string) (*models.Volume, error) {
	volume, err := s.volumeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, asNotFound(err, "volume not found")
	}
	return volume, nil
}

func (s *volumeService) List(ctx context.Context, params models.ListParams) ([]models.Volume, int64, error) {
	return s.volumeRepo.GetList(ctx, params)
}
