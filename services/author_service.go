package services

import (
	"context"

	"revista-editorial-api/models"
	"revista-editorial-api/repositories"
)

type AuthorService interface {
	Get(ctx context.Context, id string) (*models.Author, error)
	GetByExternalUserID(ctx context.Context, externalUserID string) (*models.Author, error)
	List(ctx context.Context, params models.ListParams) ([]models.Author, int64, error)
}

type authorService struct {
	authorRepo repositories.AuthorRepository
}

func NewAuthorService(authorRepo repositories.AuthorRepository) AuthorService {
	return &authorService{authorRepo: authorRepo}
}

func (s *authorService) Get(ctx context.Context, id string) (*models.Author, error) {
	author, err := s.authorRepo.GetByID(ctx, id)
	if err != nil {
		return nil, asNotFound(err, "author not found")
	}
	return author, nil
}

func (s *authorService) GetByExternalUserID(ctx context.Context, externalUserID string) (*models.Author, error) {
	author, err := s.authorRepo.GetByExternalUserID(ctx, externalUserID)
	if err != nil {
		return nil, asNotFound(err, "author not found")
	}
	return author, nil
}

func (s *authorService) List(ctx context.Context, params models.ListParams) ([]models.Author, int64, error) {
	return s.authorRepo.GetList(ctx, params)
}
