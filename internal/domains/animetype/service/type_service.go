package service

import (
	"context"

	"github.com/google/uuid"

	"animelog-backend/internal/domains/animetype"
)

// typeService implements animetype.Service.
type typeService struct {
	repo animetype.Repository
}

// NewTypeService creates a type service instance.
func NewTypeService(repo animetype.Repository) animetype.Service {
	return &typeService{repo: repo}
}

func (s *typeService) List(ctx context.Context) ([]animetype.AnimeType, error) {
	return s.repo.List(ctx)
}

func (s *typeService) Create(ctx context.Context, req *animetype.CreateTypeRequest) (*animetype.AnimeType, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, req.Label)
}

func (s *typeService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
