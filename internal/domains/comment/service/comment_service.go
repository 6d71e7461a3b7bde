package service

import (
	"context"

	"github.com/google/uuid"

	"animelog-backend/internal/domains/comment"
)

// commentService implements comment.Service.
type commentService struct {
	repo comment.Repository
}

// NewCommentService creates a comment service instance.
func NewCommentService(repo comment.Repository) comment.Service {
	return &commentService{repo: repo}
}

func (s *commentService) Create(ctx context.Context, req *comment.CreateCommentRequest) (*comment.Comment, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	return s.repo.Create(ctx, &comment.Comment{
		AnimeID:       req.AnimeID,
		Type:          req.Type,
		Content:       req.Content,
		EpisodeNumber: req.EpisodeNumber,
	})
}

func (s *commentService) UpdateContent(ctx context.Context, id uuid.UUID, req *comment.UpdateCommentRequest) (*comment.Comment, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	return s.repo.UpdateContent(ctx, id, req.Content)
}
