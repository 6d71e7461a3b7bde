package animetype

import (
	"context"

	"github.com/google/uuid"
)

// Service defines business logic for type tags.
type Service interface {
	List(ctx context.Context) ([]AnimeType, error)
	Create(ctx context.Context, req *CreateTypeRequest) (*AnimeType, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
