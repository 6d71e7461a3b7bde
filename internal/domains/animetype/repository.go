package animetype

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines data access for type tags.
type Repository interface {
	// List returns all type tags, oldest first.
	List(ctx context.Context) ([]AnimeType, error)

	// Create inserts a new type tag.
	Create(ctx context.Context, label string) (*AnimeType, error)

	// Delete removes a type tag.
	// Errors: ErrTypeNotFound.
	Delete(ctx context.Context, id uuid.UUID) error
}
