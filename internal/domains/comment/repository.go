package comment

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines data access for the comment log.
type Repository interface {
	// Create appends a note.
	Create(ctx context.Context, c *Comment) (*Comment, error)

	// UpdateContent replaces the content of one note.
	// Errors: ErrCommentNotFound.
	UpdateContent(ctx context.Context, id uuid.UUID, content string) (*Comment, error)

	// ListByAnime returns an item's notes, newest first.
	ListByAnime(ctx context.Context, animeID uuid.UUID) ([]Comment, error)
}
