package comment

import (
	"context"

	"github.com/google/uuid"
)

// Service defines business logic for the comment log.
type Service interface {
	// Create validates and appends a note.
	Create(ctx context.Context, req *CreateCommentRequest) (*Comment, error)

	// UpdateContent edits the text of one note.
	// Errors: ErrCommentNotFound.
	UpdateContent(ctx context.Context, id uuid.UUID, req *UpdateCommentRequest) (*Comment, error)
}
