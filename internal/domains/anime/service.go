package anime

import (
	"context"

	"github.com/google/uuid"
)

// Service defines business logic for the anime domain.
type Service interface {
	// Create validates and stores a new item (status WAIT), seeding a
	// REASON_TO_WATCH comment when a reason is given.
	Create(ctx context.Context, req *CreateAnimeRequest) (*AnimeResponse, error)

	// GetByID returns the item with its raw history rows and comments.
	// Errors: ErrAnimeNotFound.
	GetByID(ctx context.Context, id uuid.UUID) (*AnimeDetailResponse, error)

	// List returns items joined with their aggregated history, filtered
	// and sorted. Cover keys are resolved to presigned URLs.
	List(ctx context.Context, filter ListFilter) ([]AnimeResponse, error)

	// UpdateInfo applies a partial edit of the non-status fields.
	// Errors: ErrNoFieldsToUpdate, ErrAnimeNotFound.
	UpdateInfo(ctx context.Context, id uuid.UUID, req *UpdateAnimeRequest) (*AnimeResponse, error)

	// ApplyTransition drives the watch-state machine for one item as a
	// single atomic unit of work and returns the new status.
	// Errors: ErrInvalidAction, ErrAnimeNotFound, ErrNoActiveSession.
	ApplyTransition(ctx context.Context, id uuid.UUID, req *TransitionRequest) (Status, error)

	// UpdateHistory edits the dates of one ledger record directly.
	// Errors: ErrNoDatesSupplied, ErrHistoryNotFound.
	UpdateHistory(ctx context.Context, id uuid.UUID, req *UpdateHistoryRequest) (*HistoryRecord, error)
}
