package anime

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Repository defines data access for the anime aggregate: the item itself
// plus its history ledger.
type Repository interface {
	// Create inserts a new item in status WAIT. A non-empty reason is
	// stored as a REASON_TO_WATCH comment in the same transaction.
	Create(ctx context.Context, a *Anime, reason string) (*Anime, error)

	// GetByID retrieves one item.
	// Errors: ErrAnimeNotFound.
	GetByID(ctx context.Context, id uuid.UUID) (*Anime, error)

	// List retrieves items joined with their bulk-aggregated history
	// summaries, filtered and sorted per the filter contract.
	List(ctx context.Context, filter ListFilter) ([]ListedAnime, error)

	// UpdateInfo applies a partial field edit outside the state machine.
	// Errors: ErrNoFieldsToUpdate, ErrAnimeNotFound.
	UpdateInfo(ctx context.Context, id uuid.UUID, upd InfoUpdate) (*Anime, error)

	// Transition runs fn inside one transaction holding a per-item lock,
	// so concurrent transitions on the same item serialize. Any error from
	// fn rolls back every write made through the scope. The item row is
	// locked first; a missing item yields ErrAnimeNotFound.
	Transition(ctx context.Context, animeID uuid.UUID, fn TransitionFunc) (Status, error)

	// HistoryByAnime returns the raw ledger rows, newest start date first.
	HistoryByAnime(ctx context.Context, animeID uuid.UUID) ([]HistoryRecord, error)

	// UpdateHistoryDates edits the dates of one session directly.
	// Errors: ErrHistoryNotFound.
	UpdateHistoryDates(ctx context.Context, id uuid.UUID, start, end *time.Time) (*HistoryRecord, error)
}

// TransitionFunc holds the state-machine decisions for one transition and
// returns the item's new status.
type TransitionFunc func(tx TransitionTx) (Status, error)

// TransitionTx is the transactional scope a transition executes in. Every
// call operates on the single item the scope was opened for; writes become
// visible only if the whole transition commits.
type TransitionTx interface {
	// FindOpenSession returns the open ledger record, or nil if none.
	FindOpenSession() (*HistoryRecord, error)

	// OpenSession appends an open record with the given watch count.
	OpenSession(watchCount int) error

	// CloseOpenSession stamps the open record (if any) with the current
	// time and the given rating. A missing open record is not an error.
	CloseOpenSession(rating *decimal.Decimal) error

	// DeleteSession removes a ledger record outright.
	DeleteSession(id uuid.UUID) error

	// MaxWatchCount returns the highest watch count ever recorded for the
	// item, zero when no history exists.
	MaxWatchCount() (int, error)

	// SetStatus mutates the item's status field.
	SetStatus(s Status) error

	// AddComment appends a typed note to the item within the transaction.
	AddComment(commentType, content string) error
}

// URLResolver turns an opaque storage key into a time-limited retrieval
// URL. Implementations return nil for empty keys and degrade to nil on
// signing failure instead of failing the request.
type URLResolver interface {
	Resolve(ctx context.Context, key string) *string
}
