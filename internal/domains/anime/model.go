package anime

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Status is the watch-state of an item. Exactly one value at any time.
type Status string

const (
	StatusWait     Status = "WAIT"
	StatusWatching Status = "WATCHING"
	StatusFinished Status = "FINISHED"
	StatusDropped  Status = "DROPPED"
)

// Valid reports whether s is one of the four known states.
func (s Status) Valid() bool {
	switch s {
	case StatusWait, StatusWatching, StatusFinished, StatusDropped:
		return true
	}
	return false
}

// Anime is a watchable work tracked by the log.
//
// The status field is mutated only by the transition engine; every other
// field is a plain editable attribute.
type Anime struct {
	ID            uuid.UUID  `json:"id" db:"id"`
	Names         []string   `json:"names" db:"names"` // first entry is the canonical title
	ReleaseDate   *time.Time `json:"release_date" db:"release_date"`
	TotalEpisodes *int       `json:"total_episodes" db:"total_episodes"`
	TypeID        uuid.UUID  `json:"type_id" db:"type_id"`
	Status        Status     `json:"status" db:"status"`
	CoverImage    *string    `json:"cover_image" db:"cover_image"`
	URL           *string    `json:"url" db:"url"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at" db:"updated_at"`
}

// HistoryRecord is one watch session: a single pass through WATCHING.
// A NULL end date marks the session as open. At most one open record may
// exist per anime at any instant; the partial unique index on the history
// table and the per-item lock taken by the transition engine enforce it.
type HistoryRecord struct {
	ID         uuid.UUID        `json:"id" db:"id"`
	AnimeID    uuid.UUID        `json:"anime_id" db:"anime_id"`
	StartDate  time.Time        `json:"start_date" db:"start_date"`
	EndDate    *time.Time       `json:"end_date" db:"end_date"`
	WatchCount int              `json:"watch_count" db:"watch_count"`
	Rating     *decimal.Decimal `json:"rating" db:"rating"`
}

// Open reports whether the session is still being watched.
func (h HistoryRecord) Open() bool {
	return h.EndDate == nil
}
