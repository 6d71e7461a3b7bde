package comment

import (
	"time"

	"github.com/google/uuid"
)

// Well-known comment types. The column is free-form text so episode notes
// can carry their own labels; these two are written by the anime domain as
// transition side effects.
const (
	TypeReasonToWatch = "REASON_TO_WATCH"
	TypeFinalReview   = "FINAL_REVIEW"
	TypeEpisodeNote   = "EPISODE_NOTE"
)

// Comment is a typed free-text note attached to an anime. Comments are
// append-only: content can be edited, records are never deleted.
type Comment struct {
	ID            uuid.UUID `json:"id" db:"id"`
	AnimeID       uuid.UUID `json:"anime_id" db:"anime_id"`
	Type          string    `json:"type" db:"type"`
	Content       string    `json:"content" db:"content"`
	EpisodeNumber *int      `json:"episode_number" db:"episode_number"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}
