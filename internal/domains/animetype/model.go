package animetype

import (
	"time"

	"github.com/google/uuid"
)

// AnimeType is a type tag (TV, movie, OVA, ...) referenced by anime items.
type AnimeType struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Label     string    `json:"label" db:"label"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
