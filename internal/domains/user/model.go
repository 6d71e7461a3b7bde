package user

import (
	"time"

	"github.com/google/uuid"
)

// User is an account that owns the watch log.
type User struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Avatar       *string   `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
