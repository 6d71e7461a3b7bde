package user

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines data access for accounts.
type Repository interface {
	// Create inserts a new account.
	// Errors: ErrUsernameTaken.
	Create(ctx context.Context, u *User) error

	// GetByUsername looks an account up by its login name.
	// Errors: ErrUserNotFound.
	GetByUsername(ctx context.Context, username string) (*User, error)

	// GetByID looks an account up by id.
	// Errors: ErrUserNotFound.
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)

	// UpdateAvatar stores the object key of the user's avatar image.
	// Errors: ErrUserNotFound.
	UpdateAvatar(ctx context.Context, id uuid.UUID, key string) error
}
