package user

import (
	"context"
	"mime/multipart"

	"github.com/google/uuid"
)

// Service defines account business logic.
type Service interface {
	// Register creates an account and returns a signed token for it.
	Register(ctx context.Context, req *RegisterRequest) (*LoginResponse, error)

	// Login verifies credentials and returns a signed token.
	// Errors: ErrInvalidCredentials.
	Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error)

	// Profile returns the user's public view, with the avatar resolved
	// to a presigned URL when available.
	Profile(ctx context.Context, id uuid.UUID) (*ProfileResponse, error)

	// UploadAvatar stores the image and records its key on the account.
	UploadAvatar(ctx context.Context, id uuid.UUID, file *multipart.FileHeader) (*ProfileResponse, error)
}
