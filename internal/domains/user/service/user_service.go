package service

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"animelog-backend/internal/domains/user"
	"animelog-backend/pkg/jwt"
)

// AvatarStorage is the slice of object storage the user service needs.
type AvatarStorage interface {
	Upload(ctx context.Context, key string, file *multipart.FileHeader) error
	Resolve(ctx context.Context, key string) *string
	Delete(ctx context.Context, key string) error
}

// bcryptCost matches what existing password hashes were created with.
const bcryptCost = 10

// userService implements user.Service.
type userService struct {
	repo    user.Repository
	tokens  *jwt.Manager
	storage AvatarStorage
}

// NewUserService creates a user service instance.
func NewUserService(repo user.Repository, tokens *jwt.Manager, storage AvatarStorage) user.Service {
	return &userService{
		repo:    repo,
		tokens:  tokens,
		storage: storage,
	}
}

func (s *userService) Register(ctx context.Context, req *user.RegisterRequest) (*user.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	u := &user.User{
		Username:     req.Username,
		PasswordHash: string(hash),
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}

	token, err := s.tokens.GenerateToken(u.ID.String(), u.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &user.LoginResponse{Token: token}, nil
}

func (s *userService) Login(ctx context.Context, req *user.LoginRequest) (*user.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	u, err := s.repo.GetByUsername(ctx, req.Username)
	if err != nil {
		// Unknown usernames and wrong passwords are indistinguishable to callers.
		return nil, user.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, user.ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateToken(u.ID.String(), u.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &user.LoginResponse{Token: token}, nil
}

func (s *userService) Profile(ctx context.Context, id uuid.UUID) (*user.ProfileResponse, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.toProfile(ctx, u), nil
}

func (s *userService) UploadAvatar(ctx context.Context, id uuid.UUID, file *multipart.FileHeader) (*user.ProfileResponse, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	key := fmt.Sprintf("avatars/%d-%s%s", time.Now().Unix(), uuid.New().String()[:8], ext)

	if err := s.storage.Upload(ctx, key, file); err != nil {
		return nil, fmt.Errorf("failed to store avatar: %w", err)
	}

	if err := s.repo.UpdateAvatar(ctx, id, key); err != nil {
		return nil, err
	}

	// The previous object is orphaned once the row points at the new key.
	// Removal is best effort, a leftover object is harmless.
	if old := u.Avatar; old != nil && *old != key {
		if err := s.storage.Delete(ctx, *old); err != nil {
			log.Warn().Err(err).Str("key", *old).Msg("failed to remove replaced avatar")
		}
	}

	u.Avatar = &key
	return s.toProfile(ctx, u), nil
}

func (s *userService) toProfile(ctx context.Context, u *user.User) *user.ProfileResponse {
	resp := &user.ProfileResponse{
		ID:        u.ID.String(),
		Username:  u.Username,
		Avatar:    u.Avatar,
		CreatedAt: u.CreatedAt,
	}
	if u.Avatar != nil {
		resp.AvatarURL = s.storage.Resolve(ctx, *u.Avatar)
	}
	return resp
}
