package comment

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// CreateCommentRequest - POST /v1/comments
type CreateCommentRequest struct {
	AnimeID       uuid.UUID `json:"anime_id" binding:"required"`
	Type          string    `json:"type" binding:"required"`
	Content       string    `json:"content" binding:"required"`
	EpisodeNumber *int      `json:"episode_number,omitempty"`
}

func (r CreateCommentRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.AnimeID, validation.Required.Error("anime_id is required")),
		validation.Field(&r.Type, validation.Required.Error("type is required")),
		validation.Field(&r.Content, validation.Required.Error("content is required")),
		validation.Field(&r.EpisodeNumber,
			validation.When(r.EpisodeNumber != nil, validation.Min(1).Error("episode_number must be positive")),
		),
	)
}

// UpdateCommentRequest - PUT /v1/comments/:id
type UpdateCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

func (r UpdateCommentRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Content, validation.Required.Error("comment content cannot be empty")),
	)
}
