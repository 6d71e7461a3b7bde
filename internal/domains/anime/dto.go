package anime

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"animelog-backend/internal/domains/comment"
)

// CreateAnimeRequest - POST /v1/anime
// A non-empty reason seeds a REASON_TO_WATCH comment in the same
// transaction as the insert.
type CreateAnimeRequest struct {
	Name          string    `json:"name" binding:"required"`
	TypeID        uuid.UUID `json:"type_id" binding:"required"`
	ReleaseDate   string    `json:"release_date,omitempty"`
	TotalEpisodes *int      `json:"total_episodes,omitempty"`
	URL           string    `json:"url,omitempty"`
	CoverImage    string    `json:"cover_image,omitempty"`
	Reason        string    `json:"reason,omitempty"`
}

func (r CreateAnimeRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, 255),
		),
		validation.Field(&r.TypeID, validation.Required.Error("type_id is required")),
		validation.Field(&r.ReleaseDate,
			validation.When(r.ReleaseDate != "", validation.Date("2006-01-02").Error("release_date must be YYYY-MM-DD")),
		),
		validation.Field(&r.TotalEpisodes,
			validation.When(r.TotalEpisodes != nil, validation.Min(1).Error("total_episodes must be positive")),
		),
		validation.Field(&r.URL,
			validation.When(r.URL != "", is.URL.Error("url must be a valid URL")),
		),
	)
}

// UpdateAnimeRequest - PUT /v1/anime/:id
// All fields optional; nil means "leave untouched". Supplying none is a
// validation error.
type UpdateAnimeRequest struct {
	Names      []string   `json:"names,omitempty"`
	TypeID     *uuid.UUID `json:"type_id,omitempty"`
	URL        *string    `json:"url,omitempty"`
	CoverImage *string    `json:"cover_image,omitempty"`
}

func (r UpdateAnimeRequest) Validate() error {
	if r.Names == nil && r.TypeID == nil && r.URL == nil && r.CoverImage == nil {
		return ErrNoFieldsToUpdate
	}
	return validation.ValidateStruct(&r,
		validation.Field(&r.Names,
			validation.When(r.Names != nil,
				validation.Required.Error("names must not be empty"),
				validation.Each(validation.Required.Error("names must not contain empty entries")),
			),
		),
	)
}

// TransitionRequest - POST /v1/anime/:id/status
// The action is a tagged variant; the payload carries only the fields the
// action reads. Unknown actions are rejected here rather than silently
// ignored.
type TransitionRequest struct {
	Action  StatusAction      `json:"action" binding:"required"`
	Payload TransitionPayload `json:"payload"`
}

func (r TransitionRequest) Validate() error {
	if !r.Action.Valid() {
		return ErrInvalidAction
	}
	return nil
}

// UpdateHistoryRequest - PUT /v1/history/:id
// Direct date edit of one session. Bypasses the transition engine and does
// not re-check the single-open-session invariant; the caller owns that.
type UpdateHistoryRequest struct {
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`
}

func (r UpdateHistoryRequest) Validate() error {
	if r.StartDate == nil && r.EndDate == nil {
		return ErrNoDatesSupplied
	}
	return nil
}

// ListFilter - query parameters for GET /v1/anime. Filters are optional
// and combine with AND; zero values mean "no filter".
type ListFilter struct {
	Status        string `form:"status"`
	SearchTerm    string `form:"search_term"`
	ReleaseSeason string `form:"release_season"`
	SortBy        string `form:"sort_by"`
	SortOrder     string `form:"sort_order"`
}

// InfoUpdate is the repository-level shape of a partial field edit.
type InfoUpdate struct {
	Names      []string
	TypeID     *uuid.UUID
	URL        *string
	CoverImage *string
}

// Empty reports whether the update touches nothing.
func (u InfoUpdate) Empty() bool {
	return u.Names == nil && u.TypeID == nil && u.URL == nil && u.CoverImage == nil
}

// ListedAnime is one bulk-listing row: the item joined with its reduced
// history summary.
type ListedAnime struct {
	Anime
	HistorySummary
}

// AnimeResponse is the list/detail representation, with the cover key
// resolved to a time-limited URL (null when absent or signing fails).
type AnimeResponse struct {
	ID                  uuid.UUID        `json:"id"`
	Names               []string         `json:"names"`
	ReleaseDate         *time.Time       `json:"release_date"`
	TotalEpisodes       *int             `json:"total_episodes"`
	TypeID              uuid.UUID        `json:"type_id"`
	Status              Status           `json:"status"`
	CoverImage          *string          `json:"cover_image"`
	CoverImageURL       *string          `json:"cover_image_url"`
	URL                 *string          `json:"url"`
	MostRecentWatchDate *time.Time       `json:"most_recent_watch_date,omitempty"`
	Rating              *decimal.Decimal `json:"rating,omitempty"`
	WatchCount          *int             `json:"watch_count,omitempty"`
}

// AnimeDetailResponse - GET /v1/anime/:id. History rows are returned raw
// (unreduced) alongside the item; comments newest first.
type AnimeDetailResponse struct {
	Anime    AnimeResponse     `json:"anime"`
	History  []HistoryRecord   `json:"history"`
	Comments []comment.Comment `json:"comments"`
}

// TransitionResponse - result of a status transition.
type TransitionResponse struct {
	NewStatus Status `json:"new_status"`
}

// ToResponse converts an Anime entity to its API shape. The cover URL is
// attached separately by the service.
func (a Anime) ToResponse() AnimeResponse {
	return AnimeResponse{
		ID:            a.ID,
		Names:         a.Names,
		ReleaseDate:   a.ReleaseDate,
		TotalEpisodes: a.TotalEpisodes,
		TypeID:        a.TypeID,
		Status:        a.Status,
		CoverImage:    a.CoverImage,
		URL:           a.URL,
	}
}

// ToResponse converts a listing row, carrying the aggregated fields along.
func (l ListedAnime) ToResponse() AnimeResponse {
	resp := l.Anime.ToResponse()
	resp.MostRecentWatchDate = l.MostRecentWatchDate
	resp.Rating = l.LatestRating
	resp.WatchCount = l.LatestWatchCount
	return resp
}
