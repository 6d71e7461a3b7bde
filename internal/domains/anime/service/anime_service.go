package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"animelog-backend/internal/domains/anime"
	"animelog-backend/internal/domains/comment"
)

// animeService implements anime.Service.
type animeService struct {
	repo     anime.Repository
	comments comment.Repository
	urls     anime.URLResolver
}

// NewAnimeService creates an anime service instance.
func NewAnimeService(repo anime.Repository, comments comment.Repository, urls anime.URLResolver) anime.Service {
	return &animeService{
		repo:     repo,
		comments: comments,
		urls:     urls,
	}
}

func (s *animeService) Create(ctx context.Context, req *anime.CreateAnimeRequest) (*anime.AnimeResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	a := &anime.Anime{
		Names:         []string{req.Name},
		TypeID:        req.TypeID,
		TotalEpisodes: req.TotalEpisodes,
	}

	if req.ReleaseDate != "" {
		release, err := time.Parse("2006-01-02", req.ReleaseDate)
		if err != nil {
			return nil, err
		}
		a.ReleaseDate = &release
	}
	if req.TotalEpisodes == nil {
		episodes := 12
		a.TotalEpisodes = &episodes
	}
	if req.URL != "" {
		a.URL = &req.URL
	}
	if req.CoverImage != "" {
		a.CoverImage = &req.CoverImage
	}

	created, err := s.repo.Create(ctx, a, strings.TrimSpace(req.Reason))
	if err != nil {
		return nil, err
	}

	resp := created.ToResponse()
	resp.CoverImageURL = s.resolveCover(ctx, created.CoverImage)
	return &resp, nil
}

func (s *animeService) GetByID(ctx context.Context, id uuid.UUID) (*anime.AnimeDetailResponse, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	history, err := s.repo.HistoryByAnime(ctx, id)
	if err != nil {
		return nil, err
	}

	comments, err := s.comments.ListByAnime(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := a.ToResponse()
	resp.CoverImageURL = s.resolveCover(ctx, a.CoverImage)

	return &anime.AnimeDetailResponse{
		Anime:    resp,
		History:  history,
		Comments: comments,
	}, nil
}

func (s *animeService) List(ctx context.Context, filter anime.ListFilter) ([]anime.AnimeResponse, error) {
	items, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]anime.AnimeResponse, len(items))
	for i, item := range items {
		resp := item.ToResponse()
		resp.CoverImageURL = s.resolveCover(ctx, item.CoverImage)
		responses[i] = resp
	}
	return responses, nil
}

func (s *animeService) UpdateInfo(ctx context.Context, id uuid.UUID, req *anime.UpdateAnimeRequest) (*anime.AnimeResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.repo.UpdateInfo(ctx, id, anime.InfoUpdate{
		Names:      req.Names,
		TypeID:     req.TypeID,
		URL:        req.URL,
		CoverImage: req.CoverImage,
	})
	if err != nil {
		return nil, err
	}

	resp := updated.ToResponse()
	resp.CoverImageURL = s.resolveCover(ctx, updated.CoverImage)
	return &resp, nil
}

// ApplyTransition runs the watch-state machine. The engine trusts the
// caller's intent: any action is accepted from any current status, and
// consistency comes from the ledger invariant, not a status graph.
func (s *animeService) ApplyTransition(ctx context.Context, id uuid.UUID, req *anime.TransitionRequest) (anime.Status, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}

	return s.repo.Transition(ctx, id, func(tx anime.TransitionTx) (anime.Status, error) {
		switch req.Action {
		case anime.ActionToWatching, anime.ActionReWatch:
			if err := tx.SetStatus(anime.StatusWatching); err != nil {
				return "", err
			}
			// Idempotent with respect to an already-open session: a second
			// call must not open a second record.
			open, err := tx.FindOpenSession()
			if err != nil {
				return "", err
			}
			if open == nil {
				count := 1
				if req.Action == anime.ActionReWatch {
					maxEver, err := tx.MaxWatchCount()
					if err != nil {
						return "", err
					}
					count = anime.NextWatchCount(maxEver)
				}
				if err := tx.OpenSession(count); err != nil {
					return "", err
				}
			}
			return anime.StatusWatching, nil

		case anime.ActionToDropped:
			open, err := tx.FindOpenSession()
			if err != nil {
				return "", err
			}
			if open == nil {
				return "", anime.ErrNoActiveSession
			}
			if err := tx.DeleteSession(open.ID); err != nil {
				return "", err
			}
			next := anime.DropOutcome(open.WatchCount)
			if err := tx.SetStatus(next); err != nil {
				return "", err
			}
			return next, nil

		case anime.ActionToWait:
			if err := tx.SetStatus(anime.StatusWait); err != nil {
				return "", err
			}
			return anime.StatusWait, nil

		case anime.ActionToFinished:
			if err := tx.SetStatus(anime.StatusFinished); err != nil {
				return "", err
			}
			// Closing with no open session is a no-op on the ledger.
			if err := tx.CloseOpenSession(req.Payload.Rating); err != nil {
				return "", err
			}
			if review := strings.TrimSpace(req.Payload.Review); review != "" {
				if err := tx.AddComment(comment.TypeFinalReview, review); err != nil {
					return "", err
				}
			}
			return anime.StatusFinished, nil

		default:
			return "", anime.ErrInvalidAction
		}
	})
}

func (s *animeService) UpdateHistory(ctx context.Context, id uuid.UUID, req *anime.UpdateHistoryRequest) (*anime.HistoryRecord, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return s.repo.UpdateHistoryDates(ctx, id, req.StartDate, req.EndDate)
}

// resolveCover degrades to nil when the key is empty or signing fails.
func (s *animeService) resolveCover(ctx context.Context, key *string) *string {
	if key == nil || *key == "" {
		return nil
	}
	return s.urls.Resolve(ctx, *key)
}
