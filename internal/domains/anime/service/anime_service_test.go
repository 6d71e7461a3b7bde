package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"animelog-backend/internal/domains/anime"
	"animelog-backend/internal/domains/comment"
)

// fakeStore is the in-memory state of a single anime for transition tests.
type fakeStore struct {
	status   anime.Status
	history  []anime.HistoryRecord
	comments []comment.Comment
}

func (s *fakeStore) clone() *fakeStore {
	c := &fakeStore{status: s.status}
	c.history = append(c.history, s.history...)
	c.comments = append(c.comments, s.comments...)
	return c
}

func (s *fakeStore) openSession() *anime.HistoryRecord {
	for i := range s.history {
		if s.history[i].EndDate == nil {
			rec := s.history[i]
			return &rec
		}
	}
	return nil
}

// fakeTx implements anime.TransitionTx against a fakeStore.
type fakeTx struct {
	animeID uuid.UUID
	store   *fakeStore
}

func (t *fakeTx) FindOpenSession() (*anime.HistoryRecord, error) {
	return t.store.openSession(), nil
}

func (t *fakeTx) OpenSession(watchCount int) error {
	t.store.history = append(t.store.history, anime.HistoryRecord{
		ID:         uuid.New(),
		AnimeID:    t.animeID,
		StartDate:  time.Now(),
		WatchCount: watchCount,
	})
	return nil
}

func (t *fakeTx) CloseOpenSession(rating *decimal.Decimal) error {
	for i := range t.store.history {
		if t.store.history[i].EndDate == nil {
			now := time.Now()
			t.store.history[i].EndDate = &now
			t.store.history[i].Rating = rating
			return nil
		}
	}
	return nil
}

func (t *fakeTx) DeleteSession(id uuid.UUID) error {
	for i := range t.store.history {
		if t.store.history[i].ID == id {
			t.store.history = append(t.store.history[:i], t.store.history[i+1:]...)
			return nil
		}
	}
	return anime.ErrHistoryNotFound
}

func (t *fakeTx) MaxWatchCount() (int, error) {
	maxCount := 0
	for _, rec := range t.store.history {
		if rec.WatchCount > maxCount {
			maxCount = rec.WatchCount
		}
	}
	return maxCount, nil
}

func (t *fakeTx) SetStatus(s anime.Status) error {
	t.store.status = s
	return nil
}

func (t *fakeTx) AddComment(commentType, content string) error {
	t.store.comments = append(t.store.comments, comment.Comment{
		ID:        uuid.New(),
		AnimeID:   t.animeID,
		Type:      commentType,
		Content:   content,
		CreatedAt: time.Now(),
	})
	return nil
}

// fakeRepo implements anime.Repository over a map of fakeStores. A
// transition runs against a copy and commits it only on success, matching
// the transactional semantics of the real repository.
type fakeRepo struct {
	stores map[uuid.UUID]*fakeStore
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{stores: make(map[uuid.UUID]*fakeStore)}
}

func (r *fakeRepo) Transition(ctx context.Context, animeID uuid.UUID, fn anime.TransitionFunc) (anime.Status, error) {
	store, ok := r.stores[animeID]
	if !ok {
		return "", anime.ErrAnimeNotFound
	}

	working := store.clone()
	status, err := fn(&fakeTx{animeID: animeID, store: working})
	if err != nil {
		return "", err
	}

	r.stores[animeID] = working
	return status, nil
}

func (r *fakeRepo) Create(ctx context.Context, a *anime.Anime, reason string) (*anime.Anime, error) {
	created := *a
	created.ID = uuid.New()
	created.Status = anime.StatusWait
	r.stores[created.ID] = &fakeStore{status: anime.StatusWait}
	return &created, nil
}

func (r *fakeRepo) GetByID(ctx context.Context, id uuid.UUID) (*anime.Anime, error) {
	store, ok := r.stores[id]
	if !ok {
		return nil, anime.ErrAnimeNotFound
	}
	return &anime.Anime{ID: id, Status: store.status}, nil
}

func (r *fakeRepo) List(ctx context.Context, filter anime.ListFilter) ([]anime.ListedAnime, error) {
	return nil, nil
}

func (r *fakeRepo) UpdateInfo(ctx context.Context, id uuid.UUID, upd anime.InfoUpdate) (*anime.Anime, error) {
	return r.GetByID(ctx, id)
}

func (r *fakeRepo) HistoryByAnime(ctx context.Context, animeID uuid.UUID) ([]anime.HistoryRecord, error) {
	store, ok := r.stores[animeID]
	if !ok {
		return nil, nil
	}
	return store.history, nil
}

func (r *fakeRepo) UpdateHistoryDates(ctx context.Context, id uuid.UUID, start, end *time.Time) (*anime.HistoryRecord, error) {
	return nil, anime.ErrHistoryNotFound
}

type fakeCommentRepo struct{}

func (fakeCommentRepo) Create(ctx context.Context, c *comment.Comment) (*comment.Comment, error) {
	return c, nil
}

func (fakeCommentRepo) UpdateContent(ctx context.Context, id uuid.UUID, content string) (*comment.Comment, error) {
	return nil, comment.ErrCommentNotFound
}

func (fakeCommentRepo) ListByAnime(ctx context.Context, animeID uuid.UUID) ([]comment.Comment, error) {
	return nil, nil
}

type nullResolver struct{}

func (nullResolver) Resolve(ctx context.Context, key string) *string { return nil }

func newTestService(repo *fakeRepo) anime.Service {
	return NewAnimeService(repo, fakeCommentRepo{}, nullResolver{})
}

func seedAnime(repo *fakeRepo, status anime.Status, history ...anime.HistoryRecord) uuid.UUID {
	id := uuid.New()
	repo.stores[id] = &fakeStore{status: status, history: history}
	return id
}

func closedSession(count int, start time.Time) anime.HistoryRecord {
	end := start.AddDate(0, 0, 7)
	return anime.HistoryRecord{
		ID:         uuid.New(),
		StartDate:  start,
		EndDate:    &end,
		WatchCount: count,
	}
}

func openSession(count int, start time.Time) anime.HistoryRecord {
	return anime.HistoryRecord{
		ID:         uuid.New(),
		StartDate:  start,
		WatchCount: count,
	}
}

func TestApplyTransitionToWatchingOpensFirstSession(t *testing.T) {
	repo := newFakeRepo()
	id := seedAnime(repo, anime.StatusWait)
	svc := newTestService(repo)

	status, err := svc.ApplyTransition(context.Background(), id, &anime.TransitionRequest{Action: anime.ActionToWatching})

	require.NoError(t, err)
	assert.Equal(t, anime.StatusWatching, status)

	store := repo.stores[id]
	require.Len(t, store.history, 1)
	assert.Equal(t, 1, store.history[0].WatchCount)
	assert.Nil(t, store.history[0].EndDate)
}

func TestApplyTransitionToWatchingIsIdempotent(t *testing.T) {
	repo := newFakeRepo()
	id := seedAnime(repo, anime.StatusWait)
	svc := newTestService(repo)

	for i := 0; i < 2; i++ {
		_, err := svc.ApplyTransition(context.Background(), id, &anime.TransitionRequest{Action: anime.ActionToWatching})
		require.NoError(t, err)
	}

	store := repo.stores[id]
	require.Len(t, store.history, 1)
	assert.Equal(t, anime.StatusWatching, store.status)
}

func TestApplyTransitionReWatchContinuesSequence(t *testing.T) {
	repo := newFakeRepo()
	id := seedAnime(repo, anime.StatusFinished,
		closedSession(1, time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)),
		closedSession(2, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)),
	)
	svc := newTestService(repo)

	status, err := svc.ApplyTransition(context.Background(), id, &anime.TransitionRequest{Action: anime.ActionReWatch})

	require.NoError(t, err)
	assert.Equal(t, anime.StatusWatching, status)

	open := repo.stores[id].openSession()
	require.NotNil(t, open)
	assert.Equal(t, 3, open.WatchCount)
}

func TestApplyTransitionReWatchWithoutHistoryStartsAtOne(t *testing.T) {
	repo := newFakeRepo()
	id := seedAnime(repo, anime.StatusWait)
	svc := newTestService(repo)

	_, err := svc.ApplyTransition(context.Background(), id, &anime.TransitionRequest{Action: anime.ActionReWatch})

	require.NoError(t, err)
	open := repo.stores[id].openSession()
	require.NotNil(t, open)
	assert.Equal(t, 1, open.WatchCount)
}

func TestApplyTransitionDropFirstWatch(t *testing.T) {
	repo := newFakeRepo()
	id := seedAnime(repo, anime.StatusWatching,
		openSession(1, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)),
	)
	svc := newTestService(repo)

	status, err := svc.ApplyTransition(context.Background(), id, &anime.TransitionRequest{Action: anime.ActionToDropped})

	require.NoError(t, err)
	assert.Equal(t, anime.StatusDropped, status)
	assert.Empty(t, repo.stores[id].history)
}

func TestApplyTransitionDropRewatchKeepsFinished(t *testing.T) {
	repo := newFakeRepo()
	id := seedAnime(repo, anime.StatusWatching,
		closedSession(1, time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)),
		openSession(2, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)),
	)
	svc := newTestService(repo)

	status, err := svc.ApplyTransition(context.Background(), id, &anime.TransitionRequest{Action: anime.ActionToDropped})

	require.NoError(t, err)
	assert.Equal(t, anime.StatusFinished, status)
	require.Len(t, repo.stores[id].history, 1)
	assert.Equal(t, 1, repo.stores[id].history[0].WatchCount)
}

func TestApplyTransitionDropWithoutOpenSessionConflicts(t *testing.T) {
	repo := newFakeRepo()
	id := seedAnime(repo, anime.StatusFinished,
		closedSession(1, time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)),
	)
	svc := newTestService(repo)

	_, err := svc.ApplyTransition(context.Background(), id, &anime.TransitionRequest{Action: anime.ActionToDropped})

	assert.ErrorIs(t, err, anime.ErrNoActiveSession)
	// Nothing committed: the status and ledger are untouched.
	assert.Equal(t, anime.StatusFinished, repo.stores[id].status)
	assert.Len(t, repo.stores[id].history, 1)
}

func TestApplyTransitionToFinishedClosesSessionWithRating(t *testing.T) {
	repo := newFakeRepo()
	id := seedAnime(repo, anime.StatusWatching,
		openSession(1, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)),
	)
	svc := newTestService(repo)

	rating := decimal.RequireFromString("8.5")
	status, err := svc.ApplyTransition(context.Background(), id, &anime.TransitionRequest{
		Action:  anime.ActionToFinished,
		Payload: anime.TransitionPayload{Rating: &rating, Review: "  great ending  "},
	})

	require.NoError(t, err)
	assert.Equal(t, anime.StatusFinished, status)

	store := repo.stores[id]
	require.Len(t, store.history, 1)
	require.NotNil(t, store.history[0].EndDate)
	require.NotNil(t, store.history[0].Rating)
	assert.True(t, store.history[0].Rating.Equal(rating))

	require.Len(t, store.comments, 1)
	assert.Equal(t, comment.TypeFinalReview, store.comments[0].Type)
	assert.Equal(t, "great ending", store.comments[0].Content)
}

func TestApplyTransitionToFinishedWithoutOpenSessionSucceeds(t *testing.T) {
	repo := newFakeRepo()
	id := seedAnime(repo, anime.StatusWait)
	svc := newTestService(repo)

	status, err := svc.ApplyTransition(context.Background(), id, &anime.TransitionRequest{Action: anime.ActionToFinished})

	require.NoError(t, err)
	assert.Equal(t, anime.StatusFinished, status)
	assert.Empty(t, repo.stores[id].history)
	assert.Empty(t, repo.stores[id].comments)
}

func TestApplyTransitionToFinishedBlankReviewAddsNoComment(t *testing.T) {
	repo := newFakeRepo()
	id := seedAnime(repo, anime.StatusWatching,
		openSession(1, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)),
	)
	svc := newTestService(repo)

	_, err := svc.ApplyTransition(context.Background(), id, &anime.TransitionRequest{
		Action:  anime.ActionToFinished,
		Payload: anime.TransitionPayload{Review: "   "},
	})

	require.NoError(t, err)
	assert.Empty(t, repo.stores[id].comments)
}

func TestApplyTransitionToWait(t *testing.T) {
	repo := newFakeRepo()
	id := seedAnime(repo, anime.StatusDropped)
	svc := newTestService(repo)

	status, err := svc.ApplyTransition(context.Background(), id, &anime.TransitionRequest{Action: anime.ActionToWait})

	require.NoError(t, err)
	assert.Equal(t, anime.StatusWait, status)
}

func TestApplyTransitionRejectsUnknownAction(t *testing.T) {
	repo := newFakeRepo()
	id := seedAnime(repo, anime.StatusWait)
	svc := newTestService(repo)

	_, err := svc.ApplyTransition(context.Background(), id, &anime.TransitionRequest{Action: "ARCHIVE"})

	assert.ErrorIs(t, err, anime.ErrInvalidAction)
}

func TestApplyTransitionUnknownAnime(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	_, err := svc.ApplyTransition(context.Background(), uuid.New(), &anime.TransitionRequest{Action: anime.ActionToWatching})

	assert.ErrorIs(t, err, anime.ErrAnimeNotFound)
}

func TestCreateDefaultsTotalEpisodes(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	resp, err := svc.Create(context.Background(), &anime.CreateAnimeRequest{
		Name:   "Frieren",
		TypeID: uuid.New(),
	})

	require.NoError(t, err)
	require.NotNil(t, resp.TotalEpisodes)
	assert.Equal(t, 12, *resp.TotalEpisodes)
}

func TestCreateRejectsInvalidRequest(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	_, err := svc.Create(context.Background(), &anime.CreateAnimeRequest{TypeID: uuid.New()})

	assert.Error(t, err)
}

func TestUpdateHistoryRequiresAtLeastOneDate(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	_, err := svc.UpdateHistory(context.Background(), uuid.New(), &anime.UpdateHistoryRequest{})

	assert.ErrorIs(t, err, anime.ErrNoDatesSupplied)
}
