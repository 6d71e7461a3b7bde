package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"animelog-backend/internal/domains/anime"
	"animelog-backend/internal/domains/comment"
	"animelog-backend/pkg/database"
)

// postgresRepository implements anime.Repository.
type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates an anime repository instance.
func NewPostgresRepository(pool *pgxpool.Pool) anime.Repository {
	return &postgresRepository{pool: pool}
}

const animeColumns = "id, names, release_date, total_episodes, type_id, status, cover_image, url, created_at, updated_at"

func scanAnime(row pgx.Row) (*anime.Anime, error) {
	var a anime.Anime
	err := row.Scan(
		&a.ID,
		&a.Names,
		&a.ReleaseDate,
		&a.TotalEpisodes,
		&a.TypeID,
		&a.Status,
		&a.CoverImage,
		&a.URL,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Create inserts the item in WAIT and, when a reason is given, the
// REASON_TO_WATCH comment, in one transaction.
func (r *postgresRepository) Create(ctx context.Context, a *anime.Anime, reason string) (*anime.Anime, error) {
	return database.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (*anime.Anime, error) {
		query := `
            INSERT INTO anime (names, release_date, total_episodes, type_id, status, cover_image, url)
            VALUES ($1, $2, $3, $4, $5, $6, $7)
            RETURNING ` + animeColumns

		created, err := scanAnime(tx.QueryRow(ctx, query,
			a.Names,
			a.ReleaseDate,
			a.TotalEpisodes,
			a.TypeID,
			anime.StatusWait,
			a.CoverImage,
			a.URL,
		))
		if err != nil {
			return nil, fmt.Errorf("failed to create anime: %w", err)
		}

		if reason != "" {
			_, err = tx.Exec(ctx,
				`INSERT INTO comment (anime_id, type, content) VALUES ($1, $2, $3)`,
				created.ID, comment.TypeReasonToWatch, reason,
			)
			if err != nil {
				return nil, fmt.Errorf("failed to create reason comment: %w", err)
			}
		}

		return created, nil
	})
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*anime.Anime, error) {
	query := `SELECT ` + animeColumns + ` FROM anime WHERE id = $1`

	a, err := scanAnime(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, anime.ErrAnimeNotFound
		}
		return nil, fmt.Errorf("failed to get anime by id: %w", err)
	}
	return a, nil
}

// sortColumns maps the sort contract to the columns of the aggregated
// listing query. Unrecognized keys fall back to release_date.
var sortColumns = map[string]string{
	"release_date": "a.release_date",
	"recent_watch": "ah.most_recent_watch_date",
	"watch_count":  "ah.latest_watch_count",
	"rating":       "ah.latest_rating",
}

// List joins every item with its bulk-reduced history. The CTE mirrors
// anime.ReduceHistory: max start date, rating of the leading record
// (highest watch count, latest start date breaking ties), max watch count.
func (r *postgresRepository) List(ctx context.Context, filter anime.ListFilter) ([]anime.ListedAnime, error) {
	var query strings.Builder
	query.WriteString(`
        WITH aggregated_history AS (
            SELECT
                anime_id,
                MAX(start_date) AS most_recent_watch_date,
                (array_agg(rating ORDER BY watch_count DESC, start_date DESC))[1] AS latest_rating,
                MAX(watch_count) AS latest_watch_count
            FROM history
            GROUP BY anime_id
        )
        SELECT
            a.id, a.names, a.release_date, a.total_episodes, a.type_id, a.status,
            a.cover_image, a.url, a.created_at, a.updated_at,
            ah.most_recent_watch_date, ah.latest_rating, ah.latest_watch_count
        FROM anime a
        LEFT JOIN aggregated_history ah ON a.id = ah.anime_id
    `)

	args := []interface{}{}
	argPos := 1
	whereClauses := []string{}

	if filter.Status != "" && filter.Status != "ALL" {
		whereClauses = append(whereClauses, fmt.Sprintf("a.status = $%d", argPos))
		args = append(args, filter.Status)
		argPos++
	}

	if filter.SearchTerm != "" {
		whereClauses = append(whereClauses,
			fmt.Sprintf("EXISTS (SELECT 1 FROM unnest(a.names) AS name WHERE name ILIKE $%d)", argPos))
		args = append(args, "%"+filter.SearchTerm+"%")
		argPos++
	}

	if filter.ReleaseSeason != "" {
		// Malformed season tokens apply no filter rather than erroring.
		if start, end, ok := anime.SeasonRange(filter.ReleaseSeason); ok {
			whereClauses = append(whereClauses,
				fmt.Sprintf("a.release_date BETWEEN $%d AND $%d", argPos, argPos+1))
			args = append(args, start, end)
			argPos += 2
		}
	}

	if len(whereClauses) > 0 {
		query.WriteString(" WHERE " + strings.Join(whereClauses, " AND "))
	}

	sortColumn, ok := sortColumns[filter.SortBy]
	if !ok {
		sortColumn = "a.release_date"
	}
	sortOrder := "DESC"
	if strings.EqualFold(filter.SortOrder, "ASC") {
		sortOrder = "ASC"
	}
	query.WriteString(fmt.Sprintf(" ORDER BY %s %s NULLS LAST", sortColumn, sortOrder))

	rows, err := r.pool.Query(ctx, query.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list anime: %w", err)
	}
	defer rows.Close()

	items := []anime.ListedAnime{}
	for rows.Next() {
		var item anime.ListedAnime
		err := rows.Scan(
			&item.ID,
			&item.Names,
			&item.ReleaseDate,
			&item.TotalEpisodes,
			&item.TypeID,
			&item.Status,
			&item.CoverImage,
			&item.URL,
			&item.CreatedAt,
			&item.UpdatedAt,
			&item.MostRecentWatchDate,
			&item.LatestRating,
			&item.LatestWatchCount,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan anime row: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read anime rows: %w", err)
	}

	return items, nil
}

func (r *postgresRepository) UpdateInfo(ctx context.Context, id uuid.UUID, upd anime.InfoUpdate) (*anime.Anime, error) {
	if upd.Empty() {
		return nil, anime.ErrNoFieldsToUpdate
	}

	fields := []string{}
	args := []interface{}{}
	argPos := 1

	if upd.Names != nil {
		fields = append(fields, fmt.Sprintf("names = $%d", argPos))
		args = append(args, upd.Names)
		argPos++
	}
	if upd.TypeID != nil {
		fields = append(fields, fmt.Sprintf("type_id = $%d", argPos))
		args = append(args, *upd.TypeID)
		argPos++
	}
	if upd.URL != nil {
		fields = append(fields, fmt.Sprintf("url = $%d", argPos))
		args = append(args, *upd.URL)
		argPos++
	}
	if upd.CoverImage != nil {
		fields = append(fields, fmt.Sprintf("cover_image = $%d", argPos))
		args = append(args, *upd.CoverImage)
		argPos++
	}

	fields = append(fields, "updated_at = NOW()")
	args = append(args, id)

	query := fmt.Sprintf(
		"UPDATE anime SET %s WHERE id = $%d RETURNING %s",
		strings.Join(fields, ", "), argPos, animeColumns,
	)

	updated, err := scanAnime(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, anime.ErrAnimeNotFound
		}
		return nil, fmt.Errorf("failed to update anime: %w", err)
	}
	return updated, nil
}

// Transition locks the item row for the duration of the unit of work, so
// concurrent transitions on the same item serialize and the check-then-act
// on the open session is safe. The partial unique index on open history
// rows backstops the invariant regardless.
func (r *postgresRepository) Transition(ctx context.Context, animeID uuid.UUID, fn anime.TransitionFunc) (anime.Status, error) {
	return database.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (anime.Status, error) {
		var locked uuid.UUID
		err := tx.QueryRow(ctx, `SELECT id FROM anime WHERE id = $1 FOR UPDATE`, animeID).Scan(&locked)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return "", anime.ErrAnimeNotFound
			}
			return "", fmt.Errorf("failed to lock anime row: %w", err)
		}

		return fn(&transitionTx{ctx: ctx, tx: tx, animeID: animeID})
	})
}

// transitionTx binds a pgx transaction to one item for the transition
// engine.
type transitionTx struct {
	ctx     context.Context
	tx      pgx.Tx
	animeID uuid.UUID
}

func (t *transitionTx) FindOpenSession() (*anime.HistoryRecord, error) {
	query := `
        SELECT id, anime_id, start_date, end_date, watch_count, rating
        FROM history
        WHERE anime_id = $1 AND end_date IS NULL
    `

	var h anime.HistoryRecord
	err := t.tx.QueryRow(t.ctx, query, t.animeID).Scan(
		&h.ID, &h.AnimeID, &h.StartDate, &h.EndDate, &h.WatchCount, &h.Rating,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find open session: %w", err)
	}
	return &h, nil
}

func (t *transitionTx) OpenSession(watchCount int) error {
	_, err := t.tx.Exec(t.ctx,
		`INSERT INTO history (anime_id, start_date, watch_count) VALUES ($1, NOW(), $2)`,
		t.animeID, watchCount,
	)
	if err != nil {
		return fmt.Errorf("failed to open session: %w", err)
	}
	return nil
}

func (t *transitionTx) CloseOpenSession(rating *decimal.Decimal) error {
	_, err := t.tx.Exec(t.ctx,
		`UPDATE history SET end_date = NOW(), rating = $2 WHERE anime_id = $1 AND end_date IS NULL`,
		t.animeID, rating,
	)
	if err != nil {
		return fmt.Errorf("failed to close session: %w", err)
	}
	return nil
}

func (t *transitionTx) DeleteSession(id uuid.UUID) error {
	_, err := t.tx.Exec(t.ctx, `DELETE FROM history WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

func (t *transitionTx) MaxWatchCount() (int, error) {
	var maxCount int
	err := t.tx.QueryRow(t.ctx,
		`SELECT COALESCE(MAX(watch_count), 0) FROM history WHERE anime_id = $1`,
		t.animeID,
	).Scan(&maxCount)
	if err != nil {
		return 0, fmt.Errorf("failed to get max watch count: %w", err)
	}
	return maxCount, nil
}

func (t *transitionTx) SetStatus(s anime.Status) error {
	_, err := t.tx.Exec(t.ctx,
		`UPDATE anime SET status = $1, updated_at = NOW() WHERE id = $2`,
		s, t.animeID,
	)
	if err != nil {
		return fmt.Errorf("failed to set status: %w", err)
	}
	return nil
}

func (t *transitionTx) AddComment(commentType, content string) error {
	_, err := t.tx.Exec(t.ctx,
		`INSERT INTO comment (anime_id, type, content) VALUES ($1, $2, $3)`,
		t.animeID, commentType, content,
	)
	if err != nil {
		return fmt.Errorf("failed to add comment: %w", err)
	}
	return nil
}

func (r *postgresRepository) HistoryByAnime(ctx context.Context, animeID uuid.UUID) ([]anime.HistoryRecord, error) {
	query := `
        SELECT id, anime_id, start_date, end_date, watch_count, rating
        FROM history
        WHERE anime_id = $1
        ORDER BY start_date DESC
    `

	rows, err := r.pool.Query(ctx, query, animeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}
	defer rows.Close()

	records := []anime.HistoryRecord{}
	for rows.Next() {
		var h anime.HistoryRecord
		if err := rows.Scan(&h.ID, &h.AnimeID, &h.StartDate, &h.EndDate, &h.WatchCount, &h.Rating); err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		records = append(records, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read history rows: %w", err)
	}

	return records, nil
}

func (r *postgresRepository) UpdateHistoryDates(ctx context.Context, id uuid.UUID, start, end *time.Time) (*anime.HistoryRecord, error) {
	fields := []string{}
	args := []interface{}{}
	argPos := 1

	if start != nil {
		fields = append(fields, fmt.Sprintf("start_date = $%d", argPos))
		args = append(args, *start)
		argPos++
	}
	if end != nil {
		fields = append(fields, fmt.Sprintf("end_date = $%d", argPos))
		args = append(args, *end)
		argPos++
	}
	if len(fields) == 0 {
		return nil, anime.ErrNoDatesSupplied
	}

	args = append(args, id)
	query := fmt.Sprintf(
		"UPDATE history SET %s WHERE id = $%d RETURNING id, anime_id, start_date, end_date, watch_count, rating",
		strings.Join(fields, ", "), argPos,
	)

	var h anime.HistoryRecord
	err := r.pool.QueryRow(ctx, query, args...).Scan(
		&h.ID, &h.AnimeID, &h.StartDate, &h.EndDate, &h.WatchCount, &h.Rating,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, anime.ErrHistoryNotFound
		}
		return nil, fmt.Errorf("failed to update history: %w", err)
	}
	return &h, nil
}
