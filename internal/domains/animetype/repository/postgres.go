package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"animelog-backend/internal/domains/animetype"
	"animelog-backend/pkg/cache"
)

// postgresRepository implements animetype.Repository. The type list is
// read-mostly reference data, so it is cached and invalidated on every
// write. Cache failures are non-critical.
type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

// NewPostgresRepository creates a type repository instance.
func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) animetype.Repository {
	return &postgresRepository{
		pool:  pool,
		cache: cache,
	}
}

const (
	typeListCacheKey = "anime_types:list"
	typeListCacheTTL = 15 * time.Minute
)

func (r *postgresRepository) List(ctx context.Context) ([]animetype.AnimeType, error) {
	// Try cache first
	var types []animetype.AnimeType
	if found, err := r.cache.Get(ctx, typeListCacheKey, &types); err == nil && found {
		return types, nil
	}

	rows, err := r.pool.Query(ctx,
		`SELECT id, label, created_at FROM anime_types ORDER BY created_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list types: %w", err)
	}
	defer rows.Close()

	types = []animetype.AnimeType{}
	for rows.Next() {
		var t animetype.AnimeType
		if err := rows.Scan(&t.ID, &t.Label, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan type: %w", err)
		}
		types = append(types, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read types: %w", err)
	}

	_ = r.cache.Set(ctx, typeListCacheKey, types, typeListCacheTTL)

	return types, nil
}

func (r *postgresRepository) Create(ctx context.Context, label string) (*animetype.AnimeType, error) {
	var t animetype.AnimeType
	err := r.pool.QueryRow(ctx,
		`INSERT INTO anime_types (label) VALUES ($1) RETURNING id, label, created_at`,
		label,
	).Scan(&t.ID, &t.Label, &t.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create type: %w", err)
	}

	_ = r.cache.Delete(ctx, typeListCacheKey)

	return &t, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM anime_types WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete type: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return animetype.ErrTypeNotFound
	}

	_ = r.cache.Delete(ctx, typeListCacheKey)

	return nil
}
