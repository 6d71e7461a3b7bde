package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"animelog-backend/internal/domains/comment"
)

// postgresRepository implements comment.Repository.
type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a comment repository instance.
func NewPostgresRepository(pool *pgxpool.Pool) comment.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Create(ctx context.Context, c *comment.Comment) (*comment.Comment, error) {
	query := `
        INSERT INTO comment (anime_id, type, content, episode_number)
        VALUES ($1, $2, $3, $4)
        RETURNING id, anime_id, type, content, episode_number, created_at
    `

	var created comment.Comment
	err := r.pool.QueryRow(ctx, query, c.AnimeID, c.Type, c.Content, c.EpisodeNumber).Scan(
		&created.ID,
		&created.AnimeID,
		&created.Type,
		&created.Content,
		&created.EpisodeNumber,
		&created.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	return &created, nil
}

func (r *postgresRepository) UpdateContent(ctx context.Context, id uuid.UUID, content string) (*comment.Comment, error) {
	query := `
        UPDATE comment
        SET content = $1
        WHERE id = $2
        RETURNING id, anime_id, type, content, episode_number, created_at
    `

	var updated comment.Comment
	err := r.pool.QueryRow(ctx, query, content, id).Scan(
		&updated.ID,
		&updated.AnimeID,
		&updated.Type,
		&updated.Content,
		&updated.EpisodeNumber,
		&updated.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, comment.ErrCommentNotFound
		}
		return nil, fmt.Errorf("failed to update comment: %w", err)
	}

	return &updated, nil
}

func (r *postgresRepository) ListByAnime(ctx context.Context, animeID uuid.UUID) ([]comment.Comment, error) {
	query := `
        SELECT id, anime_id, type, content, episode_number, created_at
        FROM comment
        WHERE anime_id = $1
        ORDER BY created_at DESC
    `

	rows, err := r.pool.Query(ctx, query, animeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	defer rows.Close()

	comments := []comment.Comment{}
	for rows.Next() {
		var c comment.Comment
		if err := rows.Scan(&c.ID, &c.AnimeID, &c.Type, &c.Content, &c.EpisodeNumber, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read comments: %w", err)
	}

	return comments, nil
}
