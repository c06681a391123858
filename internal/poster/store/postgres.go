package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"posterati/internal/poster/models"
	"posterati/pkg/domain"
	"posterati/pkg/platform/sentinel"
)

// Postgres persists posters in PostgreSQL.
type Postgres struct {
	db      *sql.DB
	timeout time.Duration
}

// NewPostgres constructs a PostgreSQL-backed poster store.
func NewPostgres(db *sql.DB, timeout time.Duration) *Postgres {
	return &Postgres{db: db, timeout: timeout}
}

func (s *Postgres) Create(ctx context.Context, poster *models.Poster) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	query := `
		INSERT INTO posters (id, title, description, image_url, trailer_url, year, creator, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := s.db.ExecContext(ctx, query,
		poster.ID, poster.Title, poster.Description, poster.ImageURL,
		poster.TrailerURL, poster.Year, poster.Creator, poster.CreatedAt, poster.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert poster: %w", err)
	}
	return nil
}

func (s *Postgres) FindByID(ctx context.Context, id domain.PosterID) (*models.Poster, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	row := s.db.QueryRowContext(ctx, `
		SELECT id, title, description, image_url, trailer_url, year, creator, created_at, updated_at
		FROM posters WHERE id = $1
	`, id)
	return scanPoster(row)
}

func (s *Postgres) FindByCreator(ctx context.Context, creator domain.UserID) ([]*models.Poster, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, description, image_url, trailer_url, year, creator, created_at, updated_at
		FROM posters WHERE creator = $1 ORDER BY created_at
	`, creator)
	if err != nil {
		return nil, fmt.Errorf("list posters by creator: %w", err)
	}
	defer rows.Close()

	posters := make([]*models.Poster, 0)
	for rows.Next() {
		var poster models.Poster
		if err := rows.Scan(&poster.ID, &poster.Title, &poster.Description, &poster.ImageURL,
			&poster.TrailerURL, &poster.Year, &poster.Creator, &poster.CreatedAt, &poster.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan poster: %w", err)
		}
		posters = append(posters, &poster)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate posters: %w", err)
	}
	return posters, nil
}

func (s *Postgres) Update(ctx context.Context, poster *models.Poster) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	result, err := s.db.ExecContext(ctx, `
		UPDATE posters
		SET title = $2, description = $3, image_url = $4, trailer_url = $5, year = $6, updated_at = $7
		WHERE id = $1
	`, poster.ID, poster.Title, poster.Description, poster.ImageURL,
		poster.TrailerURL, poster.Year, poster.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update poster: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update poster: %w", err)
	}
	if affected == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

// Delete removes the poster. Absent rows are not an error.
func (s *Postgres) Delete(ctx context.Context, id domain.PosterID) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if _, err := s.db.ExecContext(ctx, `DELETE FROM posters WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete poster: %w", err)
	}
	return nil
}

func scanPoster(row *sql.Row) (*models.Poster, error) {
	var poster models.Poster
	err := row.Scan(&poster.ID, &poster.Title, &poster.Description, &poster.ImageURL,
		&poster.TrailerURL, &poster.Year, &poster.Creator, &poster.CreatedAt, &poster.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("scan poster: %w", err)
	}
	return &poster, nil
}
