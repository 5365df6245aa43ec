// Package summary implements the Summary store using PostgreSQL.
// Summaries are keyed by transcript identity: regenerating replaces the
// existing row (upsert).
package summary

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/recallapp/recall-backend/internal/adapter/postgres"
	"github.com/recallapp/recall-backend/internal/domain"
)

var builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides summary persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new summary repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// UpsertByTranscript inserts a summary or, if the transcript already has
// one, replaces its title, body and notes in place.
func (r *Repo) UpsertByTranscript(ctx context.Context, s *domain.Summary) (*domain.Summary, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now().UTC()

	sql, args, err := builder.
		Insert("summaries").
		Columns("id", "transcript_id", "title", "body", "notes", "created_at", "updated_at").
		Values(s.ID, s.TranscriptID, s.Title, s.Body, s.Notes, now, now).
		Suffix(`ON CONFLICT (transcript_id) DO UPDATE
			SET title = EXCLUDED.title, body = EXCLUDED.body, notes = EXCLUDED.notes, updated_at = EXCLUDED.updated_at`).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build upsert: %w", err)
	}

	saved := *s
	row := q.QueryRow(ctx, sql, args...)
	if err := row.Scan(&saved.ID, &saved.CreatedAt, &saved.UpdatedAt); err != nil {
		return nil, postgres.MapError(err, "summary", s.ID)
	}

	return &saved, nil
}

// GetByTranscript returns the summary for a transcript.
// Returns domain.ErrNotFound if none exists.
func (r *Repo) GetByTranscript(ctx context.Context, transcriptID uuid.UUID) (*domain.Summary, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := builder.
		Select("id", "transcript_id", "title", "body", "notes", "created_at", "updated_at").
		From("summaries").
		Where(sq.Eq{"transcript_id": transcriptID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	var s domain.Summary
	row := q.QueryRow(ctx, sql, args...)
	if err := row.Scan(&s.ID, &s.TranscriptID, &s.Title, &s.Body, &s.Notes, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, postgres.MapError(err, "summary", transcriptID)
	}

	return &s, nil
}

// UpdateBody rewrites the summary body in place (checkbox toggling).
func (r *Repo) UpdateBody(ctx context.Context, id uuid.UUID, body string) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := builder.
		Update("summaries").
		Set("body", body).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "summary", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("summary %s: %w", id, domain.ErrNotFound)
	}

	return nil
}
