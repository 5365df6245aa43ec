// Package transcript implements the Transcript store using PostgreSQL.
// Transcripts carry an optional pgvector embedding used for similarity
// search; rows without an embedding (or with one from a different model)
// are invisible to FindNearest.
package transcript

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pgvector/pgvector-go"

	postgres "github.com/recallapp/recall-backend/internal/adapter/postgres"
	"github.com/recallapp/recall-backend/internal/domain"
)

var builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides transcript persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new transcript repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a new transcript row. The embedding columns start NULL
// and are backfilled by UpdateEmbedding.
func (r *Repo) Create(ctx context.Context, t *domain.Transcript) (*domain.Transcript, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := builder.
		Insert("transcripts").
		Columns("id", "user_id", "text", "duration_seconds", "created_at").
		Values(t.ID, t.UserID, t.Text, t.DurationSeconds, t.CreatedAt).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert: %w", err)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return nil, postgres.MapError(err, "transcript", t.ID)
	}

	created := *t
	return &created, nil
}

// GetByID returns a transcript by primary key with its summary, if any.
// Ownership is NOT checked here; callers compare UserID so they can
// distinguish forbidden from not-found.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Transcript, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := selectWithSummary().
		Where(sq.Eq{"t.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	row := q.QueryRow(ctx, sql, args...)
	t, err := scanTranscript(row)
	if err != nil {
		return nil, postgres.MapError(err, "transcript", id)
	}

	return t, nil
}

// ListByUser returns all of a user's transcripts with summaries,
// newest first.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Transcript, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := selectWithSummary().
		Where(sq.Eq{"t.user_id": userID}).
		OrderBy("t.created_at DESC", "t.id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list transcripts: %w", err)
	}
	defer rows.Close()

	var out []*domain.Transcript
	for rows.Next() {
		t, err := scanTranscript(rows)
		if err != nil {
			return nil, fmt.Errorf("scan transcript: %w", err)
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list transcripts: %w", err)
	}

	return out, nil
}

// Delete removes a transcript; its summary goes with it via ON DELETE
// CASCADE. Returns domain.ErrNotFound if no row exists.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := builder.
		Delete("transcripts").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "transcript", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("transcript %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// UpdateEmbedding stores the vector for a transcript together with the
// model name that produced it. The model tag keeps mixed-model vectors
// out of one similarity index.
func (r *Repo) UpdateEmbedding(ctx context.Context, id uuid.UUID, vec []float32, model string) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := builder.
		Update("transcripts").
		Set("embedding", pgvector.NewVector(vec)).
		Set("embedding_model", model).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "transcript", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("transcript %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// ListMissingEmbedding returns up to limit transcript IDs for any user
// whose stored embedding is absent or was produced by a different model.
// Used by the reembed backfill tool.
func (r *Repo) ListMissingEmbedding(ctx context.Context, model string, limit int) ([]*domain.Transcript, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := builder.
		Select("t.id", "t.user_id", "t.text", "t.duration_seconds", "t.embedding_model", "t.created_at").
		From("transcripts t").
		Where(sq.Or{
			sq.Eq{"t.embedding_model": nil},
			sq.NotEq{"t.embedding_model": model},
		}).
		OrderBy("t.created_at").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list transcripts missing embedding: %w", err)
	}
	defer rows.Close()

	var out []*domain.Transcript
	for rows.Next() {
		var t domain.Transcript
		if err := rows.Scan(&t.ID, &t.UserID, &t.Text, &t.DurationSeconds, &t.EmbeddingModel, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan transcript: %w", err)
		}
		out = append(out, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list transcripts missing embedding: %w", err)
	}

	return out, nil
}

// FindNearest returns up to k of the user's transcripts nearest to vec
// under inner-product distance, nearest first. Only rows embedded with
// the given model participate; ties break deterministically by id.
func (r *Repo) FindNearest(ctx context.Context, userID uuid.UUID, vec []float32, model string, k int) ([]*domain.Transcript, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := builder.
		Select("t.id", "t.user_id", "t.text", "t.duration_seconds", "t.embedding_model", "t.created_at").
		From("transcripts t").
		Where(sq.Eq{"t.user_id": userID}).
		Where("t.embedding IS NOT NULL").
		Where(sq.Eq{"t.embedding_model": model}).
		OrderByClause("t.embedding <#> ?, t.id", pgvector.NewVector(vec)).
		Limit(uint64(k)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("find nearest transcripts: %w", err)
	}
	defer rows.Close()

	var out []*domain.Transcript
	for rows.Next() {
		var t domain.Transcript
		if err := rows.Scan(&t.ID, &t.UserID, &t.Text, &t.DurationSeconds, &t.EmbeddingModel, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan transcript: %w", err)
		}
		out = append(out, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("find nearest transcripts: %w", err)
	}

	return out, nil
}

// selectWithSummary builds the transcript select with a LEFT JOIN on
// summaries.
func selectWithSummary() sq.SelectBuilder {
	return builder.
		Select(
			"t.id", "t.user_id", "t.text", "t.duration_seconds", "t.embedding_model", "t.created_at",
			"s.id", "s.title", "s.body", "s.notes", "s.created_at", "s.updated_at",
		).
		From("transcripts t").
		LeftJoin("summaries s ON s.transcript_id = t.id")
}

// scanTranscript scans one joined row into a domain.Transcript.
func scanTranscript(row pgx.Row) (*domain.Transcript, error) {
	var (
		t          domain.Transcript
		sID        *uuid.UUID
		sTitle     *string
		sBody      *string
		sNotes     *string
		sCreatedAt *time.Time
		sUpdatedAt *time.Time
	)

	err := row.Scan(
		&t.ID, &t.UserID, &t.Text, &t.DurationSeconds, &t.EmbeddingModel, &t.CreatedAt,
		&sID, &sTitle, &sBody, &sNotes, &sCreatedAt, &sUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, pgx.ErrNoRows
		}
		return nil, err
	}

	if sID != nil {
		t.Summary = &domain.Summary{
			ID:           *sID,
			TranscriptID: t.ID,
			Title:        *sTitle,
			Body:         *sBody,
			Notes:        sNotes,
			CreatedAt:    *sCreatedAt,
			UpdatedAt:    *sUpdatedAt,
		}
	}

	return &t, nil
}
