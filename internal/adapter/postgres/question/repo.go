// Package question implements the Question store using PostgreSQL.
package question

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/recallapp/recall-backend/internal/adapter/postgres"
	"github.com/recallapp/recall-backend/internal/domain"
)

var builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides question persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new question repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a new question/answer record.
func (r *Repo) Create(ctx context.Context, q *domain.Question) (*domain.Question, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := builder.
		Insert("questions").
		Columns("id", "user_id", "query", "answer", "created_at").
		Values(q.ID, q.UserID, q.Query, q.Answer, q.CreatedAt).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert: %w", err)
	}

	if _, err := querier.Exec(ctx, sql, args...); err != nil {
		return nil, postgres.MapError(err, "question", q.ID)
	}

	created := *q
	return &created, nil
}

// GetByID returns a question by primary key. Ownership is NOT checked
// here; callers compare UserID.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Question, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := builder.
		Select("id", "user_id", "query", "answer", "created_at").
		From("questions").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	var q domain.Question
	row := querier.QueryRow(ctx, sql, args...)
	if err := row.Scan(&q.ID, &q.UserID, &q.Query, &q.Answer, &q.CreatedAt); err != nil {
		return nil, postgres.MapError(err, "question", id)
	}

	return &q, nil
}

// ListByUser returns all of a user's questions, newest first.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Question, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := builder.
		Select("id", "user_id", "query", "answer", "created_at").
		From("questions").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	defer rows.Close()

	var out []*domain.Question
	for rows.Next() {
		var q domain.Question
		if err := rows.Scan(&q.ID, &q.UserID, &q.Query, &q.Answer, &q.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		out = append(out, &q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}

	return out, nil
}

// Delete removes a question. Returns domain.ErrNotFound if no row exists.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := builder.
		Delete("questions").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	tag, err := querier.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "question", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("question %s: %w", id, domain.ErrNotFound)
	}

	return nil
}
