// Package user implements the User store using PostgreSQL. User rows are
// provisioned by the identity layer; this service reads profile data and
// updates the personalization text.
package user

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

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a new user row. Used by provisioning and tests.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now().UTC()

	sql, args, err := builder.
		Insert("users").
		Columns("id", "email", "name", "personalization", "created_at", "updated_at").
		Values(u.ID, u.Email, u.Name, u.Personalization, now, now).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert: %w", err)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return nil, postgres.MapError(err, "user", u.ID)
	}

	created := *u
	created.CreatedAt = now
	created.UpdatedAt = now
	return &created, nil
}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := builder.
		Select("id", "email", "name", "personalization", "created_at", "updated_at").
		From("users").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	var u domain.User
	row := q.QueryRow(ctx, sql, args...)
	if err := row.Scan(&u.ID, &u.Email, &u.Name, &u.Personalization, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, postgres.MapError(err, "user", id)
	}

	return &u, nil
}

// UpdatePersonalization replaces the user's profile text. nil clears it.
func (r *Repo) UpdatePersonalization(ctx context.Context, id uuid.UUID, text *string) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := builder.
		Update("users").
		Set("personalization", text).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "user", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
	}

	return nil
}
