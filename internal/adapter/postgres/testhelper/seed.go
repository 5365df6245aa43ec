package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/recallapp/recall-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user row and returns the filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:        uuid.New(),
		Email:     "testuser-" + suffix + "@example.com",
		Name:      "Test User " + suffix,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, email, name, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		user.ID, user.Email, user.Name, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedTranscript creates a transcript row for the user and returns it.
func SeedTranscript(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, text string) domain.Transcript {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	tr := domain.Transcript{
		ID:              uuid.New(),
		UserID:          userID,
		Text:            text,
		DurationSeconds: 42,
		CreatedAt:       now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO transcripts (id, user_id, text, duration_seconds, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		tr.ID, tr.UserID, tr.Text, tr.DurationSeconds, tr.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedTranscript insert: %v", err)
	}

	return tr
}
