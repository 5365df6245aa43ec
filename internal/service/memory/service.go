// Package memory provides read, delete and summary-maintenance
// operations over the user's saved memories, merging server-side
// transcripts with privacy-mode local records.
package memory

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/recallapp/recall-backend/internal/domain"
	"github.com/recallapp/recall-backend/pkg/ctxutil"
)

//go:generate moq -out mocks_test.go . transcriptRepo summaryRepo localStore summarizer txManager

type transcriptRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Transcript, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Transcript, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type summaryRepo interface {
	GetByTranscript(ctx context.Context, transcriptID uuid.UUID) (*domain.Summary, error)
	UpdateBody(ctx context.Context, id uuid.UUID, body string) error
}

type localStore interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.LocalMemory, error)
	Get(ctx context.Context, userID, id uuid.UUID) (domain.LocalMemory, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type summarizer interface {
	Summarize(ctx context.Context, req domain.SummaryRequest) (*domain.SummaryResult, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service wraps memory browsing and summary maintenance.
type Service struct {
	log         *slog.Logger
	transcripts transcriptRepo
	summaries   summaryRepo
	local       localStore
	summarizer  summarizer
	tx          txManager
}

// NewService creates a new memory service.
func NewService(
	log *slog.Logger,
	transcripts transcriptRepo,
	summaries summaryRepo,
	local localStore,
	summarizer summarizer,
	tx txManager,
) *Service {
	return &Service{
		log:         log.With("service", "memory"),
		transcripts: transcripts,
		summaries:   summaries,
		local:       local,
		summarizer:  summarizer,
		tx:          tx,
	}
}

// ownedTranscript fetches a transcript and verifies the caller owns it.
// A record belonging to someone else is ErrForbidden, not ErrNotFound,
// so the caller can distinguish ownership mismatches.
func (s *Service) ownedTranscript(ctx context.Context, id uuid.UUID) (*domain.Transcript, uuid.UUID, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, uuid.Nil, domain.ErrUnauthorized
	}

	tr, err := s.transcripts.GetByID(ctx, id)
	if err != nil {
		return nil, userID, err
	}
	if tr.UserID != userID {
		return nil, userID, domain.ErrForbidden
	}

	return tr, userID, nil
}
