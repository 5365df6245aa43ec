// Package qa answers free-text questions grounded in the user's
// transcript history (retrieval-augmented) or in a live session
// transcript, and keeps the question/answer log.
package qa

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/recallapp/recall-backend/internal/domain"
	"github.com/recallapp/recall-backend/pkg/ctxutil"
)

//go:generate moq -out mocks_test.go . embedder completer transcriptSearcher questionRepo userRepo

type embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
	EmbeddingModel() string
}

type completer interface {
	Complete(ctx context.Context, prompt string, temperature float64) (string, error)
}

type transcriptSearcher interface {
	FindNearest(ctx context.Context, userID uuid.UUID, vec []float32, model string, k int) ([]*domain.Transcript, error)
}

type questionRepo interface {
	Create(ctx context.Context, q *domain.Question) (*domain.Question, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Question, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Question, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

// Config holds the retrieval and generation knobs.
type Config struct {
	// TopK is how many nearest transcripts feed the answer context.
	TopK int
	// Temperature is passed to the completion model. Low values keep
	// answers grounded in the retrieved text.
	Temperature float64
}

// Service implements question answering over transcripts.
type Service struct {
	log         *slog.Logger
	embedder    embedder
	completer   completer
	transcripts transcriptSearcher
	questions   questionRepo
	users       userRepo
	cfg         Config
}

// NewService creates a new qa service.
func NewService(
	log *slog.Logger,
	embedder embedder,
	completer completer,
	transcripts transcriptSearcher,
	questions questionRepo,
	users userRepo,
	cfg Config,
) *Service {
	if cfg.TopK <= 0 {
		cfg.TopK = 5
	}
	if cfg.Temperature == 0 {
		cfg.Temperature = 0.3
	}
	return &Service{
		log:         log.With("service", "qa"),
		embedder:    embedder,
		completer:   completer,
		transcripts: transcripts,
		questions:   questions,
		users:       users,
		cfg:         cfg,
	}
}

// personalization returns the "About the user" block for prompts, empty
// when the profile has none. A profile read failure degrades to no
// personalization rather than failing the question.
func (s *Service) personalization(ctx context.Context, userID uuid.UUID) string {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		s.log.WarnContext(ctx, "profile read failed", slog.String("error", err.Error()))
		return ""
	}
	if u.Personalization == nil || *u.Personalization == "" {
		return ""
	}
	return "About the user: " + *u.Personalization
}

// recordQuestion persists the interaction. Best-effort: a storage
// failure is logged and swallowed so it never alters the answer.
func (s *Service) recordQuestion(ctx context.Context, userID uuid.UUID, query, answer string) {
	_, err := s.questions.Create(ctx, &domain.Question{
		ID:        uuid.New(),
		UserID:    userID,
		Query:     query,
		Answer:    answer,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		s.log.ErrorContext(ctx, "failed to store question", slog.String("error", err.Error()))
	}
}

func callerID(ctx context.Context) (uuid.UUID, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return uuid.Nil, domain.ErrUnauthorized
	}
	return userID, nil
}
