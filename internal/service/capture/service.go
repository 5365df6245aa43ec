// Package capture runs the continuous chunked-recording pipeline: audio
// is sealed into bounded segments on a fixed boundary timer, each
// segment is transcribed concurrently, and transcripts accumulate in
// segment order until stop triggers finalization.
package capture

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/recallapp/recall-backend/internal/audio"
	"github.com/recallapp/recall-backend/internal/domain"
	"github.com/recallapp/recall-backend/pkg/ctxutil"
)

//go:generate moq -out mocks_test.go . transcriber summarizer transcriptRepo embedder localStore

type transcriber interface {
	Transcribe(ctx context.Context, audio []byte, filename string) (string, error)
}

type summarizer interface {
	Summarize(ctx context.Context, req domain.SummaryRequest) (*domain.SummaryResult, error)
}

type transcriptRepo interface {
	Create(ctx context.Context, t *domain.Transcript) (*domain.Transcript, error)
	UpdateEmbedding(ctx context.Context, id uuid.UUID, vec []float32, model string) error
}

type embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
	EmbeddingModel() string
}

type localStore interface {
	Append(ctx context.Context, userID uuid.UUID, m domain.LocalMemory) (domain.LocalMemory, error)
}

// Config holds the capture timing knobs.
type Config struct {
	// SegmentInterval is the boundary timer period. Each tick seals the
	// current segment and starts a new one.
	SegmentInterval time.Duration
	// TranscriptionTimeout bounds the wait for the final segment's text
	// during finalization. On expiry finalization proceeds with whatever
	// has been accumulated.
	TranscriptionTimeout time.Duration
}

// Service manages recording sessions, at most one active per user.
type Service struct {
	log         *slog.Logger
	device      audio.Device
	transcriber transcriber
	summarizer  summarizer
	transcripts transcriptRepo
	embedder    embedder
	local       localStore
	cfg         Config

	mu       sync.Mutex
	sessions map[uuid.UUID]*session
}

// NewService creates a new capture service.
func NewService(
	log *slog.Logger,
	device audio.Device,
	transcriber transcriber,
	summarizer summarizer,
	transcripts transcriptRepo,
	embedder embedder,
	local localStore,
	cfg Config,
) *Service {
	if cfg.SegmentInterval <= 0 {
		cfg.SegmentInterval = 30 * time.Second
	}
	if cfg.TranscriptionTimeout <= 0 {
		cfg.TranscriptionTimeout = time.Minute
	}
	return &Service{
		log:         log.With("service", "capture"),
		device:      device,
		transcriber: transcriber,
		summarizer:  summarizer,
		transcripts: transcripts,
		embedder:    embedder,
		local:       local,
		cfg:         cfg,
		sessions:    make(map[uuid.UUID]*session),
	}
}

// unregister frees a reserved session slot after the device failed to
// open, and marks the session terminal so any Stop already waiting on
// it unblocks instead of hanging on a run loop that never started.
func (s *Service) unregister(userID uuid.UUID, sess *session) {
	s.mu.Lock()
	if s.sessions[userID] == sess {
		delete(s.sessions, userID)
	}
	s.mu.Unlock()

	sess.cancel()
	sess.setState(domain.CaptureDone)
	close(sess.done)
}

// activeSession returns the caller's session, finished or not.
func (s *Service) activeSession(ctx context.Context) (*session, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	s.mu.Lock()
	sess := s.sessions[userID]
	s.mu.Unlock()

	if sess == nil {
		return nil, fmt.Errorf("no recording session: %w", domain.ErrNotFound)
	}
	return sess, nil
}
