package capture

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/recallapp/recall-backend/internal/domain"
	"github.com/recallapp/recall-backend/pkg/ctxutil"
)

// StartParams configures a new recording session. Private and the
// title/notes hints are fixed for the session's lifetime.
type StartParams struct {
	Private bool
	Title   string
	Notes   string
}

// Start opens the audio device and begins a new session for the caller.
// At most one session may be active per user; a finished session is
// replaced so its buffer never leaks into the new one.
func (s *Service) Start(ctx context.Context, p StartParams) (*domain.CaptureSnapshot, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	// The session outlives the HTTP request that started it. Values
	// (user identity, request id) stay attached for logging.
	sessCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))

	id := uuid.New()
	sess := &session{
		id:        id,
		userID:    userID,
		isPrivate: p.Private,
		title:     p.Title,
		notes:     p.Notes,
		startedAt: time.Now(),
		svc:       s,
		log:       s.log.With("session_id", id.String()),
		cancel:    cancel,
		acc:       newAccumulator(),
		stopCh:    make(chan struct{}),
		done:      make(chan struct{}),
		state:     domain.CaptureRecording,
	}

	// Check and registration must happen in one critical section, or
	// two concurrent Starts both pass the check and one session leaks.
	s.mu.Lock()
	if existing := s.sessions[userID]; existing != nil && !existing.isDone() {
		s.mu.Unlock()
		cancel()
		return nil, fmt.Errorf("recording already in progress: %w", domain.ErrConflict)
	}
	s.sessions[userID] = sess
	s.mu.Unlock()

	stream, err := s.device.Open(ctx)
	if err != nil {
		s.unregister(userID, sess)
		return nil, fmt.Errorf("open audio device: %w", err)
	}

	sess.mu.Lock()
	sess.stream = stream
	sess.mu.Unlock()

	go sess.run(sessCtx)

	s.log.InfoContext(ctx, "recording started",
		slog.String("session_id", sess.id.String()),
		slog.Bool("private", p.Private),
	)

	return sess.snapshot(), nil
}
