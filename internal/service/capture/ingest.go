package capture

import (
	"context"
	"fmt"

	"github.com/recallapp/recall-backend/internal/audio"
	"github.com/recallapp/recall-backend/internal/domain"
)

// Ingest feeds one uploaded audio chunk into the caller's active
// session. Only sessions whose audio source is fed externally accept
// uploads.
func (s *Service) Ingest(ctx context.Context, chunk []byte) error {
	sess, err := s.activeSession(ctx)
	if err != nil {
		return err
	}
	if sess.isDone() {
		return fmt.Errorf("no recording session: %w", domain.ErrNotFound)
	}

	if len(chunk) == 0 {
		return domain.NewValidationError("chunk", "must not be empty")
	}

	// The stream is assigned after the slot is reserved, so read it
	// under the session lock.
	sess.mu.Lock()
	stream := sess.stream
	sess.mu.Unlock()

	p, ok := stream.(audio.Pusher)
	if !ok {
		return fmt.Errorf("session audio source does not accept uploads: %w", domain.ErrValidation)
	}
	return p.Push(chunk)
}
