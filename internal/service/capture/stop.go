package capture

import (
	"context"
	"fmt"

	"github.com/recallapp/recall-backend/internal/domain"
)

// Stop ends the caller's active session and blocks until finalization
// completes, returning the result. Idempotent: a second Stop does not
// seal or persist anything again, it just waits for the same result.
func (s *Service) Stop(ctx context.Context) (*domain.CaptureResult, error) {
	sess, err := s.activeSession(ctx)
	if err != nil {
		return nil, err
	}

	sess.requestStop()

	select {
	case <-sess.done:
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	sess.mu.Lock()
	result := sess.result
	sess.mu.Unlock()

	// A session whose device never opened finishes without a result.
	if result == nil {
		return nil, fmt.Errorf("no recording session: %w", domain.ErrNotFound)
	}
	return result, nil
}
