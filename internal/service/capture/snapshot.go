package capture

import (
	"context"

	"github.com/recallapp/recall-backend/internal/domain"
)

// Snapshot returns the live view of the caller's current (or most
// recently finished) session without mutating it.
func (s *Service) Snapshot(ctx context.Context) (*domain.CaptureSnapshot, error) {
	sess, err := s.activeSession(ctx)
	if err != nil {
		return nil, err
	}
	return sess.snapshot(), nil
}
