package memory

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/recallapp/recall-backend/internal/domain"
)

// Get returns one memory by ID, checking the server store first and the
// local fallback store second.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Memory, error) {
	tr, userID, err := s.ownedTranscript(ctx, id)
	if err == nil {
		m := domain.MemoryFromTranscript(tr)
		return &m, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	l, err := s.local.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	m := domain.MemoryFromLocal(l)
	return &m, nil
}
