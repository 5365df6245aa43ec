package memory

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/recallapp/recall-backend/internal/domain"
)

// Delete removes one memory. Someone else's record is ErrForbidden and
// stays untouched; a record absent from both stores is ErrNotFound.
// The summary of a server-side transcript is removed with it.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	_, userID, err := s.ownedTranscript(ctx, id)
	if err == nil {
		if err := s.transcripts.Delete(ctx, id); err != nil {
			return err
		}
		s.log.InfoContext(ctx, "memory deleted", slog.String("memory_id", id.String()))
		return nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return err
	}

	if err := s.local.Delete(ctx, userID, id); err != nil {
		return err
	}
	s.log.InfoContext(ctx, "local memory deleted", slog.String("memory_id", id.String()))
	return nil
}
