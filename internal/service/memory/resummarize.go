package memory

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/recallapp/recall-backend/internal/domain"
)

// Resummarize regenerates the summary for a server-side transcript,
// replacing any existing one. Used to recover from a summarization
// failure at capture time or to re-run with a better title and notes.
func (s *Service) Resummarize(ctx context.Context, id uuid.UUID, title, notes string) (*domain.SummaryResult, error) {
	tr, _, err := s.ownedTranscript(ctx, id)
	if err != nil {
		return nil, err
	}

	result, err := s.summarizer.Summarize(ctx, domain.SummaryRequest{
		TranscriptID: &tr.ID,
		RawText:      tr.Text,
		Title:        title,
		Notes:        notes,
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "memory resummarized", slog.String("memory_id", id.String()))
	return result, nil
}
