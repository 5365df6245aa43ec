package memory

import (
	"context"
	"log/slog"
	"sort"

	"github.com/recallapp/recall-backend/internal/domain"
	"github.com/recallapp/recall-backend/pkg/ctxutil"
)

// List returns the caller's memories, merging server transcripts with
// local privacy-mode records, newest first. A local-store read failure
// degrades to server records only.
func (s *Service) List(ctx context.Context) ([]domain.Memory, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	transcripts, err := s.transcripts.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Memory, 0, len(transcripts))
	for _, t := range transcripts {
		out = append(out, domain.MemoryFromTranscript(t))
	}

	locals, err := s.local.ListByUser(ctx, userID)
	if err != nil {
		s.log.ErrorContext(ctx, "local store read failed", slog.String("error", err.Error()))
	}
	for _, l := range locals {
		out = append(out, domain.MemoryFromLocal(l))
	}

	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID.String() < out[j].ID.String()
	})

	return out, nil
}
