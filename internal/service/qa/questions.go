package qa

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/recallapp/recall-backend/internal/domain"
)

// ListQuestions returns the caller's question/answer log, newest first.
func (s *Service) ListQuestions(ctx context.Context) ([]*domain.Question, error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	return s.questions.ListByUser(ctx, userID)
}

// DeleteQuestion removes one question record. Someone else's record is
// ErrForbidden and stays untouched.
func (s *Service) DeleteQuestion(ctx context.Context, id uuid.UUID) error {
	userID, err := callerID(ctx)
	if err != nil {
		return err
	}

	q, err := s.questions.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if q.UserID != userID {
		return domain.ErrForbidden
	}

	if err := s.questions.Delete(ctx, id); err != nil {
		return err
	}

	s.log.InfoContext(ctx, "question deleted", slog.String("question_id", id.String()))
	return nil
}
