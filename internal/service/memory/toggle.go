package memory

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/recallapp/recall-backend/internal/domain"
)

// ToggleChecklistItem flips the Nth checkbox (0-indexed, document
// order) in a transcript's summary body and stores the edited body.
// Returns the updated body.
func (s *Service) ToggleChecklistItem(ctx context.Context, transcriptID uuid.UUID, index int) (string, error) {
	if _, _, err := s.ownedTranscript(ctx, transcriptID); err != nil {
		return "", err
	}

	// Read-modify-write on the summary body. The transaction keeps two
	// concurrent toggles from overwriting each other's edit.
	var body string
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		summary, err := s.summaries.GetByTranscript(ctx, transcriptID)
		if err != nil {
			return err
		}

		next, ok := domain.ToggleCheckbox(summary.Body, index)
		if !ok {
			return fmt.Errorf("%w: no checkbox at index %d of %d", domain.ErrValidation, index, domain.CountCheckboxes(summary.Body))
		}
		body = next

		return s.summaries.UpdateBody(ctx, summary.ID, body)
	})
	if err != nil {
		return "", err
	}

	return body, nil
}
