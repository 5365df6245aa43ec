package qa

import (
	"context"
	"fmt"
	"strings"

	"github.com/recallapp/recall-backend/internal/domain"
)

const livePromptTemplate = `
You are an AI assistant that answers questions. Base these answers on the user's transcript as much as possible. This transcript can be from a lecture, a meeting, a conversation, or even the user themselves.

ABOUT THE USER:
%s

RELEVANT TRANSCRIPT:
%s

INSTRUCTIONS:
1. Answer to the best ability based on information in the transcript above and profile information.
2. Do not explicitly say you are basing your answer on the user's profile information.
3. Do not make up information.
4. Be concise and direct in your answer.
5. If quoting from transcript, indicate which part you're referencing.

USER QUESTION: %s
`

// AskLive answers a question against one supplied transcript, typically
// the in-progress session snapshot, skipping retrieval entirely.
func (s *Service) AskLive(ctx context.Context, query, transcript string) (string, error) {
	userID, err := callerID(ctx)
	if err != nil {
		return "", err
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return "", domain.NewValidationError("query", "must not be empty")
	}

	prompt := fmt.Sprintf(livePromptTemplate,
		s.personalization(ctx, userID),
		transcript,
		query,
	)

	answer, err := s.completer.Complete(ctx, prompt, s.cfg.Temperature)
	if err != nil {
		return "", err
	}
	if answer == "" {
		answer = AnswerEmpty
	}

	s.recordQuestion(ctx, userID, query, answer)

	return answer, nil
}
