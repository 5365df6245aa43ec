package qa

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/recallapp/recall-backend/internal/domain"
)

// AnswerNoContext is returned when no stored transcript matches the
// question. The completion model is not invoked in that case.
const AnswerNoContext = "I don't have any relevant information from your past transcripts to answer this question."

// AnswerEmpty is returned when the completion model produces no text.
const AnswerEmpty = "Sorry, I couldn't find an answer."

const ragPromptTemplate = `
You are an AI assistant that answers questions. Base these answers on the user's past transcripts as much as possible. These transcripts can be from lectures, meetings, conversations, or even the user themselves.

ABOUT THE USER:
%s

RELEVANT TRANSCRIPTS:
%s

INSTRUCTIONS:
1. Answer to the best ability based on information in the transcripts above and profile information.
2. Do not explicitly say you are basing your answer on the user's profile information.
3. Do not make up any information.
4. Be concise and direct in your answer.
5. If quoting from transcripts, indicate which part you're referencing.
6. It is okay if you don't know.

USER QUESTION: %s
`

// Ask answers a question grounded in the caller's transcript history:
// embed the query, retrieve the nearest transcripts, generate from that
// context, then log the interaction best-effort.
func (s *Service) Ask(ctx context.Context, query string) (string, error) {
	userID, err := callerID(ctx)
	if err != nil {
		return "", err
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return "", domain.NewValidationError("query", "must not be empty")
	}

	vec, err := s.embedder.Embed(ctx, query)
	if err != nil {
		return "", err
	}

	hits, err := s.transcripts.FindNearest(ctx, userID, vec, s.embedder.EmbeddingModel(), s.cfg.TopK)
	if err != nil {
		return "", err
	}

	s.log.InfoContext(ctx, "retrieved transcripts for question", slog.Int("count", len(hits)))

	if len(hits) == 0 {
		return AnswerNoContext, nil
	}

	texts := make([]string, len(hits))
	for i, h := range hits {
		texts[i] = h.Text
	}
	prompt := fmt.Sprintf(ragPromptTemplate,
		s.personalization(ctx, userID),
		strings.Join(texts, "\n\n"),
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
