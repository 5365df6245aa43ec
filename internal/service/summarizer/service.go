// Package summarizer turns raw transcript text into a titled bullet-point
// summary via a completion model and persists it when a server-side
// transcript exists.
package summarizer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/recallapp/recall-backend/internal/domain"
)

//go:generate moq -out mocks_test.go . completer summaryRepo
type completer interface {
	Complete(ctx context.Context, prompt string, temperature float64) (string, error)
}

type summaryRepo interface {
	UpsertByTranscript(ctx context.Context, s *domain.Summary) (*domain.Summary, error)
}

// Service generates and stores summaries.
type Service struct {
	log       *slog.Logger
	completer completer
	summaries summaryRepo
}

// NewService creates a new summarizer service.
func NewService(log *slog.Logger, completer completer, summaries summaryRepo) *Service {
	return &Service{
		log:       log.With("service", "summarizer"),
		completer: completer,
		summaries: summaries,
	}
}

const promptTemplate = `
You will receive a raw audio transcript of a user's voice recording, along with optional user-provided notes and a custom title.

Your task is to extract and summarize the main points of the transcript. Use the notes to guide your summary if they provide helpful context. Ignore filler phrases, greetings (e.g., "hello", "1,2,3"), or anything unrelated to a real topic or idea.

User's Title: %s
User's Notes: %s

Transcript:
"""%s"""

Steps:
1. Generate a short, relevant title (5-8 words). If the user provided a helpful title, you may reuse or refine it.
2. Write clear, concise bullet point notes summarizing the key points or ideas from the transcript. Incorporate the user's notes if relevant.
3. Only include action items if the transcript or notes suggest next steps or priorities.
4. If no meaningful content is found, return:

Title: Untitled
• Transcript is too short or has no meaningful content.

Format:
Title: [Generated or Refined Title]
• Bullet point 1
• Bullet point 2
  • Sub-bullet (if needed)

Action Items (if any):
1. ...
2. ...
`

// Summarize generates a summary for req.RawText. When req.TranscriptID
// is set the result is upserted against that transcript; a repeated call
// replaces the stored summary instead of adding a second one.
func (s *Service) Summarize(ctx context.Context, req domain.SummaryRequest) (*domain.SummaryResult, error) {
	title := strings.TrimSpace(req.Title)
	notes := strings.TrimSpace(req.Notes)

	promptTitle := title
	if promptTitle == "" {
		promptTitle = "Untitled"
	}
	promptNotes := notes
	if promptNotes == "" {
		promptNotes = "None"
	}

	prompt := fmt.Sprintf(promptTemplate, promptTitle, promptNotes, req.RawText)

	content, err := s.completer.Complete(ctx, prompt, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrSummarization, err)
	}

	result := parseSummary(content, title)

	if req.TranscriptID != nil {
		summary := &domain.Summary{
			ID:           uuid.New(),
			TranscriptID: *req.TranscriptID,
			Title:        result.Title,
			Body:         result.Body,
		}
		if notes != "" {
			summary.Notes = &notes
		}
		if _, err := s.summaries.UpsertByTranscript(ctx, summary); err != nil {
			return nil, err
		}
	}

	s.log.InfoContext(ctx, "summary generated",
		slog.Bool("persisted", req.TranscriptID != nil),
		slog.String("title", result.Title),
	)

	return result, nil
}

// parseSummary splits the model output into title and body. The user's
// own title wins; otherwise the title comes from the first line's
// "Title: ..." prefix. The body is everything after the first line.
func parseSummary(content, userTitle string) *domain.SummaryResult {
	lines := strings.Split(content, "\n")

	title := userTitle
	if title == "" && len(lines) > 0 {
		if _, after, found := strings.Cut(lines[0], ":"); found {
			title = strings.TrimSpace(after)
		}
	}
	if title == "" {
		title = "Untitled"
	}

	body := ""
	if len(lines) > 1 {
		body = strings.TrimSpace(strings.Join(lines[1:], "\n"))
	}

	return &domain.SummaryResult{Title: title, Body: body}
}
