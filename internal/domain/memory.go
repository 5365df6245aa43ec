package domain

import (
	"time"

	"github.com/google/uuid"
)

// Memory is the unified read view over server-side transcripts and
// privacy-mode local records, used for list/detail display.
type Memory struct {
	ID              uuid.UUID
	Text            string
	DurationSeconds int
	CreatedAt       time.Time
	// IsPrivate marks records from the local fallback store.
	IsPrivate    bool
	SummaryTitle string
	SummaryBody  string
	SummaryNotes *string
}

// MemoryFromTranscript builds the view for a server-side transcript.
func MemoryFromTranscript(t *Transcript) Memory {
	m := Memory{
		ID:              t.ID,
		Text:            t.Text,
		DurationSeconds: t.DurationSeconds,
		CreatedAt:       t.CreatedAt,
	}
	if t.Summary != nil {
		m.SummaryTitle = t.Summary.Title
		m.SummaryBody = t.Summary.Body
		m.SummaryNotes = t.Summary.Notes
	}
	return m
}

// MemoryFromLocal builds the view for a privacy-mode local record.
func MemoryFromLocal(l LocalMemory) Memory {
	m := Memory{
		ID:              l.ID,
		Text:            l.Text,
		DurationSeconds: l.DurationSeconds,
		CreatedAt:       l.CreatedAt,
		IsPrivate:       true,
		SummaryTitle:    l.SummaryTitle,
		SummaryBody:     l.SummaryText,
	}
	if l.SummaryNotes != "" {
		notes := l.SummaryNotes
		m.SummaryNotes = &notes
	}
	return m
}
