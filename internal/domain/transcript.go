package domain

import (
	"time"

	"github.com/google/uuid"
)

// Transcript is the persisted text of one completed recording session.
// Text is immutable after creation; only the embedding columns are
// backfilled later (see UpdateEmbedding).
type Transcript struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	Text            string
	DurationSeconds int
	// EmbeddingModel names the model that produced the stored vector.
	// Nil means no embedding is stored and the transcript is invisible
	// to similarity search.
	EmbeddingModel *string
	CreatedAt      time.Time

	Summary *Summary
}

// HasEmbedding reports whether the transcript carries a vector produced
// by the given model.
func (t *Transcript) HasEmbedding(model string) bool {
	return t.EmbeddingModel != nil && *t.EmbeddingModel == model
}

// Question is one persisted retrieval-augmented Q&A interaction.
type Question struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Query     string
	Answer    string
	CreatedAt time.Time
}

// LocalMemory is a privacy-mode transcript+summary pair retained in the
// client-local fallback store instead of the server database. IDs are
// generated locally; records are append-only.
type LocalMemory struct {
	ID              uuid.UUID `json:"id"`
	Text            string    `json:"text"`
	DurationSeconds int       `json:"duration"`
	SummaryTitle    string    `json:"summaryTitle"`
	SummaryText     string    `json:"summaryText"`
	SummaryNotes    string    `json:"summaryNotes,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}
