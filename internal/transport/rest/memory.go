package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/recallapp/recall-backend/internal/domain"
)

// memoryService defines the minimal interface needed by MemoryHandler.
type memoryService interface {
	List(ctx context.Context) ([]domain.Memory, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Memory, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Resummarize(ctx context.Context, id uuid.UUID, title, notes string) (*domain.SummaryResult, error)
	ToggleChecklistItem(ctx context.Context, transcriptID uuid.UUID, index int) (string, error)
}

// MemoryHandler serves the stored memory endpoints.
type MemoryHandler struct {
	svc memoryService
	log *slog.Logger
}

// NewMemoryHandler creates a MemoryHandler.
func NewMemoryHandler(svc memoryService, logger *slog.Logger) *MemoryHandler {
	return &MemoryHandler{svc: svc, log: logger.With("handler", "memory")}
}

type memoryResponse struct {
	ID              string    `json:"id"`
	Text            string    `json:"text"`
	DurationSeconds int       `json:"durationSeconds"`
	CreatedAt       time.Time `json:"createdAt"`
	Private         bool      `json:"private"`
	SummaryTitle    string    `json:"summaryTitle"`
	SummaryBody     string    `json:"summaryBody"`
	SummaryNotes    *string   `json:"summaryNotes,omitempty"`
}

type resummarizeRequest struct {
	Title string `json:"title"`
	Notes string `json:"notes"`
}

type summaryResponse struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

type toggleRequest struct {
	Index int `json:"index"`
}

type toggleResponse struct {
	Body string `json:"body"`
}

// List handles GET /memories.
func (h *MemoryHandler) List(w http.ResponseWriter, r *http.Request) {
	memories, err := h.svc.List(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := make([]memoryResponse, len(memories))
	for i := range memories {
		resp[i] = toMemoryResponse(&memories[i])
	}
	writeJSON(w, http.StatusOK, resp)
}

// Get handles GET /memories/{id}.
func (h *MemoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	m, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toMemoryResponse(m))
}

// Delete handles DELETE /memories/{id}.
func (h *MemoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Resummarize handles POST /memories/{id}/summary.
func (h *MemoryHandler) Resummarize(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req resummarizeRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
	}

	result, err := h.svc.Resummarize(r.Context(), id, req.Title, req.Notes)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, summaryResponse{Title: result.Title, Body: result.Body})
}

// ToggleChecklistItem handles POST /memories/{id}/summary/toggle.
func (h *MemoryHandler) ToggleChecklistItem(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req toggleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	body, err := h.svc.ToggleChecklistItem(r.Context(), id, req.Index)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toggleResponse{Body: body})
}

func toMemoryResponse(m *domain.Memory) memoryResponse {
	return memoryResponse{
		ID:              m.ID.String(),
		Text:            m.Text,
		DurationSeconds: m.DurationSeconds,
		CreatedAt:       m.CreatedAt,
		Private:         m.IsPrivate,
		SummaryTitle:    m.SummaryTitle,
		SummaryBody:     m.SummaryBody,
		SummaryNotes:    m.SummaryNotes,
	}
}

// pathID parses the {id} path segment, writing a 400 on failure.
func pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return uuid.Nil, false
	}
	return id, true
}
