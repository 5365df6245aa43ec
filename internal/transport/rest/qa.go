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

// qaService defines the minimal interface needed by QAHandler.
type qaService interface {
	Ask(ctx context.Context, query string) (string, error)
	AskLive(ctx context.Context, query, transcript string) (string, error)
	ListQuestions(ctx context.Context) ([]*domain.Question, error)
	DeleteQuestion(ctx context.Context, id uuid.UUID) error
}

// QAHandler serves the question answering endpoints.
type QAHandler struct {
	svc qaService
	log *slog.Logger
}

// NewQAHandler creates a QAHandler.
func NewQAHandler(svc qaService, logger *slog.Logger) *QAHandler {
	return &QAHandler{svc: svc, log: logger.With("handler", "qa")}
}

type askRequest struct {
	Query string `json:"query"`
}

type askLiveRequest struct {
	Query      string `json:"query"`
	Transcript string `json:"transcript"`
}

type askResponse struct {
	Answer string `json:"answer"`
}

type questionResponse struct {
	ID        string    `json:"id"`
	Query     string    `json:"query"`
	Answer    string    `json:"answer"`
	CreatedAt time.Time `json:"createdAt"`
}

// Ask handles POST /ask.
func (h *QAHandler) Ask(w http.ResponseWriter, r *http.Request) {
	var req askRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	answer, err := h.svc.Ask(r.Context(), req.Query)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, askResponse{Answer: answer})
}

// AskLive handles POST /ask-live.
func (h *QAHandler) AskLive(w http.ResponseWriter, r *http.Request) {
	var req askLiveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	answer, err := h.svc.AskLive(r.Context(), req.Query, req.Transcript)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, askResponse{Answer: answer})
}

// ListQuestions handles GET /questions.
func (h *QAHandler) ListQuestions(w http.ResponseWriter, r *http.Request) {
	questions, err := h.svc.ListQuestions(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := make([]questionResponse, len(questions))
	for i, q := range questions {
		resp[i] = questionResponse{
			ID:        q.ID.String(),
			Query:     q.Query,
			Answer:    q.Answer,
			CreatedAt: q.CreatedAt,
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

// DeleteQuestion handles DELETE /questions/{id}.
func (h *QAHandler) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.svc.DeleteQuestion(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
