package rest

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/recallapp/recall-backend/internal/domain"
	"github.com/recallapp/recall-backend/internal/service/capture"
)

// captureService defines the minimal interface needed by CaptureHandler.
type captureService interface {
	Start(ctx context.Context, p capture.StartParams) (*domain.CaptureSnapshot, error)
	Stop(ctx context.Context) (*domain.CaptureResult, error)
	Snapshot(ctx context.Context) (*domain.CaptureSnapshot, error)
	Ingest(ctx context.Context, chunk []byte) error
}

// maxChunkSize bounds one uploaded audio chunk.
const maxChunkSize = 4 << 20

// CaptureHandler serves the recording session endpoints.
type CaptureHandler struct {
	svc captureService
	log *slog.Logger
}

// NewCaptureHandler creates a CaptureHandler.
func NewCaptureHandler(svc captureService, logger *slog.Logger) *CaptureHandler {
	return &CaptureHandler{svc: svc, log: logger.With("handler", "capture")}
}

type startCaptureRequest struct {
	Private bool   `json:"private"`
	Title   string `json:"title"`
	Notes   string `json:"notes"`
}

type captureSnapshotResponse struct {
	SessionID      string                 `json:"sessionId"`
	State          string                 `json:"state"`
	Private        bool                   `json:"private"`
	StartedAt      time.Time              `json:"startedAt"`
	ElapsedSeconds int                    `json:"elapsedSeconds"`
	Text           string                 `json:"text"`
	Result         *captureResultResponse `json:"result,omitempty"`
}

type captureResultResponse struct {
	TranscriptID *string `json:"transcriptId"`
	SummaryTitle string  `json:"summaryTitle"`
	SummaryBody  string  `json:"summaryBody"`
}

// Start handles POST /capture/start.
func (h *CaptureHandler) Start(w http.ResponseWriter, r *http.Request) {
	var req startCaptureRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
	}

	snap, err := h.svc.Start(r.Context(), capture.StartParams{
		Private: req.Private,
		Title:   req.Title,
		Notes:   req.Notes,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toCaptureSnapshotResponse(snap))
}

// Stop handles POST /capture/stop. It blocks until the session is
// finalized and returns the durable outcome.
func (h *CaptureHandler) Stop(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.Stop(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toCaptureResultResponse(result))
}

// Chunk handles POST /capture/chunk: one raw audio chunk uploaded by
// the recording client.
func (h *CaptureHandler) Chunk(w http.ResponseWriter, r *http.Request) {
	chunk, err := io.ReadAll(io.LimitReader(r.Body, maxChunkSize+1))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(chunk) > maxChunkSize {
		writeError(w, http.StatusRequestEntityTooLarge, "chunk too large")
		return
	}

	if err := h.svc.Ingest(r.Context(), chunk); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusAccepted)
}

// Snapshot handles GET /capture/snapshot.
func (h *CaptureHandler) Snapshot(w http.ResponseWriter, r *http.Request) {
	snap, err := h.svc.Snapshot(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toCaptureSnapshotResponse(snap))
}

func toCaptureSnapshotResponse(snap *domain.CaptureSnapshot) captureSnapshotResponse {
	resp := captureSnapshotResponse{
		SessionID:      snap.SessionID.String(),
		State:          snap.State.String(),
		Private:        snap.IsPrivate,
		StartedAt:      snap.StartedAt,
		ElapsedSeconds: snap.ElapsedSeconds,
		Text:           snap.Text,
	}
	if snap.Result != nil {
		r := toCaptureResultResponse(snap.Result)
		resp.Result = &r
	}
	return resp
}

func toCaptureResultResponse(result *domain.CaptureResult) captureResultResponse {
	resp := captureResultResponse{
		SummaryTitle: result.SummaryTitle,
		SummaryBody:  result.SummaryBody,
	}
	if result.TranscriptID != nil {
		id := result.TranscriptID.String()
		resp.TranscriptID = &id
	}
	return resp
}
