package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
)

// profileService defines the minimal interface needed by ProfileHandler.
type profileService interface {
	Personalization(ctx context.Context) (string, error)
	SetPersonalization(ctx context.Context, text string) error
}

// ProfileHandler serves the user profile endpoints.
type ProfileHandler struct {
	svc profileService
	log *slog.Logger
}

// NewProfileHandler creates a ProfileHandler.
func NewProfileHandler(svc profileService, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{svc: svc, log: logger.With("handler", "profile")}
}

type personalizationPayload struct {
	Personalization string `json:"personalization"`
}

// GetPersonalization handles GET /profile/personalization.
func (h *ProfileHandler) GetPersonalization(w http.ResponseWriter, r *http.Request) {
	text, err := h.svc.Personalization(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, personalizationPayload{Personalization: text})
}

// SetPersonalization handles PUT /profile/personalization.
func (h *ProfileHandler) SetPersonalization(w http.ResponseWriter, r *http.Request) {
	var req personalizationPayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.svc.SetPersonalization(r.Context(), req.Personalization); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
