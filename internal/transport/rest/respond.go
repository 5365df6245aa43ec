package rest

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/recallapp/recall-backend/internal/domain"
)

// handleError maps service errors onto HTTP statuses. Domain sentinels
// get their canonical status; adapter failures surface as 502 so clients
// can tell an upstream outage from a bug; everything else is a 500 with
// the detail kept in the log.
func handleError(log *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, "forbidden")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrAlreadyExists), errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrDeviceUnavailable):
		writeError(w, http.StatusServiceUnavailable, "audio device unavailable")
	case errors.Is(err, domain.ErrTranscription),
		errors.Is(err, domain.ErrCompletion),
		errors.Is(err, domain.ErrEmbedding),
		errors.Is(err, domain.ErrSummarization):
		log.ErrorContext(r.Context(), "upstream failure", slog.String("error", err.Error()))
		writeError(w, http.StatusBadGateway, "upstream service failed")
	default:
		log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
