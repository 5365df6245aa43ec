package rest

import (
	"log/slog"
	"net/http"

	"github.com/recallapp/recall-backend/internal/config"
	"github.com/recallapp/recall-backend/internal/transport/middleware"
)

// RouterDeps bundles everything the HTTP surface needs.
type RouterDeps struct {
	Logger    *slog.Logger
	Validator middleware.TokenValidator
	Limiter   *middleware.RateLimiter
	CORS      config.CORSConfig
	RateLimit int

	Capture *CaptureHandler
	Memory  *MemoryHandler
	QA      *QAHandler
	Profile *ProfileHandler
	Health  *HealthHandler
}

// NewRouter builds the full HTTP handler: routes plus the shared
// middleware chain. Health probes bypass auth and rate limiting.
func NewRouter(deps RouterDeps) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /capture/start", deps.Capture.Start)
	mux.HandleFunc("POST /capture/stop", deps.Capture.Stop)
	mux.HandleFunc("POST /capture/chunk", deps.Capture.Chunk)
	mux.HandleFunc("GET /capture/snapshot", deps.Capture.Snapshot)

	mux.HandleFunc("GET /memories", deps.Memory.List)
	mux.HandleFunc("GET /memories/{id}", deps.Memory.Get)
	mux.HandleFunc("DELETE /memories/{id}", deps.Memory.Delete)
	mux.HandleFunc("POST /memories/{id}/summary", deps.Memory.Resummarize)
	mux.HandleFunc("POST /memories/{id}/summary/toggle", deps.Memory.ToggleChecklistItem)

	mux.HandleFunc("POST /ask", deps.QA.Ask)
	mux.HandleFunc("POST /ask-live", deps.QA.AskLive)
	mux.HandleFunc("GET /questions", deps.QA.ListQuestions)
	mux.HandleFunc("DELETE /questions/{id}", deps.QA.DeleteQuestion)

	mux.HandleFunc("GET /profile/personalization", deps.Profile.GetPersonalization)
	mux.HandleFunc("PUT /profile/personalization", deps.Profile.SetPersonalization)

	mws := []middleware.Middleware{
		middleware.RequestID,
		middleware.Logger(deps.Logger),
		middleware.Recovery(deps.Logger),
		middleware.CORS(deps.CORS),
	}
	if deps.Limiter != nil && deps.RateLimit > 0 {
		mws = append(mws, deps.Limiter.Limit(deps.RateLimit))
	}
	mws = append(mws, middleware.Auth(deps.Validator))

	api := middleware.Chain(mws...)(mux)

	root := http.NewServeMux()
	root.HandleFunc("GET /health", deps.Health.Health)
	root.HandleFunc("GET /ready", deps.Health.Ready)
	root.HandleFunc("GET /live", deps.Health.Live)
	root.Handle("/", api)

	return root
}
