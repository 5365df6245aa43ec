package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/recallapp/recall-backend/internal/adapter/localstore"
	"github.com/recallapp/recall-backend/internal/adapter/openai"
	"github.com/recallapp/recall-backend/internal/adapter/postgres"
	questionrepo "github.com/recallapp/recall-backend/internal/adapter/postgres/question"
	summaryrepo "github.com/recallapp/recall-backend/internal/adapter/postgres/summary"
	transcriptrepo "github.com/recallapp/recall-backend/internal/adapter/postgres/transcript"
	userrepo "github.com/recallapp/recall-backend/internal/adapter/postgres/user"
	"github.com/recallapp/recall-backend/internal/audio"
	"github.com/recallapp/recall-backend/internal/auth"
	"github.com/recallapp/recall-backend/internal/config"
	"github.com/recallapp/recall-backend/internal/service/capture"
	"github.com/recallapp/recall-backend/internal/service/memory"
	"github.com/recallapp/recall-backend/internal/service/qa"
	"github.com/recallapp/recall-backend/internal/service/summarizer"
	"github.com/recallapp/recall-backend/internal/service/user"
	"github.com/recallapp/recall-backend/internal/transport/middleware"
	"github.com/recallapp/recall-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects
// to the database, wires the services and serves HTTP until ctx is
// cancelled, then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	if cfg.Database.MigrateOnStart {
		if err := postgres.Migrate(ctx, cfg.Database.DSN); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		logger.Info("migrations applied")
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	transcripts := transcriptrepo.New(pool)
	summaries := summaryrepo.New(pool)
	questions := questionrepo.New(pool)
	users := userrepo.New(pool)

	ai := openai.New(openai.Config{
		APIKey:          cfg.OpenAI.APIKey,
		BaseURL:         cfg.OpenAI.BaseURL,
		WhisperModel:    cfg.OpenAI.WhisperModel,
		CompletionModel: cfg.OpenAI.CompletionModel,
		EmbeddingModel:  cfg.OpenAI.EmbeddingModel,
		Timeout:         cfg.OpenAI.RequestTimeout,
	}, logger)

	local := localstore.New(cfg.LocalStore.Dir, logger)
	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer)

	summarizerSvc := summarizer.NewService(logger, ai, summaries)
	captureSvc := capture.NewService(
		logger,
		audio.NewIngestDevice(),
		ai,
		summarizerSvc,
		transcripts,
		ai,
		local,
		capture.Config{
			SegmentInterval:      cfg.Capture.SegmentInterval,
			TranscriptionTimeout: cfg.Capture.TranscriptionTimeout,
		},
	)
	memorySvc := memory.NewService(logger, transcripts, summaries, local, summarizerSvc, postgres.NewTxManager(pool))
	qaSvc := qa.NewService(logger, ai, ai, transcripts, questions, users, qa.Config{
		TopK:        cfg.RAG.TopK,
		Temperature: cfg.RAG.Temperature,
	})
	userSvc := user.NewService(logger, users)

	limiter := middleware.NewRateLimiter(time.Minute)
	defer limiter.Stop()

	router := rest.NewRouter(rest.RouterDeps{
		Logger:    logger,
		Validator: jwtManager,
		Limiter:   limiter,
		CORS:      cfg.CORS,
		RateLimit: cfg.Server.RateLimitPerMinute,
		Capture:   rest.NewCaptureHandler(captureSvc, logger),
		Memory:    rest.NewMemoryHandler(memorySvc, logger),
		QA:        rest.NewQAHandler(qaSvc, logger),
		Profile:   rest.NewProfileHandler(userSvc, logger),
		Health:    rest.NewHealthHandler(pool, BuildVersion()),
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
