// Command reembed backfills transcript embeddings for the configured
// embedding model. Transcripts embedded with an older model (or never
// embedded) are re-embedded in batches until none remain.
//
// Usage:
//
//	reembed [-batch 50]
//
// Configuration comes from the environment; see internal/config.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/recallapp/recall-backend/internal/adapter/openai"
	"github.com/recallapp/recall-backend/internal/adapter/postgres"
	transcriptrepo "github.com/recallapp/recall-backend/internal/adapter/postgres/transcript"
	"github.com/recallapp/recall-backend/internal/app"
	"github.com/recallapp/recall-backend/internal/config"
)

func main() {
	batch := flag.Int("batch", 50, "transcripts per batch")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := app.NewLogger(cfg.Log)

	ctx := context.Background()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}
	defer pool.Close()

	transcripts := transcriptrepo.New(pool)
	ai := openai.New(openai.Config{
		APIKey:          cfg.OpenAI.APIKey,
		BaseURL:         cfg.OpenAI.BaseURL,
		WhisperModel:    cfg.OpenAI.WhisperModel,
		CompletionModel: cfg.OpenAI.CompletionModel,
		EmbeddingModel:  cfg.OpenAI.EmbeddingModel,
		Timeout:         cfg.OpenAI.RequestTimeout,
	}, logger)

	model := ai.EmbeddingModel()
	total := 0
	for {
		pending, err := transcripts.ListMissingEmbedding(ctx, model, *batch)
		if err != nil {
			log.Fatalf("list pending transcripts: %v", err)
		}
		if len(pending) == 0 {
			break
		}

		for _, t := range pending {
			embedCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
			vec, err := ai.Embed(embedCtx, t.Text)
			cancel()
			if err != nil {
				log.Fatalf("embed transcript %s: %v", t.ID, err)
			}
			if err := transcripts.UpdateEmbedding(ctx, t.ID, vec, model); err != nil {
				log.Fatalf("store embedding for %s: %v", t.ID, err)
			}
			total++
		}
	}

	fmt.Printf("Re-embedded %d transcripts with model %s.\n", total, model)
}
