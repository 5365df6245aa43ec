package config

import (
	"fmt"
	"time"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.OpenAI.APIKey == "" {
		return fmt.Errorf("openai.api_key is required")
	}
	if c.OpenAI.EmbeddingDims <= 0 {
		return fmt.Errorf("openai.embedding_dims must be > 0 (got %d)", c.OpenAI.EmbeddingDims)
	}

	if err := c.Capture.validate(); err != nil {
		return fmt.Errorf("capture: %w", err)
	}
	if err := c.RAG.validate(); err != nil {
		return fmt.Errorf("rag: %w", err)
	}

	return nil
}

func (c *CaptureConfig) validate() error {
	if c.SegmentInterval < time.Second {
		return fmt.Errorf("segment_interval must be >= 1s (got %v)", c.SegmentInterval)
	}
	if c.TranscriptionTimeout <= 0 {
		return fmt.Errorf("transcription_timeout must be > 0 (got %v)", c.TranscriptionTimeout)
	}
	return nil
}

func (c *RAGConfig) validate() error {
	if c.TopK <= 0 {
		return fmt.Errorf("top_k must be > 0 (got %d)", c.TopK)
	}
	if c.Temperature < 0 || c.Temperature > 2 {
		return fmt.Errorf("temperature must be in [0, 2] (got %v)", c.Temperature)
	}
	return nil
}
