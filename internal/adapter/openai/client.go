// Package openai talks to the OpenAI REST API for transcription, chat
// completion and embeddings. It is a thin HTTP adapter; prompt text
// lives with the services that own it.
package openai

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

const defaultBaseURL = "https://api.openai.com/v1"

// Config carries the adapter settings. Zero-value fields fall back to
// sensible defaults in New.
type Config struct {
	APIKey          string
	BaseURL         string
	WhisperModel    string
	CompletionModel string
	EmbeddingModel  string
	Timeout         time.Duration
}

// Client is a shared HTTP client for all OpenAI endpoints.
type Client struct {
	apiKey          string
	baseURL         string
	whisperModel    string
	completionModel string
	embeddingModel  string
	httpClient      *http.Client
	log             *slog.Logger
}

// New creates a Client from cfg.
func New(cfg Config, logger *slog.Logger) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 60 * time.Second
	}

	return &Client{
		apiKey:          cfg.APIKey,
		baseURL:         baseURL,
		whisperModel:    cfg.WhisperModel,
		completionModel: cfg.CompletionModel,
		embeddingModel:  cfg.EmbeddingModel,
		httpClient:      &http.Client{Timeout: timeout},
		log:             logger.With("adapter", "openai"),
	}
}

// EmbeddingModel returns the configured embedding model name. Stored
// vectors are tagged with it so mixed-model vectors never share a
// similarity search.
func (c *Client) EmbeddingModel() string {
	return c.embeddingModel
}

// doWithRetry executes the request built by build, retrying once on 5xx
// or network errors. The request is rebuilt for the second attempt
// because its body has already been consumed.
func (c *Client) doWithRetry(ctx context.Context, op string, build func() (*http.Request, error)) (*http.Response, error) {
	req, err := build()
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)

	shouldRetry := err != nil || (resp != nil && resp.StatusCode >= 500)
	if !shouldRetry {
		return resp, err
	}

	// Don't retry if context is already cancelled.
	if ctx.Err() != nil {
		return resp, err
	}

	reason := "network error"
	if err == nil && resp != nil {
		reason = fmt.Sprintf("status %d", resp.StatusCode)
	}
	c.log.WarnContext(ctx, "openai retry", slog.String("op", op), slog.String("reason", reason))

	// Close body from the failed attempt before retrying.
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	time.Sleep(500 * time.Millisecond)

	req, err = build()
	if err != nil {
		return nil, err
	}
	return c.httpClient.Do(req)
}

// statusError reads up to 1 KiB of the error body for the message.
func statusError(resp *http.Response) error {
	b, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
	return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(b))
}
