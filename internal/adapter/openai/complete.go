package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/recallapp/recall-backend/internal/domain"
)

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type completionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type completionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Complete runs a chat completion over a single user prompt and returns
// the first choice's content.
func (c *Client) Complete(ctx context.Context, prompt string, temperature float64) (string, error) {
	payload, err := json.Marshal(completionRequest{
		Model:       c.completionModel,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		Temperature: temperature,
	})
	if err != nil {
		return "", fmt.Errorf("openai: marshal request: %w", err)
	}

	build := func() (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(payload))
		if err != nil {
			return nil, fmt.Errorf("openai: create request: %w", err)
		}
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
		req.Header.Set("Content-Type", "application/json")
		return req, nil
	}

	resp, err := c.doWithRetry(ctx, "complete", build)
	if err != nil {
		c.log.ErrorContext(ctx, "completion request failed", slog.String("error", err.Error()))
		return "", fmt.Errorf("%w: %w", domain.ErrCompletion, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: %w", domain.ErrCompletion, statusError(resp))
	}

	var cr completionResponse
	if err := json.NewDecoder(resp.Body).Decode(&cr); err != nil {
		return "", fmt.Errorf("%w: decode response: %w", domain.ErrCompletion, err)
	}
	if len(cr.Choices) == 0 {
		return "", fmt.Errorf("%w: empty choices", domain.ErrCompletion)
	}

	return cr.Choices[0].Message.Content, nil
}
