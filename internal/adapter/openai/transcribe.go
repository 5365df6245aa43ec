package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"mime/multipart"
	"net/http"

	"github.com/recallapp/recall-backend/internal/domain"
)

type transcriptionResponse struct {
	Text string `json:"text"`
}

// Transcribe sends one audio chunk to the audio/transcriptions endpoint
// and returns the recognized text. An empty string with a nil error
// means the chunk contained no recognizable speech.
func (c *Client) Transcribe(ctx context.Context, audio []byte, filename string) (string, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	if err := mw.WriteField("model", c.whisperModel); err != nil {
		return "", fmt.Errorf("openai: write model field: %w", err)
	}
	fw, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("openai: create form file: %w", err)
	}
	if _, err := fw.Write(audio); err != nil {
		return "", fmt.Errorf("openai: write audio: %w", err)
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("openai: close multipart: %w", err)
	}

	payload := body.Bytes()
	build := func() (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/audio/transcriptions", bytes.NewReader(payload))
		if err != nil {
			return nil, fmt.Errorf("openai: create request: %w", err)
		}
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		return req, nil
	}

	resp, err := c.doWithRetry(ctx, "transcribe", build)
	if err != nil {
		c.log.ErrorContext(ctx, "transcription request failed", slog.String("error", err.Error()))
		return "", fmt.Errorf("%w: %w", domain.ErrTranscription, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: %w", domain.ErrTranscription, statusError(resp))
	}

	var tr transcriptionResponse
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		return "", fmt.Errorf("%w: decode response: %w", domain.ErrTranscription, err)
	}

	c.log.DebugContext(ctx, "transcription done", slog.Int("audio_bytes", len(audio)), slog.Int("text_len", len(tr.Text)))

	return tr.Text, nil
}
