package openai

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/recallapp/recall-backend/internal/domain"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestClient(baseURL string) *Client {
	return New(Config{
		APIKey:          "test-key",
		BaseURL:         baseURL,
		WhisperModel:    "whisper-1",
		CompletionModel: "gpt-3.5-turbo",
		EmbeddingModel:  "text-embedding-ada-002",
	}, newTestLogger())
}

func TestClient_Transcribe_Success(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/audio/transcriptions" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("Authorization = %q", got)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("parse multipart: %v", err)
		}
		if got := r.FormValue("model"); got != "whisper-1" {
			t.Errorf("model = %q, want whisper-1", got)
		}
		f, hdr, err := r.FormFile("file")
		if err != nil {
			t.Fatalf("form file: %v", err)
		}
		defer f.Close()
		if hdr.Filename != "segment-3.webm" {
			t.Errorf("filename = %q", hdr.Filename)
		}
		data, _ := io.ReadAll(f)
		if string(data) != "fake-webm-bytes" {
			t.Errorf("file payload = %q", data)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"text": "remember to water the plants"}`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	text, err := c.Transcribe(context.Background(), []byte("fake-webm-bytes"), "segment-3.webm")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "remember to water the plants" {
		t.Errorf("text = %q", text)
	}
}

func TestClient_Transcribe_RetriesOnceOn5xx(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		// The retried request must carry a complete body again.
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("parse multipart on retry: %v", err)
		}
		w.Write([]byte(`{"text": "ok"}`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	text, err := c.Transcribe(context.Background(), []byte("audio"), "a.webm")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "ok" {
		t.Errorf("text = %q, want ok", text)
	}
	if got := calls.Load(); got != 2 {
		t.Errorf("calls = %d, want 2", got)
	}
}

func TestClient_Transcribe_FailureAfterRetry(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	_, err := c.Transcribe(context.Background(), []byte("audio"), "a.webm")
	if !errors.Is(err, domain.ErrTranscription) {
		t.Fatalf("err = %v, want ErrTranscription", err)
	}
	if got := calls.Load(); got != 2 {
		t.Errorf("calls = %d, want 2 (single retry)", got)
	}
}

func TestClient_Transcribe_NoRetryOn4xx(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	_, err := c.Transcribe(context.Background(), []byte("audio"), "a.webm")
	if !errors.Is(err, domain.ErrTranscription) {
		t.Fatalf("err = %v, want ErrTranscription", err)
	}
	if got := calls.Load(); got != 1 {
		t.Errorf("calls = %d, want 1", got)
	}
}

func TestClient_Complete_Success(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		var req struct {
			Model    string `json:"model"`
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
			Temperature float64 `json:"temperature"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.Model != "gpt-3.5-turbo" {
			t.Errorf("model = %q", req.Model)
		}
		if req.Temperature != 0.3 {
			t.Errorf("temperature = %v", req.Temperature)
		}
		if len(req.Messages) != 1 || req.Messages[0].Role != "user" || req.Messages[0].Content != "What did I do today?" {
			t.Errorf("messages = %+v", req.Messages)
		}

		w.Write([]byte(`{"choices": [{"message": {"content": "You talked about hiking."}}]}`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	out, err := c.Complete(context.Background(), "What did I do today?", 0.3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "You talked about hiking." {
		t.Errorf("out = %q", out)
	}
}

func TestClient_Complete_EmptyChoices(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices": []}`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	_, err := c.Complete(context.Background(), "q", 0)
	if !errors.Is(err, domain.ErrCompletion) {
		t.Fatalf("err = %v, want ErrCompletion", err)
	}
}

func TestClient_Embed_Success(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/embeddings" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		var req struct {
			Model string `json:"model"`
			Input string `json:"input"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.Model != "text-embedding-ada-002" {
			t.Errorf("model = %q", req.Model)
		}
		if req.Input != "some transcript text" {
			t.Errorf("input = %q", req.Input)
		}

		w.Write([]byte(`{"data": [{"embedding": [0.1, -0.2, 0.3]}]}`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	vec, err := c.Embed(context.Background(), "some transcript text")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(vec) != 3 || vec[0] != 0.1 {
		t.Errorf("vec = %v", vec)
	}
}

func TestClient_Embed_ServerError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	_, err := c.Embed(context.Background(), "text")
	if !errors.Is(err, domain.ErrEmbedding) {
		t.Fatalf("err = %v, want ErrEmbedding", err)
	}
}
