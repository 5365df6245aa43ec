package audio

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/recallapp/recall-backend/internal/domain"
)

// ingestBuffer is how many chunks an IngestStream holds before Push
// starts rejecting. At one chunk per second of client upload cadence
// this covers well over a segment interval of backlog.
const ingestBuffer = 256

// Pusher is implemented by streams fed from outside the process, such
// as chunk uploads over HTTP.
type Pusher interface {
	Push(chunk []byte) error
}

// IngestDevice is the production Device: audio is recorded by the
// client and uploaded in chunks, so opening never touches hardware.
type IngestDevice struct{}

// NewIngestDevice creates an IngestDevice.
func NewIngestDevice() *IngestDevice {
	return &IngestDevice{}
}

// Open returns a fresh stream waiting for uploaded chunks.
func (d *IngestDevice) Open(_ context.Context) (Stream, error) {
	return &IngestStream{chunks: make(chan []byte, ingestBuffer)}, nil
}

// IngestStream buffers uploaded chunks between Push and Read.
type IngestStream struct {
	chunks chan []byte

	mu     sync.Mutex
	closed bool
}

// Push makes one uploaded chunk available to Read. It fails once the
// stream is closed, or when the reader has fallen ingestBuffer chunks
// behind.
func (s *IngestStream) Push(chunk []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return fmt.Errorf("stream closed: %w", domain.ErrConflict)
	}

	select {
	case s.chunks <- chunk:
		return nil
	default:
		return fmt.Errorf("ingest buffer full: %w", domain.ErrConflict)
	}
}

// Read returns the next uploaded chunk, io.EOF after Close, or the
// context error if ctx ends first.
func (s *IngestStream) Read(ctx context.Context) ([]byte, error) {
	select {
	case chunk, ok := <-s.chunks:
		if !ok {
			return nil, io.EOF
		}
		return chunk, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Close stops accepting chunks; buffered ones still drain through
// Read before io.EOF.
func (s *IngestStream) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	close(s.chunks)
	return nil
}
