package audio

import (
	"context"
	"io"
	"sync"

	"github.com/recallapp/recall-backend/internal/domain"
)

// FakeDevice is a scriptable Device for tests. The zero value opens
// successfully and yields an empty stream.
type FakeDevice struct {
	// OpenErr, when set, is returned from Open instead of a stream.
	OpenErr error

	mu      sync.Mutex
	streams []*FakeStream
}

// Open returns a new FakeStream, or OpenErr if set.
func (d *FakeDevice) Open(_ context.Context) (Stream, error) {
	if d.OpenErr != nil {
		return nil, d.OpenErr
	}

	s := &FakeStream{chunks: make(chan []byte, 64)}
	d.mu.Lock()
	d.streams = append(d.streams, s)
	d.mu.Unlock()

	return s, nil
}

// UnavailableDevice returns a FakeDevice whose Open always fails with
// domain.ErrDeviceUnavailable.
func UnavailableDevice() *FakeDevice {
	return &FakeDevice{OpenErr: domain.ErrDeviceUnavailable}
}

// Streams returns every stream opened so far.
func (d *FakeDevice) Streams() []*FakeStream {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]*FakeStream(nil), d.streams...)
}

// FakeStream is the Stream returned by FakeDevice. Tests push chunks
// with Push; Read hands them out in order.
type FakeStream struct {
	chunks chan []byte

	mu     sync.Mutex
	closed bool
}

// Push makes one chunk available to Read. Pushing to a closed stream
// is a no-op.
func (s *FakeStream) Push(chunk []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.chunks <- chunk
	return nil
}

// Read returns the next pushed chunk, io.EOF after Close, or the
// context error if ctx ends first.
func (s *FakeStream) Read(ctx context.Context) ([]byte, error) {
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

// Close marks the stream closed; pending chunks still drain through
// Read before io.EOF.
func (s *FakeStream) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	close(s.chunks)
	return nil
}

// Closed reports whether Close has been called.
func (s *FakeStream) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}
