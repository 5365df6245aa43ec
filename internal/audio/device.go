// Package audio abstracts the microphone. A Device opens at most one
// Stream at a time; the capture service enforces exclusive ownership
// per user session.
package audio

import "context"

// Device is an audio input source.
type Device interface {
	// Open acquires the device and starts capturing. Implementations
	// return domain.ErrDeviceUnavailable when the hardware cannot be
	// acquired.
	Open(ctx context.Context) (Stream, error)
}

// Stream yields encoded audio from an open device.
type Stream interface {
	// Read blocks until the next chunk of encoded audio is available.
	// It returns io.EOF once the stream is closed and drained.
	Read(ctx context.Context) ([]byte, error)

	// Close releases the device. Safe to call more than once.
	Close() error
}
