package domain

import (
	"time"

	"github.com/google/uuid"
)

// CaptureState is the lifecycle state of one recording session.
type CaptureState int

const (
	// CaptureRecording means segments are being captured and sealed on the
	// boundary timer.
	CaptureRecording CaptureState = iota
	// CaptureStopping means stop was requested but the final segment's
	// text has not been appended yet.
	CaptureStopping
	// CaptureFinalizing means the full text is being persisted and
	// summarized.
	CaptureFinalizing
	// CaptureDone is terminal. No further appends or persistence attempts
	// occur.
	CaptureDone
)

func (s CaptureState) String() string {
	switch s {
	case CaptureRecording:
		return "recording"
	case CaptureStopping:
		return "stopping"
	case CaptureFinalizing:
		return "finalizing"
	case CaptureDone:
		return "done"
	default:
		return "unknown"
	}
}

// CaptureSnapshot is a side-effect-free view of an active or finished
// session, used for live display.
type CaptureSnapshot struct {
	SessionID      uuid.UUID
	State          CaptureState
	IsPrivate      bool
	StartedAt      time.Time
	ElapsedSeconds int
	Text           string
	Result         *CaptureResult
}

// CaptureResult is the durable outcome of a finalized session.
// TranscriptID is nil in privacy mode or after a persistence failure.
type CaptureResult struct {
	TranscriptID *uuid.UUID
	SummaryTitle string
	SummaryBody  string
}
