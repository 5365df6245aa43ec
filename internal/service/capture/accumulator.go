package capture

import (
	"strings"
	"sync"
)

// segmentSeparator divides segment contributions in the accumulated
// text. The final segment is appended without it so the transcript
// never ends with a dangling divider.
const segmentSeparator = "━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━"

type segmentResult struct {
	timestamp string
	text      string
	final     bool
}

// accumulator serializes segment text by sequence number. Transcription
// responses may arrive out of order; a result whose predecessors have
// not been applied yet is parked until they are.
type accumulator struct {
	mu      sync.Mutex
	next    int
	pending map[int]segmentResult
	text    strings.Builder

	// finalDone is closed once the final segment's text has been applied.
	finalDone chan struct{}
	finalSeen bool
}

func newAccumulator() *accumulator {
	return &accumulator{
		pending:   make(map[int]segmentResult),
		finalDone: make(chan struct{}),
	}
}

// append records the result for one sealed segment. Safe for concurrent
// use; results apply strictly in sequence order regardless of arrival
// order. Empty text is still applied with its timestamp.
func (a *accumulator) append(seq int, r segmentResult) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.pending[seq] = r
	for {
		next, ok := a.pending[a.next]
		if !ok {
			return
		}
		delete(a.pending, a.next)
		a.next++

		a.text.WriteString(next.timestamp)
		a.text.WriteString("\n")
		a.text.WriteString(next.text)
		if !next.final {
			a.text.WriteString("\n")
			a.text.WriteString(segmentSeparator)
			a.text.WriteString("\n")
		}

		if next.final && !a.finalSeen {
			a.finalSeen = true
			close(a.finalDone)
		}
	}
}

// snapshot returns the current accumulated text without mutating it.
func (a *accumulator) snapshot() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.text.String()
}
