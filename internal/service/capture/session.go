package capture

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/recallapp/recall-backend/internal/audio"
	"github.com/recallapp/recall-backend/internal/domain"
)

// session is one recording run. The run loop owns the boundary timer;
// the read loop drains the audio stream into the current segment
// buffer; transcription goroutines feed the accumulator.
type session struct {
	id        uuid.UUID
	userID    uuid.UUID
	isPrivate bool
	title     string
	notes     string
	startedAt time.Time

	svc    *Service
	log    *slog.Logger
	stream audio.Stream
	cancel context.CancelFunc
	acc    *accumulator

	stopOnce sync.Once
	stopCh   chan struct{}
	done     chan struct{}

	mu        sync.Mutex
	state     domain.CaptureState
	seq       int
	buf       []byte
	stoppedAt time.Time
	result    *domain.CaptureResult
}

func (s *session) setState(state domain.CaptureState) {
	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
}

func (s *session) isDone() bool {
	select {
	case <-s.done:
		return true
	default:
		return false
	}
}

// requestStop arms the stop path exactly once. Subsequent calls are
// no-ops; callers wait on done for the result.
func (s *session) requestStop() {
	s.stopOnce.Do(func() {
		s.mu.Lock()
		s.stoppedAt = time.Now()
		s.mu.Unlock()
		close(s.stopCh)
	})
}

// run drives the boundary timer until stop, then finalizes. ctx is
// detached from the originating request so an early HTTP disconnect
// does not kill the recording.
func (s *session) run(ctx context.Context) {
	defer s.cancel()

	go s.readLoop(ctx)

	ticker := time.NewTicker(s.svc.cfg.SegmentInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.seal(ctx, false)
		case <-s.stopCh:
			// The timer must be dead before the final seal so no extra
			// segment gets scheduled after the stream closes.
			ticker.Stop()
			s.setState(domain.CaptureStopping)
			s.seal(ctx, true)
			if err := s.stream.Close(); err != nil {
				s.log.WarnContext(ctx, "stream close failed", slog.String("error", err.Error()))
			}
			s.finalize(ctx)
			return
		}
	}
}

// readLoop drains the audio stream into the current segment buffer.
func (s *session) readLoop(ctx context.Context) {
	for {
		chunk, err := s.stream.Read(ctx)
		if err != nil {
			return
		}
		s.mu.Lock()
		s.buf = append(s.buf, chunk...)
		s.mu.Unlock()
	}
}

// seal closes the current segment and hands it to transcription
// asynchronously. A new segment begins buffering immediately, so no
// audio between boundaries is lost. The timestamp is taken at seal
// time, not at transcription-response time.
func (s *session) seal(ctx context.Context, final bool) {
	s.mu.Lock()
	data := s.buf
	s.buf = nil
	seq := s.seq
	s.seq++
	s.mu.Unlock()

	timestamp := time.Now().Format("03:04 PM")

	go s.transcribe(ctx, seq, data, timestamp, final)
}

// transcribe converts one sealed segment to text and appends it in
// sequence order. A failed transcription degrades to an empty
// contribution; the session continues.
func (s *session) transcribe(ctx context.Context, seq int, data []byte, timestamp string, final bool) {
	text, err := s.svc.transcriber.Transcribe(ctx, data, fmt.Sprintf("segment-%d.webm", seq))
	if err != nil {
		s.log.ErrorContext(ctx, "segment transcription failed",
			slog.Int("segment", seq),
			slog.String("error", err.Error()),
		)
		text = ""
	}

	s.acc.append(seq, segmentResult{timestamp: timestamp, text: text, final: final})
}

// finalize turns the accumulated buffer into durable artifacts. Every
// adapter failure here degrades rather than aborts: the user always
// gets the best outcome the remaining collaborators can produce.
func (s *session) finalize(ctx context.Context) {
	// The one synchronization barrier in the pipeline: the final
	// segment's append must land before the text snapshot.
	select {
	case <-s.acc.finalDone:
	case <-time.After(s.svc.cfg.TranscriptionTimeout):
		s.log.ErrorContext(ctx, "finalization proceeding without final segment",
			slog.String("error", domain.ErrTranscriptionTimeout.Error()),
		)
	}

	s.setState(domain.CaptureFinalizing)

	text := strings.TrimSpace(s.acc.snapshot())

	s.mu.Lock()
	duration := int(s.stoppedAt.Sub(s.startedAt).Seconds())
	s.mu.Unlock()

	var transcriptID *uuid.UUID
	if !s.isPrivate && text != "" {
		tr, err := s.svc.transcripts.Create(ctx, &domain.Transcript{
			ID:              uuid.New(),
			UserID:          s.userID,
			Text:            text,
			DurationSeconds: duration,
			CreatedAt:       s.startedAt,
		})
		if err != nil {
			// Persistence failure is not fatal: summarize the raw text so
			// the user still sees a result.
			s.log.ErrorContext(ctx, "transcript persistence failed", slog.String("error", err.Error()))
		} else {
			transcriptID = &tr.ID
			s.embed(ctx, tr.ID, text)
		}
	}

	result, err := s.svc.summarizer.Summarize(ctx, domain.SummaryRequest{
		TranscriptID: transcriptID,
		RawText:      text,
		Title:        s.title,
		Notes:        s.notes,
	})
	if err != nil {
		s.log.ErrorContext(ctx, "summarization failed", slog.String("error", err.Error()))
		title := strings.TrimSpace(s.title)
		if title == "" {
			title = "Untitled"
		}
		result = &domain.SummaryResult{
			Title: title,
			Body:  "• Summary could not be generated. You can re-summarize this memory later.",
		}
	}

	if s.isPrivate && text != "" {
		_, err := s.svc.local.Append(ctx, s.userID, domain.LocalMemory{
			ID:              uuid.New(),
			Text:            text,
			DurationSeconds: duration,
			SummaryTitle:    result.Title + " (Private)",
			SummaryText:     result.Body,
			SummaryNotes:    strings.TrimSpace(s.notes),
			CreatedAt:       time.Now().UTC(),
		})
		if err != nil {
			s.log.ErrorContext(ctx, "local memory persistence failed", slog.String("error", err.Error()))
		}
	}

	s.mu.Lock()
	s.result = &domain.CaptureResult{
		TranscriptID: transcriptID,
		SummaryTitle: result.Title,
		SummaryBody:  result.Body,
	}
	s.state = domain.CaptureDone
	s.mu.Unlock()

	s.log.InfoContext(ctx, "session finalized",
		slog.String("session_id", s.id.String()),
		slog.Bool("private", s.isPrivate),
		slog.Bool("persisted", transcriptID != nil),
		slog.Int("duration_seconds", duration),
	)

	close(s.done)
}

// embed backfills the similarity vector for a saved transcript.
// Best-effort: an embedding failure leaves the transcript readable but
// invisible to retrieval.
func (s *session) embed(ctx context.Context, id uuid.UUID, text string) {
	vec, err := s.svc.embedder.Embed(ctx, text)
	if err != nil {
		s.log.ErrorContext(ctx, "transcript embedding failed", slog.String("error", err.Error()))
		return
	}
	if err := s.svc.transcripts.UpdateEmbedding(ctx, id, vec, s.svc.embedder.EmbeddingModel()); err != nil {
		s.log.ErrorContext(ctx, "embedding persistence failed", slog.String("error", err.Error()))
	}
}

// snapshot returns a side-effect-free view of the session.
func (s *session) snapshot() *domain.CaptureSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	elapsed := time.Since(s.startedAt)
	if !s.stoppedAt.IsZero() {
		elapsed = s.stoppedAt.Sub(s.startedAt)
	}

	return &domain.CaptureSnapshot{
		SessionID:      s.id,
		State:          s.state,
		IsPrivate:      s.isPrivate,
		StartedAt:      s.startedAt,
		ElapsedSeconds: int(elapsed.Seconds()),
		Text:           s.acc.snapshot(),
		Result:         s.result,
	}
}
