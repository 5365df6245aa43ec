package capture

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/recallapp/recall-backend/internal/domain"
)

func TestIngest_NoSession(t *testing.T) {
	t.Parallel()

	f := newFixture()
	ctx, _ := userCtx()

	err := f.svc.Ingest(ctx, []byte("chunk"))
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestIngest_Unauthorized(t *testing.T) {
	t.Parallel()

	f := newFixture()

	err := f.svc.Ingest(context.Background(), []byte("chunk"))
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestIngest_ChunkReachesTranscript(t *testing.T) {
	t.Parallel()

	f := newFixture()
	ctx, _ := userCtx()

	if _, err := f.svc.Start(ctx, StartParams{}); err != nil {
		t.Fatalf("start: %v", err)
	}

	if err := f.svc.Ingest(ctx, []byte("hello from the client")); err != nil {
		t.Fatalf("ingest: %v", err)
	}

	// Let the read loop drain the chunk and a boundary tick seal it.
	time.Sleep(100 * time.Millisecond)

	stopWithDeadline(t, f.svc, ctx)

	creates := f.transcripts.CreateCalls()
	if len(creates) != 1 {
		t.Fatalf("expected 1 transcript, got %d", len(creates))
	}
	if !strings.Contains(creates[0].T.Text, "hello from the client") {
		t.Fatalf("expected ingested audio in transcript, got %q", creates[0].T.Text)
	}
}

func TestIngest_EmptyChunk(t *testing.T) {
	t.Parallel()

	f := newFixture()
	ctx, _ := userCtx()

	if _, err := f.svc.Start(ctx, StartParams{}); err != nil {
		t.Fatalf("start: %v", err)
	}
	defer stopWithDeadline(t, f.svc, ctx)

	err := f.svc.Ingest(ctx, nil)
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestIngest_AfterStop(t *testing.T) {
	t.Parallel()

	f := newFixture()
	ctx, _ := userCtx()

	if _, err := f.svc.Start(ctx, StartParams{}); err != nil {
		t.Fatalf("start: %v", err)
	}
	stopWithDeadline(t, f.svc, ctx)

	err := f.svc.Ingest(ctx, []byte("late"))
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after stop, got %v", err)
	}
}
