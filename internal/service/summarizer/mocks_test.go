package summarizer

import (
	"context"
	"sync"

	"github.com/recallapp/recall-backend/internal/domain"
)

var _ completer = &completerMock{}

type completerMock struct {
	CompleteFunc func(ctx context.Context, prompt string, temperature float64) (string, error)

	calls struct {
		Complete []struct {
			Ctx         context.Context
			Prompt      string
			Temperature float64
		}
	}
	lockComplete sync.RWMutex
}

func (mock *completerMock) Complete(ctx context.Context, prompt string, temperature float64) (string, error) {
	if mock.CompleteFunc == nil {
		panic("completerMock.CompleteFunc: method is nil but completer.Complete was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		Prompt      string
		Temperature float64
	}{Ctx: ctx, Prompt: prompt, Temperature: temperature}
	mock.lockComplete.Lock()
	mock.calls.Complete = append(mock.calls.Complete, callInfo)
	mock.lockComplete.Unlock()
	return mock.CompleteFunc(ctx, prompt, temperature)
}

func (mock *completerMock) CompleteCalls() []struct {
	Ctx         context.Context
	Prompt      string
	Temperature float64
} {
	mock.lockComplete.RLock()
	calls := mock.calls.Complete
	mock.lockComplete.RUnlock()
	return calls
}

var _ summaryRepo = &summaryRepoMock{}

type summaryRepoMock struct {
	UpsertByTranscriptFunc func(ctx context.Context, s *domain.Summary) (*domain.Summary, error)

	calls struct {
		UpsertByTranscript []struct {
			Ctx context.Context
			S   *domain.Summary
		}
	}
	lockUpsertByTranscript sync.RWMutex
}

func (mock *summaryRepoMock) UpsertByTranscript(ctx context.Context, s *domain.Summary) (*domain.Summary, error) {
	if mock.UpsertByTranscriptFunc == nil {
		panic("summaryRepoMock.UpsertByTranscriptFunc: method is nil but summaryRepo.UpsertByTranscript was just called")
	}
	callInfo := struct {
		Ctx context.Context
		S   *domain.Summary
	}{Ctx: ctx, S: s}
	mock.lockUpsertByTranscript.Lock()
	mock.calls.UpsertByTranscript = append(mock.calls.UpsertByTranscript, callInfo)
	mock.lockUpsertByTranscript.Unlock()
	return mock.UpsertByTranscriptFunc(ctx, s)
}

func (mock *summaryRepoMock) UpsertByTranscriptCalls() []struct {
	Ctx context.Context
	S   *domain.Summary
} {
	mock.lockUpsertByTranscript.RLock()
	calls := mock.calls.UpsertByTranscript
	mock.lockUpsertByTranscript.RUnlock()
	return calls
}
