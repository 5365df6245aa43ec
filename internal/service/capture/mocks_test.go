package capture

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/recallapp/recall-backend/internal/domain"
)

var _ transcriber = &transcriberMock{}

type transcriberMock struct {
	TranscribeFunc func(ctx context.Context, audio []byte, filename string) (string, error)

	calls struct {
		Transcribe []struct {
			Ctx      context.Context
			Audio    []byte
			Filename string
		}
	}
	lockTranscribe sync.RWMutex
}

func (mock *transcriberMock) Transcribe(ctx context.Context, audio []byte, filename string) (string, error) {
	if mock.TranscribeFunc == nil {
		panic("transcriberMock.TranscribeFunc: method is nil but transcriber.Transcribe was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Audio    []byte
		Filename string
	}{Ctx: ctx, Audio: audio, Filename: filename}
	mock.lockTranscribe.Lock()
	mock.calls.Transcribe = append(mock.calls.Transcribe, callInfo)
	mock.lockTranscribe.Unlock()
	return mock.TranscribeFunc(ctx, audio, filename)
}

func (mock *transcriberMock) TranscribeCalls() []struct {
	Ctx      context.Context
	Audio    []byte
	Filename string
} {
	mock.lockTranscribe.RLock()
	calls := mock.calls.Transcribe
	mock.lockTranscribe.RUnlock()
	return calls
}

var _ summarizer = &summarizerMock{}

type summarizerMock struct {
	SummarizeFunc func(ctx context.Context, req domain.SummaryRequest) (*domain.SummaryResult, error)

	calls struct {
		Summarize []struct {
			Ctx context.Context
			Req domain.SummaryRequest
		}
	}
	lockSummarize sync.RWMutex
}

func (mock *summarizerMock) Summarize(ctx context.Context, req domain.SummaryRequest) (*domain.SummaryResult, error) {
	if mock.SummarizeFunc == nil {
		panic("summarizerMock.SummarizeFunc: method is nil but summarizer.Summarize was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Req domain.SummaryRequest
	}{Ctx: ctx, Req: req}
	mock.lockSummarize.Lock()
	mock.calls.Summarize = append(mock.calls.Summarize, callInfo)
	mock.lockSummarize.Unlock()
	return mock.SummarizeFunc(ctx, req)
}

func (mock *summarizerMock) SummarizeCalls() []struct {
	Ctx context.Context
	Req domain.SummaryRequest
} {
	mock.lockSummarize.RLock()
	calls := mock.calls.Summarize
	mock.lockSummarize.RUnlock()
	return calls
}

var _ transcriptRepo = &transcriptRepoMock{}

type transcriptRepoMock struct {
	CreateFunc          func(ctx context.Context, t *domain.Transcript) (*domain.Transcript, error)
	UpdateEmbeddingFunc func(ctx context.Context, id uuid.UUID, vec []float32, model string) error

	calls struct {
		Create []struct {
			Ctx context.Context
			T   *domain.Transcript
		}
		UpdateEmbedding []struct {
			Ctx   context.Context
			ID    uuid.UUID
			Vec   []float32
			Model string
		}
	}
	lockCreate          sync.RWMutex
	lockUpdateEmbedding sync.RWMutex
}

func (mock *transcriptRepoMock) Create(ctx context.Context, t *domain.Transcript) (*domain.Transcript, error) {
	if mock.CreateFunc == nil {
		panic("transcriptRepoMock.CreateFunc: method is nil but transcriptRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		T   *domain.Transcript
	}{Ctx: ctx, T: t}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, t)
}

func (mock *transcriptRepoMock) CreateCalls() []struct {
	Ctx context.Context
	T   *domain.Transcript
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *transcriptRepoMock) UpdateEmbedding(ctx context.Context, id uuid.UUID, vec []float32, model string) error {
	if mock.UpdateEmbeddingFunc == nil {
		panic("transcriptRepoMock.UpdateEmbeddingFunc: method is nil but transcriptRepo.UpdateEmbedding was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		ID    uuid.UUID
		Vec   []float32
		Model string
	}{Ctx: ctx, ID: id, Vec: vec, Model: model}
	mock.lockUpdateEmbedding.Lock()
	mock.calls.UpdateEmbedding = append(mock.calls.UpdateEmbedding, callInfo)
	mock.lockUpdateEmbedding.Unlock()
	return mock.UpdateEmbeddingFunc(ctx, id, vec, model)
}

func (mock *transcriptRepoMock) UpdateEmbeddingCalls() []struct {
	Ctx   context.Context
	ID    uuid.UUID
	Vec   []float32
	Model string
} {
	mock.lockUpdateEmbedding.RLock()
	calls := mock.calls.UpdateEmbedding
	mock.lockUpdateEmbedding.RUnlock()
	return calls
}

var _ embedder = &embedderMock{}

type embedderMock struct {
	EmbedFunc          func(ctx context.Context, text string) ([]float32, error)
	EmbeddingModelFunc func() string

	calls struct {
		Embed []struct {
			Ctx  context.Context
			Text string
		}
	}
	lockEmbed sync.RWMutex
}

func (mock *embedderMock) Embed(ctx context.Context, text string) ([]float32, error) {
	if mock.EmbedFunc == nil {
		panic("embedderMock.EmbedFunc: method is nil but embedder.Embed was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Text string
	}{Ctx: ctx, Text: text}
	mock.lockEmbed.Lock()
	mock.calls.Embed = append(mock.calls.Embed, callInfo)
	mock.lockEmbed.Unlock()
	return mock.EmbedFunc(ctx, text)
}

func (mock *embedderMock) EmbedCalls() []struct {
	Ctx  context.Context
	Text string
} {
	mock.lockEmbed.RLock()
	calls := mock.calls.Embed
	mock.lockEmbed.RUnlock()
	return calls
}

func (mock *embedderMock) EmbeddingModel() string {
	if mock.EmbeddingModelFunc == nil {
		return "text-embedding-ada-002"
	}
	return mock.EmbeddingModelFunc()
}

var _ localStore = &localStoreMock{}

type localStoreMock struct {
	AppendFunc func(ctx context.Context, userID uuid.UUID, m domain.LocalMemory) (domain.LocalMemory, error)

	calls struct {
		Append []struct {
			Ctx    context.Context
			UserID uuid.UUID
			M      domain.LocalMemory
		}
	}
	lockAppend sync.RWMutex
}

func (mock *localStoreMock) Append(ctx context.Context, userID uuid.UUID, m domain.LocalMemory) (domain.LocalMemory, error) {
	if mock.AppendFunc == nil {
		panic("localStoreMock.AppendFunc: method is nil but localStore.Append was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		M      domain.LocalMemory
	}{Ctx: ctx, UserID: userID, M: m}
	mock.lockAppend.Lock()
	mock.calls.Append = append(mock.calls.Append, callInfo)
	mock.lockAppend.Unlock()
	return mock.AppendFunc(ctx, userID, m)
}

func (mock *localStoreMock) AppendCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	M      domain.LocalMemory
} {
	mock.lockAppend.RLock()
	calls := mock.calls.Append
	mock.lockAppend.RUnlock()
	return calls
}
