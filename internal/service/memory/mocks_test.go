package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/recallapp/recall-backend/internal/domain"
)

var _ transcriptRepo = &transcriptRepoMock{}

type transcriptRepoMock struct {
	GetByIDFunc    func(ctx context.Context, id uuid.UUID) (*domain.Transcript, error)
	ListByUserFunc func(ctx context.Context, userID uuid.UUID) ([]*domain.Transcript, error)
	DeleteFunc     func(ctx context.Context, id uuid.UUID) error

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		ListByUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockGetByID    sync.RWMutex
	lockListByUser sync.RWMutex
	lockDelete     sync.RWMutex
}

func (mock *transcriptRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Transcript, error) {
	if mock.GetByIDFunc == nil {
		panic("transcriptRepoMock.GetByIDFunc: method is nil but transcriptRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *transcriptRepoMock) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Transcript, error) {
	if mock.ListByUserFunc == nil {
		panic("transcriptRepoMock.ListByUserFunc: method is nil but transcriptRepo.ListByUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockListByUser.Lock()
	mock.calls.ListByUser = append(mock.calls.ListByUser, callInfo)
	mock.lockListByUser.Unlock()
	return mock.ListByUserFunc(ctx, userID)
}

func (mock *transcriptRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("transcriptRepoMock.DeleteFunc: method is nil but transcriptRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *transcriptRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

var _ summaryRepo = &summaryRepoMock{}

type summaryRepoMock struct {
	GetByTranscriptFunc func(ctx context.Context, transcriptID uuid.UUID) (*domain.Summary, error)
	UpdateBodyFunc      func(ctx context.Context, id uuid.UUID, body string) error

	calls struct {
		UpdateBody []struct {
			Ctx  context.Context
			ID   uuid.UUID
			Body string
		}
	}
	lockUpdateBody sync.RWMutex
}

func (mock *summaryRepoMock) GetByTranscript(ctx context.Context, transcriptID uuid.UUID) (*domain.Summary, error) {
	if mock.GetByTranscriptFunc == nil {
		panic("summaryRepoMock.GetByTranscriptFunc: method is nil but summaryRepo.GetByTranscript was just called")
	}
	return mock.GetByTranscriptFunc(ctx, transcriptID)
}

func (mock *summaryRepoMock) UpdateBody(ctx context.Context, id uuid.UUID, body string) error {
	if mock.UpdateBodyFunc == nil {
		panic("summaryRepoMock.UpdateBodyFunc: method is nil but summaryRepo.UpdateBody was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		ID   uuid.UUID
		Body string
	}{Ctx: ctx, ID: id, Body: body}
	mock.lockUpdateBody.Lock()
	mock.calls.UpdateBody = append(mock.calls.UpdateBody, callInfo)
	mock.lockUpdateBody.Unlock()
	return mock.UpdateBodyFunc(ctx, id, body)
}

func (mock *summaryRepoMock) UpdateBodyCalls() []struct {
	Ctx  context.Context
	ID   uuid.UUID
	Body string
} {
	mock.lockUpdateBody.RLock()
	calls := mock.calls.UpdateBody
	mock.lockUpdateBody.RUnlock()
	return calls
}

var _ localStore = &localStoreMock{}

type localStoreMock struct {
	ListByUserFunc func(ctx context.Context, userID uuid.UUID) ([]domain.LocalMemory, error)
	GetFunc        func(ctx context.Context, userID, id uuid.UUID) (domain.LocalMemory, error)
	DeleteFunc     func(ctx context.Context, userID, id uuid.UUID) error

	calls struct {
		Delete []struct {
			Ctx    context.Context
			UserID uuid.UUID
			ID     uuid.UUID
		}
	}
	lockDelete sync.RWMutex
}

func (mock *localStoreMock) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.LocalMemory, error) {
	if mock.ListByUserFunc == nil {
		panic("localStoreMock.ListByUserFunc: method is nil but localStore.ListByUser was just called")
	}
	return mock.ListByUserFunc(ctx, userID)
}

func (mock *localStoreMock) Get(ctx context.Context, userID, id uuid.UUID) (domain.LocalMemory, error) {
	if mock.GetFunc == nil {
		panic("localStoreMock.GetFunc: method is nil but localStore.Get was just called")
	}
	return mock.GetFunc(ctx, userID, id)
}

func (mock *localStoreMock) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("localStoreMock.DeleteFunc: method is nil but localStore.Delete was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		ID     uuid.UUID
	}{Ctx: ctx, UserID: userID, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, userID, id)
}

func (mock *localStoreMock) DeleteCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	ID     uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
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

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct {
			Ctx context.Context
			Fn  func(ctx context.Context) error
		}
	}
	lockRunInTx sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Fn  func(ctx context.Context) error
	}{Ctx: ctx, Fn: fn}
	mock.lockRunInTx.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, callInfo)
	mock.lockRunInTx.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() []struct {
	Ctx context.Context
	Fn  func(ctx context.Context) error
} {
	mock.lockRunInTx.RLock()
	calls := mock.calls.RunInTx
	mock.lockRunInTx.RUnlock()
	return calls
}
