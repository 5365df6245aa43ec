package qa

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/recallapp/recall-backend/internal/domain"
)

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

var _ transcriptSearcher = &transcriptSearcherMock{}

type transcriptSearcherMock struct {
	FindNearestFunc func(ctx context.Context, userID uuid.UUID, vec []float32, model string, k int) ([]*domain.Transcript, error)

	calls struct {
		FindNearest []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Vec    []float32
			Model  string
			K      int
		}
	}
	lockFindNearest sync.RWMutex
}

func (mock *transcriptSearcherMock) FindNearest(ctx context.Context, userID uuid.UUID, vec []float32, model string, k int) ([]*domain.Transcript, error) {
	if mock.FindNearestFunc == nil {
		panic("transcriptSearcherMock.FindNearestFunc: method is nil but transcriptSearcher.FindNearest was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Vec    []float32
		Model  string
		K      int
	}{Ctx: ctx, UserID: userID, Vec: vec, Model: model, K: k}
	mock.lockFindNearest.Lock()
	mock.calls.FindNearest = append(mock.calls.FindNearest, callInfo)
	mock.lockFindNearest.Unlock()
	return mock.FindNearestFunc(ctx, userID, vec, model, k)
}

func (mock *transcriptSearcherMock) FindNearestCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Vec    []float32
	Model  string
	K      int
} {
	mock.lockFindNearest.RLock()
	calls := mock.calls.FindNearest
	mock.lockFindNearest.RUnlock()
	return calls
}

var _ questionRepo = &questionRepoMock{}

type questionRepoMock struct {
	CreateFunc     func(ctx context.Context, q *domain.Question) (*domain.Question, error)
	GetByIDFunc    func(ctx context.Context, id uuid.UUID) (*domain.Question, error)
	ListByUserFunc func(ctx context.Context, userID uuid.UUID) ([]*domain.Question, error)
	DeleteFunc     func(ctx context.Context, id uuid.UUID) error

	calls struct {
		Create []struct {
			Ctx context.Context
			Q   *domain.Question
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockCreate sync.RWMutex
	lockDelete sync.RWMutex
}

func (mock *questionRepoMock) Create(ctx context.Context, q *domain.Question) (*domain.Question, error) {
	if mock.CreateFunc == nil {
		panic("questionRepoMock.CreateFunc: method is nil but questionRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Q   *domain.Question
	}{Ctx: ctx, Q: q}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, q)
}

func (mock *questionRepoMock) CreateCalls() []struct {
	Ctx context.Context
	Q   *domain.Question
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *questionRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Question, error) {
	if mock.GetByIDFunc == nil {
		panic("questionRepoMock.GetByIDFunc: method is nil but questionRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, id)
}

func (mock *questionRepoMock) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Question, error) {
	if mock.ListByUserFunc == nil {
		panic("questionRepoMock.ListByUserFunc: method is nil but questionRepo.ListByUser was just called")
	}
	return mock.ListByUserFunc(ctx, userID)
}

func (mock *questionRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("questionRepoMock.DeleteFunc: method is nil but questionRepo.Delete was just called")
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

func (mock *questionRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

func (mock *userRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, id)
}
