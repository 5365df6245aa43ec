package user

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/recallapp/recall-backend/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByIDFunc               func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	UpdatePersonalizationFunc func(ctx context.Context, id uuid.UUID, text *string) error

	calls struct {
		UpdatePersonalization []struct {
			Ctx  context.Context
			ID   uuid.UUID
			Text *string
		}
	}
	lockUpdatePersonalization sync.RWMutex
}

func (mock *userRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, id)
}

func (mock *userRepoMock) UpdatePersonalization(ctx context.Context, id uuid.UUID, text *string) error {
	if mock.UpdatePersonalizationFunc == nil {
		panic("userRepoMock.UpdatePersonalizationFunc: method is nil but userRepo.UpdatePersonalization was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		ID   uuid.UUID
		Text *string
	}{Ctx: ctx, ID: id, Text: text}
	mock.lockUpdatePersonalization.Lock()
	mock.calls.UpdatePersonalization = append(mock.calls.UpdatePersonalization, callInfo)
	mock.lockUpdatePersonalization.Unlock()
	return mock.UpdatePersonalizationFunc(ctx, id, text)
}

func (mock *userRepoMock) UpdatePersonalizationCalls() []struct {
	Ctx  context.Context
	ID   uuid.UUID
	Text *string
} {
	mock.lockUpdatePersonalization.RLock()
	calls := mock.calls.UpdatePersonalization
	mock.lockUpdatePersonalization.RUnlock()
	return calls
}
