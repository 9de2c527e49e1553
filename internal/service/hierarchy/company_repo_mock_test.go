package hierarchy

import (
	"context"
	"sync"

	"github.com/gearbin/gearbin-backend/internal/domain"
	"github.com/google/uuid"
)

var _ companyRepo = &companyRepoMock{}

type companyRepoMock struct {
	GetByIDFunc      func(ctx context.Context, id uuid.UUID) (*domain.Company, error)
	ListChildrenFunc func(ctx context.Context, parentIDs []uuid.UUID) ([]domain.Company, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		ListChildren []struct {
			Ctx       context.Context
			ParentIDs []uuid.UUID
		}
	}
	lockGetByID      sync.RWMutex
	lockListChildren sync.RWMutex
}

func (mock *companyRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Company, error) {
	if mock.GetByIDFunc == nil {
		panic("companyRepoMock.GetByIDFunc: method is nil but companyRepo.GetByID was just called")
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

func (mock *companyRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *companyRepoMock) ListChildren(ctx context.Context, parentIDs []uuid.UUID) ([]domain.Company, error) {
	if mock.ListChildrenFunc == nil {
		panic("companyRepoMock.ListChildrenFunc: method is nil but companyRepo.ListChildren was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ParentIDs []uuid.UUID
	}{Ctx: ctx, ParentIDs: parentIDs}
	mock.lockListChildren.Lock()
	mock.calls.ListChildren = append(mock.calls.ListChildren, callInfo)
	mock.lockListChildren.Unlock()
	return mock.ListChildrenFunc(ctx, parentIDs)
}

func (mock *companyRepoMock) ListChildrenCalls() []struct {
	Ctx       context.Context
	ParentIDs []uuid.UUID
} {
	mock.lockListChildren.RLock()
	calls := mock.calls.ListChildren
	mock.lockListChildren.RUnlock()
	return calls
}
