package access

import (
	"context"
	"sync"

	"github.com/gearbin/gearbin-backend/internal/domain"
	"github.com/google/uuid"
)

var _ companyRepo = &companyRepoMock{}

type companyRepoMock struct {
	GetByIDsFunc     func(ctx context.Context, ids []uuid.UUID) ([]domain.Company, error)
	ListChildrenFunc func(ctx context.Context, parentIDs []uuid.UUID) ([]domain.Company, error)

	calls struct {
		GetByIDs []struct {
			Ctx context.Context
			Ids []uuid.UUID
		}
		ListChildren []struct {
			Ctx       context.Context
			ParentIDs []uuid.UUID
		}
	}
	lockGetByIDs     sync.RWMutex
	lockListChildren sync.RWMutex
}

func (mock *companyRepoMock) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Company, error) {
	if mock.GetByIDsFunc == nil {
		panic("companyRepoMock.GetByIDsFunc: method is nil but companyRepo.GetByIDs was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Ids []uuid.UUID
	}{Ctx: ctx, Ids: ids}
	mock.lockGetByIDs.Lock()
	mock.calls.GetByIDs = append(mock.calls.GetByIDs, callInfo)
	mock.lockGetByIDs.Unlock()
	return mock.GetByIDsFunc(ctx, ids)
}

func (mock *companyRepoMock) GetByIDsCalls() []struct {
	Ctx context.Context
	Ids []uuid.UUID
} {
	mock.lockGetByIDs.RLock()
	calls := mock.calls.GetByIDs
	mock.lockGetByIDs.RUnlock()
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
