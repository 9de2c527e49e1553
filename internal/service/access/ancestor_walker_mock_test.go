package access

import (
	"context"
	"sync"

	"github.com/gearbin/gearbin-backend/internal/domain"
	"github.com/google/uuid"
)

var _ ancestorWalker = &ancestorWalkerMock{}

type ancestorWalkerMock struct {
	AncestorsFunc func(ctx context.Context, companyID uuid.UUID) ([]domain.Company, error)

	calls struct {
		Ancestors []struct {
			Ctx       context.Context
			CompanyID uuid.UUID
		}
	}
	lockAncestors sync.RWMutex
}

func (mock *ancestorWalkerMock) Ancestors(ctx context.Context, companyID uuid.UUID) ([]domain.Company, error) {
	if mock.AncestorsFunc == nil {
		panic("ancestorWalkerMock.AncestorsFunc: method is nil but ancestorWalker.Ancestors was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		CompanyID uuid.UUID
	}{Ctx: ctx, CompanyID: companyID}
	mock.lockAncestors.Lock()
	mock.calls.Ancestors = append(mock.calls.Ancestors, callInfo)
	mock.lockAncestors.Unlock()
	return mock.AncestorsFunc(ctx, companyID)
}

func (mock *ancestorWalkerMock) AncestorsCalls() []struct {
	Ctx       context.Context
	CompanyID uuid.UUID
} {
	mock.lockAncestors.RLock()
	calls := mock.calls.Ancestors
	mock.lockAncestors.RUnlock()
	return calls
}
