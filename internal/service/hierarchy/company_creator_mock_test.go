package hierarchy

import (
	"context"
	"sync"

	"github.com/gearbin/gearbin-backend/internal/domain"
	"github.com/gearbin/gearbin-backend/internal/service/directory"
)

var _ companyCreator = &companyCreatorMock{}

type companyCreatorMock struct {
	CreateCompanyFunc func(ctx context.Context, draft directory.CompanyDraft) (*domain.Company, error)

	calls struct {
		CreateCompany []struct {
			Ctx   context.Context
			Draft directory.CompanyDraft
		}
	}
	lockCreateCompany sync.RWMutex
}

func (mock *companyCreatorMock) CreateCompany(ctx context.Context, draft directory.CompanyDraft) (*domain.Company, error) {
	if mock.CreateCompanyFunc == nil {
		panic("companyCreatorMock.CreateCompanyFunc: method is nil but companyCreator.CreateCompany was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Draft directory.CompanyDraft
	}{Ctx: ctx, Draft: draft}
	mock.lockCreateCompany.Lock()
	mock.calls.CreateCompany = append(mock.calls.CreateCompany, callInfo)
	mock.lockCreateCompany.Unlock()
	return mock.CreateCompanyFunc(ctx, draft)
}

func (mock *companyCreatorMock) CreateCompanyCalls() []struct {
	Ctx   context.Context
	Draft directory.CompanyDraft
} {
	mock.lockCreateCompany.RLock()
	calls := mock.calls.CreateCompany
	mock.lockCreateCompany.RUnlock()
	return calls
}
