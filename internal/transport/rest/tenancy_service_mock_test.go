package rest

import (
	"context"
	"sync"

	"github.com/gearbin/gearbin-backend/internal/service/tenancy"
)

var _ tenancyService = &tenancyServiceMock{}

type tenancyServiceMock struct {
	CreateCompanyFunc func(ctx context.Context, in tenancy.CreateCompanyInput) (*tenancy.Affiliation, error)
	JoinCompanyFunc   func(ctx context.Context, in tenancy.JoinCompanyInput) (*tenancy.Affiliation, error)
	SwitchCompanyFunc func(ctx context.Context, in tenancy.SwitchCompanyInput) (*tenancy.Affiliation, error)

	calls struct {
		CreateCompany []struct {
			Ctx context.Context
			In  tenancy.CreateCompanyInput
		}
		JoinCompany []struct {
			Ctx context.Context
			In  tenancy.JoinCompanyInput
		}
		SwitchCompany []struct {
			Ctx context.Context
			In  tenancy.SwitchCompanyInput
		}
	}
	lockCreateCompany sync.RWMutex
	lockJoinCompany   sync.RWMutex
	lockSwitchCompany sync.RWMutex
}

func (mock *tenancyServiceMock) CreateCompany(ctx context.Context, in tenancy.CreateCompanyInput) (*tenancy.Affiliation, error) {
	if mock.CreateCompanyFunc == nil {
		panic("tenancyServiceMock.CreateCompanyFunc: method is nil but tenancyService.CreateCompany was just called")
	}
	callInfo := struct {
		Ctx context.Context
		In  tenancy.CreateCompanyInput
	}{Ctx: ctx, In: in}
	mock.lockCreateCompany.Lock()
	mock.calls.CreateCompany = append(mock.calls.CreateCompany, callInfo)
	mock.lockCreateCompany.Unlock()
	return mock.CreateCompanyFunc(ctx, in)
}

func (mock *tenancyServiceMock) CreateCompanyCalls() []struct {
	Ctx context.Context
	In  tenancy.CreateCompanyInput
} {
	mock.lockCreateCompany.RLock()
	calls := mock.calls.CreateCompany
	mock.lockCreateCompany.RUnlock()
	return calls
}

func (mock *tenancyServiceMock) JoinCompany(ctx context.Context, in tenancy.JoinCompanyInput) (*tenancy.Affiliation, error) {
	if mock.JoinCompanyFunc == nil {
		panic("tenancyServiceMock.JoinCompanyFunc: method is nil but tenancyService.JoinCompany was just called")
	}
	callInfo := struct {
		Ctx context.Context
		In  tenancy.JoinCompanyInput
	}{Ctx: ctx, In: in}
	mock.lockJoinCompany.Lock()
	mock.calls.JoinCompany = append(mock.calls.JoinCompany, callInfo)
	mock.lockJoinCompany.Unlock()
	return mock.JoinCompanyFunc(ctx, in)
}

func (mock *tenancyServiceMock) JoinCompanyCalls() []struct {
	Ctx context.Context
	In  tenancy.JoinCompanyInput
} {
	mock.lockJoinCompany.RLock()
	calls := mock.calls.JoinCompany
	mock.lockJoinCompany.RUnlock()
	return calls
}

func (mock *tenancyServiceMock) SwitchCompany(ctx context.Context, in tenancy.SwitchCompanyInput) (*tenancy.Affiliation, error) {
	if mock.SwitchCompanyFunc == nil {
		panic("tenancyServiceMock.SwitchCompanyFunc: method is nil but tenancyService.SwitchCompany was just called")
	}
	callInfo := struct {
		Ctx context.Context
		In  tenancy.SwitchCompanyInput
	}{Ctx: ctx, In: in}
	mock.lockSwitchCompany.Lock()
	mock.calls.SwitchCompany = append(mock.calls.SwitchCompany, callInfo)
	mock.lockSwitchCompany.Unlock()
	return mock.SwitchCompanyFunc(ctx, in)
}

func (mock *tenancyServiceMock) SwitchCompanyCalls() []struct {
	Ctx context.Context
	In  tenancy.SwitchCompanyInput
} {
	mock.lockSwitchCompany.RLock()
	calls := mock.calls.SwitchCompany
	mock.lockSwitchCompany.RUnlock()
	return calls
}
