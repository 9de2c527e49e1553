package admin

import (
	"context"
	"sync"

	"github.com/gearbin/gearbin-backend/internal/domain"
	"github.com/google/uuid"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByIDFunc       func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmailFunc    func(ctx context.Context, email string) (*domain.User, error)
	ListByCompanyFunc func(ctx context.Context, companyID uuid.UUID) ([]domain.User, error)
	UpdateRoleFunc    func(ctx context.Context, id uuid.UUID, companyID uuid.UUID, role domain.UserRole) (*domain.User, error)
	DetachFunc        func(ctx context.Context, id uuid.UUID, companyID uuid.UUID) (*domain.User, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		GetByEmail []struct {
			Ctx   context.Context
			Email string
		}
		ListByCompany []struct {
			Ctx       context.Context
			CompanyID uuid.UUID
		}
		UpdateRole []struct {
			Ctx       context.Context
			ID        uuid.UUID
			CompanyID uuid.UUID
			Role      domain.UserRole
		}
		Detach []struct {
			Ctx       context.Context
			ID        uuid.UUID
			CompanyID uuid.UUID
		}
	}
	lockGetByID       sync.RWMutex
	lockGetByEmail    sync.RWMutex
	lockListByCompany sync.RWMutex
	lockUpdateRole    sync.RWMutex
	lockDetach        sync.RWMutex
}

func (mock *userRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
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

func (mock *userRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *userRepoMock) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if mock.GetByEmailFunc == nil {
		panic("userRepoMock.GetByEmailFunc: method is nil but userRepo.GetByEmail was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Email string
	}{Ctx: ctx, Email: email}
	mock.lockGetByEmail.Lock()
	mock.calls.GetByEmail = append(mock.calls.GetByEmail, callInfo)
	mock.lockGetByEmail.Unlock()
	return mock.GetByEmailFunc(ctx, email)
}

func (mock *userRepoMock) GetByEmailCalls() []struct {
	Ctx   context.Context
	Email string
} {
	mock.lockGetByEmail.RLock()
	calls := mock.calls.GetByEmail
	mock.lockGetByEmail.RUnlock()
	return calls
}

func (mock *userRepoMock) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]domain.User, error) {
	if mock.ListByCompanyFunc == nil {
		panic("userRepoMock.ListByCompanyFunc: method is nil but userRepo.ListByCompany was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		CompanyID uuid.UUID
	}{Ctx: ctx, CompanyID: companyID}
	mock.lockListByCompany.Lock()
	mock.calls.ListByCompany = append(mock.calls.ListByCompany, callInfo)
	mock.lockListByCompany.Unlock()
	return mock.ListByCompanyFunc(ctx, companyID)
}

func (mock *userRepoMock) ListByCompanyCalls() []struct {
	Ctx       context.Context
	CompanyID uuid.UUID
} {
	mock.lockListByCompany.RLock()
	calls := mock.calls.ListByCompany
	mock.lockListByCompany.RUnlock()
	return calls
}

func (mock *userRepoMock) UpdateRole(ctx context.Context, id uuid.UUID, companyID uuid.UUID, role domain.UserRole) (*domain.User, error) {
	if mock.UpdateRoleFunc == nil {
		panic("userRepoMock.UpdateRoleFunc: method is nil but userRepo.UpdateRole was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ID        uuid.UUID
		CompanyID uuid.UUID
		Role      domain.UserRole
	}{Ctx: ctx, ID: id, CompanyID: companyID, Role: role}
	mock.lockUpdateRole.Lock()
	mock.calls.UpdateRole = append(mock.calls.UpdateRole, callInfo)
	mock.lockUpdateRole.Unlock()
	return mock.UpdateRoleFunc(ctx, id, companyID, role)
}

func (mock *userRepoMock) UpdateRoleCalls() []struct {
	Ctx       context.Context
	ID        uuid.UUID
	CompanyID uuid.UUID
	Role      domain.UserRole
} {
	mock.lockUpdateRole.RLock()
	calls := mock.calls.UpdateRole
	mock.lockUpdateRole.RUnlock()
	return calls
}

func (mock *userRepoMock) Detach(ctx context.Context, id uuid.UUID, companyID uuid.UUID) (*domain.User, error) {
	if mock.DetachFunc == nil {
		panic("userRepoMock.DetachFunc: method is nil but userRepo.Detach was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ID        uuid.UUID
		CompanyID uuid.UUID
	}{Ctx: ctx, ID: id, CompanyID: companyID}
	mock.lockDetach.Lock()
	mock.calls.Detach = append(mock.calls.Detach, callInfo)
	mock.lockDetach.Unlock()
	return mock.DetachFunc(ctx, id, companyID)
}

func (mock *userRepoMock) DetachCalls() []struct {
	Ctx       context.Context
	ID        uuid.UUID
	CompanyID uuid.UUID
} {
	mock.lockDetach.RLock()
	calls := mock.calls.Detach
	mock.lockDetach.RUnlock()
	return calls
}
