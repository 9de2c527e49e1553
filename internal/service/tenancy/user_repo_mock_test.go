package tenancy

import (
	"context"
	"sync"

	"github.com/gearbin/gearbin-backend/internal/domain"
	"github.com/google/uuid"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByIDFunc   func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	CreateFunc    func(ctx context.Context, u domain.User, passwordHash string) (*domain.User, error)
	AffiliateFunc func(ctx context.Context, id uuid.UUID, companyID uuid.UUID, role domain.UserRole) (*domain.User, error)
	ReassignFunc  func(ctx context.Context, id uuid.UUID, from uuid.UUID, to uuid.UUID) (*domain.User, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		Create []struct {
			Ctx          context.Context
			U            domain.User
			PasswordHash string
		}
		Affiliate []struct {
			Ctx       context.Context
			ID        uuid.UUID
			CompanyID uuid.UUID
			Role      domain.UserRole
		}
		Reassign []struct {
			Ctx  context.Context
			ID   uuid.UUID
			From uuid.UUID
			To   uuid.UUID
		}
	}
	lockGetByID   sync.RWMutex
	lockCreate    sync.RWMutex
	lockAffiliate sync.RWMutex
	lockReassign  sync.RWMutex
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

func (mock *userRepoMock) Create(ctx context.Context, u domain.User, passwordHash string) (*domain.User, error) {
	if mock.CreateFunc == nil {
		panic("userRepoMock.CreateFunc: method is nil but userRepo.Create was just called")
	}
	callInfo := struct {
		Ctx          context.Context
		U            domain.User
		PasswordHash string
	}{Ctx: ctx, U: u, PasswordHash: passwordHash}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, u, passwordHash)
}

func (mock *userRepoMock) CreateCalls() []struct {
	Ctx          context.Context
	U            domain.User
	PasswordHash string
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *userRepoMock) Affiliate(ctx context.Context, id uuid.UUID, companyID uuid.UUID, role domain.UserRole) (*domain.User, error) {
	if mock.AffiliateFunc == nil {
		panic("userRepoMock.AffiliateFunc: method is nil but userRepo.Affiliate was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ID        uuid.UUID
		CompanyID uuid.UUID
		Role      domain.UserRole
	}{Ctx: ctx, ID: id, CompanyID: companyID, Role: role}
	mock.lockAffiliate.Lock()
	mock.calls.Affiliate = append(mock.calls.Affiliate, callInfo)
	mock.lockAffiliate.Unlock()
	return mock.AffiliateFunc(ctx, id, companyID, role)
}

func (mock *userRepoMock) AffiliateCalls() []struct {
	Ctx       context.Context
	ID        uuid.UUID
	CompanyID uuid.UUID
	Role      domain.UserRole
} {
	mock.lockAffiliate.RLock()
	calls := mock.calls.Affiliate
	mock.lockAffiliate.RUnlock()
	return calls
}

func (mock *userRepoMock) Reassign(ctx context.Context, id uuid.UUID, from uuid.UUID, to uuid.UUID) (*domain.User, error) {
	if mock.ReassignFunc == nil {
		panic("userRepoMock.ReassignFunc: method is nil but userRepo.Reassign was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		ID   uuid.UUID
		From uuid.UUID
		To   uuid.UUID
	}{Ctx: ctx, ID: id, From: from, To: to}
	mock.lockReassign.Lock()
	mock.calls.Reassign = append(mock.calls.Reassign, callInfo)
	mock.lockReassign.Unlock()
	return mock.ReassignFunc(ctx, id, from, to)
}

func (mock *userRepoMock) ReassignCalls() []struct {
	Ctx  context.Context
	ID   uuid.UUID
	From uuid.UUID
	To   uuid.UUID
} {
	mock.lockReassign.RLock()
	calls := mock.calls.Reassign
	mock.lockReassign.RUnlock()
	return calls
}
