package rest

import (
	"context"
	"sync"

	"github.com/gearbin/gearbin-backend/internal/domain"
	"github.com/gearbin/gearbin-backend/internal/service/admin"
	"github.com/google/uuid"
)

var _ adminService = &adminServiceMock{}

type adminServiceMock struct {
	GetCompanyFunc    func(ctx context.Context) (*admin.CompanyOverview, error)
	UpdateCompanyFunc func(ctx context.Context, in admin.UpdateCompanyInput) (*domain.Company, error)
	SetMemberRoleFunc func(ctx context.Context, in admin.SetRoleInput) (*domain.User, error)
	RemoveMemberFunc  func(ctx context.Context, userID uuid.UUID) error
	InviteFunc        func(ctx context.Context, in admin.InviteInput) (*admin.Invitation, error)

	calls struct {
		GetCompany []struct{ Ctx context.Context }
		UpdateCompany []struct {
			Ctx context.Context
			In  admin.UpdateCompanyInput
		}
		SetMemberRole []struct {
			Ctx context.Context
			In  admin.SetRoleInput
		}
		RemoveMember []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		Invite []struct {
			Ctx context.Context
			In  admin.InviteInput
		}
	}
	lockGetCompany    sync.RWMutex
	lockUpdateCompany sync.RWMutex
	lockSetMemberRole sync.RWMutex
	lockRemoveMember  sync.RWMutex
	lockInvite        sync.RWMutex
}

func (mock *adminServiceMock) GetCompany(ctx context.Context) (*admin.CompanyOverview, error) {
	if mock.GetCompanyFunc == nil {
		panic("adminServiceMock.GetCompanyFunc: method is nil but adminService.GetCompany was just called")
	}
	callInfo := struct{ Ctx context.Context }{Ctx: ctx}
	mock.lockGetCompany.Lock()
	mock.calls.GetCompany = append(mock.calls.GetCompany, callInfo)
	mock.lockGetCompany.Unlock()
	return mock.GetCompanyFunc(ctx)
}

func (mock *adminServiceMock) GetCompanyCalls() []struct{ Ctx context.Context } {
	mock.lockGetCompany.RLock()
	calls := mock.calls.GetCompany
	mock.lockGetCompany.RUnlock()
	return calls
}

func (mock *adminServiceMock) UpdateCompany(ctx context.Context, in admin.UpdateCompanyInput) (*domain.Company, error) {
	if mock.UpdateCompanyFunc == nil {
		panic("adminServiceMock.UpdateCompanyFunc: method is nil but adminService.UpdateCompany was just called")
	}
	callInfo := struct {
		Ctx context.Context
		In  admin.UpdateCompanyInput
	}{Ctx: ctx, In: in}
	mock.lockUpdateCompany.Lock()
	mock.calls.UpdateCompany = append(mock.calls.UpdateCompany, callInfo)
	mock.lockUpdateCompany.Unlock()
	return mock.UpdateCompanyFunc(ctx, in)
}

func (mock *adminServiceMock) UpdateCompanyCalls() []struct {
	Ctx context.Context
	In  admin.UpdateCompanyInput
} {
	mock.lockUpdateCompany.RLock()
	calls := mock.calls.UpdateCompany
	mock.lockUpdateCompany.RUnlock()
	return calls
}

func (mock *adminServiceMock) SetMemberRole(ctx context.Context, in admin.SetRoleInput) (*domain.User, error) {
	if mock.SetMemberRoleFunc == nil {
		panic("adminServiceMock.SetMemberRoleFunc: method is nil but adminService.SetMemberRole was just called")
	}
	callInfo := struct {
		Ctx context.Context
		In  admin.SetRoleInput
	}{Ctx: ctx, In: in}
	mock.lockSetMemberRole.Lock()
	mock.calls.SetMemberRole = append(mock.calls.SetMemberRole, callInfo)
	mock.lockSetMemberRole.Unlock()
	return mock.SetMemberRoleFunc(ctx, in)
}

func (mock *adminServiceMock) SetMemberRoleCalls() []struct {
	Ctx context.Context
	In  admin.SetRoleInput
} {
	mock.lockSetMemberRole.RLock()
	calls := mock.calls.SetMemberRole
	mock.lockSetMemberRole.RUnlock()
	return calls
}

func (mock *adminServiceMock) RemoveMember(ctx context.Context, userID uuid.UUID) error {
	if mock.RemoveMemberFunc == nil {
		panic("adminServiceMock.RemoveMemberFunc: method is nil but adminService.RemoveMember was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockRemoveMember.Lock()
	mock.calls.RemoveMember = append(mock.calls.RemoveMember, callInfo)
	mock.lockRemoveMember.Unlock()
	return mock.RemoveMemberFunc(ctx, userID)
}

func (mock *adminServiceMock) RemoveMemberCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockRemoveMember.RLock()
	calls := mock.calls.RemoveMember
	mock.lockRemoveMember.RUnlock()
	return calls
}

func (mock *adminServiceMock) Invite(ctx context.Context, in admin.InviteInput) (*admin.Invitation, error) {
	if mock.InviteFunc == nil {
		panic("adminServiceMock.InviteFunc: method is nil but adminService.Invite was just called")
	}
	callInfo := struct {
		Ctx context.Context
		In  admin.InviteInput
	}{Ctx: ctx, In: in}
	mock.lockInvite.Lock()
	mock.calls.Invite = append(mock.calls.Invite, callInfo)
	mock.lockInvite.Unlock()
	return mock.InviteFunc(ctx, in)
}

func (mock *adminServiceMock) InviteCalls() []struct {
	Ctx context.Context
	In  admin.InviteInput
} {
	mock.lockInvite.RLock()
	calls := mock.calls.Invite
	mock.lockInvite.RUnlock()
	return calls
}
