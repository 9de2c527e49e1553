package access

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

var _ historySource = &historySourceMock{}

type historySourceMock struct {
	CompaniesByUserFunc func(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)

	calls struct {
		CompaniesByUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
	}
	lockCompaniesByUser sync.RWMutex
}

func (mock *historySourceMock) CompaniesByUser(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	if mock.CompaniesByUserFunc == nil {
		panic("historySourceMock.CompaniesByUserFunc: method is nil but historySource.CompaniesByUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockCompaniesByUser.Lock()
	mock.calls.CompaniesByUser = append(mock.calls.CompaniesByUser, callInfo)
	mock.lockCompaniesByUser.Unlock()
	return mock.CompaniesByUserFunc(ctx, userID)
}

func (mock *historySourceMock) CompaniesByUserCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockCompaniesByUser.RLock()
	calls := mock.calls.CompaniesByUser
	mock.lockCompaniesByUser.RUnlock()
	return calls
}
