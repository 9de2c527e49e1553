package auth

import (
	"context"
	"sync"

	"github.com/gearbin/gearbin-backend/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByEmailFunc     func(ctx context.Context, email string) (*domain.User, error)
	GetCredentialsFunc func(ctx context.Context, email string) (*domain.User, string, error)

	calls struct {
		GetByEmail []struct {
			Ctx   context.Context
			Email string
		}
		GetCredentials []struct {
			Ctx   context.Context
			Email string
		}
	}
	lockGetByEmail     sync.RWMutex
	lockGetCredentials sync.RWMutex
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

func (mock *userRepoMock) GetCredentials(ctx context.Context, email string) (*domain.User, string, error) {
	if mock.GetCredentialsFunc == nil {
		panic("userRepoMock.GetCredentialsFunc: method is nil but userRepo.GetCredentials was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Email string
	}{Ctx: ctx, Email: email}
	mock.lockGetCredentials.Lock()
	mock.calls.GetCredentials = append(mock.calls.GetCredentials, callInfo)
	mock.lockGetCredentials.Unlock()
	return mock.GetCredentialsFunc(ctx, email)
}

func (mock *userRepoMock) GetCredentialsCalls() []struct {
	Ctx   context.Context
	Email string
} {
	mock.lockGetCredentials.RLock()
	calls := mock.calls.GetCredentials
	mock.lockGetCredentials.RUnlock()
	return calls
}
