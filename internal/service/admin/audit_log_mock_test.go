package admin

import (
	"context"
	"sync"

	"github.com/gearbin/gearbin-backend/internal/domain"
	"github.com/gearbin/gearbin-backend/internal/service/audit"
)

var _ auditLog = &auditLogMock{}

type auditLogMock struct {
	AppendFunc func(ctx context.Context, in audit.AppendInput) (*domain.AuditEntry, error)

	calls struct {
		Append []struct {
			Ctx context.Context
			In  audit.AppendInput
		}
	}
	lockAppend sync.RWMutex
}

func (mock *auditLogMock) Append(ctx context.Context, in audit.AppendInput) (*domain.AuditEntry, error) {
	if mock.AppendFunc == nil {
		panic("auditLogMock.AppendFunc: method is nil but auditLog.Append was just called")
	}
	callInfo := struct {
		Ctx context.Context
		In  audit.AppendInput
	}{Ctx: ctx, In: in}
	mock.lockAppend.Lock()
	mock.calls.Append = append(mock.calls.Append, callInfo)
	mock.lockAppend.Unlock()
	return mock.AppendFunc(ctx, in)
}

func (mock *auditLogMock) AppendCalls() []struct {
	Ctx context.Context
	In  audit.AppendInput
} {
	mock.lockAppend.RLock()
	calls := mock.calls.Append
	mock.lockAppend.RUnlock()
	return calls
}
