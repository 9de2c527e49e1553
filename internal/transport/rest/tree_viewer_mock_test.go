package rest

import (
	"context"
	"sync"

	"github.com/gearbin/gearbin-backend/internal/service/hierarchy"
)

var _ treeViewer = &treeViewerMock{}

type treeViewerMock struct {
	OrganizationTreeFunc func(ctx context.Context) (*hierarchy.OrganizationView, error)

	calls struct {
		OrganizationTree []struct{ Ctx context.Context }
	}
	lockOrganizationTree sync.RWMutex
}

func (mock *treeViewerMock) OrganizationTree(ctx context.Context) (*hierarchy.OrganizationView, error) {
	if mock.OrganizationTreeFunc == nil {
		panic("treeViewerMock.OrganizationTreeFunc: method is nil but treeViewer.OrganizationTree was just called")
	}
	callInfo := struct{ Ctx context.Context }{Ctx: ctx}
	mock.lockOrganizationTree.Lock()
	mock.calls.OrganizationTree = append(mock.calls.OrganizationTree, callInfo)
	mock.lockOrganizationTree.Unlock()
	return mock.OrganizationTreeFunc(ctx)
}

func (mock *treeViewerMock) OrganizationTreeCalls() []struct{ Ctx context.Context } {
	mock.lockOrganizationTree.RLock()
	calls := mock.calls.OrganizationTree
	mock.lockOrganizationTree.RUnlock()
	return calls
}
