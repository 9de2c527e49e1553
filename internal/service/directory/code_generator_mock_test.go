package directory

import (
	"sync"
)

var _ CodeGenerator = &CodeGeneratorMock{}

type CodeGeneratorMock struct {
	GenerateFunc func() (string, error)

	calls struct {
		Generate []struct{}
	}
	lockGenerate sync.RWMutex
}

func (mock *CodeGeneratorMock) Generate() (string, error) {
	if mock.GenerateFunc == nil {
		panic("CodeGeneratorMock.GenerateFunc: method is nil but CodeGenerator.Generate was just called")
	}
	mock.lockGenerate.Lock()
	mock.calls.Generate = append(mock.calls.Generate, struct{}{})
	mock.lockGenerate.Unlock()
	return mock.GenerateFunc()
}

func (mock *CodeGeneratorMock) GenerateCalls() []struct{} {
	mock.lockGenerate.RLock()
	calls := mock.calls.Generate
	mock.lockGenerate.RUnlock()
	return calls
}
