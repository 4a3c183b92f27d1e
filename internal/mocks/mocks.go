package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/brettbedarf/dirtree/engine"
)

// MockLineSource implements dirtree.LineSource for testing across packages
type MockLineSource struct {
	mock.Mock
}

func (m *MockLineSource) ReadLine() (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}

// MockExecutor implements dirtree.Executor for testing across packages
type MockExecutor struct {
	mock.Mock
}

func (m *MockExecutor) Execute(line string) (engine.Result, error) {
	args := m.Called(line)

	// Handle function return types (for listing results built per call)
	if fn, ok := args.Get(0).(func(string) engine.Result); ok {
		return fn(line), args.Error(1)
	}

	if args.Get(0) == nil {
		return engine.Result{}, args.Error(1)
	}
	return args.Get(0).(engine.Result), args.Error(1)
}
