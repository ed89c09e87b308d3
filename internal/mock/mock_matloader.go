// Package mock provides mock implementations for testing.
package mock

import (
	"github.com/stretchr/testify/mock"

	"github.com/conncomp-bench/pkg/csc"
)

// MockMatrixLoader is a mock implementation of the matloader.Loader interface.
type MockMatrixLoader struct {
	mock.Mock
}

// Load mocks the Load method.
func (m *MockMatrixLoader) Load(path string) (*csc.View, error) {
	args := m.Called(path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*csc.View), args.Error(1)
}

// ExpectLoad sets up an expectation for Load.
func (m *MockMatrixLoader) ExpectLoad(path string, view *csc.View, err error) *mock.Call {
	return m.On("Load", path).Return(view, err)
}
