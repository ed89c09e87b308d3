package mock

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/conncomp-bench/pkg/model"
)

// MockBenchmarkRunRepository is a mock implementation of the
// BenchmarkRunRepository interface.
type MockBenchmarkRunRepository struct {
	mock.Mock
}

// SaveTrial mocks the SaveTrial method.
func (m *MockBenchmarkRunRepository) SaveTrial(ctx context.Context, trial *model.TrialResult) error {
	args := m.Called(ctx, trial)
	return args.Error(0)
}

// GetTrialsByRunID mocks the GetTrialsByRunID method.
func (m *MockBenchmarkRunRepository) GetTrialsByRunID(ctx context.Context, runID string) ([]*model.TrialResult, error) {
	args := m.Called(ctx, runID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.TrialResult), args.Error(1)
}

// ExpectSaveTrial sets up an expectation for SaveTrial.
func (m *MockBenchmarkRunRepository) ExpectSaveTrial(err error) *mock.Call {
	return m.On("SaveTrial", mock.Anything, mock.Anything).Return(err)
}

// ExpectGetTrialsByRunID sets up an expectation for GetTrialsByRunID.
func (m *MockBenchmarkRunRepository) ExpectGetTrialsByRunID(runID string, trials []*model.TrialResult, err error) *mock.Call {
	return m.On("GetTrialsByRunID", mock.Anything, runID).Return(trials, err)
}
