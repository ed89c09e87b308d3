// Package repository provides database abstraction for persisting
// benchmark run results.
package repository

import (
	"context"

	"github.com/conncomp-bench/pkg/model"
)

// BenchmarkRunRepository defines the interface for trial-result persistence.
type BenchmarkRunRepository interface {
	// SaveTrial inserts one trial's result row.
	SaveTrial(ctx context.Context, trial *model.TrialResult) error

	// GetTrialsByRunID retrieves every trial recorded under a run UUID.
	GetTrialsByRunID(ctx context.Context, runID string) ([]*model.TrialResult, error)
}
