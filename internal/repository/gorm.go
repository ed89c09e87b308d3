package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/conncomp-bench/pkg/model"
)

// GormBenchmarkRunRepository implements BenchmarkRunRepository using GORM.
type GormBenchmarkRunRepository struct {
	db *gorm.DB
}

// NewGormBenchmarkRunRepository creates a new GormBenchmarkRunRepository.
func NewGormBenchmarkRunRepository(db *gorm.DB) *GormBenchmarkRunRepository {
	return &GormBenchmarkRunRepository{db: db}
}

// AutoMigrate creates or updates the trial_results table.
func (r *GormBenchmarkRunRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&model.TrialResult{})
}

// SaveTrial inserts one trial's result row.
func (r *GormBenchmarkRunRepository) SaveTrial(ctx context.Context, trial *model.TrialResult) error {
	if err := r.db.WithContext(ctx).Create(trial).Error; err != nil {
		return fmt.Errorf("failed to save trial result: %w", err)
	}
	return nil
}

// GetTrialsByRunID retrieves every trial recorded under a run UUID.
func (r *GormBenchmarkRunRepository) GetTrialsByRunID(ctx context.Context, runID string) ([]*model.TrialResult, error) {
	var trials []*model.TrialResult

	err := r.db.WithContext(ctx).
		Where("run_id = ?", runID).
		Order("id ASC").
		Find(&trials).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query trials for run %s: %w", runID, err)
	}

	return trials, nil
}
