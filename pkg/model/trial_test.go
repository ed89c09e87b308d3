package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVariantString(t *testing.T) {
	assert.Equal(t, "propagation", VariantPropagation.String())
	assert.Equal(t, "union_find", VariantUnionFind.String())
	assert.Equal(t, "unknown", Variant(99).String())
}

func TestParallelismString(t *testing.T) {
	assert.Equal(t, "sequential", ParallelismSequential.String())
	assert.Equal(t, "threadpool", ParallelismThreadPool.String())
	assert.Equal(t, "workstealing", ParallelismWorkStealing.String())
	assert.Equal(t, "forkjoin", ParallelismForkJoin.String())
	assert.Equal(t, "unknown", Parallelism(99).String())
}

func TestTrialResultThroughput(t *testing.T) {
	trial := &TrialResult{DurationNanos: 1_000_000_000}
	assert.InDelta(t, 1000.0, trial.Throughput(1000), 0.0001)

	zero := &TrialResult{DurationNanos: 0}
	assert.Equal(t, 0.0, zero.Throughput(1000))
}
