// Package report assembles and writes the JSON document produced by a
// benchmark run.
package report

import (
	"io"
	"runtime"
	"time"

	"github.com/conncomp-bench/internal/benchstats"
	"github.com/conncomp-bench/pkg/csc"
	"github.com/conncomp-bench/pkg/model"
	"github.com/conncomp-bench/pkg/writer"
)

// Builder accumulates trial results for a single run and assembles the
// final report.
type Builder struct {
	runID      string
	matrixPath string
	view       *csc.View
	trials     int
	maxThreads int
	startedAt  time.Time
	results    []model.TrialResult
}

// NewBuilder creates a Builder for a run against view, loaded from
// matrixPath, with the given trial count and maximum thread count.
func NewBuilder(runID, matrixPath string, view *csc.View, trials, maxThreads int) *Builder {
	return &Builder{
		runID:      runID,
		matrixPath: matrixPath,
		view:       view,
		trials:     trials,
		maxThreads: maxThreads,
		startedAt:  time.Now(),
	}
}

// Add records one trial's result.
func (b *Builder) Add(result model.TrialResult) {
	b.results = append(b.results, result)
}

// Build assembles the final report. The "results" array is not the raw
// per-trial rows but statistics aggregated per (variant, parallelism,
// thread_count) configuration, per the documented JSON deliverable.
func (b *Builder) Build() model.Report {
	return model.Report{
		SysInfo: model.SysInfo{
			GoVersion: runtime.Version(),
			NumCPU:    runtime.NumCPU(),
			GOOS:      runtime.GOOS,
			GOARCH:    runtime.GOARCH,
		},
		MatrixInfo: model.MatrixInfo{
			Path:        b.matrixPath,
			NRows:       b.view.NRows,
			NCols:       b.view.NCols,
			NNZ:         b.view.NNZ,
			VertexCount: b.view.VertexCount(),
		},
		BenchmarkInfo: model.BenchmarkInfo{
			RunID:       b.runID,
			Trials:      b.trials,
			MaxThreads:  b.maxThreads,
			StartedAt:   b.startedAt,
			CompletedAt: time.Now(),
		},
		Results: summarize(b.view.NNZ, b.results),
	}
}

func summarize(nnz uint64, trials []model.TrialResult) []model.ResultSummary {
	stats := benchstats.NewCalculator(nnz).Summarize(trials)
	out := make([]model.ResultSummary, len(stats))
	for i, s := range stats {
		out[i] = model.ResultSummary{
			Algorithm:       s.Variant.String(),
			Variant:         s.Variant,
			Parallelism:     s.Parallelism,
			ThreadCount:     s.ThreadCount,
			ComponentCount:  s.ComponentCount,
			MeanNanos:       s.MeanNanos,
			MedianNanos:     s.MedianNanos,
			MinNanos:        s.MinNanos,
			MaxNanos:        s.MaxNanos,
			StddevNanos:     s.StddevNanos,
			Throughput:      s.Throughput,
			PeakMemoryBytes: s.PeakMemoryBytes,
			Speedup:         s.Speedup,
			Efficiency:      s.Efficiency,
		}
	}
	return out
}

// Write encodes the report as pretty-printed JSON to w.
func Write(report model.Report, w io.Writer) error {
	return writer.NewPrettyJSONWriter[model.Report]().Write(report, w)
}

// WriteFile encodes the report as pretty-printed JSON to the named file.
func WriteFile(report model.Report, path string) error {
	return writer.NewPrettyJSONWriter[model.Report]().WriteToFile(report, path)
}
