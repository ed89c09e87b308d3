// Package model defines the core data structures used throughout the
// benchmark harness.
package model

import "time"

// Variant identifies the connected-components algorithm family.
type Variant int

const (
	VariantPropagation Variant = 0 // iterative label propagation
	VariantUnionFind   Variant = 1 // lock-free union-find
)

// String returns the string representation of Variant.
func (v Variant) String() string {
	switch v {
	case VariantPropagation:
		return "propagation"
	case VariantUnionFind:
		return "union_find"
	default:
		return "unknown"
	}
}

// Parallelism identifies the parallel execution substrate a trial ran on.
type Parallelism int

const (
	ParallelismSequential Parallelism = 0
	ParallelismThreadPool Parallelism = 1
	ParallelismWorkStealing Parallelism = 2
	ParallelismForkJoin   Parallelism = 3
)

// String returns the string representation of Parallelism.
func (p Parallelism) String() string {
	switch p {
	case ParallelismSequential:
		return "sequential"
	case ParallelismThreadPool:
		return "threadpool"
	case ParallelismWorkStealing:
		return "workstealing"
	case ParallelismForkJoin:
		return "forkjoin"
	default:
		return "unknown"
	}
}

// MatrixInfo describes the adjacency matrix a run was executed against.
type MatrixInfo struct {
	Path        string `json:"path"`
	NRows       uint64 `json:"nrows"`
	NCols       uint64 `json:"ncols"`
	NNZ         uint64 `json:"nnz"`
	VertexCount uint64 `json:"vertex_count"`
}

// SysInfo describes the machine a benchmark run was executed on.
type SysInfo struct {
	GoVersion string `json:"go_version"`
	NumCPU    int    `json:"num_cpu"`
	GOOS      string `json:"goos"`
	GOARCH    string `json:"goarch"`
}

// TrialResult is a single (variant, parallelism, thread_count) measurement.
type TrialResult struct {
	ID              int64       `json:"-" gorm:"primaryKey;autoIncrement"`
	RunID           string      `json:"run_id" gorm:"index"`
	Variant         Variant     `json:"variant"`
	Parallelism     Parallelism `json:"parallelism"`
	ThreadCount     int         `json:"thread_count"`
	TrialIndex      int         `json:"trial_index"`
	ComponentCount  int         `json:"component_count"`
	DurationNanos   int64       `json:"duration_nanos"`
	PeakMemoryBytes int64       `json:"peak_memory_bytes"`
	CreatedAt       time.Time   `json:"created_at"`
}

// Throughput returns edges processed per second, given the matrix's NNZ.
func (t *TrialResult) Throughput(nnz uint64) float64 {
	if t.DurationNanos <= 0 {
		return 0
	}
	seconds := float64(t.DurationNanos) / 1e9
	return float64(nnz) / seconds
}

// BenchmarkInfo summarizes the parameters a benchmark run was invoked with.
type BenchmarkInfo struct {
	RunID       string    `json:"run_id"`
	Trials      int       `json:"trials"`
	MaxThreads  int       `json:"max_threads"`
	StartedAt   time.Time `json:"started_at"`
	CompletedAt time.Time `json:"completed_at"`
}

// ResultSummary is one entry of the report's "results" array: statistics
// aggregated across every trial that shared a single
// (variant, parallelism, thread_count) configuration.
type ResultSummary struct {
	Algorithm       string      `json:"algorithm"`
	Variant         Variant     `json:"variant"`
	Parallelism     Parallelism `json:"parallelism"`
	ThreadCount     int         `json:"thread_count"`
	ComponentCount  int         `json:"component_count"`
	MeanNanos       float64     `json:"mean_nanos"`
	MedianNanos     float64     `json:"median_nanos"`
	MinNanos        int64       `json:"min_nanos"`
	MaxNanos        int64       `json:"max_nanos"`
	StddevNanos     float64     `json:"stddev_nanos"`
	Throughput      float64     `json:"throughput_edges_per_sec"`
	PeakMemoryBytes int64       `json:"peak_memory_bytes"`
	Speedup         float64     `json:"speedup"`
	Efficiency      float64     `json:"efficiency"`
}

// Report is the top-level JSON document emitted by a benchmark run.
type Report struct {
	SysInfo       SysInfo         `json:"sys_info"`
	MatrixInfo    MatrixInfo      `json:"matrix_info"`
	BenchmarkInfo BenchmarkInfo   `json:"benchmark_info"`
	Results       []ResultSummary `json:"results"`
}
