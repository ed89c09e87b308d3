// Package benchstats aggregates repeated-trial measurements into summary
// statistics for a benchmark run.
package benchstats

import (
	"math"
	"sort"

	"github.com/conncomp-bench/pkg/model"
)

// TrialStats summarizes repeated trials of a single
// (variant, parallelism, thread_count) configuration.
type TrialStats struct {
	Variant         model.Variant
	Parallelism     model.Parallelism
	ThreadCount     int
	ComponentCount  int // the agreed-upon count across all trials
	MeanNanos       float64
	MedianNanos     float64
	MinNanos        int64
	MaxNanos        int64
	StddevNanos     float64
	Throughput      float64 // edges/sec at MeanNanos
	PeakMemoryBytes int64   // mean peak heap growth across the group's trials
	Speedup         float64 // MeanNanos(sequential, threads=1) / MeanNanos(this)
	Efficiency      float64 // Speedup / ThreadCount
}

// Calculator aggregates TrialResult rows grouped by configuration.
type Calculator struct {
	nnz uint64
}

// NewCalculator creates a Calculator for a matrix with the given edge count.
func NewCalculator(nnz uint64) *Calculator {
	return &Calculator{nnz: nnz}
}

type groupKey struct {
	variant     model.Variant
	parallelism model.Parallelism
	threadCount int
}

// Summarize groups trials by (variant, parallelism, thread_count),
// computes per-group statistics, and derives speedup/efficiency relative
// to each group's single-threaded sequential baseline within the same
// variant, if present among the trials.
func (c *Calculator) Summarize(trials []model.TrialResult) []TrialStats {
	groups := make(map[groupKey][]model.TrialResult)
	order := make([]groupKey, 0)

	for _, t := range trials {
		key := groupKey{t.Variant, t.Parallelism, t.ThreadCount}
		if _, ok := groups[key]; !ok {
			order = append(order, key)
		}
		groups[key] = append(groups[key], t)
	}

	baseline := make(map[model.Variant]float64)
	for key, group := range groups {
		if key.threadCount == 1 && key.parallelism == model.ParallelismSequential {
			baseline[key.variant] = mean(durations(group))
		}
	}

	stats := make([]TrialStats, 0, len(order))
	for _, key := range order {
		group := groups[key]
		durs := durations(group)

		s := TrialStats{
			Variant:         key.variant,
			Parallelism:     key.parallelism,
			ThreadCount:     key.threadCount,
			ComponentCount:  group[0].ComponentCount,
			MeanNanos:       mean(durs),
			MedianNanos:     median(durs),
			MinNanos:        minInt64(durs),
			MaxNanos:        maxInt64(durs),
			StddevNanos:     stddev(durs),
			PeakMemoryBytes: int64(mean(peakBytes(group))),
		}

		if s.MeanNanos > 0 {
			s.Throughput = float64(c.nnz) / (s.MeanNanos / 1e9)
		}
		if base, ok := baseline[key.variant]; ok && s.MeanNanos > 0 {
			s.Speedup = base / s.MeanNanos
			s.Efficiency = s.Speedup / float64(key.threadCount)
		}

		stats = append(stats, s)
	}

	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Variant != stats[j].Variant {
			return stats[i].Variant < stats[j].Variant
		}
		if stats[i].Parallelism != stats[j].Parallelism {
			return stats[i].Parallelism < stats[j].Parallelism
		}
		return stats[i].ThreadCount < stats[j].ThreadCount
	})

	return stats
}

func durations(trials []model.TrialResult) []int64 {
	out := make([]int64, len(trials))
	for i, t := range trials {
		out[i] = t.DurationNanos
	}
	return out
}

func peakBytes(trials []model.TrialResult) []int64 {
	out := make([]int64, len(trials))
	for i, t := range trials {
		out[i] = t.PeakMemoryBytes
	}
	return out
}

func mean(durs []int64) float64 {
	if len(durs) == 0 {
		return 0
	}
	var sum int64
	for _, d := range durs {
		sum += d
	}
	return float64(sum) / float64(len(durs))
}

func median(durs []int64) float64 {
	if len(durs) == 0 {
		return 0
	}
	sorted := append([]int64(nil), durs...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	n := len(sorted)
	if n%2 == 1 {
		return float64(sorted[n/2])
	}
	return float64(sorted[n/2-1]+sorted[n/2]) / 2
}

func stddev(durs []int64) float64 {
	if len(durs) == 0 {
		return 0
	}
	m := mean(durs)
	var sumSq float64
	for _, d := range durs {
		diff := float64(d) - m
		sumSq += diff * diff
	}
	return math.Sqrt(sumSq / float64(len(durs)))
}

func minInt64(durs []int64) int64 {
	if len(durs) == 0 {
		return 0
	}
	m := durs[0]
	for _, d := range durs[1:] {
		if d < m {
			m = d
		}
	}
	return m
}

func maxInt64(durs []int64) int64 {
	if len(durs) == 0 {
		return 0
	}
	m := durs[0]
	for _, d := range durs[1:] {
		if d > m {
			m = d
		}
	}
	return m
}
