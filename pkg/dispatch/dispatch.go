// Package dispatch provides the single entry point callers use to run
// the connected-components engine: it maps a (parallelism, variant) pair
// to the matching engine instance.
package dispatch

import (
	"context"

	"github.com/conncomp-bench/pkg/csc"
	"github.com/conncomp-bench/pkg/engine"
	"github.com/conncomp-bench/pkg/substrate"
)

// Variant selects the algorithm family.
type Variant int

const (
	// Propagation runs the iterative label-propagation engine.
	Propagation Variant = 0
	// UnionFind runs the lock-free disjoint-set engine.
	UnionFind Variant = 1
)

// AllocFailureSentinel is returned by Count when the engine cannot
// allocate its label array. The reference implementation here never
// fails this way (Go allocation failures are fatal, not recoverable) but
// the sentinel is kept so a caller wrapping an engine with explicit
// memory budgeting (a constrained benchmark host, say) has somewhere to
// signal it.
const AllocFailureSentinel = -1

// Count maps (view, threads, variant, parallelism) to the matching
// engine and returns the component count, or AllocFailureSentinel for an
// unknown variant. nrows == 0 is handled by the engines themselves and
// returns 0 immediately.
func Count(ctx context.Context, view *csc.View, threads int, variant Variant, parallelism substrate.Kind) int {
	cfg := substrate.Config{Threads: threads}

	switch variant {
	case Propagation:
		return engine.CountByPropagation(ctx, view, parallelism, cfg)
	case UnionFind:
		return engine.CountByUnionFind(ctx, view, parallelism, cfg)
	default:
		return AllocFailureSentinel
	}
}
