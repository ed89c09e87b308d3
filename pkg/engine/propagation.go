// Package engine implements the two connected-components algorithm
// families over the csc.View / unionfind.Labels data model: iterative
// label propagation and lock-free union-find. Both run their parallel
// phases through the substrate package and report a plain component count,
// never the labeling itself.
package engine

import (
	"context"
	"sync/atomic"

	"github.com/conncomp-bench/pkg/csc"
	"github.com/conncomp-bench/pkg/substrate"
	"github.com/conncomp-bench/pkg/unionfind"
)

// CountByPropagation runs the label-propagation algorithm:
// label[v] starts at v and is iteratively pushed down to the minimum
// label seen across every stored edge until a full pass over all columns
// makes no change. On convergence label[v] equals the minimum vertex id
// in v's component, so the number of distinct labels is the component
// count.
func CountByPropagation(ctx context.Context, view *csc.View, kind substrate.Kind, cfg substrate.Config) int {
	n := view.VertexCount()
	if view.Empty() {
		return 0
	}
	label := unionfind.NewLabels(n)

	for {
		var changed atomic.Bool

		substrate.For(ctx, kind, cfg, int(view.NCols), func(begin, end int) {
			localChanged := false
			for c := uint64(begin); c < uint64(end); c++ {
				lc := label[c].Load()
				for _, r := range view.Column(c) {
					if r >= n {
						continue // out-of-range row index, silently tolerated
					}
					lr := label[r].Load()
					if lc == lr {
						continue
					}
					m := lc
					if lr < m {
						m = lr
					}
					// Push the min label to whichever endpoint holds the
					// larger value. A relaxed store is sufficient: any
					// stale read elsewhere is a safe over-approximation
					// of the true component minimum and will be caught
					// by a later iteration.
					if lc > m {
						label[c].Store(m)
						lc = m
					} else {
						label[r].Store(m)
					}
					localChanged = true
				}
			}
			if localChanged {
				changed.Store(true)
			}
		})

		if !changed.Load() {
			break
		}
	}

	return countUniqueLabels(label, n)
}
