package engine

import (
	"github.com/conncomp-bench/pkg/collections"
	"github.com/conncomp-bench/pkg/unionfind"
)

// countUniqueLabels implements the unique-label counter: a
// bitmap of one bit per candidate label value is zeroed, every label's
// bit is set, and the result is the population count across the bitmap.
// This is correct because monotonicity keeps every label in [0, n) from
// the label[v] = v initialization onward. The pass is sequential — it is
// fully vectorizable and rarely the bottleneck next to the convergence
// loop that produced the labels.
func countUniqueLabels(label unionfind.Labels, n uint64) int {
	seen := collections.NewBitset(int(n))
	for v := uint64(0); v < n; v++ {
		seen.Set(int(label[v].Load()))
	}
	return seen.Count()
}
