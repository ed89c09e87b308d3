// Package unionfind implements the lock-free disjoint-set primitives the
// union-find connected-components engine is built on: two-pass
// path-compressing find, and Rem's CAS-based union with canonical
// ordering. Both operations are safe under concurrent mutation by other
// goroutines racing on the same label array.
package unionfind

import "sync/atomic"

// maxUnionRetries bounds the CAS retry loop in UnionRem before falling
// back to an unconditional release store.
const maxUnionRetries = 10

// Labels is the shared mutable parent-pointer array. Index v holds v's
// parent; v is a root iff Labels[v].Load() == uint32(v). Cells are
// atomic.Uint32 rather than plain uint32 so that the concurrent reads and
// writes performed by FindCompress and UnionRem are never a data race,
// even though their ordering requirements are relaxed.
type Labels []atomic.Uint32

// NewLabels allocates a label array of the given size and initializes
// Labels[v] = v for every v, the starting state for both the
// disjoint-set and propagation interpretations.
func NewLabels(n uint64) Labels {
	l := make(Labels, n)
	for v := range l {
		l[v].Store(uint32(v))
	}
	return l
}

// FindCompress walks parent pointers from x until it reaches a root
// (label[r] == r), then walks x a second time redirecting every
// intermediate node directly to r. Reads and writes are plain relaxed
// atomic operations: the value observed is always some ancestor of x,
// never garbage, so racing with concurrent unions is safe. The returned
// root may become stale the instant after return if another goroutine
// re-unions it; callers that need to act on root equality must re-find.
func FindCompress(label Labels, x uint32) uint32 {
	root := x
	for {
		parent := label[root].Load()
		if parent == root {
			break
		}
		root = parent
	}

	// Second pass: compress every node on the path to root.
	for x != root {
		next := label[x].Load()
		if next == root {
			break
		}
		label[x].Store(root)
		x = next
	}
	return root
}

// UnionRem merges the components containing a and b using Rem's
// algorithm: canonical ordering (the smaller root always absorbs the
// larger) makes every successful link strictly decrease a label value,
// which forbids cycles regardless of how concurrent CAS attempts
// interleave. The retry loop is bounded; if it is exhausted while the
// roots are still disjoint, UnionRem performs one unconditional release
// store as a fallback, relying on the same monotonicity argument for
// safety.
func UnionRem(label Labels, a, b uint32) {
	for attempt := 0; attempt < maxUnionRetries; attempt++ {
		ra := FindCompress(label, a)
		rb := FindCompress(label, b)
		if ra == rb {
			return
		}
		if ra > rb {
			ra, rb = rb, ra
		}
		if label[rb].CompareAndSwap(rb, ra) {
			return
		}
		// CAS failed: another worker moved rb's root. Retry with the
		// updated view on the next iteration via FindCompress.
	}

	ra := FindCompress(label, a)
	rb := FindCompress(label, b)
	if ra == rb {
		return
	}
	if ra > rb {
		ra, rb = rb, ra
	}
	label[rb].Store(ra)
}
