package unionfind

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLabelsInitializesSelfParent(t *testing.T) {
	l := NewLabels(5)
	for v := 0; v < 5; v++ {
		assert.Equal(t, uint32(v), l[v].Load())
	}
}

func TestFindCompressRoot(t *testing.T) {
	l := NewLabels(4)
	l[3].Store(2)
	l[2].Store(1)
	l[1].Store(0)

	root := FindCompress(l, 3)
	require.Equal(t, uint32(0), root)

	// Path compression: every visited node now points straight at root.
	assert.Equal(t, uint32(0), l[1].Load())
	assert.Equal(t, uint32(0), l[2].Load())
	assert.Equal(t, uint32(0), l[3].Load())
}

func TestUnionRemCanonicalOrdering(t *testing.T) {
	l := NewLabels(4)
	UnionRem(l, 3, 1)

	r1 := FindCompress(l, 1)
	r3 := FindCompress(l, 3)
	assert.Equal(t, r1, r3)
	assert.Equal(t, uint32(1), r1, "smaller root must absorb the larger")
}

func TestUnionRemIdempotent(t *testing.T) {
	l := NewLabels(4)
	UnionRem(l, 0, 1)
	UnionRem(l, 0, 1)
	UnionRem(l, 1, 0)

	assert.Equal(t, FindCompress(l, 0), FindCompress(l, 1))
}

func TestUnionRemConcurrentNoCycles(t *testing.T) {
	const n = 2000
	l := NewLabels(n)

	var wg sync.WaitGroup
	for i := 1; i < n; i++ {
		wg.Add(1)
		go func(v int) {
			defer wg.Done()
			UnionRem(l, uint32(v-1), uint32(v))
		}(i)
	}
	wg.Wait()

	// A chain of unions over all n vertices must converge on a single
	// component with root 0.
	root := FindCompress(l, uint32(n-1))
	for v := uint32(0); v < n; v++ {
		assert.Equal(t, root, FindCompress(l, v))
	}
	assert.Equal(t, uint32(0), root)
}

func TestFindCompressFixedPointAfterFlatten(t *testing.T) {
	l := NewLabels(6)
	UnionRem(l, 0, 1)
	UnionRem(l, 1, 2)
	UnionRem(l, 3, 4)

	for v := uint32(0); v < 6; v++ {
		FindCompress(l, v)
	}
	for v := uint32(0); v < 6; v++ {
		root := l[v].Load()
		assert.Equal(t, root, l[root].Load(), "root must be a fixed point")
	}
}
