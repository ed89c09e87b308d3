// Package substrate provides the parallel execution primitives the
// connected-components engines run their phases on: a parallel-for over
// a half-open integer interval and a parallel reduction, each available
// in four flavors (sequential, worker-pool-with-atomic-dispatcher,
// work-stealing, and fork-join).
package substrate

import (
	"context"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// Kind selects which parallelism strategy a For/Reduce call uses.
type Kind int

const (
	// Sequential runs the body in the caller's goroutine. Always
	// available regardless of thread count; used as the baseline for
	// speedup/efficiency statistics.
	Sequential Kind = iota
	// ThreadPool runs a fixed pool of goroutines pulling fixed-size
	// chunks from a single shared atomic fetch-add counter.
	ThreadPool
	// WorkStealing runs a pool of goroutines draining a buffered
	// channel of pre-split chunks, so idle workers immediately pick up
	// the next available chunk instead of owning a static slice.
	WorkStealing
	// ForkJoin runs workers under an errgroup.Group with a concurrency
	// limit, the fork-join discipline: the parent blocks in Wait until
	// every child goroutine returns.
	ForkJoin
)

// DefaultChunkSize is the reference chunk size for dynamic dispatch: large
// enough that dispatcher contention is negligible, small enough to avoid
// tail imbalance on the skewed column degrees seen in power-law graphs.
const DefaultChunkSize = 4096

// Config configures a substrate call.
type Config struct {
	// Threads is the number of workers to use for any non-Sequential
	// kind. Values <= 1 degrade to Sequential regardless of Kind.
	Threads int
	// ChunkSize is the unit of dispatch for ThreadPool and WorkStealing.
	// Defaults to DefaultChunkSize when <= 0.
	ChunkSize int
}

func (c Config) chunkSize() int {
	if c.ChunkSize <= 0 {
		return DefaultChunkSize
	}
	return c.ChunkSize
}

func (c Config) workers() int {
	if c.Threads < 1 {
		return 1
	}
	return c.Threads
}

// For runs fn(begin, end) over disjoint sub-intervals that together cover
// [0, n), using the strategy named by kind. It returns only after every
// index has been visited and every store a worker performed happens
// before the return (each flavor joins via a WaitGroup, channel drain, or
// errgroup.Wait, all of which provide that release/acquire edge).
func For(ctx context.Context, kind Kind, cfg Config, n int, fn func(begin, end int)) {
	if n <= 0 {
		return
	}
	if cfg.workers() <= 1 {
		kind = Sequential
	}

	switch kind {
	case Sequential:
		fn(0, n)
	case ThreadPool:
		forThreadPool(ctx, cfg, n, fn)
	case WorkStealing:
		forWorkStealing(ctx, cfg, n, fn)
	case ForkJoin:
		forForkJoin(ctx, cfg, n, fn)
	default:
		fn(0, n)
	}
}

// forThreadPool dispatches chunks from a single shared atomic counter:
// each worker fetch-adds the chunk size to claim its next interval. This
// is the "atomic chunk dispatcher" of the specification — chunk
// boundaries are disjoint by construction, so the fetch-add itself only
// needs relaxed ordering.
func forThreadPool(ctx context.Context, cfg Config, n int, fn func(begin, end int)) {
	chunk := cfg.chunkSize()
	var cursor atomic.Int64
	workers := cfg.workers()
	if workers > (n+chunk-1)/chunk {
		workers = (n + chunk - 1) / chunk
	}
	if workers < 1 {
		workers = 1
	}

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				default:
				}
				start := int(cursor.Add(int64(chunk))) - chunk
				if start >= n {
					return
				}
				end := start + chunk
				if end > n {
					end = n
				}
				fn(start, end)
			}
		}()
	}
	wg.Wait()
}

// forWorkStealing pre-splits [0, n) into chunks and lets idle workers
// drain them from a shared buffered channel, so a worker that finishes
// its chunk early immediately steals the next one instead of sitting on
// a statically assigned slice.
func forWorkStealing(ctx context.Context, cfg Config, n int, fn func(begin, end int)) {
	chunk := cfg.chunkSize()
	numChunks := (n + chunk - 1) / chunk
	chunks := make(chan [2]int, numChunks)
	for start := 0; start < n; start += chunk {
		end := start + chunk
		if end > n {
			end = n
		}
		chunks <- [2]int{start, end}
	}
	close(chunks)

	workers := cfg.workers()
	if workers > numChunks {
		workers = numChunks
	}
	if workers < 1 {
		workers = 1
	}

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case c, ok := <-chunks:
					if !ok {
						return
					}
					fn(c[0], c[1])
				}
			}
		}()
	}
	wg.Wait()
}

// forForkJoin splits [0, n) into one chunk per worker and runs each under
// an errgroup.Group with a concurrency limit, joining at Wait(). This is
// closest to a thread-pool-of-futures discipline: every child is spawned
// up front rather than pulling work dynamically.
func forForkJoin(ctx context.Context, cfg Config, n int, fn func(begin, end int)) {
	workers := cfg.workers()
	if workers > n {
		workers = n
	}
	chunkSize := (n + workers - 1) / workers

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for start := 0; start < n; start += chunkSize {
		end := start + chunkSize
		if end > n {
			end = n
		}
		start, end := start, end
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			fn(start, end)
			return nil
		})
	}
	_ = g.Wait()
}

// Reduce runs fn(begin, end) over disjoint chunks covering [0, n) and
// sums the non-negative per-chunk counts returned by fn, using the same
// four strategies as For.
func Reduce(ctx context.Context, kind Kind, cfg Config, n int, fn func(begin, end int) int64) int64 {
	if n <= 0 {
		return 0
	}
	if cfg.workers() <= 1 {
		return fn(0, n)
	}

	var total atomic.Int64
	For(ctx, kind, cfg, n, func(begin, end int) {
		total.Add(fn(begin, end))
	})
	return total.Load()
}
