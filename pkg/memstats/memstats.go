// Package memstats samples heap usage around a benchmark trial.
package memstats

import "runtime"

// Sampler measures heap growth across a trial by snapshotting
// runtime.MemStats before and after the measured section. Only the two
// snapshots are compared; a higher heap level reached and released in
// between is not observed.
type Sampler struct {
	before runtime.MemStats
}

// Start records the current heap usage.
func (s *Sampler) Start() {
	runtime.ReadMemStats(&s.before)
}

// PeakBytes returns the growth in live heap bytes (HeapAlloc) since Start.
// A negative delta (GC reclaimed more than the trial allocated) is reported
// as zero since negative peak usage is not meaningful.
func (s *Sampler) PeakBytes() int64 {
	var after runtime.MemStats
	runtime.ReadMemStats(&after)

	if after.HeapAlloc <= s.before.HeapAlloc {
		return 0
	}
	return int64(after.HeapAlloc - s.before.HeapAlloc)
}

// Measure runs fn and returns the heap growth observed across its
// execution, in bytes.
func Measure(fn func()) int64 {
	var s Sampler
	s.Start()
	fn()
	return s.PeakBytes()
}
