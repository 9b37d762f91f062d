package parallel

// MaxWorkers is the largest number of slices Partition produces.
const MaxWorkers = 8

// Slice is a contiguous range [Start, Start+Count) of work items.
type Slice struct {
	Start int
	Count int
}

// End returns the exclusive upper bound of the slice.
func (s Slice) End() int {
	return s.Start + s.Count
}

// Workers returns the number of slices Partition(total, requested) would
// produce: requested clamped to [1, MaxWorkers] and to total.
func Workers(total, requested int) int {
	if total <= 0 {
		return 0
	}
	return max(1, min(requested, MaxWorkers, total))
}

// Partition splits [0, total) into ascending, contiguous slices, one per
// worker. Every slice but the last holds total/workers items; the last
// absorbs the remainder, so it may be larger than the others by up to
// workers-1 items. The thread request is clamped, never rejected.
// Partition(0, n) returns nil.
func Partition(total, requested int) []Slice {
	workers := Workers(total, requested)
	if workers == 0 {
		return nil
	}

	base := total / workers
	slices := make([]Slice, workers)
	for i := range workers - 1 {
		slices[i] = Slice{Start: i * base, Count: base}
	}
	last := base * (workers - 1)
	slices[workers-1] = Slice{Start: last, Count: total - last}
	return slices
}
