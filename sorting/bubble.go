package sorting

import "fmt"

// Bubble runs exchange sort on a copy of values and records a snapshot after
// every swap (and after every comparison with PerComparison):
//
//	for i in [0, n-1):
//	    for j in [0, n-1-i):
//	        compare a[j], a[j+1]; swap if a[j] > a[j+1]
//
// All n-1 passes run; there is no early exit on a sorted pass.
// values is never modified.
//
// Errors: ErrTooLarge.
func Bubble(values []int, opts ...Option) (Trace, error) {
	if len(values) > MaxLen {
		return Trace{}, fmt.Errorf("%w: %d > %d", ErrTooLarge, len(values), MaxLen)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	rec := newRecorder(values)
	a := rec.a
	n := len(a)
	var st Stats
	for i := 0; i < n-1; i++ {
		st.Passes++
		for j := 0; j < n-1-i; j++ {
			st.Comparisons++
			if a[j] > a[j+1] {
				a[j], a[j+1] = a[j+1], a[j]
				st.Swaps++
				rec.snap()
			} else if o.Granularity == PerComparison {
				rec.snap()
			}
		}
	}

	return Trace{Algorithm: AlgoBubble, Steps: rec.steps, Stats: st}, nil
}
