package sorting

import "fmt"

// Merge runs top-down merge sort on a copy of values and records a snapshot
// after every single write into the array. The range [left, right] is split
// at mid = (left+right)/2; ties take the left element, so the sort is stable.
//
// Consecutive steps differ in at most one index. A write may store the value
// already present, in which case two steps are equal.
// values is never modified.
//
// Errors: ErrTooLarge.
func Merge(values []int, opts ...Option) (Trace, error) {
	if len(values) > MaxLen {
		return Trace{}, fmt.Errorf("%w: %d > %d", ErrTooLarge, len(values), MaxLen)
	}
	// Every merge comparison is followed by a write, so PerComparison and
	// PerMutation record the same trace and the granularity is not consulted.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	m := &merger{rec: newRecorder(values)}
	m.sort(0, len(values)-1)

	return Trace{Algorithm: AlgoMerge, Steps: m.rec.steps, Stats: m.st}, nil
}

type merger struct {
	rec *recorder
	st  Stats
}

func (m *merger) sort(left, right int) {
	if left >= right {
		return
	}
	mid := (left + right) / 2
	m.sort(left, mid)
	m.sort(mid+1, right)
	m.merge(left, mid, right)
}

func (m *merger) merge(left, mid, right int) {
	a := m.rec.a
	l := append([]int(nil), a[left:mid+1]...)
	r := append([]int(nil), a[mid+1:right+1]...)
	m.st.Passes++

	i, j, k := 0, 0, left
	// 1) Interleave while both halves have elements.
	for i < len(l) && j < len(r) {
		m.st.Comparisons++
		if l[i] <= r[j] {
			a[k] = l[i]
			i++
		} else {
			a[k] = r[j]
			j++
			m.st.Swaps++
		}
		k++
		m.rec.snap()
	}
	// 2) Drain the left tail.
	for ; i < len(l); i, k = i+1, k+1 {
		a[k] = l[i]
		m.rec.snap()
	}
	// 3) Drain the right tail.
	for ; j < len(r); j, k = j+1, k+1 {
		a[k] = r[j]
		m.rec.snap()
	}
}
