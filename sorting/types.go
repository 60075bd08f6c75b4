package sorting

import "errors"

// Sentinel errors returned by the step generators.
var (
	// ErrTooLarge indicates an input longer than MaxLen.
	ErrTooLarge = errors.New("sorting: input exceeds MaxLen")

	// ErrBadRange indicates RandomValues bounds with lo > hi or a negative count.
	ErrBadRange = errors.New("sorting: invalid value range")
)

// MaxLen is the largest input the eager generators accept. Every step is a
// full snapshot and a reversed input makes bubble sort swap n(n-1)/2 times,
// so the worst trace at MaxLen holds 4951 copies of 100 ints.
const MaxLen = 100

// Algorithm names a step generator.
type Algorithm string

const (
	AlgoBubble Algorithm = "bubble"
	AlgoMerge  Algorithm = "merge"
)

// Granularity selects which events produce a snapshot.
type Granularity int

const (
	// PerMutation records a snapshot after every change to the array:
	// each bubble swap, each merge write.
	PerMutation Granularity = iota

	// PerComparison additionally records after comparisons that leave the
	// array unchanged. For merge sort every comparison is followed by a
	// write, so both policies give the same trace.
	PerComparison
)

// String implements fmt.Stringer.
func (g Granularity) String() string {
	switch g {
	case PerMutation:
		return "mutation"
	case PerComparison:
		return "comparison"
	default:
		return "unknown"
	}
}

// Stats counts the work done by a generator.
//
// For merge sort Swaps counts "merges": writes where the right-hand head was
// taken over the left. Passes counts outer bubble passes, or merge calls.
type Stats struct {
	Comparisons int
	Swaps       int
	Passes      int
}

// Trace is the eager output of a generator. Steps[0] is the input; the last
// step is sorted ascending. Every step is an independent copy.
type Trace struct {
	Algorithm Algorithm
	Steps     [][]int
	Stats     Stats
}

// Final returns the last snapshot.
func (t Trace) Final() []int {
	if len(t.Steps) == 0 {
		return nil
	}
	return t.Steps[len(t.Steps)-1]
}

// Options configures a generator.
type Options struct {
	Granularity Granularity
}

// Option mutates Options.
type Option func(*Options)

// WithGranularity selects the snapshot policy.
func WithGranularity(g Granularity) Option {
	return func(o *Options) {
		o.Granularity = g
	}
}

// DefaultOptions returns PerMutation.
func DefaultOptions() Options {
	return Options{Granularity: PerMutation}
}

// recorder appends snapshots of a working array.
type recorder struct {
	a     []int
	steps [][]int
}

func newRecorder(values []int) *recorder {
	r := &recorder{a: append([]int(nil), values...)}
	r.snap()
	return r
}

func (r *recorder) snap() {
	r.steps = append(r.steps, append([]int(nil), r.a...))
}
