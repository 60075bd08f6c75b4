package sorting

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/stepviz/rng"
)

// RandomValues returns n values drawn uniformly from [lo, hi].
// If r==nil, the default deterministic stream is used.
//
// Errors: ErrBadRange, ErrTooLarge.
func RandomValues(r *rand.Rand, n, lo, hi int) ([]int, error) {
	if n > MaxLen {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooLarge, n, MaxLen)
	}
	if r == nil {
		r = rng.FromSeed(rng.DefaultSeed)
	}
	out, err := rng.Ints(r, n, lo, hi)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadRange, err)
	}
	return out, nil
}

// Permutation returns 1..n in random order: distinct bar heights, so every
// swap is visible.
//
// Errors: ErrBadRange, ErrTooLarge.
func Permutation(r *rand.Rand, n int) ([]int, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative count %d", ErrBadRange, n)
	}
	if n > MaxLen {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooLarge, n, MaxLen)
	}
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	rng.Shuffle(out, r)
	return out, nil
}
