// Package rng centralizes deterministic random generation for the engines
// that need it: weight initialization in neural and demo arrays in sorting.
//
// Goals:
//   - Determinism: same seed ⇒ identical networks and arrays across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//   - No panics or logging; invalid ranges are reported via sentinel errors.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand across goroutines.
//   - Use Derive to create independent streams (e.g. one per playback lane).
package rng

import (
	"errors"
	"math/rand"
)

// DefaultSeed is the fixed “zero” seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const DefaultSeed int64 = 1

// Sentinel errors returned by range helpers.
var (
	// ErrBadRange indicates lo > hi for an integer or float range.
	ErrBadRange = errors.New("rng: lower bound exceeds upper bound")

	// ErrNegativeCount indicates a negative element count was requested.
	ErrNegativeCount = errors.New("rng: count must be non-negative")
)

// FromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use DefaultSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func FromSeed(seed int64) *rand.Rand {
	var s int64
	s = seed
	if s == 0 {
		s = DefaultSeed
	}
	return rand.New(rand.NewSource(s))
}

// DeriveSeed mixes a parent seed and a stream identifier into a new 64-bit seed
// using a SplitMix64-style finalizer, so neighbouring stream ids yield
// uncorrelated children.
//
// Complexity: O(1).
func DeriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// Derive creates an independent deterministic RNG stream based on a base RNG
// and a stream identifier. If base==nil, DefaultSeed is used as the parent.
// Otherwise base.Int63() is consumed once, so reusing a stream id on the same
// base still yields distinct children.
//
// Complexity: O(1).
func Derive(base *rand.Rand, stream uint64) *rand.Rand {
	var parent int64
	if base == nil {
		parent = DefaultSeed
	} else {
		parent = base.Int63()
	}
	return rand.New(rand.NewSource(DeriveSeed(parent, stream)))
}

// Uniform draws a float64 uniformly from [lo, hi).
// If r==nil, the default deterministic stream is used.
//
// Complexity: O(1).
func Uniform(r *rand.Rand, lo, hi float64) (float64, error) {
	if lo > hi {
		return 0, ErrBadRange
	}
	if r == nil {
		r = FromSeed(0)
	}
	return lo + r.Float64()*(hi-lo), nil
}

// Ints returns n integers drawn uniformly from the closed range [lo, hi].
// If r==nil, the default deterministic stream is used.
//
// Complexity: O(n) time, O(n) space.
func Ints(r *rand.Rand, n, lo, hi int) ([]int, error) {
	if n < 0 {
		return nil, ErrNegativeCount
	}
	if lo > hi {
		return nil, ErrBadRange
	}
	if r == nil {
		r = FromSeed(0)
	}

	out := make([]int, n)
	span := hi - lo + 1
	var i int
	for i = 0; i < n; i++ {
		out[i] = lo + r.Intn(span)
	}
	return out, nil
}

// Shuffle performs an in-place Fisher–Yates shuffle of a using r.
// If r==nil, the default deterministic stream is used.
//
// Complexity: O(n) time, O(1) extra space.
func Shuffle(a []int, r *rand.Rand) {
	n := len(a)
	if n <= 1 {
		return
	}
	if r == nil {
		r = FromSeed(0)
	}

	var i, j int
	for i = n - 1; i > 0; i-- {
		j = r.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}
