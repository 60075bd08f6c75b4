package main

import (
	"fmt"
	"io"
	"math/rand"
	"sync"

	"github.com/katalvlaran/stepviz/rng"
)

// Random stream ids; each command draws from its own stream of the seed.
const (
	streamSortValues uint64 = iota + 1
	streamWeights
)

func (a *app) rand(stream uint64) *rand.Rand {
	return rng.Derive(rng.FromSeed(a.cfg.Seed), stream)
}

const clearScreen = "\x1b[H\x1b[2J"

// screen writes whole frames. When clear is set every frame replaces the
// previous one; otherwise frames are appended, which suits pipes and tests.
type screen struct {
	mu    sync.Mutex
	w     io.Writer
	clear bool
}

func (a *app) screen(w io.Writer) *screen {
	return &screen{w: w, clear: !a.plain && !a.noAnim}
}

func (s *screen) show(frame string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.clear {
		fmt.Fprint(s.w, clearScreen)
	}
	fmt.Fprintln(s.w, frame)
}
