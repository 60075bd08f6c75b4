package playback

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Driver owns the repeating timer of one visualization. It calls a TickFunc
// once per interval until the tick reports done, the context is cancelled or
// Stop is called. Pause and Resume gate ticking without losing position.
//
// All methods are safe for concurrent use; Run itself executes on the
// caller's goroutine and spawns none.
type Driver struct {
	opts Options

	mu      sync.Mutex
	running bool
	paused  bool
	ticks   int
	runID   string
	stop    chan struct{}
	step    chan struct{}
}

// New validates the options and returns an idle driver.
//
// Errors: ErrBadInterval.
func New(opts ...Option) (*Driver, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Interval <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrBadInterval, o.Interval)
	}

	return &Driver{
		opts:   o,
		paused: o.Paused,
		stop:   make(chan struct{}),
		step:   make(chan struct{}, 1),
	}, nil
}

// Run ticks until one of:
//   - tick returns done=true  ⇒ nil
//   - tick returns an error   ⇒ that error, wrapped with the tick number
//   - Stop is called          ⇒ nil
//   - ctx is cancelled        ⇒ ctx.Err()
//
// The engine state is whatever the last completed tick left; an interrupted
// run never sees a partial step.
//
// Errors: ErrAlreadyRunning.
func (d *Driver) Run(ctx context.Context, tick TickFunc) error {
	d.mu.Lock()
	if d.running {
		d.mu.Unlock()
		return ErrAlreadyRunning
	}
	d.running = true
	d.ticks = 0
	d.runID = uuid.NewString()
	stop := d.stop
	log := d.opts.Logger.With(zap.String("run_id", d.runID), zap.String("name", d.opts.Name))
	d.mu.Unlock()

	defer func() {
		d.mu.Lock()
		d.running = false
		d.stop = make(chan struct{})
		d.mu.Unlock()
	}()

	select {
	case <-stop:
		log.Debug("Playback stopped before the first tick")
		return nil
	default:
	}
	log.Debug("Playback started", zap.Duration("interval", d.opts.Interval))

	ticker := time.NewTicker(d.opts.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Debug("Playback cancelled", zap.Int("ticks", d.Ticks()))
			return ctx.Err()
		case <-stop:
			log.Debug("Playback stopped", zap.Int("ticks", d.Ticks()))
			return nil
		case <-d.step:
			if !d.Paused() {
				continue
			}
		case <-ticker.C:
			if d.Paused() {
				continue
			}
		}

		done, err := tick()
		n := d.count()
		if err != nil {
			log.Warn("Tick failed", zap.Int("tick", n), zap.Error(err))
			return fmt.Errorf("tick %d: %w", n, err)
		}
		if done {
			log.Debug("Playback finished", zap.Int("ticks", n))
			return nil
		}
	}
}

// Pause suspends ticking; the current step stays on screen.
func (d *Driver) Pause() {
	d.mu.Lock()
	d.paused = true
	d.mu.Unlock()
}

// Resume continues ticking at the configured interval.
func (d *Driver) Resume() {
	d.mu.Lock()
	d.paused = false
	d.mu.Unlock()
}

// Paused reports whether ticking is suspended.
func (d *Driver) Paused() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.paused
}

// Step requests exactly one tick while paused. It returns false when the
// driver is not paused or a request is already pending; a request still
// queued at Resume is dropped.
func (d *Driver) Step() bool {
	if !d.Paused() {
		return false
	}
	select {
	case d.step <- struct{}{}:
		return true
	default:
		return false
	}
}

// Stop ends the current run. Called while the driver is idle it ends the
// next run before its first tick, so `go d.Run(...)` followed by Stop never
// leaves a run behind. Safe to call more than once.
func (d *Driver) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	select {
	case <-d.stop:
	default:
		close(d.stop)
	}
}

// Running reports whether Run is in progress.
func (d *Driver) Running() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.running
}

// Ticks returns the number of ticks executed by the current or last run.
func (d *Driver) Ticks() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.ticks
}

// RunID returns the identifier of the current or last run, "" before the first.
func (d *Driver) RunID() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.runID
}

// Interval returns the configured tick period.
func (d *Driver) Interval() time.Duration { return d.opts.Interval }

func (d *Driver) count() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.ticks++
	return d.ticks
}
