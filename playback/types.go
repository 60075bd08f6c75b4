package playback

import (
	"errors"
	"time"

	"go.uber.org/zap"
)

// Sentinel errors returned by the driver.
var (
	// ErrBadInterval indicates a non-positive tick interval.
	ErrBadInterval = errors.New("playback: interval must be positive")

	// ErrAlreadyRunning indicates Run was called on a driver that is already running.
	ErrAlreadyRunning = errors.New("playback: driver already running")
)

// DefaultInterval is the tick period used when no WithInterval option is given.
const DefaultInterval = 100 * time.Millisecond

// TickFunc advances the driven engine by one step. It returns done=true when
// the engine reached its terminal step; a non-nil error stops playback.
type TickFunc func() (done bool, err error)

// Options configures a Driver.
type Options struct {
	Interval time.Duration
	Logger   *zap.Logger
	Name     string
	Paused   bool // start in the paused state
}

// Option mutates Options.
type Option func(*Options)

// WithInterval sets the tick period. Validated by New.
func WithInterval(d time.Duration) Option {
	return func(o *Options) {
		o.Interval = d
	}
}

// WithLogger sets the structured logger. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithName labels the driver in log lines ("dijkstra", "bubble", ...).
func WithName(name string) Option {
	return func(o *Options) {
		o.Name = name
	}
}

// StartPaused makes Run wait for Resume or Step before the first tick.
func StartPaused() Option {
	return func(o *Options) {
		o.Paused = true
	}
}

// DefaultOptions returns DefaultInterval, a no-op logger and the name "playback".
func DefaultOptions() Options {
	return Options{
		Interval: DefaultInterval,
		Logger:   zap.NewNop(),
		Name:     "playback",
	}
}
