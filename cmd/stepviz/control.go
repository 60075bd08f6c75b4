package main

import (
	"bufio"
	"io"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/stepviz/playback"
)

// newDriver builds a playback driver for one animation; under --paused it
// starts suspended.
func (a *app) newDriver(name string, interval time.Duration) (*playback.Driver, error) {
	opts := []playback.Option{
		playback.WithInterval(interval),
		playback.WithLogger(a.logger),
		playback.WithName(name),
	}
	if a.paused {
		opts = append(opts, playback.StartPaused())
	}
	return playback.New(opts...)
}

// control starts the stdin reader under --interactive. Every line is one
// command applied to all drivers:
//
//	p, empty  toggle pause
//	n         one frame while paused
//	q         stop
//
// Reading ends at EOF or after q.
func (a *app) control(in io.Reader, drivers ...*playback.Driver) {
	if !a.interactive || len(drivers) == 0 {
		return
	}
	go func() {
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			if !a.apply(strings.TrimSpace(sc.Text()), drivers) {
				return
			}
		}
	}()
}

// apply runs one control command and reports whether to keep reading.
func (a *app) apply(command string, drivers []*playback.Driver) bool {
	switch command {
	case "", "p":
		for _, d := range drivers {
			if d.Paused() {
				d.Resume()
			} else {
				d.Pause()
			}
		}
	case "n":
		for _, d := range drivers {
			d.Step()
		}
	case "q":
		for _, d := range drivers {
			d.Stop()
		}
		return false
	default:
		a.logger.Warn("Unknown control command", zap.String("command", command))
	}
	return true
}
