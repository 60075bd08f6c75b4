// Package playback provides the timer side of every visualization: a Driver
// that calls one step function per tick, and Frames, which turns an eager
// slice of snapshots into such a function.
//
// Engines never own timers. They expose pure step functions; the Driver owns
// the time.Ticker, pause state and cancellation:
//
//	d, _ := playback.New(playback.WithInterval(50*time.Millisecond),
//	    playback.WithLogger(log), playback.WithName("bubble"))
//	fr := playback.NewFrames(trace.Steps, draw)
//	fr.Show()
//	err := d.Run(ctx, fr.Tick)
//
// Every Run gets a fresh uuid, attached to each log line as run_id.
package playback
