// Package neural implements a tiny 2-H-1 sigmoid network trained by online
// gradient descent, sized for watching a decision boundary form in real time.
//
// Architecture:
//
//	input (x, y) ─▶ H hidden sigmoid units ─▶ 1 sigmoid output
//
// Every hidden unit has two weights and a bias; the output unit has H weights
// and a bias. Weights start uniform in [-1, 1).
//
// Training:
//
//   - Loss is the mean squared error over all labeled points (0 for none).
//   - TrainEpoch is one online pass: weights move after every sample, and the
//     hidden error of a sample uses the output weights from before that
//     sample's output update.
//   - Step wraps TrainEpoch for a playback driver: one epoch per tick, Epoch+1,
//     Loss recomputed on the new weights.
//
// Lifecycle:
//
//	run, _ := neural.NewRun(neural.DefaultConfig(), rng.FromSeed(7))
//	run, _ = run.WithPoints(neural.DemoPoints()...)
//	for i := 0; i < 500; i++ {
//	    run, _ = neural.Step(run)
//	}
//	run, _ = run.WithHiddenUnits(6, r) // synchronous reinit, points kept
//
// All functions are pure: Network and Run values are copied, never mutated in
// place, so an interrupted run is always the last fully applied epoch.
//
// Errors:
//
//	ErrDimensionMismatch - layer shapes disagree with each other or with Config.
//	ErrBadHiddenUnits    - width outside [1, 64].
//	ErrBadLearningRate   - rate not finite and positive.
//	ErrBadLabel          - label other than 0 or 1.
//	ErrPointOutOfRange   - coordinate outside [-1, 1].
//	ErrBadGrid           - non-positive Boundary resolution.
package neural
