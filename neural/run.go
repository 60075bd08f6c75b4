package neural

import (
	"fmt"
	"math/rand"
)

// NewRun validates cfg and returns a fresh run: a newly drawn network, no
// points, epoch 0, loss 0.
//
// Errors: ErrBadHiddenUnits, ErrBadLearningRate.
func NewRun(cfg Config, r *rand.Rand) (Run, error) {
	if err := validateRate(cfg.LearningRate); err != nil {
		return Run{}, err
	}
	n, err := NewNetwork(cfg.HiddenUnits, r)
	if err != nil {
		return Run{}, err
	}
	return Run{Network: n, Config: cfg}, nil
}

// Step trains one epoch and returns the next run with Epoch+1 and Loss
// recomputed on the updated network. With no points it is a no-op and the
// run is returned as is.
//
// A network whose shape disagrees with Config.HiddenUnits is rejected with
// ErrDimensionMismatch; Step never skips silently.
func Step(run Run) (Run, error) {
	if err := run.check(); err != nil {
		return run, err
	}
	if len(run.Points) == 0 {
		return run, nil
	}

	n, err := TrainEpoch(run.Network, run.Points, run.Config.LearningRate)
	if err != nil {
		return run, err
	}

	next := run
	next.Network = n
	next.Points = append([]Point(nil), run.Points...)
	next.Epoch = run.Epoch + 1
	next.Loss = loss(n, next.Points)
	return next, nil
}

// WithHiddenUnits reinitializes the network at the new width. Points are
// kept; epoch resets to 0 and loss is recomputed for the fresh network.
// The reinitialization happens in the same call as the parameter change,
// so no run with a stale shape is ever observable.
//
// Errors: ErrBadHiddenUnits.
func (run Run) WithHiddenUnits(hidden int, r *rand.Rand) (Run, error) {
	n, err := NewNetwork(hidden, r)
	if err != nil {
		return run, err
	}

	next := run
	next.Config.HiddenUnits = hidden
	next.Network = n
	next.Points = append([]Point(nil), run.Points...)
	next.Epoch = 0
	next.Loss = loss0(n, next.Points)
	return next, nil
}

// WithLearningRate changes the step size for subsequent epochs.
//
// Errors: ErrBadLearningRate.
func (run Run) WithLearningRate(lr float64) (Run, error) {
	if err := validateRate(lr); err != nil {
		return run, err
	}
	next := run
	next.Config.LearningRate = lr
	return next, nil
}

// WithPoints appends validated points and refreshes the loss. Nothing is
// appended if any point is invalid.
//
// Errors: ErrBadLabel, ErrPointOutOfRange, ErrDimensionMismatch.
func (run Run) WithPoints(pts ...Point) (Run, error) {
	for i, p := range pts {
		if err := ValidatePoint(p); err != nil {
			return run, fmt.Errorf("point %d: %w", i, err)
		}
	}
	if err := run.check(); err != nil {
		return run, err
	}

	next := run
	next.Points = make([]Point, 0, len(run.Points)+len(pts))
	next.Points = append(next.Points, run.Points...)
	next.Points = append(next.Points, pts...)
	next.Loss = loss0(run.Network, next.Points)
	return next, nil
}

// Reset draws a new network at the current width and clears all points.
//
// Errors: ErrBadHiddenUnits.
func (run Run) Reset(r *rand.Rand) (Run, error) {
	n, err := NewNetwork(run.Config.HiddenUnits, r)
	if err != nil {
		return run, err
	}
	return Run{Network: n, Config: run.Config}, nil
}

// check verifies the run-level dimension invariant.
func (run Run) check() error {
	if err := run.Network.Validate(); err != nil {
		return err
	}
	if run.Network.HiddenUnits() != run.Config.HiddenUnits {
		return fmt.Errorf("%w: network has %d hidden units, config wants %d",
			ErrDimensionMismatch, run.Network.HiddenUnits(), run.Config.HiddenUnits)
	}
	return nil
}

// loss0 is loss with the empty-set convention; n must be valid.
func loss0(n Network, pts []Point) float64 {
	if len(pts) == 0 {
		return 0
	}
	return loss(n, pts)
}
