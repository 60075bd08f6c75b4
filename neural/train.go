package neural

import (
	"fmt"
	"math"
)

// Loss returns the mean squared error of n over pts:
//
//	loss = mean((o(p) - label)²)
//
// With sigmoid outputs and 0/1 labels the result lies in [0, 1].
// Zero points yield 0.
//
// Errors: ErrDimensionMismatch.
func Loss(n Network, pts []Point) (float64, error) {
	if len(pts) == 0 {
		return 0, nil
	}
	if err := n.Validate(); err != nil {
		return 0, err
	}
	return loss(n, pts), nil
}

func loss(n Network, pts []Point) float64 {
	var total, e float64
	for _, p := range pts {
		e = forward(n, p.X, p.Y).Output - float64(p.Label)
		total += e * e
	}
	return total / float64(len(pts))
}

// TrainEpoch performs one online pass over pts and returns the updated
// network. The argument is never modified.
//
// For every point, in order:
//
//	o            = forward(point)
//	δo           = (o - label) · o · (1 - o)
//	w_oi        -= lr · δo · h_i          ; bias_o -= lr · δo
//	δh_i         = δo · w_oi(before this update) · h_i · (1 - h_i)
//	w_i0        -= lr · δh_i · x          ; w_i1 -= lr · δh_i · y
//	bias_i      -= lr · δh_i
//
// Each sample sees the weights left by the previous sample. Training on zero
// points returns an unchanged copy.
//
// Errors: ErrDimensionMismatch, ErrBadLearningRate.
func TrainEpoch(n Network, pts []Point, lr float64) (Network, error) {
	if err := n.Validate(); err != nil {
		return Network{}, err
	}
	if err := validateRate(lr); err != nil {
		return Network{}, err
	}

	next := n.Clone()
	H := len(next.Hidden)
	oldOut := make([]float64, H)

	var act Activation
	var outDelta, hidDelta float64
	for _, p := range pts {
		act = forward(next, p.X, p.Y)

		// 1) Output layer delta: MSE derivative × sigmoid derivative.
		outDelta = (act.Output - float64(p.Label)) * act.Output * (1 - act.Output)

		// 2) Output update; keep the pre-update weights for the hidden error.
		copy(oldOut, next.Output.Weights)
		for i := 0; i < H; i++ {
			next.Output.Weights[i] -= lr * outDelta * act.Hidden[i]
		}
		next.Output.Bias -= lr * outDelta

		// 3) Hidden layer update.
		for i := 0; i < H; i++ {
			hidDelta = outDelta * oldOut[i] * act.Hidden[i] * (1 - act.Hidden[i])
			next.Hidden[i].Weights[0] -= lr * hidDelta * p.X
			next.Hidden[i].Weights[1] -= lr * hidDelta * p.Y
			next.Hidden[i].Bias -= lr * hidDelta
		}
	}

	return next, nil
}

func validateRate(lr float64) error {
	if !(lr > 0) || math.IsInf(lr, 0) {
		return fmt.Errorf("%w: %v", ErrBadLearningRate, lr)
	}
	return nil
}
