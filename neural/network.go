package neural

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/stepviz/rng"
)

// Sigmoid returns 1/(1+e^-z) with z clamped to [-500, 500].
func Sigmoid(z float64) float64 {
	if z > sigmoidClamp {
		z = sigmoidClamp
	} else if z < -sigmoidClamp {
		z = -sigmoidClamp
	}
	return 1 / (1 + math.Exp(-z))
}

// NewNetwork allocates a network with the given hidden width and draws every
// weight and bias independently from U[-1, 1).
// If r==nil, the default deterministic stream is used.
//
// Errors: ErrBadHiddenUnits.
func NewNetwork(hidden int, r *rand.Rand) (Network, error) {
	if hidden < MinHiddenUnits || hidden > MaxHiddenUnits {
		return Network{}, fmt.Errorf("%w: %d", ErrBadHiddenUnits, hidden)
	}
	if r == nil {
		r = rng.FromSeed(0)
	}

	draw := func() float64 {
		// Bounds are constant and ordered; Uniform cannot fail.
		v, _ := rng.Uniform(r, -1, 1)
		return v
	}

	n := Network{Hidden: make([]Unit, hidden)}
	for i := range n.Hidden {
		w := make([]float64, Inputs)
		for j := range w {
			w[j] = draw()
		}
		n.Hidden[i] = Unit{Weights: w, Bias: draw()}
	}
	n.Output.Weights = make([]float64, hidden)
	for i := range n.Output.Weights {
		n.Output.Weights[i] = draw()
	}
	n.Output.Bias = draw()

	return n, nil
}

// HiddenUnits returns the hidden layer width.
func (n Network) HiddenUnits() int { return len(n.Hidden) }

// Validate checks the shape invariant: at least one hidden unit, each with
// exactly Inputs weights, and one output weight per hidden unit.
func (n Network) Validate() error {
	if len(n.Hidden) == 0 {
		return fmt.Errorf("%w: no hidden units", ErrDimensionMismatch)
	}
	for i, u := range n.Hidden {
		if len(u.Weights) != Inputs {
			return fmt.Errorf("%w: hidden unit %d has %d weights, want %d",
				ErrDimensionMismatch, i, len(u.Weights), Inputs)
		}
	}
	if len(n.Output.Weights) != len(n.Hidden) {
		return fmt.Errorf("%w: output has %d weights for %d hidden units",
			ErrDimensionMismatch, len(n.Output.Weights), len(n.Hidden))
	}
	return nil
}

// Clone deep-copies the network.
func (n Network) Clone() Network {
	c := Network{Hidden: make([]Unit, len(n.Hidden))}
	for i, u := range n.Hidden {
		c.Hidden[i] = Unit{Weights: append([]float64(nil), u.Weights...), Bias: u.Bias}
	}
	c.Output = Unit{Weights: append([]float64(nil), n.Output.Weights...), Bias: n.Output.Bias}
	return c
}

// Forward runs the network on (x, y):
//
//	h_i = sigmoid(bias_i + w_i0·x + w_i1·y)
//	o   = sigmoid(bias_o + Σ h_i·w_oi)
//
// Forward is pure: the same inputs and weights give the same result.
//
// Errors: ErrDimensionMismatch.
func Forward(n Network, x, y float64) (Activation, error) {
	if err := n.Validate(); err != nil {
		return Activation{}, err
	}
	return forward(n, x, y), nil
}

// forward assumes n has been validated.
func forward(n Network, x, y float64) Activation {
	act := Activation{Hidden: make([]float64, len(n.Hidden))}

	sum := n.Output.Bias
	for i, u := range n.Hidden {
		act.Hidden[i] = Sigmoid(u.Bias + u.Weights[0]*x + u.Weights[1]*y)
		sum += act.Hidden[i] * n.Output.Weights[i]
	}
	act.Output = Sigmoid(sum)

	return act
}

// ValidatePoint checks the label and coordinate ranges of p.
func ValidatePoint(p Point) error {
	if p.Label != 0 && p.Label != 1 {
		return fmt.Errorf("%w: got %d", ErrBadLabel, p.Label)
	}
	if !inUnitRange(p.X) || !inUnitRange(p.Y) {
		return fmt.Errorf("%w: (%v, %v)", ErrPointOutOfRange, p.X, p.Y)
	}
	return nil
}

// inUnitRange is false for NaN as well.
func inUnitRange(v float64) bool { return v >= -1 && v <= 1 }

// DemoPoints returns four points split by the sign of x, a dataset every
// network width can learn.
func DemoPoints() []Point {
	return []Point{
		{X: -0.5, Y: -0.5, Label: 0},
		{X: 0.5, Y: 0.5, Label: 1},
		{X: -0.5, Y: 0.5, Label: 0},
		{X: 0.5, Y: -0.5, Label: 1},
	}
}
