package neural

import "errors"

// Sentinel errors returned by the trainer.
var (
	// ErrDimensionMismatch indicates a network whose layer shapes disagree with
	// each other or with the configured hidden-unit count.
	ErrDimensionMismatch = errors.New("neural: network dimensions do not match")

	// ErrBadHiddenUnits indicates a hidden-unit count outside [MinHiddenUnits, MaxHiddenUnits].
	ErrBadHiddenUnits = errors.New("neural: hidden unit count out of range")

	// ErrBadLearningRate indicates a learning rate that is not finite and positive.
	ErrBadLearningRate = errors.New("neural: learning rate must be finite and positive")

	// ErrBadLabel indicates a point label other than 0 or 1.
	ErrBadLabel = errors.New("neural: label must be 0 or 1")

	// ErrPointOutOfRange indicates a coordinate outside [-1, 1] or NaN.
	ErrPointOutOfRange = errors.New("neural: point coordinate outside [-1, 1]")

	// ErrBadGrid indicates a non-positive decision-boundary resolution.
	ErrBadGrid = errors.New("neural: grid dimensions must be positive")
)

const (
	// Inputs is the fixed width of the input layer (x, y).
	Inputs = 2

	// MinHiddenUnits and MaxHiddenUnits bound the hidden layer width.
	MinHiddenUnits = 1
	MaxHiddenUnits = 64

	// sigmoidClamp bounds the sigmoid argument so math.Exp never overflows.
	sigmoidClamp = 500.0
)

// Point is one labeled sample on the normalized plane.
type Point struct {
	X     float64 `yaml:"x" json:"x"`
	Y     float64 `yaml:"y" json:"y"`
	Label int     `yaml:"label" json:"label"` // 0 or 1
}

// Unit is one neuron: incoming weights plus a bias.
type Unit struct {
	Weights []float64
	Bias    float64
}

// Network is a 2-H-1 fully connected sigmoid network.
//
// Hidden[i].Weights has length Inputs (weights for x and y);
// Output.Weights has length len(Hidden).
type Network struct {
	Hidden []Unit
	Output Unit
}

// Activation is the result of a forward pass.
type Activation struct {
	Hidden []float64
	Output float64
}

// Config holds the hyperparameters of a training run.
type Config struct {
	HiddenUnits  int     // hidden layer width, default 4
	LearningRate float64 // step size, default 0.1
}

// DefaultConfig returns the showcase hyperparameters: 4 hidden units, rate 0.1.
func DefaultConfig() Config {
	return Config{
		HiddenUnits:  4,
		LearningRate: 0.1,
	}
}

// Run is the training-run snapshot the driver stores between ticks.
//
// Epoch counts completed passes since the last (re)initialization. Loss is
// the mean squared error of Network over Points, kept current by every
// reducer in run.go.
type Run struct {
	Network Network
	Points  []Point
	Epoch   int
	Loss    float64
	Config  Config
}
