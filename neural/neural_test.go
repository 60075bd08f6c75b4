package neural_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stepviz/neural"
	"github.com/katalvlaran/stepviz/rng"
)

// handNet is a 1-hidden-unit network with fixed weights.
func handNet() neural.Network {
	return neural.Network{
		Hidden: []neural.Unit{{Weights: []float64{0.5, -0.5}, Bias: 0.1}},
		Output: neural.Unit{Weights: []float64{0.8}, Bias: -0.2},
	}
}

// ---- 1. Sigmoid and forward pass ----

func TestSigmoid(t *testing.T) {
	assert.Equal(t, 0.5, neural.Sigmoid(0), "sigmoid(0)")
	assert.InDelta(t, 1/(1+math.Exp(-2)), neural.Sigmoid(2), 1e-15)
	assert.Equal(t, neural.Sigmoid(500), neural.Sigmoid(1e9), "positive clamp")
	assert.Equal(t, neural.Sigmoid(-500), neural.Sigmoid(-1e9), "negative clamp")
	assert.False(t, math.IsNaN(neural.Sigmoid(math.Inf(-1))), "no NaN at -Inf")
}

func TestForward_HandComputed(t *testing.T) {
	act, err := neural.Forward(handNet(), 0.5, 0.5)
	require.NoError(t, err)
	require.Len(t, act.Hidden, 1)
	assert.InDelta(t, 0.5249791874789399, act.Hidden[0], 1e-12, "hidden activation")
	assert.InDelta(t, 0.554775122562033, act.Output, 1e-12, "output activation")
}

func TestForward_Deterministic(t *testing.T) {
	n, err := neural.NewNetwork(4, rng.FromSeed(3))
	require.NoError(t, err)
	a, _ := neural.Forward(n, 0.3, -0.7)
	b, _ := neural.Forward(n, 0.3, -0.7)
	assert.Equal(t, a, b, "same weights and input give the same output")
	assert.True(t, a.Output > 0 && a.Output < 1, "output inside (0,1)")
}

func TestNewNetwork(t *testing.T) {
	n, err := neural.NewNetwork(3, rng.FromSeed(11))
	require.NoError(t, err)
	require.NoError(t, n.Validate())
	assert.Equal(t, 3, n.HiddenUnits())

	inRange := func(v float64) bool { return v >= -1 && v < 1 }
	for i, u := range n.Hidden {
		assert.Len(t, u.Weights, neural.Inputs, "hidden %d", i)
		for _, w := range u.Weights {
			assert.True(t, inRange(w), "hidden weight %v", w)
		}
		assert.True(t, inRange(u.Bias))
	}
	assert.Len(t, n.Output.Weights, 3)

	m, _ := neural.NewNetwork(3, rng.FromSeed(11))
	assert.Equal(t, n, m, "same seed, same network")

	_, err = neural.NewNetwork(0, nil)
	assert.ErrorIs(t, err, neural.ErrBadHiddenUnits)
	_, err = neural.NewNetwork(neural.MaxHiddenUnits+1, nil)
	assert.ErrorIs(t, err, neural.ErrBadHiddenUnits)
}

func TestValidate_Mismatch(t *testing.T) {
	n := handNet()
	n.Output.Weights = []float64{1, 2}
	assert.ErrorIs(t, n.Validate(), neural.ErrDimensionMismatch, "output too wide")

	n = handNet()
	n.Hidden[0].Weights = []float64{1}
	_, err := neural.Forward(n, 0, 0)
	assert.ErrorIs(t, err, neural.ErrDimensionMismatch, "hidden unit too narrow")

	assert.ErrorIs(t, neural.Network{}.Validate(), neural.ErrDimensionMismatch, "empty network")
}

func TestValidatePoint(t *testing.T) {
	assert.NoError(t, neural.ValidatePoint(neural.Point{X: -1, Y: 1, Label: 1}))
	assert.ErrorIs(t, neural.ValidatePoint(neural.Point{Label: 2}), neural.ErrBadLabel)
	assert.ErrorIs(t, neural.ValidatePoint(neural.Point{X: 1.01}), neural.ErrPointOutOfRange)
	assert.ErrorIs(t, neural.ValidatePoint(neural.Point{Y: math.NaN()}), neural.ErrPointOutOfRange)
}

// ---- 2. Loss ----

func TestLoss(t *testing.T) {
	n := handNet()
	l, err := neural.Loss(n, nil)
	require.NoError(t, err)
	assert.Zero(t, l, "no points, zero loss")

	pts := neural.DemoPoints()
	l, err = neural.Loss(n, pts)
	require.NoError(t, err)

	var want float64
	for _, p := range pts {
		a, _ := neural.Forward(n, p.X, p.Y)
		want += (a.Output - float64(p.Label)) * (a.Output - float64(p.Label))
	}
	assert.InDelta(t, want/float64(len(pts)), l, 1e-15, "mean squared error")
	assert.True(t, l >= 0 && l <= 1, "loss in [0,1]")
}

// ---- 3. Training ----

func TestTrainEpoch_SingleSampleUsesPreUpdateWeights(t *testing.T) {
	n := handNet()
	next, err := neural.TrainEpoch(n, []neural.Point{{X: 0.5, Y: 0.5, Label: 1}}, 0.5)
	require.NoError(t, err)

	assert.InDelta(t, 0.8288660869064991, next.Output.Weights[0], 1e-12, "output weight")
	assert.InDelta(t, -0.14501479754822272, next.Output.Bias, 1e-12, "output bias")
	// Using the updated output weight would give 0.50568...
	assert.InDelta(t, 0.5054847968226515, next.Hidden[0].Weights[0], 1e-12, "hidden w0")
	assert.InDelta(t, -0.49451520317734854, next.Hidden[0].Weights[1], 1e-12, "hidden w1")
	assert.InDelta(t, 0.11096959364530298, next.Hidden[0].Bias, 1e-12, "hidden bias")

	assert.Equal(t, handNet(), n, "input network untouched")
}

func TestTrainEpoch_Errors(t *testing.T) {
	for _, lr := range []float64{0, -0.1, math.NaN(), math.Inf(1)} {
		_, err := neural.TrainEpoch(handNet(), nil, lr)
		assert.ErrorIs(t, err, neural.ErrBadLearningRate, "lr=%v", lr)
	}
	bad := handNet()
	bad.Output.Weights = nil
	_, err := neural.TrainEpoch(bad, neural.DemoPoints(), 0.1)
	assert.ErrorIs(t, err, neural.ErrDimensionMismatch)
}

func TestTrainEpoch_NoPoints(t *testing.T) {
	next, err := neural.TrainEpoch(handNet(), nil, 0.1)
	require.NoError(t, err)
	assert.Equal(t, handNet(), next)
}

func TestTraining_LossFallsOnDemoPoints(t *testing.T) {
	for _, seed := range []int64{1, 2, 3, 42} {
		n, err := neural.NewNetwork(2, rng.FromSeed(seed))
		require.NoError(t, err)

		pts := neural.DemoPoints()
		losses := make([]float64, 0, 500)
		for e := 0; e < 500; e++ {
			n, err = neural.TrainEpoch(n, pts, 0.1)
			require.NoError(t, err)
			l, _ := neural.Loss(n, pts)
			losses = append(losses, l)
		}

		avg := func(xs []float64) float64 {
			var s float64
			for _, x := range xs {
				s += x
			}
			return s / float64(len(xs))
		}
		first, last := avg(losses[:50]), avg(losses[450:])
		assert.Less(t, last, first, "seed %d: trailing average must fall", seed)
	}
}

// ---- 4. Boundary and diagram ----

func TestBoundary(t *testing.T) {
	n := handNet()
	grid, err := neural.Boundary(n, 4, 2)
	require.NoError(t, err)
	require.Len(t, grid, 2)
	require.Len(t, grid[0], 4)

	// (0,0) is the top-left corner: x=-1, y=1.
	a, _ := neural.Forward(n, -1, 1)
	assert.Equal(t, a.Output, grid[0][0])
	// row 1 of 2 is y=0, column 2 of 4 is x=0.
	a, _ = neural.Forward(n, 0, 0)
	assert.Equal(t, a.Output, grid[1][2])

	_, err = neural.Boundary(n, 0, 3)
	assert.ErrorIs(t, err, neural.ErrBadGrid)
}

func TestCell(t *testing.T) {
	r, c := neural.Cell(neural.Point{X: -1, Y: 1}, 10, 10)
	assert.Equal(t, [2]int{0, 0}, [2]int{r, c}, "top-left")
	r, c = neural.Cell(neural.Point{X: 1, Y: -1}, 10, 10)
	assert.Equal(t, [2]int{9, 9}, [2]int{r, c}, "bottom-right clamps")
	r, c = neural.Cell(neural.Point{X: 0, Y: 0}, 10, 10)
	assert.Equal(t, [2]int{5, 5}, [2]int{r, c}, "center")
}

func TestConnections(t *testing.T) {
	n, _ := neural.NewNetwork(3, rng.FromSeed(5))
	cs, err := neural.Connections(n)
	require.NoError(t, err)
	require.Len(t, cs, 2*3+3)

	assert.Equal(t, neural.Connection{Layer: 0, From: 1, To: 2, Weight: n.Hidden[2].Weights[1]}, cs[5])
	assert.Equal(t, neural.Connection{Layer: 1, From: 0, To: 0, Weight: n.Output.Weights[0]}, cs[6])
}
