package neural_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stepviz/neural"
	"github.com/katalvlaran/stepviz/rng"
)

func newRun(t *testing.T) neural.Run {
	t.Helper()
	run, err := neural.NewRun(neural.DefaultConfig(), rng.FromSeed(9))
	require.NoError(t, err)
	return run
}

func TestNewRun(t *testing.T) {
	run := newRun(t)
	assert.Equal(t, 4, run.Network.HiddenUnits())
	assert.Zero(t, run.Epoch)
	assert.Zero(t, run.Loss)
	assert.Empty(t, run.Points)

	_, err := neural.NewRun(neural.Config{HiddenUnits: 4, LearningRate: 0}, nil)
	assert.ErrorIs(t, err, neural.ErrBadLearningRate)
	_, err = neural.NewRun(neural.Config{HiddenUnits: 0, LearningRate: 0.1}, nil)
	assert.ErrorIs(t, err, neural.ErrBadHiddenUnits)
}

func TestStep_NoPointsIsNoop(t *testing.T) {
	run := newRun(t)
	next, err := neural.Step(run)
	require.NoError(t, err)
	assert.Equal(t, run, next)
}

func TestStep_AdvancesEpochAndLoss(t *testing.T) {
	run, err := newRun(t).WithPoints(neural.DemoPoints()...)
	require.NoError(t, err)
	before := run.Network.Clone()

	next, err := neural.Step(run)
	require.NoError(t, err)
	assert.Equal(t, 1, next.Epoch)

	want, _ := neural.Loss(next.Network, next.Points)
	assert.Equal(t, want, next.Loss, "loss matches the new network")
	assert.Equal(t, before, run.Network, "previous run untouched")
}

func TestStep_DimensionMismatch(t *testing.T) {
	run, _ := newRun(t).WithPoints(neural.DemoPoints()...)
	run.Config.HiddenUnits = 6

	_, err := neural.Step(run)
	assert.ErrorIs(t, err, neural.ErrDimensionMismatch)
}

func TestWithHiddenUnits_ReinitKeepsPoints(t *testing.T) {
	run, _ := newRun(t).WithPoints(neural.DemoPoints()...)
	for i := 0; i < 5; i++ {
		run, _ = neural.Step(run)
	}

	next, err := run.WithHiddenUnits(6, rng.FromSeed(1))
	require.NoError(t, err)
	assert.Equal(t, 6, next.Config.HiddenUnits)
	assert.Equal(t, 6, next.Network.HiddenUnits())
	assert.Zero(t, next.Epoch, "epoch resets")
	assert.Equal(t, run.Points, next.Points, "points kept")

	want, _ := neural.Loss(next.Network, next.Points)
	assert.Equal(t, want, next.Loss)

	// Stepping right after the change works: no stale shape is observable.
	_, err = neural.Step(next)
	assert.NoError(t, err)

	_, err = run.WithHiddenUnits(0, nil)
	assert.ErrorIs(t, err, neural.ErrBadHiddenUnits)
}

func TestWithLearningRate(t *testing.T) {
	run := newRun(t)
	next, err := run.WithLearningRate(0.3)
	require.NoError(t, err)
	assert.Equal(t, 0.3, next.Config.LearningRate)
	assert.Equal(t, 0.1, run.Config.LearningRate)

	_, err = run.WithLearningRate(-1)
	assert.ErrorIs(t, err, neural.ErrBadLearningRate)
}

func TestWithPoints(t *testing.T) {
	run := newRun(t)
	next, err := run.WithPoints(neural.Point{X: 0.2, Y: 0.1, Label: 1})
	require.NoError(t, err)
	assert.Len(t, next.Points, 1)
	assert.Greater(t, next.Loss, 0.0)
	assert.Empty(t, run.Points, "receiver untouched")

	_, err = next.WithPoints(neural.Point{X: 0, Y: 0, Label: 0}, neural.Point{X: 3, Label: 1})
	assert.ErrorIs(t, err, neural.ErrPointOutOfRange)
}

func TestReset(t *testing.T) {
	run, _ := newRun(t).WithPoints(neural.DemoPoints()...)
	run, _ = neural.Step(run)

	next, err := run.Reset(rng.FromSeed(2))
	require.NoError(t, err)
	assert.Empty(t, next.Points)
	assert.Zero(t, next.Epoch)
	assert.Zero(t, next.Loss)
	assert.Equal(t, run.Config, next.Config)
}
