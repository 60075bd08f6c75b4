package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/katalvlaran/stepviz/dijkstra"
	"github.com/katalvlaran/stepviz/internal/config"
	"github.com/katalvlaran/stepviz/playback"
)

// execute runs the CLI with a non-existent config file so defaults apply.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return executeWithInput(t, strings.NewReader(""), args...)
}

func executeWithInput(t *testing.T, in io.Reader, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetIn(in)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "none.yaml")}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func writeTemp(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

// ---- 1. dijkstra ----

func TestDijkstra_FinalFrame(t *testing.T) {
	out, err := execute(t, "dijkstra", "--no-anim", "--plain")
	require.NoError(t, err)
	assert.Contains(t, out, "path: A → D → E → F (7)")
	assert.Contains(t, out, "start  end  current  visited  path")
}

func TestDijkstra_Unreachable(t *testing.T) {
	out, err := execute(t, "dijkstra", "--no-anim", "--plain", "--start", "F", "--end", "A")
	require.NoError(t, err)
	assert.Contains(t, out, "path: unreachable")
}

func TestDijkstra_UnknownNode(t *testing.T) {
	_, err := execute(t, "dijkstra", "--no-anim", "--start", "Z")
	assert.ErrorIs(t, err, dijkstra.ErrVertexNotFound)
}

func TestDijkstra_GraphFileAnimated(t *testing.T) {
	path := writeTemp(t, "two.graph", "S -> T : 1.5\n")
	out, err := execute(t, "dijkstra", "--plain", "--graph", path, "--start", "S", "--end", "T", "--interval", "200ms")
	require.NoError(t, err)
	assert.Contains(t, out, "S → T  step 0")
	assert.Contains(t, out, "S → T  step 2")
	assert.Contains(t, out, "path: S → T (1.5)")
	assert.NotContains(t, out, clearScreen, "plain output never clears")
}

func TestDijkstra_BadInterval(t *testing.T) {
	_, err := execute(t, "dijkstra", "--interval", "10ms")
	assert.ErrorIs(t, err, config.ErrInvalid)
}

// ---- 2. sort ----

func TestSort_BubbleFinal(t *testing.T) {
	out, err := execute(t, "sort", "--no-anim", "--plain", "--algo", "bubble", "--size", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "bubble")
	assert.Contains(t, out, "comparisons: 10")
	assert.NotContains(t, out, "merge")
}

func TestSort_BothSideBySide(t *testing.T) {
	out, err := execute(t, "sort", "--no-anim", "--plain", "--size", "8")
	require.NoError(t, err)
	first := strings.SplitN(out, "\n", 2)[0]
	assert.Contains(t, first, "bubble")
	assert.Contains(t, first, "merge")
}

func TestSort_MergeAnimated(t *testing.T) {
	out, err := execute(t, "sort", "--plain", "--algo", "merge", "--size", "5", "--interval", "10ms")
	require.NoError(t, err)
	assert.Contains(t, out, "step 0/12")
	assert.Contains(t, out, "step 12/12", "one frame per write")
}

func TestSort_BothAnimated(t *testing.T) {
	out, err := execute(t, "sort", "--plain", "--size", "5", "--interval", "10ms")
	require.NoError(t, err)
	assert.Contains(t, out, "step 12/12")
}

func TestSort_Seeded(t *testing.T) {
	a, err := execute(t, "sort", "--no-anim", "--plain", "--seed", "5", "--size", "10")
	require.NoError(t, err)
	b, err := execute(t, "sort", "--no-anim", "--plain", "--seed", "5", "--size", "10")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestSort_InvalidSize(t *testing.T) {
	_, err := execute(t, "sort", "--size", "3")
	assert.ErrorIs(t, err, config.ErrInvalid)
}

// ---- 3. train ----

func TestTrain_FinalFrame(t *testing.T) {
	out, err := execute(t, "train", "--no-anim", "--plain", "--epochs", "20", "--hidden", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "epoch 20")
	assert.Contains(t, out, "h1 → o")
}

func TestTrain_Animated(t *testing.T) {
	out, err := execute(t, "train", "--plain", "--epochs", "3", "--interval", "10ms")
	require.NoError(t, err)
	assert.Contains(t, out, "epoch 1")
	assert.Contains(t, out, "epoch 3")
}

func TestTrain_PointsFile(t *testing.T) {
	path := writeTemp(t, "points.yaml", "points:\n  - {x: -0.9, y: 0.9, label: 0}\n  - {x: 0.9, y: -0.9, label: 1}\n")
	out, err := execute(t, "train", "--no-anim", "--plain", "--epochs", "5", "--points", path)
	require.NoError(t, err)
	assert.Contains(t, out, "epoch 5")
	assert.Contains(t, out, "o")
	assert.Contains(t, out, "x")
}

func TestTrain_WatchNeedsPoints(t *testing.T) {
	_, err := execute(t, "train", "--watch")
	assert.Error(t, err)
}

func TestTrain_BadPoints(t *testing.T) {
	path := writeTemp(t, "points.yaml", "points:\n  - {x: 4, y: 0, label: 0}\n")
	_, err := execute(t, "train", "--no-anim", "--points", path)
	assert.Error(t, err)
}

func TestSort_Distinct(t *testing.T) {
	out, err := execute(t, "sort", "--no-anim", "--plain", "--algo", "bubble", "--size", "5", "--distinct")
	require.NoError(t, err)
	assert.Contains(t, out, "comparisons: 10")
}

// ---- 4. interactive control ----

func TestPausedNeedsInteractive(t *testing.T) {
	_, err := execute(t, "sort", "--paused")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--paused needs --interactive")
}

func TestDijkstra_InteractiveQuit(t *testing.T) {
	// At the default 1s interval the full run takes seconds; q ends it at once.
	out, err := executeWithInput(t, strings.NewReader("q\n"), "dijkstra", "--plain", "--interactive")
	require.NoError(t, err)
	assert.Contains(t, out, "searching")
}

func TestSort_PausedStepThenQuit(t *testing.T) {
	in := strings.NewReader("n\nq\n")
	_, err := executeWithInput(t, in, "sort", "--plain", "--algo", "bubble", "--size", "5", "--interactive", "--paused")
	require.NoError(t, err)
}

func TestApplyControlCommands(t *testing.T) {
	a := &app{logger: zap.NewNop()}
	d, err := playback.New()
	require.NoError(t, err)
	drivers := []*playback.Driver{d}

	assert.True(t, a.apply("p", drivers))
	assert.True(t, d.Paused())
	assert.True(t, a.apply("", drivers))
	assert.False(t, d.Paused())

	assert.True(t, a.apply("n", drivers), "step while playing is ignored")
	assert.True(t, a.apply("jump", drivers), "unknown commands keep reading")
	assert.False(t, a.apply("q", drivers))

	// The stop is pending on the idle driver: its next run ends before a tick.
	require.NoError(t, d.Run(context.Background(), func() (bool, error) { return false, nil }))
	assert.Zero(t, d.Ticks())
}
