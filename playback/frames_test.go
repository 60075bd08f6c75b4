package playback_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/stepviz/playback"
)

func TestFrames(t *testing.T) {
	var got []string
	fr := playback.NewFrames([]string{"x", "y", "z"}, func(_ int, s string) { got = append(got, s) })
	assert.False(t, fr.Done())

	done, err := fr.Tick()
	assert.NoError(t, err)
	assert.False(t, done)
	done, _ = fr.Tick()
	assert.True(t, done, "done on reaching the last step")

	done, _ = fr.Tick()
	assert.True(t, done)
	assert.Equal(t, []string{"y", "z"}, got, "ticking past the end renders nothing")

	fr.Reset()
	assert.Zero(t, fr.Index())
	fr.Show()
	assert.Equal(t, "x", got[len(got)-1])
}

func TestFrames_Empty(t *testing.T) {
	fr := playback.NewFrames[int](nil, nil)
	assert.True(t, fr.Done())
	done, err := fr.Tick()
	assert.True(t, done)
	assert.NoError(t, err)
	fr.Show()
}
