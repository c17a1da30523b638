package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransitionSettles(t *testing.T) {
	tr := newTransition()
	msg := tr.start()
	require.Equal(t, slideIn, tr.columns())

	frames := 0
	for tr.step(msg) {
		frames++
		require.Less(t, frames, 5*fps, "spring never settled")
	}

	assert.Zero(t, tr.columns())
	assert.False(t, tr.active)
	assert.Positive(t, frames)
}

func TestTransitionIgnoresStaleFrames(t *testing.T) {
	tr := newTransition()
	first := tr.start()
	second := tr.start()

	assert.False(t, tr.step(first), "a superseded transition stops ticking")
	assert.True(t, tr.step(second))
}

func TestTransitionStop(t *testing.T) {
	tr := newTransition()
	msg := tr.start()
	tr.stop()

	assert.False(t, tr.step(msg))
	assert.Zero(t, tr.columns())
}
