package navigator

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pitchdeck/internal/deck"
	"pitchdeck/internal/ticker"
)

func newDeck(t *testing.T, n int) *deck.Deck {
	t.Helper()
	slides := make([]deck.Slide, n)
	for i := range slides {
		slides[i] = deck.Slide{Title: fmt.Sprintf("Slide %d", i+1), CTA: fmt.Sprintf("cta %d", i+1)}
	}
	d, err := deck.New("Test", slides)
	require.NoError(t, err)
	return d
}

func newController(t *testing.T, n int, opts ...Option) (*Controller, *ticker.Fake) {
	t.Helper()
	clock := ticker.NewFake()
	opts = append([]Option{WithScheduler(clock)}, opts...)
	return New(newDeck(t, n), opts...), clock
}

func TestNewStartsAtFirstSlideStopped(t *testing.T) {
	c, _ := newController(t, 3)

	assert.Equal(t, 0, c.Index())
	assert.Equal(t, 3, c.Len())
	assert.False(t, c.Playing())
	assert.Zero(t, c.Progress())
	assert.Equal(t, Rich, c.Variant())
	assert.Equal(t, "Slide 1", c.Current().Title)
}

func TestNewPanicsWithoutDeck(t *testing.T) {
	assert.Panics(t, func() { New(nil) })
}

func TestWraparound(t *testing.T) {
	c, _ := newController(t, 12)

	c.GoPrevious()
	assert.Equal(t, 11, c.Index(), "previous from the first slide wraps to the last")

	c.GoNext()
	assert.Equal(t, 0, c.Index(), "next from the last slide wraps to the first")
}

func TestSingleSlideDeckStaysPut(t *testing.T) {
	c, _ := newController(t, 1)

	c.GoNext()
	assert.Equal(t, 0, c.Index())
	c.GoPrevious()
	assert.Equal(t, 0, c.Index())
}

func TestIndexAlwaysInRange(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for n := 1; n <= 12; n++ {
		c, _ := newController(t, n)
		for step := 0; step < 500; step++ {
			if rng.Intn(2) == 0 {
				c.GoNext()
			} else {
				c.GoPrevious()
			}
			require.GreaterOrEqual(t, c.Index(), 0)
			require.Less(t, c.Index(), n)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	for n := 1; n <= 6; n++ {
		for start := 0; start < n; start++ {
			c, _ := newController(t, n)
			c.GoTo(start)

			c.GoNext()
			c.GoPrevious()
			assert.Equal(t, start, c.Index(), "next then previous, n=%d", n)

			c.GoPrevious()
			c.GoNext()
			assert.Equal(t, start, c.Index(), "previous then next, n=%d", n)
		}
	}
}

func TestGoTo(t *testing.T) {
	c, _ := newController(t, 5)

	c.GoTo(3)
	assert.Equal(t, 3, c.Index())
	assert.True(t, c.IsActive(3))
	assert.False(t, c.IsActive(2))
}

func TestGoToOutOfRangePanics(t *testing.T) {
	c, _ := newController(t, 5)

	assert.Panics(t, func() { c.GoTo(5) })
	assert.Panics(t, func() { c.GoTo(-1) })
}

func TestObserverSeesTransitions(t *testing.T) {
	var got []Transition
	c, _ := newController(t, 4, WithObserver(func(tr Transition) {
		got = append(got, tr)
	}))

	c.GoNext()
	c.GoTo(3)
	c.GoPrevious()

	assert.Equal(t, []Transition{
		{From: 0, To: 1, Cause: CauseUser},
		{From: 1, To: 3, Cause: CauseDot},
		{From: 3, To: 2, Cause: CauseUser},
	}, got)
}

func TestCallToActionDoesNotChangeState(t *testing.T) {
	c, _ := newController(t, 4)
	c.GoTo(2)

	slide := c.CallToAction()

	assert.Equal(t, "cta 3", slide.CTA)
	assert.Equal(t, 2, c.Index())
	assert.False(t, c.Playing())
}
