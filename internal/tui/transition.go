package tui

import (
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"

	"pitchdeck/internal/ticker"
)

const (
	fps = 60
	// slideIn is how far, in columns, a new slide starts from its resting
	// place.
	slideIn = 12
)

// frameMsg advances the slide-in spring. gen ties it to one transition.
type frameMsg struct {
	gen int
}

// transition is a spring pulling the slide body from an offset back to
// column zero.
type transition struct {
	spring   harmonica.Spring
	offset   float64
	velocity float64
	active   bool
	gen      int
}

func newTransition() transition {
	return transition{spring: harmonica.NewSpring(harmonica.FPS(fps), 8.0, 0.6)}
}

// start kicks off a new transition; an older one in flight is superseded.
func (t *transition) start() frameMsg {
	t.gen++
	t.offset = slideIn
	t.velocity = 0
	t.active = true
	return frameMsg{gen: t.gen}
}

// step moves the spring one frame and reports whether it is still moving.
func (t *transition) step(msg frameMsg) bool {
	if !t.active || msg.gen != t.gen {
		return false
	}
	t.offset, t.velocity = t.spring.Update(t.offset, t.velocity, 0)
	if math.Abs(t.offset) < 0.5 && math.Abs(t.velocity) < 0.5 {
		t.offset, t.velocity, t.active = 0, 0, false
		return false
	}
	return true
}

// stop abandons any transition in flight.
func (t *transition) stop() {
	t.gen++
	t.offset, t.velocity, t.active = 0, 0, false
}

// columns is the current indent of the slide body.
func (t transition) columns() int {
	return int(math.Round(math.Abs(t.offset)))
}

func frameDelay() time.Duration {
	return time.Second / fps
}

func nextFrame(s ticker.Scheduler, msg frameMsg) tea.Cmd {
	return s.After(frameDelay(), msg)
}
