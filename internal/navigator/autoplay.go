package navigator

import (
	tea "github.com/charmbracelet/bubbletea"
)

// AdvanceMsg is the coarse autoplay trigger, due once per interval.
type AdvanceMsg struct {
	id  int
	gen int
}

// Rank makes the coarse trigger yield to a progress tick due at the same
// instant, so a tick that fills the bar still counts before the interval
// advance restarts it.
func (AdvanceMsg) Rank() int { return 1 }

// ProgressMsg is the fine autoplay trigger, due once per tick.
type ProgressMsg struct {
	id  int
	gen int
}

// ToggleAutoPlay arms autoplay when it is off and disarms it when it is on.
// The returned command starts the triggers.
func (c *Controller) ToggleAutoPlay() tea.Cmd {
	if c.playing {
		c.StopAutoPlay()
		return nil
	}
	return c.StartAutoPlay()
}

// StartAutoPlay arms both triggers from a zero baseline. It is a no-op when
// autoplay is already running, so repeated calls never stack triggers.
func (c *Controller) StartAutoPlay() tea.Cmd {
	if c.playing {
		return nil
	}
	c.playing = true
	c.progress = 0
	c.gen++

	cmds := []tea.Cmd{c.sched.After(c.tick, ProgressMsg{id: c.id, gen: c.gen})}
	if c.mode != Single {
		cmds = append(cmds, c.sched.After(c.interval, AdvanceMsg{id: c.id, gen: c.gen}))
	}
	return tea.Batch(cmds...)
}

// StopAutoPlay disarms autoplay and resets progress. Triggers already in
// flight are ignored when they arrive and are not rescheduled.
func (c *Controller) StopAutoPlay() {
	if c.playing {
		c.gen++
	}
	c.playing = false
	c.progress = 0
}

// step is the progress gained per tick.
func (c *Controller) step() float64 {
	return 100 / (float64(c.interval) / float64(c.tick))
}

// Update handles the autoplay trigger messages. Other messages are ignored.
func (c *Controller) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case ProgressMsg:
		if !c.current(msg.id, msg.gen) {
			return nil
		}
		c.progress += c.step()
		if c.progress >= 100 {
			c.move((c.index+1)%c.Len(), CauseTick)
			c.progress = 0
		}
		return c.sched.After(c.tick, msg)

	case AdvanceMsg:
		if !c.current(msg.id, msg.gen) {
			return nil
		}
		c.move((c.index+1)%c.Len(), CauseInterval)
		c.progress = 0
		return c.sched.After(c.interval, msg)
	}

	return nil
}

func (c *Controller) current(id, gen int) bool {
	return c.playing && id == c.id && gen == c.gen
}
