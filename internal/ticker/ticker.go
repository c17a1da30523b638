// Package ticker schedules delayed messages for bubbletea models.
//
// Models never sleep or start goroutines for their own timers. They ask a
// Scheduler for a command that delivers a message after a delay and
// reschedule from Update when the message arrives, so a repeating trigger
// is just a message that keeps re-arming itself.
package ticker

import (
	"sort"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Scheduler turns a delay and a message into a command.
type Scheduler interface {
	After(d time.Duration, msg tea.Msg) tea.Cmd
}

// Tea schedules with tea.Tick against the wall clock.
type Tea struct{}

// After implements Scheduler.
func (Tea) After(d time.Duration, msg tea.Msg) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return msg
	})
}

// Ranked is implemented by messages that must yield to others falling due
// at the same instant. Lower ranks are delivered first; messages without a
// rank have rank 0.
type Ranked interface {
	Rank() int
}

func rankOf(msg tea.Msg) int {
	if r, ok := msg.(Ranked); ok {
		return r.Rank()
	}
	return 0
}

type pending struct {
	due  time.Duration
	rank int
	seq  uint64
	msg  tea.Msg
}

// Fake is a simulated clock. Messages passed to After are queued instead of
// being returned as commands; Advance delivers them in due order.
type Fake struct {
	now   time.Duration
	seq   uint64
	queue []pending
}

// NewFake returns a fake clock at time zero.
func NewFake() *Fake {
	return &Fake{}
}

// After implements Scheduler. It always returns a nil command.
func (f *Fake) After(d time.Duration, msg tea.Msg) tea.Cmd {
	f.seq++
	f.queue = append(f.queue, pending{due: f.now + d, rank: rankOf(msg), seq: f.seq, msg: msg})
	return nil
}

// Now returns the simulated time elapsed since the clock was created.
func (f *Fake) Now() time.Duration {
	return f.now
}

// Pending returns the number of queued messages.
func (f *Fake) Pending() int {
	return len(f.queue)
}

// Advance moves the clock forward by d, handing every message that falls due
// to deliver. Messages scheduled while delivering are honored if they fall
// inside the window. Ties are broken by rank, then by scheduling order.
func (f *Fake) Advance(d time.Duration, deliver func(tea.Msg)) {
	end := f.now + d
	for {
		next, ok := f.pop(end)
		if !ok {
			break
		}
		f.now = next.due
		deliver(next.msg)
	}
	f.now = end
}

func (f *Fake) pop(end time.Duration) (pending, bool) {
	if len(f.queue) == 0 {
		return pending{}, false
	}
	sort.Slice(f.queue, func(i, j int) bool {
		if f.queue[i].due != f.queue[j].due {
			return f.queue[i].due < f.queue[j].due
		}
		if f.queue[i].rank != f.queue[j].rank {
			return f.queue[i].rank < f.queue[j].rank
		}
		return f.queue[i].seq < f.queue[j].seq
	})
	head := f.queue[0]
	if head.due > end {
		return pending{}, false
	}
	f.queue = f.queue[1:]
	return head, true
}
