// Package navigator implements the slide navigation controller: the current
// position in a deck, autoplay with its progress indicator, swipe gestures
// and keyboard dispatch.
//
// A Controller is owned by a single bubbletea model and is only touched from
// that model's Update, so it needs no locking. Timers are plain messages that
// come back through Update.
package navigator

import (
	"sync/atomic"
	"time"

	"pitchdeck/internal/deck"
	"pitchdeck/internal/ticker"
)

// Variant selects between the two presentation flavours. Both share the same
// control logic; the rich one adds autoplay keyboard shortcuts and a
// slide-specific call to action.
type Variant string

const (
	Rich Variant = "rich"
	Flat Variant = "flat"
)

// TriggerMode selects how autoplay advances.
type TriggerMode string

const (
	// Dual schedules a coarse interval trigger and a fine progress trigger
	// independently. Both advance the deck.
	Dual TriggerMode = "dual"
	// Single lets the progress trigger alone advance the deck.
	Single TriggerMode = "single"
)

const (
	DefaultInterval       = 8000 * time.Millisecond
	DefaultTick           = 40 * time.Millisecond
	DefaultSwipeThreshold = 50
)

// Cause records what moved the deck.
type Cause string

const (
	CauseUser     Cause = "user"
	CauseKey      Cause = "key"
	CauseSwipe    Cause = "swipe"
	CauseDot      Cause = "dot"
	CauseTick     Cause = "tick"
	CauseInterval Cause = "interval"
)

// Transition describes one index change.
type Transition struct {
	From  int
	To    int
	Cause Cause
}

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// Option configures a Controller.
type Option func(*Controller)

// WithVariant sets the presentation variant. Defaults to Rich.
func WithVariant(v Variant) Option {
	return func(c *Controller) { c.variant = v }
}

// WithInterval sets how long each slide stays up during autoplay.
func WithInterval(d time.Duration) Option {
	return func(c *Controller) { c.interval = d }
}

// WithTick sets the progress update cadence.
func WithTick(d time.Duration) Option {
	return func(c *Controller) { c.tick = d }
}

// WithSwipeThreshold sets the minimum horizontal drag that counts as a swipe.
func WithSwipeThreshold(px int) Option {
	return func(c *Controller) { c.swipeThreshold = px }
}

// WithTriggerMode picks dual or single autoplay triggers.
func WithTriggerMode(m TriggerMode) Option {
	return func(c *Controller) { c.mode = m }
}

// WithScheduler replaces the wall-clock scheduler, mostly for tests.
func WithScheduler(s ticker.Scheduler) Option {
	return func(c *Controller) { c.sched = s }
}

// WithObserver registers a callback for every index change.
func WithObserver(fn func(Transition)) Option {
	return func(c *Controller) { c.observe = fn }
}

// Controller holds the navigation state for one view.
type Controller struct {
	id    int
	deck  *deck.Deck
	index int

	playing  bool
	progress float64
	// gen is bumped on every arm and disarm; trigger messages from an older
	// generation are dropped.
	gen int

	touchStart *int
	touchEnd   *int

	variant        Variant
	interval       time.Duration
	tick           time.Duration
	swipeThreshold int
	mode           TriggerMode
	sched          ticker.Scheduler
	observe        func(Transition)
	keys           KeyMap
}

// New creates a controller positioned on the first slide with autoplay off.
// The deck must be non-nil; deck.New already guarantees it is non-empty.
func New(d *deck.Deck, opts ...Option) *Controller {
	if d == nil || d.Len() == 0 {
		panic("navigator: deck must contain at least one slide")
	}

	c := &Controller{
		id:             nextID(),
		deck:           d,
		variant:        Rich,
		interval:       DefaultInterval,
		tick:           DefaultTick,
		swipeThreshold: DefaultSwipeThreshold,
		mode:           Dual,
		sched:          ticker.Tea{},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.tick <= 0 || c.tick > c.interval {
		c.tick = c.interval
	}
	c.keys = DefaultKeyMap(c.variant)

	return c
}

// Deck returns the deck being presented.
func (c *Controller) Deck() *deck.Deck {
	return c.deck
}

// Variant returns the presentation variant.
func (c *Controller) Variant() Variant {
	return c.variant
}

// Index returns the current zero-based position.
func (c *Controller) Index() int {
	return c.index
}

// Len returns the number of slides.
func (c *Controller) Len() int {
	return c.deck.Len()
}

// Current returns the slide on screen.
func (c *Controller) Current() deck.Slide {
	return c.deck.At(c.index)
}

// IsActive reports whether the pagination dot i marks the current slide.
func (c *Controller) IsActive(i int) bool {
	return i == c.index
}

// Playing reports whether autoplay is armed.
func (c *Controller) Playing() bool {
	return c.playing
}

// Progress returns the autoplay progress in [0,100], pinned to 0 while
// autoplay is off.
func (c *Controller) Progress() float64 {
	if !c.playing {
		return 0
	}
	return c.progress
}

// GoNext moves forward one slide, wrapping from the last to the first.
func (c *Controller) GoNext() {
	c.navigate((c.index+1)%c.Len(), CauseUser)
}

// GoPrevious moves back one slide, wrapping from the first to the last.
func (c *Controller) GoPrevious() {
	c.navigate((c.index-1+c.Len())%c.Len(), CauseUser)
}

// GoTo jumps to slide i. Callers only offer valid indices; anything else is
// a programming error and panics.
func (c *Controller) GoTo(i int) {
	c.goTo(i, CauseDot)
}

func (c *Controller) goTo(i int, cause Cause) {
	if i < 0 || i >= c.Len() {
		panic("navigator: slide index out of range")
	}
	c.navigate(i, cause)
}

// navigate is the user-facing move: a running progress bar restarts for the
// new slide.
func (c *Controller) navigate(to int, cause Cause) {
	c.move(to, cause)
	if c.playing {
		c.progress = 0
	}
}

func (c *Controller) move(to int, cause Cause) {
	from := c.index
	c.index = to
	if c.observe != nil {
		c.observe(Transition{From: from, To: to, Cause: cause})
	}
}

// CallToAction returns the slide whose call to action was triggered. It does
// not change any state; the view hands the composed request to the host.
func (c *Controller) CallToAction() deck.Slide {
	return c.Current()
}

// Close tears the controller down with the view: autoplay is disarmed so no
// trigger survives it.
func (c *Controller) Close() {
	c.StopAutoPlay()
	c.touchStart, c.touchEnd = nil, nil
}
