// Package deck holds the fixed, ordered set of slides shown in one sitting.
package deck

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyDeck is returned when a deck is built without any slides.
var ErrEmptyDeck = errors.New("deck has no slides")

// Slide is a single read-only slide.
type Slide struct {
	// ID is the 1-based ordinal of the slide in its deck.
	ID int `yaml:"-"`

	Title    string `yaml:"title"`
	Subtitle string `yaml:"subtitle,omitempty"`

	// Content is the markdown body, rendered by the view.
	Content string `yaml:"-"`

	// CTA is the call-to-action label. An empty label hides the control.
	CTA string `yaml:"cta,omitempty"`
}

// HasCTA reports whether the slide shows a call-to-action control.
func (s Slide) HasCTA() bool {
	return strings.TrimSpace(s.CTA) != ""
}

// Deck is an immutable, non-empty sequence of slides.
type Deck struct {
	title  string
	slides []Slide
}

// New builds a deck. Slides get their IDs assigned from their position.
func New(title string, slides []Slide) (*Deck, error) {
	if len(slides) == 0 {
		return nil, ErrEmptyDeck
	}

	owned := make([]Slide, len(slides))
	for i, s := range slides {
		if strings.TrimSpace(s.Title) == "" {
			return nil, fmt.Errorf("slide %d: title is required", i+1)
		}
		s.ID = i + 1
		owned[i] = s
	}

	return &Deck{title: title, slides: owned}, nil
}

// Title returns the deck title, possibly empty.
func (d *Deck) Title() string {
	return d.title
}

// Len returns the number of slides. It is always at least 1.
func (d *Deck) Len() int {
	return len(d.slides)
}

// At returns the slide at index i. Out-of-range indices panic like a slice access.
func (d *Deck) At(i int) Slide {
	return d.slides[i]
}

// Slides returns a copy of the slides.
func (d *Deck) Slides() []Slide {
	out := make([]Slide, len(d.slides))
	copy(out, d.slides)
	return out
}
