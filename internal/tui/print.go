package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/termenv"

	"pitchdeck/internal/deck"
)

// PrintOptions controls RenderDeck.
type PrintOptions struct {
	Width int
	// Plain drops all styling, for pipes and files.
	Plain bool
	// Profile is the color profile of w. Ascii implies Plain.
	Profile termenv.Profile
}

// RenderDeck writes every slide of d to w, one after the other, with a
// position header per slide.
func RenderDeck(w io.Writer, d *deck.Deck, opts PrintOptions) error {
	if opts.Width <= 0 {
		opts.Width = 80
	}
	plain := opts.Plain || opts.Profile == termenv.Ascii

	style := glamour.WithAutoStyle()
	if plain {
		style = glamour.WithStandardStyle("notty")
		opts.Profile = termenv.Ascii
	}
	r, err := glamour.NewTermRenderer(
		style,
		glamour.WithWordWrap(opts.Width-4),
		glamour.WithColorProfile(opts.Profile),
	)
	if err != nil {
		return fmt.Errorf("creating renderer: %w", err)
	}

	if t := d.Title(); t != "" {
		if _, err := fmt.Fprintf(w, "%s\n%s\n\n", t, strings.Repeat("=", min(len([]rune(t)), opts.Width))); err != nil {
			return err
		}
	}

	for i, slide := range d.Slides() {
		header := fmt.Sprintf("[%d/%d] %s", i+1, d.Len(), slide.Title)
		if _, err := fmt.Fprintln(w, header); err != nil {
			return err
		}
		if slide.Subtitle != "" {
			if _, err := fmt.Fprintln(w, wordwrap.String(slide.Subtitle, opts.Width)); err != nil {
				return err
			}
		}

		if slide.Content != "" {
			out, err := r.Render(slide.Content)
			if err != nil {
				return fmt.Errorf("rendering slide %d: %w", slide.ID, err)
			}
			if _, err := fmt.Fprintln(w, strings.TrimRight(out, "\n")); err != nil {
				return err
			}
		}

		if slide.HasCTA() {
			if _, err := fmt.Fprintf(w, "%s%s\n", ctaGlyph, slide.CTA); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}

	return nil
}
