// Package styles holds the two visual treatments of the presentation. Both
// render the same controller; only colors, glyphs and motion differ.
package styles

import (
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"pitchdeck/internal/navigator"
)

// Palette colors taken from the rich gradient: blue, purple, orange.
var (
	Blue   = lipgloss.Color("#3b82f6")
	Purple = lipgloss.Color("#a855f7")
	Orange = lipgloss.Color("#f97316")
	Muted  = lipgloss.Color("245")
	Light  = lipgloss.Color("15")
	Panel  = lipgloss.Color("236")
)

// Theme is everything the view needs to draw one variant. Styles never add
// padding or borders to navigation targets, so their on-screen width equals
// the width of the label.
type Theme struct {
	Name string
	// Animated enables the slide-in spring.
	Animated bool
	// Glamour is the glamour standard style for slide bodies; "auto" picks
	// dark or light from the terminal.
	Glamour string

	Brand       lipgloss.Style
	Counter     lipgloss.Style
	AutoOn      lipgloss.Style
	AutoOff     lipgloss.Style
	Title       lipgloss.Style
	Subtitle    lipgloss.Style
	CTA         lipgloss.Style
	Nav         lipgloss.Style
	NavDisabled lipgloss.Style
	DotActive   lipgloss.Style
	DotInactive lipgloss.Style
	Notice      lipgloss.Style

	DotOn  string
	DotOff string

	Progress []progress.Option
}

// For returns the theme of a variant.
func For(v navigator.Variant) Theme {
	if v == navigator.Flat {
		return Flat()
	}
	return Rich()
}

// Rich is the animated, gradient-heavy treatment.
func Rich() Theme {
	return Theme{
		Name:        "rich",
		Animated:    true,
		Glamour:     "auto",
		Brand:       lipgloss.NewStyle().Bold(true).Foreground(Blue),
		Counter:     lipgloss.NewStyle().Foreground(Light).Background(Panel),
		AutoOn:      lipgloss.NewStyle().Bold(true).Foreground(Orange),
		AutoOff:     lipgloss.NewStyle().Foreground(Muted),
		Title:       lipgloss.NewStyle().Bold(true).Foreground(Purple),
		Subtitle:    lipgloss.NewStyle().Italic(true).Foreground(Muted),
		CTA:         lipgloss.NewStyle().Bold(true).Foreground(Light).Background(Orange),
		Nav:         lipgloss.NewStyle().Foreground(Light).Background(Panel),
		NavDisabled: lipgloss.NewStyle().Faint(true).Background(Panel),
		DotActive:   lipgloss.NewStyle().Foreground(Orange),
		DotInactive: lipgloss.NewStyle().Foreground(Muted),
		Notice:      lipgloss.NewStyle().Italic(true).Foreground(Orange),
		DotOn:       "●",
		DotOff:      "○",
		Progress: []progress.Option{
			progress.WithGradient(string(Blue), string(Orange)),
			progress.WithoutPercentage(),
		},
	}
}

// Flat is the plain treatment.
func Flat() Theme {
	return Theme{
		Name:        "flat",
		Glamour:     "ascii",
		Brand:       lipgloss.NewStyle().Bold(true),
		Counter:     lipgloss.NewStyle(),
		AutoOn:      lipgloss.NewStyle().Bold(true),
		AutoOff:     lipgloss.NewStyle(),
		Title:       lipgloss.NewStyle().Bold(true),
		Subtitle:    lipgloss.NewStyle(),
		CTA:         lipgloss.NewStyle().Underline(true),
		Nav:         lipgloss.NewStyle(),
		NavDisabled: lipgloss.NewStyle().Faint(true),
		DotActive:   lipgloss.NewStyle().Bold(true),
		DotInactive: lipgloss.NewStyle(),
		Notice:      lipgloss.NewStyle(),
		DotOn:       "*",
		DotOff:      ".",
		Progress: []progress.Option{
			progress.WithSolidFill(string(Blue)),
			progress.WithoutPercentage(),
			progress.WithFillCharacters('#', ' '),
		},
	}
}
