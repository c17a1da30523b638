package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Labels of the clickable controls. The view and the hit testing both work
// from these, so they always agree.
const (
	prevLabel    = "‹ Prev"
	nextLabel    = "Next ›"
	autoOnLabel  = "❚❚ Auto"
	autoOffLabel = "▶ Auto"
	ctaGlyph     = "✉ "
	navGap       = "  "
)

// Fixed rows: header and progress bar on top; CTA, navigation and help at
// the bottom.
const (
	headerRows = 2
	footerRows = 3
)

type targetKind int

const (
	targetNone targetKind = iota
	targetPrev
	targetNext
	targetDot
	targetAuto
	targetCTA
)

// span is a half-open column range [start, end) on one row.
type span struct {
	start, end int
}

func (s span) contains(x int) bool {
	return x >= s.start && x < s.end
}

// navBar is the geometry of the centered "‹ Prev ○ ● ○ Next ›" line.
type navBar struct {
	prev span
	dots []span
	next span
}

func layoutNav(width, slides int) navBar {
	total := lipgloss.Width(prevLabel) + len(navGap) + (2*slides - 1) + len(navGap) + lipgloss.Width(nextLabel)
	x := (width - total) / 2
	if x < 0 {
		x = 0
	}

	var bar navBar
	bar.prev = span{x, x + lipgloss.Width(prevLabel)}
	x = bar.prev.end + len(navGap)
	for i := 0; i < slides; i++ {
		bar.dots = append(bar.dots, span{x, x + 1})
		x += 2
	}
	x += len(navGap) - 1
	bar.next = span{x, x + lipgloss.Width(nextLabel)}
	return bar
}

// layoutCentered returns where a label of the given width lands when
// centered in the row.
func layoutCentered(width, labelWidth int) span {
	x := (width - labelWidth) / 2
	if x < 0 {
		x = 0
	}
	return span{x, x + labelWidth}
}

// layoutAuto returns the autoplay button span, right-aligned in the header.
func layoutAuto(width int, playing bool) span {
	label := autoOffLabel
	if playing {
		label = autoOnLabel
	}
	w := lipgloss.Width(label)
	return span{width - w, width}
}

type target struct {
	kind  targetKind
	index int
}

// hitTest maps a click to the control under it. The footer is anchored to
// the bottom row; on terminals too short for every fixed row the header is
// the part that scrolls off.
func (m *Model) hitTest(x, y int) target {
	switch {
	case y == 0 && m.height >= headerRows+footerRows:
		if layoutAuto(m.width, m.ctrl.Playing()).contains(x) {
			return target{kind: targetAuto}
		}

	case y == m.height-3:
		slide := m.ctrl.Current()
		if slide.HasCTA() && layoutCentered(m.width, lipgloss.Width(m.ctaLabel())).contains(x) {
			return target{kind: targetCTA}
		}

	case y == m.height-2:
		bar := layoutNav(m.width, m.ctrl.Len())
		switch {
		case bar.prev.contains(x):
			return target{kind: targetPrev}
		case bar.next.contains(x):
			return target{kind: targetNext}
		}
		for i, dot := range bar.dots {
			if dot.contains(x) {
				return target{kind: targetDot, index: i}
			}
		}
	}

	return target{kind: targetNone}
}
