package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
)

const fallbackTitle = "Pitchdeck"

// View implements tea.Model. It always renders exactly height rows so the
// mouse hit ranges line up with what is on screen.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.err != nil {
		return fmt.Sprintf("Error: %v\n\nPress 'q' to quit.", m.err)
	}
	if m.width == 0 || m.height == 0 {
		return "Loading slides...\n\nPress 'q' to quit."
	}

	rows := make([]string, 0, m.height)
	rows = append(rows, m.headerView(), m.bar.ViewAs(m.ctrl.Progress()/100))
	rows = append(rows, m.bodyView(m.height-headerRows-footerRows)...)
	rows = append(rows, m.ctaView(), m.navView(), m.helpView())

	if len(rows) > m.height {
		rows = rows[len(rows)-m.height:]
	}
	return strings.Join(rows, "\n")
}

func (m *Model) deckTitle() string {
	if t := m.ctrl.Deck().Title(); t != "" {
		return t
	}
	return fallbackTitle
}

func (m *Model) headerView() string {
	counter := m.theme.Counter.Render(fmt.Sprintf(" %d / %d ", m.ctrl.Index()+1, m.ctrl.Len()))

	auto := m.theme.AutoOff.Render(autoOffLabel)
	autoWidth := lipgloss.Width(autoOffLabel)
	if m.ctrl.Playing() {
		auto = m.theme.AutoOn.Render(autoOnLabel)
		autoWidth = lipgloss.Width(autoOnLabel)
	}

	// The title gives way first when the row is too narrow.
	room := m.width - autoWidth - lipgloss.Width(counter) - 2
	if room < 0 {
		room = 0
	}
	brand := m.theme.Brand.Render(ansi.Truncate(m.deckTitle(), room, "…"))
	left := brand + " " + counter

	gap := m.width - lipgloss.Width(left) - autoWidth
	if gap < 0 {
		return ansi.Truncate(left, m.width-autoWidth, "") + auto
	}
	return left + strings.Repeat(" ", gap) + auto
}

func (m *Model) bodyView(height int) []string {
	if height <= 0 {
		return nil
	}
	slide := m.ctrl.Current()

	var lines []string
	lines = append(lines, "")
	lines = append(lines, lipgloss.PlaceHorizontal(m.width, lipgloss.Center, m.theme.Title.Render(slide.Title)))
	if slide.Subtitle != "" {
		for _, l := range strings.Split(wordwrap.String(slide.Subtitle, m.width-8), "\n") {
			lines = append(lines, lipgloss.PlaceHorizontal(m.width, lipgloss.Center, m.theme.Subtitle.Render(l)))
		}
	}

	content := m.renderContent(m.ctrl.Index())
	if shift := m.anim.columns(); shift > 0 {
		content = indent.String(content, uint(shift))
	}
	lines = append(lines, strings.Split(content, "\n")...)

	// Fit content to the available height
	if len(lines) > height {
		lines = lines[:height]
	}
	for i, l := range lines {
		if lipgloss.Width(l) > m.width {
			lines[i] = ansi.Truncate(l, m.width, "")
		}
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return lines
}

// renderContent returns the glamour rendering of a slide body, cached until
// the next resize.
func (m *Model) renderContent(i int) string {
	if out, ok := m.rendered[i]; ok {
		return out
	}

	body := m.ctrl.Deck().At(i).Content
	if body == "" || m.renderer == nil {
		return ""
	}
	out, err := m.renderer.Render(body)
	if err != nil {
		out = "Error rendering markdown: " + err.Error()
	}
	out = strings.TrimRight(out, "\n")
	m.rendered[i] = out
	return out
}

func (m *Model) ctaLabel() string {
	return ctaGlyph + m.ctrl.Current().CTA
}

func (m *Model) ctaView() string {
	slide := m.ctrl.Current()
	if !slide.HasCTA() {
		return ""
	}
	label := m.ctaLabel()
	at := layoutCentered(m.width, lipgloss.Width(label))
	return strings.Repeat(" ", at.start) + m.theme.CTA.Render(label)
}

func (m *Model) navView() string {
	bar := layoutNav(m.width, m.ctrl.Len())
	last := m.ctrl.Len() - 1

	prev := m.theme.Nav.Render(prevLabel)
	if m.ctrl.Index() == 0 {
		prev = m.theme.NavDisabled.Render(prevLabel)
	}
	next := m.theme.Nav.Render(nextLabel)
	if m.ctrl.Index() == last {
		next = m.theme.NavDisabled.Render(nextLabel)
	}

	dots := make([]string, m.ctrl.Len())
	for i := range dots {
		if m.ctrl.IsActive(i) {
			dots[i] = m.theme.DotActive.Render(m.theme.DotOn)
		} else {
			dots[i] = m.theme.DotInactive.Render(m.theme.DotOff)
		}
	}

	row := strings.Repeat(" ", bar.prev.start) + prev + navGap + strings.Join(dots, " ") + navGap + next
	if lipgloss.Width(row) > m.width {
		return ansi.Truncate(row, m.width, "")
	}
	return row
}

func (m *Model) helpView() string {
	if m.notice != "" {
		return ansi.Truncate(m.theme.Notice.Render(m.notice), m.width, "…")
	}
	if m.help.ShowAll {
		// The footer has a single help row, so the full key map is listed
		// inline.
		var all []key.Binding
		for _, group := range m.keys.FullHelp() {
			all = append(all, group...)
		}
		return ansi.Truncate(m.help.ShortHelpView(all), m.width, "…")
	}
	return ansi.Truncate(m.help.View(m.keys), m.width, "…")
}
