package tui

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pitchdeck/internal/deck"
	"pitchdeck/internal/mailto"
	"pitchdeck/internal/navigator"
	"pitchdeck/internal/opener"
	"pitchdeck/internal/ticker"
)

type stubOpener struct {
	urls []string
	err  error
}

func (s *stubOpener) Open(_ context.Context, url string) error {
	s.urls = append(s.urls, url)
	return s.err
}

func testDeck(t *testing.T, n int) *deck.Deck {
	t.Helper()
	slides := make([]deck.Slide, n)
	for i := range slides {
		slides[i] = deck.Slide{
			Title:   fmt.Sprintf("Slide %d", i+1),
			Content: fmt.Sprintf("Body of slide %d.", i+1),
			CTA:     fmt.Sprintf("Act %d", i+1),
		}
	}
	slides[n-1].CTA = ""
	d, err := deck.New("Test Deck", slides)
	require.NoError(t, err)
	return d
}

type harness struct {
	m     *Model
	clock *ticker.Fake
	open  *stubOpener
}

func newHarness(t *testing.T, v navigator.Variant, opts ...Option) *harness {
	t.Helper()
	clock := ticker.NewFake()
	ctrl := navigator.New(testDeck(t, 3), navigator.WithScheduler(clock), navigator.WithVariant(v))
	composer, err := mailto.NewComposer(mailto.DefaultRecipient, mailto.SlideSubject, mailto.SlideBody)
	require.NoError(t, err)

	open := &stubOpener{}
	opts = append([]Option{WithScheduler(clock)}, opts...)
	h := &harness{m: New(ctrl, composer, open, opts...), clock: clock, open: open}
	h.send(tea.WindowSizeMsg{Width: 80, Height: 24})
	return h
}

func (h *harness) send(msg tea.Msg) tea.Cmd {
	_, cmd := h.m.Update(msg)
	return cmd
}

func (h *harness) advance(d time.Duration) {
	h.clock.Advance(d, func(msg tea.Msg) { h.send(msg) })
}

func (h *harness) key(s string) tea.Cmd {
	switch s {
	case "right":
		return h.send(tea.KeyMsg{Type: tea.KeyRight})
	case "left":
		return h.send(tea.KeyMsg{Type: tea.KeyLeft})
	case "enter":
		return h.send(tea.KeyMsg{Type: tea.KeyEnter})
	case "esc":
		return h.send(tea.KeyMsg{Type: tea.KeyEsc})
	}
	return h.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

func (h *harness) click(x, y int) tea.Cmd {
	h.send(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	return h.send(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonNone})
}

func (h *harness) screen() []string {
	return strings.Split(ansi.Strip(h.m.View()), "\n")
}

func TestViewBeforeSize(t *testing.T) {
	clock := ticker.NewFake()
	ctrl := navigator.New(testDeck(t, 2), navigator.WithScheduler(clock))
	m := New(ctrl, nil, &stubOpener{}, WithScheduler(clock))

	assert.Contains(t, m.View(), "Loading slides...")
}

func TestViewFillsTerminal(t *testing.T) {
	h := newHarness(t, navigator.Rich)

	rows := h.screen()
	require.Len(t, rows, 24)
	assert.Contains(t, rows[0], "Test Deck")
	assert.Contains(t, rows[0], "1 / 3")
	assert.Contains(t, rows[0], autoOffLabel)
	assert.Contains(t, strings.Join(rows, "\n"), "Slide 1")
	assert.Contains(t, strings.Join(rows, "\n"), "Body of slide 1.")
	assert.Contains(t, rows[24-3], "Act 1")
	assert.Contains(t, rows[24-2], prevLabel)
	assert.Contains(t, rows[24-2], nextLabel)

	for i, row := range rows {
		assert.LessOrEqual(t, lipgloss.Width(row), 80, "row %d overflows", i)
	}
}

func TestKeysNavigate(t *testing.T) {
	h := newHarness(t, navigator.Rich)

	h.key("right")
	assert.Equal(t, 1, h.m.Controller().Index())
	assert.Contains(t, h.screen()[0], "2 / 3")

	h.key("left")
	h.key("left")
	assert.Equal(t, 2, h.m.Controller().Index(), "keys wrap around")

	h.key("1")
	assert.Equal(t, 0, h.m.Controller().Index())
}

func TestQuitTearsDown(t *testing.T) {
	h := newHarness(t, navigator.Rich)
	h.key("a")
	require.True(t, h.m.Controller().Playing())

	cmd := h.key("q")
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
	assert.False(t, h.m.Controller().Playing())
	assert.Empty(t, h.m.View())

	before := h.m.Controller().Index()
	h.advance(30 * time.Second)
	assert.Equal(t, before, h.m.Controller().Index(), "no trigger survives teardown")
}

func TestHelpToggle(t *testing.T) {
	h := newHarness(t, navigator.Rich)
	short := h.screen()[23]
	assert.NotContains(t, short, "1-9")

	h.key("?")
	assert.Contains(t, h.screen()[23], "1-9")
	require.Len(t, h.screen(), 24)
}

func TestAutoPlayThroughModel(t *testing.T) {
	h := newHarness(t, navigator.Rich, WithAutoPlay(true))
	h.m.Init()
	require.True(t, h.m.Controller().Playing())

	h.advance(4 * time.Second)
	assert.InDelta(t, 50, h.m.Controller().Progress(), 0.01)
	assert.Contains(t, h.screen()[0], autoOnLabel)

	h.advance(4 * time.Second)
	// The interval trigger and the progress trigger each advance once.
	assert.Equal(t, 2, h.m.Controller().Index())

	h.key("esc")
	assert.False(t, h.m.Controller().Playing())
	assert.Zero(t, h.m.Controller().Progress())
}

func TestFlatVariantIgnoresAutoPlayKeys(t *testing.T) {
	h := newHarness(t, navigator.Flat)

	h.key("a")
	assert.False(t, h.m.Controller().Playing())
	assert.NotContains(t, h.screen()[23], "autoplay")
}

func TestClickNavButtons(t *testing.T) {
	h := newHarness(t, navigator.Rich)
	bar := layoutNav(80, 3)
	row := 24 - 2

	h.click(bar.prev.start, row)
	assert.Equal(t, 0, h.m.Controller().Index(), "previous button is inert on the first slide")

	h.click(bar.next.start+1, row)
	assert.Equal(t, 1, h.m.Controller().Index())

	h.click(bar.dots[2].start, row)
	assert.Equal(t, 2, h.m.Controller().Index())

	h.click(bar.next.start, row)
	assert.Equal(t, 2, h.m.Controller().Index(), "next button is inert on the last slide")

	h.click(bar.prev.end-1, row)
	assert.Equal(t, 1, h.m.Controller().Index())
}

func TestClickAutoButton(t *testing.T) {
	h := newHarness(t, navigator.Flat)

	h.click(79, 0)
	assert.True(t, h.m.Controller().Playing())

	h.click(79, 0)
	assert.False(t, h.m.Controller().Playing())
}

func TestDragSwipes(t *testing.T) {
	h := newHarness(t, navigator.Rich)
	y := 10

	drag := func(from, to int) {
		h.send(tea.MouseMsg{X: from, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
		h.send(tea.MouseMsg{X: to, Y: y, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
		h.send(tea.MouseMsg{X: to, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonNone})
	}

	drag(70, 10)
	assert.Equal(t, 1, h.m.Controller().Index(), "drag left moves forward")

	drag(10, 70)
	assert.Equal(t, 0, h.m.Controller().Index(), "drag right moves back")

	drag(40, 0)
	assert.Equal(t, 0, h.m.Controller().Index(), "short drags are ignored")
}

func TestDragEndingOnButtonDoesNotClick(t *testing.T) {
	h := newHarness(t, navigator.Rich)
	bar := layoutNav(80, 3)
	row := 24 - 2

	h.send(tea.MouseMsg{X: bar.next.start, Y: row, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	h.send(tea.MouseMsg{X: bar.next.start - 5, Y: row, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	h.send(tea.MouseMsg{X: bar.next.start - 5, Y: row, Action: tea.MouseActionRelease, Button: tea.MouseButtonNone})

	assert.Equal(t, 0, h.m.Controller().Index())
}

func TestCallToActionOpensMail(t *testing.T) {
	h := newHarness(t, navigator.Rich)

	cmd := h.key("enter")
	require.NotNil(t, cmd)
	msg := cmd()
	require.IsType(t, ctaResultMsg{}, msg)

	require.Len(t, h.open.urls, 1)
	assert.True(t, strings.HasPrefix(h.open.urls[0], "mailto:"+mailto.DefaultRecipient+"?"))
	assert.Contains(t, h.open.urls[0], "Act%201")
	assert.Equal(t, 0, h.m.Controller().Index(), "the call to action does not move the deck")

	h.send(msg)
	assert.Contains(t, h.screen()[23], "Opening email composer")

	h.advance(noticeTTL)
	assert.NotContains(t, h.screen()[23], "Opening email composer")
}

func TestCallToActionHiddenWithoutLabel(t *testing.T) {
	h := newHarness(t, navigator.Rich)
	h.key("3")

	assert.Nil(t, h.key("enter"))
	assert.Empty(t, h.open.urls)
	assert.Empty(t, strings.TrimSpace(h.screen()[24-3]))
}

func TestCallToActionClipboardFallback(t *testing.T) {
	h := newHarness(t, navigator.Rich)
	h.open.err = fmt.Errorf("wrapped: %w", opener.ErrCopiedToClipboard)

	bar := layoutCentered(80, lipgloss.Width(h.m.ctaLabel()))
	cmd := h.click(bar.start, 24-3)
	require.NotNil(t, cmd)
	h.send(cmd())

	assert.Contains(t, h.screen()[23], "copied to clipboard")
}

func TestSlideInAnimation(t *testing.T) {
	h := newHarness(t, navigator.Rich)

	h.key("right")
	require.True(t, h.m.anim.active)
	assert.Positive(t, h.m.anim.columns())

	h.advance(2 * time.Second)
	assert.False(t, h.m.anim.active)
	assert.Zero(t, h.m.anim.columns())
}

func TestFlatVariantDoesNotAnimate(t *testing.T) {
	h := newHarness(t, navigator.Flat)

	h.key("right")
	assert.False(t, h.m.anim.active)
	assert.Zero(t, h.clock.Pending())
}
