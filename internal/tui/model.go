// Package tui is the full-screen presentation view: it renders the deck and
// turns keyboard, mouse and timer messages into controller calls.
package tui

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"go.uber.org/zap"

	"pitchdeck/internal/mailto"
	"pitchdeck/internal/navigator"
	"pitchdeck/internal/opener"
	"pitchdeck/internal/ticker"
	"pitchdeck/internal/tui/styles"
)

const noticeTTL = 3 * time.Second

type ctaResultMsg struct {
	url string
	err error
}

type noticeFadeMsg struct {
	seq int
}

type point struct {
	x, y int
}

// Option configures a Model.
type Option func(*Model)

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(m *Model) { m.logger = l }
}

// WithScheduler routes view timers (notices, animation frames) through s.
// Use the same scheduler as the controller.
func WithScheduler(s ticker.Scheduler) Option {
	return func(m *Model) { m.sched = s }
}

// WithAutoPlay arms autoplay when the program starts.
func WithAutoPlay(on bool) Option {
	return func(m *Model) { m.autoStart = on }
}

// WithContext sets the context handed to the opener.
func WithContext(ctx context.Context) Option {
	return func(m *Model) { m.ctx = ctx }
}

// Model is the bubbletea model of the presentation.
type Model struct {
	ctrl     *navigator.Controller
	composer *mailto.Composer
	opener   opener.Opener

	ctx    context.Context
	logger *zap.Logger
	sched  ticker.Scheduler
	theme  styles.Theme
	keys   KeyMap
	help   help.Model
	bar    progress.Model

	renderer *glamour.TermRenderer
	// rendered caches glamour output per slide for the current width.
	rendered map[int]string

	width  int
	height int

	press   *point
	dragged bool

	notice    string
	noticeSeq int

	anim      transition
	autoStart bool
	quitting  bool
	err       error
}

// New builds the view around a controller.
func New(ctrl *navigator.Controller, composer *mailto.Composer, op opener.Opener, opts ...Option) *Model {
	m := &Model{
		ctrl:     ctrl,
		composer: composer,
		opener:   op,
		ctx:      context.Background(),
		logger:   zap.NewNop(),
		sched:    ticker.Tea{},
		theme:    styles.For(ctrl.Variant()),
		keys:     newKeyMap(ctrl.Keys()),
		help:     help.New(),
		rendered: map[int]string{},
		anim:     newTransition(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.bar = progress.New(m.theme.Progress...)
	return m
}

// Controller exposes the navigation state, mostly for tests.
func (m *Model) Controller() *navigator.Controller {
	return m.ctrl
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tea.SetWindowTitle(m.deckTitle())}
	if m.autoStart {
		cmds = append(cmds, m.ctrl.StartAutoPlay())
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	before := m.ctrl.Index()

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		cmd := m.handleKey(msg)
		return m, tea.Batch(cmd, m.afterMove(before))

	case tea.MouseMsg:
		cmd := m.handleMouse(msg)
		return m, tea.Batch(cmd, m.afterMove(before))

	case navigator.AdvanceMsg, navigator.ProgressMsg:
		cmd := m.ctrl.Update(msg)
		return m, tea.Batch(cmd, m.afterMove(before))

	case frameMsg:
		if m.anim.step(msg) {
			return m, nextFrame(m.sched, msg)
		}
		return m, nil

	case ctaResultMsg:
		return m, m.ctaResult(msg)

	case noticeFadeMsg:
		if msg.seq == m.noticeSeq {
			m.notice = ""
		}
		return m, nil
	}

	return m, nil
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width
	m.bar.Width = width

	// Update renderer word wrap based on terminal width
	r, err := newRenderer(m.theme.Glamour, width-4)
	if err != nil {
		m.err = err
		return
	}
	m.renderer = r
	m.rendered = map[int]string{}
}

func newRenderer(style string, wrap int) (*glamour.TermRenderer, error) {
	if wrap < 20 {
		wrap = 20
	}
	styleOpt := glamour.WithStandardStyle(style)
	if style == "auto" {
		styleOpt = glamour.WithAutoStyle()
	}
	return glamour.NewTermRenderer(styleOpt, glamour.WithWordWrap(wrap))
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.teardown()
		return tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return nil

	case key.Matches(msg, m.keys.CTA):
		return m.callToAction()
	}

	_, cmd := m.ctrl.HandleKey(msg)
	return cmd
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return nil
		}
		m.press = &point{msg.X, msg.Y}
		m.dragged = false
		m.ctrl.TouchStart(msg.X)

	case tea.MouseActionMotion:
		if m.press == nil || msg.Button != tea.MouseButtonLeft {
			return nil
		}
		m.dragged = true
		m.ctrl.TouchMove(msg.X)

	case tea.MouseActionRelease:
		press, dragged := m.press, m.dragged
		m.press, m.dragged = nil, false
		if m.ctrl.TouchEnd() || press == nil || dragged {
			return nil
		}
		return m.click(m.hitTest(press.x, press.y))
	}

	return nil
}

func (m *Model) click(t target) tea.Cmd {
	switch t.kind {
	case targetPrev:
		// The buttons stop at the ends of the deck; keys and swipes wrap.
		if m.ctrl.Index() > 0 {
			m.ctrl.GoPrevious()
		}
	case targetNext:
		if m.ctrl.Index() < m.ctrl.Len()-1 {
			m.ctrl.GoNext()
		}
	case targetDot:
		m.ctrl.GoTo(t.index)
	case targetAuto:
		return m.ctrl.ToggleAutoPlay()
	case targetCTA:
		return m.callToAction()
	}
	return nil
}

// afterMove starts the slide-in animation when the index changed.
func (m *Model) afterMove(before int) tea.Cmd {
	if m.ctrl.Index() == before {
		return nil
	}
	m.logger.Debug("slide shown",
		zap.Int("from", before+1),
		zap.Int("to", m.ctrl.Index()+1),
		zap.Bool("autoplay", m.ctrl.Playing()),
	)
	if !m.theme.Animated || m.width == 0 {
		return nil
	}
	return nextFrame(m.sched, m.anim.start())
}

func (m *Model) callToAction() tea.Cmd {
	slide := m.ctrl.CallToAction()
	if !slide.HasCTA() {
		return nil
	}

	msg, err := m.composer.Compose(m.ctrl.Deck(), m.ctrl.Index())
	if err != nil {
		m.logger.Error("composing email", zap.Error(err))
		return m.flash("Could not compose email: " + err.Error())
	}

	url := msg.URL()
	ctx, op := m.ctx, m.opener
	m.logger.Info("call to action", zap.Int("slide", slide.ID), zap.String("cta", slide.CTA))
	return tea.Batch(
		m.flash("Opening email composer…"),
		func() tea.Msg {
			return ctaResultMsg{url: url, err: op.Open(ctx, url)}
		},
	)
}

func (m *Model) ctaResult(msg ctaResultMsg) tea.Cmd {
	switch {
	case msg.err == nil:
		return nil
	case errors.Is(msg.err, opener.ErrCopiedToClipboard):
		m.logger.Warn("no URL opener, copied to clipboard", zap.String("url", msg.url))
		return m.flash("No mail client found; link copied to clipboard")
	default:
		m.logger.Error("opening email composer", zap.Error(msg.err))
		return m.flash("Could not open email composer: " + msg.err.Error())
	}
}

func (m *Model) flash(text string) tea.Cmd {
	m.notice = text
	m.noticeSeq++
	return m.sched.After(noticeTTL, noticeFadeMsg{seq: m.noticeSeq})
}

// teardown releases everything the view armed: autoplay triggers and the
// slide-in animation.
func (m *Model) teardown() {
	m.ctrl.Close()
	m.anim.stop()
	m.quitting = true
}
