package opener

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type started struct {
	name string
	args []string
}

func newStubLauncher(goos string, installed map[string]bool, startErr error) (*Launcher, *[]started) {
	var calls []started
	l := &Launcher{
		commands: commandsFor(goos),
		lookPath: func(bin string) (string, error) {
			if installed[bin] {
				return "/usr/bin/" + bin, nil
			}
			return "", errors.New("not found")
		},
		start: func(_ context.Context, name string, args ...string) error {
			calls = append(calls, started{name: name, args: args})
			return startErr
		},
	}
	return l, &calls
}

func TestLauncherPicksFirstInstalled(t *testing.T) {
	l, calls := newStubLauncher("linux", map[string]bool{"wslview": true, "gio": true}, nil)

	err := l.Open(context.Background(), "mailto:a@b.c")

	require.NoError(t, err)
	require.Len(t, *calls, 1)
	assert.Equal(t, started{name: "wslview", args: []string{"mailto:a@b.c"}}, (*calls)[0])
}

func TestLauncherPlatforms(t *testing.T) {
	tests := []struct {
		goos string
		bin  string
		args []string
	}{
		{"darwin", "open", []string{"u"}},
		{"windows", "rundll32", []string{"url.dll,FileProtocolHandler", "u"}},
		{"linux", "xdg-open", []string{"u"}},
		{"freebsd", "gio", []string{"open", "u"}},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			l, calls := newStubLauncher(tt.goos, map[string]bool{tt.bin: true}, nil)

			name, err := l.Detect()
			require.NoError(t, err)
			assert.Equal(t, tt.bin, name)

			require.NoError(t, l.Open(context.Background(), "u"))
			assert.Equal(t, tt.args, (*calls)[0].args)
		})
	}
}

func TestLauncherNothingInstalled(t *testing.T) {
	l, calls := newStubLauncher("linux", nil, nil)

	err := l.Open(context.Background(), "u")

	assert.ErrorIs(t, err, ErrNoOpener)
	assert.Empty(t, *calls)
}

func TestLauncherUnknownPlatform(t *testing.T) {
	l, _ := newStubLauncher("plan9", map[string]bool{"open": true}, nil)

	_, err := l.Detect()
	assert.ErrorIs(t, err, ErrNoOpener)
}

func TestLauncherStartFailure(t *testing.T) {
	l, _ := newStubLauncher("darwin", map[string]bool{"open": true}, errors.New("boom"))

	err := l.Open(context.Background(), "u")

	assert.ErrorContains(t, err, "launching open: boom")
}

type stubOpener struct{ err error }

func (s stubOpener) Open(context.Context, string) error { return s.err }

type stubClipboard struct {
	text string
	err  error
}

func (s *stubClipboard) WriteAll(text string) error {
	if s.err != nil {
		return s.err
	}
	s.text = text
	return nil
}

func TestFallbackPassesThroughSuccess(t *testing.T) {
	clip := &stubClipboard{}
	f := WithClipboard(stubOpener{}, clip)

	require.NoError(t, f.Open(context.Background(), "mailto:x"))
	assert.Empty(t, clip.text)
}

func TestFallbackCopiesOnFailure(t *testing.T) {
	clip := &stubClipboard{}
	f := WithClipboard(stubOpener{err: ErrNoOpener}, clip)

	err := f.Open(context.Background(), "mailto:x")

	assert.ErrorIs(t, err, ErrCopiedToClipboard)
	assert.Equal(t, "mailto:x", clip.text)
}

func TestFallbackReportsBothFailures(t *testing.T) {
	clip := &stubClipboard{err: errors.New("no xclip")}
	f := WithClipboard(stubOpener{err: ErrNoOpener}, clip)

	err := f.Open(context.Background(), "mailto:x")

	assert.ErrorIs(t, err, ErrNoOpener)
	assert.NotErrorIs(t, err, ErrCopiedToClipboard)
	assert.ErrorContains(t, err, "no xclip")
}
