// Package opener hands URLs to the host environment.
package opener

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"runtime"

	"github.com/atotto/clipboard"
)

var (
	// ErrNoOpener is returned when no URL handler is installed.
	ErrNoOpener = errors.New("no URL opener found on this system")

	// ErrCopiedToClipboard reports that the URL could not be opened but was
	// copied to the clipboard instead.
	ErrCopiedToClipboard = errors.New("copied to clipboard")
)

// Opener opens a URL with whatever the host uses for it.
type Opener interface {
	Open(ctx context.Context, url string) error
}

// Command is one candidate URL handler.
type Command struct {
	Name string
	Args func(url string) []string
}

// Launcher starts the first available handler for the platform.
type Launcher struct {
	commands []Command
	lookPath func(string) (string, error)
	start    func(ctx context.Context, name string, args ...string) error
}

// NewLauncher returns a launcher with the handlers known for this OS.
func NewLauncher() *Launcher {
	return &Launcher{
		commands: commandsFor(runtime.GOOS),
		lookPath: exec.LookPath,
		start:    startDetached,
	}
}

// Open implements Opener. It does not wait for the handler to exit.
func (l *Launcher) Open(ctx context.Context, url string) error {
	cmd, err := l.selectCommand()
	if err != nil {
		return err
	}
	if err := l.start(ctx, cmd.Name, cmd.Args(url)...); err != nil {
		return fmt.Errorf("launching %s: %w", cmd.Name, err)
	}
	return nil
}

// Detect returns the name of the handler Open would use.
func (l *Launcher) Detect() (string, error) {
	cmd, err := l.selectCommand()
	if err != nil {
		return "", err
	}
	return cmd.Name, nil
}

func (l *Launcher) selectCommand() (Command, error) {
	for _, candidate := range l.commands {
		if _, err := l.lookPath(candidate.Name); err == nil {
			return candidate, nil
		}
	}
	return Command{}, ErrNoOpener
}

func startDetached(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...) // #nosec G204 - name comes from the fixed candidate list
	if err := cmd.Start(); err != nil {
		return err
	}
	// Reap the handler once it exits; openers usually return immediately.
	go func() {
		_ = cmd.Wait()
	}()
	return nil
}

func plain(url string) []string {
	return []string{url}
}

func commandsFor(goos string) []Command {
	switch goos {
	case "darwin":
		return []Command{{Name: "open", Args: plain}}
	case "windows":
		return []Command{{
			Name: "rundll32",
			Args: func(url string) []string {
				return []string{"url.dll,FileProtocolHandler", url}
			},
		}}
	case "linux", "freebsd", "openbsd", "netbsd":
		return []Command{
			{Name: "xdg-open", Args: plain},
			{Name: "wslview", Args: plain},
			{Name: "gio", Args: func(url string) []string { return []string{"open", url} }},
		}
	default:
		return nil
	}
}

// Clipboard copies text to the system clipboard.
type Clipboard interface {
	WriteAll(text string) error
}

type systemClipboard struct{}

func (systemClipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return errors.New("clipboard unsupported")
	}
	return clipboard.WriteAll(text)
}

// SystemClipboard is the host clipboard.
var SystemClipboard Clipboard = systemClipboard{}

// Fallback tries next and, when it fails, copies the URL to the clipboard.
type Fallback struct {
	next Opener
	clip Clipboard
}

// WithClipboard wraps next so a failed open still leaves the URL somewhere
// useful.
func WithClipboard(next Opener, clip Clipboard) *Fallback {
	return &Fallback{next: next, clip: clip}
}

// Open implements Opener. It returns ErrCopiedToClipboard when the URL ended
// up on the clipboard, and the original error when that failed too.
func (f *Fallback) Open(ctx context.Context, url string) error {
	err := f.next.Open(ctx, url)
	if err == nil {
		return nil
	}
	if clipErr := f.clip.WriteAll(url); clipErr != nil {
		return fmt.Errorf("%w (clipboard: %v)", err, clipErr)
	}
	return ErrCopiedToClipboard
}
