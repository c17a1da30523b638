package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"pitchdeck/internal/config"
	"pitchdeck/internal/deck"
	"pitchdeck/internal/logging"
	"pitchdeck/internal/navigator"
	"pitchdeck/internal/opener"
	"pitchdeck/internal/tui"
)

var (
	// Version is set during build
	Version = "dev"

	// BuildDate is set during build
	BuildDate = "unknown"
)

var (
	// Global flags
	configPath string
	variant    string
	autoplay   bool
	interval   time.Duration
	debug      bool

	cfg    *config.Config
	logger = zap.NewNop()
)

// rootCmd presents the deck
var rootCmd = &cobra.Command{
	Use:   "pitchdeck [dir]",
	Short: "Present a markdown slide deck in the terminal",
	Long: `pitchdeck presents a deck of markdown slides full screen, with
keyboard and mouse navigation, timed autoplay and a call-to-action that
opens a pre-filled email.

Slides are the *.md files of dir, in name order. Without a dir the
built-in deck is shown. When stdout is not a terminal the deck is
printed instead.`,
	Version:           Version,
	Args:              cobra.MaximumNArgs(1),
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
	RunE: runPresent,
}

func main() {
	// Cancel on interrupt
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.SetVersionTemplate(`{{with .Name}}{{printf "%s " .}}{{end}}{{printf "version %s" .Version}}
Build Date: ` + BuildDate + `
`)

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&configPath, "config", "c", "", "config file (default: ~/.config/pitchdeck/config.toml, then ./pitchdeck.toml)")
	flags.StringVar(&variant, "variant", "", "visual style: rich or flat")
	flags.BoolVar(&autoplay, "autoplay", false, "start autoplay immediately")
	flags.DurationVar(&interval, "interval", 0, "how long each slide stays up during autoplay")
	flags.BoolVar(&debug, "debug", false, "write a debug log")
}

// setup loads the configuration, applies flag overrides and builds the
// logger for every command.
func setup(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load(configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("variant") {
		loaded.Variant = variant
	}
	if flags.Changed("autoplay") {
		loaded.AutoPlay.Start = autoplay
	}
	if flags.Changed("interval") {
		loaded.AutoPlay.Interval = config.Duration{Duration: interval}
		if loaded.AutoPlay.Tick.Duration > interval {
			loaded.AutoPlay.Tick = config.Duration{Duration: interval}
		}
	}
	if err := loaded.Validate(); err != nil {
		return err
	}
	cfg = loaded

	logger, err = logging.New(cfg.Log.Enabled || debug, cfg.Log.File, cfg.Log.Level, debug)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	return nil
}

// loadDeck reads the deck from the argument, the configured directory or
// the built-in slides, in that order.
func loadDeck(args []string) (*deck.Deck, error) {
	dir := cfg.Deck.Dir
	if len(args) > 0 {
		dir = args[0]
	}
	if dir == "" {
		return deck.Builtin()
	}

	d, err := deck.Load(dir)
	if err != nil {
		return nil, fmt.Errorf("loading deck from %s: %w", dir, err)
	}
	return d, nil
}

func runPresent(cmd *cobra.Command, args []string) error {
	d, err := loadDeck(args)
	if err != nil {
		return err
	}

	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return printDeck(cmd.OutOrStdout(), d, true)
	}

	composer, err := cfg.Composer()
	if err != nil {
		return fmt.Errorf("building call to action: %w", err)
	}

	opts := append(cfg.NavigatorOptions(), navigator.WithObserver(logTransition))
	ctrl := navigator.New(d, opts...)

	ctx := cmd.Context()
	model := tui.New(ctrl, composer, newOpener(),
		tui.WithLogger(logger),
		tui.WithAutoPlay(cfg.AutoPlay.Start),
		// The mail handler must outlive the program.
		tui.WithContext(context.WithoutCancel(ctx)),
	)

	logger.Info("presenting",
		zap.String("title", d.Title()),
		zap.Int("slides", d.Len()),
		zap.String("variant", cfg.Variant),
		zap.Duration("interval", cfg.AutoPlay.Interval.Duration),
	)

	logOpener()

	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("running presentation: %w", err)
	}
	return nil
}

// newOpener launches the system mail handler and falls back to the
// clipboard. Tests replace it.
var newOpener = func() opener.Opener {
	return opener.WithClipboard(opener.NewLauncher(), opener.SystemClipboard)
}

// logOpener records which URL handler a call to action will use.
func logOpener() {
	name, err := opener.NewLauncher().Detect()
	if err != nil {
		logger.Warn("no URL opener; calls to action copy to the clipboard", zap.Error(err))
		return
	}
	logger.Debug("URL opener", zap.String("command", name))
}

func logTransition(t navigator.Transition) {
	logger.Debug("transition",
		zap.Int("from", t.From+1),
		zap.Int("to", t.To+1),
		zap.String("cause", string(t.Cause)),
	)
}
