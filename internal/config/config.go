// Package config loads pitchdeck settings from TOML files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"go.uber.org/zap/zapcore"

	"pitchdeck/internal/mailto"
	"pitchdeck/internal/navigator"
)

// LocalName is the per-directory config file.
const LocalName = "pitchdeck.toml"

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

// Duration is a time.Duration written as "8s" or "40ms" in TOML.
type Duration struct {
	time.Duration
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = parsed
	return nil
}

// Config is the full configuration.
type Config struct {
	Variant  string         `toml:"variant"`
	Deck     DeckConfig     `toml:"deck"`
	AutoPlay AutoPlayConfig `toml:"autoplay"`
	Swipe    SwipeConfig    `toml:"swipe"`
	CTA      CTAConfig      `toml:"cta"`
	Log      LogConfig      `toml:"log"`
}

// DeckConfig selects the slides.
type DeckConfig struct {
	// Dir holds the markdown slides. Empty means the built-in deck.
	Dir string `toml:"dir"`
}

// AutoPlayConfig controls timed advancement.
type AutoPlayConfig struct {
	// Start arms autoplay as soon as the view opens.
	Start    bool     `toml:"start"`
	Interval Duration `toml:"interval"`
	Tick     Duration `toml:"tick"`
	// Triggers is "dual" or "single".
	Triggers string `toml:"triggers"`
}

// SwipeConfig controls drag gestures.
type SwipeConfig struct {
	Threshold int `toml:"threshold"`
}

// CTAConfig is the call-to-action email. Empty subject or body falls back to
// the variant's default text.
type CTAConfig struct {
	Recipient string `toml:"recipient"`
	Subject   string `toml:"subject,omitempty"`
	Body      string `toml:"body,omitempty"`
}

// LogConfig controls the debug log. The terminal belongs to the view, so
// logs only ever go to a file.
type LogConfig struct {
	// Enabled turns the file log on; --debug does too.
	Enabled bool   `toml:"enabled"`
	File    string `toml:"file"`
	Level   string `toml:"level"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Variant: string(navigator.Rich),
		AutoPlay: AutoPlayConfig{
			Interval: Duration{navigator.DefaultInterval},
			Tick:     Duration{navigator.DefaultTick},
			Triggers: string(navigator.Dual),
		},
		Swipe: SwipeConfig{Threshold: navigator.DefaultSwipeThreshold},
		CTA:   CTAConfig{Recipient: mailto.DefaultRecipient},
		Log:   LogConfig{File: "pitchdeck.log", Level: "info"},
	}
}

// GlobalPath returns ~/.config/pitchdeck/config.toml.
func GlobalPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "pitchdeck", "config.toml")
}

// Load applies, in order, the defaults, the global file, ./pitchdeck.toml and
// the explicit path. Missing global and local files are skipped; a missing
// explicit path is an error.
func Load(explicit string) (*Config, error) {
	cfg := Default()

	for _, path := range []string{GlobalPath(), LocalName} {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := cfg.merge(path); err != nil {
			return nil, err
		}
	}

	if explicit != "" {
		if err := cfg.merge(explicit); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// merge decodes path over the current values; keys absent from the file keep
// their value.
func (c *Config) merge(path string) error {
	data, err := os.ReadFile(path) // #nosec G304 - path is user config
	if err != nil {
		return fmt.Errorf("reading config %s: %w", path, err)
	}
	if _, err := toml.Decode(string(data), c); err != nil {
		return fmt.Errorf("parsing TOML from %s: %w", path, err)
	}
	return nil
}

// Validate checks every field.
func (c *Config) Validate() error {
	switch navigator.Variant(c.Variant) {
	case navigator.Rich, navigator.Flat:
	default:
		return fmt.Errorf("%w: variant must be rich or flat, got %q", ErrInvalid, c.Variant)
	}

	if c.AutoPlay.Interval.Duration <= 0 {
		return fmt.Errorf("%w: autoplay.interval must be positive", ErrInvalid)
	}
	if c.AutoPlay.Tick.Duration <= 0 || c.AutoPlay.Tick.Duration > c.AutoPlay.Interval.Duration {
		return fmt.Errorf("%w: autoplay.tick must be positive and no longer than the interval", ErrInvalid)
	}
	switch navigator.TriggerMode(c.AutoPlay.Triggers) {
	case navigator.Dual, navigator.Single:
	default:
		return fmt.Errorf("%w: autoplay.triggers must be dual or single, got %q", ErrInvalid, c.AutoPlay.Triggers)
	}

	if c.Swipe.Threshold <= 0 {
		return fmt.Errorf("%w: swipe.threshold must be positive", ErrInvalid)
	}

	if c.CTA.Recipient == "" {
		return fmt.Errorf("%w: cta.recipient is required", ErrInvalid)
	}

	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %v", ErrInvalid, err)
	}

	return nil
}

// Composer builds the CTA composer for the configured variant. The rich
// variant personalizes the email with the active slide; the flat one sends
// fixed text.
func (c *Config) Composer() (*mailto.Composer, error) {
	subject, body := mailto.DefaultSubject, mailto.DefaultBody
	if navigator.Variant(c.Variant) == navigator.Rich {
		subject, body = mailto.SlideSubject, mailto.SlideBody
	}
	if c.CTA.Subject != "" {
		subject = c.CTA.Subject
	}
	if c.CTA.Body != "" {
		body = c.CTA.Body
	}
	return mailto.NewComposer(c.CTA.Recipient, subject, body)
}

// NavigatorOptions translates the autoplay and swipe settings.
func (c *Config) NavigatorOptions() []navigator.Option {
	return []navigator.Option{
		navigator.WithVariant(navigator.Variant(c.Variant)),
		navigator.WithInterval(c.AutoPlay.Interval.Duration),
		navigator.WithTick(c.AutoPlay.Tick.Duration),
		navigator.WithTriggerMode(navigator.TriggerMode(c.AutoPlay.Triggers)),
		navigator.WithSwipeThreshold(c.Swipe.Threshold),
	}
}

// Save writes the configuration as TOML, creating the parent directory.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("creating directory for %s: %w", path, err)
	}

	file, err := os.Create(path) // #nosec G304 - path is user config
	if err != nil {
		return fmt.Errorf("creating config file %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	encoder := toml.NewEncoder(file)
	encoder.Indent = "  "
	if err := encoder.Encode(c); err != nil {
		return fmt.Errorf("encoding config to %s: %w", path, err)
	}
	return nil
}
