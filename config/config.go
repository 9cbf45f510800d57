// Package config loads the desktop host settings from a TOML file
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// Backend names accepted in [terminal] backend
const (
	BackendANSI  = "ansi"
	BackendTcell = "tcell"
)

// Config is the full settings tree. Zero-valued sections are not valid;
// start from Default.
type Config struct {
	Terminal TerminalConfig `toml:"terminal"`
	UI       UIConfig       `toml:"ui"`
	Audio    AudioConfig    `toml:"audio"`
	Log      LogConfig      `toml:"log"`
}

type TerminalConfig struct {
	Backend string `toml:"backend"`
	Mouse   bool   `toml:"mouse"`
}

type UIConfig struct {
	MaxCommand     int    `toml:"max_command"`
	CursorGlyph    string `toml:"cursor_glyph"`
	BoxStyle       string `toml:"box_style"`
	SeparatorStyle string `toml:"separator_style"`
	// Image is an optional CMP file shown on the desktop
	Image string `toml:"image"`
}

type AudioConfig struct {
	Enabled bool    `toml:"enabled"`
	Volume  float64 `toml:"volume"`
}

type LogConfig struct {
	Debug bool   `toml:"debug"`
	Dir   string `toml:"dir"`
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		Terminal: TerminalConfig{Backend: BackendANSI, Mouse: true},
		UI: UIConfig{
			MaxCommand:     16,
			CursorGlyph:    "🮰",
			BoxStyle:       "rounded",
			SeparatorStyle: "connected",
		},
		Audio: AudioConfig{Enabled: false, Volume: 0.6},
		Log:   LogConfig{Debug: false, Dir: "logs"},
	}
}

// Load overlays the TOML file at path onto Default and validates the result.
// Unknown keys are rejected so typos do not pass silently.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("decode config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, fmt.Errorf("config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// StyleChecker reports whether a named glyph style exists. Kept as function
// values so this package does not import the widget toolkit.
type StyleChecker struct {
	Box       func(name string) bool
	Separator func(name string) bool
}

// Validate checks value ranges. Style names are checked only when styles
// is given.
func (c Config) Validate(styles ...StyleChecker) error {
	var errs []error
	switch c.Terminal.Backend {
	case BackendANSI, BackendTcell:
	default:
		errs = append(errs, fmt.Errorf("terminal.backend %q: want %q or %q", c.Terminal.Backend, BackendANSI, BackendTcell))
	}
	if c.UI.MaxCommand < 1 || c.UI.MaxCommand > 99 {
		errs = append(errs, fmt.Errorf("ui.max_command %d: want 1..99", c.UI.MaxCommand))
	}
	if n := len([]rune(c.UI.CursorGlyph)); n != 1 {
		errs = append(errs, fmt.Errorf("ui.cursor_glyph %q: want exactly one character", c.UI.CursorGlyph))
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		errs = append(errs, fmt.Errorf("audio.volume %v: want 0..1", c.Audio.Volume))
	}
	if c.Log.Dir == "" {
		errs = append(errs, errors.New("log.dir: must not be empty"))
	}
	for _, s := range styles {
		if s.Box != nil && !s.Box(c.UI.BoxStyle) {
			errs = append(errs, fmt.Errorf("ui.box_style %q: unknown style", c.UI.BoxStyle))
		}
		if s.Separator != nil && !s.Separator(c.UI.SeparatorStyle) {
			errs = append(errs, fmt.Errorf("ui.separator_style %q: unknown style", c.UI.SeparatorStyle))
		}
	}
	return errors.Join(errs...)
}
