// Command desktop is a mouse-driven terminal desktop built on the tui
// toolkit: a framed desktop area, a quick-launch button group, a pointer
// glyph that follows clicks and a one-line command buffer.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/pflag"

	"github.com/lixenwraith/nullui/audio"
	"github.com/lixenwraith/nullui/cmp"
	"github.com/lixenwraith/nullui/config"
	"github.com/lixenwraith/nullui/terminal"
	"github.com/lixenwraith/nullui/terminal/tui"
	"github.com/lixenwraith/nullui/terminal/vt"
)

var (
	configPath = pflag.StringP("config", "c", "", "TOML config file")
	backendArg = pflag.StringP("backend", "b", "", "terminal backend: ansi or tcell")
	debugFlag  = pflag.BoolP("debug", "d", false, "write debug log to the log directory")
	imagePath  = pflag.StringP("image", "i", "", "CMP image to show on the desktop")
	soundFlag  = pflag.Bool("sound", false, "play click and error sounds")
	noMouse    = pflag.Bool("no-mouse", false, "do not enable mouse reporting")
)

func main() {
	// Panic Recovery: the terminal must be usable again even after a crash
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\r\n\x1b[31mDESKTOP CRASHED: %v\x1b[0m\r\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}()

	pflag.Parse()

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "desktop: %v\n", err)
		os.Exit(2)
	}

	logDir = cfg.Log.Dir
	if logFile := setupLogging(cfg.Log.Debug); logFile != nil {
		defer logFile.Close()
	}

	if err := run(cfg); err != nil {
		slog.Error("desktop exited", "error", err)
		fmt.Fprintf(os.Stderr, "desktop: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig applies flags over the config file over the defaults
func loadConfig() (config.Config, error) {
	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			return cfg, err
		}
	}

	if pflag.CommandLine.Changed("backend") {
		cfg.Terminal.Backend = *backendArg
	}
	if *debugFlag {
		cfg.Log.Debug = true
	}
	if *imagePath != "" {
		cfg.UI.Image = *imagePath
	}
	if *soundFlag {
		cfg.Audio.Enabled = true
	}
	if *noMouse {
		cfg.Terminal.Mouse = false
	}

	err := cfg.Validate(config.StyleChecker{
		Box:       func(n string) bool { _, ok := tui.BoxStyleByName(n); return ok },
		Separator: func(n string) bool { _, ok := tui.SepStyleByName(n); return ok },
	})
	return cfg, err
}

func run(cfg config.Config) error {
	var img *cmp.Image
	if cfg.UI.Image != "" {
		var err error
		if img, err = cmp.Load(cfg.UI.Image); err != nil {
			return err
		}
	}

	sound := audio.NewSoundManager()
	sound.SetVolume(cfg.Audio.Volume)
	if cfg.Audio.Enabled {
		if err := sound.Initialize(); err != nil {
			slog.Warn("audio unavailable, continuing without sound", "error", err)
		}
		defer sound.Cleanup()
	}

	backend, err := newBackend(cfg.Terminal.Backend)
	if err != nil {
		return err
	}
	slog.Info("starting desktop", "backend", cfg.Terminal.Backend, "mouse", cfg.Terminal.Mouse)

	return terminal.Run(backend, func(s *terminal.Session) error {
		cols, lines := s.Size()
		d := newDesktop(cfg, s, cols, lines, img, sound)
		if !cfg.Terminal.Mouse {
			return d.loop(s)
		}
		return s.WithMouse(func() error { return d.loop(s) })
	})
}

func newBackend(name string) (terminal.Backend, error) {
	switch name {
	case config.BackendTcell:
		screen, err := tcell.NewScreen()
		if err != nil {
			return nil, fmt.Errorf("tcell screen: %w", err)
		}
		return vt.NewBackend(screen), nil
	case config.BackendANSI:
		return terminal.NewBackend(), nil
	}
	return nil, errors.New("unknown backend " + name)
}
