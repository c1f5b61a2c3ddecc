package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/quantum-jumper/internal/audio"
	"github.com/vovakirdan/quantum-jumper/internal/config"
	"github.com/vovakirdan/quantum-jumper/internal/core"
	"github.com/vovakirdan/quantum-jumper/internal/levels"
	"github.com/vovakirdan/quantum-jumper/internal/platform/tui"
	"github.com/vovakirdan/quantum-jumper/internal/registry"
	"github.com/vovakirdan/quantum-jumper/internal/storage"
)

// app holds everything a command needs once flags are parsed.
type app struct {
	cfg     config.QuantumConfig
	levels  *levels.Source
	store   *storage.Store
	audio   audio.Player
	logger  *log.Logger
	logFile io.Closer
}

type setupOptions struct {
	audio     bool      // open the sound device
	logTo     io.Writer // nil logs to the --log file
	logPrefix string
}

// setup loads config and levels, opens storage, and builds the logger.
// A missing database or sound device only disables that feature.
func setup(opts setupOptions) (*app, error) {
	a := &app{audio: audio.Silent{}}

	if err := a.openLogger(opts); err != nil {
		return nil, err
	}

	fail := func(err error) (*app, error) {
		a.Close()
		return nil, err
	}

	preset, ok := config.ParseDifficulty(flagDifficulty)
	if !ok {
		return fail(fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", flagDifficulty))
	}

	cfg, err := config.LoadQuantum(flagConfig)
	if err != nil {
		return fail(err)
	}
	config.ApplyQuantumPreset(&cfg, preset)
	if flagSeed != 0 {
		cfg.Generator.Seed = flagSeed
	}
	if flagFPS > 0 {
		cfg.Pacing.TickRate = flagFPS
	}
	a.cfg = cfg

	src, err := levels.NewSource(cfg.ToGenParams())
	if err != nil {
		return fail(err)
	}
	if flagLevelsDir != "" {
		n, err := src.LoadDir(expandHome(flagLevelsDir))
		if err != nil {
			return fail(err)
		}
		a.logger.Info("loaded level overrides", "dir", flagLevelsDir, "files", n)
	}
	a.levels = src

	store, err := storage.Open(flagDBPath)
	if err != nil {
		a.logger.Warn("could not open progress database", "error", err)
		if opts.logTo == nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open progress database: %v\n", err)
		}
	} else {
		a.store = store
	}

	if opts.audio {
		player, err := audio.New(cfg.Audio.Enabled && !flagMute, cfg.Audio.Volume)
		if err != nil {
			a.logger.Warn("sound disabled", "error", err)
		}
		a.audio = player
	}

	return a, nil
}

func (a *app) openLogger(opts setupOptions) error {
	w := opts.logTo
	if w == nil {
		path := expandHome(flagLogPath)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		a.logFile = f
		w = f
	}

	prefix := opts.logPrefix
	if prefix == "" {
		prefix = "quantum"
	}
	a.logger = log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if flagDebug {
		a.logger.SetLevel(log.DebugLevel)
	}
	return nil
}

// env binds the simulation to the local profile.
func (a *app) env() registry.Env {
	env := registry.Env{
		Tuning: a.cfg.ToTuning(),
		Levels: a.levels,
	}
	if a.store != nil {
		profile := a.store.ForProfile(storage.DefaultProfile)
		env.Progress = profile
		env.Records = profile
	}
	return env
}

func (a *app) deps() tui.Deps {
	return tui.Deps{
		Env:    a.env(),
		Store:  a.store,
		Audio:  a.audio,
		Logger: a.logger,
	}
}

// runtimeConfig sizes the screen to the terminal.
func (a *app) runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = a.cfg.Pacing.TickRate
	cfg.Seed = a.cfg.Generator.Seed
	return cfg
}

func (a *app) Close() {
	a.audio.Close()
	if a.store != nil {
		a.store.Close()
	}
	if a.logFile != nil {
		a.logFile.Close()
	}
}

// expandHome replaces a leading ~ with the home directory.
func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

func exitOnError(prefix string, err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error %s: %v\n", prefix, err)
		os.Exit(1)
	}
}
