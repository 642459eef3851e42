package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy/internal/config"
	"github.com/vovakirdan/flappy/internal/core"
	"github.com/vovakirdan/flappy/internal/games/flappy"
)

// loadConfig resolves the tunables, applies the global flags and hands the
// result to the game factory.
func loadConfig() (config.FlappyConfig, core.RuntimeConfig, error) {
	cfg, err := config.LoadFlappy(flagConfig)
	if err != nil {
		return config.FlappyConfig{}, core.RuntimeConfig{}, err
	}
	if flagDebug {
		cfg.Debug = true
	}
	flappy.SetConfig(cfg)

	rc := core.RuntimeConfig{
		FieldW:   cfg.Field.Width,
		FieldH:   cfg.Field.Height,
		TickRate: cfg.Field.TickRate,
		Seed:     flagSeed,
		Debug:    cfg.Debug,
	}
	if flagFPS > 0 {
		rc.TickRate = flagFPS
	}
	// Use time-based seed if not specified
	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	}
	return cfg, rc, nil
}

// newLogger creates a logger writing to w at the level chosen by --verbose.
func newLogger(w io.Writer, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// openLogFile opens path for appending, creating its directory.
func openLogFile(path string) (*os.File, error) {
	path = expandHome(path)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
}

// expandHome replaces a leading ~/ with the user's home directory.
func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
