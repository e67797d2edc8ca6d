// Package config resolves cellquest settings from defaults, the environment
// and command-line flags.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/abhisek/cellquest/internal/store"
)

// Config holds all runtime configuration.
type Config struct {
	// ContentDir overrides the embedded content pack when set.
	ContentDir string

	// Speed scales animation and tour timing. 2 plays twice as fast.
	// Default: 1.
	Speed float64

	// LogFile receives structured logs. Empty discards logs so the terminal
	// UI stays clean.
	LogFile string

	// LogLevel is one of debug, info, warn, error. Default: info.
	LogLevel string

	// JournalDSN is the SQLite DSN for the activity journal.
	// Default: an in-memory database.
	JournalDSN string
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Speed:      1,
		LogLevel:   "info",
		JournalDSN: store.DefaultDSN,
	}
}

// FromEnv builds a Config from environment variables, falling back to
// defaults for unset values. A malformed CELLQUEST_SPEED is reported by
// Validate.
func FromEnv() Config {
	cfg := DefaultConfig()

	if d := os.Getenv("CELLQUEST_CONTENT"); d != "" {
		cfg.ContentDir = d
	}
	if s := os.Getenv("CELLQUEST_SPEED"); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			v = -1
		}
		cfg.Speed = v
	}
	if f := os.Getenv("CELLQUEST_LOG"); f != "" {
		cfg.LogFile = f
	}
	if l := os.Getenv("CELLQUEST_LOG_LEVEL"); l != "" {
		cfg.LogLevel = strings.ToLower(l)
	}
	if j := os.Getenv("CELLQUEST_JOURNAL"); j != "" {
		cfg.JournalDSN = j
	}

	return cfg
}

// Validate checks that every setting is usable.
func (c Config) Validate() error {
	if c.Speed <= 0 || c.Speed > 100 {
		return fmt.Errorf("speed must be in (0, 100], got %v", c.Speed)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	if c.ContentDir != "" {
		info, err := os.Stat(c.ContentDir)
		if err != nil {
			return fmt.Errorf("content dir: %w", err)
		}
		if !info.IsDir() {
			return fmt.Errorf("content dir %q is not a directory", c.ContentDir)
		}
	}
	return nil
}

// Level parses LogLevel.
func (c Config) Level() (slog.Level, error) {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level: %q", c.LogLevel)
	}
}
