package cli

import (
	"fmt"
	"io"
	"log/slog"
)

// Log format constants
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Config holds CLI configuration
type Config struct {
	Verbose   bool
	LogFormat string
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		Verbose:   false,
		LogFormat: LogFormatText,
	}
}

// Validate checks that the configuration is usable
func (c *Config) Validate() error {
	switch c.LogFormat {
	case LogFormatText, LogFormatJSON:
		return nil
	default:
		return fmt.Errorf("invalid log format %q: must be 'text' or 'json'", c.LogFormat)
	}
}

// NewLogger builds the application logger writing to w.
// Only warnings and errors are logged unless Verbose is set.
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if c.Verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	if c.LogFormat == LogFormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
