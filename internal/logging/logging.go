// Package logging configures the process-wide zerolog logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/seenimoa/multibagger/internal/config"
)

// New builds a logger writing to w. Format "json" emits one JSON object
// per line; anything else uses the human-readable console writer.
func New(w io.Writer, cfg config.LoggingConfig) (zerolog.Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return zerolog.Nop(), err
	}

	out := w
	if cfg.Format != "json" {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: true}
	}
	return zerolog.New(out).Level(level).With().Timestamp().Logger(), nil
}

// Setup installs a logger built from cfg as the global zerolog logger
// and returns it.
func Setup(cfg config.LoggingConfig) (zerolog.Logger, error) {
	logger, err := New(os.Stderr, cfg)
	if err != nil {
		return logger, err
	}
	log.Logger = logger
	return logger, nil
}

// ParseLevel maps a config level name to a zerolog level. An empty name
// means info.
func ParseLevel(s string) (zerolog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "info":
		return zerolog.InfoLevel, nil
	case "debug":
		return zerolog.DebugLevel, nil
	case "warn", "warning":
		return zerolog.WarnLevel, nil
	case "error":
		return zerolog.ErrorLevel, nil
	default:
		return zerolog.NoLevel, fmt.Errorf("unknown log level %q", s)
	}
}
