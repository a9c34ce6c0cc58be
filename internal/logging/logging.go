// Package logging configures the slog logger shared by the command line
// tools. Libraries under pkg/ never log; they return errors.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// EnvLevel names the environment variable consulted when no level flag is set.
const EnvLevel = "POLARIS_LOG_LEVEL"

var programLevel = new(slog.LevelVar)

// New returns a text logger writing to w whose level is controlled by the
// package LevelVar. A nil writer means os.Stderr.
func New(w io.Writer) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: programLevel}))
}

// Setup resolves the level from flag, then POLARIS_LOG_LEVEL, then warn,
// installs the logger as the slog default and returns it.
func Setup(w io.Writer, flag string) (*slog.Logger, error) {
	raw := flag
	if raw == "" {
		raw = os.Getenv(EnvLevel)
	}
	level := slog.LevelWarn
	if raw != "" {
		parsed, err := ParseLevel(raw)
		if err != nil {
			return nil, err
		}
		level = parsed
	}
	SetLevel(level)
	logger := New(w)
	slog.SetDefault(logger)
	return logger, nil
}

// SetLevel sets the minimum level for loggers created by this package.
func SetLevel(level slog.Level) {
	programLevel.Set(level)
}

// Level returns the current minimum level.
func Level() slog.Level {
	return programLevel.Level()
}

// ParseLevel converts a level name into a slog.Level.
func ParseLevel(raw string) (slog.Level, error) {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "DEBUG":
		return slog.LevelDebug, nil
	case "INFO":
		return slog.LevelInfo, nil
	case "WARN", "WARNING":
		return slog.LevelWarn, nil
	case "ERROR":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("logging: unknown log level %q", raw)
	}
}
