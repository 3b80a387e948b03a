// Package logger configures structured logging for menu sessions.
// Logs go to stderr as JSON so they never interleave with rendered menu
// screens on stdout.
package logger

import (
	"log"
	"log/slog"
	"os"
	"strings"
)

// EnvVarLogLevel is the environment variable used to derive the log level.
const EnvVarLogLevel = "LOG_LEVEL"

// NewStructuredLogger creates a JSON logger writing to stderr at the given
// level, with module name and version attached to every record. Source
// locations are added for debug level only.
func NewStructuredLogger(module, version, level string) *slog.Logger {
	lev := ParseLogLevel(level)

	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level:     lev,
		AddSource: lev <= slog.LevelDebug,
	})).With("module", module, "version", version)
}

// NewLogLogger bridges slog to a standard library *log.Logger at the given
// level, for collaborators (like http.Server) that only accept the latter.
func NewLogLogger(level slog.Level, withSource bool) *log.Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level:     level,
		AddSource: withSource,
	})

	return slog.NewLogLogger(handler, level)
}

// SetDefaultLogger installs the structured logger as the process default,
// deriving the level from the LOG_LEVEL environment variable.
func SetDefaultLogger(module, version string) {
	SetDefaultLoggerWithLevel(module, version, os.Getenv(EnvVarLogLevel))
}

// SetDefaultLoggerWithLevel installs the structured logger as the process
// default at an explicit level.
func SetDefaultLoggerWithLevel(module, version, level string) {
	slog.SetDefault(NewStructuredLogger(module, version, level))
}

// ParseLogLevel converts a level string to a slog.Level.
// Unrecognized values default to info.
func ParseLogLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
