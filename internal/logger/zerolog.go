package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Level names accepted by ParseLevel and offered in the settings dialog
const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)

// LevelOptions returns the selectable level names
func LevelOptions() []string {
	return []string{LevelDebug, LevelInfo, LevelWarn, LevelError}
}

// New builds a timestamped logger writing to writer
func New(writer io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(writer).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// NewConsole builds a human-readable logger on stderr
func NewConsole(level zerolog.Level) zerolog.Logger {
	consoleWriter := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	return New(consoleWriter, level)
}

// SetGlobalLevel applies the named level to every logger in the process.
// Loggers built with a lower per-logger level still honour this filter.
func SetGlobalLevel(name string) zerolog.Level {
	level := ParseLevel(name)
	zerolog.SetGlobalLevel(level)
	return level
}

// ParseLevel maps a level name to a zerolog level, falling back to info
func ParseLevel(name string) zerolog.Level {
	level, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(name)))
	if err != nil || level == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return level
}
