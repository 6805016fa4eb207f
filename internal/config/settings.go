package config

import (
	"fyne.io/fyne/v2"

	"github.com/ytget/calculator/internal/logger"
)

// Settings keys for Fyne preferences
const (
	KeyLogLevel    = "log_level"
	KeyTraceTokens = "trace_tokens"
)

// Default values
const (
	DefaultLogLevel    = logger.LevelInfo
	DefaultTraceTokens = false
)

// Settings manages application configuration. Only diagnostics are
// configurable; the token sequence itself is never persisted.
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetLogLevel returns the configured log level name
func (s *Settings) GetLogLevel() string {
	level := s.app.Preferences().String(KeyLogLevel)
	if !isKnownLevel(level) {
		s.SetLogLevel(DefaultLogLevel)
		return DefaultLogLevel
	}
	return level
}

// SetLogLevel sets the log level name. Unknown names reset to the default.
func (s *Settings) SetLogLevel(level string) {
	if !isKnownLevel(level) {
		level = DefaultLogLevel
	}
	s.app.Preferences().SetString(KeyLogLevel, level)
}

// GetTraceTokens returns whether the token sequence is logged after every press
func (s *Settings) GetTraceTokens() bool {
	return s.app.Preferences().BoolWithFallback(KeyTraceTokens, DefaultTraceTokens)
}

// SetTraceTokens sets whether the token sequence is logged after every press
func (s *Settings) SetTraceTokens(enabled bool) {
	s.app.Preferences().SetBool(KeyTraceTokens, enabled)
}

// GetLogLevelOptions returns available log level options
func (s *Settings) GetLogLevelOptions() []string {
	return logger.LevelOptions()
}

func isKnownLevel(level string) bool {
	for _, option := range logger.LevelOptions() {
		if option == level {
			return true
		}
	}
	return false
}
