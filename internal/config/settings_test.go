package config

import (
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestLogLevel(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	level := settings.GetLogLevel()
	if level != DefaultLogLevel {
		t.Errorf("Expected default log level %s, got %s", DefaultLogLevel, level)
	}

	// Test setting custom value
	settings.SetLogLevel("debug")
	if retrieved := settings.GetLogLevel(); retrieved != "debug" {
		t.Errorf("Expected log level debug, got %s", retrieved)
	}

	// Unknown level falls back to default
	settings.SetLogLevel("chatty")
	if retrieved := settings.GetLogLevel(); retrieved != DefaultLogLevel {
		t.Errorf("Unknown level should reset to %s, got %s", DefaultLogLevel, retrieved)
	}
}

func TestLogLevel_InvalidStoredValue(t *testing.T) {
	app := test.NewApp()
	app.Preferences().SetString(KeyLogLevel, "loud")
	settings := NewSettings(app)

	if level := settings.GetLogLevel(); level != DefaultLogLevel {
		t.Errorf("Expected default for invalid stored level, got %s", level)
	}
	if stored := app.Preferences().String(KeyLogLevel); stored != DefaultLogLevel {
		t.Errorf("Expected invalid stored level to be rewritten, got %s", stored)
	}
}

func TestTraceTokens(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetTraceTokens() != DefaultTraceTokens {
		t.Errorf("Expected default trace %v", DefaultTraceTokens)
	}

	settings.SetTraceTokens(true)
	if !settings.GetTraceTokens() {
		t.Error("Expected trace to be enabled")
	}

	settings.SetTraceTokens(false)
	if settings.GetTraceTokens() {
		t.Error("Expected trace to be disabled")
	}
}

func TestGetLogLevelOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLogLevelOptions()
	expected := []string{"debug", "info", "warn", "error"}

	if len(options) != len(expected) {
		t.Fatalf("Expected %d level options, got %d", len(expected), len(options))
	}
	for i := range expected {
		if options[i] != expected[i] {
			t.Errorf("Level option %d: expected %s, got %s", i, expected[i], options[i])
		}
	}
}
