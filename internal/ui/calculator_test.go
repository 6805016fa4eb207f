package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/rs/zerolog"

	"github.com/ytget/calculator/internal/calc"
	"github.com/ytget/calculator/internal/config"
)

func newTestUI(t *testing.T) (*CalculatorUI, *calc.Engine, *config.Settings) {
	t.Helper()
	app := test.NewApp()
	window := test.NewWindow(nil)
	t.Cleanup(window.Close)

	settings := config.NewSettings(app)
	engine := calc.NewEngine(zerolog.Nop())
	return NewCalculatorUI(window, engine, settings, zerolog.Nop()), engine, settings
}

func tapKeys(t *testing.T, ui *CalculatorUI, labels ...string) {
	t.Helper()
	for _, label := range labels {
		key := ui.keys[label]
		if key == nil {
			t.Fatalf("No key labelled %q", label)
		}
		test.Tap(key)
	}
}

func TestCalculatorUI_Keypad(t *testing.T) {
	ui, _, _ := newTestUI(t)

	labels := []string{
		"AC", "+/-", "%", "÷",
		"7", "8", "9", "X",
		"4", "5", "6", "-",
		"1", "2", "3", "+",
		"0", ".", "=",
	}
	for _, label := range labels {
		if ui.keys[label] == nil {
			t.Errorf("Expected key %q on keypad", label)
		}
	}
	if len(ui.keys) != len(labels) {
		t.Errorf("Expected %d keys, got %d", len(labels), len(ui.keys))
	}
}

func TestCalculatorUI_TapUpdatesDisplay(t *testing.T) {
	tests := []struct {
		keys     []string
		expected string
	}{
		{[]string{"1", "2", "3"}, "123"},
		{[]string{"2", "+", "3", "="}, "2+3=5"},
		{[]string{"9", "X", "3", "="}, "9*3=27"},
		{[]string{"8", "÷", "2", "="}, "8÷2=4"},
		{[]string{"1", "0", "0", "+", "1", "0", "%", "="}, "100+10%=110"},
		{[]string{"5", "+/-"}, "-5"},
		{[]string{".", "5"}, "0.5"},
		{[]string{"4", "-", "+", "1", "="}, "4-1=3"},
		{[]string{"7", "+", "AC"}, ""},
	}

	for _, tc := range tests {
		ui, engine, _ := newTestUI(t)
		tapKeys(t, ui, tc.keys...)

		if ui.display.Text != tc.expected {
			t.Errorf("keys %v: display %q, expected %q", tc.keys, ui.display.Text, tc.expected)
		}
		if engine.Display() != ui.display.Text {
			t.Errorf("keys %v: display %q out of sync with engine %q", tc.keys, ui.display.Text, engine.Display())
		}
	}
}

func TestCalculatorUI_AppliesTraceSetting(t *testing.T) {
	app := test.NewApp()
	window := test.NewWindow(nil)
	defer window.Close()

	settings := config.NewSettings(app)
	settings.SetTraceTokens(true)

	recorder := &recordingCalculator{Engine: calc.NewEngine(zerolog.Nop())}
	NewCalculatorUI(window, recorder, settings, zerolog.Nop())

	if !recorder.trace {
		t.Error("Expected stored trace setting to reach the engine")
	}
}

func TestKeyStyle_Colors(t *testing.T) {
	if KeyPrimary.Background() != HexColor(ColorPrimaryKey) {
		t.Error("Primary key should use the primary colour")
	}
	if KeyPrimary.TextColor() != HexColor(ColorPrimaryKeyText) {
		t.Error("Primary key should use the light text colour")
	}
	if KeySecondary.Background() != HexColor(ColorSecondaryKey) {
		t.Error("Secondary key should use the secondary colour")
	}
	if KeyNumber.TextColor() != HexColor(ColorKeyText) {
		t.Error("Number key should use the dark text colour")
	}
}

func TestHexColor(t *testing.T) {
	c := HexColor(0xf79432)
	if c.R != 0xf7 || c.G != 0x94 || c.B != 0x32 || c.A != 0xff {
		t.Errorf("Unexpected colour %+v", c)
	}
}

// recordingCalculator captures SetTrace calls
type recordingCalculator struct {
	*calc.Engine
	trace bool
}

func (r *recordingCalculator) SetTrace(enabled bool) {
	r.trace = enabled
}
