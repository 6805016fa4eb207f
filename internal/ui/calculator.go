package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"github.com/rs/zerolog"

	"github.com/ytget/calculator/internal/calc"
	"github.com/ytget/calculator/internal/config"
	"github.com/ytget/calculator/internal/logger"
	"github.com/ytget/calculator/internal/model"
)

// CalculatorUI represents the main calculator window
type CalculatorUI struct {
	window   fyne.Window
	calc     calc.Calculator
	settings *config.Settings
	log      zerolog.Logger

	display *canvas.Text
	keys    map[string]*KeyButton
}

// NewCalculatorUI creates the calculator window content and menu
func NewCalculatorUI(window fyne.Window, calculator calc.Calculator, settings *config.Settings, log zerolog.Logger) *CalculatorUI {
	ui := &CalculatorUI{
		window:   window,
		calc:     calculator,
		settings: settings,
		log:      log,
		keys:     make(map[string]*KeyButton),
	}

	ui.applySettings()
	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *CalculatorUI) setupUI() {
	ui.createMenu()

	ui.display = canvas.NewText(ui.calc.Display(), HexColor(ColorDisplayText))
	ui.display.TextSize = DisplayTextSize
	ui.display.Alignment = fyne.TextAlignTrailing

	padding := canvas.NewText(DisplayPadding, HexColor(ColorDisplayText))
	padding.TextSize = DisplayTextSize
	displayRow := container.NewBorder(nil, nil, nil, padding, ui.display)

	op := func(label string, style KeyStyle, o model.Operation) fyne.CanvasObject {
		return ui.newKey(label, style, calc.Press(o))
	}
	digit := func(d int) fyne.CanvasObject {
		return ui.newKey(calc.Digit(d).Label(), KeyNumber, calc.Digit(d))
	}

	content := container.NewGridWithRows(6,
		displayRow,
		container.NewGridWithColumns(4,
			op(LabelClear, KeySecondary, model.OpAC),
			op(LabelSignChange, KeySecondary, model.OpSignChange),
			op(LabelPercent, KeySecondary, model.OpPercent),
			op(LabelDivide, KeyPrimary, model.OpDivide),
		),
		container.NewGridWithColumns(4, digit(7), digit(8), digit(9), op(LabelMultiply, KeyPrimary, model.OpMultiply)),
		container.NewGridWithColumns(4, digit(4), digit(5), digit(6), op(LabelSubtract, KeyPrimary, model.OpSubtract)),
		container.NewGridWithColumns(4, digit(1), digit(2), digit(3), op(LabelSum, KeyPrimary, model.OpSum)),
		// "0" spans two columns
		container.NewGridWithColumns(2,
			digit(0),
			container.NewGridWithColumns(2,
				op(LabelDot, KeyNumber, model.OpDot),
				op(LabelEquals, KeyPrimary, model.OpEquals),
			),
		),
	)

	ui.window.SetContent(content)
}

// createMenu creates the application menu
func (ui *CalculatorUI) createMenu() {
	settingsItem := fyne.NewMenuItem("Settings…", ui.onShowSettings)
	clearItem := fyne.NewMenuItem("Clear", func() {
		ui.onKey(calc.Press(model.OpAC))
	})

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu("File", settingsItem),
		fyne.NewMenu("Edit", clearItem),
	))
}

func (ui *CalculatorUI) newKey(label string, style KeyStyle, ev calc.ButtonEvent) *KeyButton {
	key := NewKeyButton(label, style, func() { ui.onKey(ev) })
	ui.keys[label] = key
	return key
}

// onKey forwards one press to the engine and re-renders the display
func (ui *CalculatorUI) onKey(ev calc.ButtonEvent) {
	if err := ui.calc.Handle(ev); err != nil {
		ui.log.Error().Err(err).Str("event", ev.Label()).Msg("Key press failed")
		dialog.ShowError(err, ui.window)
	}
	ui.refreshDisplay()
}

func (ui *CalculatorUI) refreshDisplay() {
	ui.display.Text = ui.calc.Display()
	ui.display.Refresh()
}

// applySettings pushes the stored diagnostics settings into logger and engine
func (ui *CalculatorUI) applySettings() {
	level := logger.SetGlobalLevel(ui.settings.GetLogLevel())
	trace := ui.settings.GetTraceTokens()
	ui.calc.SetTrace(trace)
	ui.log.Debug().Str("level", level.String()).Bool("trace", trace).Msg("Settings applied")
}

// onShowSettings shows the settings dialog
func (ui *CalculatorUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.window, ui.applySettings).Show()
}
