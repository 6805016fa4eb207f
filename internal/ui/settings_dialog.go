package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/calculator/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings *config.Settings
	window   fyne.Window
	dialog   *dialog.ConfirmDialog
	onApply  func()

	// UI components
	levelSelect *widget.Select
	traceCheck  *widget.Check
}

// NewSettingsDialog creates a new settings dialog. onApply runs after saving.
func NewSettingsDialog(settings *config.Settings, window fyne.Window, onApply func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings: settings,
		window:   window,
		onApply:  onApply,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	sd.levelSelect = widget.NewSelect(sd.settings.GetLogLevelOptions(), nil)
	sd.levelSelect.PlaceHolder = "Select level"

	sd.traceCheck = widget.NewCheck("Log token sequence after every key", nil)

	form := container.NewVBox(
		widget.NewLabel("Diagnostics"),
		widget.NewSeparator(),

		widget.NewLabel("Log Level:"),
		sd.levelSelect,

		sd.traceCheck,
	)

	sd.dialog = dialog.NewCustomConfirm(
		"Settings",
		"Save",
		"Cancel",
		form,
		sd.onSave,
		sd.window,
	)
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.levelSelect.SetSelected(sd.settings.GetLogLevel())
	sd.traceCheck.SetChecked(sd.settings.GetTraceTokens())
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if sd.levelSelect.Selected != "" {
		sd.settings.SetLogLevel(sd.levelSelect.Selected)
	}
	sd.settings.SetTraceTokens(sd.traceCheck.Checked)

	if sd.onApply != nil {
		sd.onApply()
	}
}
