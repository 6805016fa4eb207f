package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/rs/zerolog"

	"github.com/ytget/calculator/internal/calc"
	"github.com/ytget/calculator/internal/config"
	"github.com/ytget/calculator/internal/logger"
	"github.com/ytget/calculator/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.calculator"
	AppName = "Calculator"
)

func main() {
	// The global level set from settings does the actual filtering
	log := logger.NewConsole(zerolog.DebugLevel)

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewCalcTheme())

	settings := config.NewSettings(myApp)
	logger.SetGlobalLevel(settings.GetLogLevel())

	log.Info().Str("version", version).Msg("Calculator starting")

	myWindow := myApp.NewWindow(AppName)
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	engine := calc.NewEngine(log)
	log.Debug().Str("session", engine.Session()).Msg("Engine ready")

	ui.NewCalculatorUI(myWindow, engine, settings, log)

	myWindow.ShowAndRun()
}
