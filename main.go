package main

import (
	"errors"
	"fmt"
	"os"

	"fyne.io/fyne/v2/app"

	"transformer-calc/internal/cli"
	"transformer-calc/internal/fault"
	"transformer-calc/internal/format"
	"transformer-calc/internal/logging"
	"transformer-calc/ui"
)

func main() {
	cfg, err := cli.ParseFlags()
	if err != nil {
		os.Exit(1)
	}

	// No flags provided, help requested or only GUI settings = use GUI
	if cfg == nil || cfg.WantsGUI() {
		runGUI(cfg)
		return
	}

	// CLI mode
	logging.Setup(cfg.Verbose)
	logging.New("main").Debug("starting", "ui", "cli")
	if err := cli.Run(*cfg, os.Stdout); err != nil {
		var ferr *fault.Error
		if errors.As(err, &ferr) {
			fmt.Fprintln(os.Stderr, format.FormatError(err))
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func runGUI(cfg *cli.RunnerConfig) {
	if cfg == nil && len(os.Args) > 1 {
		return // help was printed
	}

	verbose := cfg != nil && cfg.Verbose
	logging.Setup(verbose)
	logging.New("main").Info("starting", "ui", "gui")

	a := app.NewWithID("com.transformer-calc.gui")
	settings := ui.LoadSettings(a.Preferences(), ui.DefaultSettings())
	if cfg != nil {
		settings = settings.Override(cfg.Theme, cfg.Nav)
	}

	win := ui.BuildMainWindow(a, settings)
	win.ShowAndRun()
}
