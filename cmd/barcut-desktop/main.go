// BarCut desktop: bar cutting planner with a Fyne window.
//
// Build:
//
//	go build -o barcut-desktop ./cmd/barcut-desktop
//
// Cross-compile with fyne-cross:
//
//	go install github.com/fyne-io/fyne-cross@latest
//	fyne-cross windows -arch=amd64
//	fyne-cross darwin  -arch=amd64,arm64
package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/piwi3910/BarCut/internal/config"
	"github.com/piwi3910/BarCut/internal/ui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
	logger := cfg.Logger()

	application := app.NewWithID("com.piwi3910.barcut")
	window := application.NewWindow("BarCut - Bar Cutting Planner")

	appUI := ui.NewApp(application, window, logger, cfg.ConfigDir)
	appUI.SetupMenus()
	window.SetContent(appUI.Build())
	window.Resize(fyne.NewSize(1000, 700))
	window.CenterOnScreen()
	window.ShowAndRun()
}
