// Package ui is the Fyne desktop front end: pick a piece list, set the stock
// length and watch the plan appear bar by bar.
package ui

import (
	"fmt"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	fynetooltip "github.com/dweymouth/fyne-tooltip"
	ttwidget "github.com/dweymouth/fyne-tooltip/widget"
	"github.com/rs/zerolog"

	"github.com/piwi3910/BarCut/internal/logging"
	"github.com/piwi3910/BarCut/internal/model"
	"github.com/piwi3910/BarCut/internal/project"
)

// App holds all application state and UI references.
type App struct {
	app       fyne.App
	window    fyne.Window
	base      zerolog.Logger
	logger    zerolog.Logger
	configDir string
	prefs     model.AppConfig
	history   *History

	project model.Project
	source  string // Piece list the project was loaded from
	running bool

	stockEntry      *widget.Entry
	kerfEntry       *widget.Entry
	fileLabel       *widget.Label
	runBtn          *ttwidget.Button
	piecesContainer *fyne.Container
	output          *widget.Label
	outputScroll    *container.Scroll
}

// NewApp loads the saved preferences from configDir and applies them to a new
// project.
func NewApp(application fyne.App, window fyne.Window, logger zerolog.Logger, configDir string) *App {
	a := &App{
		app:       application,
		window:    window,
		base:      logger,
		logger:    logging.Component(logger, "ui"),
		configDir: configDir,
		history:   NewHistory(),
		project:   model.NewProject(),
	}

	prefs, err := project.LoadAppConfig(project.ConfigPath(configDir))
	if err != nil {
		a.logger.Warn().Err(err).Msg("using default preferences")
		prefs = model.DefaultAppConfig()
	}
	a.prefs = prefs
	prefs.ApplyToSettings(&a.project.Settings)
	application.Settings().SetTheme(newCompactTheme(prefs.Theme))
	return a
}

// SetupMenus creates the native menu bar for the application.
func (a *App) SetupMenus() {
	recent := fyne.NewMenuItem("Open Recent", nil)
	for _, path := range a.prefs.RecentFiles {
		p := path
		recent.ChildMenu = appendItem(recent.ChildMenu, fyne.NewMenuItem(filepath.Base(p), func() {
			a.openPieceList(p)
		}))
	}
	if recent.ChildMenu == nil {
		recent.Disabled = true
	}

	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Open Piece List...", a.chooseFile),
		recent,
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Open Project...", a.loadProject),
		fyne.NewMenuItem("Save Project...", a.saveProject),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Export PDF...", func() { a.exportPlan("PDF", ".pdf") }),
		fyne.NewMenuItem("Export Labels...", func() { a.exportPlan("Labels", ".pdf") }),
		fyne.NewMenuItem("Export DXF...", func() { a.exportPlan("DXF", ".dxf") }),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() {
			a.window.Close()
		}),
	)

	editMenu := fyne.NewMenu("Edit",
		fyne.NewMenuItem("Undo", a.undo),
		fyne.NewMenuItem("Redo", a.redo),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Clear All Pieces", func() {
			a.edit("Clear pieces", func() { a.project.Pieces = nil })
		}),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", a.showAboutDialog),
	)

	a.window.SetMainMenu(fyne.NewMainMenu(fileMenu, editMenu, helpMenu))
}

func appendItem(menu *fyne.Menu, item *fyne.MenuItem) *fyne.Menu {
	if menu == nil {
		return fyne.NewMenu("", item)
	}
	menu.Items = append(menu.Items, item)
	return menu
}

func (a *App) showAboutDialog() {
	dialog.ShowInformation(
		"About BarCut",
		"BarCut: bar cutting planner\n\n"+
			"Cuts a list of piece lengths from fixed-length stock bars,\n"+
			"one bar at a time, and reports the waste of every bar.",
		a.window,
	)
}

// Build constructs the full UI. The result is wrapped in the tooltip layer
// and can be passed straight to SetContent.
func (a *App) Build() fyne.CanvasObject {
	a.stockEntry = widget.NewEntry()
	a.stockEntry.SetText(fmt.Sprint(a.project.Settings.StockLength))
	a.kerfEntry = widget.NewEntry()
	a.kerfEntry.SetText(fmt.Sprint(a.project.Settings.Kerf))

	a.fileLabel = widget.NewLabel("No file selected")
	openBtn := newButtonWithTooltip("Open file...", theme.FolderOpenIcon(),
		"CSV, Excel or DXF piece list", a.chooseFile)
	a.runBtn = newButtonWithTooltip("Run", theme.MediaPlayIcon(),
		"Plan the cuts bar by bar", a.run)
	a.runBtn.Importance = widget.HighImportance

	form := widget.NewForm(
		widget.NewFormItem("Stock length (mm)", a.stockEntry),
		widget.NewFormItem("Kerf (mm)", a.kerfEntry),
	)
	top := container.NewVBox(
		form,
		container.NewHBox(openBtn, a.fileLabel, layout.NewSpacer(), a.runBtn),
		widget.NewSeparator(),
	)

	a.piecesContainer = container.NewVBox()
	a.refreshPieces()

	a.output = widget.NewLabel("")
	a.output.TextStyle = fyne.TextStyle{Monospace: true}
	a.outputScroll = container.NewVScroll(a.output)

	split := container.NewHSplit(
		container.NewBorder(
			widget.NewLabelWithStyle("Pieces", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
			nil, nil, nil,
			container.NewVScroll(a.piecesContainer),
		),
		container.NewBorder(
			widget.NewLabelWithStyle("Cutting plan", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
			nil, nil, nil,
			a.outputScroll,
		),
	)
	split.Offset = 0.35

	return fynetooltip.AddWindowToolTipLayer(container.NewBorder(top, nil, nil, nil, split), a.window.Canvas())
}

func (a *App) refreshPieces() {
	a.piecesContainer.RemoveAll()

	if len(a.project.Pieces) == 0 {
		a.piecesContainer.Add(widget.NewLabel("Open a piece list to begin."))
		return
	}

	a.piecesContainer.Add(container.NewGridWithColumns(5,
		widget.NewLabelWithStyle("Label", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("Length (mm)", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("Qty", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabel(""),
		widget.NewLabel(""),
	))
	a.piecesContainer.Add(widget.NewSeparator())

	for i := range a.project.Pieces {
		idx := i
		p := a.project.Pieces[idx]
		a.piecesContainer.Add(container.NewGridWithColumns(5,
			widget.NewLabel(p.Label),
			widget.NewLabel(fmt.Sprint(p.Length)),
			widget.NewLabel(fmt.Sprint(p.Quantity)),
			widget.NewButtonWithIcon("", theme.DocumentCreateIcon(), func() {
				a.showEditPieceDialog(idx)
			}),
			widget.NewButtonWithIcon("", theme.DeleteIcon(), func() {
				a.edit("Remove piece", func() {
					a.project.Pieces = append(a.project.Pieces[:idx], a.project.Pieces[idx+1:]...)
				})
			}),
		))
	}
	a.piecesContainer.Refresh()
}

func (a *App) showEditPieceDialog(idx int) {
	p := a.project.Pieces[idx]

	labelEntry := widget.NewEntry()
	labelEntry.SetText(p.Label)
	lengthEntry := widget.NewEntry()
	lengthEntry.SetText(fmt.Sprint(p.Length))
	qtyEntry := widget.NewEntry()
	qtyEntry.SetText(fmt.Sprint(p.Quantity))

	form := dialog.NewForm("Edit Piece", "Save", "Cancel",
		[]*widget.FormItem{
			widget.NewFormItem("Label", labelEntry),
			widget.NewFormItem("Length (mm)", lengthEntry),
			widget.NewFormItem("Quantity", qtyEntry),
		},
		func(ok bool) {
			if !ok {
				return
			}
			edited, err := parsePiece(p, labelEntry.Text, lengthEntry.Text, qtyEntry.Text)
			if err != nil {
				dialog.ShowError(err, a.window)
				return
			}
			a.edit("Edit piece", func() { a.project.Pieces[idx] = edited })
		},
		a.window,
	)
	form.Resize(fyne.NewSize(400, 260))
	form.Show()
}

// edit records the current state for undo, applies fn and redraws.
func (a *App) edit(label string, fn func()) {
	a.history.Push(MakeSnapshot(a.project.Pieces, a.project.Settings, label))
	fn()
	a.project.Result = nil
	a.refreshPieces()
}

func (a *App) undo() {
	snap, ok := a.history.Undo(MakeSnapshot(a.project.Pieces, a.project.Settings, ""))
	if ok {
		a.restore(snap)
	}
}

func (a *App) redo() {
	snap, ok := a.history.Redo(MakeSnapshot(a.project.Pieces, a.project.Settings, ""))
	if ok {
		a.restore(snap)
	}
}

func (a *App) restore(snap Snapshot) {
	a.project.Pieces = snap.Pieces
	a.project.Settings = snap.Settings
	a.project.Result = nil
	a.stockEntry.SetText(fmt.Sprint(snap.Settings.StockLength))
	a.kerfEntry.SetText(fmt.Sprint(snap.Settings.Kerf))
	a.refreshPieces()
}
