package ui

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"github.com/rotisserie/eris"

	"github.com/piwi3910/BarCut/internal/engine"
	"github.com/piwi3910/BarCut/internal/export"
	"github.com/piwi3910/BarCut/internal/importer"
	"github.com/piwi3910/BarCut/internal/model"
	"github.com/piwi3910/BarCut/internal/project"
)

var pieceListExtensions = []string{".csv", ".tsv", ".txt", ".xlsx", ".xlsm", ".dxf"}

func (a *App) chooseFile() {
	d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		path := reader.URI().Path()
		reader.Close()
		a.openPieceList(path)
	}, a.window)
	d.SetFilter(storage.NewExtensionFileFilter(pieceListExtensions))
	d.Show()
}

// openPieceList replaces the current pieces with the contents of path.
func (a *App) openPieceList(path string) {
	result := importer.ImportFile(path)
	if len(result.Errors) > 0 {
		msg := "Errors encountered during import:\n\n" + strings.Join(result.Errors, "\n")
		dialog.ShowError(eris.New(msg), a.window)
		return
	}
	for _, w := range result.Warnings {
		a.logger.Warn().Str("file", path).Msg(w)
	}
	if len(result.Pieces) == 0 {
		dialog.ShowInformation("Empty piece list", "No pieces were found in "+filepath.Base(path)+".", a.window)
		return
	}

	a.project.Pieces = result.Pieces
	a.project.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	a.project.Result = nil
	a.source = path
	a.history.Clear()
	a.fileLabel.SetText(filepath.Base(path))
	a.output.SetText("")
	a.refreshPieces()

	a.prefs.AddRecentFile(path)
	if err := project.SaveAppConfig(project.ConfigPath(a.configDir), a.prefs); err != nil {
		a.logger.Warn().Err(err).Msg("could not save preferences")
	}
}

// run plans the current pieces off the UI goroutine. Each finished bar is
// appended to the output as soon as the planner reports it.
func (a *App) run() {
	if a.running {
		return
	}
	settings, err := parseSettings(a.project.Settings, a.stockEntry.Text, a.kerfEntry.Text)
	if err != nil {
		dialog.ShowError(err, a.window)
		return
	}
	if len(a.project.Pieces) == 0 {
		dialog.ShowInformation("No piece list", "Open a piece list first.", a.window)
		return
	}
	if settings != a.project.Settings {
		a.history.Push(MakeSnapshot(a.project.Pieces, a.project.Settings, "Change settings"))
		a.project.Settings = settings
	}

	pieces := copyPieces(a.project.Pieces)
	a.running = true
	a.runBtn.Disable()
	a.output.SetText("")

	planner := engine.New(settings,
		engine.WithLogger(a.base),
		engine.WithBarHandler(func(bar model.BarResult) {
			var b bytes.Buffer
			if err := export.WriteBar(&b, bar); err != nil {
				return
			}
			text := b.String()
			fyne.Do(func() { a.appendOutput(text) })
		}),
	)

	go func() {
		plan, err := planner.Plan(pieces)
		fyne.Do(func() {
			a.running = false
			a.runBtn.Enable()
			if err != nil {
				dialog.ShowError(err, a.window)
				return
			}
			a.project.Result = &plan

			var b bytes.Buffer
			if err := export.WriteSummary(&b, plan, pieces, settings.MinOffcut); err == nil {
				a.appendOutput(b.String())
			}
			if plan.Stalled() {
				dialog.ShowInformation("Some pieces were not placed",
					fmt.Sprintf("%d piece(s) do not fit in a %d mm bar.", plan.UnplacedCount(), plan.StockLength),
					a.window)
			}
		})
	}()
}

func (a *App) appendOutput(text string) {
	a.output.SetText(a.output.Text + text)
	a.outputScroll.ScrollToBottom()
}

func (a *App) saveProject() {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		path := writer.URI().Path()
		writer.Close()
		if err := project.SaveProject(path, a.project); err != nil {
			dialog.ShowError(err, a.window)
		}
	}, a.window)
	d.SetFileName(a.project.Name + project.FileExtension)
	d.Show()
}

func (a *App) loadProject() {
	d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		path := reader.URI().Path()
		reader.Close()
		proj, err := project.LoadProject(path)
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		a.project = proj
		a.source = path
		a.history.Clear()
		a.fileLabel.SetText(filepath.Base(path))
		a.stockEntry.SetText(fmt.Sprint(proj.Settings.StockLength))
		a.kerfEntry.SetText(fmt.Sprint(proj.Settings.Kerf))
		a.output.SetText("")
		if proj.Result != nil {
			var b bytes.Buffer
			if err := export.WriteText(&b, *proj.Result, proj.Pieces, proj.Settings.MinOffcut); err == nil {
				a.output.SetText(b.String())
			}
		}
		a.refreshPieces()
	}, a.window)
	d.SetFilter(storage.NewExtensionFileFilter([]string{project.FileExtension}))
	d.Show()
}

// exportPlan saves the last plan in the given format.
func (a *App) exportPlan(kind, ext string) {
	if a.project.Result == nil || len(a.project.Result.Bars) == 0 {
		dialog.ShowInformation("No results", "Run the plan first before exporting.", a.window)
		return
	}
	plan := *a.project.Result
	pieces := a.project.Pieces

	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		path := writer.URI().Path()
		writer.Close()

		switch kind {
		case "PDF":
			err = export.ExportPDF(path, plan, pieces)
		case "Labels":
			err = export.ExportLabels(path, plan, pieces)
		case "DXF":
			err = export.ExportDXF(path, plan)
		}
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		dialog.ShowInformation("Export Complete", fmt.Sprintf("%s saved to %s", kind, path), a.window)
	}, a.window)
	name := a.project.Name
	if kind == "Labels" {
		name += "-labels"
	}
	d.SetFileName(name + ext)
	d.Show()
}
