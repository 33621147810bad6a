package main

import (
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/piwi3910/BarCut/internal/engine"
	"github.com/piwi3910/BarCut/internal/export"
	"github.com/piwi3910/BarCut/internal/model"
	"github.com/piwi3910/BarCut/internal/project"
)

type planOptions struct {
	json   bool
	pdf    string
	labels string
	dxf    string
	save   string
}

func newPlanCmd(a *app) *cobra.Command {
	var opts planOptions

	cmd := &cobra.Command{
		Use:   "plan <file>",
		Short: "Plan the cuts for a CSV, Excel, DXF or project file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runPlan(cmd, args[0], opts)
		},
	}

	addSettingsFlags(cmd)
	cmd.Flags().Int("min-offcut", 0, "shortest remnant reported as a reusable offcut, in mm")
	cmd.Flags().BoolVar(&opts.json, "json", false, "write the finished plan as JSON instead of text")
	cmd.Flags().StringVar(&opts.pdf, "pdf", "", "write a PDF report to this path")
	cmd.Flags().StringVar(&opts.labels, "labels", "", "write QR piece labels to this PDF path")
	cmd.Flags().StringVar(&opts.dxf, "dxf", "", "write a DXF cutting diagram to this path")
	cmd.Flags().StringVar(&opts.save, "save", "", "save the pieces, settings and plan as a project file")
	return cmd
}

func (a *app) runPlan(cmd *cobra.Command, path string, opts planOptions) error {
	var (
		settings model.PlanSettings
		pieces   []model.Piece
		err      error
	)
	if strings.EqualFold(filepath.Ext(path), project.FileExtension) {
		var proj model.Project
		proj, err = project.LoadProject(path)
		if err != nil {
			return err
		}
		pieces = proj.Pieces
		settings, err = a.applyFlags(cmd, proj.Settings)
	} else {
		settings, err = a.settings(cmd)
		if err == nil {
			pieces, err = a.loadPieces(path)
		}
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	var writeErr error
	planOpts := []engine.Option{engine.WithLogger(a.base)}
	if !opts.json {
		planOpts = append(planOpts, engine.WithBarHandler(func(bar model.BarResult) {
			if writeErr == nil {
				writeErr = export.WriteBar(out, bar)
			}
		}))
	}

	plan, err := engine.New(settings, planOpts...).Plan(pieces)
	if err != nil {
		return err
	}
	if writeErr != nil {
		return writeErr
	}

	if opts.json {
		err = export.WriteJSON(out, plan, pieces, settings.MinOffcut)
	} else {
		err = export.WriteSummary(out, plan, pieces, settings.MinOffcut)
	}
	if err != nil {
		return err
	}

	if err := a.writeArtifacts(plan, pieces, settings, path, opts); err != nil {
		return err
	}
	a.rememberFile(path)

	a.logger.Info().
		Int("bars", plan.TotalBars).
		Str("status", plan.Status.String()).
		Msg("plan finished")

	if plan.Stalled() {
		return errStalled
	}
	return nil
}

func (a *app) writeArtifacts(plan model.CuttingPlan, pieces []model.Piece, settings model.PlanSettings, source string, opts planOptions) error {
	if opts.pdf != "" {
		if err := export.ExportPDF(opts.pdf, plan, pieces); err != nil {
			return err
		}
		a.logger.Info().Str("path", opts.pdf).Msg("pdf report written")
	}
	if opts.labels != "" {
		if err := export.ExportLabels(opts.labels, plan, pieces); err != nil {
			return err
		}
		a.logger.Info().Str("path", opts.labels).Msg("labels written")
	}
	if opts.dxf != "" {
		if err := export.ExportDXF(opts.dxf, plan); err != nil {
			return err
		}
		a.logger.Info().Str("path", opts.dxf).Msg("dxf diagram written")
	}
	if opts.save != "" {
		save := opts.save
		if filepath.Ext(save) == "" {
			save += project.FileExtension
		}
		proj := model.NewProject()
		proj.Name = strings.TrimSuffix(filepath.Base(source), filepath.Ext(source))
		proj.Pieces = pieces
		proj.Settings = settings
		proj.Result = &plan
		if err := project.SaveProject(save, proj); err != nil {
			return eris.Wrap(err, "save project")
		}
		a.logger.Info().Str("path", save).Msg("project saved")
	}
	return nil
}
