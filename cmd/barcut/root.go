package main

import (
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/piwi3910/BarCut/internal/config"
	"github.com/piwi3910/BarCut/internal/importer"
	"github.com/piwi3910/BarCut/internal/logging"
	"github.com/piwi3910/BarCut/internal/model"
	"github.com/piwi3910/BarCut/internal/project"
)

// errStalled is returned by plan when some demand could not be placed. The
// report has already been written when it is returned.
var errStalled = eris.New("plan stalled with unplaced pieces")

// app is the state shared by all subcommands, filled in by the root
// command's PersistentPreRunE.
type app struct {
	cfg    config.Config
	prefs  model.AppConfig
	base   zerolog.Logger // Untagged, handed to the planner
	logger zerolog.Logger

	logLevel  string
	logFormat string
}

func newRootCmd() *cobra.Command {
	a := &app{base: zerolog.Nop(), logger: zerolog.Nop()}

	root := &cobra.Command{
		Use:           "barcut",
		Short:         "Plan how to cut piece lengths from stock bars",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level (overrides BARCUT_LOG_LEVEL)")
	root.PersistentFlags().StringVar(&a.logFormat, "log-format", "", "log format, json or pretty (overrides BARCUT_LOG_FORMAT)")

	root.AddCommand(
		newPlanCmd(a),
		newCompareCmd(a),
		newEstimateCmd(a),
		newPresetsCmd(a),
		newBackupCmd(a),
	)
	return root
}

func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
	}
	if a.logFormat != "" {
		cfg.LogFormat = a.logFormat
	}
	a.cfg = cfg
	a.base = logging.NewWithWriter(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)
	a.logger = logging.Component(a.base, "cli")

	prefs, err := project.LoadAppConfig(project.ConfigPath(cfg.ConfigDir))
	if err != nil {
		return err
	}
	a.prefs = prefs
	return nil
}

// settings resolves plan settings from defaults, saved preferences, the
// environment and finally any flags set on cmd.
func (a *app) settings(cmd *cobra.Command) (model.PlanSettings, error) {
	s := model.DefaultPlanSettings()
	a.prefs.ApplyToSettings(&s)
	a.cfg.ApplyToSettings(&s)
	return a.applyFlags(cmd, s)
}

func (a *app) applyFlags(cmd *cobra.Command, s model.PlanSettings) (model.PlanSettings, error) {
	flags := cmd.Flags()
	if flags.Lookup("preset") != nil && flags.Changed("preset") {
		name, _ := flags.GetString("preset")
		preset, err := a.findPreset(name)
		if err != nil {
			return s, err
		}
		preset.ApplyToSettings(&s)
	}
	if flags.Changed("stock") {
		s.StockLength, _ = flags.GetInt("stock")
	}
	if flags.Changed("kerf") {
		s.Kerf, _ = flags.GetInt("kerf")
	}
	if flags.Lookup("min-offcut") != nil && flags.Changed("min-offcut") {
		s.MinOffcut, _ = flags.GetInt("min-offcut")
	}
	return s, nil
}

func (a *app) stockLibrary() (model.StockLibrary, error) {
	return project.LoadStockLibrary(project.StockLibraryPath(a.cfg.ConfigDir))
}

func (a *app) findPreset(name string) (model.StockPreset, error) {
	lib, err := a.stockLibrary()
	if err != nil {
		return model.StockPreset{}, err
	}
	if p := lib.FindByName(name); p != nil {
		return *p, nil
	}
	if p := lib.FindByID(name); p != nil {
		return *p, nil
	}
	return model.StockPreset{}, eris.Errorf("no stock preset named %q", name)
}

// loadPieces imports a piece list. Row warnings are logged; any row error
// fails the load.
func (a *app) loadPieces(path string) ([]model.Piece, error) {
	res := importer.ImportFile(path)
	for _, w := range res.Warnings {
		a.logger.Warn().Str("file", path).Msg(w)
	}
	if err := res.Err(); err != nil {
		return nil, eris.Wrapf(err, "import %s", path)
	}
	if len(res.Pieces) == 0 {
		return nil, eris.Errorf("no pieces found in %s", path)
	}
	a.logger.Debug().Str("file", path).Int("pieces", len(res.Pieces)).Msg("piece list loaded")
	return res.Pieces, nil
}

// rememberFile records path in the recent file list of the saved preferences.
func (a *app) rememberFile(path string) {
	a.prefs.AddRecentFile(path)
	if err := project.SaveAppConfig(project.ConfigPath(a.cfg.ConfigDir), a.prefs); err != nil {
		a.logger.Warn().Err(err).Msg("could not save preferences")
	}
}

func addSettingsFlags(cmd *cobra.Command) {
	cmd.Flags().Int("stock", 0, "stock bar length in mm")
	cmd.Flags().Int("kerf", 0, "saw kerf in mm")
	cmd.Flags().String("preset", "", "use the length of a saved stock preset")
}
