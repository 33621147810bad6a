package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/piwi3910/BarCut/internal/project"
)

func newBackupCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Export or restore preferences and stock presets",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "export <file>",
		Short: "Write preferences and stock presets to one file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := a.stockLibrary()
			if err != nil {
				return err
			}
			if err := project.ExportAllData(args[0], a.prefs, lib); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Backup written to %s\n", args[0])
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "restore <file>",
		Short: "Replace preferences and stock presets from a backup",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := project.ImportAllData(args[0])
			if err != nil {
				return err
			}
			if err := project.SaveAppConfig(project.ConfigPath(a.cfg.ConfigDir), data.Config); err != nil {
				return err
			}
			if err := project.SaveStockLibrary(project.StockLibraryPath(a.cfg.ConfigDir), data.Stock); err != nil {
				return err
			}
			a.prefs = data.Config
			fmt.Fprintf(cmd.OutOrStdout(), "Restored backup version %s (%d presets)\n", data.Version, len(data.Stock.Stocks))
			return nil
		},
	})
	return cmd
}
