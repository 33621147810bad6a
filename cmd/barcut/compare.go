package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/piwi3910/BarCut/internal/engine"
)

func newCompareCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare <file>",
		Short: "Compare the plan across the saved stock lengths and without kerf",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := a.settings(cmd)
			if err != nil {
				return err
			}
			pieces, err := a.loadPieces(args[0])
			if err != nil {
				return err
			}
			lib, err := a.stockLibrary()
			if err != nil {
				return err
			}

			results, err := engine.CompareScenarios(engine.BuildScenarios(settings, lib), pieces)
			if err != nil {
				return err
			}
			best := engine.Best(results)

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "SCENARIO\tBARS\tSTOCK (mm)\tWASTE (mm)\tWASTE %\tUNPLACED\t")
			for i, r := range results {
				marker := ""
				if i == best {
					marker = "*"
				}
				fmt.Fprintf(tw, "%s%s\t%d\t%d\t%d\t%.1f\t%d\t\n",
					marker, r.Scenario.Name, r.BarsUsed, r.StockUsed, r.TotalWaste, r.WastePercent, r.UnplacedCount)
			}
			return tw.Flush()
		},
	}
	addSettingsFlags(cmd)
	return cmd
}
