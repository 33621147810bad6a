package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/piwi3910/BarCut/internal/model"
)

func newEstimateCmd(a *app) *cobra.Command {
	var (
		waste float64
		price float64
	)

	cmd := &cobra.Command{
		Use:   "estimate <file>",
		Short: "Estimate how many bars to buy from total length alone",
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

			if !cmd.Flags().Changed("price") && cmd.Flags().Changed("preset") {
				name, _ := cmd.Flags().GetString("preset")
				preset, err := a.findPreset(name)
				if err != nil {
					return err
				}
				price = preset.PricePerBar
			}

			est := model.CalculatePurchaseEstimate(pieces, settings.StockLength, settings.Kerf, waste, price)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Total length: %d mm (%.2f m, kerf %d mm per piece)\n", est.TotalPieceLength, est.TotalMeters, est.Kerf)
			fmt.Fprintf(out, "Stock length: %d mm\n", est.StockLength)
			fmt.Fprintf(out, "Bars needed: %.2f exact, at least %d\n", est.BarsNeededExact, est.BarsNeededMin)
			fmt.Fprintf(out, "Bars to buy with %.0f%% waste: %d\n", est.WastePercent, est.BarsWithWaste)
			if est.PricePerBar > 0 {
				fmt.Fprintf(out, "Estimated cost: %.2f (%.2f per bar)\n", est.EstimatedCost, est.PricePerBar)
			}
			return nil
		},
	}

	addSettingsFlags(cmd)
	cmd.Flags().Float64Var(&waste, "waste", 10, "extra bars to allow for, as a percentage")
	cmd.Flags().Float64Var(&price, "price", 0, "price of one bar")
	return cmd
}
