package main

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/piwi3910/BarCut/internal/model"
	"github.com/piwi3910/BarCut/internal/project"
)

func newPresetsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "presets",
		Short: "List the saved stock presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			lib, err := a.stockLibrary()
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tLENGTH (mm)\tMATERIAL\tPRICE\t")
			for _, s := range lib.Stocks {
				price := "-"
				if s.PricePerBar > 0 {
					price = fmt.Sprintf("%.2f", s.PricePerBar)
				}
				fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\t\n", s.ID, s.Name, s.Length, s.Material, price)
			}
			return tw.Flush()
		},
	}
	cmd.AddCommand(newPresetsAddCmd(a), newPresetsImportCmd(a))
	return cmd
}

func newPresetsAddCmd(a *app) *cobra.Command {
	var (
		material string
		price    float64
	)
	cmd := &cobra.Command{
		Use:   "add <name> <length>",
		Short: "Add a stock preset",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			length, err := strconv.Atoi(args[1])
			if err != nil || length <= 0 {
				return eris.Errorf("length must be a positive integer, got %q", args[1])
			}
			lib, err := a.stockLibrary()
			if err != nil {
				return err
			}
			preset := model.NewStockPresetWithPrice(args[0], length, material, price)
			lib.Stocks = append(lib.Stocks, preset)
			if err := project.SaveStockLibrary(project.StockLibraryPath(a.cfg.ConfigDir), lib); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s (%s, %d mm)\n", preset.ID, preset.Name, preset.Length)
			return nil
		},
	}
	cmd.Flags().StringVar(&material, "material", "", "material of the bar")
	cmd.Flags().Float64Var(&price, "price", 0, "price of one bar")
	return cmd
}

func newPresetsImportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Merge presets from another stock library file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := a.stockLibrary()
			if err != nil {
				return err
			}
			before := len(lib.Stocks)
			merged, err := project.ImportStockLibrary(args[0], lib)
			if err != nil {
				return err
			}
			if err := project.SaveStockLibrary(project.StockLibraryPath(a.cfg.ConfigDir), merged); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d preset(s)\n", len(merged.Stocks)-before)
			return nil
		},
	}
}
