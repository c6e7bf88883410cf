package cmd

import (
	"fmt"

	"github.com/KaramelBytes/dataexplorer-cli/internal/analysis"
	"github.com/KaramelBytes/dataexplorer-cli/internal/datasets"
	"github.com/KaramelBytes/dataexplorer-cli/internal/render"
	"github.com/spf13/cobra"
)

var distBins int

var datasetsCmd = &cobra.Command{
	Use:   "datasets",
	Short: "List the bundled sample datasets",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), render.SamplesTable(datasets.All()))
		return nil
	},
}

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show the dataset overview and per-column statistics",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		smp, err := currentSample()
		if err != nil {
			return err
		}
		cols := analyzer().Classify(smp.Rows)
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, render.OverviewTable(analysis.Summarize(smp.Rows, cols)))
		fmt.Fprintln(out, render.ColumnsTable(cols))
		for _, c := range cols {
			if !c.IsNumerical() {
				continue
			}
			if n := analysis.DroppedValues(smp.Rows, c.Name); n > 0 {
				fmt.Fprintf(cmd.ErrOrStderr(), "⚠ Warning: %s: %d non-numeric values ignored\n", c.Name, n)
			}
		}
		return nil
	},
}

var distributionCmd = &cobra.Command{
	Use:   "distribution <column>",
	Short: "Histogram of a numerical column",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		smp, err := currentSample()
		if err != nil {
			return err
		}
		if err := requireColumn(smp.Rows, args[0]); err != nil {
			return err
		}
		if distBins < 0 || distBins > analysis.MaxBins {
			return fmt.Errorf("invalid --bins: %d (must be at most %d)", distBins, analysis.MaxBins)
		}
		d := analyzer().Distribution(smp.Rows, args[0], distBins)
		fmt.Fprintln(cmd.OutOrStdout(), render.ChartTable("Distribution of "+args[0], d))
		return nil
	},
}

var categoriesCmd = &cobra.Command{
	Use:   "categories <column>",
	Short: "Most frequent values of a categorical column",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		smp, err := currentSample()
		if err != nil {
			return err
		}
		if err := requireColumn(smp.Rows, args[0]); err != nil {
			return err
		}
		d := analyzer().CountCategories(smp.Rows, args[0])
		fmt.Fprintln(cmd.OutOrStdout(), render.ChartTable("Categories of "+args[0], d))
		return nil
	},
}

// requireColumn rejects names outside the first-row schema of a non-empty dataset.
func requireColumn(ds analysis.Dataset, name string) error {
	if len(ds) == 0 || ds[0].Has(name) {
		return nil
	}
	return fmt.Errorf("unknown column: %s (available: %v)", name, ds.Columns())
}

func init() {
	rootCmd.AddCommand(datasetsCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(distributionCmd)
	rootCmd.AddCommand(categoriesCmd)

	distributionCmd.Flags().IntVar(&distBins, "bins", 0, "number of histogram bins (default from config)")
}
