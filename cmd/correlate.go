package cmd

import (
	"fmt"

	"github.com/KaramelBytes/dataexplorer-cli/internal/analysis"
	"github.com/KaramelBytes/dataexplorer-cli/internal/render"
	"github.com/spf13/cobra"
)

var (
	corrTop int

	outAll bool
)

var correlateCmd = &cobra.Command{
	Use:   "correlate [column-a column-b]",
	Short: "Pearson correlation of a column pair, or the full matrix",
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) != 0 && len(args) != 2 {
			return fmt.Errorf("expected zero or two columns, got %d", len(args))
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		smp, err := currentSample()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if len(args) == 2 {
			for _, c := range args {
				if err := requireColumn(smp.Rows, c); err != nil {
					return err
				}
			}
			r := analysis.Correlate(smp.Rows, args[0], args[1])
			fmt.Fprintf(out, "%s ~ %s: r=%.4f (%s)\n", args[0], args[1], r, analysis.StrengthOf(r))
			return nil
		}

		an := analyzer()
		num := analysis.NumericalColumns(an.Classify(smp.Rows))
		if len(num) < 2 {
			fmt.Fprintf(cmd.ErrOrStderr(), "⚠ Warning: %s has fewer than two numerical columns\n", smp.Name)
			return nil
		}
		debugf("correlation matrix over %d columns with %d workers", len(num), an.Options().Workers)
		m := an.CorrelationMatrix(smp.Rows, num)
		fmt.Fprintln(out, render.MatrixTable(m))
		fmt.Fprintln(out, render.LegendTable())
		for _, p := range m.TopPairs(corrTop) {
			fmt.Fprintf(out, "%s ~ %s: %.2f (%s)\n", p.A, p.B, p.R, analysis.StrengthOf(p.R))
		}
		return nil
	},
}

var outliersCmd = &cobra.Command{
	Use:   "outliers [column]",
	Short: "Rows outside the IQR fence of numerical columns",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		smp, err := currentSample()
		if err != nil {
			return err
		}
		an := analyzer()
		var targets []string
		if len(args) == 1 {
			if err := requireColumn(smp.Rows, args[0]); err != nil {
				return err
			}
			targets = args
		} else {
			targets = analysis.NumericalColumns(an.Classify(smp.Rows))
		}
		out := cmd.OutOrStdout()
		for _, col := range targets {
			f, ok := an.OutlierFence(smp.Rows, col)
			if !ok {
				fmt.Fprintf(cmd.ErrOrStderr(), "⚠ Warning: %s has no numeric values\n", col)
				continue
			}
			found := an.DetectOutliers(smp.Rows, col)
			if len(found) == 0 && !outAll {
				fmt.Fprintf(out, "✓ %s: no outliers\n", col)
				continue
			}
			fmt.Fprintln(out, render.OutliersTable(col, f, found))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(correlateCmd)
	rootCmd.AddCommand(outliersCmd)

	correlateCmd.Flags().IntVar(&corrTop, "top", 5, "number of strongest pairs to list (0 = all)")
	outliersCmd.Flags().BoolVar(&outAll, "all", false, "print a table even for columns without outliers")
}
