package cmd

import (
	"fmt"
	"os/signal"
	"strings"
	"syscall"

	"github.com/KaramelBytes/dataexplorer-cli/internal/analysis"
	"github.com/KaramelBytes/dataexplorer-cli/internal/render"
	"github.com/KaramelBytes/dataexplorer-cli/internal/server"
	"github.com/KaramelBytes/dataexplorer-cli/internal/utils"
	"github.com/spf13/cobra"
)

var (
	insKind   string
	insNoTips bool

	repFormat string
	repOutput string

	srvAddr string
)

var insightsCmd = &cobra.Command{
	Use:   "insights",
	Short: "Plain-language observations about the dataset",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		smp, err := currentSample()
		if err != nil {
			return err
		}
		an := analyzer()
		cols := an.Classify(smp.Rows)

		var lines []string
		if insKind == "" || strings.EqualFold(insKind, "all") {
			lines = an.AllInsights(smp.Rows, cols)
		} else {
			kind, err := analysis.ParseKind(insKind)
			if err != nil {
				return err
			}
			lines = analysis.SplitInsights(an.GenerateInsights(smp.Rows, cols, kind))
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Insights for %s:\n", smp.Name)
		if len(lines) == 0 {
			fmt.Fprintln(out, "  (none)")
		}
		for _, l := range lines {
			fmt.Fprintf(out, "  • %s\n", l)
		}
		if !insNoTips {
			fmt.Fprintln(out, "\nTips:")
			for _, tip := range analysis.Tips() {
				fmt.Fprintf(out, "  - %s\n", tip)
			}
		}
		return nil
	},
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Full exploratory report as markdown, JSON or YAML",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		smp, err := currentSample()
		if err != nil {
			return err
		}
		format := repFormat
		if !cmd.Flags().Changed("format") && cfg != nil && cfg.OutputFormat != "" {
			format = cfg.OutputFormat
		}
		rep := analyzer().Analyze(smp.Name, smp.Rows)
		if repOutput == "" {
			return render.WriteReport(cmd.OutOrStdout(), rep, format)
		}
		b, err := render.EncodeReport(rep, format)
		if err != nil {
			return err
		}
		if err := utils.SafeWriteFile(repOutput, b); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Wrote report to %s\n", repOutput)
		return nil
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the exploration API over HTTP",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		addr := srvAddr
		var opts []server.Option
		if cfg != nil {
			if addr == "" {
				addr = cfg.ServerAddr
			}
			if len(cfg.CORSOrigins) > 0 {
				opts = append(opts, server.WithOrigins(cfg.CORSOrigins...))
			}
		}
		if addr == "" {
			addr = ":8080"
		}
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return server.New(analyzer(), opts...).ListenAndServe(ctx, addr)
	},
}

func init() {
	rootCmd.AddCommand(insightsCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(serveCmd)

	insightsCmd.Flags().StringVarP(&insKind, "kind", "k", "", "insight kind: distribution|categorical|outliers|all")
	insightsCmd.Flags().BoolVar(&insNoTips, "no-tips", false, "omit the EDA tips")

	reportCmd.Flags().StringVarP(&repFormat, "format", "f", render.FormatMarkdown, "output format: markdown|json|yaml")
	reportCmd.Flags().StringVarP(&repOutput, "output", "o", "", "write the report to a file instead of stdout")

	serveCmd.Flags().StringVar(&srvAddr, "addr", "", "listen address (default from config, :8080)")
}
