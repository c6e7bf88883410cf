package cmd

import (
	"fmt"
	"os"

	"github.com/KaramelBytes/dataexplorer-cli/internal/analysis"
	cfgpkg "github.com/KaramelBytes/dataexplorer-cli/internal/config"
	"github.com/KaramelBytes/dataexplorer-cli/internal/datasets"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	cfgFile     string
	debug       bool
	datasetName string
	// Engine overrides (take precedence over config if set)
	flagWorkers int

	// Loaded configuration
	cfg *cfgpkg.Global
)

var rootCmd = &cobra.Command{
	Use:   "dataexplorer",
	Short: "DataExplorer CLI: exploratory data analysis for tabular datasets",
	Long: `DataExplorer profiles tabular datasets: column types and summary statistics,
histograms, category counts, Pearson correlations, IQR outliers and
plain-language insights. Results print as tables or reports, or are served
over HTTP for a dashboard frontend.`,
	SilenceUsage: true,
}

// Execute is the entry point called by main.main()
func Execute() {
	cobra.OnInitialize(loadConfig)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.dataexplorer/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug output")
	rootCmd.PersistentFlags().StringVarP(&datasetName, "dataset", "d", "", "sample dataset to explore (default from config)")
	rootCmd.PersistentFlags().IntVar(&flagWorkers, "workers", 0, "parallel workers for correlation matrices (overrides config)")
}

func loadConfig() {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: commands fall back to engine defaults
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		return
	}
	cfg = c
	if rootCmd.PersistentFlags().Changed("workers") && flagWorkers > 0 {
		cfg.CorrelationWorkers = flagWorkers
	}
	debugf("config loaded: dataset=%s bins=%d workers=%d", cfg.DefaultDataset, cfg.BinCount, cfg.CorrelationWorkers)
}

func debugf(format string, args ...any) {
	if debug {
		fmt.Fprintf(os.Stderr, "[debug] "+format+"\n", args...)
	}
}

// analyzer builds an engine from the effective configuration.
func analyzer() *analysis.Analyzer {
	return analysis.New(cfg.AnalysisOptions())
}

// currentSample resolves --dataset, then config, then "iris".
func currentSample() (datasets.Sample, error) {
	name := datasetName
	if name == "" && cfg != nil {
		name = cfg.DefaultDataset
	}
	if name == "" {
		name = "iris"
	}
	debugf("using dataset %q", name)
	return datasets.Get(name)
}
