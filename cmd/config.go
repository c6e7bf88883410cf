package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/KaramelBytes/dataexplorer-cli/internal/analysis"
	cfgpkg "github.com/KaramelBytes/dataexplorer-cli/internal/config"
	"github.com/KaramelBytes/dataexplorer-cli/internal/datasets"
	"github.com/KaramelBytes/dataexplorer-cli/internal/render"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set DataExplorer configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if cfg == nil {
			fmt.Fprintln(out, "No config loaded")
			return nil
		}
		opt := cfg.AnalysisOptions()
		fmt.Fprintf(out, "default_dataset: %s\n", cfg.DefaultDataset)
		fmt.Fprintf(out, "output_format: %s\n", cfg.OutputFormat)
		fmt.Fprintf(out, "bin_count: %d\n", opt.Bins)
		fmt.Fprintf(out, "top_categories: %d\n", opt.TopCategories)
		fmt.Fprintf(out, "numeric_threshold: %.3f\n", opt.NumericThreshold)
		fmt.Fprintf(out, "outlier_fence: %.3f\n", opt.OutlierFence)
		fmt.Fprintf(out, "correlation_workers: %d\n", cfg.CorrelationWorkers)
		fmt.Fprintf(out, "server_addr: %s\n", cfg.ServerAddr)
		if len(cfg.CORSOrigins) > 0 {
			fmt.Fprintf(out, "cors_origins: %s\n", strings.Join(cfg.CORSOrigins, ","))
		}
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value and save to disk",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]
		if cfg == nil {
			c, err := cfgpkg.Load(cfgFile)
			if err != nil {
				return err
			}
			cfg = c
		}
		switch key {
		case "default_dataset":
			s, err := datasets.Get(val)
			if err != nil {
				return err
			}
			cfg.DefaultDataset = s.Name
		case "output_format":
			switch strings.ToLower(val) {
			case render.FormatMarkdown, render.FormatJSON, render.FormatYAML:
				cfg.OutputFormat = strings.ToLower(val)
			default:
				return fmt.Errorf("invalid output_format: %s (use markdown|json|yaml)", val)
			}
		case "bin_count":
			i, err := strconv.Atoi(val)
			if err != nil || i <= 0 || i > analysis.MaxBins {
				return fmt.Errorf("invalid int for bin_count: %v (must be 1..%d)", val, analysis.MaxBins)
			}
			cfg.BinCount = i
		case "top_categories":
			i, err := strconv.Atoi(val)
			if err != nil || i <= 0 {
				return fmt.Errorf("invalid int for top_categories: %v", val)
			}
			cfg.TopCategories = i
		case "numeric_threshold":
			f, err := strconv.ParseFloat(val, 64)
			if err != nil || f <= 0 || f > 1 {
				return fmt.Errorf("invalid float for numeric_threshold: %v (must be in (0,1])", val)
			}
			cfg.NumericThreshold = f
		case "outlier_fence":
			f, err := strconv.ParseFloat(val, 64)
			if err != nil || f <= 0 {
				return fmt.Errorf("invalid float for outlier_fence: %v", val)
			}
			cfg.OutlierFence = f
		case "correlation_workers":
			i, err := strconv.Atoi(val)
			if err != nil || i <= 0 {
				return fmt.Errorf("invalid int for correlation_workers: %v", val)
			}
			cfg.CorrelationWorkers = i
		case "server_addr":
			cfg.ServerAddr = val
		case "cors_origins":
			var origins []string
			for _, o := range strings.Split(val, ",") {
				if o = strings.TrimSpace(o); o != "" {
					origins = append(origins, o)
				}
			}
			cfg.CORSOrigins = origins
		default:
			return fmt.Errorf("unknown key: %s", key)
		}
		if err := cfgpkg.Save(cfg, cfgFile); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Saved config")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}
