package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/KaramelBytes/dataexplorer-cli/internal/analysis"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Global configuration structure.
type Global struct {
	DefaultDataset string `mapstructure:"default_dataset" yaml:"default_dataset"`
	OutputFormat   string `mapstructure:"output_format" yaml:"output_format"`

	// Engine tuning; zero keeps the engine default.
	BinCount           int     `mapstructure:"bin_count" yaml:"bin_count"`
	TopCategories      int     `mapstructure:"top_categories" yaml:"top_categories"`
	NumericThreshold   float64 `mapstructure:"numeric_threshold" yaml:"numeric_threshold"`
	OutlierFence       float64 `mapstructure:"outlier_fence" yaml:"outlier_fence"`
	CorrelationWorkers int     `mapstructure:"correlation_workers" yaml:"correlation_workers"`

	// HTTP server
	ServerAddr  string   `mapstructure:"server_addr" yaml:"server_addr"`
	CORSOrigins []string `mapstructure:"cors_origins" yaml:"cors_origins"`
}

// AnalysisOptions maps the engine settings onto analysis.Options.
func (c *Global) AnalysisOptions() analysis.Options {
	if c == nil {
		return analysis.DefaultOptions()
	}
	return analysis.Options{
		Bins:             c.BinCount,
		TopCategories:    c.TopCategories,
		NumericThreshold: c.NumericThreshold,
		OutlierFence:     c.OutlierFence,
		Workers:          c.CorrelationWorkers,
	}
}

func defaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".dataexplorer", "config.yaml"), nil
}

// Save writes the given configuration to the cfgFile path. If cfgFile is empty,
// it writes to ~/.dataexplorer/config.yaml, creating the directory if necessary.
func Save(c *Global, cfgFile string) error {
	path := cfgFile
	if path == "" {
		p, err := defaultPath()
		if err != nil {
			return err
		}
		path = p
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from .env, env, file and defaults.
// Precedence: flags (applied by the caller) > env > config file > defaults.
func Load(cfgFile string) (*Global, error) {
	// .env is optional; real environment variables win over it.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix("DATAEXPLORER")
	v.AutomaticEnv()

	def := analysis.DefaultOptions()
	v.SetDefault("default_dataset", "iris")
	v.SetDefault("output_format", "markdown")
	v.SetDefault("bin_count", def.Bins)
	v.SetDefault("top_categories", def.TopCategories)
	v.SetDefault("numeric_threshold", def.NumericThreshold)
	v.SetDefault("outlier_fence", def.OutlierFence)
	v.SetDefault("correlation_workers", 4)
	v.SetDefault("server_addr", ":8080")
	v.SetDefault("cors_origins", []string{"http://localhost:3000", "http://127.0.0.1:3000"})

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		v.AddConfigPath(filepath.Join(home, ".dataexplorer"))
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &c, nil
}
