package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Global configuration structure. Confidence and margin are percentages
// as a user would type them (95, 5); Proportions converts them.
type Global struct {
	ConfidenceLevel  float64  `mapstructure:"confidence_level" yaml:"confidence_level"`
	MarginOfError    float64  `mapstructure:"margin_of_error" yaml:"margin_of_error"`
	NumBins          int      `mapstructure:"num_bins" yaml:"num_bins"`
	StratifyColumn   string   `mapstructure:"stratify_column" yaml:"stratify_column"`
	AllocationMode   string   `mapstructure:"allocation_mode" yaml:"allocation_mode"`
	ExportColumns    []string `mapstructure:"export_columns" yaml:"export_columns"`
	DecimalSeparator string   `mapstructure:"decimal_separator" yaml:"decimal_separator"`
	Seed             uint64   `mapstructure:"seed" yaml:"seed"`

	// Output locations
	OutputDir  string `mapstructure:"output_dir" yaml:"output_dir"`
	SampleFile string `mapstructure:"sample_file" yaml:"sample_file"`
	TopicsFile string `mapstructure:"topics_file" yaml:"topics_file"`
}

// Proportions returns confidence and margin as fractions of one.
func (c *Global) Proportions() (confidence, margin float64) {
	return c.ConfidenceLevel / 100, c.MarginOfError / 100
}

func defaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".sampler"), nil
}

// Save writes the given configuration to the cfgFile path. If cfgFile is empty,
// it writes to ~/.sampler/config.yaml, creating the directory if necessary.
func Save(c *Global, cfgFile string) error {
	var path string
	if cfgFile != "" {
		path = cfgFile
	} else {
		dir, err := defaultDir()
		if err != nil {
			return err
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
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

// Load loads configuration from file, env, and defaults.
// Precedence: env > config file > defaults. Command flags are applied by the caller.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("SAMPLER")
	v.AutomaticEnv()

	v.SetDefault("confidence_level", 95.0)
	v.SetDefault("margin_of_error", 5.0)
	v.SetDefault("num_bins", 5)
	v.SetDefault("stratify_column", "correct")
	v.SetDefault("allocation_mode", "compat")
	v.SetDefault("export_columns", []string{})
	v.SetDefault("decimal_separator", ".")
	v.SetDefault("seed", 0)
	v.SetDefault("output_dir", ".")
	v.SetDefault("sample_file", "sampled_data.csv")
	v.SetDefault("topics_file", "topics.csv")

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		dir, err := defaultDir()
		if err != nil {
			return nil, err
		}
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	// the default file is optional; an explicit --config must be readable
	if err := v.ReadInConfig(); err != nil && cfgFile != "" {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &c, nil
}
