package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	cfgpkg "github.com/yogiiiiiiiiii/TN-project-final/internal/config"
)

var (
	// Global flags
	cfgFile string
	debug   bool

	// Loaded configuration
	cfg *cfgpkg.Global
	// cfgErr keeps the load failure so commands that need config can report it
	cfgErr error
)

var rootCmd = &cobra.Command{
	Use:   "sampler",
	Short: "Stratified sampling and exam topic sheets from the command line",
	Long: `sampler draws a proportional stratified random sample from a CSV/TSV/XLSX dataset,
sized for a target confidence level and margin of error, and exports the sampled rows.
It also collects topic and question numbers into a topics.csv sheet.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute is the entry point called by main.main()
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(loadConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.sampler/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug output")
}

func loadConfig() {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		cfg, cfgErr = nil, err
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		return
	}
	cfg, cfgErr = c, nil
}

func requireConfig() (*cfgpkg.Global, error) {
	if cfg == nil {
		if cfgErr != nil {
			return nil, fmt.Errorf("config unavailable: %w", cfgErr)
		}
		loadConfig()
		if cfg == nil {
			return nil, fmt.Errorf("config unavailable: %w", cfgErr)
		}
	}
	return cfg, nil
}

func debugf(format string, args ...any) {
	if debug {
		fmt.Fprintf(os.Stderr, "· "+format+"\n", args...)
	}
}
