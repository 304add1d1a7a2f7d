package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	cfgpkg "github.com/yogiiiiiiiiii/TN-project-final/internal/config"
	"github.com/yogiiiiiiiiii/TN-project-final/internal/sampling"
	"github.com/yogiiiiiiiiii/TN-project-final/internal/stats"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set sampler configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		if cfg == nil {
			fmt.Fprintln(w, "No config loaded")
			return nil
		}
		fmt.Fprintf(w, "confidence_level: %g\n", cfg.ConfidenceLevel)
		fmt.Fprintf(w, "margin_of_error: %g\n", cfg.MarginOfError)
		fmt.Fprintf(w, "num_bins: %d\n", cfg.NumBins)
		fmt.Fprintf(w, "stratify_column: %s\n", cfg.StratifyColumn)
		fmt.Fprintf(w, "allocation_mode: %s\n", cfg.AllocationMode)
		if len(cfg.ExportColumns) > 0 {
			fmt.Fprintf(w, "export_columns: %s\n", strings.Join(cfg.ExportColumns, ","))
		}
		fmt.Fprintf(w, "decimal_separator: %s\n", cfg.DecimalSeparator)
		if cfg.Seed != 0 {
			fmt.Fprintf(w, "seed: %d\n", cfg.Seed)
		}
		fmt.Fprintf(w, "output_dir: %s\n", cfg.OutputDir)
		fmt.Fprintf(w, "sample_file: %s\n", cfg.SampleFile)
		fmt.Fprintf(w, "topics_file: %s\n", cfg.TopicsFile)
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
		case "confidence_level":
			f, err := strconv.ParseFloat(val, 64)
			if err != nil {
				return fmt.Errorf("invalid float for confidence_level: %w", err)
			}
			if err := stats.ValidateConfidence(f / 100); err != nil {
				return err
			}
			cfg.ConfidenceLevel = f
		case "margin_of_error":
			f, err := strconv.ParseFloat(val, 64)
			if err != nil {
				return fmt.Errorf("invalid float for margin_of_error: %w", err)
			}
			if err := stats.ValidateMargin(f / 100); err != nil {
				return err
			}
			cfg.MarginOfError = f
		case "num_bins":
			i, err := strconv.Atoi(val)
			if err != nil || i < 1 {
				return fmt.Errorf("invalid int for num_bins: %v", val)
			}
			cfg.NumBins = i
		case "stratify_column":
			if strings.TrimSpace(val) == "" {
				return fmt.Errorf("stratify_column cannot be empty")
			}
			cfg.StratifyColumn = val
		case "allocation_mode":
			m, err := sampling.ParseAllocationMode(val)
			if err != nil {
				return err
			}
			cfg.AllocationMode = string(m)
		case "export_columns":
			cfg.ExportColumns = nil
			for _, c := range strings.Split(val, ",") {
				if c = strings.TrimSpace(c); c != "" {
					cfg.ExportColumns = append(cfg.ExportColumns, c)
				}
			}
		case "decimal_separator":
			if _, err := parseDecimal(val); err != nil {
				return err
			}
			cfg.DecimalSeparator = val
		case "seed":
			u, err := strconv.ParseUint(val, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid uint for seed: %w", err)
			}
			cfg.Seed = u
		case "output_dir":
			cfg.OutputDir = val
		case "sample_file":
			cfg.SampleFile = val
		case "topics_file":
			cfg.TopicsFile = val
		default:
			return fmt.Errorf("unknown key: %s", key)
		}
		if err := cfgpkg.Save(cfg, cfgFile); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "✓ Saved config")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}
