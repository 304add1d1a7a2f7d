package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	cfgpkg "github.com/yogiiiiiiiiii/TN-project-final/internal/config"
	"github.com/yogiiiiiiiiii/TN-project-final/internal/sampling"
	"github.com/yogiiiiiiiiii/TN-project-final/internal/tabular"
)

// inputFlags are shared by every command that reads a dataset.
type inputFlags struct {
	delimiter string
	decimal   string
	sheet     string
}

func (f *inputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.delimiter, "delimiter", "", "CSV delimiter: ',' | ';' | 'tab' (default by extension)")
	cmd.Flags().StringVar(&f.decimal, "decimal", "", "decimal separator for the stratify column: '.'|'comma'")
	cmd.Flags().StringVar(&f.sheet, "sheet", "", "XLSX: sheet name to read (default first sheet)")
}

func (f *inputFlags) options() (tabular.Options, error) {
	var opt tabular.Options
	switch f.delimiter {
	case "":
	case ",":
		opt.Delimiter = ','
	case "\t", "tab":
		opt.Delimiter = '\t'
	case ";":
		opt.Delimiter = ';'
	default:
		return opt, fmt.Errorf("unsupported --delimiter: %s", f.delimiter)
	}
	opt.Sheet = f.sheet
	return opt, nil
}

func parseDecimal(s string) (rune, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", ".", "dot":
		return '.', nil
	case ",", "comma":
		return ',', nil
	default:
		return 0, fmt.Errorf("unsupported decimal separator: %s (use '.'|'comma')", s)
	}
}

// paramFlags override the configured sampling parameters when set.
type paramFlags struct {
	confidence float64
	margin     float64
	bins       int
	column     string
	mode       string
	seed       uint64
}

func (f *paramFlags) register(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&f.confidence, "confidence", 95, "confidence level in percent (e.g. 95)")
	cmd.Flags().Float64Var(&f.margin, "margin", 5, "margin of error in percent (e.g. 5)")
	cmd.Flags().IntVar(&f.bins, "bins", sampling.DefaultNumBins, "number of equal-width strata")
	cmd.Flags().StringVar(&f.column, "column", sampling.DefaultColumn, "stratify column (case-insensitive)")
	cmd.Flags().StringVar(&f.mode, "mode", string(sampling.Compat), "allocation mode: compat|exact")
	cmd.Flags().Uint64Var(&f.seed, "seed", 0, "random seed (0 = time-based)")
}

// params merges config values with flags the user actually changed.
func (f *paramFlags) params(cmd *cobra.Command, c *cfgpkg.Global, decimalFlag string) (sampling.Params, error) {
	conf, margin := c.Proportions()
	p := sampling.Params{
		Confidence: conf,
		Margin:     margin,
		NumBins:    c.NumBins,
		Column:     c.StratifyColumn,
	}
	mode := c.AllocationMode
	seed := c.Seed
	fl := cmd.Flags()
	if fl.Changed("confidence") {
		p.Confidence = f.confidence / 100
	}
	if fl.Changed("margin") {
		p.Margin = f.margin / 100
	}
	if fl.Changed("bins") {
		p.NumBins = f.bins
	}
	if fl.Changed("column") {
		p.Column = f.column
	}
	if fl.Changed("mode") {
		mode = f.mode
	}
	if fl.Changed("seed") {
		seed = f.seed
	}
	m, err := sampling.ParseAllocationMode(mode)
	if err != nil {
		return p, err
	}
	p.Mode = m
	dec := c.DecimalSeparator
	if decimalFlag != "" {
		dec = decimalFlag
	}
	if p.DecimalSeparator, err = parseDecimal(dec); err != nil {
		return p, err
	}
	p.Rand = sampling.NewSource(seed)
	debugf("params: confidence=%.4g margin=%.4g bins=%d column=%s mode=%s seed=%d",
		p.Confidence, p.Margin, p.NumBins, p.Column, p.Mode, seed)
	return p, nil
}
