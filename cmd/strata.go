package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/yogiiiiiiiiii/TN-project-final/internal/sampling"
	"github.com/yogiiiiiiiiii/TN-project-final/internal/tabular"
)

var (
	strInput  inputFlags
	strBins   int
	strColumn string
)

var strataCmd = &cobra.Command{
	Use:   "strata <file>",
	Short: "Show the equal-width strata of a column without sampling",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := requireConfig()
		if err != nil {
			return err
		}
		opt, err := strInput.options()
		if err != nil {
			return err
		}
		dec := c.DecimalSeparator
		if strInput.decimal != "" {
			dec = strInput.decimal
		}
		sep, err := parseDecimal(dec)
		if err != nil {
			return err
		}
		bins := c.NumBins
		if cmd.Flags().Changed("bins") {
			bins = strBins
		}
		column := c.StratifyColumn
		if cmd.Flags().Changed("column") {
			column = strColumn
		}
		if strings.TrimSpace(column) == "" {
			column = sampling.DefaultColumn
		}

		ds, err := tabular.ReadFile(args[0], opt)
		if err != nil {
			return err
		}
		col := ds.ColumnIndex(column)
		if col < 0 {
			return &sampling.MissingColumnError{Column: column, Available: ds.Headers}
		}
		ds.Conform()
		st, err := sampling.StratifyWith(ds.Rows, col, bins, sep)
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "Column: %s (min %g, max %g, width %g)\n", ds.Headers[col], st.Min, st.Max, st.Width)
		if st.Degenerate {
			fmt.Fprintln(w, "All values are equal; using a single stratum.")
		}
		fmt.Fprintln(w, "| # | Interval | Rows |")
		fmt.Fprintln(w, "| --- | --- | --- |")
		for i, b := range st.Bins {
			fmt.Fprintf(w, "| %d | %s | %d |\n", i+1, b.Label(), b.Size())
		}
		fmt.Fprintf(w, "Population: %d\n", st.Population())
		if n := len(st.Excluded); n > 0 {
			fmt.Fprintf(w, "⚠ Warning: %d row(s) with a non-numeric %s value were excluded\n", n, ds.Headers[col])
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(strataCmd)
	strInput.register(strataCmd)
	strataCmd.Flags().IntVar(&strBins, "bins", sampling.DefaultNumBins, "number of equal-width strata")
	strataCmd.Flags().StringVar(&strColumn, "column", sampling.DefaultColumn, "stratify column (case-insensitive)")
}
