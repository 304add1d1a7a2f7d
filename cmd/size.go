package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yogiiiiiiiiii/TN-project-final/internal/stats"
)

var (
	sizePopulation int
	sizeConfidence float64
	sizeMargin     float64
)

var sizeCmd = &cobra.Command{
	Use:   "size",
	Short: "Compute the required sample size for a population",
	Example: `  sampler size --population 1000
  sampler size --population 5000 --confidence 99 --margin 2`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := requireConfig()
		if err != nil {
			return err
		}
		conf, margin := c.Proportions()
		if cmd.Flags().Changed("confidence") {
			conf = sizeConfidence / 100
		}
		if cmd.Flags().Changed("margin") {
			margin = sizeMargin / 100
		}
		n, err := stats.RequiredSampleSize(sizePopulation, conf, margin)
		if err != nil {
			return err
		}
		debugf("n0=%.4f", stats.InfiniteSampleSize(conf, margin))
		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "Population: %d\n", sizePopulation)
		fmt.Fprintf(w, "Confidence level: %g%%\n", conf*100)
		fmt.Fprintf(w, "Margin of error: %g%%\n", margin*100)
		fmt.Fprintf(w, "Z-score: %.4f\n", stats.ZScore(conf))
		fmt.Fprintf(w, "Required sample size: %d\n", n)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sizeCmd)
	sizeCmd.Flags().IntVar(&sizePopulation, "population", 0, "population size (required)")
	sizeCmd.Flags().Float64Var(&sizeConfidence, "confidence", 95, "confidence level in percent")
	sizeCmd.Flags().Float64Var(&sizeMargin, "margin", 5, "margin of error in percent")
	_ = sizeCmd.MarkFlagRequired("population")
}
