package cmd

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/yogiiiiiiiiii/TN-project-final/internal/topics"
	"github.com/yogiiiiiiiiii/TN-project-final/internal/utils"
)

var (
	tpcFrom    string
	tpcOutput  string
	tpcPreview bool
)

var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "Collect topics and question numbers into a topics sheet",
	Long: `Asks for the number of topics, then each topic's name and its hard, medium and easy
question counts, then the question numbers for each of those. The result is written as
topics.csv with one row per topic and level: name, level, count, question numbers.

Use --from to read the same answers from a YAML plan instead of prompting.`,
	Example: `  sampler topics
  sampler topics --from plan.yaml -o exam/topics.csv`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := requireConfig()
		if err != nil {
			return err
		}
		var s topics.Session
		if tpcFrom != "" {
			f, err := os.Open(tpcFrom)
			if err != nil {
				return fmt.Errorf("open plan: %w", err)
			}
			defer f.Close()
			plan, err := topics.LoadPlan(f)
			if err != nil {
				return err
			}
			if s, err = plan.Apply(); err != nil {
				return err
			}
		} else {
			if s, err = topics.RunInteractive(cmd.InOrStdin(), cmd.OutOrStdout()); err != nil {
				return err
			}
		}
		debugf("session %s: %d topic(s), step %s", s.ID, s.Total, s.Step)

		var buf bytes.Buffer
		if err := topics.WriteCSV(&buf, s); err != nil {
			return err
		}
		w := cmd.OutOrStdout()
		if tpcPreview {
			fmt.Fprintln(w, topics.Preview(s))
		}
		out := tpcOutput
		if out == "" {
			name := c.TopicsFile
			if name == "" {
				name = topics.DefaultFileName
			}
			if out, err = utils.ResolveOutput(c.OutputDir, name); err != nil {
				return err
			}
		}
		if err := utils.SafeWriteFile(out, buf.Bytes()); err != nil {
			return fmt.Errorf("write topics: %w", err)
		}
		fmt.Fprintf(w, "✓ Wrote %d topic row(s) to %s\n", len(topics.Rows(s)), out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(topicsCmd)
	topicsCmd.Flags().StringVar(&tpcFrom, "from", "", "read answers from a YAML plan instead of prompting")
	topicsCmd.Flags().StringVarP(&tpcOutput, "output", "o", "", "export path (default <output_dir>/topics.csv)")
	topicsCmd.Flags().BoolVar(&tpcPreview, "preview", true, "print the sheet as a table before writing")
}
