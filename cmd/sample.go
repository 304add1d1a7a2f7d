package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/yogiiiiiiiiii/TN-project-final/internal/chart"
	"github.com/yogiiiiiiiiii/TN-project-final/internal/sampling"
	"github.com/yogiiiiiiiiii/TN-project-final/internal/tabular"
	"github.com/yogiiiiiiiiii/TN-project-final/internal/utils"
)

var (
	smpInput      inputFlags
	smpParams     paramFlags
	smpOutput     string
	smpColumns    []string
	smpAllColumns bool
	smpChart      string
	smpJSON       bool
	smpSampleRows int
	smpDryRun     bool
)

var sampleCmd = &cobra.Command{
	Use:   "sample <file>",
	Short: "Draw a proportional stratified sample and export it",
	Long: `Reads a CSV/TSV/XLSX file, bins rows on the stratify column (default "correct") into
equal-width strata, computes the required sample size for the confidence level and margin of
error, draws each stratum's share at random without replacement and writes the sampled rows.

By default the export holds the 2nd, 3rd and 4th input columns and goes to sampled_data.csv.
An .xlsx output path writes a workbook with "Sample" and "Strata" sheets.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := requireConfig()
		if err != nil {
			return err
		}
		opt, err := smpInput.options()
		if err != nil {
			return err
		}
		p, err := smpParams.params(cmd, c, smpInput.decimal)
		if err != nil {
			return err
		}
		if err := p.Validate(); err != nil {
			return err
		}
		ds, err := tabular.ReadFile(args[0], opt)
		if err != nil {
			return err
		}
		debugf("read %s: %d columns, %d rows", ds.Name, len(ds.Headers), len(ds.Rows))

		res, err := sampling.Run(ds, p)
		if err != nil {
			return err
		}

		proj := tabular.DefaultProjection
		names := smpColumns
		if len(names) == 0 {
			names = c.ExportColumns
		}
		switch {
		case smpAllColumns:
			proj = tabular.AllColumns(len(res.Headers))
		case len(names) > 0:
			if proj, err = tabular.ProjectionByName(res.Headers, names); err != nil {
				return err
			}
		}
		headers, rows, err := res.Export(proj)
		if err != nil {
			return err
		}

		out := smpOutput
		if out == "" {
			if out, err = utils.ResolveOutput(c.OutputDir, c.SampleFile); err != nil {
				return err
			}
		}
		var data []byte
		if strings.EqualFold(filepath.Ext(out), ".xlsx") {
			sh, sr := res.StrataTable()
			data, err = tabular.EncodeXLSX([]tabular.Sheet{
				{Name: "Sample", Headers: headers, Rows: rows},
				{Name: "Strata", Headers: sh, Rows: sr},
			})
		} else {
			data, err = tabular.EncodeCSV(headers, rows)
		}
		if err != nil {
			return err
		}
		var img []byte
		if smpChart != "" {
			if img, err = chart.Render(res, chart.FormatFor(smpChart)); err != nil {
				return err
			}
		}

		w := cmd.OutOrStdout()
		if smpJSON {
			b, err := utils.PrettyJSON(res.Summary())
			if err != nil {
				return err
			}
			fmt.Fprintln(w, string(b))
		} else {
			fmt.Fprintln(w, res.Markdown(smpSampleRows))
		}
		if smpDryRun {
			return nil
		}

		// chart first: a failed sample write removes it again
		if img != nil {
			if err := utils.SafeWriteFile(smpChart, img); err != nil {
				return fmt.Errorf("write chart: %w", err)
			}
		}
		if err := utils.SafeWriteFile(out, data); err != nil {
			if img != nil {
				_ = os.Remove(smpChart)
			}
			return fmt.Errorf("write sample: %w", err)
		}
		if !smpJSON {
			fmt.Fprintf(w, "✓ Wrote %d sampled rows to %s\n", len(rows), out)
			if img != nil {
				fmt.Fprintf(w, "✓ Wrote strata chart to %s\n", smpChart)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sampleCmd)
	smpInput.register(sampleCmd)
	smpParams.register(sampleCmd)
	sampleCmd.Flags().StringVarP(&smpOutput, "output", "o", "", "export path (.csv or .xlsx; default <output_dir>/sampled_data.csv)")
	sampleCmd.Flags().StringSliceVar(&smpColumns, "columns", nil, "export these columns by header name instead of columns 2-4")
	sampleCmd.Flags().BoolVar(&smpAllColumns, "all-columns", false, "export every input column")
	sampleCmd.Flags().StringVar(&smpChart, "chart", "", "also render a strata bar chart (png, svg or pdf by extension)")
	sampleCmd.Flags().BoolVar(&smpJSON, "json", false, "print the run summary as JSON")
	sampleCmd.Flags().IntVar(&smpSampleRows, "sample-rows", 5, "sampled rows to show in the report")
	sampleCmd.Flags().BoolVar(&smpDryRun, "dry-run", false, "report only, do not write files")
}
