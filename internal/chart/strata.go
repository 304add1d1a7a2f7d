package chart

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/yogiiiiiiiiii/TN-project-final/internal/sampling"
	"github.com/yogiiiiiiiiii/TN-project-final/internal/utils"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Strata builds a grouped bar chart of stratum size next to rows drawn.
func Strata(res *sampling.Result) (*plot.Plot, error) {
	if len(res.Strata) == 0 {
		return nil, fmt.Errorf("no strata to plot")
	}
	sizes := make(plotter.Values, len(res.Strata))
	drawn := make(plotter.Values, len(res.Strata))
	labels := make([]string, len(res.Strata))
	for i, s := range res.Strata {
		sizes[i] = float64(s.Size())
		drawn[i] = float64(s.Drawn)
		labels[i] = s.Label()
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Strata on %s (n=%d, sample=%d)", res.Column, res.Population, len(res.Sampled))
	p.Y.Label.Text = "rows"

	w := vg.Points(18)
	popBars, err := plotter.NewBarChart(sizes, w)
	if err != nil {
		return nil, fmt.Errorf("population bars: %w", err)
	}
	popBars.LineStyle.Width = vg.Length(0)
	popBars.Color = plotutil.Color(0)
	popBars.Offset = -w / 2

	drawBars, err := plotter.NewBarChart(drawn, w)
	if err != nil {
		return nil, fmt.Errorf("sample bars: %w", err)
	}
	drawBars.LineStyle.Width = vg.Length(0)
	drawBars.Color = plotutil.Color(1)
	drawBars.Offset = w / 2

	p.Add(popBars, drawBars)
	p.Legend.Add("population", popBars)
	p.Legend.Add("sampled", drawBars)
	p.Legend.Top = true
	p.NominalX(labels...)
	return p, nil
}

// Render draws the strata chart in the given image format (png, svg, pdf, ...).
func Render(res *sampling.Result, format string) ([]byte, error) {
	p, err := Strata(res)
	if err != nil {
		return nil, err
	}
	if format == "" {
		format = "png"
	}
	wt, err := p.WriterTo(6*vg.Inch, 4*vg.Inch, format)
	if err != nil {
		return nil, fmt.Errorf("render chart: %w", err)
	}
	var buf bytes.Buffer
	if _, err := wt.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("encode chart: %w", err)
	}
	return buf.Bytes(), nil
}

// FormatFor picks the image format from a file extension.
func FormatFor(path string) string {
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
}

// WriteStrata renders the strata chart to path, format chosen by extension.
func WriteStrata(path string, res *sampling.Result) error {
	b, err := Render(res, FormatFor(path))
	if err != nil {
		return err
	}
	return utils.SafeWriteFile(path, b)
}
