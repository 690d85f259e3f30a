package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// ExportMixChart exports a bar chart of material quantities to an image file
func ExportMixChart(data MixDiagramData, filename string) error {
	p := plot.New()
	p.Title.Text = data.Title
	p.Y.Label.Text = "Mass (kg/m³)"

	values := make(plotter.Values, len(data.Bars))
	labels := make([]string, len(data.Bars))
	for i, b := range data.Bars {
		values[i] = b.Value
		labels[i] = b.Label
	}

	bars, err := plotter.NewBarChart(values, vg.Points(30))
	if err != nil {
		return err
	}
	bars.Color = color.RGBA{R: 100, G: 149, B: 237, A: 255}
	bars.LineStyle.Color = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	p.Add(bars)
	p.NominalX(labels...)

	return savePlot(p, filename, 8*vg.Inch, 6*vg.Inch)
}

// ExportComparisonChart exports side-by-side bars for a base and an
// optimized mix. Both series must carry the same labels in the same order.
func ExportComparisonChart(title string, base, optimized []Bar, filename string) error {
	if len(base) != len(optimized) {
		return fmt.Errorf("mismatched series lengths: %d vs %d", len(base), len(optimized))
	}

	p := plot.New()
	p.Title.Text = title
	p.Y.Label.Text = "Mass (kg/m³)"

	baseVals := make(plotter.Values, len(base))
	optVals := make(plotter.Values, len(optimized))
	labels := make([]string, len(base))
	for i := range base {
		baseVals[i] = base[i].Value
		optVals[i] = optimized[i].Value
		labels[i] = base[i].Label
	}

	w := vg.Points(18)

	baseBars, err := plotter.NewBarChart(baseVals, w)
	if err != nil {
		return err
	}
	baseBars.Color = color.RGBA{R: 100, G: 149, B: 237, A: 255}
	baseBars.Offset = -w / 2

	optBars, err := plotter.NewBarChart(optVals, w)
	if err != nil {
		return err
	}
	optBars.Color = color.RGBA{R: 76, G: 175, B: 80, A: 255}
	optBars.Offset = w / 2

	p.Add(baseBars, optBars)
	p.Legend.Add("Base mix", baseBars)
	p.Legend.Add("Optimized mix", optBars)
	p.Legend.Top = true
	p.NominalX(labels...)

	return savePlot(p, filename, 8*vg.Inch, 6*vg.Inch)
}

func savePlot(p *plot.Plot, filename string, width, height vg.Length) error {
	// Create directory if needed
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		os.MkdirAll(dir, 0755)
	}

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}
