package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"github.com/alexiusacademia/gorcw/internal/aci"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// WallPoint marks one wall on the αc curve
type WallPoint struct {
	Tag    string
	Ratio  float64 // hw/lw
	AlphaC float64
}

// ExportCapacityChart exports a grouped bar chart of both design capacities (kN)
func ExportCapacityChart(bars []CapacityBar, filename string) error {
	if len(bars) == 0 {
		return fmt.Errorf("no capacities to plot")
	}

	p := plot.New()
	p.Title.Text = "Wall Shear Capacity"
	p.Y.Label.Text = "φVn (kN)"

	standard := make(plotter.Values, len(bars))
	annex := make(plotter.Values, len(bars))
	tags := make([]string, len(bars))
	for i, b := range bars {
		standard[i] = b.Standard / 1000
		annex[i] = b.Annex / 1000
		tags[i] = b.Tag
	}

	barWidth := vg.Points(14)

	stdBars, err := plotter.NewBarChart(standard, barWidth)
	if err != nil {
		return err
	}
	stdBars.Color = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	stdBars.LineStyle.Width = vg.Length(0)
	stdBars.Offset = -barWidth / 2

	annexBars, err := plotter.NewBarChart(annex, barWidth)
	if err != nil {
		return err
	}
	annexBars.Color = color.RGBA{R: 100, G: 149, B: 237, A: 255}
	annexBars.LineStyle.Width = vg.Length(0)
	annexBars.Offset = barWidth / 2

	p.Add(stdBars, annexBars)
	p.Legend.Add("Standard (φ = 0.6)", stdBars)
	p.Legend.Add("Annex (φ = 0.9Ω)", annexBars)
	p.Legend.Top = true
	p.NominalX(tags...)

	return save(p, 8*vg.Inch, 6*vg.Inch, filename)
}

// ExportAlphaCurve exports the αc rule with the given walls marked on it
func ExportAlphaCurve(points []WallPoint, filename string) error {
	p := plot.New()
	p.Title.Text = "Wall Shear Coefficient αc"
	p.X.Label.Text = "hw/lw"
	p.Y.Label.Text = "αc"
	p.Y.Min = aci.AlphaCSlender - 0.02
	p.Y.Max = aci.AlphaCSquat + 0.02

	to := aci.SlenderRatio + 1
	for _, pt := range points {
		if pt.Ratio > to {
			to = pt.Ratio
		}
	}

	ratios, alphas := AlphaSamples(0, to, 200)
	curve := make(plotter.XYs, len(ratios))
	for i := range ratios {
		curve[i] = plotter.XY{X: ratios[i], Y: alphas[i]}
	}

	line, err := plotter.NewLine(curve)
	if err != nil {
		return err
	}
	line.LineStyle.Width = vg.Points(2)
	line.LineStyle.Color = color.Black
	p.Add(line)

	for _, x := range []float64{aci.SquatRatio, aci.SlenderRatio} {
		marker, err := plotter.NewLine(plotter.XYs{{X: x, Y: p.Y.Min}, {X: x, Y: p.Y.Max}})
		if err != nil {
			return err
		}
		marker.LineStyle.Color = color.RGBA{R: 128, G: 128, B: 128, A: 255}
		marker.LineStyle.Dashes = []vg.Length{vg.Points(3), vg.Points(3)}
		p.Add(marker)
	}

	if len(points) > 0 {
		xys := make(plotter.XYs, len(points))
		labels := make([]string, len(points))
		for i, pt := range points {
			xys[i] = plotter.XY{X: pt.Ratio, Y: pt.AlphaC}
			labels[i] = pt.Tag
		}

		walls, err := plotter.NewScatter(xys)
		if err != nil {
			return err
		}
		walls.GlyphStyle.Color = color.RGBA{R: 255, G: 0, B: 0, A: 255}
		walls.GlyphStyle.Radius = vg.Points(4)
		walls.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(walls)

		names, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: labels})
		if err != nil {
			return err
		}
		p.Add(names)
	}

	return save(p, 8*vg.Inch, 5*vg.Inch, filename)
}

// save writes the plot in the format given by the file extension, png by default
func save(p *plot.Plot, width, height vg.Length, filename string) error {
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf", ".jpg", ".jpeg":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}
