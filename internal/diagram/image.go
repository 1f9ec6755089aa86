package diagram

import (
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ExportBoltPattern exports a scaled plan view of the plate and bolt grid
// to an image file (png, svg or pdf, by extension)
func ExportBoltPattern(data BoltPatternData, filename string) error {
	p := plot.New()
	p.Title.Text = data.Title
	p.X.Label.Text = "Length (in)"
	p.Y.Label.Text = "Height (in)"

	// Plate outline
	outline := plotter.XYs{
		{X: 0, Y: 0},
		{X: data.PlateLength, Y: 0},
		{X: data.PlateLength, Y: data.PlateHeight},
		{X: 0, Y: data.PlateHeight},
		{X: 0, Y: 0},
	}
	plateLine, err := plotter.NewLine(outline)
	if err != nil {
		return err
	}
	plateLine.LineStyle.Width = vg.Points(2)
	plateLine.LineStyle.Color = color.Black
	p.Add(plateLine)

	// Bolt positions
	patternH := float64(data.Rows-1) * data.RowSpacing
	bottomY := (data.PlateHeight - patternH) / 2

	bolts := make(plotter.XYs, 0, data.Rows*data.Columns)
	var critical plotter.XYs
	for r := 0; r < data.Rows; r++ {
		y := bottomY + float64(r)*data.RowSpacing
		for c := 0; c < data.Columns; c++ {
			x := data.EndDistance + float64(c)*data.Pitch
			if data.MarkCritical && r == data.Rows-1 && c == data.Columns-1 {
				critical = append(critical, plotter.XY{X: x, Y: y})
				continue
			}
			bolts = append(bolts, plotter.XY{X: x, Y: y})
		}
	}

	if len(bolts) > 0 {
		scatter, err := plotter.NewScatter(bolts)
		if err != nil {
			return err
		}
		scatter.GlyphStyle.Shape = draw.CircleGlyph{}
		scatter.GlyphStyle.Radius = vg.Points(5)
		scatter.GlyphStyle.Color = color.RGBA{R: 70, G: 70, B: 70, A: 255}
		p.Add(scatter)
	}

	if len(critical) > 0 {
		crit, err := plotter.NewScatter(critical)
		if err != nil {
			return err
		}
		crit.GlyphStyle.Shape = draw.CircleGlyph{}
		crit.GlyphStyle.Radius = vg.Points(6)
		crit.GlyphStyle.Color = color.RGBA{R: 220, G: 20, B: 60, A: 255}
		p.Add(crit)
	}

	// Keep aspect roughly true
	p.X.Min, p.X.Max = -1, data.PlateLength+1
	p.Y.Min, p.Y.Max = -1, data.PlateHeight+1

	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		os.MkdirAll(dir, 0755)
	}

	return p.Save(8*vg.Inch, 5*vg.Inch, filename)
}

// ExportRatioChart exports a bar chart of demand/capacity ratios with a
// reference line at ratio 1.0
func ExportRatioChart(bars []RatioBar, filename string) error {
	p := plot.New()
	p.Title.Text = "Demand/Capacity Ratios"
	p.Y.Label.Text = "Ratio"

	values := make(plotter.Values, len(bars))
	names := make([]string, len(bars))
	for i, b := range bars {
		values[i] = b.Ratio
		names[i] = b.Name
	}

	chart, err := plotter.NewBarChart(values, vg.Points(14))
	if err != nil {
		return err
	}
	chart.Color = color.RGBA{R: 70, G: 130, B: 180, A: 255}
	p.Add(chart)
	p.NominalX(names...)
	p.X.Tick.Label.Rotation = 0.9
	p.X.Tick.Label.XAlign = draw.XRight

	limit, err := plotter.NewLine(plotter.XYs{
		{X: -0.5, Y: 1},
		{X: float64(len(bars)) - 0.5, Y: 1},
	})
	if err != nil {
		return err
	}
	limit.LineStyle.Color = color.RGBA{R: 220, G: 20, B: 60, A: 255}
	limit.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
	p.Add(limit)

	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		os.MkdirAll(dir, 0755)
	}

	return p.Save(10*vg.Inch, 5*vg.Inch, filename)
}
