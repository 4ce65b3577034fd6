package reporting

import (
	"fmt"
	"image/color"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/bxrne/launchrail/pkg/grid"
)

// GenerateLonProfilePlot renders an SVG line plot of the field value
// against longitude, taken along the grid's center latitude row, and
// saves it under assetsDir as plotFileName.
func (tr *TemplateRenderer) GenerateLonProfilePlot(rg *grid.ResultGrid, plotFileName string) error {
	if rg == nil || len(rg.Points) == 0 {
		return fmt.Errorf("cannot generate longitude profile: empty result grid")
	}

	rows := rg.Rows()
	row := rows[len(rows)/2]

	pts := make(plotter.XYs, len(row))
	for i, point := range row {
		pts[i].X = point.Lon
		pts[i].Y = point.Value
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Field profile at latitude %.3f", row[0].Lat)
	p.X.Label.Text = "Longitude (deg)"
	p.Y.Label.Text = "Value"

	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("reporting: create line plotter: %w", err)
	}
	line.Color = color.RGBA{B: 255, A: 255}
	p.Add(line)
	p.Add(plotter.NewGrid())

	plotPath := filepath.Join(tr.assetsDir, plotFileName)
	if err := p.Save(6*vg.Inch, 4*vg.Inch, plotPath); err != nil {
		return fmt.Errorf("reporting: save plot %s: %w", plotPath, err)
	}
	tr.log.Info("generated longitude profile plot", "path", plotPath)
	return nil
}
