package report

import (
	"image/color"

	"github.com/pkg/errors"
	"go-hep.org/x/hep/hplot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/gopheracademy/logwords/rank"
)

// Plot saves a bar chart of r to path. The image format follows the file
// extension (png, svg, pdf, ...).
func Plot(r rank.Ranking, path string) error {
	if len(r) == 0 {
		return errors.New("nothing to plot")
	}

	vals := make(plotter.Values, len(r))
	names := make([]string, len(r))
	for i, e := range r {
		vals[i] = float64(e.Count)
		names[i] = e.Word
	}

	bars, err := plotter.NewBarChart(vals, vg.Points(20))
	if err != nil {
		return errors.Wrap(err, "can't create bar chart")
	}
	bars.Color = color.NRGBA{0, 0, 255, 255}
	bars.LineStyle.Width = 0

	p := hplot.New()
	p.Title.Text = "Top words"
	p.Y.Label.Text = "count"
	p.Y.Min = 0
	p.Add(bars, hplot.NewGrid())
	p.NominalX(names...)

	const (
		width  = 20 * vg.Centimeter
		height = -1 // choose height automatically
	)
	if err := p.Save(width, height, path); err != nil {
		return errors.Wrapf(err, "can't save plot to %s", path)
	}
	return nil
}
