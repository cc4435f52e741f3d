package bench

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/hampath/builder"
)

const (
	plotW = 6 * vg.Inch
	plotH = 4 * vg.Inch
)

// solverPalette cycles per solver line within one plot.
var solverPalette = []color.RGBA{
	{R: 37, G: 150, B: 190, A: 255},
	{R: 217, G: 95, B: 2, A: 255},
	{R: 27, G: 158, B: 119, A: 255},
	{R: 117, G: 112, B: 179, A: 255},
}

// WritePlots renders one PNG per density class: mean seconds over ok
// runs versus instance size, one line per solver. Groups without a
// single ok run are skipped.
func WritePlots(dir string, rows []SummaryRow) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("bench: plot dir: %w", err)
	}

	for _, d := range densitiesOf(rows) {
		p := plot.New()
		p.Title.Text = fmt.Sprintf("mean solve time, %s instances", d)
		p.X.Label.Text = "vertices"
		p.Y.Label.Text = "mean seconds (ok runs)"
		p.Legend.Top = true

		for i, solver := range solversOf(rows) {
			pts := seriesFor(rows, solver, d)
			if len(pts) == 0 {
				continue
			}
			line, points, err := plotter.NewLinePoints(pts)
			if err != nil {
				return fmt.Errorf("bench: plot %s/%s: %w", solver, d, err)
			}
			c := solverPalette[i%len(solverPalette)]
			line.Color = c
			points.Color = c
			p.Add(line, points)
			p.Legend.Add(solver, line, points)
		}

		name := filepath.Join(dir, fmt.Sprintf("time_%s.png", d))
		if err := p.Save(plotW, plotH, name); err != nil {
			return fmt.Errorf("bench: save %s: %w", name, err)
		}
	}

	return nil
}

// seriesFor extracts the (n, mean seconds) curve for one solver at one
// density, ascending in n.
func seriesFor(rows []SummaryRow, solver string, d builder.Density) plotter.XYs {
	var pts plotter.XYs
	for _, r := range rows {
		if r.Solver != solver || r.Density != d || r.OK == 0 {
			continue
		}
		pts = append(pts, plotter.XY{X: float64(r.N), Y: r.MeanSec})
	}
	sort.Slice(pts, func(i, j int) bool { return pts[i].X < pts[j].X })

	return pts
}

func densitiesOf(rows []SummaryRow) []builder.Density {
	var out []builder.Density
	seen := make(map[builder.Density]bool)
	for _, r := range rows {
		if !seen[r.Density] {
			seen[r.Density] = true
			out = append(out, r.Density)
		}
	}

	return out
}

func solversOf(rows []SummaryRow) []string {
	var out []string
	seen := make(map[string]bool)
	for _, r := range rows {
		if !seen[r.Solver] {
			seen[r.Solver] = true
			out = append(out, r.Solver)
		}
	}

	return out
}
