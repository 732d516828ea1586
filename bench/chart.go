// SPDX-License-Identifier: MIT

package bench

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var (
	rowMajorColor = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	colMajorColor = color.RGBA{R: 255, G: 127, B: 14, A: 255}
)

// WriteChart renders a grouped bar chart of mean wall time per traversal
// order for every measured combination. The format follows the file
// extension (.png, .svg, .pdf, ...). Skipped combinations are left out.
func WriteChart(path string, results []Result) error {
	var (
		rowVals, colVals plotter.Values
		labels           []string
	)
	for _, res := range results {
		if res.Skipped {
			continue
		}
		rowVals = append(rowVals, res.RowMajor.Stats.MeanWall)
		colVals = append(colVals, res.ColMajor.Stats.MeanWall)
		labels = append(labels, res.Label())
	}
	if len(labels) == 0 {
		return ErrNothingToPlot
	}

	p := plot.New()
	p.Title.Text = "Grid traversal time by size"
	p.X.Label.Text = "Rows x Cols"
	p.Y.Label.Text = "Wall time (s)"

	w := vg.Points(10)
	rowBars, err := plotter.NewBarChart(rowVals, w)
	if err != nil {
		return fmt.Errorf("row-major bars: %w", err)
	}
	rowBars.Color = rowMajorColor
	rowBars.LineStyle.Width = vg.Length(0)
	rowBars.Offset = -w / 2

	colBars, err := plotter.NewBarChart(colVals, w)
	if err != nil {
		return fmt.Errorf("column-major bars: %w", err)
	}
	colBars.Color = colMajorColor
	colBars.LineStyle.Width = vg.Length(0)
	colBars.Offset = w / 2

	p.Add(rowBars, colBars)
	p.Legend.Add("row-major", rowBars)
	p.Legend.Add("column-major", colBars)
	p.Legend.Top = true
	p.NominalX(labels...)

	width := vg.Length(len(labels))*3*w + 3*vg.Inch
	if err = p.Save(width, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("save chart %s: %w", path, err)
	}

	return nil
}
