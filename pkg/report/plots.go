// Package report renders the visual comparison of the reduction techniques:
// per-technique scatter plots colored by cancer type, a PCA scatter matrix,
// a descriptor box-plot sweep, and the final multi-panel grid. Every figure
// is independent; a rendering failure never aborts the rest of the report.
package report

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/JohnPaulinePineda/Portfolio-Project-21/pkg/dataset"
	"github.com/JohnPaulinePineda/Portfolio-Project-21/pkg/reduce"
)

// palette assigns one color per label level, in level order.
var palette = []color.RGBA{
	{R: 214, G: 39, B: 40, A: 255},   // BREAST
	{R: 31, G: 119, B: 180, A: 255},  // RENAL
	{R: 44, G: 160, B: 44, A: 255},   // MELANOMA
	{R: 255, G: 127, B: 14, A: 255},  // NSCLC
	{R: 148, G: 103, B: 189, A: 255}, // COLON
}

// scatterPanel builds one 2-D scatter with one series per label level.
func scatterPanel(title, xlab, ylab string, xs, ys []float64, labels, levels []string, legend bool) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xlab
	p.Y.Label.Text = ylab

	for li, level := range levels {
		pts := make(plotter.XYs, 0)
		for i, l := range labels {
			if l == level {
				pts = append(pts, plotter.XY{X: xs[i], Y: ys[i]})
			}
		}
		s, err := plotter.NewScatter(pts)
		if err != nil {
			return nil, err
		}
		s.Color = palette[li%len(palette)]
		s.Radius = vg.Points(3)
		p.Add(s)
		if legend {
			p.Legend.Add(level, s)
		}
	}
	if legend {
		p.Legend.Top = true
	}
	return p, nil
}

// Scatter2D renders the top two embedding dimensions of one technique.
func Scatter2D(e *reduce.Embedding, levels []string, path string) error {
	if e.Cols() < 2 {
		return fmt.Errorf("report: %s embedding has %d dimensions, want 2", e.Technique, e.Cols())
	}
	xs := make([]float64, e.Rows())
	ys := make([]float64, e.Rows())
	for i, row := range e.Points {
		xs[i], ys[i] = row[0], row[1]
	}
	p, err := scatterPanel(e.Technique, "Component 1", "Component 2", xs, ys, e.Labels, levels, true)
	if err != nil {
		return fmt.Errorf("report: %s: %w", e.Technique, err)
	}
	if err := p.Save(5*vg.Inch, 5*vg.Inch, path); err != nil {
		return fmt.Errorf("report: %s: %w", e.Technique, err)
	}
	return nil
}

// ScatterMatrix renders every pairwise combination of the embedding's
// components in a k x k grid, colored by label. Diagonal cells carry the
// component name.
func ScatterMatrix(e *reduce.Embedding, levels []string, path string) error {
	k := e.Cols()
	if k < 2 {
		return fmt.Errorf("report: %s embedding has %d dimensions, want >= 2", e.Technique, k)
	}
	cols := make([][]float64, k)
	for j := 0; j < k; j++ {
		c := make([]float64, e.Rows())
		for i, row := range e.Points {
			c[i] = row[j]
		}
		cols[j] = c
	}

	plots := make([][]*plot.Plot, k)
	for r := 0; r < k; r++ {
		plots[r] = make([]*plot.Plot, k)
		for c := 0; c < k; c++ {
			if r == c {
				p := plot.New()
				p.Title.Text = fmt.Sprintf("%s %d", e.Technique, r+1)
				p.HideAxes()
				plots[r][c] = p
				continue
			}
			p, err := scatterPanel("", fmt.Sprintf("C%d", c+1), fmt.Sprintf("C%d", r+1),
				cols[c], cols[r], e.Labels, levels, false)
			if err != nil {
				return fmt.Errorf("report: scatter matrix: %w", err)
			}
			plots[r][c] = p
		}
	}
	return saveGrid(plots, 2.2*vg.Inch, path)
}

// ComparisonGrid juxtaposes the 2-D embedding of every technique in a fixed
// panel order. A technique with no embedding renders as a placeholder panel.
func ComparisonGrid(embs map[string]*reduce.Embedding, order, levels []string, path string) error {
	const gridCols = 3
	rows := (len(order) + gridCols - 1) / gridCols
	plots := make([][]*plot.Plot, rows)
	for r := 0; r < rows; r++ {
		plots[r] = make([]*plot.Plot, gridCols)
		for c := 0; c < gridCols; c++ {
			idx := r*gridCols + c
			if idx >= len(order) {
				p := plot.New()
				p.HideAxes()
				plots[r][c] = p
				continue
			}
			name := order[idx]
			e, ok := embs[name]
			if !ok || e == nil || e.Cols() < 2 {
				p := plot.New()
				p.Title.Text = name + " (unavailable)"
				p.HideAxes()
				plots[r][c] = p
				continue
			}
			xs := make([]float64, e.Rows())
			ys := make([]float64, e.Rows())
			for i, row := range e.Points {
				xs[i], ys[i] = row[0], row[1]
			}
			p, err := scatterPanel(name, "C1", "C2", xs, ys, e.Labels, levels, idx == 0)
			if err != nil {
				return fmt.Errorf("report: grid: %s: %w", name, err)
			}
			plots[r][c] = p
		}
	}
	return saveGrid(plots, 3*vg.Inch, path)
}

// BoxPlotSweep renders the per-descriptor distributions in batches of
// batchSize columns per figure, covering the whole table. It returns the
// figure paths written; individual figure failures are skipped and reported
// through the returned error without stopping the sweep.
func BoxPlotSweep(t *dataset.Table, batchSize int, outDir string) ([]string, error) {
	if batchSize <= 0 {
		batchSize = 28
	}
	var paths []string
	var firstErr error
	for start := 0; start < t.Cols(); start += batchSize {
		end := start + batchSize
		if end > t.Cols() {
			end = t.Cols()
		}
		path := filepath.Join(outDir, fmt.Sprintf("boxplots_%04d.png", start/batchSize+1))
		if err := boxPlotBatch(t, start, end, path); err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		paths = append(paths, path)
	}
	return paths, firstErr
}

func boxPlotBatch(t *dataset.Table, start, end int, path string) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Descriptors %d-%d", start+1, end)
	p.Y.Label.Text = "Expression"

	names := make([]string, 0, end-start)
	for j := start; j < end; j++ {
		b, err := plotter.NewBoxPlot(vg.Points(8), float64(j-start), plotter.Values(t.Column(j)))
		if err != nil {
			return fmt.Errorf("report: box plot %q: %w", t.Names[j], err)
		}
		p.Add(b)
		names = append(names, t.Names[j])
	}
	p.NominalX(names...)

	if err := p.Save(10*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("report: %w", err)
	}
	return nil
}

// saveGrid aligns a rectangular set of plots on one PNG canvas.
func saveGrid(plots [][]*plot.Plot, tile vg.Length, path string) error {
	rows := len(plots)
	cols := len(plots[0])
	img := vgimg.New(tile*vg.Length(cols), tile*vg.Length(rows))
	dc := draw.New(img)
	tiles := draw.Tiles{
		Rows: rows, Cols: cols,
		PadX: vg.Millimeter, PadY: vg.Millimeter,
		PadTop: vg.Millimeter, PadBottom: vg.Millimeter,
		PadLeft: vg.Millimeter, PadRight: vg.Millimeter,
	}
	canvases := plot.Align(plots, tiles, dc)
	for r := range plots {
		for c := range plots[r] {
			if plots[r][c] != nil {
				plots[r][c].Draw(canvases[r][c])
			}
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("report: %w", err)
	}
	defer f.Close()
	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(f); err != nil {
		return fmt.Errorf("report: %w", err)
	}
	return nil
}
