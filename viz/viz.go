// SPDX-License-Identifier: MIT
// Package: srgw/viz
//
// viz.go — figure construction: graph layouts, structure heatmaps and
// convergence curves.
//
// Contract:
//   - Plot builders validate shapes and return sentinel errors; they never
//     mutate their inputs and never panic at runtime.
//   - GraphPlot draws one line per unordered edge {i,j}, i<j. In binary
//     mode any positive entry is drawn at a fixed low alpha; otherwise
//     the alpha is proportional to the entry (clamped to [0,1]).
//   - Rendering to disk happens in save.go (Save / SaveGrid).

package viz

import (
	"fmt"
	"image/color"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// File-local constants (presentation defaults; stable method tags).
const (
	methodGraphPlot  = "GraphPlot"
	methodMatrixPlot = "MatrixPlot"
	methodLossPlot   = "LossPlot"

	defaultEdgeAlpha  = 0.2 // binary-mode edge transparency
	defaultNodeRadius = vg.Length(3)
	paletteColors     = 255 // heatmap palette resolution

	planeDims = 2 // a graph layout needs x and y
)

// defaultNodeColor approximates the demo's node fill (matplotlib's C0).
var defaultNodeColor = color.NRGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}

// GraphPlotOptions configures GraphPlot.
//
// Fields:
//   - Binary     — treat C as an unweighted adjacency: every positive
//     entry drawn at EdgeAlpha. When false the per-edge alpha is the
//     entry itself (learned structures have continuous weights).
//   - EdgeAlpha  — binary-mode transparency in (0,1].
//   - NodeRadius — scatter glyph radius.
//   - NodeColor  — scatter fill color; nil means the default.
//   - Title      — plot title, may be empty.
type GraphPlotOptions struct {
	Binary     bool
	EdgeAlpha  float64
	NodeRadius vg.Length
	NodeColor  color.Color
	Title      string
}

// DefaultGraphPlotOptions returns the documented presentation defaults.
func DefaultGraphPlotOptions() GraphPlotOptions {
	return GraphPlotOptions{
		Binary:     true,
		EdgeAlpha:  defaultEdgeAlpha,
		NodeRadius: defaultNodeRadius,
		NodeColor:  defaultNodeColor,
	}
}

// GraphPlot renders a node-link drawing: one alpha-blended line per edge
// of C between the 2-D coordinates in coords (n×2, one row per node) and
// a scatter of the nodes on top. Axes are hidden — the drawing is a
// picture, not a chart. A nil opts means DefaultGraphPlotOptions.
func GraphPlot(coords, C *mat.Dense, opts *GraphPlotOptions) (*plot.Plot, error) {
	o := DefaultGraphPlotOptions()
	if opts != nil {
		o = *opts
	}
	if o.NodeColor == nil {
		o.NodeColor = defaultNodeColor
	}

	// 1) Validate shapes: square structure, matching 2-D coordinates.
	if C == nil || coords == nil {
		return nil, fmt.Errorf("%s: nil input: %w", methodGraphPlot, ErrShapeMismatch)
	}
	n, c := C.Dims()
	if n != c {
		return nil, fmt.Errorf("%s: structure is %dx%d: %w", methodGraphPlot, n, c, ErrNonSquare)
	}
	cr, cc := coords.Dims()
	if cr != n || cc < planeDims {
		return nil, fmt.Errorf("%s: coords are %dx%d for order %d: %w",
			methodGraphPlot, cr, cc, n, ErrShapeMismatch)
	}

	p := plot.New()
	p.Title.Text = o.Title
	p.HideAxes()

	// 2) Edges: one line per unordered pair with visible weight.
	for j := 0; j < n; j++ {
		for i := 0; i < j; i++ {
			w := C.At(i, j)
			if w <= 0 {
				continue
			}
			alpha := o.EdgeAlpha
			if !o.Binary {
				alpha = min(w, 1)
			}
			line, err := plotter.NewLine(plotter.XYs{
				{X: coords.At(i, 0), Y: coords.At(i, 1)},
				{X: coords.At(j, 0), Y: coords.At(j, 1)},
			})
			if err != nil {
				return nil, fmt.Errorf("%s: edge (%d,%d): %w", methodGraphPlot, i, j, err)
			}
			line.Color = color.NRGBA{A: uint8(alpha * 0xff)}
			p.Add(line)
		}
	}

	// 3) Nodes on top of the edges.
	pts := make(plotter.XYs, n)
	for i := 0; i < n; i++ {
		pts[i] = plotter.XY{X: coords.At(i, 0), Y: coords.At(i, 1)}
	}
	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, fmt.Errorf("%s: scatter: %w", methodGraphPlot, err)
	}
	scatter.GlyphStyle.Color = o.NodeColor
	scatter.GlyphStyle.Radius = o.NodeRadius
	p.Add(scatter)

	return p, nil
}

// denseGrid adapts a mat.Dense to plotter.GridXYZ for heatmaps. Rows grow
// downward in matrix convention, so Y is flipped to render the matrix the
// way it prints.
type denseGrid struct {
	m *mat.Dense
}

func (g denseGrid) Dims() (c, r int) {
	rows, cols := g.m.Dims()
	return cols, rows
}

func (g denseGrid) X(c int) float64 { return float64(c) }

func (g denseGrid) Y(r int) float64 {
	rows, _ := g.m.Dims()
	return float64(rows - 1 - r)
}

func (g denseGrid) Z(c, r int) float64 { return g.m.At(r, c) }

// MatrixPlot renders the raw structure matrix as a heatmap.
func MatrixPlot(C *mat.Dense, title string) (*plot.Plot, error) {
	if C == nil {
		return nil, fmt.Errorf("%s: nil input: %w", methodMatrixPlot, ErrNonSquare)
	}
	if r, c := C.Dims(); r != c {
		return nil, fmt.Errorf("%s: structure is %dx%d: %w", methodMatrixPlot, r, c, ErrNonSquare)
	}

	p := plot.New()
	p.Title.Text = title
	p.HideAxes()
	p.Add(plotter.NewHeatMap(denseGrid{m: C}, moreland.SmoothBlueRed().Palette(paletteColors)))
	return p, nil
}

// LossPlot renders a loss sequence against its iteration index.
func LossPlot(loss []float64, title string) (*plot.Plot, error) {
	if len(loss) == 0 {
		return nil, fmt.Errorf("%s: %w", methodLossPlot, ErrEmptySeries)
	}

	pts := make(plotter.XYs, len(loss))
	for i, l := range loss {
		pts[i] = plotter.XY{X: float64(i), Y: l}
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodLossPlot, err)
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "BCD iterations"
	p.Y.Label.Text = "loss"
	p.Add(line)
	return p, nil
}
