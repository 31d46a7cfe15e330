// SPDX-License-Identifier: MIT
// Package: srgw/viz
//
// save.go — writing figures to disk: single plots and tiled multi-panel
// figures (the demo's 2×len(clusters) sample gallery).

package viz

import (
	"fmt"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// File-local constants.
const (
	methodSave     = "Save"
	methodSaveGrid = "SaveGrid"

	tilePad = vg.Length(5) // spacing between grid panels
)

// Save writes a single plot as a w×h PNG. Thin wrapper kept for symmetry
// with SaveGrid so callers touch one package for all figure output.
func Save(path string, w, h vg.Length, p *plot.Plot) error {
	if err := p.Save(w, h, path); err != nil {
		return fmt.Errorf("%s: %q: %w", methodSave, path, err)
	}
	return nil
}

// SaveGrid lays the plots out row-major on a rows×cols tile grid and
// writes the composite w×h PNG. Trailing cells may be left empty by
// passing fewer plots than cells; nil plots skip their cell.
func SaveGrid(path string, rows, cols int, w, h vg.Length, plots ...*plot.Plot) error {
	// 1) Validate the layout before any drawing.
	if rows < 1 || cols < 1 {
		return fmt.Errorf("%s: %dx%d grid: %w", methodSaveGrid, rows, cols, ErrBadGrid)
	}
	if len(plots) > rows*cols {
		return fmt.Errorf("%s: %d plots in a %dx%d grid: %w",
			methodSaveGrid, len(plots), rows, cols, ErrBadGrid)
	}

	// 2) Row-major cell assignment.
	grid := make([][]*plot.Plot, rows)
	for r := range grid {
		grid[r] = make([]*plot.Plot, cols)
		for c := range grid[r] {
			if idx := r*cols + c; idx < len(plots) {
				grid[r][c] = plots[idx]
			}
		}
	}

	// 3) Align and draw every occupied cell onto one canvas.
	img := vgimg.New(w, h)
	dc := draw.New(img)
	tiles := draw.Tiles{
		Rows: rows, Cols: cols,
		PadX: tilePad, PadY: tilePad,
		PadTop: tilePad, PadBottom: tilePad,
		PadLeft: tilePad, PadRight: tilePad,
	}
	canvases := plot.Align(grid, tiles, dc)
	for r := range grid {
		for c := range grid[r] {
			if grid[r][c] != nil {
				grid[r][c].Draw(canvases[r][c])
			}
		}
	}

	// 4) Encode to disk.
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%s: %q: %w", methodSaveGrid, path, err)
	}
	defer f.Close()
	png := vgimg.PngCanvas{Canvas: img}
	if _, err = png.WriteTo(f); err != nil {
		return fmt.Errorf("%s: %q: %w", methodSaveGrid, path, err)
	}
	return nil
}
