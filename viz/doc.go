// Package viz renders the pipeline's figures — graph layouts, structure
// heatmaps and convergence curves — as gonum/plot plots saved to files.
//
// Everything here is presentational: callers build plots from matrices the
// other packages produce and write them to PNGs (single figures via Save,
// multi-panel figures via SaveGrid). Nothing downstream consumes a plot.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/srgw/viz"
//
//	gp, _ := viz.GraphPlot(coords, C, nil)      // edges + node scatter
//	hp, _ := viz.MatrixPlot(C, "(matrix) sample") // raw structure heatmap
//	lp, _ := viz.LossPlot(log.Loss, "loss evolution by iteration")
//
//	_ = viz.SaveGrid("figure1.png", 2, 3, 1200, 800, gp, hp, lp, ...)
package viz
