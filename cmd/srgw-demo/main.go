// SPDX-License-Identifier: MIT
//
// srgw-demo — the end-to-end srGW barycenter pipeline:
//
//  1. sample a labeled dataset of stochastic-block-model graphs,
//  2. render one representative graph per cluster class (MDS layout on
//     top, raw structure heatmap below) into samples.png,
//  3. learn a small srGW barycenter with a loss-based stop criterion and
//     warm-started transport plans, printing the initial guess and the
//     learned structure,
//  4. render the loss-per-iteration curve into loss.png,
//  5. with --fused, repeat the learning on one-hot attributed graphs via
//     the srFGW barycenter solver (fused_loss.png, learned features).
//
// Every failure is fatal: the pipeline has no recovery paths, errors
// surface once at the exit.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/srgw/gromov"
	"github.com/katalvlaran/srgw/layout"
	"github.com/katalvlaran/srgw/sbm"
	"github.com/katalvlaran/srgw/viz"
)

// Figure dimensions (inches, matching the original 12×8 and 4×3 panels).
const (
	galleryWidth  = 12 * vg.Inch
	galleryHeight = 8 * vg.Inch
	curveWidth    = 4 * vg.Inch
	curveHeight   = 3 * vg.Inch

	planeDims = 2

	initDiag    = 0.6 // initial barycenter guess: isotropic, diagonally dominant
	initOffDiag = 0.2
)

// options carries every CLI knob; defaults mirror the demo constants.
type options struct {
	clusters      []int
	samples       int
	minNodes      int
	maxNodes      int
	pIntra        float64
	pInter        float64
	barycenterN   int
	tol           float64
	seed          int64
	out           string
	fused         bool
	alpha         float64
}

func main() {
	opt := options{}
	cmd := &cobra.Command{
		Use:   "srgw-demo",
		Short: "Learn a semi-relaxed Gromov-Wasserstein barycenter of SBM graphs",
		Long: "srgw-demo samples a dataset of stochastic-block-model graphs, learns a\n" +
			"small semi-relaxed (fused) Gromov-Wasserstein barycenter by block-coordinate\n" +
			"descent, and writes the sample gallery and convergence figures as PNGs.",
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			return run(opt)
		},
	}

	flags := cmd.Flags()
	flags.IntSliceVar(&opt.clusters, "clusters", []int{1, 2, 3}, "planted cluster counts, one dataset class each")
	flags.IntVar(&opt.samples, "samples-per-cluster", 20, "graphs per cluster class")
	flags.IntVar(&opt.minNodes, "min-nodes", 30, "inclusive lower bound of the node-count range")
	flags.IntVar(&opt.maxNodes, "max-nodes", 50, "exclusive upper bound of the node-count range")
	flags.Float64Var(&opt.pIntra, "p-intra", 0.9, "intra-cluster edge probability")
	flags.Float64Var(&opt.pInter, "p-inter", 0.1, "inter-cluster edge probability")
	flags.IntVar(&opt.barycenterN, "barycenter-size", 3, "number of barycenter nodes N")
	flags.Float64Var(&opt.tol, "tol", 1e-6, "relative loss tolerance of the block-coordinate descent")
	flags.Int64Var(&opt.seed, "seed", 42, "seed of the dataset node-count draws")
	flags.StringVar(&opt.out, "out", "out", "directory receiving the PNG figures")
	flags.BoolVar(&opt.fused, "fused", false, "also learn an attributed (srFGW) barycenter")
	flags.Float64Var(&opt.alpha, "alpha", 0.5, "srFGW structure/feature trade-off")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(opt options) error {
	logger, err := zap.NewDevelopment()
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck // stderr flush at exit

	if err = os.MkdirAll(opt.out, 0o755); err != nil {
		return err
	}

	// 1) Dataset.
	cfg := sbm.Config{
		Clusters:          opt.clusters,
		SamplesPerCluster: opt.samples,
		MinNodes:          opt.minNodes,
		MaxNodes:          opt.maxNodes,
		IntraProb:         opt.pIntra,
		InterProb:         opt.pInter,
		Features:          opt.fused,
		Rand:              rand.New(rand.NewSource(opt.seed)),
	}
	dataset, err := sbm.Generate(cfg)
	if err != nil {
		return err
	}
	logger.Info("dataset generated",
		zap.Int("samples", len(dataset)),
		zap.Ints("clusters", opt.clusters),
		zap.Int("samples_per_cluster", opt.samples))

	// 2) Sample gallery: MDS layouts on the top row, heatmaps below.
	if err = saveGallery(opt, dataset); err != nil {
		return err
	}
	logger.Info("sample gallery written", zap.String("path", filepath.Join(opt.out, "samples.png")))

	// 3) srGW barycenter from the isotropic initial guess.
	initC := isotropic(opt.barycenterN)
	fmt.Printf("init C:\n%v\n", mat.Formatted(initC, mat.Prefix(""), mat.Squeeze()))

	bopts := gromov.DefaultBarycenterOptions()
	bopts.Tol = opt.tol
	bopts.StopCriterion = gromov.StopLoss
	bopts.WarmStart = true
	bopts.InitC = initC

	C, lg, err := gromov.SemirelaxedGromovBarycenters(
		opt.barycenterN, dataset.Structures(), dataset.Weights(), dataset.Lambdas(), &bopts)
	if err != nil {
		return err
	}
	logger.Info("barycenter learned",
		zap.Int("iterations", len(lg.Loss)),
		zap.Float64("final_loss", lg.Loss[len(lg.Loss)-1]))
	fmt.Printf("C:\n%v\n", mat.Formatted(C, mat.Prefix(""), mat.Squeeze()))

	// 4) Convergence curve.
	lp, err := viz.LossPlot(lg.Loss, "loss evolution by iteration")
	if err != nil {
		return err
	}
	if err = viz.Save(filepath.Join(opt.out, "loss.png"), curveWidth, curveHeight, lp); err != nil {
		return err
	}

	// 5) Optional attributed (srFGW) run on the one-hot block features.
	if !opt.fused {
		return nil
	}
	fopts := bopts
	fopts.InitC = isotropic(opt.barycenterN)
	fC, fY, flg, err := gromov.SemirelaxedFGWBarycenters(
		opt.barycenterN, dataset.Features(), dataset.Structures(), dataset.Weights(),
		dataset.Lambdas(), opt.alpha, &fopts)
	if err != nil {
		return err
	}
	logger.Info("fused barycenter learned",
		zap.Int("iterations", len(flg.Loss)),
		zap.Float64("alpha", opt.alpha),
		zap.Float64("final_loss", flg.Loss[len(flg.Loss)-1]))
	fmt.Printf("fused C:\n%v\n", mat.Formatted(fC, mat.Prefix(""), mat.Squeeze()))
	fmt.Printf("fused Y:\n%v\n", mat.Formatted(fY, mat.Prefix(""), mat.Squeeze()))

	flp, err := viz.LossPlot(flg.Loss, "srFGW loss evolution by iteration")
	if err != nil {
		return err
	}
	return viz.Save(filepath.Join(opt.out, "fused_loss.png"), curveWidth, curveHeight, flp)
}

// saveGallery renders one representative sample per cluster class into a
// 2×len(clusters) panel: graph layout above its structure heatmap.
func saveGallery(opt options, dataset sbm.Dataset) error {
	var top, bottom []*plot.Plot
	for idx, c := range opt.clusters {
		sample := dataset[idx*opt.samples] // first sample of the class
		coords, err := layout.Embed(sample.C, planeDims)
		if err != nil {
			return err
		}
		gopts := viz.DefaultGraphPlotOptions()
		gopts.Title = fmt.Sprintf("(graph) sample from label %d", c)
		gp, err := viz.GraphPlot(coords, sample.C, &gopts)
		if err != nil {
			return err
		}
		hp, err := viz.MatrixPlot(sample.C, fmt.Sprintf("(matrix) sample from label %d", c))
		if err != nil {
			return err
		}
		top = append(top, gp)
		bottom = append(bottom, hp)
	}
	return viz.SaveGrid(filepath.Join(opt.out, "samples.png"),
		2, len(opt.clusters), galleryWidth, galleryHeight, append(top, bottom...)...)
}

// isotropic builds the diagonally dominant initial barycenter guess used
// by the demo: initDiag on the diagonal, initOffDiag elsewhere.
func isotropic(n int) *mat.Dense {
	C := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				C.Set(i, j, initDiag)
				continue
			}
			C.Set(i, j, initOffDiag)
		}
	}
	return C
}
