// Package srgw learns semi-relaxed (fused) Gromov–Wasserstein barycenters
// of graph datasets — from synthetic stochastic-block-model generation to
// block-coordinate-descent solvers and figure rendering.
//
// 🚀 What is srgw?
//
//	A gonum-powered library that brings together:
//		• Dataset synthesis: stochastic block model graphs with planted clusters
//		• Transport solvers: pairwise srGW / srFGW divergences (conditional gradient)
//		• Barycenters: block-coordinate descent over plans and structure matrices
//		• Embedding: classical MDS node layouts from dissimilarity matrices
//		• Figures: graph layouts, structure heatmaps and loss curves as PNGs
//
// ✨ Why choose srgw?
//
//   - Deterministic – every stochastic path is driven by an explicit seed
//   - Strict errors – sentinel errors everywhere, branch with errors.Is
//   - Pure Go – dense linear algebra via gonum, no cgo
//   - Faithful – matches the srGW formulation of Vincent-Cuaz et al. (ICLR 2022)
//
// Under the hood, everything is organized under four subpackages:
//
//	sbm/    — stochastic block model dataset generator (graphs, weights, features)
//	gromov/ — srGW / srFGW pairwise solvers & barycenter block-coordinate descent
//	layout/ — 2D node coordinates via Torgerson multidimensional scaling
//	viz/    — graph, heatmap and convergence figures (gonum/plot)
//
// Quick sketch of the pipeline:
//
//	    SBM graphs ──► uniform weights ──► srGW barycenter (N nodes)
//	        │                                   │
//	        └──► MDS layouts + heatmaps         └──► loss-per-iteration curve
//
// The cmd/srgw-demo binary wires the full pipeline end to end; see its
// --help output for every knob (cluster counts, node ranges, probabilities,
// barycenter size, tolerance, seeds).
//
//	go get github.com/katalvlaran/srgw
package srgw
