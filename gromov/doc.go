// Package gromov implements semi-relaxed (fused) Gromov–Wasserstein
// divergences between graphs and their barycenters.
//
// 🚀 What is semi-relaxed GW?
//
//	Gromov–Wasserstein compares two metric-measure spaces (here: graphs
//	described by structure matrices C with node-weight vectors p) through
//	a transport plan T aligning their nodes. The *semi-relaxed* variant
//	(srGW, Vincent-Cuaz et al., ICLR 2022) fixes only the first marginal
//	(T·1 = p) and lets the second marginal q = Tᵀ·1 free, so each input
//	graph is modeled as a reweighed subgraph of the target structure.
//
// ✨ Key features:
//   - pairwise srGW / srFGW solvers: conditional gradient (Frank–Wolfe)
//     with a trivial row-wise direction subproblem and exact line search
//     for the square loss
//   - barycenters: block-coordinate descent alternating transport-plan
//     solves with a closed-form structure (and feature) update
//   - warm starts: plans carried across outer iterations (WarmStart)
//   - convergence log: per-iteration loss and stop-criterion residual
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/srgw/gromov"
//
//	opts := gromov.DefaultBarycenterOptions()
//	opts.Tol = 1e-6
//	opts.InitC = initC // optional N×N initial guess
//
//	C, log, err := gromov.SemirelaxedGromovBarycenters(N, Cs, ps, lambdas, &opts)
//
// Performance:
//
//   - Pairwise solve: O(iter · n²·m) time, O(n·m) memory for an n-node
//     input against an m-node target.
//   - Barycenter: O(outer · Σ_s n_s²·N) time.
//
// All stochastic choices (random structure initialization) flow through an
// explicit *rand.Rand; fixed seeds give identical results.
package gromov
