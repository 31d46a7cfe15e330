// SPDX-License-Identifier: MIT
// Package: srgw/gromov
//
// semirelaxed.go — pairwise semi-relaxed (fused) Gromov–Wasserstein
// solvers by conditional gradient (Frank–Wolfe).
//
// Canonical model (srGW, Vincent-Cuaz et al., ICLR 2022):
//   - Feasible set: T ≥ 0 with fixed first marginal T·1 = p only; the
//     second marginal q = Tᵀ·1 is free (the "semi-relaxation").
//   - Direction subproblem min_X ⟨∇J, X⟩ over the same set decouples by
//     row: all of row i's mass p_i goes to the column minimizing the
//     gradient of that row.
//   - Square loss admits an exact line search: the objective restricted
//     to the segment T + α·Δ is the quadratic a·α² + b·α + J(T) because
//     Δ has zero row sums (see tensor.go for the decomposition).
//
// Contract:
//   - C1 (n×n) and C2 (m×m) must be square and symmetric; p a probability
//     vector of length n. Fused solves additionally take a feature-cost
//     matrix M (n×m) and a trade-off alpha ∈ [0,1]. Symmetry is what lets
//     the line search use ⟨C1·T·C2, Δ⟩ for ⟨C1·Δ·C2, T⟩; it is a
//     precondition, not a checked invariant.
//   - Returned plan satisfies T·1 = p exactly (convex combinations of
//     feasible points); the caller's inputs are never mutated.
//   - Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   - Time: O(MaxIter · n·m·(n+m)) dominated by the two dense products
//     C1·T and (C1·T)·C2 per iteration.
//   - Space: O(n·m) workspaces.
//
// Determinism:
//   - No randomness: fixed inputs and options yield identical plans.

package gromov

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// File-local constants (stable method tags; numeric floors).
const (
	methodSRGW  = "SemirelaxedGromovWasserstein"
	methodSRFGW = "SemirelaxedFusedGromovWasserstein"

	alphaMin = 0.0
	alphaMax = 1.0

	// costFloor keeps relative-decrease tests meaningful near zero loss.
	costFloor = 1e-300
)

// SemirelaxedGromovWasserstein computes the semi-relaxed GW divergence
// between (C1, p) and the target structure C2, returning the optimal
// transport plan T (n×m) and the reached loss value.
//
// Both structure matrices must be symmetric (adjacency or distance
// matrices qualify); the exact line search relies on it and an
// asymmetric input silently degrades the steps.
//
// A nil opts means DefaultSolveOptions. Non-positive MaxIter/Tol fields
// fall back to their defaults, so a zero-valued SolveOptions behaves like
// the default one apart from InitT.
func SemirelaxedGromovWasserstein(C1, C2 *mat.Dense, p []float64, opts *SolveOptions) (*mat.Dense, float64, error) {
	return solvePairwise(methodSRGW, nil, C1, C2, p, alphaMax, opts)
}

// SemirelaxedFusedGromovWasserstein computes the semi-relaxed *fused* GW
// divergence: (1−alpha)·⟨M, T⟩ + alpha·srGW(T), where M (n×m) carries the
// pairwise feature costs between the two node sets. C1 and C2 must be
// symmetric, as for SemirelaxedGromovWasserstein.
func SemirelaxedFusedGromovWasserstein(M, C1, C2 *mat.Dense, p []float64, alpha float64, opts *SolveOptions) (*mat.Dense, float64, error) {
	if M == nil {
		return nil, 0, fmt.Errorf("%s: nil feature cost matrix: %w", methodSRFGW, ErrEmptyDataset)
	}
	return solvePairwise(methodSRFGW, M, C1, C2, p, alpha, opts)
}

// solvePairwise is the shared conditional-gradient core. M may be nil
// (pure srGW); alpha scales the GW part against the linear feature part.
func solvePairwise(method string, M, C1, C2 *mat.Dense, p []float64, alpha float64, opts *SolveOptions) (*mat.Dense, float64, error) {
	// 1) Resolve options (nil → defaults; unset numeric fields → defaults).
	o := DefaultSolveOptions()
	if opts != nil {
		o = *opts
	}
	if o.MaxIter < 1 {
		o.MaxIter = defaultSolveMaxIter
	}
	if o.Tol <= 0 {
		o.Tol = defaultSolveTol
	}
	if o.Loss != SquareLoss {
		return nil, 0, fmt.Errorf("%s: loss=%d: %w", method, o.Loss, ErrUnsupportedLoss)
	}

	// 2) Validate inputs early (fail fast, zero side-effects on invalid input).
	n, err := checkStructure(method, C1, p)
	if err != nil {
		return nil, 0, err
	}
	if C2 == nil {
		return nil, 0, fmt.Errorf("%s: nil target structure: %w", method, ErrEmptyDataset)
	}
	m, mc := C2.Dims()
	if m != mc {
		return nil, 0, fmt.Errorf("%s: target is %dx%d: %w", method, m, mc, ErrNonSquare)
	}
	if M != nil {
		if mr, mcc := M.Dims(); mr != n || mcc != m {
			return nil, 0, fmt.Errorf("%s: feature costs are %dx%d, want %dx%d: %w",
				method, mr, mcc, n, m, ErrDimensionMismatch)
		}
	}
	if alpha < alphaMin || alpha > alphaMax {
		return nil, 0, fmt.Errorf("%s: alpha=%g not in [%g,%g]: %w",
			method, alpha, alphaMin, alphaMax, ErrBadAlpha)
	}

	// 3) Precompute the square-loss kernels:
	//    f1p_i = Σ_k C1_ik²·p_k (row-constant part of the cost tensor),
	//    c1    = pᵀ(C1∘C1)p    (constant term; row marginal is fixed),
	//    S     = C2∘C2          (drives the free-marginal quadratic term).
	f1C1 := squared(C1)
	f1p := make([]float64, n)
	for i := 0; i < n; i++ {
		f1p[i] = floats.Dot(f1C1.RawRowView(i), p)
	}
	c1 := floats.Dot(f1p, p)
	S := squared(C2)

	// 4) Initialize the plan: clone InitT or use the product coupling p ⊗ 1/m.
	var T *mat.Dense
	if o.InitT != nil {
		if tr, tc := o.InitT.Dims(); tr != n || tc != m {
			return nil, 0, fmt.Errorf("%s: InitT is %dx%d, want %dx%d: %w",
				method, tr, tc, n, m, ErrDimensionMismatch)
		}
		T = mat.DenseCopyOf(o.InitT)
	} else {
		T = mat.NewDense(n, m, nil)
		invM := 1.0 / float64(m)
		for i := 0; i < n; i++ {
			row := T.RawRowView(i)
			for j := 0; j < m; j++ {
				row[j] = p[i] * invM
			}
		}
	}

	// 5) Workspaces reused across iterations.
	var (
		B     = mat.NewDense(n, m, nil) // C1·T·C2 (cross-term cache)
		tmp   = mat.NewDense(n, m, nil) // C1·T and C1·Δ staging
		BD    = mat.NewDense(n, m, nil) // C1·Δ·C2
		delta = mat.NewDense(n, m, nil) // CG direction X − T
		step  mat.Dense                 // α·Δ accumulator
	)
	refresh := func() ([]float64, []float64) {
		tmp.Mul(C1, T)
		B.Mul(tmp, C2)
		q := colSums(T)
		Sq := make([]float64, m)
		for j := 0; j < m; j++ {
			Sq[j] = floats.Dot(S.RawRowView(j), q)
		}
		return q, Sq
	}
	cost := func(q, Sq []float64) float64 {
		c := alpha * (c1 + floats.Dot(q, Sq) - 2*frob(B, T))
		if M != nil {
			c += (1 - alpha) * frob(M, T)
		}
		return c
	}

	q, Sq := refresh()
	loss := cost(q, Sq)

	// 6) Conditional-gradient loop with row-wise direction and exact
	//    quadratic line search.
	for it := 0; it < o.MaxIter; it++ {
		// 6a) Direction: per row i, send all mass p_i to the gradient argmin.
		delta.Zero()
		for i := 0; i < n; i++ {
			bRow := B.RawRowView(i)
			var mRow []float64
			if M != nil {
				mRow = M.RawRowView(i)
			}
			best, bestJ := math.Inf(1), 0
			for j := 0; j < m; j++ {
				g := alpha * 2 * (f1p[i] + Sq[j] - 2*bRow[j])
				if mRow != nil {
					g += (1 - alpha) * mRow[j]
				}
				if g < best {
					best, bestJ = g, j
				}
			}
			delta.Set(i, bestJ, p[i])
		}
		delta.Sub(delta, T)

		// 6b) Exact line search along T + α·Δ (quadratic in α).
		r := colSums(delta)
		Sr := make([]float64, m)
		for j := 0; j < m; j++ {
			Sr[j] = floats.Dot(S.RawRowView(j), r)
		}
		tmp.Mul(C1, delta)
		BD.Mul(tmp, C2)
		aGW := floats.Dot(r, Sr) - 2*frob(BD, delta)
		bGW := 2*floats.Dot(q, Sr) - 4*frob(B, delta)
		a, b := alpha*aGW, alpha*bGW
		if M != nil {
			b += (1 - alpha) * frob(M, delta)
		}
		alphaStep := quadMinStep(a, b)
		if alphaStep == 0 {
			break // no descent along the CG direction: stationary point
		}

		// 6c) Move and re-evaluate exactly (no incremental drift).
		step.Scale(alphaStep, delta)
		T.Add(T, &step)
		q, Sq = refresh()
		next := cost(q, Sq)
		decrease := loss - next
		loss = next
		if math.Abs(decrease)/math.Max(math.Abs(loss), costFloor) <= o.Tol {
			break
		}
	}

	return T, loss, nil
}
