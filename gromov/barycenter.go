// SPDX-License-Identifier: MIT
// Package: srgw/gromov
//
// barycenter.go — srGW / srFGW barycenters by block-coordinate descent.
//
// Canonical model:
//   - Outer loop alternates two blocks until the stop criterion fires:
//     (i)  transport plans: one pairwise solve per input graph against
//          the current structure C (warm-started when WarmStart);
//     (ii) structure update (closed form for the square loss):
//          C = Σ_s λ_s·T_sᵀ·C_s·T_s ⊘ Σ_s λ_s·(q_s q_sᵀ),  q_s = T_sᵀ·1,
//          with zero-mass barycenter nodes zeroed instead of divided.
//   - The fused variant additionally tracks a feature barycenter
//     Y = diag(1/q)·Σ_s λ_s·T_sᵀ·Y_s and feeds per-iteration feature
//     cost matrices M_s = d²(Y_s, Y) into the pairwise solves.
//
// Contract:
//   - N ≥ 1; non-empty dataset of symmetric structure matrices (the
//     pairwise solver's precondition); lambdas and every p_s probability
//     vectors.
//   - The logged loss of iteration t is Σ_s λ_s·loss_s evaluated with the
//     plans of iteration t against the structure they were solved for.
//     With SquareLoss and WarmStart this sequence is non-increasing: the
//     structure update minimizes the aggregated objective for fixed plans
//     and each warm-started pairwise solve only improves its plan.
//   - Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   - Time: O(MaxIter · Σ_s innerIter_s · n_s·N·(n_s+N)).
//   - Space: O(Σ_s n_s·N) for the retained plans.
//
// Determinism:
//   - Randomness only in the structure initialization when InitC is nil;
//     a nil Rand falls back to a fixed-seed source.

package gromov

import (
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// File-local constants (stable method tags).
const (
	methodGromovBary = "SemirelaxedGromovBarycenters"
	methodFGWBary    = "SemirelaxedFGWBarycenters"

	minBarycenterSize = 1
)

// SemirelaxedGromovBarycenters learns an N-node structure matrix that best
// explains the dataset {(C_s, p_s)} under the semi-relaxed GW divergence,
// mixing the per-graph losses with the coefficients lambdas. Every C_s
// must be symmetric, like the pairwise solver inputs.
//
// Returns the learned structure (N×N), the convergence Log and an error.
// A nil opts means DefaultBarycenterOptions.
func SemirelaxedGromovBarycenters(N int, Cs []*mat.Dense, ps [][]float64, lambdas []float64, opts *BarycenterOptions) (*mat.Dense, *Log, error) {
	// 1) Resolve and validate the configuration and dataset.
	o, err := resolveBarycenterOptions(methodGromovBary, opts)
	if err != nil {
		return nil, nil, err
	}
	if err = checkDataset(methodGromovBary, N, Cs, ps, lambdas); err != nil {
		return nil, nil, err
	}
	C, err := initStructure(methodGromovBary, N, &o)
	if err != nil {
		return nil, nil, err
	}
	inner := innerOptions(&o)

	// 2) Block-coordinate descent.
	plans := make([]*mat.Dense, len(Cs))
	lg := &Log{}
	prevLoss := math.Inf(1)
	for it := 0; it < o.MaxIter; it++ {
		// 2a) Transport block: one pairwise srGW solve per input graph.
		var curr float64
		for s := range Cs {
			io := inner
			if o.WarmStart {
				io.InitT = plans[s] // nil on the first sweep → product init
			}
			T, l, serr := solvePairwise(methodGromovBary, nil, Cs[s], C, ps[s], alphaMax, &io)
			if serr != nil {
				return nil, nil, fmt.Errorf("%s: graph %d: %w", methodGromovBary, s, serr)
			}
			plans[s] = T
			curr += lambdas[s] * l
		}

		// 2b) Structure block: closed-form square-loss update.
		next := updateStructure(plans, Cs, lambdas, N)

		// 2c) Stop-criterion residual and bookkeeping.
		res := residual(&o, it, curr, prevLoss, next, C)
		lg.Loss = append(lg.Loss, curr)
		lg.Err = append(lg.Err, res)
		prevLoss = curr
		C = next
		if res <= o.Tol {
			break
		}
	}
	return C, lg, nil
}

// SemirelaxedFGWBarycenters learns a structure matrix *and* a node-feature
// matrix jointly, for datasets of attributed graphs {(C_s, Y_s, p_s)}.
// alpha trades the structure (GW) term against the feature (Wasserstein)
// term exactly as in the pairwise fused solver.
//
// Returns the learned structure (N×N), the learned features (N×d), the
// convergence Log and an error.
func SemirelaxedFGWBarycenters(N int, Ys, Cs []*mat.Dense, ps [][]float64, lambdas []float64, alpha float64, opts *BarycenterOptions) (*mat.Dense, *mat.Dense, *Log, error) {
	// 1) Resolve and validate (structure dataset + feature matrices).
	o, err := resolveBarycenterOptions(methodFGWBary, opts)
	if err != nil {
		return nil, nil, nil, err
	}
	if err = checkDataset(methodFGWBary, N, Cs, ps, lambdas); err != nil {
		return nil, nil, nil, err
	}
	if alpha < alphaMin || alpha > alphaMax {
		return nil, nil, nil, fmt.Errorf("%s: alpha=%g not in [%g,%g]: %w",
			methodFGWBary, alpha, alphaMin, alphaMax, ErrBadAlpha)
	}
	dim, err := checkFeatures(methodFGWBary, Ys, Cs)
	if err != nil {
		return nil, nil, nil, err
	}
	C, err := initStructure(methodFGWBary, N, &o)
	if err != nil {
		return nil, nil, nil, err
	}
	Y := mat.NewDense(N, dim, nil)
	if o.InitY != nil {
		if yr, yc := o.InitY.Dims(); yr != N || yc != dim {
			return nil, nil, nil, fmt.Errorf("%s: InitY is %dx%d, want %dx%d: %w",
				methodFGWBary, yr, yc, N, dim, ErrDimensionMismatch)
		}
		Y = mat.DenseCopyOf(o.InitY)
	}
	inner := innerOptions(&o)

	// 2) Block-coordinate descent over plans, features and structure.
	plans := make([]*mat.Dense, len(Cs))
	lg := &Log{}
	prevLoss := math.Inf(1)
	for it := 0; it < o.MaxIter; it++ {
		// 2a) Transport block with fresh feature cost matrices.
		var curr float64
		for s := range Cs {
			M := sqDistMatrix(Ys[s], Y)
			io := inner
			if o.WarmStart {
				io.InitT = plans[s]
			}
			T, l, serr := solvePairwise(methodFGWBary, M, Cs[s], C, ps[s], alpha, &io)
			if serr != nil {
				return nil, nil, nil, fmt.Errorf("%s: graph %d: %w", methodFGWBary, s, serr)
			}
			plans[s] = T
			curr += lambdas[s] * l
		}

		// 2b) Feature block, then structure block.
		Y = updateFeatures(plans, Ys, lambdas, N, dim)
		next := updateStructure(plans, Cs, lambdas, N)

		// 2c) Stop-criterion residual and bookkeeping.
		res := residual(&o, it, curr, prevLoss, next, C)
		lg.Loss = append(lg.Loss, curr)
		lg.Err = append(lg.Err, res)
		prevLoss = curr
		C = next
		if res <= o.Tol {
			break
		}
	}
	return C, Y, lg, nil
}

// resolveBarycenterOptions applies nil/zero-value fallbacks and validates
// the numeric fields shared by both barycenter entry points.
func resolveBarycenterOptions(method string, opts *BarycenterOptions) (BarycenterOptions, error) {
	o := DefaultBarycenterOptions()
	if opts != nil {
		o = *opts
	}
	if o.MaxIter < 1 {
		o.MaxIter = defaultBaryMaxIter
	}
	if o.Tol < 0 {
		return o, fmt.Errorf("%s: tol=%g: %w", method, o.Tol, ErrBadTolerance)
	}
	if o.Tol == 0 {
		o.Tol = defaultBaryTol
	}
	if o.Loss != SquareLoss {
		return o, fmt.Errorf("%s: loss=%d: %w", method, o.Loss, ErrUnsupportedLoss)
	}
	if o.Rand == nil {
		o.Rand = rand.New(rand.NewSource(defaultInitSeed))
	}
	return o, nil
}

// innerOptions derives the pairwise-solver options from the resolved
// barycenter options (explicit override wins; InitT is managed per sweep).
func innerOptions(o *BarycenterOptions) SolveOptions {
	if o.Inner != nil {
		io := *o.Inner
		io.InitT = nil
		return io
	}
	io := DefaultSolveOptions()
	io.Loss = o.Loss
	return io
}

// checkDataset validates N, the structure matrices, the per-graph weights
// and the mixture coefficients.
func checkDataset(method string, N int, Cs []*mat.Dense, ps [][]float64, lambdas []float64) error {
	if N < minBarycenterSize {
		return fmt.Errorf("%s: N=%d: %w", method, N, ErrBadSize)
	}
	if len(Cs) == 0 {
		return fmt.Errorf("%s: %w", method, ErrEmptyDataset)
	}
	if len(ps) != len(Cs) || len(lambdas) != len(Cs) {
		return fmt.Errorf("%s: |Cs|=%d |ps|=%d |lambdas|=%d: %w",
			method, len(Cs), len(ps), len(lambdas), ErrDimensionMismatch)
	}
	for s := range Cs {
		if _, err := checkStructure(method, Cs[s], ps[s]); err != nil {
			return fmt.Errorf("graph %d: %w", s, err)
		}
	}
	if !isProbability(lambdas) {
		return fmt.Errorf("%s: %w", method, ErrBadLambdas)
	}
	return nil
}

// checkFeatures validates the per-graph feature matrices and returns their
// common column dimension.
func checkFeatures(method string, Ys, Cs []*mat.Dense) (int, error) {
	if len(Ys) != len(Cs) {
		return 0, fmt.Errorf("%s: |Ys|=%d |Cs|=%d: %w", method, len(Ys), len(Cs), ErrDimensionMismatch)
	}
	dim := -1
	for s := range Ys {
		if Ys[s] == nil {
			return 0, fmt.Errorf("%s: nil features for graph %d: %w", method, s, ErrEmptyDataset)
		}
		yr, yc := Ys[s].Dims()
		n, _ := Cs[s].Dims()
		if yr != n {
			return 0, fmt.Errorf("%s: graph %d has %d nodes but %d feature rows: %w",
				method, s, n, yr, ErrDimensionMismatch)
		}
		if dim == -1 {
			dim = yc
		} else if yc != dim {
			return 0, fmt.Errorf("%s: graph %d feature dim %d, want %d: %w",
				method, s, yc, dim, ErrDimensionMismatch)
		}
	}
	return dim, nil
}

// initStructure clones InitC (validating its shape) or draws the default
// random distance-matrix initialization from the resolved RNG.
func initStructure(method string, N int, o *BarycenterOptions) (*mat.Dense, error) {
	if o.InitC == nil {
		return randDistanceMatrix(N, o.Rand), nil
	}
	if r, c := o.InitC.Dims(); r != N || c != N {
		return nil, fmt.Errorf("%s: InitC is %dx%d, want %dx%d: %w",
			method, r, c, N, N, ErrDimensionMismatch)
	}
	return mat.DenseCopyOf(o.InitC), nil
}

// updateStructure performs the closed-form square-loss structure update
// C = Σ_s λ_s·T_sᵀ·C_s·T_s ⊘ Σ_s λ_s·(q_s q_sᵀ) with a zero-mass guard.
// The denominator accumulates one outer product per plan: setting
// ∂/∂C_jl of Σ_s λ_s Σ_ik (C_s[ik]−C[jl])²·T_s[ij]·T_s[kl] to zero gives
// C_jl = Σ_s λ_s·(T_sᵀC_sT_s)_jl / Σ_s λ_s·q_sj·q_sl, and only when the
// plans share one column marginal does the sum collapse to q qᵀ.
func updateStructure(plans, Cs []*mat.Dense, lambdas []float64, N int) *mat.Dense {
	num := mat.NewDense(N, N, nil)
	den := mat.NewDense(N, N, nil)
	for s := range plans {
		var tmp, quad, outer mat.Dense
		tmp.Mul(Cs[s], plans[s])     // n_s×N
		quad.Mul(plans[s].T(), &tmp) // N×N
		quad.Scale(lambdas[s], &quad)
		num.Add(num, &quad)
		qs := mat.NewVecDense(N, colSums(plans[s]))
		outer.Outer(lambdas[s], qs, qs)
		den.Add(den, &outer)
	}
	for i := 0; i < N; i++ {
		for j := 0; j < N; j++ {
			d := den.At(i, j)
			if d <= zeroMassTol {
				num.Set(i, j, 0) // node received no mass: leave the entry empty
				continue
			}
			num.Set(i, j, num.At(i, j)/d)
		}
	}
	return num
}

// updateFeatures performs the feature barycenter update
// Y = diag(1/q)·Σ_s λ_s·T_sᵀ·Y_s with the same zero-mass guard.
func updateFeatures(plans, Ys []*mat.Dense, lambdas []float64, N, dim int) *mat.Dense {
	Y := mat.NewDense(N, dim, nil)
	q := make([]float64, N)
	for s := range plans {
		var part mat.Dense
		part.Mul(plans[s].T(), Ys[s]) // N×d
		part.Scale(lambdas[s], &part)
		Y.Add(Y, &part)
		floats.AddScaled(q, lambdas[s], colSums(plans[s]))
	}
	for i := 0; i < N; i++ {
		if q[i] <= zeroMassTol {
			for j := 0; j < dim; j++ {
				Y.Set(i, j, 0)
			}
			continue
		}
		row := Y.RawRowView(i)
		floats.Scale(1/q[i], row)
	}
	return Y
}

// residual evaluates the configured stop criterion for one BCD iteration.
func residual(o *BarycenterOptions, it int, curr, prev float64, next, C *mat.Dense) float64 {
	if o.StopCriterion == StopBarycenter {
		var diff mat.Dense
		diff.Sub(next, C)
		return math.Sqrt(frob(&diff, &diff))
	}
	if it == 0 {
		return math.Inf(1)
	}
	return math.Abs(curr-prev) / math.Max(math.Abs(prev), costFloor)
}
