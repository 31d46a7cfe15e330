// SPDX-License-Identifier: MIT
// Package: srgw/gromov
//
// types.go — option structs, enums and the convergence log.
//
// Contract (strict):
//   • Options are plain structs with documented deterministic defaults,
//     obtained via DefaultSolveOptions / DefaultBarycenterOptions.
//   • A nil options pointer means "use defaults" in every solver.
//   • No hidden globals; randomness flows through BarycenterOptions.Rand.

package gromov

import (
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// Loss selects the inner ground loss L(a, b) of the GW objective.
//
//   - SquareLoss — L(a,b) = (a-b)², the loss used throughout the srGW
//     paper; admits an exact line search and a closed-form barycenter
//     structure update.
type Loss int

const (
	// SquareLoss is the squared difference ground loss (the only one
	// currently implemented; see ErrUnsupportedLoss).
	SquareLoss Loss = iota
)

// StopCriterion selects the convergence test of the barycenter
// block-coordinate descent.
//
//   - StopLoss       — relative decrease of the aggregated transport loss.
//   - StopBarycenter — Frobenius distance between consecutive structure
//     matrices.
type StopCriterion int

const (
	// StopLoss stops on relative loss stagnation: |ΔL| / |L| ≤ Tol.
	StopLoss StopCriterion = iota

	// StopBarycenter stops on ‖C_t − C_{t-1}‖_F ≤ Tol.
	StopBarycenter
)

// Deterministic defaults (named, no magic numbers).
const (
	defaultSolveMaxIter = 1000  // conditional-gradient iterations per pairwise solve
	defaultSolveTol     = 1e-9  // relative loss decrease ending a pairwise solve
	defaultBaryMaxIter  = 1000  // outer block-coordinate-descent iterations
	defaultBaryTol      = 1e-6  // outer convergence tolerance
	defaultInitSeed     = 0     // seed of the fallback RNG for random init
	probSumTol          = 1e-8  // tolerance when validating probability vectors
	zeroMassTol         = 1e-16 // barycenter nodes below this mass get zeroed rows
)

// SolveOptions configures a single pairwise srGW / srFGW solve.
//
// Fields:
//   - MaxIter — maximum conditional-gradient iterations; non-positive
//     values fall back to the default.
//   - Tol     — relative loss-decrease threshold ending the solve;
//     non-positive values fall back to the default.
//   - Loss    — ground loss (SquareLoss).
//   - InitT   — optional initial transport plan (n×m). nil means the
//     product initialization p ⊗ uniform(m). The matrix is cloned; the
//     caller's copy is never mutated.
type SolveOptions struct {
	MaxIter int
	Tol     float64
	Loss    Loss
	InitT   *mat.Dense
}

// DefaultSolveOptions returns the documented pairwise-solver defaults.
func DefaultSolveOptions() SolveOptions {
	return SolveOptions{
		MaxIter: defaultSolveMaxIter,
		Tol:     defaultSolveTol,
		Loss:    SquareLoss,
	}
}

// BarycenterOptions configures the barycenter block-coordinate descent.
//
// Fields:
//   - MaxIter       — maximum outer iterations; non-positive → default.
//   - Tol           — convergence tolerance for StopCriterion; must be
//     positive (ErrBadTolerance otherwise), zero → default.
//   - StopCriterion — StopLoss or StopBarycenter.
//   - Loss          — ground loss (SquareLoss).
//   - WarmStart     — carry each graph's transport plan into the next
//     outer iteration as the initial plan of its pairwise solve. With
//     SquareLoss this makes the logged loss sequence non-increasing.
//   - InitC         — optional N×N initial structure. nil draws a random
//     2-D point cloud from Rand and uses its pairwise-distance matrix.
//   - InitY         — optional N×d initial feature barycenter (fused
//     solver only). nil means all-zero features.
//   - Rand          — RNG for random initialization. nil falls back to a
//     fixed-seed source so runs stay reproducible by default.
//   - Inner         — overrides for the pairwise solves. nil derives them
//     from this struct (Loss copied, pairwise defaults otherwise).
type BarycenterOptions struct {
	MaxIter       int
	Tol           float64
	StopCriterion StopCriterion
	Loss          Loss
	WarmStart     bool
	InitC         *mat.Dense
	InitY         *mat.Dense
	Rand          *rand.Rand
	Inner         *SolveOptions
}

// DefaultBarycenterOptions returns the documented BCD defaults.
func DefaultBarycenterOptions() BarycenterOptions {
	return BarycenterOptions{
		MaxIter:       defaultBaryMaxIter,
		Tol:           defaultBaryTol,
		StopCriterion: StopLoss,
		Loss:          SquareLoss,
		WarmStart:     true,
	}
}

// Log records the convergence history of a barycenter run.
//
// Loss holds the aggregated transport loss Σ_s λ_s·loss_s of every outer
// iteration (evaluated with the freshly solved plans against the structure
// those plans were solved for). Err holds the stop-criterion residual of
// the same iteration; Err[0] is +Inf since no previous iterate exists.
type Log struct {
	Loss []float64
	Err  []float64
}
