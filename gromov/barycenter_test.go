package gromov_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/srgw/gromov"
)

// lossSlack absorbs float noise when asserting the monotonicity that the
// warm-started block-coordinate descent guarantees analytically.
const lossSlack = 1e-8

// smallDataset builds a deterministic mix of paths and cycles with uniform
// node weights — enough topological variety to make the barycenter move.
func smallDataset() (Cs []*mat.Dense, ps [][]float64, lambdas []float64) {
	for _, n := range []int{5, 6, 7} {
		Cs = append(Cs, pathAdjacency(n))
		ps = append(ps, gromov.Uniform(n))
		Cs = append(Cs, cycleAdjacency(n))
		ps = append(ps, gromov.Uniform(n))
	}
	lambdas = gromov.Uniform(len(Cs))
	return Cs, ps, lambdas
}

// isotropicInit mirrors the demo pipeline's initial guess: diag 0.6,
// off-diagonal 0.2.
func isotropicInit(n int) *mat.Dense {
	C := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				C.Set(i, j, 0.6)
			} else {
				C.Set(i, j, 0.2)
			}
		}
	}
	return C
}

// TestBarycenters_Validation walks the sentinel table of the barycenter
// entry point.
func TestBarycenters_Validation(t *testing.T) {
	Cs, ps, lambdas := smallDataset()

	_, _, err := gromov.SemirelaxedGromovBarycenters(0, Cs, ps, lambdas, nil)
	assert.ErrorIs(t, err, gromov.ErrBadSize, "N=0")

	_, _, err = gromov.SemirelaxedGromovBarycenters(3, nil, nil, nil, nil)
	assert.ErrorIs(t, err, gromov.ErrEmptyDataset, "no graphs")

	_, _, err = gromov.SemirelaxedGromovBarycenters(3, Cs, ps[:1], lambdas, nil)
	assert.ErrorIs(t, err, gromov.ErrDimensionMismatch, "ps shorter than Cs")

	badLambdas := make([]float64, len(Cs)) // all zero, does not sum to one
	_, _, err = gromov.SemirelaxedGromovBarycenters(3, Cs, ps, badLambdas, nil)
	assert.ErrorIs(t, err, gromov.ErrBadLambdas, "degenerate mixture coefficients")

	badTol := gromov.DefaultBarycenterOptions()
	badTol.Tol = -1
	_, _, err = gromov.SemirelaxedGromovBarycenters(3, Cs, ps, lambdas, &badTol)
	assert.ErrorIs(t, err, gromov.ErrBadTolerance, "negative tolerance")

	badInit := gromov.DefaultBarycenterOptions()
	badInit.InitC = mat.NewDense(2, 2, nil)
	_, _, err = gromov.SemirelaxedGromovBarycenters(3, Cs, ps, lambdas, &badInit)
	assert.ErrorIs(t, err, gromov.ErrDimensionMismatch, "InitC shape vs. N")

	badLoss := gromov.DefaultBarycenterOptions()
	badLoss.Loss = gromov.Loss(7)
	_, _, err = gromov.SemirelaxedGromovBarycenters(3, Cs, ps, lambdas, &badLoss)
	assert.ErrorIs(t, err, gromov.ErrUnsupportedLoss, "unknown loss enum value")
}

// TestBarycenters_ShapeAndLog: the learned structure has the requested
// size, stays symmetric for symmetric inputs, and the log traces at least
// one iteration with matching residuals.
func TestBarycenters_ShapeAndLog(t *testing.T) {
	Cs, ps, lambdas := smallDataset()
	const N = 3

	opts := gromov.DefaultBarycenterOptions()
	opts.InitC = isotropicInit(N)
	opts.Tol = 1e-6
	opts.MaxIter = 100

	C, lg, err := gromov.SemirelaxedGromovBarycenters(N, Cs, ps, lambdas, &opts)
	require.NoError(t, err)

	r, c := C.Dims()
	assert.Equal(t, N, r, "barycenter rows")
	assert.Equal(t, N, c, "barycenter cols")
	require.NotEmpty(t, lg.Loss, "the log must trace at least one iteration")
	assert.Len(t, lg.Err, len(lg.Loss), "one residual per loss entry")
	assert.True(t, math.IsInf(lg.Err[0], 1), "no residual exists before the first iteration")

	for i := 0; i < N; i++ {
		for j := 0; j < N; j++ {
			assert.InDelta(t, C.At(j, i), C.At(i, j), lossSlack,
				"symmetric inputs must yield a symmetric barycenter")
			assert.False(t, math.IsNaN(C.At(i, j)), "no NaN entries")
		}
	}
}

// TestBarycenters_LossNonIncreasing: warm-started square-loss BCD decreases
// the aggregated transport loss at every recorded iteration.
func TestBarycenters_LossNonIncreasing(t *testing.T) {
	Cs, ps, lambdas := smallDataset()

	opts := gromov.DefaultBarycenterOptions()
	opts.InitC = isotropicInit(3)
	opts.WarmStart = true
	opts.StopCriterion = gromov.StopLoss
	opts.MaxIter = 50

	_, lg, err := gromov.SemirelaxedGromovBarycenters(3, Cs, ps, lambdas, &opts)
	require.NoError(t, err)
	for i := 1; i < len(lg.Loss); i++ {
		assert.LessOrEqual(t, lg.Loss[i], lg.Loss[i-1]+lossSlack,
			"loss increased between iterations %d and %d", i-1, i)
	}
}

// TestBarycenters_DeterministicRandomInit: with InitC nil and no explicit
// RNG, two runs must agree entry for entry (fixed fallback seed).
func TestBarycenters_DeterministicRandomInit(t *testing.T) {
	Cs, ps, lambdas := smallDataset()

	opts := gromov.DefaultBarycenterOptions()
	opts.MaxIter = 10

	first, _, err := gromov.SemirelaxedGromovBarycenters(3, Cs, ps, lambdas, &opts)
	require.NoError(t, err)
	second, _, err := gromov.SemirelaxedGromovBarycenters(3, Cs, ps, lambdas, &opts)
	require.NoError(t, err)
	assert.True(t, mat.EqualApprox(first, second, 0), "runs with the default seed must be identical")
}

// TestBarycenters_StopBarycenter exercises the structure-distance stop
// criterion end to end.
func TestBarycenters_StopBarycenter(t *testing.T) {
	Cs, ps, lambdas := smallDataset()

	opts := gromov.DefaultBarycenterOptions()
	opts.InitC = isotropicInit(3)
	opts.StopCriterion = gromov.StopBarycenter
	opts.Tol = 1e-8
	opts.MaxIter = 200

	_, lg, err := gromov.SemirelaxedGromovBarycenters(3, Cs, ps, lambdas, &opts)
	require.NoError(t, err)
	require.NotEmpty(t, lg.Err)
	last := lg.Err[len(lg.Err)-1]
	ended := last <= opts.Tol || len(lg.Loss) == opts.MaxIter
	assert.True(t, ended, "run must end by residual or by iteration budget")
}

// oneHot builds an n×k one-hot feature matrix assigning node i to class
// i mod k — a cheap stand-in for block-membership labels.
func oneHot(n, k int) *mat.Dense {
	Y := mat.NewDense(n, k, nil)
	for i := 0; i < n; i++ {
		Y.Set(i, i%k, 1)
	}
	return Y
}

// TestFGWBarycenters_ShapesAndLoss: the fused variant returns both blocks
// with the right shapes and keeps the monotone-loss property.
func TestFGWBarycenters_ShapesAndLoss(t *testing.T) {
	Cs, ps, lambdas := smallDataset()
	Ys := make([]*mat.Dense, len(Cs))
	for s, C := range Cs {
		n, _ := C.Dims()
		Ys[s] = oneHot(n, 2)
	}

	const (
		N     = 3
		alpha = 0.5
	)
	opts := gromov.DefaultBarycenterOptions()
	opts.InitC = isotropicInit(N)
	opts.MaxIter = 50

	C, Y, lg, err := gromov.SemirelaxedFGWBarycenters(N, Ys, Cs, ps, lambdas, alpha, &opts)
	require.NoError(t, err)

	r, c := C.Dims()
	assert.Equal(t, N, r)
	assert.Equal(t, N, c)
	yr, yc := Y.Dims()
	assert.Equal(t, N, yr, "feature barycenter rows = N")
	assert.Equal(t, 2, yc, "feature barycenter keeps the input dimension")
	require.NotEmpty(t, lg.Loss)
	for i := 1; i < len(lg.Loss); i++ {
		assert.LessOrEqual(t, lg.Loss[i], lg.Loss[i-1]+lossSlack,
			"fused loss increased between iterations %d and %d", i-1, i)
	}
}

// TestFGWBarycenters_Validation covers the fused-specific sentinel paths.
func TestFGWBarycenters_Validation(t *testing.T) {
	Cs, ps, lambdas := smallDataset()
	Ys := make([]*mat.Dense, len(Cs))
	for s, C := range Cs {
		n, _ := C.Dims()
		Ys[s] = oneHot(n, 2)
	}

	_, _, _, err := gromov.SemirelaxedFGWBarycenters(3, Ys[:1], Cs, ps, lambdas, 0.5, nil)
	assert.ErrorIs(t, err, gromov.ErrDimensionMismatch, "Ys shorter than Cs")

	_, _, _, err = gromov.SemirelaxedFGWBarycenters(3, Ys, Cs, ps, lambdas, 2, nil)
	assert.ErrorIs(t, err, gromov.ErrBadAlpha, "alpha above one")

	ragged := make([]*mat.Dense, len(Cs))
	copy(ragged, Ys)
	ragged[1] = oneHot(3, 2) // wrong row count for its graph
	_, _, _, err = gromov.SemirelaxedFGWBarycenters(3, ragged, Cs, ps, lambdas, 0.5, nil)
	assert.ErrorIs(t, err, gromov.ErrDimensionMismatch, "feature rows vs. node count")
}
