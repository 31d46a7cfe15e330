package gromov_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/srgw/gromov"
	"github.com/katalvlaran/srgw/sbm"
)

// reducedConfig is a scaled-down copy of the demo pipeline: three cluster
// classes, three graphs each, node counts in [12,18).
func reducedConfig() sbm.Config {
	cfg := sbm.DefaultConfig()
	cfg.SamplesPerCluster = 3
	cfg.MinNodes = 12
	cfg.MaxNodes = 18
	cfg.Rand = rand.New(rand.NewSource(42))
	return cfg
}

// TestBarycenters_SBMToSolver feeds a generated SBM dataset straight into
// the barycenter solver and checks the full pipeline contract: every
// sampled structure fits inside the configured node range, the learned
// structure is a valid N×N symmetric matrix, and the logged loss sequence
// is non-increasing under the loss stopping criterion with warm starts.
func TestBarycenters_SBMToSolver(t *testing.T) {
	const N = 3

	cfg := reducedConfig()
	dataset, err := sbm.Generate(cfg)
	require.NoError(t, err)
	require.Len(t, dataset, len(cfg.Clusters)*cfg.SamplesPerCluster)
	for idx, s := range dataset {
		n, c := s.C.Dims()
		require.Equal(t, n, c, "sample %d structure must be square", idx)
		require.GreaterOrEqual(t, n, cfg.MinNodes, "sample %d below the node range", idx)
		require.Less(t, n, cfg.MaxNodes, "sample %d above the node range", idx)
	}

	opts := gromov.DefaultBarycenterOptions()
	opts.Tol = 1e-6
	opts.StopCriterion = gromov.StopLoss
	opts.WarmStart = true
	opts.InitC = isotropicInit(N)

	C, lg, err := gromov.SemirelaxedGromovBarycenters(
		N, dataset.Structures(), dataset.Weights(), dataset.Lambdas(), &opts)
	require.NoError(t, err)

	r, c := C.Dims()
	assert.Equal(t, N, r)
	assert.Equal(t, N, c)
	for i := 0; i < N; i++ {
		for j := 0; j < N; j++ {
			assert.GreaterOrEqual(t, C.At(i, j), 0.0, "entry (%d,%d) negative", i, j)
			assert.InDelta(t, C.At(j, i), C.At(i, j), lossSlack, "asymmetry at (%d,%d)", i, j)
		}
	}

	require.NotEmpty(t, lg.Loss)
	assert.True(t, math.IsInf(lg.Err[0], 1), "first residual is undefined")
	for it := 1; it < len(lg.Loss); it++ {
		assert.LessOrEqual(t, lg.Loss[it], lg.Loss[it-1]+lossSlack,
			"loss increased between iterations %d and %d", it-1, it)
	}
}

// TestFGWBarycenters_SBMToSolver runs the attributed variant of the same
// pipeline: one-hot block features flow from the generator into the fused
// solver, and both learned matrices come back well-shaped with a
// non-increasing loss.
func TestFGWBarycenters_SBMToSolver(t *testing.T) {
	const (
		N     = 3
		alpha = 0.5
	)

	cfg := reducedConfig()
	cfg.Features = true
	dataset, err := sbm.Generate(cfg)
	require.NoError(t, err)

	opts := gromov.DefaultBarycenterOptions()
	opts.Tol = 1e-6
	opts.StopCriterion = gromov.StopLoss
	opts.WarmStart = true
	opts.InitC = isotropicInit(N)

	C, Y, lg, err := gromov.SemirelaxedFGWBarycenters(
		N, dataset.Features(), dataset.Structures(), dataset.Weights(),
		dataset.Lambdas(), alpha, &opts)
	require.NoError(t, err)

	r, c := C.Dims()
	assert.Equal(t, N, r)
	assert.Equal(t, N, c)
	yr, yc := Y.Dims()
	assert.Equal(t, N, yr)
	assert.Equal(t, 3, yc, "features padded to the widest cluster count")

	require.NotEmpty(t, lg.Loss)
	for it := 1; it < len(lg.Loss); it++ {
		assert.LessOrEqual(t, lg.Loss[it], lg.Loss[it-1]+lossSlack,
			"loss increased between iterations %d and %d", it-1, it)
	}
}
