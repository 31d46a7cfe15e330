// SPDX-License-Identifier: MIT
// Package: srgw/gromov
//
// tensor.go — dense helpers shared by the pairwise solvers and the
// barycenter updates: probability validation, Frobenius inner products,
// marginals, the square-loss cost decomposition and the 1-D quadratic
// line search.
//
// Square-loss decomposition (symmetric C1, C2; T·1 = p fixed):
//
//	J(T) = Σ_{ijkl} (C1_ik − C2_jl)² T_ij T_kl
//	     = pᵀ(C1∘C1)p  +  qᵀ(C2∘C2)q  −  2·⟨C1·T·C2, T⟩,   q = Tᵀ·1
//
// The first term is constant (the row marginal is fixed), the second is
// quadratic in the free column marginal q, the third is the usual cross
// term. Gradient and exact line-search coefficients follow directly.

package gromov

import (
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Uniform returns the uniform probability vector of length n with entries
// 1/n, or nil when n < 1. This is the node-weight and mixture-coefficient
// helper used throughout the demo pipeline.
// Complexity: O(n) time, O(n) space.
func Uniform(n int) []float64 {
	if n < 1 {
		return nil
	}
	w := make([]float64, n)
	for i := range w {
		w[i] = 1.0 / float64(n)
	}
	return w
}

// isProbability reports whether v is a probability vector: every entry
// non-negative and the total within probSumTol of one.
func isProbability(v []float64) bool {
	if len(v) == 0 {
		return false
	}
	for _, x := range v {
		if x < 0 {
			return false
		}
	}
	return math.Abs(floats.Sum(v)-1.0) <= probSumTol
}

// checkStructure validates one (C, p) input pair under the given method tag.
// Returns the order of C on success.
func checkStructure(method string, C *mat.Dense, p []float64) (int, error) {
	if C == nil {
		return 0, fmt.Errorf("%s: nil structure matrix: %w", method, ErrEmptyDataset)
	}
	r, c := C.Dims()
	if r != c {
		return 0, fmt.Errorf("%s: structure is %dx%d: %w", method, r, c, ErrNonSquare)
	}
	if len(p) != r {
		return 0, fmt.Errorf("%s: |p|=%d vs order %d: %w", method, len(p), r, ErrDimensionMismatch)
	}
	if !isProbability(p) {
		return 0, fmt.Errorf("%s: %w", method, ErrBadWeights)
	}
	return r, nil
}

// frob computes the Frobenius inner product ⟨A, B⟩ = Σ_ij A_ij·B_ij.
// Both matrices must share dimensions (checked by the callers).
// Complexity: O(r·c) time, O(1) space.
func frob(a, b mat.Matrix) float64 {
	r, c := a.Dims()
	var s float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			s += a.At(i, j) * b.At(i, j)
		}
	}
	return s
}

// colSums returns the column sums of T, i.e. the second marginal Tᵀ·1.
// Complexity: O(r·c) time, O(c) space.
func colSums(T *mat.Dense) []float64 {
	r, c := T.Dims()
	q := make([]float64, c)
	for i := 0; i < r; i++ {
		row := T.RawRowView(i)
		for j := 0; j < c; j++ {
			q[j] += row[j]
		}
	}
	return q
}

// squared returns the elementwise square C∘C as a fresh matrix.
func squared(C *mat.Dense) *mat.Dense {
	var s mat.Dense
	s.MulElem(C, C)
	return &s
}

// quadMinStep minimizes g(α) = a·α² + b·α over α ∈ [0,1].
// Mirrors the standard 1-D quadratic line search of conditional gradient:
// interior optimum −b/(2a) when strictly convex, otherwise the better
// endpoint.
func quadMinStep(a, b float64) float64 {
	if a > 0 {
		alpha := -b / (2 * a)
		switch {
		case alpha < 0:
			return 0
		case alpha > 1:
			return 1
		default:
			return alpha
		}
	}
	// Concave or linear along the segment: compare endpoints g(0)=0, g(1)=a+b.
	if a+b < 0 {
		return 1
	}
	return 0
}

// sqDistMatrix returns the n×m matrix of squared Euclidean distances
// between the rows of X (n×d) and the rows of Y (m×d).
// Complexity: O(n·m·d) time, O(n·m) space.
func sqDistMatrix(X, Y *mat.Dense) *mat.Dense {
	n, d := X.Dims()
	m, _ := Y.Dims()
	M := mat.NewDense(n, m, nil)
	for i := 0; i < n; i++ {
		xi := X.RawRowView(i)
		for j := 0; j < m; j++ {
			yj := Y.RawRowView(j)
			var s float64
			for k := 0; k < d; k++ {
				diff := xi[k] - yj[k]
				s += diff * diff
			}
			M.Set(i, j, s)
		}
	}
	return M
}

// randDistanceMatrix draws N standard-normal points in the plane and
// returns their pairwise Euclidean distance matrix, rescaled to unit
// maximum. Used as the default random barycenter initialization.
// Complexity: O(N²) time, O(N²) space.
func randDistanceMatrix(n int, rng *rand.Rand) *mat.Dense {
	const planeDim = 2
	pts := mat.NewDense(n, planeDim, nil)
	for i := 0; i < n; i++ {
		for k := 0; k < planeDim; k++ {
			pts.Set(i, k, rng.NormFloat64())
		}
	}
	C := sqDistMatrix(pts, pts)
	maxD := 0.0
	C.Apply(func(_, _ int, v float64) float64 {
		d := math.Sqrt(v)
		if d > maxD {
			maxD = d
		}
		return d
	}, C)
	if maxD > 0 {
		C.Scale(1/maxD, C)
	}
	return C
}
