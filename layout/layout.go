// SPDX-License-Identifier: MIT
// Package: srgw/layout
//
// layout.go — 2D (or k-D) node coordinates from a structure matrix.
//
// Canonical model:
//   - Dissimilarity: D = 1 − C off the diagonal, 0 on it. Connected node
//     pairs of a {0,1} adjacency land at distance 0, disconnected pairs
//     at distance 1, so classical scaling pulls communities together.
//   - Embedding: Torgerson classical multidimensional scaling
//     (gonum/stat/mds); the leading dim coordinate columns are returned.
//
// Contract:
//   - C must be square; asymmetric inputs are symmetrized by averaging.
//   - 1 ≤ dim ≤ order of C (ErrBadDimension otherwise).
//   - Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   - Time: O(n³) (eigendecomposition), Space: O(n²).

package layout

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/mds"
)

const methodEmbed = "Embed"

// ErrNonSquare indicates a structure matrix whose row and column counts differ.
var ErrNonSquare = errors.New("layout: structure matrix is not square")

// ErrBadDimension indicates an embedding dimension outside [1, n].
var ErrBadDimension = errors.New("layout: embedding dimension out of range")

// ErrScalingFailed indicates that the classical-scaling eigendecomposition
// did not converge for the derived dissimilarity matrix.
var ErrScalingFailed = errors.New("layout: classical scaling failed")

// Embed computes dim-dimensional node coordinates for the structure
// matrix C via Torgerson classical scaling of the dissimilarity 1 − C.
// The result is n×dim, one coordinate row per node. Columns beyond the
// number of positive eigenvalues are zero.
func Embed(C *mat.Dense, dim int) (*mat.Dense, error) {
	// 1) Validate input shape and requested dimension.
	if C == nil {
		return nil, fmt.Errorf("%s: nil structure matrix: %w", methodEmbed, ErrNonSquare)
	}
	n, c := C.Dims()
	if n != c {
		return nil, fmt.Errorf("%s: structure is %dx%d: %w", methodEmbed, n, c, ErrNonSquare)
	}
	if dim < 1 || dim > n {
		return nil, fmt.Errorf("%s: dim=%d for order %d: %w", methodEmbed, dim, n, ErrBadDimension)
	}

	// 2) Dissimilarity 1 − C, symmetrized, zero diagonal.
	dis := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			avg := (C.At(i, j) + C.At(j, i)) / 2
			dis.SetSym(i, j, 1-avg)
		}
	}

	// 3) Classical scaling; coordinates arrive ordered by eigenvalue.
	var coords mat.Dense
	if _, err := mds.TorgersonScaling(&coords, nil, dis); err != nil {
		return nil, fmt.Errorf("%s: %v: %w", methodEmbed, err, ErrScalingFailed)
	}

	// 4) Keep the leading dim columns.
	out := mat.NewDense(n, dim, nil)
	out.Copy(coords.Slice(0, n, 0, dim))
	return out, nil
}
