// SPDX-License-Identifier: MIT
// Package: srgw/gromov
//
// errors.go — sentinel errors for the gromov package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site.
//   • Solvers attach context using %w wrapping; they never panic at runtime.

package gromov

import "errors"

// ErrEmptyDataset indicates that a barycenter was requested over zero input
// graphs, or that a pairwise solve received a nil structure matrix.
// Usage: if errors.Is(err, ErrEmptyDataset) { /* supply at least one graph */ }.
var ErrEmptyDataset = errors.New("gromov: empty dataset")

// ErrNonSquare indicates a structure matrix whose row and column counts
// differ. Structure matrices are adjacency/distance matrices and must be
// square by construction.
var ErrNonSquare = errors.New("gromov: structure matrix is not square")

// ErrDimensionMismatch indicates inconsistent sizes across inputs:
// weight vector length vs. matrix order, dataset length vs. lambdas length,
// feature row count vs. graph order, or a malformed initial guess.
var ErrDimensionMismatch = errors.New("gromov: dimension mismatch")

// ErrBadWeights indicates a node-weight vector that is not a probability
// distribution (negative entry, or entries not summing to one within
// probSumTol).
var ErrBadWeights = errors.New("gromov: node weights are not a probability vector")

// ErrBadLambdas indicates mixture coefficients that are not a probability
// distribution over the dataset.
var ErrBadLambdas = errors.New("gromov: mixture coefficients are not a probability vector")

// ErrBadSize indicates a non-positive barycenter size N.
var ErrBadSize = errors.New("gromov: barycenter size must be at least 1")

// ErrBadTolerance indicates a non-positive convergence tolerance.
var ErrBadTolerance = errors.New("gromov: tolerance must be positive")

// ErrBadAlpha indicates a fused trade-off parameter outside [0,1].
var ErrBadAlpha = errors.New("gromov: alpha out of range")

// ErrUnsupportedLoss indicates a Loss value the solvers do not implement.
// Only SquareLoss is supported; the enum exists so future losses can be
// added without changing signatures.
var ErrUnsupportedLoss = errors.New("gromov: unsupported loss function")
