// SPDX-License-Identifier: MIT
// Package: srgw/sbm
//
// errors.go — sentinel errors for the sbm package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Generators attach context using %w wrapping; they never panic at
//     runtime — validation panics are confined to option constructors.

package sbm

import "errors"

// ErrTooFewBlocks indicates an empty block-size list (at least one block
// is required to sample a graph).
var ErrTooFewBlocks = errors.New("sbm: at least one block required")

// ErrBadBlockSize indicates a block of non-positive size.
var ErrBadBlockSize = errors.New("sbm: block size must be at least 1")

// ErrProbabilityShape indicates a block probability matrix whose order
// differs from the number of blocks (it must be square, k×k).
var ErrProbabilityShape = errors.New("sbm: probability matrix shape mismatch")

// ErrInvalidProbability indicates a probability outside the closed
// interval [0,1].
var ErrInvalidProbability = errors.New("sbm: probability out of range")

// ErrNeedRandSource indicates that a stochastic draw requires an RNG:
// supply WithSeed or WithRand (degenerate probabilities 0 and 1 are the
// only RNG-free cases).
var ErrNeedRandSource = errors.New("sbm: rng is required")

// ErrBadClusterList indicates an empty cluster-count list or a cluster
// count below one in a dataset Config.
var ErrBadClusterList = errors.New("sbm: invalid cluster-count list")

// ErrBadSampleCount indicates a non-positive SamplesPerCluster.
var ErrBadSampleCount = errors.New("sbm: samples per cluster must be at least 1")

// ErrBadNodeRange indicates an invalid node-count range: MinNodes must be
// at least 1 and strictly below MaxNodes (counts are drawn from
// [MinNodes, MaxNodes)).
var ErrBadNodeRange = errors.New("sbm: invalid node-count range")
