// SPDX-License-Identifier: MIT
// Package: srgw/sbm
//
// sbm.go — single-graph Stochastic Block Model sampling.
//
// Canonical model:
//   - Nodes 0..n−1 are grouped into consecutive blocks of the given sizes
//     (block 0 first). Node IDs double as row/column indices everywhere.
//   - Undirected, simple, unweighted: each unordered pair {u,v}, u<v, is
//     included independently with probability probs[block(u)][block(v)].
//     No self-loops, no multi-edges.
//
// Contract:
//   - len(sizes) ≥ 1 (else ErrTooFewBlocks); every size ≥ 1 (ErrBadBlockSize).
//   - probs square of order len(sizes) (ErrProbabilityShape), entries in
//     [0,1] (ErrInvalidProbability).
//   - RNG required unless every probability is 0 or 1 (ErrNeedRandSource).
//   - Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   - Time: O(n) vertices + O(n²) Bernoulli trials.
//   - Space: O(n + |E|) for the sampled graph.
//
// Determinism:
//   - Stable trial order (i asc, then j>i asc) ⇒ identical graphs for a
//     fixed seed.

package sbm

import (
	"fmt"

	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/mat"
)

// File-local constants (no magic literals; stable method tags and domains).
const (
	methodGraph   = "Graph"
	methodPlanted = "Planted"

	probMin = 0.0
	probMax = 1.0

	minBlocks    = 1
	minBlockSize = 1
	minNodes     = 1
)

// Graph samples one Stochastic Block Model graph with the given block
// sizes and block probability matrix.
func Graph(sizes []int, probs mat.Matrix, opts ...Option) (*simple.UndirectedGraph, error) {
	cfg := newConfig(opts...)

	// 1) Validate parameters early (fail fast, zero side-effects on invalid input).
	if len(sizes) < minBlocks {
		return nil, fmt.Errorf("%s: no blocks: %w", methodGraph, ErrTooFewBlocks)
	}
	n := 0
	for b, s := range sizes {
		if s < minBlockSize {
			return nil, fmt.Errorf("%s: sizes[%d]=%d: %w", methodGraph, b, s, ErrBadBlockSize)
		}
		n += s
	}
	if pr, pc := probs.Dims(); pr != len(sizes) || pc != len(sizes) {
		return nil, fmt.Errorf("%s: probs is %dx%d, want %dx%d: %w",
			methodGraph, pr, pc, len(sizes), len(sizes), ErrProbabilityShape)
	}
	stochastic := false
	for bi := 0; bi < len(sizes); bi++ {
		for bj := 0; bj < len(sizes); bj++ {
			p := probs.At(bi, bj)
			if p < probMin || p > probMax {
				return nil, fmt.Errorf("%s: probs[%d][%d]=%.6f not in [%.1f,%.1f]: %w",
					methodGraph, bi, bj, p, probMin, probMax, ErrInvalidProbability)
			}
			if p > probMin && p < probMax {
				stochastic = true
			}
		}
	}
	if stochastic && cfg.rng == nil {
		return nil, fmt.Errorf("%s: rng is required: %w", methodGraph, ErrNeedRandSource)
	}

	// 2) Precompute the node → block lookup (blocks are consecutive ranges).
	block := make([]int, n)
	at := 0
	for b, s := range sizes {
		for k := 0; k < s; k++ {
			block[at] = b
			at++
		}
	}

	// 3) Add all vertices deterministically (IDs 0..n−1).
	g := simple.NewUndirectedGraph()
	for i := 0; i < n; i++ {
		g.AddNode(simple.Node(i))
	}

	// 4) Bernoulli trial per unordered pair, in a stable documented order.
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			p := probs.At(block[i], block[j])
			switch {
			case p == probMax:
				g.SetEdge(simple.Edge{F: simple.Node(i), T: simple.Node(j)})
			case p == probMin:
				// no trial: the pair can never connect
			case cfg.rng.Float64() < p:
				g.SetEdge(simple.Edge{F: simple.Node(i), T: simple.Node(j)})
			}
		}
	}
	return g, nil
}

// Adjacency converts an undirected graph over node IDs 0..n−1 into its
// dense {0,1} structure matrix: square, symmetric, zero diagonal.
// Complexity: O(n² + |E|) time, O(n²) space.
func Adjacency(g *simple.UndirectedGraph, n int) *mat.Dense {
	C := mat.NewDense(n, n, nil)
	edges := g.Edges()
	for edges.Next() {
		e := edges.Edge()
		i, j := int(e.From().ID()), int(e.To().ID())
		C.Set(i, j, 1)
		C.Set(j, i, 1)
	}
	return C
}

// Planted builds the inputs of a k-cluster planted partition over exactly
// n nodes: sizes as even as possible (the first n mod k blocks carry one
// extra node) and the probability matrix with pIntra on the diagonal and
// pInter elsewhere (k=1 degenerates to the single entry pIntra). The
// returned sizes always sum to n.
func Planted(k, n int, pIntra, pInter float64) ([]int, *mat.Dense, error) {
	// 1) Validate the partition and both probabilities.
	if k < minBlocks {
		return nil, nil, fmt.Errorf("%s: k=%d: %w", methodPlanted, k, ErrTooFewBlocks)
	}
	if n < minNodes {
		return nil, nil, fmt.Errorf("%s: n=%d: %w", methodPlanted, n, ErrBadBlockSize)
	}
	for _, p := range []float64{pIntra, pInter} {
		if p < probMin || p > probMax {
			return nil, nil, fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodPlanted, p, probMin, probMax, ErrInvalidProbability)
		}
	}
	base, extra := n/k, n%k
	if base < minBlockSize {
		return nil, nil, fmt.Errorf("%s: n=%d too small for k=%d blocks: %w",
			methodPlanted, n, k, ErrBadBlockSize)
	}

	// 2) Sizes summing to exactly n, and the intra/inter probability matrix.
	sizes := make([]int, k)
	for b := range sizes {
		sizes[b] = base
		if b < extra {
			sizes[b]++
		}
	}
	probs := mat.NewDense(k, k, nil)
	for i := 0; i < k; i++ {
		for j := 0; j < k; j++ {
			if i == j {
				probs.Set(i, j, pIntra)
				continue
			}
			probs.Set(i, j, pInter)
		}
	}
	return sizes, probs, nil
}
