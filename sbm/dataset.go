// SPDX-License-Identifier: MIT
// Package: srgw/sbm
//
// dataset.go — labeled multi-graph dataset generation.
//
// Canonical pipeline (one dataset = one Config):
//   - For every cluster count in Clusters, SamplesPerCluster graphs.
//   - Per graph: node count drawn uniformly from [MinNodes, MaxNodes),
//     planted-partition probabilities via Planted, topology sampled by
//     Graph with a per-graph seed equal to the sample index within its
//     cluster class. Node counts come from Config.Rand; topology seeds
//     are positional, so two configs with the same Rand stream produce
//     identical datasets.
//
// Contract:
//   - Config is validated before any sampling (sentinel errors).
//   - Samples carry the dense structure matrix, uniform node weights, the
//     cluster-count label, and (with Features) one-hot block-membership
//     features padded to the widest cluster count in the dataset.

package sbm

import (
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// Demo pipeline defaults (the srGW barycenter example constants).
const (
	defaultSeed              = 42
	defaultSamplesPerCluster = 20
	defaultMinNodes          = 30
	defaultMaxNodes          = 50
	defaultIntraProb         = 0.9
	defaultInterProb         = 0.1

	methodGenerate = "Generate"
)

// Sample is one generated graph with everything a transport solver needs.
type Sample struct {
	// C is the dense {0,1} structure matrix: square, symmetric, zero diagonal.
	C *mat.Dense
	// P is the uniform node-weight vector (sums to one, length = order of C).
	P []float64
	// Y holds one-hot block-membership features, nil unless Config.Features.
	Y *mat.Dense
	// Label is the planted cluster count of this sample.
	Label int
}

// Dataset is an ordered collection of samples, grouped by cluster count in
// the order Config.Clusters lists them.
type Dataset []Sample

// Structures collects the structure matrices, aligned with the dataset order.
func (d Dataset) Structures() []*mat.Dense {
	out := make([]*mat.Dense, len(d))
	for i := range d {
		out[i] = d[i].C
	}
	return out
}

// Weights collects the node-weight vectors, aligned with the dataset order.
func (d Dataset) Weights() [][]float64 {
	out := make([][]float64, len(d))
	for i := range d {
		out[i] = d[i].P
	}
	return out
}

// Features collects the feature matrices, aligned with the dataset order.
// Entries are nil when the dataset was generated without features.
func (d Dataset) Features() []*mat.Dense {
	out := make([]*mat.Dense, len(d))
	for i := range d {
		out[i] = d[i].Y
	}
	return out
}

// Labels collects the planted cluster counts, aligned with the dataset order.
func (d Dataset) Labels() []int {
	out := make([]int, len(d))
	for i := range d {
		out[i] = d[i].Label
	}
	return out
}

// Lambdas returns uniform mixture coefficients over the dataset (1/len
// each), the standard choice when feeding a barycenter solver.
func (d Dataset) Lambdas() []float64 {
	if len(d) == 0 {
		return nil
	}
	l := make([]float64, len(d))
	for i := range l {
		l[i] = 1.0 / float64(len(d))
	}
	return l
}

// Config parameterizes Generate.
//
// Fields:
//   - Clusters          — planted cluster counts, one dataset class each.
//   - SamplesPerCluster — graphs per class (≥1).
//   - MinNodes/MaxNodes — node counts drawn uniformly from [Min, Max).
//   - IntraProb/InterProb — planted-partition edge probabilities.
//   - Features          — attach one-hot block-membership features.
//   - Rand              — RNG for the node-count draws; nil falls back to
//     a fixed-seed source so datasets stay reproducible by default.
type Config struct {
	Clusters          []int
	SamplesPerCluster int
	MinNodes          int
	MaxNodes          int
	IntraProb         float64
	InterProb         float64
	Features          bool
	Rand              *rand.Rand
}

// DefaultConfig returns the demo pipeline constants: cluster counts
// {1,2,3}, 20 samples each (60 graphs), node counts in [30,50),
// p_intra=0.9, p_inter=0.1, fixed seed 42.
func DefaultConfig() Config {
	return Config{
		Clusters:          []int{1, 2, 3},
		SamplesPerCluster: defaultSamplesPerCluster,
		MinNodes:          defaultMinNodes,
		MaxNodes:          defaultMaxNodes,
		IntraProb:         defaultIntraProb,
		InterProb:         defaultInterProb,
	}
}

// Generate samples the full labeled dataset described by cfg.
func Generate(cfg Config) (Dataset, error) {
	// 1) Validate the configuration (fail fast, nothing sampled on error).
	if len(cfg.Clusters) == 0 {
		return nil, fmt.Errorf("%s: empty cluster list: %w", methodGenerate, ErrBadClusterList)
	}
	maxClusters := 0
	for _, k := range cfg.Clusters {
		if k < minBlocks {
			return nil, fmt.Errorf("%s: cluster count %d: %w", methodGenerate, k, ErrBadClusterList)
		}
		if k > maxClusters {
			maxClusters = k
		}
	}
	if cfg.SamplesPerCluster < 1 {
		return nil, fmt.Errorf("%s: samples=%d: %w", methodGenerate, cfg.SamplesPerCluster, ErrBadSampleCount)
	}
	if cfg.MinNodes < minNodes || cfg.MaxNodes <= cfg.MinNodes {
		return nil, fmt.Errorf("%s: range [%d,%d): %w", methodGenerate, cfg.MinNodes, cfg.MaxNodes, ErrBadNodeRange)
	}
	for _, p := range []float64{cfg.IntraProb, cfg.InterProb} {
		if p < probMin || p > probMax {
			return nil, fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodGenerate, p, probMin, probMax, ErrInvalidProbability)
		}
	}
	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(defaultSeed))
	}

	// 2) Sample class by class, graph by graph.
	dataset := make(Dataset, 0, len(cfg.Clusters)*cfg.SamplesPerCluster)
	for _, k := range cfg.Clusters {
		for i := 0; i < cfg.SamplesPerCluster; i++ {
			n := cfg.MinNodes + rng.Intn(cfg.MaxNodes-cfg.MinNodes)
			sizes, probs, err := Planted(k, n, cfg.IntraProb, cfg.InterProb)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", methodGenerate, err)
			}
			// Per-graph topology seed = sample index within its class.
			g, err := Graph(sizes, probs, WithSeed(int64(i)))
			if err != nil {
				return nil, fmt.Errorf("%s: %w", methodGenerate, err)
			}
			sample := Sample{
				C:     Adjacency(g, n), // sizes sum to exactly n
				P:     uniformWeights(n),
				Label: k,
			}
			if cfg.Features {
				sample.Y = blockFeatures(sizes, n, maxClusters)
			}
			dataset = append(dataset, sample)
		}
	}
	return dataset, nil
}

// uniformWeights returns the uniform probability vector of length n.
func uniformWeights(n int) []float64 {
	w := make([]float64, n)
	for i := range w {
		w[i] = 1.0 / float64(n)
	}
	return w
}

// blockFeatures one-hot encodes block membership, padded to dim columns
// so every sample of one dataset shares the feature dimension.
func blockFeatures(sizes []int, n, dim int) *mat.Dense {
	Y := mat.NewDense(n, dim, nil)
	at := 0
	for b, s := range sizes {
		for k := 0; k < s; k++ {
			Y.Set(at, b, 1)
			at++
		}
	}
	return Y
}
