// Package sbm generates synthetic graph datasets from the Stochastic
// Block Model — the planted-cluster random graph family with higher
// intra-cluster than inter-cluster edge probability.
//
// 🚀 What is the Stochastic Block Model?
//
//	Nodes are partitioned into blocks; every unordered node pair {u,v}
//	is connected independently with probability P[block(u)][block(v)].
//	With a high diagonal (intra) and low off-diagonal (inter) P the model
//	plants a community structure; with one block it degenerates to the
//	Erdős–Rényi model.
//
// ✨ Key features:
//   - Graph — one SBM draw as a gonum *simple.UndirectedGraph
//   - Adjacency — dense {0,1} symmetric structure matrix with zero diagonal
//   - Planted — intra/inter probability matrix + near-even block sizes
//   - Generate — whole labeled datasets (structures, uniform node weights,
//     optional one-hot block-membership features, cluster-count labels)
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/srgw/sbm"
//
//	sizes, probs, _ := sbm.Planted(2, 40, 0.9, 0.1)
//	g, err := sbm.Graph(sizes, probs, sbm.WithSeed(7))
//
//	cfg := sbm.DefaultConfig()          // the demo pipeline constants
//	dataset, err := sbm.Generate(cfg)   // 60 labeled graphs
//
// Determinism:
//
//	All stochastic choices flow through explicit *rand.Rand sources.
//	Generate seeds every graph's topology by its sample index within its
//	cluster class, so datasets are reproducible draw for draw.
package sbm
