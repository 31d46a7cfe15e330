// SPDX-License-Identifier: MIT
// Package: srgw/sbm
//
// options.go — functional options for single-graph sampling.
//
// Contract (strict):
//   • Options are functional (type Option func(*config)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs;
//     generators themselves never panic at runtime.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.
//   • No hidden globals; everything flows through the resolved config.

package sbm

import "math/rand"

// config aggregates the knobs of a single Graph draw. It is resolved once
// per call and passed by value (immutable to callers).
type config struct {
	// rng drives the Bernoulli edge trials; nil means "no randomness",
	// which is only acceptable for degenerate probabilities {0, 1}.
	rng *rand.Rand
}

// Option customizes one Graph draw by mutating the config before sampling
// begins. Applying N options costs O(N) time, O(1) space.
type Option func(*config)

// WithRand provides an explicit RNG for the edge trials.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("sbm: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// newConfig resolves all options in order (last wins).
func newConfig(opts ...Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
