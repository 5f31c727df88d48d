// SPDX-License-Identifier: MIT
// Package: montecarlo/builder
//
// options.go — functional options for the dice factories.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors validate and panic on meaningless inputs; the
//     factories themselves return errors and never panic.
//   • Determinism is explicit: seed via WithSeed or WithRand. Without either,
//     the factory draws a fresh seed from crypto/rand.
//   • No hidden globals; everything flows through builderConfig.

package builder

import (
	"math/rand"
)

// BuilderOption customizes a factory by mutating a builderConfig before the
// dice are built.
// Complexity: applying N options costs O(N) time, O(1) space.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the face label generator used by Labeled and LabeledSet:
// face index -> label. Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithRand provides the builder RNG. Each built die receives its own RNG
// seeded from it, and weight functions draw from it.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed seeds the builder RNG. Two factories called with the same seed and
// options return dice that roll identically.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn sets the per-face weight generator. It is called once per face,
// in face order, for every built die. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}
