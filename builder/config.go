// SPDX-License-Identifier: MIT
// Package: montecarlo/builder
//
// config.go — internal configuration and defaults.
//
// Defaults:
//   • idFn     = ExcelColumnIDFn        ("A".."Z","AA",...)
//   • rng      = nil, resolved to a crypto-seeded source at build time
//   • weightFn = DefaultWeightFn        (fair die)

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/montecarlo/die"
)

// builderConfig aggregates all knobs used by the factories.
// It is passed by value.
type builderConfig struct {
	// Face label strategy for Labeled dice: index -> label.
	idFn IDFn
	// Builder RNG; nil until resolved.
	rng *rand.Rand
	// Per-face weight generator.
	weightFn WeightFn
}

// newBuilderConfig applies options in order (last wins) over the defaults.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     ExcelColumnIDFn,
		weightFn: DefaultWeightFn,
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// resolveRNG fills in a crypto-seeded RNG when none was configured.
func (c *builderConfig) resolveRNG() error {
	if c.rng != nil {
		return nil
	}
	seed, err := die.NewSeed()
	if err != nil {
		return fmt.Errorf("resolveRNG: %w", err)
	}
	c.rng = rand.New(rand.NewSource(seed))

	return nil
}
