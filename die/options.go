// SPDX-License-Identifier: MIT
// Package: montecarlo/die
//
// options.go — functional options for New.
//
// Contract:
//   • Option constructors validate and panic on meaningless inputs.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.
//   • Without either option the die seeds its own stream from crypto/rand.

package die

import "math/rand"

// Option customizes a Die at construction time.
type Option func(*config)

// config collects construction knobs; resolved once inside New.
type config struct {
	// rng is the die's private random stream; nil means "seed from crypto/rand".
	rng *rand.Rand
}

// WithRand hands the die an explicit random stream. The die takes ownership:
// sharing one *rand.Rand between dice is only safe if they are never rolled
// concurrently. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("die: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithSeed gives the die a fresh deterministic stream seeded with seed.
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// newConfig applies opts in order (last wins) and fills the RNG default.
func newConfig(opts ...Option) (config, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		seed, err := NewSeed()
		if err != nil {
			return config{}, err
		}
		cfg.rng = rand.New(rand.NewSource(seed))
	}

	return cfg, nil
}
