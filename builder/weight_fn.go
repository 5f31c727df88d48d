// SPDX-License-Identifier: MIT

// Package builder provides the face weight distributions applied by the
// dice factories.
package builder

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/montecarlo/die"
)

// WeightFn produces one face weight from the builder RNG. It must be
// deterministic for a given RNG state. The factories always pass a non-nil
// RNG; a nil rng yields die.DefaultWeight so the functions are usable on
// their own.
type WeightFn func(rng *rand.Rand) float64

// DefaultWeightFn always returns die.DefaultWeight (a fair die).
// Never panics.
func DefaultWeightFn(_ *rand.Rand) float64 {
	return die.DefaultWeight
}

// ConstantWeightFn always yields value. Every face gets the same weight, so
// the die stays fair for any positive value.
// Panics if value ≤ 0 or is not finite.
func ConstantWeightFn(value float64) WeightFn {
	if !(value > 0) || math.IsInf(value, 0) {
		panic(fmt.Sprintf("ConstantWeightFn: value must be finite and > 0, got %g", value))
	}
	return func(_ *rand.Rand) float64 {
		return value
	}
}

// UniformWeightFn samples weights uniformly from [min, max).
// Panics unless 0 ≤ min ≤ max and max > 0.
func UniformWeightFn(min, max float64) WeightFn {
	if min < 0 || max < min || max <= 0 {
		panic(fmt.Sprintf("UniformWeightFn: require 0 ≤ min ≤ max, max > 0, got min=%g, max=%g", min, max))
	}
	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return die.DefaultWeight
		}
		if max == min {
			return min
		}
		return min + rng.Float64()*(max-min)
	}
}

// NormalWeightFn samples weights from N(mean, stddev), clipped at 0.
// Panics if stddev < 0.
func NormalWeightFn(mean, stddev float64) WeightFn {
	if stddev < 0 || math.IsNaN(stddev) {
		panic(fmt.Sprintf("NormalWeightFn: stddev must be ≥ 0, got %g", stddev))
	}
	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return die.DefaultWeight
		}
		return math.Max(0, rng.NormFloat64()*stddev+mean)
	}
}

// ExponentialWeightFn samples weights from Exp(rate), mean 1/rate.
// Panics if rate ≤ 0.
func ExponentialWeightFn(rate float64) WeightFn {
	if !(rate > 0) {
		panic(fmt.Sprintf("ExponentialWeightFn: rate must be > 0, got %g", rate))
	}
	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return die.DefaultWeight
		}
		return rng.ExpFloat64() / rate
	}
}

// WithConstantWeight sets every face weight to w.
func WithConstantWeight(w float64) BuilderOption {
	return WithWeightFn(ConstantWeightFn(w))
}

// WithUniformWeight draws face weights from U[min,max).
func WithUniformWeight(min, max float64) BuilderOption {
	return WithWeightFn(UniformWeightFn(min, max))
}

// WithNormalWeight draws face weights from N(mean,stddev) clipped at 0.
func WithNormalWeight(mean, stddev float64) BuilderOption {
	return WithWeightFn(NormalWeightFn(mean, stddev))
}

// WithExponentialWeight draws face weights from Exp(rate).
func WithExponentialWeight(rate float64) BuilderOption {
	return WithWeightFn(ExponentialWeightFn(rate))
}
