// SPDX-License-Identifier: MIT
// Package: montecarlo/builder
//
// dice.go — public dice factories.
//
// Contract:
//   • Options resolve into one builderConfig per call; nothing is global.
//   • Every built die gets its own RNG seeded from the builder RNG, then its
//     face weights are drawn from the same builder RNG in face order.
//   • Determinism: same parameters, options and seed ⇒ identical dice.
//   • Safety: never panic; return sentinel errors wrapped with method context.

package builder

import (
	"github.com/katalvlaran/montecarlo/die"
)

// Numbered builds a die with faces 1..sides.
//
// Errors:
//   - ErrTooFewFaces if sides < MinFaces.
//   - ErrOptionViolation if the weight function yields an unusable vector.
//
// Complexity: O(sides).
func Numbered(sides int, opts ...BuilderOption) (*die.Die[int], error) {
	if err := validateMin(MethodNumbered, ErrTooFewFaces, sides, MinFaces); err != nil {
		return nil, err
	}
	cfg := newBuilderConfig(opts...)
	if err := cfg.resolveRNG(); err != nil {
		return nil, builderErrorf(MethodNumbered, err, "sides %d", sides)
	}

	return buildDie(MethodNumbered, numberedFaces(sides), &cfg)
}

// Labeled builds a die with n string faces idFn(0..n-1); the default scheme
// is ExcelColumnIDFn ("A","B",...).
//
// Errors:
//   - ErrTooFewFaces if n < MinFaces.
//   - ErrOptionViolation if the ID scheme cannot give n distinct labels or
//     the weight function yields an unusable vector.
//
// Complexity: O(n).
func Labeled(n int, opts ...BuilderOption) (*die.Die[string], error) {
	if err := validateMin(MethodLabeled, ErrTooFewFaces, n, MinFaces); err != nil {
		return nil, err
	}
	cfg := newBuilderConfig(opts...)
	labels, err := labelFaces(MethodLabeled, n, cfg.idFn)
	if err != nil {
		return nil, err
	}
	if err = cfg.resolveRNG(); err != nil {
		return nil, builderErrorf(MethodLabeled, err, "n %d", n)
	}

	return buildDie(MethodLabeled, labels, &cfg)
}

// NumberedSet builds count dice with faces 1..sides, ready for game.New.
// Weights are drawn independently per die.
//
// Errors: ErrTooFewDice, ErrTooFewFaces, ErrOptionViolation.
//
// Complexity: O(count·sides).
func NumberedSet(count, sides int, opts ...BuilderOption) ([]*die.Die[int], error) {
	if err := validateMin(MethodNumberedSet, ErrTooFewDice, count, MinDice); err != nil {
		return nil, err
	}
	if err := validateMin(MethodNumberedSet, ErrTooFewFaces, sides, MinFaces); err != nil {
		return nil, err
	}
	cfg := newBuilderConfig(opts...)
	if err := cfg.resolveRNG(); err != nil {
		return nil, builderErrorf(MethodNumberedSet, err, "count %d", count)
	}

	return buildSet(MethodNumberedSet, count, numberedFaces(sides), &cfg)
}

// LabeledSet builds count dice sharing the labels idFn(0..n-1).
//
// Errors: ErrTooFewDice, ErrTooFewFaces, ErrOptionViolation.
//
// Complexity: O(count·n).
func LabeledSet(count, n int, opts ...BuilderOption) ([]*die.Die[string], error) {
	if err := validateMin(MethodLabeledSet, ErrTooFewDice, count, MinDice); err != nil {
		return nil, err
	}
	if err := validateMin(MethodLabeledSet, ErrTooFewFaces, n, MinFaces); err != nil {
		return nil, err
	}
	cfg := newBuilderConfig(opts...)
	labels, err := labelFaces(MethodLabeledSet, n, cfg.idFn)
	if err != nil {
		return nil, err
	}
	if err = cfg.resolveRNG(); err != nil {
		return nil, builderErrorf(MethodLabeledSet, err, "count %d", count)
	}

	return buildSet(MethodLabeledSet, count, labels, &cfg)
}

// numberedFaces returns FirstNumberedFace..FirstNumberedFace+sides-1.
func numberedFaces(sides int) []int {
	faces := make([]int, sides)
	for i := range faces {
		faces[i] = FirstNumberedFace + i
	}
	return faces
}

// buildSet builds count dice over faces from one resolved config, so the
// builder RNG stream runs across the whole set.
func buildSet[F die.Face](method string, count int, faces []F, cfg *builderConfig) ([]*die.Die[F], error) {
	dice := make([]*die.Die[F], count)
	for i := range dice {
		d, err := buildDie(method, faces, cfg)
		if err != nil {
			return nil, err
		}
		dice[i] = d
	}
	return dice, nil
}

// buildDie derives the die seed, draws the face weights and constructs the die.
// cfg.rng must be resolved.
func buildDie[F die.Face](method string, faces []F, cfg *builderConfig) (*die.Die[F], error) {
	seed := cfg.rng.Int63()

	weights := make([]float64, len(faces))
	for i := range weights {
		weights[i] = cfg.weightFn(cfg.rng)
	}
	if err := validateWeights(method, weights); err != nil {
		return nil, err
	}

	d, err := die.New(faces, die.WithSeed(seed))
	if err != nil {
		return nil, builderErrorf(method, err, "%d faces", len(faces))
	}
	for i, f := range faces {
		if err = d.SetWeight(f, weights[i]); err != nil {
			return nil, builderErrorf(method, err, "face %v", f)
		}
	}

	return d, nil
}
