// SPDX-License-Identifier: MIT

// Package builder provides functional-options factories for common dice, so
// games can be assembled without spelling out face lists and weights.
//
// The package offers the following key components:
//
//   - Factories:
//     – Numbered:     faces 1..sides (a d6 is Numbered(6)).
//     – Labeled:      string faces named by an ID scheme.
//     – NumberedSet / LabeledSet: several dice with one shared face set.
//   - Configuration primitives:
//     – BuilderOption: a function that mutates builderConfig before use.
//     – WithSeed / WithRand: the builder RNG. Each die is seeded from it.
//   - Face label schemes (IDFn implementations):
//     – ExcelColumnIDFn:  "A","Z","AA",… (default).
//     – DefaultIDFn:      decimal strings "0","1",….
//     – SymbolIDFn:       single letters "A".."Z".
//     – AlphanumericIDFn: base-36 strings.
//     – HexIDFn:          lowercase hexadecimal.
//     – SymbolNumberIDFn: prefix + index.
//   - Face weight distributions (WeightFn implementations):
//     – DefaultWeightFn:     die.DefaultWeight for every face (fair die).
//     – ConstantWeightFn:    one positive value for every face.
//     – UniformWeightFn:     ∼U[min,max).
//     – NormalWeightFn:      ∼N(mean,stddev), clipped at 0.
//     – ExponentialWeightFn: ∼Exp(rate).
//
// Guarantees:
//
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Factories never panic; they return ErrTooFewFaces, ErrTooFewDice or
//     ErrOptionViolation wrapped with the factory name.
//   - Same parameters, options and seed produce dice that roll identically.
//
// Example:
//
//	dice, err := builder.NumberedSet(3, 6, builder.WithSeed(7))
//	if err != nil {
//		return err
//	}
//	g, err := game.New(dice)
package builder
