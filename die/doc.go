// SPDX-License-Identifier: MIT

// Package die implements a weighted, discrete-outcome die.
//
// A Die holds a fixed, construction-ordered set of unique face labels and one
// mutable weight per face. Rolling draws faces with replacement, each face
// selected with probability weight/Σweights, where the sum is recomputed on
// every call so weight changes take effect immediately.
//
// ⚙️ Usage:
//
//	d, err := die.New([]string{"H", "T"}, die.WithSeed(7))
//	if err != nil { ... }
//	_ = d.ChangeWeight("H", "3")  // numbers or numeric strings
//	faces, err := d.Roll(10)
//
// Faces:
//
//	Any integer or string kind (see Face). Floating-point faces are not
//	supported: outcomes are discrete labels, not measurements.
//
// Randomness:
//
//	Every Die owns its own *rand.Rand. WithSeed/WithRand make sampling
//	reproducible; without them the stream is seeded from crypto/rand.
//
// Concurrency:
//
//	All methods are safe for concurrent use. Roll and weight updates take the
//	write lock (the RNG is stateful), CurrentState takes the read lock.
//
// Errors:
//
//	ErrNoFaces, ErrDuplicateFace  - construction
//	ErrUnknownFace                - weight update on a face the die does not have
//	ErrNotNumeric                 - weight value cannot be coerced to float64
//	ErrNegativeCount              - Roll with count < 0
//	ErrInvalidWeights             - weights cannot form a probability distribution
package die
