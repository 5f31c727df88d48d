// SPDX-License-Identifier: MIT

// Package scenario loads dice games from YAML documents.
//
// A scenario names its dice, their weights and how many rolls to play:
//
//	name: loaded-coins
//	seed: 42
//	rolls: 1000
//	strict: true
//	dice:
//	  - faces: [H, T]
//	    weights: {H: 5}
//	    count: 2
//
// Faces are read as strings, so [1, 2, 3] and ["1", "2", "3"] describe the
// same die. Weight values may be numbers or numeric strings; faces without
// an entry keep die.DefaultWeight. Unknown keys are rejected.
//
// A non-zero seed makes Build reproducible: every die is seeded from one RNG
// in document order. Strict enables game.WithFaceCheck.
package scenario
