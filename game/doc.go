// SPDX-License-Identifier: MIT

// Package game rolls an ordered group of dice together and keeps the most
// recent result.
//
// A Game holds references to its dice (not copies), so weight changes made on
// a die after the game was built apply to the next Play. Each Play rolls every
// die count times, assembles a rolls × dice table and replaces the previous
// result wholesale; no history is kept.
//
// Result shapes:
//
//	wide    one row per roll, one column per die (WideTable)
//	narrow  one record per (roll, die) pair with an Outcome column, ordered by
//	        roll then die (NarrowTable)
//
// Face sets:
//
//	The dice are expected to share a face set. By default this is not checked
//	and mismatched dice simply produce heterogeneous rows; WithFaceCheck turns
//	the precondition into a construction error (ErrFaceMismatch).
//
// Concurrency:
//
//	Play holds the write lock for the whole batch; readers get copies.
package game
