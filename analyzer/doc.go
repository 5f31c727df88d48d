// SPDX-License-Identifier: MIT

// Package analyzer derives descriptive statistics from a game's most recent
// play.
//
// 🚀 What does it compute?
//
//	Jackpot            rolls in which every die showed the same face
//	FaceCountsPerRoll  per-roll count of each observed face (zero-filled)
//	ComboCount         distinct face multisets (order-independent) with counts
//	PermutationCount   distinct face tuples (order = die position) with counts
//
// ⚙️ Usage:
//
//	a, err := analyzer.New(g)
//	jackpots, err := a.Jackpot()
//	combos, err := a.ComboCount()
//
// An Analyzer is a live view: it keeps a reference to the Game and every call
// reads the game's current result, so replaying the game changes later
// answers. Summarize takes a single snapshot and computes everything from it.
//
// The same statistics are available as pure functions over a
// game.WideTable (CountJackpots, CountFaces, CountCombos, CountPermutations)
// for results that did not come from a live Game.
//
// Determinism:
//
//   - Face columns in FaceCounts are sorted ascending.
//   - Groups in GroupCounts are sorted lexicographically by their face tuple.
package analyzer
