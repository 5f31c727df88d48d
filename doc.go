// SPDX-License-Identifier: MIT

// Package montecarlo is a small toolkit for Monte Carlo experiments with
// weighted dice: build dice, roll them together, and study the outcomes.
//
// What is in the box?
//
//	• die/      — a weighted die over any ordered face type (ints or strings),
//	              with per-die seeded randomness and live weight changes
//	• game/     — a fixed group of dice rolled together; keeps the most
//	              recent play in wide (roll × die) or narrow (roll, die, outcome) form
//	• analyzer/ — jackpots, per-roll face counts, combinations and permutations
//	              of a game's most recent play
//	• builder/  — functional-options factories for numbered and labelled dice
//	• scenario/ — dice games described in YAML
//	• report/   — text and JSON rendering of analyzer summaries
//	• cmd/montecarlo — the command-line front end
//
// Quick example:
//
//	coin, _ := die.New([]string{"H", "T"}, die.WithSeed(1))
//	fair, _ := die.New([]string{"H", "T"}, die.WithSeed(2))
//	_ = coin.ChangeWeight("H", 3)            // heads three times as likely
//	g, _ := game.New([]*die.Die[string]{coin, fair})
//	_ = g.Play(1000)
//	a, _ := analyzer.New(g)
//	n, _ := a.Jackpot()                      // rolls where both coins agree
//
// Every die owns its random source, so dice may be rolled from different
// goroutines. Seeded dice reproduce the same rolls.
//
//	go get github.com/katalvlaran/montecarlo
package montecarlo
