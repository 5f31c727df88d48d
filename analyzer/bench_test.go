// SPDX-License-Identifier: MIT
package analyzer_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/montecarlo/analyzer"
	"github.com/katalvlaran/montecarlo/game"
)

// randomTable builds a rolls × dice table of faces 1..sides.
func randomTable(rolls, dice, sides int) game.WideTable[int] {
	rng := rand.New(rand.NewSource(1))
	out := make([][]int, rolls)
	for i := range out {
		out[i] = make([]int, dice)
		for j := range out[i] {
			out[i][j] = rng.Intn(sides) + 1
		}
	}
	return game.WideTable[int]{Rolls: out}
}

// BenchmarkCountCombos_10kx5 groups 10k rolls of five d6.
func BenchmarkCountCombos_10kx5(b *testing.B) {
	w := randomTable(10000, 5, 6)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = analyzer.CountCombos(w)
	}
}

// BenchmarkCountFaces_10kx5 counts faces over 10k rolls of five d6.
func BenchmarkCountFaces_10kx5(b *testing.B) {
	w := randomTable(10000, 5, 6)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = analyzer.CountFaces(w)
	}
}
