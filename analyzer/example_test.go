// SPDX-License-Identifier: MIT
package analyzer_test

import (
	"fmt"

	"github.com/katalvlaran/montecarlo/analyzer"
	"github.com/katalvlaran/montecarlo/game"
)

// ExampleCountCombos groups three rolls into order-independent combinations.
func ExampleCountCombos() {
	w := game.WideTable[string]{Rolls: [][]string{
		{"B", "A", "B"},
		{"A", "B", "B"},
		{"B", "C", "B"},
	}}
	for _, g := range analyzer.CountCombos(w).Groups {
		fmt.Println(g.Faces, g.Count)
	}
	fmt.Println("jackpots:", analyzer.CountJackpots(w))
	// Output:
	// [A B B] 2
	// [B B C] 1
	// jackpots: 0
}
