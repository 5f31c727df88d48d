// SPDX-License-Identifier: MIT
//
// File: stats.go
// Role: Pure statistics over a wide result table.
//
// Determinism:
//   - Outputs never depend on map iteration order.
//
// Complexity (r rolls, m dice, k distinct faces):
//   - CountJackpots     O(r·m)
//   - CountFaces        O(r·m·log k + k log k)
//   - CountCombos       O(r·m·log m + r·log r·m)
//   - CountPermutations O(r·log r·m)
package analyzer

import (
	"slices"

	"github.com/katalvlaran/montecarlo/die"
	"github.com/katalvlaran/montecarlo/game"
)

// JackpotRows returns the indices of rolls in which every die showed the same
// face. With a single die every roll qualifies.
func JackpotRows[F die.Face](w game.WideTable[F]) []int {
	rows := make([]int, 0)
	for i, row := range w.Rolls {
		if allSame(row) {
			rows = append(rows, i)
		}
	}
	return rows
}

// CountJackpots returns the number of jackpot rolls in w.
func CountJackpots[F die.Face](w game.WideTable[F]) int {
	n := 0
	for _, row := range w.Rolls {
		if allSame(row) {
			n++
		}
	}
	return n
}

// CountFaces builds the per-roll face frequency table. Columns are the
// sorted union of faces observed anywhere in w, which may be fewer than the
// dice's face set.
func CountFaces[F die.Face](w game.WideTable[F]) FaceCounts[F] {
	faces := observedFaces(w)

	counts := make([][]int, len(w.Rolls))
	for i, row := range w.Rolls {
		counts[i] = make([]int, len(faces))
		for _, f := range row {
			k, _ := slices.BinarySearch(faces, f)
			counts[i][k]++
		}
	}

	return FaceCounts[F]{Faces: faces, Counts: counts}
}

// FaceTotals returns how often each face was rolled across the whole table.
func FaceTotals[F die.Face](w game.WideTable[F]) map[F]int {
	totals := make(map[F]int)
	for _, row := range w.Rolls {
		for _, f := range row {
			totals[f]++
		}
	}
	return totals
}

// CountCombos groups rolls by their sorted face tuple (multiset).
func CountCombos[F die.Face](w game.WideTable[F]) GroupCounts[F] {
	keys := make([][]F, len(w.Rolls))
	for i, row := range w.Rolls {
		k := append([]F(nil), row...)
		slices.Sort(k)
		keys[i] = k
	}
	return groupTuples(keys)
}

// CountPermutations groups rolls by their face tuple as played; the same
// faces in different die positions are different groups.
func CountPermutations[F die.Face](w game.WideTable[F]) GroupCounts[F] {
	keys := make([][]F, len(w.Rolls))
	for i, row := range w.Rolls {
		keys[i] = append([]F(nil), row...)
	}
	return groupTuples(keys)
}

// groupTuples sorts keys lexicographically and collapses equal runs.
// keys is reordered in place.
func groupTuples[F die.Face](keys [][]F) GroupCounts[F] {
	slices.SortFunc(keys, func(a, b []F) int { return slices.Compare(a, b) })

	groups := make([]Group[F], 0)
	for _, k := range keys {
		if n := len(groups); n > 0 && slices.Equal(groups[n-1].Faces, k) {
			groups[n-1].Count++
			continue
		}
		groups = append(groups, Group[F]{Faces: k, Count: 1})
	}

	return GroupCounts[F]{Groups: groups}
}

// observedFaces returns the sorted distinct faces present in w.
func observedFaces[F die.Face](w game.WideTable[F]) []F {
	seen := make(map[F]struct{})
	faces := make([]F, 0)
	for _, row := range w.Rolls {
		for _, f := range row {
			if _, ok := seen[f]; !ok {
				seen[f] = struct{}{}
				faces = append(faces, f)
			}
		}
	}
	slices.Sort(faces)
	return faces
}

// allSame reports whether row holds exactly one distinct value.
func allSame[F die.Face](row []F) bool {
	if len(row) == 0 {
		return false
	}
	for _, f := range row[1:] {
		if f != row[0] {
			return false
		}
	}
	return true
}
