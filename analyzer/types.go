// SPDX-License-Identifier: MIT

package analyzer

import (
	"slices"

	"github.com/katalvlaran/montecarlo/die"
)

// FaceCounts is a rolls × faces table of counts.
// Faces lists the columns (sorted ascending); Counts[i][k] is how many dice
// showed Faces[k] on roll i.
type FaceCounts[F die.Face] struct {
	Faces  []F
	Counts [][]int
}

// Len returns the number of rolls.
func (fc FaceCounts[F]) Len() int { return len(fc.Counts) }

// Count returns how many dice showed face on roll i (0 if never observed).
func (fc FaceCounts[F]) Count(i int, face F) int {
	k, ok := slices.BinarySearch(fc.Faces, face)
	if !ok {
		return 0
	}
	return fc.Counts[i][k]
}

// Row returns roll i as a face -> count map covering every column.
func (fc FaceCounts[F]) Row(i int) map[F]int {
	m := make(map[F]int, len(fc.Faces))
	for k, f := range fc.Faces {
		m[f] = fc.Counts[i][k]
	}
	return m
}

// Group is one distinct combination or permutation and how often it occurred.
type Group[F die.Face] struct {
	Faces []F
	Count int
}

// GroupCounts lists distinct face tuples with their occurrence counts.
type GroupCounts[F die.Face] struct {
	Groups []Group[F]
}

// Len returns the number of distinct groups.
func (gc GroupCounts[F]) Len() int { return len(gc.Groups) }

// Total returns the sum of all counts, i.e. the number of rolls grouped.
func (gc GroupCounts[F]) Total() int {
	n := 0
	for _, g := range gc.Groups {
		n += g.Count
	}
	return n
}

// Lookup returns the count recorded for exactly the tuple faces.
func (gc GroupCounts[F]) Lookup(faces ...F) (int, bool) {
	for _, g := range gc.Groups {
		if slices.Equal(g.Faces, faces) {
			return g.Count, true
		}
	}
	return 0, false
}

// Most returns the group with the highest count; ties resolve to the
// lexicographically smallest tuple. ok is false for an empty table.
func (gc GroupCounts[F]) Most() (Group[F], bool) {
	if len(gc.Groups) == 0 {
		return Group[F]{}, false
	}
	best := gc.Groups[0]
	for _, g := range gc.Groups[1:] {
		if g.Count > best.Count {
			best = g
		}
	}
	return best, true
}

// Summary is every statistic computed from one snapshot of a play.
type Summary[F die.Face] struct {
	Rolls        int
	Dice         int
	Jackpots     int
	JackpotRolls []int
	FaceTotals   map[F]int
	FaceCounts   FaceCounts[F]
	Combos       GroupCounts[F]
	Permutations GroupCounts[F]
}

// JackpotRate returns Jackpots/Rolls, or 0 when nothing was rolled.
func (s Summary[F]) JackpotRate() float64 {
	if s.Rolls == 0 {
		return 0
	}
	return float64(s.Jackpots) / float64(s.Rolls)
}
