// SPDX-License-Identifier: MIT
//
// File: table.go
// Role: Result shapes of a play and the explicit wide <-> narrow conversions.
//
// Determinism:
//   - WideTable.Narrow emits records ordered by roll, then die.
//   - NarrowTable.Wide accepts records in any order.
package game

import (
	"sort"

	"github.com/katalvlaran/montecarlo/die"
)

// Shape selects the layout returned by ShowRecentPlay.
type Shape string

const (
	// ShapeWide is one row per roll and one column per die.
	ShapeWide Shape = "wide"
	// ShapeNarrow is one record per (roll, die) pair.
	ShapeNarrow Shape = "narrow"
)

// String implements fmt.Stringer.
func (s Shape) String() string { return string(s) }

// ParseShape validates a shape name. The empty string resolves to ShapeWide,
// the default layout.
func ParseShape(s string) (Shape, error) {
	switch Shape(s) {
	case "", ShapeWide:
		return ShapeWide, nil
	case ShapeNarrow:
		return ShapeNarrow, nil
	default:
		return "", gameErrorf(opParseShape, ErrInvalidShape, "got %q", s)
	}
}

// Table is implemented by WideTable and NarrowTable.
type Table[F die.Face] interface {
	// Shape reports the layout.
	Shape() Shape
	// Len reports the number of rows (rolls for wide, records for narrow).
	Len() int
	// Outcomes lists every face in the table in row order.
	Outcomes() []F
}

// WideTable is a play result: Rolls[i][j] is the face die j showed on roll i.
type WideTable[F die.Face] struct {
	Rolls [][]F
}

// Shape implements Table.
func (WideTable[F]) Shape() Shape { return ShapeWide }

// Len returns the number of rolls.
func (w WideTable[F]) Len() int { return len(w.Rolls) }

// Outcomes returns every face rolled, roll-major.
func (w WideTable[F]) Outcomes() []F {
	out := make([]F, 0, len(w.Rolls)*w.NumDice())
	for _, row := range w.Rolls {
		out = append(out, row...)
	}
	return out
}

// NumDice returns the number of columns (0 for an empty table).
func (w WideTable[F]) NumDice() int {
	if len(w.Rolls) == 0 {
		return 0
	}
	return len(w.Rolls[0])
}

// Row returns a copy of roll i.
func (w WideTable[F]) Row(i int) []F {
	return append([]F(nil), w.Rolls[i]...)
}

// Column returns a copy of everything die j rolled, in roll order.
func (w WideTable[F]) Column(j int) []F {
	col := make([]F, len(w.Rolls))
	for i, row := range w.Rolls {
		col[i] = row[j]
	}
	return col
}

// Clone returns a deep copy.
func (w WideTable[F]) Clone() WideTable[F] {
	rolls := make([][]F, len(w.Rolls))
	for i, row := range w.Rolls {
		rolls[i] = append([]F(nil), row...)
	}
	return WideTable[F]{Rolls: rolls}
}

// Narrow converts to long format keyed by (roll, die), roll-major.
// Complexity: O(rolls·dice).
func (w WideTable[F]) Narrow() NarrowTable[F] {
	records := make([]Record[F], 0, len(w.Rolls)*w.NumDice())
	for i, row := range w.Rolls {
		for j, face := range row {
			records = append(records, Record[F]{Roll: i, Die: j, Outcome: face})
		}
	}
	return NarrowTable[F]{Records: records}
}

// Record is one narrow row: the Outcome die Die showed on roll Roll.
type Record[F die.Face] struct {
	Roll    int
	Die     int
	Outcome F
}

// NarrowTable is a play result in long format.
type NarrowTable[F die.Face] struct {
	Records []Record[F]
}

// Shape implements Table.
func (NarrowTable[F]) Shape() Shape { return ShapeNarrow }

// Len returns the number of records.
func (n NarrowTable[F]) Len() int { return len(n.Records) }

// Outcomes returns the Outcome of every record in record order.
func (n NarrowTable[F]) Outcomes() []F {
	out := make([]F, len(n.Records))
	for i, r := range n.Records {
		out[i] = r.Outcome
	}
	return out
}

// Wide rebuilds the wide table. The records must cover every cell of a
// rolls × dice grid exactly once, with rolls = max(Roll)+1 and dice = max(Die)+1.
//
// Errors:
//   - ErrMalformedTable on negative indices, duplicate cells or gaps.
func (n NarrowTable[F]) Wide() (WideTable[F], error) {
	if len(n.Records) == 0 {
		return WideTable[F]{Rolls: [][]F{}}, nil
	}

	rolls, dice := 0, 0
	for _, r := range n.Records {
		if r.Roll < 0 || r.Die < 0 {
			return WideTable[F]{}, gameErrorf(opNarrowToWide, ErrMalformedTable, "negative index (%d,%d)", r.Roll, r.Die)
		}
		rolls = max(rolls, r.Roll+1)
		dice = max(dice, r.Die+1)
	}
	if rolls > len(n.Records) || dice > len(n.Records) || rolls*dice != len(n.Records) {
		return WideTable[F]{}, gameErrorf(opNarrowToWide, ErrMalformedTable,
			"%d records for a %dx%d grid", len(n.Records), rolls, dice)
	}

	sorted := append([]Record[F](nil), n.Records...)
	sort.Slice(sorted, func(a, b int) bool {
		if sorted[a].Roll != sorted[b].Roll {
			return sorted[a].Roll < sorted[b].Roll
		}
		return sorted[a].Die < sorted[b].Die
	})

	out := make([][]F, rolls)
	k := 0
	for i := range out {
		out[i] = make([]F, dice)
		for j := range out[i] {
			r := sorted[k]
			if r.Roll != i || r.Die != j {
				return WideTable[F]{}, gameErrorf(opNarrowToWide, ErrMalformedTable, "missing or duplicate cell (%d,%d)", i, j)
			}
			out[i][j] = r.Outcome
			k++
		}
	}

	return WideTable[F]{Rolls: out}, nil
}
