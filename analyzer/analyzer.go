// SPDX-License-Identifier: MIT

package analyzer

import (
	"fmt"

	"github.com/katalvlaran/montecarlo/die"
	"github.com/katalvlaran/montecarlo/game"
)

// Analyzer is a read-only view over a Game's most recent play.
type Analyzer[F die.Face] struct {
	game *game.Game[F]
}

// New returns an analyzer bound to g (by reference).
//
// Errors:
//   - ErrNilGame if g is nil.
func New[F die.Face](g *game.Game[F]) (*Analyzer[F], error) {
	if g == nil {
		return nil, fmt.Errorf("New: %w", ErrNilGame)
	}
	return &Analyzer[F]{game: g}, nil
}

// Game returns the analyzed game.
func (a *Analyzer[F]) Game() *game.Game[F] { return a.game }

// Jackpot returns how many rolls of the current play were jackpots.
func (a *Analyzer[F]) Jackpot() (int, error) {
	w, err := a.snapshot("Jackpot")
	if err != nil {
		return 0, err
	}
	return CountJackpots(w), nil
}

// JackpotRolls returns the roll indices of the current play's jackpots.
func (a *Analyzer[F]) JackpotRolls() ([]int, error) {
	w, err := a.snapshot("JackpotRolls")
	if err != nil {
		return nil, err
	}
	return JackpotRows(w), nil
}

// FaceCountsPerRoll returns the per-roll face frequency table.
func (a *Analyzer[F]) FaceCountsPerRoll() (FaceCounts[F], error) {
	w, err := a.snapshot("FaceCountsPerRoll")
	if err != nil {
		return FaceCounts[F]{}, err
	}
	return CountFaces(w), nil
}

// FaceTotals returns per-face totals over the whole current play.
func (a *Analyzer[F]) FaceTotals() (map[F]int, error) {
	w, err := a.snapshot("FaceTotals")
	if err != nil {
		return nil, err
	}
	return FaceTotals(w), nil
}

// ComboCount returns distinct order-independent combinations with counts.
func (a *Analyzer[F]) ComboCount() (GroupCounts[F], error) {
	w, err := a.snapshot("ComboCount")
	if err != nil {
		return GroupCounts[F]{}, err
	}
	return CountCombos(w), nil
}

// PermutationCount returns distinct ordered face tuples with counts.
func (a *Analyzer[F]) PermutationCount() (GroupCounts[F], error) {
	w, err := a.snapshot("PermutationCount")
	if err != nil {
		return GroupCounts[F]{}, err
	}
	return CountPermutations(w), nil
}

// Summarize computes every statistic from a single snapshot, so the parts are
// consistent with each other even if the game is replayed concurrently.
func (a *Analyzer[F]) Summarize() (Summary[F], error) {
	w, err := a.snapshot("Summarize")
	if err != nil {
		return Summary[F]{}, err
	}
	jackpots := JackpotRows(w)

	return Summary[F]{
		Rolls:        w.Len(),
		Dice:         a.game.NumDice(),
		Jackpots:     len(jackpots),
		JackpotRolls: jackpots,
		FaceTotals:   FaceTotals(w),
		FaceCounts:   CountFaces(w),
		Combos:       CountCombos(w),
		Permutations: CountPermutations(w),
	}, nil
}

// snapshot copies the game's current wide table.
func (a *Analyzer[F]) snapshot(op string) (game.WideTable[F], error) {
	w, err := a.game.Wide()
	if err != nil {
		return game.WideTable[F]{}, fmt.Errorf("%s: %w", op, err)
	}
	return w, nil
}
