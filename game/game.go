// SPDX-License-Identifier: MIT

package game

import (
	"sync"

	"github.com/katalvlaran/montecarlo/die"
)

// Option configures a Game before creation.
type Option func(*config)

type config struct {
	faceCheck bool
}

// WithFaceCheck makes New reject dice whose face sets differ from the first
// die's (ErrFaceMismatch). Without it the shared-face-set precondition is the
// caller's responsibility.
func WithFaceCheck() Option {
	return func(c *config) { c.faceCheck = true }
}

// Game rolls a fixed, ordered group of dice.
//
// mu guards last and plays; dice is immutable after New.
type Game[F die.Face] struct {
	mu sync.RWMutex

	dice  []*die.Die[F]
	last  *WideTable[F] // nil until the first successful Play
	plays uint64        // completed plays
}

// New creates a game over dice. The slice is copied; the dice themselves are
// shared with the caller.
//
// Errors:
//   - ErrNoDice if dice is empty.
//   - ErrNilDie if an element is nil.
//   - ErrFaceMismatch under WithFaceCheck when face sets differ.
func New[F die.Face](dice []*die.Die[F], opts ...Option) (*Game[F], error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	if len(dice) == 0 {
		return nil, gameErrorf(opNew, ErrNoDice, "got %d dice", 0)
	}
	for i, d := range dice {
		if d == nil {
			return nil, gameErrorf(opNew, ErrNilDie, "die %d", i)
		}
		if cfg.faceCheck && !dice[0].SameFaces(d) {
			return nil, gameErrorf(opNew, ErrFaceMismatch, "die %d faces %v vs die 0 faces %v", i, d.Faces(), dice[0].Faces())
		}
	}

	return &Game[F]{dice: append([]*die.Die[F](nil), dice...)}, nil
}

// Dice returns the game's dice in play order.
func (g *Game[F]) Dice() []*die.Die[F] {
	return append([]*die.Die[F](nil), g.dice...)
}

// NumDice returns the number of dice.
func (g *Game[F]) NumDice() int { return len(g.dice) }

// Play rolls every die count times, in die order, and stores the result as
// the game's most recent play. Dice roll independently of each other.
//
// On error (negative count, a die with unusable weights) the previous result
// is kept untouched.
func (g *Game[F]) Play(count int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	columns := make([][]F, len(g.dice))
	for j, d := range g.dice {
		col, err := d.Roll(count)
		if err != nil {
			return gameErrorf(opPlay, err, "die %d", j)
		}
		columns[j] = col
	}

	rolls := make([][]F, count)
	for i := range rolls {
		row := make([]F, len(columns))
		for j, col := range columns {
			row[j] = col[i]
		}
		rolls[i] = row
	}

	g.last = &WideTable[F]{Rolls: rolls}
	g.plays++

	return nil
}

// Played reports whether at least one Play has completed.
func (g *Game[F]) Played() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.last != nil
}

// Plays returns the number of completed plays. Analyses that read the game
// twice can compare it to detect a replay in between.
func (g *Game[F]) Plays() uint64 {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.plays
}

// Wide returns a copy of the most recent play in wide form.
func (g *Game[F]) Wide() (WideTable[F], error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if g.last == nil {
		return WideTable[F]{}, ErrNoPlay
	}
	return g.last.Clone(), nil
}

// Narrow returns the most recent play in narrow form.
func (g *Game[F]) Narrow() (NarrowTable[F], error) {
	w, err := g.Wide()
	if err != nil {
		return NarrowTable[F]{}, err
	}
	return w.Narrow(), nil
}

// ShowRecentPlay returns the most recent play in the requested shape. The
// zero Shape means ShapeWide.
//
// Errors:
//   - ErrInvalidShape for any shape other than "wide" or "narrow" (checked first).
//   - ErrNoPlay before the first Play.
func (g *Game[F]) ShowRecentPlay(shape Shape) (Table[F], error) {
	s, err := ParseShape(string(shape))
	if err != nil {
		return nil, gameErrorf(opShowRecentPlay, err, "shape %q", string(shape))
	}

	w, err := g.Wide()
	if err != nil {
		return nil, gameErrorf(opShowRecentPlay, err, "shape %s", s)
	}
	if s == ShapeNarrow {
		return w.Narrow(), nil
	}
	return w, nil
}
