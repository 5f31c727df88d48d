// SPDX-License-Identifier: MIT
package report_test

import (
	"testing"

	"github.com/katalvlaran/montecarlo/die"
	"github.com/katalvlaran/montecarlo/game"
	"github.com/stretchr/testify/require"
)

// playedCoins returns a two-coin game after a seeded play of five rolls.
func playedCoins(t *testing.T) *game.Game[string] {
	t.Helper()
	dice := make([]*die.Die[string], 2)
	for i := range dice {
		d, err := die.New([]string{"H", "T"}, die.WithSeed(int64(10+i)))
		require.NoError(t, err)
		dice[i] = d
	}
	g, err := game.New(dice)
	require.NoError(t, err)
	require.NoError(t, g.Play(5))
	return g
}
