// SPDX-License-Identifier: MIT
// Package game_test contains fixtures shared by the game tests.
package game_test

import (
	"testing"

	"github.com/katalvlaran/montecarlo/die"
	"github.com/stretchr/testify/require"
)

// Common faces and seeds used across game tests.
var facesABC = []string{"A", "B", "C"}

const seedBase = 100

// newDice builds n seeded dice over faces; die i uses seed seedBase+i.
func newDice(t *testing.T, n int, faces []string) []*die.Die[string] {
	t.Helper()
	dice := make([]*die.Die[string], n)
	for i := range dice {
		d, err := die.New(faces, die.WithSeed(int64(seedBase+i)))
		require.NoError(t, err)
		dice[i] = d
	}
	return dice
}

// loaded returns a die over faces that can only show face.
func loaded(t *testing.T, faces []string, face string) *die.Die[string] {
	t.Helper()
	d, err := die.New(faces, die.WithSeed(seedBase))
	require.NoError(t, err)
	for _, f := range faces {
		if f != face {
			require.NoError(t, d.SetWeight(f, 0))
		}
	}
	return d
}
