// SPDX-License-Identifier: MIT
package die_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/katalvlaran/montecarlo/die"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Common fixtures (avoid magic values in test bodies).
var (
	facesABC = []string{"A", "B", "C"}
	facesD6  = []int{1, 2, 3, 4, 5, 6}
)

const (
	seed42 = 42
	seed7  = 7
)

// TestNew_DefaultWeights verifies a fresh die has weight 1 on every face and
// keeps construction order.
func TestNew_DefaultWeights(t *testing.T) {
	d, err := die.New(facesABC, die.WithSeed(seed42))
	require.NoError(t, err)

	st := d.CurrentState()
	assert.Equal(t, facesABC, st.Faces, "face order must match construction order")
	assert.Equal(t, []float64{1, 1, 1}, st.Weights, "every face starts at DefaultWeight")
	assert.Equal(t, 3, d.NumFaces())
	assert.True(t, d.HasFace("B"))
	assert.False(t, d.HasFace("Z"))
}

// TestNew_Errors checks construction validation.
func TestNew_Errors(t *testing.T) {
	_, err := die.New([]string{}, die.WithSeed(seed42))
	assert.ErrorIs(t, err, die.ErrNoFaces, "empty face set must error")

	_, err = die.New([]int{1, 2, 2, 3}, die.WithSeed(seed42))
	assert.ErrorIs(t, err, die.ErrDuplicateFace, "repeated face must error")
}

// TestNew_CopiesInput ensures the die does not alias the caller's slice.
func TestNew_CopiesInput(t *testing.T) {
	faces := []string{"X", "Y"}
	d, err := die.New(faces, die.WithSeed(seed42))
	require.NoError(t, err)

	faces[0] = "Q"
	assert.Equal(t, []string{"X", "Y"}, d.Faces())
}

// TestNew_DefaultSeed exercises the crypto-seeded path.
func TestNew_DefaultSeed(t *testing.T) {
	d, err := die.New(facesD6)
	require.NoError(t, err)

	got, err := d.Roll(5)
	require.NoError(t, err)
	assert.Len(t, got, 5)
}

// TestWithRand_NilPanics verifies the option constructor rejects nil.
func TestWithRand_NilPanics(t *testing.T) {
	assert.Panics(t, func() { die.WithRand(nil) })
}

// TestChangeWeight_Coercion covers every accepted value shape.
func TestChangeWeight_Coercion(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  float64
	}{
		{"int", 2, 2},
		{"int8", int8(3), 3},
		{"uint16", uint16(4), 4},
		{"float32", float32(0.5), 0.5},
		{"float64", 2.25, 2.25},
		{"numeric string", "2.5", 2.5},
		{"exponent string", "1e2", 100},
		{"json number", json.Number("7"), 7},
		{"zero", 0, 0},
		{"negative", -1, -1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d, err := die.New(facesABC, die.WithSeed(seed42))
			require.NoError(t, err)

			require.NoError(t, d.ChangeWeight("B", tc.value))
			st := d.CurrentState()
			w, ok := st.Weight("B")
			require.True(t, ok)
			assert.Equal(t, tc.want, w)

			// only B changed
			a, _ := st.Weight("A")
			c, _ := st.Weight("C")
			assert.Equal(t, die.DefaultWeight, a)
			assert.Equal(t, die.DefaultWeight, c)
		})
	}
}

// TestChangeWeight_Errors verifies lookup and coercion failures leave the die unchanged.
func TestChangeWeight_Errors(t *testing.T) {
	d, err := die.New(facesABC, die.WithSeed(seed42))
	require.NoError(t, err)

	err = d.ChangeWeight("Z", 2)
	assert.ErrorIs(t, err, die.ErrUnknownFace)

	for _, bad := range []any{"heavy", "", true, nil, struct{}{}, []int{1}} {
		err = d.ChangeWeight("A", bad)
		assert.ErrorIs(t, err, die.ErrNotNumeric, "value %#v must be rejected", bad)
	}

	assert.Equal(t, []float64{1, 1, 1}, d.CurrentState().Weights, "failed updates must not mutate")

	assert.ErrorIs(t, d.SetWeight("Z", 1), die.ErrUnknownFace)
	require.NoError(t, d.SetWeight("C", 4))
	w, _ := d.CurrentState().Weight("C")
	assert.Equal(t, 4.0, w)
}

// TestParseWeight checks the standalone coercion matches ChangeWeight.
func TestParseWeight(t *testing.T) {
	w, err := die.ParseWeight("2.5")
	require.NoError(t, err)
	assert.Equal(t, 2.5, w)

	w, err = die.ParseWeight(uint8(3))
	require.NoError(t, err)
	assert.Equal(t, 3.0, w)

	_, err = die.ParseWeight(true)
	assert.ErrorIs(t, err, die.ErrNotNumeric)
	_, err = die.ParseWeight("heavy")
	assert.ErrorIs(t, err, die.ErrNotNumeric)
}

// TestRoll_LengthAndMembership checks Roll(n) returns n faces from the face set.
func TestRoll_LengthAndMembership(t *testing.T) {
	d, err := die.New(facesD6, die.WithSeed(seed42))
	require.NoError(t, err)

	for _, n := range []int{1, 10, 257} {
		got, err := d.Roll(n)
		require.NoError(t, err)
		require.Len(t, got, n)
		for _, f := range got {
			assert.True(t, d.HasFace(f), "rolled face %d not on die", f)
		}
	}

	got, err := d.Roll(0)
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = d.Roll(-1)
	assert.ErrorIs(t, err, die.ErrNegativeCount)
}

// TestRoll_DoesNotMutateWeights ensures sampling is side-effect free on weights.
func TestRoll_DoesNotMutateWeights(t *testing.T) {
	d, err := die.New(facesABC, die.WithSeed(seed42))
	require.NoError(t, err)
	require.NoError(t, d.ChangeWeight("A", 5))

	before := d.CurrentState()
	_, err = d.Roll(100)
	require.NoError(t, err)
	assert.Equal(t, before, d.CurrentState())
}

// TestRoll_ZeroWeightNeverRolled verifies a zero-weight face is unrollable.
func TestRoll_ZeroWeightNeverRolled(t *testing.T) {
	d, err := die.New(facesABC, die.WithSeed(seed7))
	require.NoError(t, err)
	require.NoError(t, d.ChangeWeight("A", 0))
	require.NoError(t, d.ChangeWeight("C", "0"))

	got, err := d.Roll(500)
	require.NoError(t, err)
	for _, f := range got {
		assert.Equal(t, "B", f)
	}
}

// TestRoll_InvalidWeights checks weights that cannot be normalized.
func TestRoll_InvalidWeights(t *testing.T) {
	tests := []struct {
		name    string
		weights map[string]float64
	}{
		{"negative", map[string]float64{"A": -1}},
		{"all zero", map[string]float64{"A": 0, "B": 0, "C": 0}},
		{"nan", map[string]float64{"B": math.NaN()}},
		{"inf", map[string]float64{"C": math.Inf(1)}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d, err := die.New(facesABC, die.WithSeed(seed42))
			require.NoError(t, err)
			for f, w := range tc.weights {
				require.NoError(t, d.SetWeight(f, w))
			}
			_, err = d.Roll(3)
			assert.ErrorIs(t, err, die.ErrInvalidWeights)
		})
	}
}

// TestRoll_Deterministic verifies equal seeds give equal sequences.
func TestRoll_Deterministic(t *testing.T) {
	d1, err := die.New(facesD6, die.WithSeed(seed42))
	require.NoError(t, err)
	d2, err := die.New(facesD6, die.WithSeed(seed42))
	require.NoError(t, err)

	r1, err := d1.Roll(50)
	require.NoError(t, err)
	r2, err := d2.Roll(50)
	require.NoError(t, err)
	assert.Equal(t, r1, r2)
}

// TestRoll_Distribution checks weights steer the empirical frequencies.
func TestRoll_Distribution(t *testing.T) {
	d, err := die.New([]string{"H", "T"}, die.WithSeed(seed42))
	require.NoError(t, err)
	require.NoError(t, d.ChangeWeight("H", 3))

	const trials = 20000
	got, err := d.Roll(trials)
	require.NoError(t, err)

	heads := 0
	for _, f := range got {
		if f == "H" {
			heads++
		}
	}
	assert.InDelta(t, 0.75, float64(heads)/trials, 0.02, "H should come up about 3 times in 4")
}

// TestRollOne returns a single face from the set.
func TestRollOne(t *testing.T) {
	d, err := die.New(facesABC, die.WithSeed(seed42))
	require.NoError(t, err)

	f, err := d.RollOne()
	require.NoError(t, err)
	assert.Contains(t, facesABC, f)

	require.NoError(t, d.SetWeight("A", -2))
	_, err = d.RollOne()
	assert.ErrorIs(t, err, die.ErrInvalidWeights)
}

// TestCurrentState_IsSnapshot verifies callers cannot reach internal state.
func TestCurrentState_IsSnapshot(t *testing.T) {
	d, err := die.New(facesABC, die.WithSeed(seed42))
	require.NoError(t, err)

	st := d.CurrentState()
	st.Weights[0] = 99
	st.Faces[0] = "Z"
	m := st.Map()
	m["B"] = 42

	fresh := d.CurrentState()
	assert.Equal(t, facesABC, fresh.Faces)
	assert.Equal(t, []float64{1, 1, 1}, fresh.Weights)
}

// TestState_Helpers covers the snapshot accessors.
func TestState_Helpers(t *testing.T) {
	d, err := die.New(facesABC, die.WithSeed(seed42))
	require.NoError(t, err)
	require.NoError(t, d.ChangeWeight("C", 2))

	st := d.CurrentState()
	assert.Equal(t, 3, st.Len())
	assert.Equal(t, 4.0, st.Total())
	assert.Equal(t, []float64{0.25, 0.25, 0.5}, st.Probabilities())
	assert.Equal(t, map[string]float64{"A": 1, "B": 1, "C": 2}, st.Map())

	_, ok := st.Weight("Z")
	assert.False(t, ok)

	empty := die.State[string]{Faces: []string{"A"}, Weights: []float64{0}}
	assert.Equal(t, []float64{0}, empty.Probabilities())
}

// TestSameFaces compares face sets regardless of order and weights.
func TestSameFaces(t *testing.T) {
	a, err := die.New([]string{"A", "B", "C"}, die.WithSeed(seed42))
	require.NoError(t, err)
	b, err := die.New([]string{"C", "A", "B"}, die.WithSeed(seed42))
	require.NoError(t, err)
	c, err := die.New([]string{"A", "B", "D"}, die.WithSeed(seed42))
	require.NoError(t, err)
	require.NoError(t, b.ChangeWeight("A", 10))

	assert.True(t, a.SameFaces(b))
	assert.False(t, a.SameFaces(c))
	assert.False(t, a.SameFaces(nil))
}
