// SPDX-License-Identifier: MIT

package die

import (
	"fmt"
	"math"

	"github.com/spf13/cast"
)

// coerceWeight converts a caller-supplied weight into float64.
// Accepted: every Go integer and float kind, json.Number, and strings that
// parse as a float ("2", "0.5", "1e3"). Booleans and nil are rejected even
// though cast would map them to 1/0.
func coerceWeight(v any) (float64, error) {
	switch v.(type) {
	case nil, bool:
		return 0, ErrNotNumeric
	}
	w, err := cast.ToFloat64E(v)
	if err != nil {
		return 0, ErrNotNumeric
	}

	return w, nil
}

// ParseWeight converts v with the rules ChangeWeight applies, so callers can
// validate weights before a die exists.
func ParseWeight(v any) (float64, error) {
	w, err := coerceWeight(v)
	if err != nil {
		return 0, fmt.Errorf("ParseWeight: value %#v: %w", v, err)
	}
	return w, nil
}

// validWeight reports whether w may take part in a normalized distribution.
func validWeight(w float64) bool {
	return w >= 0 && !math.IsNaN(w) && !math.IsInf(w, 0)
}

// cumulative returns the running sums of weights and their total, or
// ErrInvalidWeights when any weight is unusable or the total is not positive.
func cumulative(weights []float64) ([]float64, float64, error) {
	cum := make([]float64, len(weights))
	var total float64
	for i, w := range weights {
		if !validWeight(w) {
			return nil, 0, ErrInvalidWeights
		}
		total += w
		cum[i] = total
	}
	if total <= 0 || math.IsInf(total, 0) {
		return nil, 0, ErrInvalidWeights
	}

	return cum, total, nil
}
