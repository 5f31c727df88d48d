// SPDX-License-Identifier: MIT

// Package builder provides validation helpers enforcing factory parameter
// contracts. Each returns a sentinel wrapped with builderErrorf.
package builder

import (
	"math"
)

// validateMin ensures got ≥ min, returning sentinel with method context
// otherwise.
//
// Complexity: O(1).
func validateMin(method string, sentinel error, got, min int) error {
	if got < min {
		return builderErrorf(method, sentinel, "parameter must be ≥ %d, got %d", min, got)
	}

	return nil
}

// validateWeights checks a drawn weight vector: every entry must be finite
// and non-negative, and at least one must be positive.
//
// Complexity: O(n).
func validateWeights(method string, weights []float64) error {
	var total float64
	for i, w := range weights {
		if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			return builderErrorf(method, ErrOptionViolation, "weight function produced %g for face %d", w, i)
		}
		total += w
	}
	if total <= 0 {
		return builderErrorf(method, ErrOptionViolation, "weight function produced no positive weight over %d faces", len(weights))
	}

	return nil
}

// labelFaces applies idFn to 0..n-1 and rejects repeated labels. ID schemes
// panic outside their domain (e.g. SymbolIDFn beyond "Z"); that panic is
// converted to ErrOptionViolation so the factories never panic.
//
// Complexity: O(n) calls of idFn.
func labelFaces(method string, n int, idFn IDFn) (labels []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			labels = nil
			err = builderErrorf(method, ErrOptionViolation, "id scheme cannot label %d faces: %v", n, r)
		}
	}()

	labels = make([]string, n)
	seen := make(map[string]int, n)
	for i := range labels {
		l := idFn(i)
		if j, dup := seen[l]; dup {
			return nil, builderErrorf(method, ErrOptionViolation, "id scheme gave faces %d and %d the same label %q", j, i, l)
		}
		seen[l] = i
		labels[i] = l
	}

	return labels, nil
}
