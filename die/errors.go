// SPDX-License-Identifier: MIT
// Package: montecarlo/die
//
// errors.go — sentinel errors for the die package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach the operation and offending value with %w.

package die

import (
	"errors"
	"fmt"
)

// ErrNoFaces indicates a die was constructed from an empty face set.
var ErrNoFaces = errors.New("die: face set is empty")

// ErrDuplicateFace indicates the face set passed to New repeats a value.
var ErrDuplicateFace = errors.New("die: face values are not unique")

// ErrUnknownFace indicates a weight update referenced a face the die does not have.
var ErrUnknownFace = errors.New("die: face not found")

// ErrNotNumeric indicates a weight value is neither numeric nor a string
// parseable as a floating-point number.
var ErrNotNumeric = errors.New("die: weight is not numeric")

// ErrNegativeCount indicates Roll was asked for a negative number of draws.
var ErrNegativeCount = errors.New("die: roll count must be non-negative")

// ErrInvalidWeights indicates the current weights do not form a probability
// distribution: a weight is negative, NaN or infinite, or all weights sum to zero.
var ErrInvalidWeights = errors.New("die: weights cannot be normalized")

// Operation names used as error context.
const (
	opNew          = "New"
	opChangeWeight = "ChangeWeight"
	opSetWeight    = "SetWeight"
	opRoll         = "Roll"
)

// dieErrorf prefixes err with the operation name and a formatted detail,
// keeping the sentinel reachable through errors.Is.
func dieErrorf(op string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", op, fmt.Sprintf(format, args...), err)
}
