// SPDX-License-Identifier: MIT
// Package: montecarlo/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Constructors attach the method name and offending parameters via %w.
//   • Option constructors (WithX) panic on meaningless input; the factories
//     themselves never panic.

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewFaces indicates a die was requested with fewer than MinFaces faces.
// Typical origins: Numbered(0), Labeled(-1).
var ErrTooFewFaces = errors.New("builder: too few faces")

// ErrTooFewDice indicates a set was requested with fewer than MinDice dice.
// Typical origins: NumberedSet(0, 6).
var ErrTooFewDice = errors.New("builder: too few dice")

// ErrOptionViolation indicates the resolved options cannot produce a valid
// die: the label scheme cannot name every face, or the weight function
// produced negative, non-finite or all-zero weights.
var ErrOptionViolation = errors.New("builder: invalid option value")

// builderErrorf returns "<Method>: <detail>: <err>" keeping err reachable
// through errors.Is.
//
// Complexity: O(len(format) + Σlen(args)).
func builderErrorf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
