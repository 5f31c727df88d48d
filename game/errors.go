// SPDX-License-Identifier: MIT

package game

import (
	"errors"
	"fmt"
)

// Sentinel errors for game operations.
var (
	// ErrNoDice indicates a game was constructed without dice.
	ErrNoDice = errors.New("game: no dice")

	// ErrNilDie indicates the dice slice contains a nil element.
	ErrNilDie = errors.New("game: nil die")

	// ErrFaceMismatch indicates dice with different face sets under WithFaceCheck.
	ErrFaceMismatch = errors.New("game: dice do not share a face set")

	// ErrNoPlay indicates a result was requested before the first Play.
	ErrNoPlay = errors.New("game: no play recorded")

	// ErrInvalidShape indicates a result shape other than "wide" or "narrow".
	ErrInvalidShape = errors.New("game: shape must be 'wide' or 'narrow'")

	// ErrMalformedTable indicates a narrow table that does not describe a
	// complete rolls × dice grid.
	ErrMalformedTable = errors.New("game: malformed result table")
)

// Operation names used as error context.
const (
	opNew            = "New"
	opPlay           = "Play"
	opShowRecentPlay = "ShowRecentPlay"
	opParseShape     = "ParseShape"
	opNarrowToWide   = "NarrowTable.Wide"
)

// gameErrorf returns "<op>: <detail>: <err>" keeping err reachable via errors.Is.
func gameErrorf(op string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", op, fmt.Sprintf(format, args...), err)
}
