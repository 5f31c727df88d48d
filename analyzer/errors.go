// SPDX-License-Identifier: MIT

package analyzer

import "errors"

// ErrNilGame indicates New was given no game to analyze.
var ErrNilGame = errors.New("analyzer: game is nil")
