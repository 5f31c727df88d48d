// SPDX-License-Identifier: MIT

package scenario

import "errors"

// ErrInvalidScenario indicates a document that cannot be decoded or that
// describes dice which cannot be built. The wrapped message names the field.
var ErrInvalidScenario = errors.New("scenario: invalid scenario")

// Operation names used as error context.
const (
	opParse    = "Parse"
	opLoad     = "Load"
	opValidate = "Validate"
	opBuild    = "Build"
)
