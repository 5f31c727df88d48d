// SPDX-License-Identifier: MIT

// Package builder defines the shared constants used by the dice factories.
package builder

//-----------------------------------------------------------------------------
// Factory Method Names
//   used to prefix errors with the factory name for context.
//-----------------------------------------------------------------------------

const (
	// MethodNumbered is the canonical name for the Numbered factory.
	MethodNumbered = "Numbered"
	// MethodLabeled is the canonical name for the Labeled factory.
	MethodLabeled = "Labeled"
	// MethodNumberedSet is the canonical name for the NumberedSet factory.
	MethodNumberedSet = "NumberedSet"
	// MethodLabeledSet is the canonical name for the LabeledSet factory.
	MethodLabeledSet = "LabeledSet"
)

//-----------------------------------------------------------------------------
// Minimum Sizes
//-----------------------------------------------------------------------------

// MinFaces is the smallest face count a factory accepts. A one-faced die is
// valid and always shows its only face.
const MinFaces = 1

// MinDice is the smallest number of dice a set factory accepts.
const MinDice = 1

// FirstNumberedFace is the value of the lowest face of a numbered die.
const FirstNumberedFace = 1
