// SPDX-License-Identifier: MIT

// Package builder provides the face label schemes used by Labeled dice.
package builder

import (
	"fmt"
	"strconv"
)

// alphabetSize is the number of uppercase Latin letters.
const alphabetSize = 26

// IDFn produces a face label from its zero-based index. It must be pure:
// the same idx always yields the same label, and distinct indices must yield
// distinct labels for the die to be valid.
type IDFn func(idx int) string

// DefaultIDFn labels faces with decimal strings: 0→"0", 42→"42".
// Never panics.
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// SymbolIDFn labels faces with single uppercase letters: 0→"A", 25→"Z".
// Panics if idx is outside [0,25].
func SymbolIDFn(idx int) string {
	if idx < 0 || idx >= alphabetSize {
		panic(fmt.Sprintf("SymbolIDFn: idx must be in [0,25], got %d", idx))
	}
	return string(rune('A' + idx))
}

// AlphanumericIDFn labels faces in base 36: 10→"a", 35→"z", 36→"10".
// Panics if idx < 0.
func AlphanumericIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("AlphanumericIDFn: idx must be ≥ 0, got %d", idx))
	}
	return strconv.FormatInt(int64(idx), 36)
}

// ExcelColumnIDFn labels faces like spreadsheet columns: 0→"A", 25→"Z",
// 26→"AA", 701→"ZZ". Panics if idx < 0.
//
// Complexity: O(log₂₆ idx).
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnIDFn: idx must be ≥ 0, got %d", idx))
	}
	// bijective base 26, filled from the right
	var buf [16]byte
	pos := len(buf)
	for n := idx + 1; n > 0; n = (n - 1) / alphabetSize {
		pos--
		buf[pos] = byte('A' + (n-1)%alphabetSize)
	}
	return string(buf[pos:])
}

// HexIDFn labels faces in lowercase hexadecimal: 10→"a", 255→"ff".
// Panics if idx < 0.
func HexIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("HexIDFn: idx must be ≥ 0, got %d", idx))
	}
	return strconv.FormatInt(int64(idx), 16)
}

// SymbolNumberIDFn labels faces prefix + decimal index: "side0", "side1", ...
// The returned IDFn panics if idx < 0.
func SymbolNumberIDFn(prefix string) IDFn {
	return func(idx int) string {
		if idx < 0 {
			panic(fmt.Sprintf("SymbolNumberIDFn: idx must be ≥ 0, got %d", idx))
		}
		return prefix + strconv.Itoa(idx)
	}
}

// WithSymbNumb labels faces with SymbolNumberIDFn(prefix).
func WithSymbNumb(prefix string) BuilderOption {
	return WithIDScheme(SymbolNumberIDFn(prefix))
}

// WithDefaultIDs labels faces with DefaultIDFn.
func WithDefaultIDs() BuilderOption {
	return WithIDScheme(DefaultIDFn)
}

// WithSymbolIDs labels faces with SymbolIDFn (at most 26 faces).
func WithSymbolIDs() BuilderOption {
	return WithIDScheme(SymbolIDFn)
}

// WithExcelColumnIDs labels faces with ExcelColumnIDFn.
func WithExcelColumnIDs() BuilderOption {
	return WithIDScheme(ExcelColumnIDFn)
}

// WithHexIDs labels faces with HexIDFn.
func WithHexIDs() BuilderOption {
	return WithIDScheme(HexIDFn)
}

// WithAlphanumericIDs labels faces with AlphanumericIDFn.
func WithAlphanumericIDs() BuilderOption {
	return WithIDScheme(AlphanumericIDFn)
}
