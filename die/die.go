// SPDX-License-Identifier: MIT
//
// File: die.go
// Role: Die lifecycle, weight updates and weighted sampling.
//
// Determinism:
//   - Faces() and CurrentState() keep construction order.
//   - Roll consumes exactly one Float64 from the die's stream per draw, so a
//     seeded die replays the same sequence for the same call pattern.
//
// Concurrency:
//   - weights and rng are guarded by mu; faces/index are immutable after New.
package die

import (
	"sort"
)

// New builds a die from faces, every face weighted DefaultWeight.
//
// Errors:
//   - ErrNoFaces if faces is empty.
//   - ErrDuplicateFace if a value repeats; the error names the first repeat.
//
// The input slice is copied; later changes to it do not affect the die.
// Complexity: O(n) time and space.
func New[F Face](faces []F, opts ...Option) (*Die[F], error) {
	if len(faces) == 0 {
		return nil, dieErrorf(opNew, ErrNoFaces, "got %d faces", 0)
	}

	index := make(map[F]int, len(faces))
	for i, f := range faces {
		if _, dup := index[f]; dup {
			return nil, dieErrorf(opNew, ErrDuplicateFace, "face %v repeats at position %d", f, i)
		}
		index[f] = i
	}

	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, dieErrorf(opNew, err, "seed random source")
	}

	weights := make([]float64, len(faces))
	for i := range weights {
		weights[i] = DefaultWeight
	}

	return &Die[F]{
		faces:   append([]F(nil), faces...),
		index:   index,
		weights: weights,
		rng:     cfg.rng,
	}, nil
}

// ChangeWeight replaces the weight of face with value, which must be numeric
// or a string parseable as a float. No bound is enforced: zero makes the face
// unrollable, and negative values are accepted here but make Roll fail with
// ErrInvalidWeights until corrected.
//
// Errors (die unchanged on failure):
//   - ErrUnknownFace if face is not on the die.
//   - ErrNotNumeric if value cannot be coerced.
func (d *Die[F]) ChangeWeight(face F, value any) error {
	pos, ok := d.index[face]
	if !ok {
		return dieErrorf(opChangeWeight, ErrUnknownFace, "face %v", face)
	}
	w, err := coerceWeight(value)
	if err != nil {
		return dieErrorf(opChangeWeight, err, "face %v: value %#v", face, value)
	}

	d.mu.Lock()
	d.weights[pos] = w
	d.mu.Unlock()

	return nil
}

// SetWeight is the typed form of ChangeWeight.
func (d *Die[F]) SetWeight(face F, weight float64) error {
	pos, ok := d.index[face]
	if !ok {
		return dieErrorf(opSetWeight, ErrUnknownFace, "face %v", face)
	}

	d.mu.Lock()
	d.weights[pos] = weight
	d.mu.Unlock()

	return nil
}

// Roll performs count independent weighted draws with replacement and
// returns the faces in draw order. count == 0 yields an empty slice.
//
// Implementation:
//   - Stage 1: Under the write lock, build cumulative weights from the current
//     weights (normalization is recomputed on every call).
//   - Stage 2: For each draw, scale a uniform [0,1) sample by the total and
//     binary-search the first cumulative bound above it.
//
// Zero-weight faces share their bound with the previous face and are never
// selected.
//
// Errors:
//   - ErrNegativeCount if count < 0.
//   - ErrInvalidWeights if the weights cannot be normalized.
//
// Complexity: O(n + count·log n) time, O(n + count) space.
func (d *Die[F]) Roll(count int) ([]F, error) {
	if count < 0 {
		return nil, dieErrorf(opRoll, ErrNegativeCount, "got %d", count)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	cum, total, err := cumulative(d.weights)
	if err != nil {
		return nil, dieErrorf(opRoll, err, "weights %v", d.weights)
	}

	out := make([]F, count)
	last := len(cum) - 1
	for i := range out {
		u := d.rng.Float64() * total
		pos := sort.Search(len(cum), func(j int) bool { return cum[j] > u })
		if pos > last {
			// u landed on the total through rounding; take the last rollable face.
			pos = lastPositive(d.weights)
		}
		out[i] = d.faces[pos]
	}

	return out, nil
}

// RollOne draws a single face.
func (d *Die[F]) RollOne() (F, error) {
	faces, err := d.Roll(1)
	if err != nil {
		var zero F
		return zero, err
	}

	return faces[0], nil
}

// CurrentState returns a deep copy of the faces and weights in construction
// order. Mutating the result never affects the die.
func (d *Die[F]) CurrentState() State[F] {
	d.mu.RLock()
	weights := append([]float64(nil), d.weights...)
	d.mu.RUnlock()

	return State[F]{
		Faces:   d.Faces(),
		Weights: weights,
	}
}

// Faces returns a copy of the face labels in construction order.
func (d *Die[F]) Faces() []F {
	return append([]F(nil), d.faces...)
}

// NumFaces returns the number of faces.
func (d *Die[F]) NumFaces() int { return len(d.faces) }

// HasFace reports whether face is on the die.
func (d *Die[F]) HasFace(face F) bool {
	_, ok := d.index[face]
	return ok
}

// SameFaces reports whether d and other carry exactly the same face set,
// ignoring order and weights.
func (d *Die[F]) SameFaces(other *Die[F]) bool {
	if other == nil || len(d.faces) != len(other.faces) {
		return false
	}
	for _, f := range d.faces {
		if !other.HasFace(f) {
			return false
		}
	}

	return true
}

// lastPositive returns the position of the last face with a positive weight.
// Callers guarantee at least one exists.
func lastPositive(weights []float64) int {
	for i := len(weights) - 1; i >= 0; i-- {
		if weights[i] > 0 {
			return i
		}
	}

	return len(weights) - 1
}
