// SPDX-License-Identifier: MIT

package die

import (
	"math/rand"
	"sync"
)

// DefaultWeight is the weight every face starts with.
const DefaultWeight float64 = 1

// Face is the set of types usable as die faces: discrete, comparable and
// ordered, so results can be grouped and sorted into canonical combinations.
type Face interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~string
}

// Die is a weighted die with a fixed face set.
//
// faces keeps construction order; index maps each face to its position in
// faces and weights, so len(index) == len(faces) == len(weights) always holds.
// mu guards weights and rng.
type Die[F Face] struct {
	mu sync.RWMutex

	faces   []F       // construction order, immutable after New
	index   map[F]int // face -> position in faces/weights
	weights []float64 // aligned with faces

	rng *rand.Rand // private stream; stateful, so Roll needs the write lock
}

// State is an independent snapshot of a die's faces and weights.
// Faces and Weights are aligned and keep construction order.
type State[F Face] struct {
	Faces   []F
	Weights []float64
}

// Len returns the number of faces in the snapshot.
func (s State[F]) Len() int { return len(s.Faces) }

// Weight returns the weight recorded for face and whether the face exists.
func (s State[F]) Weight(face F) (float64, bool) {
	for i, f := range s.Faces {
		if f == face {
			return s.Weights[i], true
		}
	}

	return 0, false
}

// Map returns the snapshot as a face -> weight map (order is lost).
func (s State[F]) Map() map[F]float64 {
	m := make(map[F]float64, len(s.Faces))
	for i, f := range s.Faces {
		m[f] = s.Weights[i]
	}

	return m
}

// Total returns the sum of all weights in the snapshot.
func (s State[F]) Total() float64 {
	var sum float64
	for _, w := range s.Weights {
		sum += w
	}

	return sum
}

// Probabilities returns weight/Σweights per face in face order.
// A non-positive total yields all zeros.
func (s State[F]) Probabilities() []float64 {
	p := make([]float64, len(s.Weights))
	total := s.Total()
	if total <= 0 {
		return p
	}
	for i, w := range s.Weights {
		p[i] = w / total
	}

	return p
}
