// SPDX-License-Identifier: MIT

package scenario

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"

	"github.com/katalvlaran/montecarlo/die"
	"github.com/katalvlaran/montecarlo/game"
	"gopkg.in/yaml.v3"
)

// Scenario is one decoded YAML document.
type Scenario struct {
	Name   string    `yaml:"name"`
	Seed   int64     `yaml:"seed,omitempty"`
	Rolls  int       `yaml:"rolls"`
	Strict bool      `yaml:"strict,omitempty"`
	Dice   []DieSpec `yaml:"dice"`
}

// DieSpec describes Count identical dice.
type DieSpec struct {
	Faces   []string       `yaml:"faces"`
	Weights map[string]any `yaml:"weights,omitempty"`
	Count   int            `yaml:"count,omitempty"`
}

// Copies returns how many dice the entry stands for; an absent count means 1.
func (d DieSpec) Copies() int {
	if d.Count == 0 {
		return 1
	}
	return d.Count
}

// Parse decodes and validates one scenario document from r.
func Parse(r io.Reader) (*Scenario, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var s Scenario
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%s: empty document: %w", opParse, ErrInvalidScenario)
		}
		return nil, fmt.Errorf("%s: %w: %w", opParse, ErrInvalidScenario, err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	return &s, nil
}

// Load reads and parses the scenario file at path.
func Load(path string) (*Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opLoad, err)
	}
	defer f.Close()

	s, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", opLoad, path, err)
	}
	if s.Name == "" {
		s.Name = path
	}

	return s, nil
}

// NumDice returns the total number of dice after replication.
func (s *Scenario) NumDice() int {
	n := 0
	for _, d := range s.Dice {
		n += d.Copies()
	}
	return n
}

// Validate checks everything Build relies on. Rolls may be 0 or absent,
// leaving the count to the caller.
//
// Errors (all wrapping ErrInvalidScenario):
//   - negative rolls or count, no dice, a die without faces;
//   - a repeated face, a weight for a face the die lacks;
//   - a weight value that is not numeric.
func (s *Scenario) Validate() error {
	if s.Rolls < 0 {
		return invalidf("rolls must be non-negative, got %d", s.Rolls)
	}
	if len(s.Dice) == 0 {
		return invalidf("dice: at least one die is required")
	}

	for i, d := range s.Dice {
		if d.Count < 0 {
			return invalidf("dice[%d].count must be non-negative, got %d", i, d.Count)
		}
		if len(d.Faces) == 0 {
			return invalidf("dice[%d].faces is empty", i)
		}
		seen := make(map[string]struct{}, len(d.Faces))
		for _, f := range d.Faces {
			if _, dup := seen[f]; dup {
				return invalidf("dice[%d].faces repeats %q", i, f)
			}
			seen[f] = struct{}{}
		}
		for face, v := range d.Weights {
			if _, ok := seen[face]; !ok {
				return invalidf("dice[%d].weights names unknown face %q", i, face)
			}
			if _, err := die.ParseWeight(v); err != nil {
				return invalidf("dice[%d].weights[%q]: %v", i, face, err)
			}
		}
	}

	return nil
}

// Build creates the game the scenario describes. Dice are created in
// document order, each entry replicated Count times.
func (s *Scenario) Build() (*game.Game[string], error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	var seeds *rand.Rand
	if s.Seed != 0 {
		seeds = rand.New(rand.NewSource(s.Seed))
	}

	dice := make([]*die.Die[string], 0, s.NumDice())
	for i, ds := range s.Dice {
		for c := 0; c < ds.Copies(); c++ {
			var opts []die.Option
			if seeds != nil {
				opts = append(opts, die.WithSeed(seeds.Int63()))
			}
			d, err := die.New(ds.Faces, opts...)
			if err != nil {
				return nil, fmt.Errorf("%s: dice[%d]: %w", opBuild, i, err)
			}
			for face, v := range ds.Weights {
				if err = d.ChangeWeight(face, v); err != nil {
					return nil, fmt.Errorf("%s: dice[%d]: %w: %w", opBuild, i, ErrInvalidScenario, err)
				}
			}
			dice = append(dice, d)
		}
	}

	var gopts []game.Option
	if s.Strict {
		gopts = append(gopts, game.WithFaceCheck())
	}
	g, err := game.New(dice, gopts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", opBuild, ErrInvalidScenario, err)
	}

	return g, nil
}

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w", opValidate, fmt.Sprintf(format, args...), ErrInvalidScenario)
}
