package automaton

import "math/rand"

// Source yields uniform values in [0, 1). *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// NewRand returns a seeded math/rand source.
func NewRand(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

// Sequence replays fixed values in order and wraps around when exhausted.
// An empty Sequence always yields 0.
type Sequence struct {
	values []float64
	next   int
}

func NewSequence(values ...float64) *Sequence {
	return &Sequence{values: values}
}

func (s *Sequence) Float64() float64 {
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[s.next%len(s.values)]
	s.next++
	return v
}

// Draws reports how many values have been consumed.
func (s *Sequence) Draws() int { return s.next }
