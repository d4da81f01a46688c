package engine

import (
	"hash/maphash"
	"math/rand/v2"
)

// Source supplies the per-cell draws used by CreateBoard. *rand.Rand
// satisfies it.
type Source interface {
	Float64() float64
}

// NewSource returns a PCG-backed source. A zero seed is replaced by a random
// one.
func NewSource(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = new(maphash.Hash).Sum64()
	}
	return rand.New(rand.NewPCG(seed, seed))
}

// FixedSource replays its values in order, wrapping around at the end.
type FixedSource struct {
	values []float64
	next   int
}

func NewFixedSource(values ...float64) *FixedSource {
	if len(values) == 0 {
		panic("FixedSource needs at least one value")
	}
	return &FixedSource{values: values}
}

func (s *FixedSource) Float64() float64 {
	v := s.values[s.next]
	s.next = (s.next + 1) % len(s.values)
	return v
}

// AlwaysOn lights every cell for any positive chance.
func AlwaysOn() *FixedSource {
	return NewFixedSource(0)
}

// AlwaysOff leaves every cell unlit, whatever the chance.
func AlwaysOff() *FixedSource {
	return NewFixedSource(1)
}
