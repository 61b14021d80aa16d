package core

import "math/rand"

// Rand is the source of randomness for spawn intervals and positions.
// *rand.Rand satisfies it.
type Rand interface {
	// Intn returns a value in [0, n). n must be positive.
	Intn(n int) int
}

// NewRand returns a seeded generator. The engine owns it exclusively,
// so no locking is needed.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// SequenceRand replays a fixed list of values, wrapping around at the end.
// Each value is reduced modulo n so any sequence is valid for any call.
type SequenceRand struct {
	values []int
	next   int
}

// NewSequenceRand creates a generator that yields values in order.
// An empty sequence always yields 0.
func NewSequenceRand(values ...int) *SequenceRand {
	return &SequenceRand{values: values}
}

// Intn returns the next value of the sequence reduced into [0, n).
func (s *SequenceRand) Intn(n int) int {
	if len(s.values) == 0 || n <= 0 {
		return 0
	}
	v := s.values[s.next%len(s.values)]
	s.next++
	if v < 0 {
		v = -v
	}
	return v % n
}
