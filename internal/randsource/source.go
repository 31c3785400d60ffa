package randsource

import (
	"math/rand"

	"primecipher/internal/domain"
)

// Source draws uniform integers from a seeded PRNG. It is intentionally
// not a cryptographic source; the cipher it feeds is a teaching
// exercise and seeding policy belongs to the caller.
type Source struct {
	rng *rand.Rand
}

// New returns a Source seeded with the given value. Callers that want
// per-run variation seed from the wall clock.
func New(seed int64) *Source {
	return &Source{rng: rand.New(rand.NewSource(seed))}
}

// IntInRange returns a uniform value in the closed range [low, high].
func (s *Source) IntInRange(low, high int64) int64 {
	return low + s.rng.Int63n(high-low+1)
}

// Sequence replays a fixed list of values in order, cycling once
// exhausted. Values are returned as given; callers supply values that
// lie inside the ranges they will request.
type Sequence struct {
	values []int64
	next   int
}

// NewSequence builds a replay source over the given values. At least
// one value is required.
func NewSequence(values ...int64) *Sequence {
	if len(values) == 0 {
		panic("randsource: empty sequence")
	}
	return &Sequence{values: values}
}

// IntInRange returns the next replayed value, ignoring the bounds.
func (s *Sequence) IntInRange(low, high int64) int64 {
	v := s.values[s.next%len(s.values)]
	s.next++
	return v
}

// Compile-time assertions that both sources satisfy the domain contract.
var (
	_ domain.RandomSource = (*Source)(nil)
	_ domain.RandomSource = (*Sequence)(nil)
)
