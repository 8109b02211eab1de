package rng

import (
	"math/rand"
)

// Seeded is a deterministic generator for reproducing shuffles
// This should only be used by tests and demos; use Crypto everywhere else.
type Seeded struct {
	r *rand.Rand
}

// NewSeeded returns a generator seeded with the provided value
func NewSeeded(seed int64) *Seeded {
	return &Seeded{r: rand.New(rand.NewSource(seed))}
}

// Intn returns a random number from 0 < n
func (s *Seeded) Intn(n int) int {
	return s.r.Intn(n)
}
