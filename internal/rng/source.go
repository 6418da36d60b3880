// Package rng provides the random sources the roll engine draws from.
package rng

import (
	"math/rand/v2"
	"sync"
)

// Source is the randomness the samplers depend on
type Source interface {
	// Int64N returns a uniform integer in [0, n). n must be > 0.
	Int64N(n int64) int64
	// Float64 returns a uniform float in [0, 1).
	Float64() float64
}

type globalSource struct{}

// Default returns the process-wide source backed by the math/rand/v2 global
// generator (ChaCha8, seeded by the runtime). Game logic randomness, not
// security critical and not crypto/rand.
func Default() Source { return globalSource{} }

func (globalSource) Int64N(n int64) int64 {
	return rand.Int64N(n) //nolint:gosec // Game logic randomness, not security critical
}

func (globalSource) Float64() float64 {
	return rand.Float64() //nolint:gosec // Game logic randomness, not security critical
}

// seededSource is a reproducible source for simulations and tests
type seededSource struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewSeeded returns a deterministic source. Safe for concurrent use.
func NewSeeded(seed uint64) Source {
	return &seededSource{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))} //nolint:gosec
}

func (s *seededSource) Int64N(n int64) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Int64N(n)
}

func (s *seededSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Float64()
}
