package rng

import "sync"

// Scripted replays fixed draws in order. Once a script is exhausted it keeps
// returning the fallback (0 for integers, 0.5 for floats), which ends a rarity
// walk at the current step and selects no modifier.
type Scripted struct {
	mu     sync.Mutex
	ints   []int64
	floats []float64
}

// NewScripted creates a source that returns ints from Int64N and floats from Float64
func NewScripted(ints []int64, floats []float64) *Scripted {
	return &Scripted{ints: ints, floats: floats}
}

// ForRarity scripts a rarity walk that stops at exactly base (base >= 2) and
// a modifier draw of d.
func ForRarity(base int64, d float64) *Scripted {
	return NewScripted(RarityWalk(base), []float64{d})
}

// RarityWalk returns the integer draws that make a walk stop at base
func RarityWalk(base int64) []int64 {
	var ints []int64
	// r = 2..base-1 must miss (any non-zero offset), r = base must hit
	for r := int64(2); r < base; r++ {
		ints = append(ints, r-1)
	}
	return append(ints, 0)
}

func (s *Scripted) Int64N(n int64) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.ints) == 0 {
		return 0
	}
	v := s.ints[0]
	s.ints = s.ints[1:]
	if v >= n {
		v = n - 1
	}
	return v
}

func (s *Scripted) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.floats) == 0 {
		return 0.5
	}
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}
