package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSeeded_Deterministic(t *testing.T) {
	a, b := NewSeeded(42), NewSeeded(42)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Int64N(1000), b.Int64N(1000))
		assert.Equal(t, a.Float64(), b.Float64())
	}
}

func TestDefault_Ranges(t *testing.T) {
	src := Default()
	for i := 0; i < 1000; i++ {
		v := src.Int64N(3)
		assert.GreaterOrEqual(t, v, int64(0))
		assert.Less(t, v, int64(3))

		f := src.Float64()
		assert.GreaterOrEqual(t, f, 0.0)
		assert.Less(t, f, 1.0)
	}
}

func TestDefault_RuntimeSeeded(t *testing.T) {
	draw := func() []int64 {
		out := make([]int64, 4)
		for i := range out {
			out[i] = Default().Int64N(1 << 62)
		}
		return out
	}
	assert.NotEqual(t, draw(), draw(), "the default source has no fixed seed")
}

func TestScripted(t *testing.T) {
	s := NewScripted([]int64{1, 9}, []float64{0.25})

	assert.Equal(t, int64(1), s.Int64N(5))
	assert.Equal(t, int64(2), s.Int64N(3), "clamped to n-1")
	assert.Equal(t, int64(0), s.Int64N(3), "exhausted")

	assert.Equal(t, 0.25, s.Float64())
	assert.Equal(t, 0.5, s.Float64(), "exhausted")
}

func TestRarityWalk(t *testing.T) {
	assert.Equal(t, []int64{0}, RarityWalk(2))
	assert.Equal(t, []int64{1, 2, 3, 0}, RarityWalk(5))
}
