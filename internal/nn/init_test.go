package nn

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
)

func TestXavier_Bound(t *testing.T) {
	rng := NewRNG(3)

	w := Xavier(10, 5, rng)
	assert.Len(t, w, 50)

	bound := XavierBound(10, 5)
	assert.InDelta(t, math32.Sqrt(6.0/15.0), bound, 1e-6)

	for i, v := range w {
		assert.LessOrEqual(t, math32.Abs(v), bound, "weight %d outside Xavier bound", i)
	}
}

func TestRNG_Reproducible(t *testing.T) {
	a := Xavier(4, 4, NewRNG(7))
	b := Xavier(4, 4, NewRNG(7))
	c := Xavier(4, 4, NewRNG(8))

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestRNG_Independent(t *testing.T) {
	// Drawing from one generator must not shift another.
	r1, r2 := NewRNG(11), NewRNG(11)
	other := NewRNG(99)

	first := r1.Uniform(-1, 1)
	_ = other.Uniform(-1, 1)
	_ = other.Uniform(-1, 1)
	second := r2.Uniform(-1, 1)

	assert.Equal(t, first, second)
}
