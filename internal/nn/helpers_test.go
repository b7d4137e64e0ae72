package nn

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/diff/fd"
)

// fdSettings uses a step large enough to stay clear of float32 rounding.
var fdSettings = &fd.Settings{Formula: fd.Central, Step: 1e-2}

// project returns Σ c[i]*y[i], a scalar whose gradient w.r.t. y is c.
func project(c, y []float32) float64 {
	var sum float64
	for i := range y {
		sum += float64(c[i]) * float64(y[i])
	}
	return sum
}

func toFloat64(v []float32) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = float64(x)
	}
	return out
}

func toFloat32(v []float64) []float32 {
	out := make([]float32, len(v))
	for i, x := range v {
		out[i] = float32(x)
	}
	return out
}

// numericInputGrad approximates d(c·layer(x))/dx by central differences.
func numericInputGrad(t *testing.T, layer Layer, x, c []float32) []float64 {
	t.Helper()
	return numericInputGradFunc(t, layer.Forward, x, c)
}

// randomVector draws n values from U(lo, hi), flipping the sign of every
// other entry so activations see both signs.
func randomVector(rng *RNG, n int, lo, hi float32) []float32 {
	v := make([]float32, n)
	for i := range v {
		v[i] = rng.Uniform(lo, hi)
		if i%2 == 1 {
			v[i] = -v[i]
		}
	}
	return v
}

// numericInputGradFunc is numericInputGrad for any forward function.
func numericInputGradFunc(t *testing.T, forward func([]float32) ([]float32, error), x, c []float32) []float64 {
	t.Helper()

	return fd.Gradient(nil, func(v []float64) float64 {
		y, err := forward(toFloat32(v))
		require.NoError(t, err)
		return project(c, y)
	}, toFloat64(x), fdSettings)
}
