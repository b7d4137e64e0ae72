// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn_test

import (
	"testing"

	"github.com/born-ml/seqnet/nn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLayerInterface verifies that every concrete layer satisfies Layer.
func TestLayerInterface(t *testing.T) {
	rng := nn.NewRNG(1)

	linear, err := nn.NewLinear(4, 4, true, rng)
	require.NoError(t, err)
	tanh, err := nn.NewTanh(4)
	require.NoError(t, err)
	relu, err := nn.NewReLU(4)
	require.NoError(t, err)

	tests := []struct {
		name  string
		layer nn.Layer
		kind  nn.Kind
	}{
		{"Linear", linear, nn.KindLinear},
		{"Tanh", tanh, nn.KindTanh},
		{"ReLU", relu, nn.KindReLU},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, tt.layer.Kind())

			out, err := tt.layer.Forward([]float32{1, -1, 0.5, 2})
			require.NoError(t, err)
			assert.Len(t, out, 4)

			grad, err := tt.layer.Backward([]float32{1, 1, 1, 1})
			require.NoError(t, err)
			assert.Len(t, grad, 4)
		})
	}
}

func TestPublicBuilder(t *testing.T) {
	model, err := nn.NewBuilder(3, nn.NewRNG(7)).Linear(4).ReLU().Linear(2).Build()
	require.NoError(t, err)

	out, err := model.Forward([]float32{1, 2, 3})
	require.NoError(t, err)
	assert.Len(t, out, 2)

	_, err = model.Forward([]float32{1})
	var dimErr *nn.DimensionError
	require.ErrorAs(t, err, &dimErr)
	assert.Equal(t, 3, dimErr.Expected)
}
