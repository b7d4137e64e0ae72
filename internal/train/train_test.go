package train

import (
	"testing"

	"github.com/born-ml/seqnet/internal/nn"
	"github.com/born-ml/seqnet/internal/parallel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newXORNet(t *testing.T, seed uint64) *nn.Sequential {
	t.Helper()

	model, err := nn.NewBuilder(2, nn.NewRNG(seed)).Linear(8).Tanh().Linear(1).Build()
	require.NoError(t, err)
	return model
}

// TestFit_XOR is the end-to-end acceptance run: 2 → 8 → tanh → 1, MSE,
// lr 0.1, 1000 epochs.
func TestFit_XOR(t *testing.T) {
	model := newXORNet(t, 42)
	data := XOR()

	var epochs []int
	final, err := Fit(model, data, Config{
		Epochs:   1000,
		LR:       0.1,
		LogEvery: 100,
		OnEpoch: func(epoch int, _ float32) {
			epochs = append(epochs, epoch)
		},
	})
	require.NoError(t, err)
	assert.Less(t, final, float32(0.05))
	assert.Equal(t, []int{0, 100, 200, 300, 400, 500, 600, 700, 800, 900, 999}, epochs)

	preds, mean, err := Evaluate(model, data, nn.NewMSELoss(), parallel.DefaultConfig())
	require.NoError(t, err)
	assert.Less(t, mean, float32(0.05))
	for i, p := range preds {
		require.Len(t, p.Output, 1)
		assert.InDelta(t, data[i].Target[0], p.Output[0], 0.2, "sample %v", data[i].Input)
	}
}

func TestFit_Defaults(t *testing.T) {
	cfg := Config{}.withDefaults()
	assert.Equal(t, 1000, cfg.Epochs)
	assert.InDelta(t, float32(0.1), cfg.LR, 1e-9)
	assert.Equal(t, 100, cfg.LogEvery)
}

func TestFit_Errors(t *testing.T) {
	model := newXORNet(t, 1)

	_, err := Fit(model, nil, Config{})
	require.ErrorIs(t, err, ErrEmptyDataset)

	bad := []Sample{{Input: []float32{1, 2, 3}, Target: []float32{0}}}
	_, err = Fit(model, bad, Config{Epochs: 1})
	require.ErrorIs(t, err, nn.ErrDimensionMismatch)
	assert.Contains(t, err.Error(), "epoch 0 sample 0")
}

func TestFit_RejectsNegativeConfig(t *testing.T) {
	model := newXORNet(t, 1)
	params := model.Parameters()

	for name, cfg := range map[string]Config{
		"epochs":    {Epochs: -1},
		"lr":        {Epochs: 1, LR: -0.1},
		"log every": {Epochs: 1, LogEvery: -5},
	} {
		t.Run(name, func(t *testing.T) {
			called := false
			cfg.OnEpoch = func(int, float32) { called = true }

			_, err := Fit(model, XOR(), cfg)
			require.ErrorIs(t, err, ErrInvalidConfig)
			assert.False(t, called)
			assert.Equal(t, params, model.Parameters())
		})
	}
}

func TestEvaluate_DoesNotTouchModel(t *testing.T) {
	model := newXORNet(t, 2)
	params := model.Parameters()

	cfg := parallel.Config{Enabled: true, NumWorkers: 4, MinChunkSize: 1}
	preds, _, err := Evaluate(model, XOR(), nn.NewMSELoss(), cfg)
	require.NoError(t, err)
	require.Len(t, preds, 4)

	// Evaluate ran on clones, so the original still has no forward cache.
	_, err = model.Backward([]float32{1})
	require.ErrorIs(t, err, nn.ErrBackwardBeforeForward)

	// Sequential evaluation on the model itself gives the same outputs.
	for i, s := range XOR() {
		out, err := model.Forward(s.Input)
		require.NoError(t, err)
		assert.Equal(t, out, preds[i].Output)
	}

	assert.Equal(t, params, model.Parameters())
}

func TestEvaluate_Errors(t *testing.T) {
	model := newXORNet(t, 3)

	_, _, err := Evaluate(model, nil, nn.NewMSELoss(), parallel.Sequential())
	require.ErrorIs(t, err, ErrEmptyDataset)

	bad := []Sample{{Input: []float32{1, 0}, Target: []float32{0, 1}}}
	_, _, err = Evaluate(model, bad, nn.NewMSELoss(), parallel.Sequential())
	require.ErrorIs(t, err, nn.ErrDimensionMismatch)
}
