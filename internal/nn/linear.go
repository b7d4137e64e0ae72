package nn

import (
	"errors"
	"fmt"
	"slices"

	"github.com/born-ml/seqnet/internal/numeric"
	"github.com/born-ml/seqnet/internal/parallel"
)

// Linear implements a fully connected (affine) layer.
//
// Performs the transformation: y = W·x + b
// where:
//   - x is the input vector of length inputDim
//   - W is the weight matrix, stored flat and row-major with outputDim rows
//     of inputDim columns: row i spans [i*inputDim, (i+1)*inputDim)
//   - b is the bias vector of length outputDim (used only when enabled)
//
// Weights are initialized using Xavier/Glorot initialization.
// Biases are initialized to zeros.
//
// Example:
//
//	rng := nn.NewRNG(42)
//	layer, err := nn.NewLinear(2, 8, true, rng)
//	out, err := layer.Forward([]float32{0, 1}) // len(out) == 8
type Linear struct {
	owner

	inputDim    int
	outputDim   int
	weight      *Parameter // [outputDim * inputDim]
	bias        *Parameter // [outputDim]
	biasEnabled bool
	cachedInput []float32 // nil until Forward
	parallel    parallel.Config
}

// NewLinear creates a new Linear layer.
//
// Parameters:
//   - inputDim: Number of input features
//   - outputDim: Number of output features
//   - bias: Whether the bias vector takes part in Forward/Backward
//   - rng: Generator used for Xavier initialization
//
// Returns ErrInvalidDimension for non-positive widths and ErrNilRNG when rng
// is nil.
func NewLinear(inputDim, outputDim int, bias bool, rng *RNG) (*Linear, error) {
	if inputDim <= 0 || outputDim <= 0 {
		return nil, fmt.Errorf("linear %dx%d: %w", inputDim, outputDim, ErrInvalidDimension)
	}
	if rng == nil {
		return nil, fmt.Errorf("linear %dx%d: %w", inputDim, outputDim, ErrNilRNG)
	}

	return &Linear{
		inputDim:    inputDim,
		outputDim:   outputDim,
		weight:      NewParameter("weight", Xavier(inputDim, outputDim, rng)),
		bias:        NewParameter("bias", make([]float32, outputDim)),
		biasEnabled: bias,
		parallel:    parallel.DefaultConfig(),
	}, nil
}

// Kind returns KindLinear.
func (l *Linear) Kind() Kind { return KindLinear }

// InputDim returns the number of input features.
func (l *Linear) InputDim() int { return l.inputDim }

// OutputDim returns the number of output features.
func (l *Linear) OutputDim() int { return l.outputDim }

// BiasEnabled reports whether the bias vector is used.
func (l *Linear) BiasEnabled() bool { return l.biasEnabled }

// Weight returns the weight parameter.
func (l *Linear) Weight() *Parameter { return l.weight }

// Bias returns the bias parameter.
//
// The bias is allocated even when disabled; it then stays zero and is
// excluded from Parameters.
func (l *Linear) Bias() *Parameter { return l.bias }

// SetParallel replaces the row-splitting config used by Forward.
func (l *Linear) SetParallel(cfg parallel.Config) { l.parallel = cfg }

// Parameters returns the learnable tensors in view order.
//
// Returns [weight, bias] if bias is enabled, otherwise [weight].
func (l *Linear) Parameters() []*Parameter {
	if l.biasEnabled {
		return []*Parameter{l.weight, l.bias}
	}
	return []*Parameter{l.weight}
}

// Forward computes y = W·x + b and caches a copy of x.
//
// Each output row is an independent dot product over the weight matrix, so
// wide layers are split across workers.
func (l *Linear) Forward(input []float32) ([]float32, error) {
	if err := checkDim("Linear.Forward", l.inputDim, len(input)); err != nil {
		return nil, err
	}

	w := l.weight.data
	output := make([]float32, l.outputDim)
	errs := make([]error, l.outputDim)

	parallel.For(l.outputDim, func(i int) {
		v, err := numeric.Dot(w, input, i*l.inputDim)
		if err != nil {
			errs[i] = err
			return
		}
		if l.biasEnabled {
			v += l.bias.data[i]
		}
		output[i] = v
	}, l.parallel)

	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("Linear.Forward: %w", err)
	}

	l.cachedInput = slices.Clone(input)
	return output, nil
}

// Backward computes gradients for the layer given dL/dy.
//
// With cached input x and gradOutput g:
//   - grad_bias[i] += g[i] (only when bias is enabled)
//   - grad_weight[i*inputDim+j] += g[i] * x[j]
//   - returns grad_input[j] = Σ_i W[i*inputDim+j] * g[i]
//
// The returned slice is freshly allocated; only parameter gradients
// accumulate. Nothing is mutated when an error is returned.
func (l *Linear) Backward(gradOutput []float32) ([]float32, error) {
	if err := l.ready(); err != nil {
		return nil, err
	}
	if err := checkDim("Linear.Backward", l.outputDim, len(gradOutput)); err != nil {
		return nil, err
	}

	gradInput := make([]float32, l.inputDim)
	if err := numeric.MulTransVec(gradInput, l.weight.data, l.outputDim, l.inputDim, gradOutput); err != nil {
		return nil, fmt.Errorf("Linear.Backward: %w", err)
	}

	if err := numeric.AddOuter(l.weight.grad, l.outputDim, l.inputDim, gradOutput, l.cachedInput); err != nil {
		return nil, fmt.Errorf("Linear.Backward: %w", err)
	}
	if l.biasEnabled {
		if err := numeric.AddTo(l.bias.grad, gradOutput); err != nil {
			return nil, fmt.Errorf("Linear.Backward: %w", err)
		}
	}

	return gradInput, nil
}

// ZeroGrad clears the weight and bias gradients.
//
// The cached input is kept: it belongs to the forward/backward pair, not to
// the gradient accumulator.
func (l *Linear) ZeroGrad() {
	l.weight.ZeroGrad()
	l.bias.ZeroGrad()
}

// StateDict returns copies of the parameters keyed by name.
func (l *Linear) StateDict() map[string][]float32 {
	stateDict := make(map[string][]float32, 2)
	for _, p := range l.Parameters() {
		stateDict[p.name] = slices.Clone(p.data)
	}
	return stateDict
}

// LoadStateDict copies parameter values from a state dictionary.
//
// Every entry is validated before anything is copied.
func (l *Linear) LoadStateDict(stateDict map[string][]float32) error {
	params := l.Parameters()
	for _, p := range params {
		src, ok := stateDict[p.name]
		if !ok {
			return fmt.Errorf("%s: %w", p.name, ErrMissingParameter)
		}
		if err := checkDim("Linear.LoadStateDict "+p.name, p.Len(), len(src)); err != nil {
			return err
		}
	}

	for _, p := range params {
		copy(p.data, stateDict[p.name])
	}
	return nil
}

func (l *Linear) ready() error {
	if l.cachedInput == nil {
		return fmt.Errorf("Linear.Backward: %w", ErrBackwardBeforeForward)
	}
	return nil
}

func (l *Linear) clone() Layer {
	return &Linear{
		inputDim:    l.inputDim,
		outputDim:   l.outputDim,
		weight:      l.weight.clone(),
		bias:        l.bias.clone(),
		biasEnabled: l.biasEnabled,
		parallel:    l.parallel,
	}
}
