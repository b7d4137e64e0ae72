package nn

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Sequential is a container that chains layers into a linear pipeline.
//
// Each layer's output becomes the next layer's input. The pipeline owns its
// layers: they are created for it by Builder (or handed over through Add)
// and must not be shared with another pipeline.
//
// Widths are validated when a layer is appended, so every layer's InputDim
// equals the OutputDim of the layer before it (or the pipeline InputDim for
// the first layer).
//
// Example:
//
//	model, err := nn.NewBuilder(2, nn.NewRNG(42)).
//	    Linear(8).
//	    Tanh().
//	    Linear(1).
//	    Build()
//
//	output, err := model.Forward([]float32{0, 1})
type Sequential struct {
	inputDim   int
	currentDim int
	layers     []Layer
}

// NewSequential creates an empty pipeline accepting vectors of width inputDim.
func NewSequential(inputDim int) (*Sequential, error) {
	if inputDim <= 0 {
		return nil, fmt.Errorf("sequential %d: %w", inputDim, ErrInvalidDimension)
	}
	return &Sequential{inputDim: inputDim, currentDim: inputDim}, nil
}

// Add appends a layer to the pipeline and takes ownership of it.
//
// The layer's InputDim must equal the pipeline's current OutputDim. A layer
// already added to this or any other pipeline is rejected with
// ErrLayerShared.
func (s *Sequential) Add(layer Layer) error {
	if layer == nil {
		return errors.New("Sequential.Add: nil layer")
	}
	if layer.isOwned() {
		return fmt.Errorf("Sequential.Add %s: %w", layer.Kind(), ErrLayerShared)
	}
	if err := checkDim("Sequential.Add "+layer.Kind().String(), s.currentDim, layer.InputDim()); err != nil {
		return err
	}

	layer.setOwned()
	s.layers = append(s.layers, layer)
	s.currentDim = layer.OutputDim()
	return nil
}

// InputDim returns the width of vectors accepted by Forward.
func (s *Sequential) InputDim() int { return s.inputDim }

// OutputDim returns the width of vectors returned by Forward.
func (s *Sequential) OutputDim() int { return s.currentDim }

// Len returns the number of layers.
func (s *Sequential) Len() int { return len(s.layers) }

// Layer returns the layer at index i.
//
// Panics if index is out of bounds.
func (s *Sequential) Layer(i int) Layer {
	if i < 0 || i >= len(s.layers) {
		panic("Sequential.Layer: index out of bounds")
	}
	return s.layers[i]
}

// Forward applies all layers in order.
func (s *Sequential) Forward(input []float32) ([]float32, error) {
	if err := checkDim("Sequential.Forward", s.inputDim, len(input)); err != nil {
		return nil, err
	}

	output := slices.Clone(input)
	for i, layer := range s.layers {
		var err error
		output, err = layer.Forward(output)
		if err != nil {
			return nil, fmt.Errorf("layer %d (%s): %w", i, layer.Kind(), err)
		}
	}
	return output, nil
}

// Backward propagates gradOutput through the layers in reverse order.
//
// Returns the gradient with respect to the pipeline input. Every layer is
// checked for a cached forward pass before any gradient is accumulated, so a
// failed call leaves all accumulators untouched.
func (s *Sequential) Backward(gradOutput []float32) ([]float32, error) {
	if err := checkDim("Sequential.Backward", s.currentDim, len(gradOutput)); err != nil {
		return nil, err
	}
	for i, layer := range s.layers {
		if err := layer.ready(); err != nil {
			return nil, fmt.Errorf("layer %d (%s): %w", i, layer.Kind(), err)
		}
	}

	grad := slices.Clone(gradOutput)
	for i := len(s.layers) - 1; i >= 0; i-- {
		var err error
		grad, err = s.layers[i].Backward(grad)
		if err != nil {
			return nil, fmt.Errorf("layer %d (%s): %w", i, s.layers[i].Kind(), err)
		}
	}
	return grad, nil
}

// ZeroGrad calls ZeroGrad on every layer in order.
func (s *Sequential) ZeroGrad() {
	for _, layer := range s.layers {
		layer.ZeroGrad()
	}
}

// NamedParameters returns the learnable tensors of every Linear layer.
//
// Names are prefixed with the layer index ("0.weight", "0.bias",
// "2.weight", ...). Order matches Parameters and Gradients.
func (s *Sequential) NamedParameters() []*Parameter {
	var params []*Parameter
	s.walk(func(i int, p *Parameter) {
		params = append(params, &Parameter{
			name: strconv.Itoa(i) + "." + p.name,
			data: p.data,
			grad: p.grad,
		})
	})
	return params
}

// Parameters returns a copy of every learnable scalar, flattened.
//
// Layers are visited in pipeline order; within a Linear layer weights come
// before biases, and disabled biases are skipped. Non-Linear layers
// contribute nothing.
func (s *Sequential) Parameters() []float32 {
	var values []float32
	s.walk(func(_ int, p *Parameter) {
		values = append(values, p.data...)
	})
	return values
}

// ParametersMut returns references to every learnable scalar.
//
// The view is rebuilt on every call and aligned with Gradients: element k
// of both refers to the same parameter.
func (s *Sequential) ParametersMut() []*float32 {
	var refs []*float32
	s.walk(func(_ int, p *Parameter) {
		for k := range p.data {
			refs = append(refs, &p.data[k])
		}
	})
	return refs
}

// Gradients returns a copy of every accumulated gradient, aligned with
// Parameters.
func (s *Sequential) Gradients() []float32 {
	var grads []float32
	s.walk(func(_ int, p *Parameter) {
		grads = append(grads, p.grad...)
	})
	return grads
}

// NumParameters returns the number of learnable scalars.
func (s *Sequential) NumParameters() int {
	n := 0
	s.walk(func(_ int, p *Parameter) {
		n += p.Len()
	})
	return n
}

// walk visits every learnable tensor in view order.
func (s *Sequential) walk(visit func(layer int, p *Parameter)) {
	for i, layer := range s.layers {
		switch l := layer.(type) {
		case *Linear:
			for _, p := range l.Parameters() {
				visit(i, p)
			}
		case *Tanh, *ReLU:
			// No learnable state.
		}
	}
}

// StateDict returns copies of all parameters keyed by "<index>.<name>".
func (s *Sequential) StateDict() map[string][]float32 {
	stateDict := make(map[string][]float32)
	for _, p := range s.NamedParameters() {
		stateDict[p.name] = slices.Clone(p.data)
	}
	return stateDict
}

// LoadStateDict loads parameters from a state dictionary produced by
// StateDict. Shapes are validated for every layer before any value is
// copied.
func (s *Sequential) LoadStateDict(stateDict map[string][]float32) error {
	perLayer := make(map[int]map[string][]float32)
	for i, layer := range s.layers {
		if _, ok := layer.(*Linear); !ok {
			continue
		}
		prefix := strconv.Itoa(i) + "."
		sub := make(map[string][]float32)
		for key, values := range stateDict {
			if name, ok := strings.CutPrefix(key, prefix); ok {
				sub[name] = values
			}
		}
		perLayer[i] = sub
	}

	for i, sub := range perLayer {
		lin := s.layers[i].(*Linear)
		for _, p := range lin.Parameters() {
			src, ok := sub[p.name]
			if !ok {
				return fmt.Errorf("layer %d: %s: %w", i, p.name, ErrMissingParameter)
			}
			if err := checkDim(fmt.Sprintf("Sequential.LoadStateDict %d.%s", i, p.name), p.Len(), len(src)); err != nil {
				return err
			}
		}
	}

	for i, sub := range perLayer {
		if err := s.layers[i].(*Linear).LoadStateDict(sub); err != nil {
			return fmt.Errorf("failed to load layer %d: %w", i, err)
		}
	}
	return nil
}

// Clone returns a deep copy of the pipeline.
//
// The copy has the same weights, zeroed gradients and empty forward caches.
// Clones can run Forward/Backward concurrently with the original since no
// state is shared.
func (s *Sequential) Clone() *Sequential {
	layers := make([]Layer, len(s.layers))
	for i, layer := range s.layers {
		layers[i] = layer.clone()
		layers[i].setOwned()
	}
	return &Sequential{
		inputDim:   s.inputDim,
		currentDim: s.currentDim,
		layers:     layers,
	}
}

// String describes the pipeline, e.g. "Sequential(2 -> Linear(8) -> Tanh -> Linear(1))".
func (s *Sequential) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Sequential(%d", s.inputDim)
	for _, layer := range s.layers {
		b.WriteString(" -> ")
		if layer.Kind() == KindLinear {
			fmt.Fprintf(&b, "Linear(%d)", layer.OutputDim())
		} else {
			b.WriteString(layer.Kind().String())
		}
	}
	b.WriteString(")")
	return b.String()
}
