// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides the layers and pipeline of seqnet.
//
// # Overview
//
// This package contains:
//   - Layers: Linear (affine, Xavier initialized)
//   - Activations: Tanh, ReLU
//   - Pipeline: Sequential, Builder, MLPConfig
//   - Loss functions: MSELoss behind the LossFunction interface
//   - Initialization: RNG, Xavier
//
// Gradients are written by hand for every layer. A Forward call caches what
// the matching Backward needs; Backward accumulates parameter gradients
// until ZeroGrad.
//
// # Basic Usage
//
//	import "github.com/born-ml/seqnet/nn"
//
//	func main() {
//	    rng := nn.NewRNG(42)
//
//	    model, err := nn.NewBuilder(2, rng).
//	        Linear(8).
//	        Tanh().
//	        Linear(1).
//	        Build()
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    output, err := model.Forward([]float32{0, 1})
//	}
//
// # Reproducibility
//
// Weights are drawn from the RNG passed to the builder, in the order the
// Linear layers are appended. The same seed and the same layer sequence
// always give the same weights; there is no package-level random state.
//
// # Parameter Views
//
// Parameters, ParametersMut and Gradients flatten every Linear layer's
// weights then biases, in pipeline order. The three views always have the
// same length and element k of each refers to the same scalar:
//
//	refs := model.ParametersMut()
//	grads := model.Gradients()
//	for k := range refs {
//	    *refs[k] -= lr * grads[k]
//	}
//
// # Errors
//
// Width mismatches return a *DimensionError (matching ErrDimensionMismatch);
// Backward without a preceding Forward returns ErrBackwardBeforeForward.
// A failed call leaves parameters and gradients unchanged.
package nn
