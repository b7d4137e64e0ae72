package nn

import "fmt"

// LossFunction scores a prediction against a target.
//
// Both methods fail with a DimensionError when pred and target differ in
// length.
type LossFunction interface {
	// ComputeLoss returns the scalar loss.
	ComputeLoss(pred, target []float32) (float32, error)

	// ComputeGradient returns dLoss/dPred, same length as pred.
	ComputeGradient(pred, target []float32) ([]float32, error)
}

// MSELoss computes Mean Squared Error loss.
//
// Loss = mean((pred - target)²)
// Gradient[i] = 2 * (pred[i] - target[i]) / n
//
// Example:
//
//	mse := nn.NewMSELoss()
//	loss, err := mse.ComputeLoss(pred, target)
type MSELoss struct{}

// NewMSELoss creates a new MSE loss function.
func NewMSELoss() *MSELoss {
	return &MSELoss{}
}

// ComputeLoss returns the mean squared error.
func (m *MSELoss) ComputeLoss(pred, target []float32) (float32, error) {
	if err := checkLossArgs("MSELoss.ComputeLoss", pred, target); err != nil {
		return 0, err
	}

	var sum float32
	for i := range pred {
		diff := pred[i] - target[i]
		sum += diff * diff
	}
	return sum / float32(len(pred)), nil
}

// ComputeGradient returns 2*(pred-target)/n.
func (m *MSELoss) ComputeGradient(pred, target []float32) ([]float32, error) {
	if err := checkLossArgs("MSELoss.ComputeGradient", pred, target); err != nil {
		return nil, err
	}

	n := float32(len(pred))
	grad := make([]float32, len(pred))
	for i := range pred {
		grad[i] = 2 * (pred[i] - target[i]) / n
	}
	return grad, nil
}

func checkLossArgs(op string, pred, target []float32) error {
	if len(pred) == 0 {
		return fmt.Errorf("%s: empty prediction: %w", op, ErrInvalidDimension)
	}
	return checkDim(op, len(pred), len(target))
}
