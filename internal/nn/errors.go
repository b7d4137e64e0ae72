package nn

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrDimensionMismatch     = errors.New("dimension mismatch")
	ErrBackwardBeforeForward = errors.New("backward called before forward")
	ErrInvalidDimension      = errors.New("dimension must be positive")
	ErrNilRNG                = errors.New("random generator is nil")
	ErrMissingParameter      = errors.New("missing parameter in state dict")
	ErrLayerShared           = errors.New("layer already belongs to a pipeline")
)

// DimensionError reports a vector whose length differs from the declared width.
type DimensionError struct {
	Op       string // Operation that rejected the input (e.g. "Linear.Forward")
	Expected int    // Declared width
	Actual   int    // Length that was passed in
}

// Error implements the error interface.
func (e *DimensionError) Error() string {
	return fmt.Sprintf("%s: expected dimension %d, got %d", e.Op, e.Expected, e.Actual)
}

// Unwrap lets errors.Is match ErrDimensionMismatch.
func (e *DimensionError) Unwrap() error {
	return ErrDimensionMismatch
}

func checkDim(op string, expected, actual int) error {
	if expected != actual {
		return &DimensionError{Op: op, Expected: expected, Actual: actual}
	}
	return nil
}
