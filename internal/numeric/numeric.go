// Package numeric provides the flat row-major vector kernels used by the
// layers in internal/nn.
//
// Matrices are stored as a single []float32 in row-major order: row i of a
// rows×cols matrix spans [i*cols, (i+1)*cols). The kernels delegate to
// gonum's blas32 after validating the slice bounds themselves, so a bad
// offset surfaces as ErrOutOfBounds rather than a panic inside BLAS.
package numeric

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas32"
)

// ErrOutOfBounds is returned when a kernel would read past the end of a matrix.
var ErrOutOfBounds = errors.New("index out of bounds of the matrix")

// Dot computes the dot product of vec with matrix[start : start+len(vec)].
//
// Returns ErrOutOfBounds (wrapped with the offending range) when the slice
// does not fit inside matrix.
func Dot(matrix, vec []float32, start int) (float32, error) {
	if start < 0 || start > len(matrix)-len(vec) {
		return 0, fmt.Errorf("dot at %d (len %d) of matrix with %d elements: %w", start, len(vec), len(matrix), ErrOutOfBounds)
	}
	end := start + len(vec)
	if len(vec) == 0 {
		return 0, nil
	}

	return blas32.Dot(vector(vec), vector(matrix[start:end])), nil
}

// MulTransVec computes dst = Aᵀ·g for a rows×cols matrix A.
//
// len(g) must equal rows and len(dst) must equal cols. dst is overwritten,
// not accumulated into.
func MulTransVec(dst, a []float32, rows, cols int, g []float32) error {
	if err := checkMatrix(a, rows, cols); err != nil {
		return err
	}
	if len(g) != rows || len(dst) != cols {
		return fmt.Errorf("transpose product %dx%d with g[%d] into dst[%d]: %w", rows, cols, len(g), len(dst), ErrOutOfBounds)
	}

	blas32.Gemv(blas.Trans, 1, general(a, rows, cols), vector(g), 0, vector(dst))
	return nil
}

// AddOuter accumulates the outer product g·xᵀ into the rows×cols matrix a.
//
// len(g) must equal rows and len(x) must equal cols.
func AddOuter(a []float32, rows, cols int, g, x []float32) error {
	if err := checkMatrix(a, rows, cols); err != nil {
		return err
	}
	if len(g) != rows || len(x) != cols {
		return fmt.Errorf("outer product g[%d]·x[%d] into %dx%d: %w", len(g), len(x), rows, cols, ErrOutOfBounds)
	}

	blas32.Ger(1, vector(g), vector(x), general(a, rows, cols))
	return nil
}

func checkMatrix(a []float32, rows, cols int) error {
	if rows <= 0 || cols <= 0 || len(a) != rows*cols {
		return fmt.Errorf("matrix of %d elements is not %dx%d: %w", len(a), rows, cols, ErrOutOfBounds)
	}
	return nil
}

func vector(data []float32) blas32.Vector {
	return blas32.Vector{N: len(data), Inc: 1, Data: data}
}

func general(data []float32, rows, cols int) blas32.General {
	return blas32.General{Rows: rows, Cols: cols, Stride: cols, Data: data}
}

// AddTo accumulates src into dst elementwise.
func AddTo(dst, src []float32) error {
	if len(dst) != len(src) {
		return fmt.Errorf("accumulate src[%d] into dst[%d]: %w", len(src), len(dst), ErrOutOfBounds)
	}
	if len(src) == 0 {
		return nil
	}

	blas32.Axpy(1, vector(src), vector(dst))
	return nil
}
