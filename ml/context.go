// context.go - Context und Tensor Interfaces fuer numerische Operationen
// Dieses Modul definiert die Schnittstellen fuer Tensor-Operationen und
// Compute-Kontexte. Alle Shapes sind row-major; Dim(0) ist die aeusserste
// Dimension.
package ml

import "errors"

// Fehler-Definitionen
var (
	// ErrUnsupportedDimension is returned when grid sampling is requested
	// for other than 2 or 3 spatial dimensions.
	ErrUnsupportedDimension = errors.New("ml: grid sampling is only implemented for 2D and 3D data")

	// ErrShapeMismatch is returned when operands of an elementwise
	// operation disagree on shape.
	ErrShapeMismatch = errors.New("ml: tensor shapes do not match")
)

// Context represents an execution context for tensor operations.
type Context interface {
	Empty(dtype DType, shape ...int) Tensor
	Zeros(dtype DType, shape ...int) Tensor

	// Full creates a tensor with every element set to value.
	Full(value float32, shape ...int) Tensor

	FromFloats(s []float32, shape ...int) Tensor

	// Uniform creates a tensor filled with values drawn uniformly from
	// [a, b). The seed makes initialization reproducible.
	Uniform(a, b float32, seed int64, shape ...int) Tensor

	Close()
}

// Tensor represents a multi-dimensional array with the operations the
// encoder needs. Operations never mutate their receiver except FromFloats,
// which writes element data in place so external optimizers can update
// parameters without reallocating.
type Tensor interface {
	Dim(n int) int
	Stride(n int) int

	Shape() []int
	DType() DType

	Floats() []float32
	FromFloats([]float32)

	Add(ctx Context, t2 Tensor) Tensor
	Mul(ctx Context, t2 Tensor) Tensor
	Scale(ctx Context, s float64) Tensor

	Reshape(ctx Context, shape ...int) Tensor
	Concat(ctx Context, t2 Tensor, dim int) Tensor
	Duplicate(ctx Context) Tensor

	// GridSample interpolates the tensor, interpreted as a feature grid of
	// shape [channels, *spatial], at normalized coordinates in [-1, 1].
	// coords has shape [n, gridDim] where gridDim equals the number of
	// spatial dimensions; the result always has shape [n, channels].
	// Sampling is corner-aligned and border-clamped: -1 and +1 map to the
	// first and last cell centers, out-of-range coordinates clamp to the
	// border. Only 2 and 3 spatial dimensions are supported.
	GridSample(ctx Context, coords Tensor, mode SamplingMode) (Tensor, error)
}
