// tensor_ops.go - Elementweise Operationen und Form-Manipulation
// Enthaelt: Add, Mul, Scale, Reshape, Concat
package cpu

import (
	"slices"

	"github.com/pdevine/tensor"

	"github.com/7blacky7/kplane/ml"
)

// binaryOp wendet fn elementweise auf zwei formgleiche Tensoren an
func (t *Tensor) binaryOp(ctx ml.Context, t2 ml.Tensor, fn func(a, b float32) float32) ml.Tensor {
	other := t2.(*Tensor)
	if !slices.Equal(t.Shape(), other.Shape()) {
		panic(ml.ErrShapeMismatch)
	}

	out := ctx.(*Context).newTensor(t.dtype, t.Shape())
	a, b, dst := t.raw(), other.raw(), out.raw()
	for i := range dst {
		dst[i] = fn(a[i], b[i])
	}
	return out
}

// Add addiert zwei Tensoren elementweise
func (t *Tensor) Add(ctx ml.Context, t2 ml.Tensor) ml.Tensor {
	return t.binaryOp(ctx, t2, func(a, b float32) float32 { return a + b })
}

// Mul multipliziert zwei Tensoren elementweise
func (t *Tensor) Mul(ctx ml.Context, t2 ml.Tensor) ml.Tensor {
	return t.binaryOp(ctx, t2, func(a, b float32) float32 { return a * b })
}

// Scale multipliziert alle Elemente mit einem Skalar
func (t *Tensor) Scale(ctx ml.Context, s float64) ml.Tensor {
	out := ctx.(*Context).newTensor(t.dtype, t.Shape())
	src, dst := t.raw(), out.raw()
	for i := range dst {
		dst[i] = src[i] * float32(s)
	}
	return out
}

// Reshape gibt einen Tensor mit neuer Form und gleichen Daten zurueck
func (t *Tensor) Reshape(ctx ml.Context, shape ...int) ml.Tensor {
	n := 1
	for _, d := range shape {
		n *= d
	}
	if n != len(t.raw()) {
		panic(ml.ErrShapeMismatch)
	}

	dense := tensor.New(tensor.WithShape(shape...), tensor.WithBacking(slices.Clone(t.raw())))
	return &Tensor{b: t.b, data: dense, dtype: t.dtype}
}

// Concat verkettet zwei Tensoren entlang der Dimension dim. Alle uebrigen
// Dimensionen muessen uebereinstimmen.
func (t *Tensor) Concat(ctx ml.Context, t2 ml.Tensor, dim int) ml.Tensor {
	other := t2.(*Tensor)
	shape, otherShape := t.Shape(), other.Shape()
	if len(shape) != len(otherShape) {
		panic(ml.ErrShapeMismatch)
	}
	for i := range shape {
		if i != dim && shape[i] != otherShape[i] {
			panic(ml.ErrShapeMismatch)
		}
	}

	outShape := slices.Clone(shape)
	outShape[dim] = shape[dim] + otherShape[dim]

	outer := 1
	for i := 0; i < dim; i++ {
		outer *= shape[i]
	}
	aBlock := len(t.raw()) / outer
	bBlock := len(other.raw()) / outer

	out := ctx.(*Context).newTensor(t.dtype, outShape)
	a, b, dst := t.raw(), other.raw(), out.raw()
	for i := 0; i < outer; i++ {
		copy(dst[i*(aBlock+bBlock):], a[i*aBlock:(i+1)*aBlock])
		copy(dst[i*(aBlock+bBlock)+aBlock:], b[i*bBlock:(i+1)*bBlock])
	}
	return out
}
