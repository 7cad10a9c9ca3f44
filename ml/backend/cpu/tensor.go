// tensor.go - Tensor-Struktur und Basis-Methoden
// Enthaelt: Tensor struct, Dim, Stride, Shape, DType, Floats, FromFloats
package cpu

import (
	"log/slog"
	"slices"

	"github.com/pdevine/tensor"
	"github.com/x448/float16"

	"github.com/7blacky7/kplane/ml"
)

// Tensor repraesentiert einen dichten CPU-Tensor. Rechnung erfolgt immer
// in float32; DTypeF16 begrenzt lediglich die Speicher-Praezision, indem
// geschriebene Werte durch half-precision gerundet werden.
type Tensor struct {
	b     *Backend
	data  *tensor.Dense
	dtype ml.DType
}

// LogValue gibt den Tensor als slog-Wert zurueck
func (t *Tensor) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("shape", t.Shape()),
		slog.Int("dtype", int(t.dtype)),
	)
}

// raw gibt das zugrundeliegende float32-Array zurueck
func (t *Tensor) raw() []float32 {
	return t.data.Data().([]float32)
}

// Dim gibt die Groesse einer Dimension zurueck
func (t *Tensor) Dim(n int) int {
	return t.data.Shape()[n]
}

// Stride gibt den Element-Stride einer Dimension zurueck
func (t *Tensor) Stride(n int) int {
	return t.data.Strides()[n]
}

// Shape gibt die Form des Tensors zurueck
func (t *Tensor) Shape() []int {
	return slices.Clone([]int(t.data.Shape()))
}

// DType gibt den Datentyp des Tensors zurueck
func (t *Tensor) DType() ml.DType {
	return t.dtype
}

// Floats gibt eine Kopie der Elementdaten zurueck
func (t *Tensor) Floats() []float32 {
	return slices.Clone(t.raw())
}

// FromFloats schreibt Elementdaten in-place in den Tensor. Externe
// Optimierer aktualisieren Parameter hierueber, ohne neu zu allokieren.
// Bei DTypeF16 werden die Werte durch half-precision gerundet.
func (t *Tensor) FromFloats(s []float32) {
	data := t.raw()
	if len(s) != len(data) {
		panic(ml.ErrShapeMismatch)
	}

	if t.dtype == ml.DTypeF16 {
		for i, v := range s {
			data[i] = float16.Fromfloat32(v).Float32()
		}
		return
	}

	copy(data, s)
}

// Duplicate erstellt eine tiefe Kopie des Tensors
func (t *Tensor) Duplicate(ctx ml.Context) ml.Tensor {
	clone := t.data.Clone().(*tensor.Dense)
	return &Tensor{b: t.b, data: clone, dtype: t.dtype}
}
