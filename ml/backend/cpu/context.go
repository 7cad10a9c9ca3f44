// context.go - Context-Struktur und Tensor-Konstruktoren
// Enthaelt: Context struct, Empty(), Zeros(), Full(), FromFloats(),
// Uniform() und Close()
package cpu

import (
	"math/rand"

	"github.com/pdevine/tensor"

	"github.com/7blacky7/kplane/ml"
)

// Context repraesentiert einen CPU-Berechnungskontext. Er haelt keinen
// eigenen Zustand ausser dem Backend und ist fuer nebenlaeufige
// Tensor-Erstellung sicher.
type Context struct {
	b *Backend
}

// Empty erstellt einen uninitialisierten Tensor der gegebenen Form
func (c *Context) Empty(dtype ml.DType, shape ...int) ml.Tensor {
	return c.newTensor(dtype, shape)
}

// Zeros erstellt einen mit Nullen gefuellten Tensor
func (c *Context) Zeros(dtype ml.DType, shape ...int) ml.Tensor {
	return c.newTensor(dtype, shape)
}

// Full erstellt einen Tensor, dessen Elemente alle auf value gesetzt sind
func (c *Context) Full(value float32, shape ...int) ml.Tensor {
	t := c.newTensor(ml.DTypeF32, shape)
	data := t.raw()
	for i := range data {
		data[i] = value
	}
	return t
}

// FromFloats erstellt einen Tensor aus einem float32-Slice. Die Daten
// werden kopiert, der Aufrufer behaelt sein Slice.
func (c *Context) FromFloats(s []float32, shape ...int) ml.Tensor {
	t := c.newTensor(ml.DTypeF32, shape)
	if len(s) != len(t.raw()) {
		panic(ml.ErrShapeMismatch)
	}
	copy(t.raw(), s)
	return t
}

// Uniform erstellt einen Tensor mit gleichverteilten Werten aus [a, b).
// Der Seed macht die Initialisierung reproduzierbar.
func (c *Context) Uniform(a, b float32, seed int64, shape ...int) ml.Tensor {
	t := c.newTensor(ml.DTypeF32, shape)
	rng := rand.New(rand.NewSource(seed))
	data := t.raw()
	for i := range data {
		data[i] = a + rng.Float32()*(b-a)
	}
	return t
}

// Close gibt die Ressourcen des Kontexts frei
func (c *Context) Close() {}

// newTensor allokiert einen dichten float32-Tensor der gegebenen Form
func (c *Context) newTensor(dtype ml.DType, shape []int) *Tensor {
	if len(shape) == 0 {
		panic("cpu: tensor must have at least one dimension")
	}

	dense := tensor.New(tensor.WithShape(shape...), tensor.Of(tensor.Float32))
	return &Tensor{b: c.b, data: dense, dtype: dtype}
}
