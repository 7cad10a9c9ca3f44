// MODUL: encoder
// ZWECK: Encoder-Interface und zusammengesetzte Encodings
// INPUT: Punkt-Batches
// OUTPUT: Feature-Batches mit deklarierter Breite
// NEBENEFFEKTE: Keine
// ABHAENGIGKEITEN: ml (Backend-Abstraktion)
// HINWEISE: Composite haengt optional die rohen Koordinaten vor die
//           Features des inneren Encoders

package kplane

import (
	"fmt"

	"github.com/7blacky7/kplane/ml"
)

// Encoder ist die Faehigkeits-Schnittstelle fuer Feature-Encoder:
// Punkt-Batch zu Feature-Batch mit deklarierter Ausgabe-Breite.
// Jede Encoder-Variante laesst sich darueber einheitlich komponieren.
type Encoder interface {
	Forward(ctx ml.Context, pts ml.Tensor) (ml.Tensor, error)
	NInputDims() int
	NOutputDims() int
}

// Composite umhuellt einen Encoder und stellt den Features optional die
// (skalierten und verschobenen) Eingabe-Koordinaten voran.
type Composite struct {
	inner Encoder

	// includeInput haengt die rohen Koordinaten vor die Features
	includeInput bool

	// inputScale und inputOffset transformieren die vorangestellten Koordinaten
	inputScale, inputOffset float32
}

// NewComposite erstellt ein zusammengesetztes Encoding um einen Encoder
func NewComposite(inner Encoder, includeInput bool, scale, offset float32) *Composite {
	return &Composite{
		inner:        inner,
		includeInput: includeInput,
		inputScale:   scale,
		inputOffset:  offset,
	}
}

// NInputDims gibt die erwartete Punkt-Dimension zurueck
func (c *Composite) NInputDims() int {
	return c.inner.NInputDims()
}

// NOutputDims gibt die Feature-Breite inklusive vorangestellter
// Koordinaten zurueck
func (c *Composite) NOutputDims() int {
	if c.includeInput {
		return c.inner.NInputDims() + c.inner.NOutputDims()
	}
	return c.inner.NOutputDims()
}

// Forward wertet den inneren Encoder aus und stellt bei Bedarf die
// transformierten Koordinaten voran
func (c *Composite) Forward(ctx ml.Context, pts ml.Tensor) (ml.Tensor, error) {
	features, err := c.inner.Forward(ctx, pts)
	if err != nil {
		return nil, fmt.Errorf("composite encoding: %w", err)
	}

	if !c.includeInput {
		return features, nil
	}

	xyz := pts.Scale(ctx, float64(c.inputScale))
	if c.inputOffset != 0 {
		xyz = xyz.Add(ctx, ctx.Full(c.inputOffset, xyz.Shape()...))
	}

	dim := len(features.Shape()) - 1
	return xyz.Concat(ctx, features, dim), nil
}
