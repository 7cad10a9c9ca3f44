// gridsample.go - Generisches N-D Grid-Sampling
// Enthaelt die bilinearen und trilinearen Interpolations-Kernel mit
// Border-Clamping und Corner-Alignment. Koordinate j eines Punkts
// indiziert die raeumliche Achse (rank-1-j) des Gitters, passend zur
// umgekehrten Aufloesungs-Reihenfolge der Planes.
package cpu

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/7blacky7/kplane/ml"
)

// GridSample interpoliert den Tensor [channels, *spatial] an normierten
// Koordinaten in [-1, 1]. Das Ergebnis hat immer die Form [n, channels].
func (t *Tensor) GridSample(ctx ml.Context, coords ml.Tensor, mode ml.SamplingMode) (ml.Tensor, error) {
	shape := t.Shape()
	rank := len(shape) - 1
	if rank != 2 && rank != 3 {
		return nil, fmt.Errorf("%w: called with %dD data", ml.ErrUnsupportedDimension, rank)
	}

	pts := coords.(*Tensor)
	ptsShape := pts.Shape()
	if len(ptsShape) != 2 || ptsShape[1] != rank {
		return nil, fmt.Errorf("%w: coords %v do not match %dD grid", ml.ErrShapeMismatch, ptsShape, rank)
	}

	n := ptsShape[0]
	channels := shape[0]
	out := ctx.(*Context).newTensor(ml.DTypeF32, []int{n, channels})

	grid, coordData, dst := t.raw(), pts.raw(), out.raw()

	sample := sampleBilinear2D
	if rank == 3 {
		sample = sampleTrilinear3D
		if mode == ml.SamplingModeNearest {
			sample = sampleNearest3D
		}
	} else if mode == ml.SamplingModeNearest {
		sample = sampleNearest2D
	}

	// Punkte sind unabhaengig, daher chunk-weise parallel
	threads := t.b.threads
	chunk := (n + threads - 1) / threads

	var g errgroup.Group
	g.SetLimit(threads)
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		g.Go(func() error {
			for i := start; i < end; i++ {
				sample(grid, shape, coordData[i*rank:(i+1)*rank], dst[i*channels:(i+1)*channels])
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// unnormalize bildet eine Koordinate aus [-1, 1] auf Zellzentren ab:
// -1 trifft Zelle 0, +1 trifft Zelle size-1, ausserhalb wird geklemmt.
func unnormalize(coord float32, size int) float32 {
	f := (coord + 1) * 0.5 * float32(size-1)
	if f < 0 {
		return 0
	}
	if f > float32(size-1) {
		return float32(size - 1)
	}
	return f
}

func sampleBilinear2D(grid []float32, shape []int, coord, dst []float32) {
	h, w := shape[1], shape[2]

	fx := unnormalize(coord[0], w)
	fy := unnormalize(coord[1], h)

	x0, y0 := int(fx), int(fy)
	x1, y1 := min(x0+1, w-1), min(y0+1, h-1)
	wx, wy := fx-float32(x0), fy-float32(y0)

	for ch := range dst {
		base := ch * h * w
		dst[ch] = grid[base+y0*w+x0]*(1-wx)*(1-wy) +
			grid[base+y0*w+x1]*wx*(1-wy) +
			grid[base+y1*w+x0]*(1-wx)*wy +
			grid[base+y1*w+x1]*wx*wy
	}
}

func sampleNearest2D(grid []float32, shape []int, coord, dst []float32) {
	h, w := shape[1], shape[2]

	x := min(int(unnormalize(coord[0], w)+0.5), w-1)
	y := min(int(unnormalize(coord[1], h)+0.5), h-1)

	for ch := range dst {
		dst[ch] = grid[ch*h*w+y*w+x]
	}
}

func sampleTrilinear3D(grid []float32, shape []int, coord, dst []float32) {
	d, h, w := shape[1], shape[2], shape[3]

	fx := unnormalize(coord[0], w)
	fy := unnormalize(coord[1], h)
	fz := unnormalize(coord[2], d)

	x0, y0, z0 := int(fx), int(fy), int(fz)
	x1, y1, z1 := min(x0+1, w-1), min(y0+1, h-1), min(z0+1, d-1)
	wx, wy, wz := fx-float32(x0), fy-float32(y0), fz-float32(z0)

	for ch := range dst {
		base := ch * d * h * w

		c00 := grid[base+z0*h*w+y0*w+x0]*(1-wx) + grid[base+z0*h*w+y0*w+x1]*wx
		c01 := grid[base+z0*h*w+y1*w+x0]*(1-wx) + grid[base+z0*h*w+y1*w+x1]*wx
		c10 := grid[base+z1*h*w+y0*w+x0]*(1-wx) + grid[base+z1*h*w+y0*w+x1]*wx
		c11 := grid[base+z1*h*w+y1*w+x0]*(1-wx) + grid[base+z1*h*w+y1*w+x1]*wx

		dst[ch] = (c00*(1-wy)+c01*wy)*(1-wz) + (c10*(1-wy)+c11*wy)*wz
	}
}

func sampleNearest3D(grid []float32, shape []int, coord, dst []float32) {
	d, h, w := shape[1], shape[2], shape[3]

	x := min(int(unnormalize(coord[0], w)+0.5), w-1)
	y := min(int(unnormalize(coord[1], h)+0.5), h-1)
	z := min(int(unnormalize(coord[2], d)+0.5), d-1)

	for ch := range dst {
		dst[ch] = grid[ch*d*h*w+z*h*w+y*w+x]
	}
}
