// MODUL: kplane
// ZWECK: Multiskalen K-Plane Encoder (Gitter-Zerlegung und Interpolation)
// INPUT: Punkt-Batches mit normierten Koordinaten in [-1, 1]
// OUTPUT: Feature-Batches der Breite NOutputDims
// NEBENEFFEKTE: Keine (Planes werden nur extern durch Optimierer mutiert)
// ABHAENGIGKEITEN: ml (Backend-Abstraktion), gonum (Kombinatorik),
//                  golang.org/x/sync/errgroup (parallele Plane-Abfrage)
// HINWEISE: Vorwaertslauf und externe Parameter-Updates muessen vom
//           Aufrufer serialisiert werden (Train-Step-Disziplin)

package kplane

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat/combin"

	"github.com/7blacky7/kplane/ml"
)

// Fehler-Definitionen fuer den Vorwaertslauf
var (
	// ErrPointDims wird zurueckgegeben wenn die Punkt-Koordinaten nicht
	// die konfigurierte Eingabe-Dimension haben
	ErrPointDims = errors.New("kplane: point coordinate dim does not match input coordinate dim")
)

const (
	// timeAxis ist der Index der Zeitachse bei 4-D Eingaben (3 raeumlich + 1 zeitlich)
	timeAxis = 3

	// spatialAxes ist die Anzahl der Achsen, die von Multiskalen-Faktoren
	// skaliert werden; nachfolgende Achsen (z.B. Zeit) bleiben unveraendert
	spatialAxes = 3
)

// axisCombinations enumeriert alle K-Teilmengen von {0..D-1} in
// lexikographischer Reihenfolge. Die Plane-Listen sind parallel zu
// dieser Liste indiziert.
func axisCombinations(d, k int) [][]int {
	return combin.Combinations(d, k)
}

// KPlane ist der Multiskalen K-Plane Encoder. Er besitzt pro Scale eine
// Plane je Achsen-Kombination; die Plane-Anzahl steht nach der
// Konstruktion fest.
type KPlane struct {
	cfg   Config
	combs [][]int

	// scales haelt die lernbaren Planes, Scale-major und parallel zu combs
	scales [][]ml.Tensor

	nOutputDims int
}

// New erstellt einen K-Plane Encoder und allokiert alle Planes.
// Die Initialisierung ist uniform in [InitLow, InitHigh); bei 4-D
// Eingaben werden Planes mit Zeitachsen-Beteiligung auf 1 gesetzt
// (statisches Prior ueber die Zeit).
func New(ctx ml.Context, cfg Config) (*KPlane, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	d := cfg.Grid.InputCoordinateDim
	combs := axisCombinations(d, cfg.Grid.GridDimensions)
	multipliers := cfg.multiscaleRes()
	low, high := cfg.initRange()
	hasTimePlanes := d == 4

	scales := make([][]ml.Tensor, 0, len(multipliers))
	for si, m := range multipliers {
		// Multiskalen-Faktor wirkt nur auf die raeumlichen Achsen
		res := slices.Clone(cfg.Grid.Resolution)
		for i := 0; i < min(spatialAxes, len(res)); i++ {
			res[i] *= m
		}

		planes := make([]ml.Tensor, 0, len(combs))
		for ci, comb := range combs {
			shape := planeShape(cfg.Grid.OutputCoordinateDim, res, comb)

			var plane ml.Tensor
			if hasTimePlanes && slices.Contains(comb, timeAxis) {
				plane = ctx.Full(1, shape...)
			} else {
				seed := cfg.Seed + int64(si*len(combs)+ci)
				plane = ctx.Uniform(low, high, seed, shape...)
			}
			planes = append(planes, plane)
		}
		scales = append(scales, planes)
	}

	nOutputDims := cfg.Grid.OutputCoordinateDim
	if cfg.ConcatFeatures {
		nOutputDims *= len(multipliers)
	}

	slog.Debug("initialized k-plane grids",
		"scales", len(scales),
		"planes_per_scale", len(combs),
		"output_dims", nOutputDims)

	return &KPlane{
		cfg:         cfg,
		combs:       combs,
		scales:      scales,
		nOutputDims: nOutputDims,
	}, nil
}

// planeShape bildet die Plane-Form [outDim, *aufloesung_umgekehrt].
// Die Aufloesungen der Kombination werden in umgekehrter Reihenfolge
// abgelegt, damit Koordinate j der Kombination die Sampling-Achse
// (K-1-j) trifft.
func planeShape(outDim int, res []int, comb []int) []int {
	shape := make([]int, 0, len(comb)+1)
	shape = append(shape, outDim)
	for i := len(comb) - 1; i >= 0; i-- {
		shape = append(shape, res[comb[i]])
	}
	return shape
}

// NInputDims gibt die erwartete Punkt-Dimension zurueck
func (k *KPlane) NInputDims() int {
	return k.cfg.Grid.InputCoordinateDim
}

// NOutputDims gibt die Feature-Breite des Encoders zurueck. Der Wert
// steht vor dem ersten Vorwaertslauf fest und aendert sich nicht mehr.
func (k *KPlane) NOutputDims() int {
	return k.nOutputDims
}

// NumScales gibt die Anzahl der Scales zurueck
func (k *KPlane) NumScales() int {
	return len(k.scales)
}

// Forward wertet den Encoder fuer einen Punkt-Batch [..., D] aus und
// liefert Features [..., NOutputDims].
func (k *KPlane) Forward(ctx ml.Context, pts ml.Tensor) (ml.Tensor, error) {
	return k.ForwardLevels(ctx, pts, len(k.scales))
}

// ForwardLevels wertet nur die ersten numLevels Scales aus; Werte
// ausserhalb von [1, NumScales] bedeuten alle Scales.
func (k *KPlane) ForwardLevels(ctx ml.Context, pts ml.Tensor, numLevels int) (ml.Tensor, error) {
	d := k.cfg.Grid.InputCoordinateDim

	shape := pts.Shape()
	if shape[len(shape)-1] != d {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrPointDims, shape[len(shape)-1], d)
	}

	n := 1
	for _, s := range shape[:len(shape)-1] {
		n *= s
	}
	coords := pts.Floats()

	if numLevels < 1 || numLevels > len(k.scales) {
		numLevels = len(k.scales)
	}

	width := k.cfg.Grid.OutputCoordinateDim
	if k.cfg.ConcatFeatures {
		width *= numLevels
	}

	var out ml.Tensor
	for _, planes := range k.scales[:numLevels] {
		interp, err := k.interpolateScale(ctx, planes, coords, n)
		if err != nil {
			return nil, err
		}

		switch {
		case out == nil:
			out = interp
		case k.cfg.ConcatFeatures:
			out = out.Concat(ctx, interp, 1)
		default:
			out = out.Add(ctx, interp)
		}
	}

	// Fuehrende Batch-Dimensionen wiederherstellen
	outShape := append(slices.Clone(shape[:len(shape)-1]), width)
	return out.Reshape(ctx, outShape...), nil
}

// interpolateScale sampelt alle Planes einer Scale und bildet das
// elementweise Produkt ueber die Planes (die K-Plane Komposition).
// Die Kombinationen sind unabhaengig und werden parallel abgefragt;
// das Produkt laeuft danach in Listen-Reihenfolge, damit das Ergebnis
// deterministisch bleibt.
func (k *KPlane) interpolateScale(ctx ml.Context, planes []ml.Tensor, coords []float32, n int) (ml.Tensor, error) {
	if len(planes) != len(k.combs) {
		return nil, fmt.Errorf("kplane: %d planes for %d axis combinations", len(planes), len(k.combs))
	}

	d := k.cfg.Grid.InputCoordinateDim
	gridDim := k.cfg.Grid.GridDimensions
	outDim := k.cfg.Grid.OutputCoordinateDim

	sampled := make([]ml.Tensor, len(planes))
	var g errgroup.Group
	for ci, comb := range k.combs {
		g.Go(func() error {
			// Punkte auf die Achsen der Kombination projizieren
			proj := make([]float32, n*gridDim)
			for i := 0; i < n; i++ {
				for j, axis := range comb {
					proj[i*gridDim+j] = coords[i*d+axis]
				}
			}

			interp, err := planes[ci].GridSample(ctx, ctx.FromFloats(proj, n, gridDim), ml.SamplingModeBilinear)
			if err != nil {
				return err
			}

			sampled[ci] = interp.Reshape(ctx, n, outDim)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Produkt ueber Planes, Start bei der multiplikativen Identitaet
	interp := ctx.Full(1, n, outDim)
	for _, s := range sampled {
		interp = interp.Mul(ctx, s)
	}
	return interp, nil
}
