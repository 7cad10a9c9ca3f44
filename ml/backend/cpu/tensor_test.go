// tensor_test.go - Tests fuer Tensor-Basis-Methoden und Operationen
package cpu

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/7blacky7/kplane/ml"
)

func TestFromFloatsWritesInPlace(t *testing.T) {
	ctx := newTestContext(t)

	tensor := ctx.Zeros(ml.DTypeF32, 2, 2)
	tensor.FromFloats([]float32{1, 2, 3, 4})

	// Floats gibt eine Kopie zurueck, die Mutation der Kopie darf den
	// Tensor nicht veraendern
	got := tensor.Floats()
	got[0] = 99

	if diff := cmp.Diff([]float32{1, 2, 3, 4}, tensor.Floats()); diff != "" {
		t.Errorf("Tensor-Daten veraendert (-want +got):\n%s", diff)
	}
}

func TestFromFloatsHalfPrecision(t *testing.T) {
	ctx := newTestContext(t)

	tensor := ctx.Zeros(ml.DTypeF16, 1, 2)
	tensor.FromFloats([]float32{1.0 / 3.0, 2})

	got := tensor.Floats()

	// 1/3 ist in half-precision nicht exakt darstellbar
	if got[0] == float32(1.0)/3.0 {
		t.Errorf("f16-Tensor speichert volle float32-Praezision: %v", got[0])
	}
	if diff := got[0] - float32(1.0)/3.0; diff > 1e-3 || diff < -1e-3 {
		t.Errorf("f16-Rundung zu grob: %v", got[0])
	}
	if got[1] != 2 {
		t.Errorf("exakt darstellbarer Wert veraendert: %v", got[1])
	}
}

func TestAddMulScale(t *testing.T) {
	ctx := newTestContext(t)

	a := ctx.FromFloats([]float32{1, 2, 3, 4}, 2, 2)
	b := ctx.FromFloats([]float32{10, 20, 30, 40}, 2, 2)

	if diff := cmp.Diff([]float32{11, 22, 33, 44}, a.Add(ctx, b).Floats()); diff != "" {
		t.Errorf("Add (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]float32{10, 40, 90, 160}, a.Mul(ctx, b).Floats()); diff != "" {
		t.Errorf("Mul (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]float32{2, 4, 6, 8}, a.Scale(ctx, 2).Floats()); diff != "" {
		t.Errorf("Scale (-want +got):\n%s", diff)
	}

	// Operanden bleiben unveraendert
	if diff := cmp.Diff([]float32{1, 2, 3, 4}, a.Floats()); diff != "" {
		t.Errorf("Operand mutiert (-want +got):\n%s", diff)
	}
}

func TestConcat(t *testing.T) {
	ctx := newTestContext(t)

	a := ctx.FromFloats([]float32{1, 2, 3, 4}, 2, 2)
	b := ctx.FromFloats([]float32{5, 6}, 2, 1)

	out := a.Concat(ctx, b, 1)
	if diff := cmp.Diff([]int{2, 3}, out.Shape()); diff != "" {
		t.Fatalf("Concat-Shape (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]float32{1, 2, 5, 3, 4, 6}, out.Floats()); diff != "" {
		t.Errorf("Concat (-want +got):\n%s", diff)
	}

	// Verkettung entlang der aeusseren Dimension
	c := ctx.FromFloats([]float32{7, 8}, 1, 2)
	out = a.Concat(ctx, c, 0)
	if diff := cmp.Diff([]float32{1, 2, 3, 4, 7, 8}, out.Floats()); diff != "" {
		t.Errorf("Concat dim 0 (-want +got):\n%s", diff)
	}
}

func TestReshapeAndDuplicate(t *testing.T) {
	ctx := newTestContext(t)

	a := ctx.FromFloats([]float32{1, 2, 3, 4, 5, 6}, 2, 3)

	r := a.Reshape(ctx, 3, 2)
	if diff := cmp.Diff([]int{3, 2}, r.Shape()); diff != "" {
		t.Errorf("Reshape-Shape (-want +got):\n%s", diff)
	}

	// Duplicate ist eine tiefe Kopie
	d := a.Duplicate(ctx)
	d.FromFloats([]float32{9, 9, 9, 9, 9, 9})
	if a.Floats()[0] != 1 {
		t.Errorf("Duplicate teilt Speicher mit dem Original")
	}
}

func TestShapeMismatchPanics(t *testing.T) {
	ctx := newTestContext(t)

	defer func() {
		if recover() == nil {
			t.Errorf("Add mit ungleichen Shapes muss panicen")
		}
	}()

	a := ctx.Zeros(ml.DTypeF32, 2, 2)
	b := ctx.Zeros(ml.DTypeF32, 2, 3)
	a.Add(ctx, b)
}

func TestBackendRegistry(t *testing.T) {
	b, err := ml.NewBackend("cpu", ml.BackendParams{NumThreads: 1})
	if err != nil {
		t.Fatalf("cpu-Backend nicht registriert: %v", err)
	}
	defer b.Close()

	devices := b.BackendDevices()
	if len(devices) != 1 || devices[0].Library != "cpu" {
		t.Errorf("BackendDevices = %v, erwartet ein cpu-Geraet", devices)
	}

	if _, err := ml.NewBackend("tpu", ml.BackendParams{}); err == nil {
		t.Errorf("unbekanntes Backend muss einen Fehler liefern")
	}
}

func TestUniformRange(t *testing.T) {
	ctx := newTestContext(t)

	tensor := ctx.Uniform(0.1, 0.5, 42, 16, 16)
	for i, v := range tensor.Floats() {
		if v < 0.1 || v >= 0.5 {
			t.Fatalf("Element %d = %f ausserhalb [0.1, 0.5)", i, v)
		}
	}

	// Gleicher Seed ergibt identische Initialisierung
	again := ctx.Uniform(0.1, 0.5, 42, 16, 16)
	if diff := cmp.Diff(tensor.Floats(), again.Floats()); diff != "" {
		t.Errorf("Uniform mit gleichem Seed nicht reproduzierbar (-want +got):\n%s", diff)
	}
}
