// types.go - Datentypen und Konstanten fuer ML-Operationen
// Dieses Modul definiert grundlegende Typen wie DType und SamplingMode.
package ml

// DType represents the data type of tensor elements.
type DType int

const (
	DTypeOther DType = iota
	DTypeF32
	DTypeF16
)

// SamplingMode specifies the interpolation method for grid sampling.
type SamplingMode int

const (
	SamplingModeNearest SamplingMode = iota
	SamplingModeBilinear
)

func (m SamplingMode) String() string {
	switch m {
	case SamplingModeNearest:
		return "nearest"
	case SamplingModeBilinear:
		return "bilinear"
	default:
		return "unknown"
	}
}
