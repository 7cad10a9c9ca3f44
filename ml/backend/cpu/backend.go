// backend.go - CPU-Backend: Registrierung, Geraete-Info und Lifecycle
// Dieses Modul implementiert ml.Backend als reines Go-Backend ohne
// externe Beschleuniger. Tensoren liegen als dichte float32-Arrays im
// Hauptspeicher.
package cpu

import (
	"log/slog"
	"runtime"

	"github.com/7blacky7/kplane/envconfig"
	"github.com/7blacky7/kplane/ml"
)

func init() {
	ml.RegisterBackend("cpu", New)
}

// Backend ist das CPU-Backend fuer Tensor-Operationen
type Backend struct {
	// threads ist die Anzahl der Worker fuer punkt-parallele Kernel
	threads int

	// trackGradients markiert neu erstellte Tensoren als lernbare
	// Parameter (die Differenzierung selbst findet extern statt)
	trackGradients bool
}

// New erstellt ein neues CPU-Backend
func New(params ml.BackendParams) (ml.Backend, error) {
	threads := params.NumThreads
	if threads <= 0 {
		threads = envconfig.NumThreads()
	}
	if threads <= 0 {
		threads = runtime.NumCPU()
	}

	slog.Debug("initializing cpu backend", "threads", threads)

	return &Backend{
		threads:        threads,
		trackGradients: params.TrackGradients,
	}, nil
}

// NewContext erstellt einen neuen Compute-Kontext
func (b *Backend) NewContext() ml.Context {
	return &Context{b: b}
}

// BackendDevices gibt die verfuegbaren Geraete zurueck
func (b *Backend) BackendDevices() []ml.DeviceInfo {
	return []ml.DeviceInfo{{
		Library:     "cpu",
		ID:          0,
		Name:        runtime.GOARCH,
		ThreadCount: b.threads,
	}}
}

// Close gibt alle Ressourcen des Backends frei
func (b *Backend) Close() {}
