// backend.go - Backend-Interface und Registrierung fuer numerische Backends
// Dieses Modul definiert das Backend-Interface und die Backend-Factory-Funktionen.
package ml

import (
	"fmt"
)

// Backend represents a numeric execution backend (e.g., CPU).
type Backend interface {
	// Close frees all memory associated with this backend
	Close()

	// NewContext creates a fresh compute context for tensor operations
	NewContext() Context

	// BackendDevices enumerates the devices available via this backend
	BackendDevices() []DeviceInfo
}

// BackendParams controls how a backend allocates and executes work.
type BackendParams struct {
	// NumThreads sets the number of worker threads for batched point
	// evaluation. Zero selects the environment default.
	NumThreads int

	// TrackGradients marks tensors created through this backend as
	// learnable parameters for an external optimizer. The backend itself
	// performs no differentiation.
	TrackGradients bool
}

var backends = make(map[string]func(BackendParams) (Backend, error))

// RegisterBackend registers a backend factory function.
func RegisterBackend(name string, f func(BackendParams) (Backend, error)) {
	if _, ok := backends[name]; ok {
		panic("backend: backend already registered")
	}

	backends[name] = f
}

// NewBackend creates a new backend instance by name.
func NewBackend(name string, params BackendParams) (Backend, error) {
	if backend, ok := backends[name]; ok {
		return backend(params)
	}

	return nil, fmt.Errorf("unsupported backend %q", name)
}
