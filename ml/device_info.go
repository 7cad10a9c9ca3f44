// device_info.go
// Dieses Modul enthaelt die DeviceInfo-Struktur fuer Geraete-Erkennung.
package ml

// DeviceInfo describes a compute device exposed by a backend.
type DeviceInfo struct {
	// Library is the backend that owns the device (e.g. "cpu")
	Library string `json:"library"`

	// ID is the device index within its backend
	ID int `json:"id"`

	// Name is the name of the device as labeled by the backend
	Name string `json:"name"`

	// ThreadCount is the number of worker threads the device will use
	ThreadCount int `json:"threads,omitempty"`
}
