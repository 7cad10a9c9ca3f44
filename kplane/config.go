// MODUL: config
// ZWECK: Typisierte Konfiguration fuer den K-Plane Encoder mit Validierung
// INPUT: GridConfig und Config Strukturen
// OUTPUT: Validierte Konfiguration oder Fehler
// NEBENEFFEKTE: Keine
// ABHAENGIGKEITEN: errors, fmt (Standard-Library)
// HINWEISE: Alle Pruefungen laufen zur Konstruktionszeit, fail-fast

package kplane

import (
	"errors"
	"fmt"
	"slices"
)

// ============================================================================
// Fehler-Definitionen fuer Config
// ============================================================================

var (
	// ErrResolutionMismatch wird zurueckgegeben wenn die Aufloesungsliste
	// nicht so viele Eintraege wie Eingabe-Dimensionen hat
	ErrResolutionMismatch = errors.New("kplane/config: resolution must have same number of elements as input dimension")

	// ErrGridDimensions wird zurueckgegeben wenn die Plane-Dimension
	// ausserhalb von [1, InputCoordinateDim] liegt
	ErrGridDimensions = errors.New("kplane/config: grid dimensions must be in [1, input coordinate dim]")

	// ErrOutputDims wird zurueckgegeben wenn die Feature-Breite ungueltig ist
	ErrOutputDims = errors.New("kplane/config: output coordinate dim must be > 0")

	// ErrResolutionValue wird zurueckgegeben wenn ein Aufloesungseintrag ungueltig ist
	ErrResolutionValue = errors.New("kplane/config: resolution entries must be > 0")

	// ErrMultiscaleRes wird zurueckgegeben wenn ein Skalierungsfaktor ungueltig ist
	ErrMultiscaleRes = errors.New("kplane/config: multiscale resolution multipliers must be > 0")
)

// ============================================================================
// GridConfig - Konfiguration der Gitter-Zerlegung
// ============================================================================

// GridConfig beschreibt die Zerlegung des Koordinatenraums in Planes.
type GridConfig struct {
	// GridDimensions ist die Dimension K der einzelnen Planes
	GridDimensions int

	// InputCoordinateDim ist die Dimension D des Eingaberaums
	InputCoordinateDim int

	// OutputCoordinateDim ist die Feature-Breite pro Plane
	OutputCoordinateDim int

	// Resolution ist die Zellenzahl pro Achse (Laenge D)
	Resolution []int
}

// ============================================================================
// Config - Gesamt-Konfiguration des Encoders
// ============================================================================

// Config enthaelt die Gesamt-Konfiguration des K-Plane Encoders.
type Config struct {
	Grid GridConfig

	// MultiscaleRes sind die Aufloesungs-Multiplikatoren pro Scale.
	// Leer bedeutet eine einzelne Scale mit Faktor 1.
	MultiscaleRes []int

	// ConcatFeatures verkettet Features ueber Scales statt sie zu summieren
	ConcatFeatures bool

	// InitLow und InitHigh begrenzen die uniforme Plane-Initialisierung
	InitLow, InitHigh float32

	// Seed macht die Initialisierung reproduzierbar
	Seed int64
}

// DefaultConfig gibt eine Konfiguration mit den Standardwerten zurueck.
// - MultiscaleRes: [1]
// - InitLow/InitHigh: [0.1, 0.5]
func DefaultConfig(grid GridConfig) Config {
	return Config{
		Grid:          grid,
		MultiscaleRes: []int{1},
		InitLow:       0.1,
		InitHigh:      0.5,
	}
}

// ============================================================================
// Validate - Konfiguration validieren
// ============================================================================

// Validate prueft ob die Config konsistent und gueltig ist.
// Gibt einen Fehler zurueck wenn die Konfiguration ungueltig ist.
func (c *Config) Validate() error {
	if len(c.Grid.Resolution) != c.Grid.InputCoordinateDim {
		return fmt.Errorf("%w: got %d entries for %d dims", ErrResolutionMismatch, len(c.Grid.Resolution), c.Grid.InputCoordinateDim)
	}

	if c.Grid.GridDimensions < 1 || c.Grid.GridDimensions > c.Grid.InputCoordinateDim {
		return fmt.Errorf("%w: got %d for %d dims", ErrGridDimensions, c.Grid.GridDimensions, c.Grid.InputCoordinateDim)
	}

	if c.Grid.OutputCoordinateDim <= 0 {
		return fmt.Errorf("%w: got %d", ErrOutputDims, c.Grid.OutputCoordinateDim)
	}

	if slices.ContainsFunc(c.Grid.Resolution, func(r int) bool { return r <= 0 }) {
		return fmt.Errorf("%w: got %v", ErrResolutionValue, c.Grid.Resolution)
	}

	for _, m := range c.multiscaleRes() {
		if m <= 0 {
			return fmt.Errorf("%w: got %v", ErrMultiscaleRes, c.MultiscaleRes)
		}
	}

	return nil
}

// multiscaleRes gibt die Multiplikatoren zurueck, Default ist [1]
func (c *Config) multiscaleRes() []int {
	if len(c.MultiscaleRes) == 0 {
		return []int{1}
	}
	return c.MultiscaleRes
}

// initRange gibt die Grenzen der uniformen Initialisierung zurueck
func (c *Config) initRange() (float32, float32) {
	if c.InitLow == 0 && c.InitHigh == 0 {
		return 0.1, 0.5
	}
	return c.InitLow, c.InitHigh
}
