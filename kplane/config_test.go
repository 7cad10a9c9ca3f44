// MODUL: config_test
// ZWECK: Tests fuer die Konfigurations-Validierung
package kplane

import (
	"errors"
	"testing"
)

func validGrid() GridConfig {
	return GridConfig{
		GridDimensions:      2,
		InputCoordinateDim:  3,
		OutputCoordinateDim: 4,
		Resolution:          []int{8, 8, 8},
	}
}

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{"gueltig", func(c *Config) {}, nil},
		{
			"aufloesung zu kurz",
			func(c *Config) { c.Grid.Resolution = []int{8, 8} },
			ErrResolutionMismatch,
		},
		{
			"aufloesung zu lang",
			func(c *Config) { c.Grid.Resolution = []int{8, 8, 8, 8} },
			ErrResolutionMismatch,
		},
		{
			"plane-dimension zu gross",
			func(c *Config) { c.Grid.GridDimensions = 4 },
			ErrGridDimensions,
		},
		{
			"plane-dimension null",
			func(c *Config) { c.Grid.GridDimensions = 0 },
			ErrGridDimensions,
		},
		{
			"feature-breite null",
			func(c *Config) { c.Grid.OutputCoordinateDim = 0 },
			ErrOutputDims,
		},
		{
			"aufloesung negativ",
			func(c *Config) { c.Grid.Resolution = []int{8, -8, 8} },
			ErrResolutionValue,
		},
		{
			"multiplikator null",
			func(c *Config) { c.MultiscaleRes = []int{1, 0} },
			ErrMultiscaleRes,
		},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig(validGrid())
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() = %v, erwartet nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, erwartet %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfigDefaults(t *testing.T) {
	cfg := DefaultConfig(validGrid())

	if got := cfg.multiscaleRes(); len(got) != 1 || got[0] != 1 {
		t.Errorf("multiscaleRes = %v, erwartet [1]", got)
	}

	low, high := cfg.initRange()
	if low != 0.1 || high != 0.5 {
		t.Errorf("initRange = (%f, %f), erwartet (0.1, 0.5)", low, high)
	}

	// Leere Multiplikator-Liste faellt auf [1] zurueck
	cfg.MultiscaleRes = nil
	if got := cfg.multiscaleRes(); len(got) != 1 || got[0] != 1 {
		t.Errorf("multiscaleRes ohne Eintraege = %v, erwartet [1]", got)
	}
}
