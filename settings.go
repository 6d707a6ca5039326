// File: settings.go
// Role: the Calculator's tunable parameters and their defaults, validated
// once at Calc time.
package shapecomp

import "fmt"

// Settings holds the parameters a Calc run uses. Zero-value Settings is
// not ready to use — call DefaultSettings and mutate the returned value,
// or obtain the live settings via Calculator.SettingsMut.
type Settings struct {
	// ProbeRadius is the solvent probe sphere radius in the same length
	// unit as atom coordinates (default 1.7, water probe in Å).
	ProbeRadius float64

	// DotDensity is the target number of surface dots per unit area.
	// Must be >= 1.
	DotDensity float64

	// Weight is the Gaussian decay constant w in exp(-w*r²) used when
	// scoring nearest-neighbor pairs. Must be > 0.
	Weight float64

	// PeripheralBand widens the coarse distance bound of the trimmer's
	// buried-dot filter (ProbeRadius + PeripheralBand + largest opposite
	// atom radius). The peripheral erosion stage does not use it; its rim
	// test depends on TrimKN and DotDensity only. Must be >= 0.
	PeripheralBand float64

	// TrimKN is the neighbor count the peripheral erosion stage uses when
	// deciding whether a surviving dot sits at the rim of the contact
	// patch. Must be >= 1.
	TrimKN int

	// EpsilonGeom is the tolerance used throughout for coincidence,
	// tangency and near-zero-length checks.
	EpsilonGeom float64

	// EnableParallel switches the worker pool between
	// runtime.NumCPU()-sized and single-worker (serial) execution. Both
	// modes produce bitwise-identical results; this only affects
	// wall-clock time.
	EnableParallel bool
}

// DefaultSettings returns the reference parameter set used by the
// original Sc/Lawrence-Colman implementation: ProbeRadius 1.7,
// DotDensity 15, Weight 0.5, PeripheralBand 1.5, TrimKN 16,
// EpsilonGeom 1e-6, parallel execution enabled.
func DefaultSettings() Settings {
	return Settings{
		ProbeRadius:    1.7,
		DotDensity:     15.0,
		Weight:         0.5,
		PeripheralBand: 1.5,
		TrimKN:         16,
		EpsilonGeom:    1e-6,
		EnableParallel: true,
	}
}

// validate checks the constraints Settings must satisfy before a Calc run.
func (s Settings) validate() error {
	switch {
	case s.DotDensity < 1:
		return fmt.Errorf("%w: dot_density must be >= 1, got %g", ErrInvalidSettings, s.DotDensity)
	case s.Weight <= 0:
		return fmt.Errorf("%w: weight must be > 0, got %g", ErrInvalidSettings, s.Weight)
	case s.PeripheralBand < 0:
		return fmt.Errorf("%w: peripheral_band must be >= 0, got %g", ErrInvalidSettings, s.PeripheralBand)
	case s.TrimKN < 1:
		return fmt.Errorf("%w: trim_kn must be >= 1, got %d", ErrInvalidSettings, s.TrimKN)
	case s.ProbeRadius <= 0:
		return fmt.Errorf("%w: probe_radius must be > 0, got %g", ErrInvalidSettings, s.ProbeRadius)
	case s.EpsilonGeom <= 0:
		return fmt.Errorf("%w: epsilon_geom must be > 0, got %g", ErrInvalidSettings, s.EpsilonGeom)
	}

	return nil
}
