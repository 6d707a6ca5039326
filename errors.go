// File: errors.go
// Role: sentinel error kinds for the Calculator façade.
package shapecomp

import (
	"errors"
	"fmt"
)

// Sentinel errors for shapecomp's public API, following the
// "var ( Err... = errors.New("pkg: msg") )" convention.
var (
	// ErrUnknownRadius is returned by AddAtom when the injected radii
	// table has no entry (exact, wildcard, generic, or element fallback)
	// for the atom's (residue, atomLabel) pair.
	ErrUnknownRadius = errors.New("shapecomp: no radius entry for residue/atom")

	// ErrDuplicateCoord is returned by AddAtom when two atoms within the
	// same molecule are closer than Settings.EpsilonGeom.
	ErrDuplicateCoord = errors.New("shapecomp: duplicate atom coordinate within molecule")

	// ErrInsufficientAtoms is returned by Calc when either molecule has
	// zero atoms.
	ErrInsufficientAtoms = errors.New("shapecomp: one molecule has no atoms")

	// ErrEmptyInterface is returned by Calc when peripheral trimming
	// leaves no interface dots on either molecule — the molecules do not
	// touch.
	ErrEmptyInterface = errors.New("shapecomp: trimming produced no interface dots")

	// ErrGeometry is returned by Calc on an unrecoverable numerical
	// breakdown — must not occur for well-separated real inputs.
	ErrGeometry = errors.New("shapecomp: geometry computation broke down")

	// ErrInvalidSettings is returned by Calc when Settings fails
	// validation: DotDensity < 1, Weight <= 0, PeripheralBand < 0,
	// TrimKN < 1, ProbeRadius <= 0, or EpsilonGeom <= 0.
	ErrInvalidSettings = errors.New("shapecomp: invalid settings")
)

// UnknownRadiusError carries the residue/atom pair that failed lookup.
type UnknownRadiusError struct {
	Residue, Atom string
}

func (e *UnknownRadiusError) Error() string {
	return fmt.Sprintf("shapecomp: no radius entry for residue=%q atom=%q", e.Residue, e.Atom)
}

func (e *UnknownRadiusError) Unwrap() error { return ErrUnknownRadius }

// DuplicateCoordError carries the colliding atom ids.
type DuplicateCoordError struct {
	MoleculeID int
	AtomA      int
	AtomB      int
}

func (e *DuplicateCoordError) Error() string {
	return fmt.Sprintf("shapecomp: molecule %d: atoms %d and %d are coincident", e.MoleculeID, e.AtomA, e.AtomB)
}

func (e *DuplicateCoordError) Unwrap() error { return ErrDuplicateCoord }

// GeometryError carries a free-form context string for a geometry failure.
type GeometryError struct {
	Context string
}

func (e *GeometryError) Error() string {
	return fmt.Sprintf("shapecomp: geometry error: %s", e.Context)
}

func (e *GeometryError) Unwrap() error { return ErrGeometry }
