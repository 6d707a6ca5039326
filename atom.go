// File: atom.go
// Role: the Calculator's internal record of each atom added via AddAtom.
package shapecomp

import "github.com/surfacescore/shapecomp/vecmath"

// atomRecord is the Calculator's internal bookkeeping for one added atom —
// the public AddAtom call only ever hands the caller back an int id.
type atomRecord struct {
	ID           int
	Molecule     int
	Pos          vecmath.Vec
	Radius       float64
	AtomLabel    string
	ResidueLabel string
	FellBack     bool // radius resolved via element fallback, not a direct table match
}
