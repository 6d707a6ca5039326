// File: types.go
// Role: shared Probe/Kind types and the Atom view the enumerator consumes.
package probe

import "github.com/surfacescore/shapecomp/vecmath"

// Kind tags which patch family a Probe belongs to.
type Kind int

const (
	// Toroidal marks a two-atom (re-entrant) probe.
	Toroidal Kind = iota
	// Concave marks a three-atom probe.
	Concave
)

// String implements fmt.Stringer for readable test failures and logs.
func (k Kind) String() string {
	switch k {
	case Toroidal:
		return "toroidal"
	case Concave:
		return "concave"
	default:
		return "unknown"
	}
}

// Atom is the minimal view of an atom the enumerator needs: a center, its
// plain van der Waals radius, and a stable id within its molecule.
type Atom struct {
	ID     int
	Pos    vecmath.Vec
	Radius float64
}

// Probe is a transient rolling-probe placement. Contacts holds 2 entries
// for Toroidal, 3 for Concave, each an index into the Atom slice passed
// to the Enumerator — not an atom id — callers that need atom ids index
// back into their own atom slice.
//
// Field meaning depends on Kind:
//
//   - Toroidal: Center/Axis/CircleRadius describe the circle the probe
//     rolls along as it bridges two atoms; there is no single probe
//     position.
//   - Concave: Center is the actual probe sphere center tangent to all
//     three contact atoms; Axis and CircleRadius are unused.
type Probe struct {
	Center       vecmath.Vec
	Axis         vecmath.Vec // toroidal only: unit vector along the interatomic axis
	CircleRadius float64     // toroidal only: radius ρ_t of the rolling circle
	Radius       float64     // the fixed rolling-probe radius ρ (both kinds)
	Kind         Kind
	Contacts     []int // atom-slice indices, ascending
}
