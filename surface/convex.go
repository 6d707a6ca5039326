// File: convex.go
// Role: convex (single-atom) cap sampling.
package surface

import (
	"math"

	"github.com/surfacescore/shapecomp/vecmath"
)

// convexDots samples atom a's van der Waals sphere on a latitude/longitude grid
// sized to reach st.DotDensity, keeping only points outside every other
// atom's van der Waals sphere and outside every probe sphere — both the
// toroidal and concave probes rolling anywhere in the molecule, since a
// convex dot can fall inside a torus formed by two atoms that don't
// include a, not just a probe centered on a itself.
//
// Area is the sampling quantum: the full sphere area divided by the total
// number of candidates examined on this atom (kept + rejected).
func convexDots(a Atom, others []Atom, probes []probeSphere, st Settings) []Dot {
	r := a.Radius
	nLat := int(math.Round(math.Sqrt(math.Pi * r * r * st.DotDensity)))
	if nLat < 1 {
		nLat = 1
	}

	var kept []Dot
	var total int

	for b := 0; b < nLat; b++ {
		theta := math.Pi * (float64(b) + 0.5) / float64(nLat)
		ringCircumference := 2 * math.Pi * r * math.Sin(theta)
		nLon := int(math.Round(ringCircumference * math.Sqrt(st.DotDensity)))
		if nLon < 1 {
			nLon = 1
		}

		for l := 0; l < nLon; l++ {
			phi := 2 * math.Pi * float64(l) / float64(nLon)
			local := vecmath.New(
				math.Sin(theta)*math.Cos(phi),
				math.Sin(theta)*math.Sin(phi),
				math.Cos(theta),
			)
			pos := a.Pos.Add(local.Scale(r))
			total++

			if !pointClearOfAtoms(pos, others, st.Epsilon) {
				continue
			}
			if pointInsideAnyProbe(pos, probes, st.Epsilon) {
				continue
			}

			normal := local // already unit length
			kept = append(kept, Dot{
				Pos:      pos,
				Normal:   normal,
				AtomID:   a.ID,
				Molecule: a.Molecule,
				Kind:     Convex,
			})
		}
	}

	if total == 0 {
		return nil
	}
	area := 4 * math.Pi * r * r / float64(total)
	for i := range kept {
		kept[i].Area = area
	}
	return kept
}

// pointClearOfAtoms reports whether pos lies outside every atom in others'
// van der Waals sphere.
func pointClearOfAtoms(pos vecmath.Vec, others []Atom, eps float64) bool {
	for _, o := range others {
		if pos.Dist(o.Pos) < o.Radius-eps {
			return false
		}
	}
	return true
}

// probeSphere is the minimal probe-occlusion view the sampling routines
// need: a center and the rolling-probe radius.
type probeSphere struct {
	Center vecmath.Vec
	Radius float64
}

func pointInsideAnyProbe(pos vecmath.Vec, probes []probeSphere, eps float64) bool {
	for _, p := range probes {
		if pos.Dist(p.Center) < p.Radius-eps {
			return true
		}
	}
	return false
}
