// File: concave.go
// Role: concave (three-atom) spherical-triangle sampling.
package surface

import (
	"math"

	"github.com/surfacescore/shapecomp/probe"
	"github.com/surfacescore/shapecomp/vecmath"
)

// concaveDotsFor samples the spherical triangle on probe p's surface
// bounded by the three tangency points, rejecting candidates enclosed by
// a fourth atom. The dot's source atom is the contact atom with the
// smallest id in the triple.
func concaveDotsFor(p probe.Probe, atoms []Atom, st Settings) []Dot {
	rho := p.Radius
	c0, c1, c2 := atoms[p.Contacts[0]], atoms[p.Contacts[1]], atoms[p.Contacts[2]]

	dirs := [3]vecmath.Vec{
		c0.Pos.Sub(p.Center).Normalize(st.Epsilon),
		c1.Pos.Sub(p.Center).Normalize(st.Epsilon),
		c2.Pos.Sub(p.Center).Normalize(st.Epsilon),
	}
	for _, d := range dirs {
		if d.IsZero(st.Epsilon) {
			return nil
		}
	}

	triArea := sphericalTriangleArea(dirs[0], dirs[1], dirs[2]) * rho * rho
	steps := int(math.Round(math.Sqrt(math.Max(triArea, 0) * st.DotDensity)))
	if steps < 1 {
		steps = 1
	}

	centroidAtomID := c0.ID
	if c1.ID < centroidAtomID {
		centroidAtomID = c1.ID
	}
	if c2.ID < centroidAtomID {
		centroidAtomID = c2.ID
	}

	var out []Dot
	var total int
	for a := 0; a <= steps; a++ {
		for b := 0; a+b <= steps; b++ {
			c := steps - a - b
			wa, wb, wc := float64(a)/float64(steps), float64(b)/float64(steps), float64(c)/float64(steps)
			dir := dirs[0].Scale(wa).Add(dirs[1].Scale(wb)).Add(dirs[2].Scale(wc))
			if dir.IsZero(st.Epsilon) {
				continue
			}
			dir = dir.Normalize(st.Epsilon)
			pos := p.Center.Add(dir.Scale(rho))
			total++

			if blockedByFourthAtom(pos, atoms, p.Contacts, st.Epsilon) {
				continue
			}

			out = append(out, Dot{
				Pos:      pos,
				Normal:   dir.Scale(-1), // from the point toward the probe center
				AtomID:   centroidAtomID,
				Molecule: c0.Molecule,
				Kind:     ConcavePatch,
			})
		}
	}

	if total == 0 {
		return nil
	}
	area := triArea / float64(total)
	for i := range out {
		out[i].Area = area
	}
	return out
}

func blockedByFourthAtom(pos vecmath.Vec, atoms []Atom, contacts []int, eps float64) bool {
	for idx, a := range atoms {
		if idx == contacts[0] || idx == contacts[1] || idx == contacts[2] {
			continue
		}
		if pos.Dist(a.Pos) < a.Radius-eps {
			return true
		}
	}
	return false
}

// sphericalTriangleArea returns the solid angle (steradians) subtended by
// unit vectors a, b, c from the sphere's center, via Van Oosterom &
// Strackee's formula for a spherical triangle's solid angle.
func sphericalTriangleArea(a, b, c vecmath.Vec) float64 {
	numerator := math.Abs(a.Dot(b.Cross(c)))
	denominator := 1 + a.Dot(b) + b.Dot(c) + c.Dot(a)
	if denominator <= 0 {
		return math.Pi // degenerate: treat as a hemisphere-scale patch
	}
	return 2 * math.Atan2(numerator, denominator)
}
