// File: concave.go
// Role: three-atom probe enumeration.
package probe

import "github.com/surfacescore/shapecomp/vecmath"

// concaveProbes computes the (up to two) concave probe positions tangent
// to atoms i, j, k, keeping only positions not buried by any fourth atom.
// Degenerate triples (collinear centers, no real tangent point) yield no
// probes, silently.
func concaveProbes(atoms []Atom, iIdx, jIdx, kIdx int, rho, eps float64) []Probe {
	ai, aj, ak := atoms[iIdx], atoms[jIdx], atoms[kIdx]

	p1, p2, two, ok := trilaterate(
		ai.Pos, ai.Radius+rho,
		aj.Pos, aj.Radius+rho,
		ak.Pos, ak.Radius+rho,
		eps,
	)
	if !ok {
		return nil
	}

	candidates := []vecmath.Vec{p1}
	if two {
		candidates = append(candidates, p2)
	}

	var out []Probe
	for _, center := range candidates {
		buried := false
		for idx, a := range atoms {
			if idx == iIdx || idx == jIdx || idx == kIdx {
				continue
			}
			if buriedBy(center, rho, a, eps) {
				buried = true
				break
			}
		}
		if buried {
			continue
		}
		out = append(out, Probe{
			Center:   center,
			Radius:   rho,
			Kind:     Concave,
			Contacts: []int{iIdx, jIdx, kIdx},
		})
	}
	return out
}
