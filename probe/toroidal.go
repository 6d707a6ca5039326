// File: toroidal.go
// Role: two-atom (re-entrant) probe enumeration.
package probe

// toroidalProbe computes the toroidal probe for atom pair (iIdx, jIdx), or
// ok=false if the pair doesn't produce one (spheres don't overlap, or the
// intersection circle is buried by a third atom).
//
// atoms is the full candidate set considered for burial (any atom other
// than i and j); rho is the probe radius; eps is the geometric tolerance.
func toroidalProbe(atoms []Atom, iIdx, jIdx int, rho, eps float64) (Probe, bool) {
	ai, aj := atoms[iIdx], atoms[jIdx]
	center, axis, radius, ok := intersectionCircle(ai.Pos, ai.Radius+rho, aj.Pos, aj.Radius+rho, eps)
	if !ok {
		return Probe{}, false
	}

	for k, ak := range atoms {
		if k == iIdx || k == jIdx {
			continue
		}
		if circleFarthestDistance(center, axis, radius, ak.Pos) < ak.Radius+rho-eps {
			return Probe{}, false // entire circle buried by atom k
		}
	}

	return Probe{
		Center:       center,
		Axis:         axis,
		CircleRadius: radius,
		Radius:       rho,
		Kind:         Toroidal,
		Contacts:     []int{iIdx, jIdx},
	}, true
}
