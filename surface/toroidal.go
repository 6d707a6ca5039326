// File: toroidal.go
// Role: toroidal (two-atom) patch sampling.
package surface

import (
	"math"

	"github.com/surfacescore/shapecomp/probe"
	"github.com/surfacescore/shapecomp/vecmath"
)

// toroidalDots samples the re-entrant patch swept by a toroidal probe
// between its two contact atoms, rejecting any candidate enclosed by a
// third atom.
func toroidalDots(p probe.Probe, atoms []Atom, st Settings) []Dot {
	iAtom := atoms[p.Contacts[0]]
	jAtom := atoms[p.Contacts[1]]
	rho := p.Radius

	// Orthonormal basis (u, v) spanning the plane perpendicular to the
	// interatomic axis, so probeAt(theta) sweeps the full circle.
	u := arbitraryPerpendicular(p.Axis).Normalize(st.Epsilon)
	v := p.Axis.Cross(u).Normalize(st.Epsilon)

	nTheta := int(math.Round(2 * math.Pi * p.CircleRadius * math.Sqrt(st.DotDensity)))
	if nTheta < 1 {
		nTheta = 1
	}

	var out []Dot
	var arcLen float64
	for t := 0; t < nTheta; t++ {
		theta := 2 * math.Pi * float64(t) / float64(nTheta)
		probeCenter := p.Center.Add(u.Scale(p.CircleRadius * math.Cos(theta))).Add(v.Scale(p.CircleRadius * math.Sin(theta)))

		dirI := iAtom.Pos.Sub(probeCenter).Normalize(st.Epsilon) // points from probe toward atom i
		dirJ := jAtom.Pos.Sub(probeCenter).Normalize(st.Epsilon)
		if dirI.IsZero(st.Epsilon) || dirJ.IsZero(st.Epsilon) {
			continue
		}
		arcAngle := math.Acos(clamp(dirI.Dot(dirJ), -1, 1))
		if arcAngle <= st.Epsilon {
			continue
		}
		arcLen = arcAngle * rho

		nPhi := int(math.Round(arcAngle * rho * math.Sqrt(st.DotDensity)))
		if nPhi < 1 {
			nPhi = 1
		}

		for ph := 0; ph <= nPhi; ph++ {
			frac := float64(ph) / float64(nPhi)
			dir := slerp(dirI, dirJ, frac, arcAngle, st.Epsilon)
			pos := probeCenter.Add(dir.Scale(rho))

			if blockedByThirdAtom(pos, atoms, p.Contacts[0], p.Contacts[1], st.Epsilon) {
				continue
			}

			primary := iAtom.ID
			moleculeOf := iAtom.Molecule
			if frac > 0.5 {
				primary = jAtom.ID
			}

			out = append(out, Dot{
				Pos:      pos,
				Normal:   dir, // outward from probe center
				AtomID:   primary,
				Molecule: moleculeOf,
				Kind:     ToroidalPatch,
			})
		}
	}

	if len(out) == 0 {
		return nil
	}
	patchArea := approxToroidalArea(p.CircleRadius, arcLen)
	areaEach := patchArea / float64(len(out))
	for i := range out {
		out[i].Area = areaEach
	}
	return out
}

// approxToroidalArea is a coarse rectangle-on-torus area estimate (full
// circle circumference times probe-arc length) used only to derive the
// per-dot area quantum, not for occlusion decisions.
func approxToroidalArea(circleRadius, arcLen float64) float64 {
	return 2 * math.Pi * circleRadius * arcLen
}

func blockedByThirdAtom(pos vecmath.Vec, atoms []Atom, iIdx, jIdx int, eps float64) bool {
	for idx, a := range atoms {
		if idx == iIdx || idx == jIdx {
			continue
		}
		if pos.Dist(a.Pos) < a.Radius-eps {
			return true
		}
	}
	return false
}

// arbitraryPerpendicular returns some vector not parallel to axis, for
// building an orthonormal basis.
func arbitraryPerpendicular(axis vecmath.Vec) vecmath.Vec {
	ref := vecmath.New(1, 0, 0)
	if math.Abs(axis.Dot(ref)) > 0.9 {
		ref = vecmath.New(0, 1, 0)
	}
	return ref.Sub(axis.Scale(ref.Dot(axis)))
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// slerp spherically interpolates between two unit vectors a, b separated
// by angle (radians), returning a unit vector at fraction t of the way
// from a to b, via Rodrigues' rotation of a around the a×b axis.
func slerp(a, b vecmath.Vec, t, angle, eps float64) vecmath.Vec {
	if angle <= eps {
		return a
	}
	axis := a.Cross(b).Normalize(eps)
	if axis.IsZero(eps) {
		return a
	}
	theta := angle * t
	cosT, sinT := math.Cos(theta), math.Sin(theta)
	// Rodrigues' rotation formula.
	term1 := a.Scale(cosT)
	term2 := axis.Cross(a).Scale(sinT)
	term3 := axis.Scale(axis.Dot(a) * (1 - cosT))
	return term1.Add(term2).Add(term3).Normalize(eps)
}
