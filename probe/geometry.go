// File: geometry.go
// Role: the analytic sphere-intersection math shared by toroidal and
// concave probe construction.
package probe

import (
	"math"

	"github.com/surfacescore/shapecomp/vecmath"
)

// intersectionCircle computes the circle where two expanded spheres
// (center ci, radius Ri; center cj, radius Rj) intersect: axis is the
// unit vector from ci to cj, center lies on that axis, radius is the
// circle radius. ok is false when the spheres don't intersect in a
// proper circle (too far apart, one inside the other, or coincident
// centers within eps).
func intersectionCircle(ci vecmath.Vec, ri float64, cj vecmath.Vec, rj float64, eps float64) (center, axis vecmath.Vec, radius float64, ok bool) {
	d := ci.Dist(cj)
	if d <= eps {
		return vecmath.Zero, vecmath.Zero, 0, false
	}
	if d >= ri+rj-eps || d <= math.Abs(ri-rj)+eps {
		return vecmath.Zero, vecmath.Zero, 0, false
	}

	axis = cj.Sub(ci).Normalize(eps)
	h := (d*d + ri*ri - rj*rj) / (2 * d)
	r2 := ri*ri - h*h
	if r2 <= eps*eps {
		return vecmath.Zero, vecmath.Zero, 0, false
	}

	center = ci.Add(axis.Scale(h))
	radius = math.Sqrt(r2)
	return center, axis, radius, true
}

// circleFarthestDistance returns the distance from point p to the point of
// the circle (center c, radius r, plane normal axis) farthest from p.
// Used to test whether an entire circle is buried inside another sphere.
func circleFarthestDistance(c, axis vecmath.Vec, r float64, p vecmath.Vec) float64 {
	d := p.Sub(c)
	a := d.Dot(axis)
	perp := d.Sub(axis.Scale(a))
	perpLen := perp.Length()
	far := r + perpLen
	return math.Sqrt(a*a + far*far)
}

// trilaterate finds the point(s) equidistant (Ri, Rj, Rk respectively)
// from three sphere centers ci, cj, ck. Returns up to two solutions
// (mirrored across the plane of the three centers); ok is false for
// degenerate configurations (collinear centers, no real solution).
func trilaterate(ci vecmath.Vec, ri float64, cj vecmath.Vec, rj float64, ck vecmath.Vec, rk float64, eps float64) (p1, p2 vecmath.Vec, twoSolutions, ok bool) {
	ex := cj.Sub(ci)
	d := ex.Length()
	if d <= eps {
		return vecmath.Zero, vecmath.Zero, false, false
	}
	ex = ex.Scale(1 / d)

	t := ck.Sub(ci)
	i := ex.Dot(t)
	eyRaw := t.Sub(ex.Scale(i))
	eyLen := eyRaw.Length()
	if eyLen <= eps {
		// ci, cj, ck collinear: no unique trilateration plane.
		return vecmath.Zero, vecmath.Zero, false, false
	}
	ey := eyRaw.Scale(1 / eyLen)
	ez := ex.Cross(ey)
	j := ey.Dot(t)

	x := (ri*ri - rj*rj + d*d) / (2 * d)
	if j <= eps {
		return vecmath.Zero, vecmath.Zero, false, false
	}
	y := (ri*ri-rk*rk+i*i+j*j-2*i*x) / (2 * j)

	z2 := ri*ri - x*x - y*y
	if z2 < -eps {
		return vecmath.Zero, vecmath.Zero, false, false
	}
	if z2 < 0 {
		z2 = 0
	}
	z := math.Sqrt(z2)

	base := ci.Add(ex.Scale(x)).Add(ey.Scale(y))
	p1 = base.Add(ez.Scale(z))
	p2 = base.Sub(ez.Scale(z))
	twoSolutions = z > eps
	return p1, p2, twoSolutions, true
}

// buriedBy reports whether a probe sphere of radius rho centered at center
// is overlapped by the plain van der Waals sphere of atom a (distance <
// a.Radius+rho) — i.e. the probe has collided with an atom it wasn't
// already rolling against.
func buriedBy(center vecmath.Vec, rho float64, a Atom, eps float64) bool {
	return center.Dist(a.Pos) < a.Radius+rho-eps
}
