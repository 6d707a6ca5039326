// File: vec.go
// Role: Vec type and the handful of ops the geometry packages need.
package vecmath

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Vec is a 3-D double-precision point or direction.
type Vec struct {
	X, Y, Z float64
}

// Zero is the additive identity.
var Zero = Vec{}

// New builds a Vec from three components.
func New(x, y, z float64) Vec {
	return Vec{X: x, Y: y, Z: z}
}

// fromR3 / toR3 bridge to gonum's r3.Vec so the arithmetic below delegates
// to the library rather than reimplementing it.
func fromR3(v r3.Vec) Vec   { return Vec{X: v.X, Y: v.Y, Z: v.Z} }
func (v Vec) toR3() r3.Vec  { return r3.Vec{X: v.X, Y: v.Y, Z: v.Z} }

// Add returns v + w.
func (v Vec) Add(w Vec) Vec { return fromR3(r3.Add(v.toR3(), w.toR3())) }

// Sub returns v - w.
func (v Vec) Sub(w Vec) Vec { return fromR3(r3.Sub(v.toR3(), w.toR3())) }

// Scale returns s*v.
func (v Vec) Scale(s float64) Vec { return fromR3(r3.Scale(s, v.toR3())) }

// Dot returns the dot product v·w.
func (v Vec) Dot(w Vec) float64 { return r3.Dot(v.toR3(), w.toR3()) }

// Cross returns v×w.
func (v Vec) Cross(w Vec) Vec { return fromR3(r3.Cross(v.toR3(), w.toR3())) }

// Length returns |v|.
func (v Vec) Length() float64 { return r3.Norm(v.toR3()) }

// Dist2 returns the squared Euclidean distance between v and w.
// Kept as a shortcut (no sqrt) for neighbor-radius comparisons.
func (v Vec) Dist2(w Vec) float64 {
	d := v.Sub(w)
	return d.X*d.X + d.Y*d.Y + d.Z*d.Z
}

// Dist returns the Euclidean distance between v and w.
func (v Vec) Dist(w Vec) float64 { return math.Sqrt(v.Dist2(w)) }

// Normalize returns v/|v|, or Zero if v is (within eps) the zero vector.
// The zero-vector case is a caller-checked precondition, not an error:
// callers that cannot tolerate a zero normal must check IsZero first.
func (v Vec) Normalize(eps float64) Vec {
	l := v.Length()
	if l <= eps {
		return Zero
	}
	return fromR3(r3.Scale(1/l, v.toR3()))
}

// IsZero reports whether v is the zero vector within eps.
func (v Vec) IsZero(eps float64) bool {
	return v.Length() <= eps
}
