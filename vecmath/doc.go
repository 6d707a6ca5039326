// Package vecmath is the 3-D vector primitive shared by every geometry
// package in shapecomp.
//
// It is a thin wrapper around gonum.org/v1/gonum/spatial/r3.Vec: atom
// centers, probe centers, dot positions and normals all flow through
// vecmath.Vec rather than three bare float64s, so every package gets
// Add/Sub/Scale/Dot/Cross/Length/Normalize/Dist2 for free and consistently.
//
// Normalize of the zero vector returns the zero vector (spec: a sentinel,
// not a panic) — callers in probe/surface must check for it themselves
// before trusting a returned normal.
package vecmath
