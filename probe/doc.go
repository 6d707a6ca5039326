// Package probe enumerates Connolly probe placements: the rolling-probe-
// sphere geometry that, together with the atoms themselves, defines the
// toroidal and concave patches of the molecular surface.
//
// Convex (single-atom) caps need no probe object and are generated
// directly by package surface from the atom list; this package only
// enumerates the two- and three-atom probe families: toroidal probes
// rolling along the intersection circle of a pair of expanded atomic
// spheres, and concave probes tangent to three expanded spheres
// simultaneously.
//
// Enumeration order is always ascending (atom id, second id, third id),
// so downstream dot ids are a deterministic function of the atom input
// order alone.
package probe
