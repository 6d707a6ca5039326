// Package radii implements the atomic-radius lookup table consumed by
// shapecomp: a pure function over an ordered list of {residue, atom,
// radius} entries, with first-match-wins semantics.
//
// PDB parsing, topology files, and the rest of residue/atom naming
// conventions remain an external concern — this package only
// knows how to match an already-extracted (residue, atomName) pair against
// a table and, failing an exact or wildcard hit, fall back to an
// element guess from the atom name's first letter.
package radii
