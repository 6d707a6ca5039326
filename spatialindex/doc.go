// Package spatialindex is the neighbor index: a uniform voxel grid over
// atom centers, sized so that every geometric
// query relevant to Connolly surface construction touches only the
// handful of cells immediately around it.
//
// This generalizes gridgraph's 2-D integer-cell lattice (katalvlaran/lvlath)
// to 3-D continuous coordinates: cell size is derived from the largest
// atomic radius plus the probe radius, and iteration order within and
// across cells is always lexicographic on the cell key so that
// neighbors(p, r) is a deterministic function of its inputs alone.
package spatialindex
