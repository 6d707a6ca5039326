// File: grid.go
// Role: uniform voxel grid over atom centers, giving O(1) expected
// neighbor and pair queries instead of an O(n^2) scan.
package spatialindex

import (
	"math"
	"sort"

	"github.com/surfacescore/shapecomp/vecmath"
)

// AnyMolecule selects both molecules in Neighbors queries.
const AnyMolecule = -1

// Point is the minimal per-atom payload the index needs: a center, a
// radius (for occlusion-style queries), a per-molecule id, and which
// molecule it belongs to. shapecomp.Atom carries more fields; callers
// project down to Point when building a Grid.
type Point struct {
	ID       int
	Molecule int
	Pos      vecmath.Vec
	Radius   float64
}

// cellKey identifies one voxel in the lattice.
type cellKey struct {
	X, Y, Z int
}

// Grid is a uniform voxel grid over a fixed set of Points with a
// caller-chosen cell edge; over atom centers that edge is 2*(r_max +
// probeRadius): every surface
// patch only touches a handful of nearby atoms, so a cell that size keeps
// each query's candidate set small without missing anything.
//
// Grid is immutable after New: all parallel readers share one Grid
// without locking.
type Grid struct {
	points   []Point
	cellSize float64
	cells    map[cellKey][]int32 // cell -> indices into points, in insertion (id) order
}

// New builds a Grid over points using the given cell size. cellSize must be
// > 0. Package trim uses 2*(rMax+probeRadius) for its atom-center grid;
// the dot grids in trim and scstat use a multiple of the dot spacing.
func New(points []Point, cellSize float64) *Grid {
	g := &Grid{
		points:   points,
		cellSize: cellSize,
		cells:    make(map[cellKey][]int32, len(points)),
	}
	for i, p := range points {
		k := g.keyFor(p.Pos)
		g.cells[k] = append(g.cells[k], int32(i))
	}
	return g
}

// CellSize returns the voxel edge length this grid was built with.
func (g *Grid) CellSize() float64 { return g.cellSize }

func (g *Grid) keyFor(p vecmath.Vec) cellKey {
	return cellKey{
		X: int(math.Floor(p.X / g.cellSize)),
		Y: int(math.Floor(p.Y / g.cellSize)),
		Z: int(math.Floor(p.Z / g.cellSize)),
	}
}

// Neighbors returns every Point within radius r of center p, restricted to
// molecule (or AnyMolecule for both), sorted by (Molecule, ID) so the
// result is a deterministic function of the inputs alone.
func (g *Grid) Neighbors(p vecmath.Vec, r float64, molecule int) []Point {
	reach := int(math.Ceil(r/g.cellSize)) + 1
	center := g.keyFor(p)
	r2 := r * r

	out := make([]Point, 0, 16)
	for dz := -reach; dz <= reach; dz++ {
		for dy := -reach; dy <= reach; dy++ {
			for dx := -reach; dx <= reach; dx++ {
				k := cellKey{X: center.X + dx, Y: center.Y + dy, Z: center.Z + dz}
				for _, idx := range g.cells[k] {
					pt := g.points[idx]
					if molecule != AnyMolecule && pt.Molecule != molecule {
						continue
					}
					if pt.Pos.Dist2(p) <= r2 {
						out = append(out, pt)
					}
				}
			}
		}
	}
	sortPoints(out)
	return out
}

// Pair is one within-molecule neighbor pair produced by PairsWithin.
type Pair struct {
	I, J int // atom ids within the molecule, I < J
	Dist float64
}

// PairsWithin returns every unordered pair (i, j) of distinct atoms of the
// given molecule with distance <= r, sorted by (I, J).
func (g *Grid) PairsWithin(r float64, molecule int) []Pair {
	r2 := r * r
	seen := make(map[[2]int32]struct{})
	var out []Pair

	for _, pi := range g.points {
		if pi.Molecule != molecule {
			continue
		}
		for _, pj := range g.Neighbors(pi.Pos, r, molecule) {
			if pj.ID == pi.ID {
				continue
			}
			lo, hi := int32(pi.ID), int32(pj.ID)
			if lo > hi {
				lo, hi = hi, lo
			}
			key := [2]int32{lo, hi}
			if _, ok := seen[key]; ok {
				continue
			}
			d2 := pi.Pos.Dist2(pj.Pos)
			if d2 > r2 {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, Pair{I: int(lo), J: int(hi), Dist: math.Sqrt(d2)})
		}
	}

	sort.Slice(out, func(a, b int) bool {
		if out[a].I != out[b].I {
			return out[a].I < out[b].I
		}
		return out[a].J < out[b].J
	})
	return out
}

func sortPoints(pts []Point) {
	sort.Slice(pts, func(a, b int) bool {
		if pts[a].Molecule != pts[b].Molecule {
			return pts[a].Molecule < pts[b].Molecule
		}
		return pts[a].ID < pts[b].ID
	})
}
