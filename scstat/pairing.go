// File: pairing.go
// Role: nearest-neighbor pairing between two trimmed dot sets.
package scstat

import (
	"math"

	"github.com/surfacescore/shapecomp/spatialindex"
	"github.com/surfacescore/shapecomp/surface"
	"github.com/surfacescore/shapecomp/vecmath"
	"github.com/surfacescore/shapecomp/workerpool"
)

// Pair is one nearest-neighbor pairing result: DotID is the source dot's
// Dot.ID as assigned by surface generation, Dist is the distance to its nearest
// neighbor in the other set, and Score is -(n_a·n_b)*exp(-w*r²).
type Pair struct {
	DotID int
	Dist  float64
	Score float64
}

// NearestPairs pairs every dot in from with its nearest neighbor in to,
// scoring each pair with weight w, and returns results indexed by position
// in `from` (results[i] corresponds to from[i]) so callers can address by
// dot id without re-sorting — the slice itself is the id-indexed output
// slot that keeps the parallel scan's result independent of scheduling
// order.
func NearestPairs(from, to []surface.Dot, w float64, pool *workerpool.Pool) []Pair {
	if len(from) == 0 || len(to) == 0 {
		return nil
	}

	toPoints := make([]spatialindex.Point, len(to))
	for i, d := range to {
		toPoints[i] = spatialindex.Point{ID: i, Molecule: 0, Pos: d.Pos}
	}
	spacing := averageSpacing(to)
	grid := spatialindex.New(toPoints, math.Max(spacing, 1e-3))

	results := make([]Pair, len(from))
	_ = pool.Each(len(from), func(i int) error {
		a := from[i]
		nearest, dist, found := nearestNeighbor(a.Pos, grid, spacing)
		if !found {
			results[i] = Pair{DotID: a.ID, Dist: math.Inf(1), Score: 0}
			return nil
		}
		b := to[nearest.ID]
		cos := a.Normal.Dot(b.Normal)
		score := -cos * math.Exp(-w*dist*dist)
		results[i] = Pair{DotID: a.ID, Dist: dist, Score: score}
		return nil
	})
	return results
}

// nearestNeighbor finds the true nearest point in grid to p, by
// progressively doubling the search radius until the returned candidate
// set is non-empty — since Grid.Neighbors(p, R) considers every point
// within R, the minimum among a non-empty result is the global minimum
// (any excluded point has distance > R >= that minimum).
func nearestNeighbor(p vecmath.Vec, grid *spatialindex.Grid, spacing float64) (spatialindex.Point, float64, bool) {
	r := spacing
	if r <= 0 {
		r = grid.CellSize()
	}
	for attempt := 0; attempt < 40; attempt++ {
		candidates := grid.Neighbors(p, r, spatialindex.AnyMolecule)
		if len(candidates) > 0 {
			best := candidates[0]
			bestDist := p.Dist(best.Pos)
			for _, c := range candidates[1:] {
				d := p.Dist(c.Pos)
				if d < bestDist || (d == bestDist && c.ID < best.ID) {
					best, bestDist = c, d
				}
			}
			return best, bestDist, true
		}
		r *= 2
	}
	return spatialindex.Point{}, 0, false
}

// averageSpacing estimates typical nearest-neighbor spacing within dots,
// used only to seed the nearest-neighbor search radius.
func averageSpacing(dots []surface.Dot) float64 {
	if len(dots) == 0 {
		return 1
	}
	var totalArea float64
	for _, d := range dots {
		totalArea += d.Area
	}
	if totalArea <= 0 {
		return 1
	}
	return math.Sqrt(totalArea / float64(len(dots)))
}
