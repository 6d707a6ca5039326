package spatialindex_test

import (
	"math/rand"
	"testing"

	"github.com/surfacescore/shapecomp/spatialindex"
	"github.com/surfacescore/shapecomp/vecmath"
)

// BenchmarkNeighbors measures neighbor-radius query cost over a dense
// random atom cloud, the dominant access pattern during peripheral
// trimming and nearest-neighbor pairing.
// Complexity: O(1) expected per query given a cell size proportional to
// the query radius (spec.md §4.2).
func BenchmarkNeighbors(b *testing.B) {
	rng := rand.New(rand.NewSource(7))
	const n = 5000
	pts := make([]spatialindex.Point, n)
	for i := range pts {
		pts[i] = spatialindex.Point{
			ID:       i,
			Molecule: 0,
			Pos:      vecmath.New(rng.Float64()*100, rng.Float64()*100, rng.Float64()*100),
			Radius:   1.7,
		}
	}
	g := spatialindex.New(pts, 2*(1.7+1.7))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Neighbors(pts[i%n].Pos, 6.0, spatialindex.AnyMolecule)
	}
}
