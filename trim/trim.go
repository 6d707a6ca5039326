// File: trim.go
// Role: two-stage peripheral trim: buried filter, then k-NN peripheral
// erosion.
package trim

import (
	"math"
	"sort"

	"github.com/surfacescore/shapecomp/spatialindex"
	"github.com/surfacescore/shapecomp/surface"
	"github.com/surfacescore/shapecomp/workerpool"
)

// alphaErosion is the k-NN erosion threshold constant, calibrated so a
// flat, fully interior region passes with headroom: threshold =
// alpha/sqrt(dot_density). See SPEC_FULL.md §5 for how this value was chosen.
const alphaErosion = 2.0

// Options bundles the trim-relevant settings.
type Options struct {
	ProbeRadius    float64
	PeripheralBand float64
	TrimKN         int
	DotDensity     float64
	Epsilon        float64
}

// Result is one molecule's trimmed interface dots plus their total area.
type Result struct {
	Dots        []surface.Dot
	TrimmedArea float64
}

// Trim reduces dots (one molecule's full surface) down to its interface
// dots, using opposite (the other molecule's atom centers+radii, as
// spatialindex.Points) to find what's buried, and opts.TrimKN nearest
// neighbors within the surviving set to erode the rim.
func Trim(dots []surface.Dot, opposite []spatialindex.Point, rMaxOpposite float64, opts Options, pool *workerpool.Pool) Result {
	if len(dots) == 0 || len(opposite) == 0 {
		return Result{}
	}

	oppositeGrid := spatialindex.New(opposite, 2*(rMaxOpposite+opts.ProbeRadius))
	buried := buriedFilter(dots, oppositeGrid, rMaxOpposite, opts, pool)

	var stage1 []surface.Dot
	for i, keep := range buried {
		if keep {
			stage1 = append(stage1, dots[i])
		}
	}
	if len(stage1) == 0 {
		return Result{}
	}

	survivors := peripheralErosion(stage1, opts, pool)
	return Result{
		Dots:        survivors,
		TrimmedArea: kahanAreaSum(survivors),
	}
}

// buriedFilter runs stage 1: coarse prune by distance-to-nearest-opposite-
// atom bound, then a confirm test against the opposite surface envelope.
func buriedFilter(dots []surface.Dot, oppositeGrid *spatialindex.Grid, rMaxOpposite float64, opts Options, pool *workerpool.Pool) []bool {
	coarseBound := opts.ProbeRadius + opts.PeripheralBand + rMaxOpposite
	keep := make([]bool, len(dots))

	_ = pool.Each(len(dots), func(i int) error {
		d := dots[i]
		candidates := oppositeGrid.Neighbors(d.Pos, coarseBound, spatialindex.AnyMolecule)
		if len(candidates) == 0 {
			return nil
		}
		dmin := math.Inf(1)
		for _, c := range candidates {
			envelope := d.Pos.Dist(c.Pos) - c.Radius
			if envelope < dmin {
				dmin = envelope
			}
		}
		keep[i] = dmin <= opts.ProbeRadius
		return nil
	})
	return keep
}

// peripheralErosion runs stage 2: for each surviving dot, examine its
// TrimKN nearest neighbors within the buried set; discard dots whose mean
// neighbor distance exceeds alpha/sqrt(dot_density) — they sit at the rim.
func peripheralErosion(buried []surface.Dot, opts Options, pool *workerpool.Pool) []surface.Dot {
	if opts.TrimKN < 1 {
		return buried
	}
	threshold := alphaErosion / math.Sqrt(opts.DotDensity)

	points := make([]spatialindex.Point, len(buried))
	for i, d := range buried {
		points[i] = spatialindex.Point{ID: i, Molecule: 0, Pos: d.Pos}
	}
	spacing := 1 / math.Sqrt(opts.DotDensity)
	grid := spatialindex.New(points, 2*spacing)

	keep := make([]bool, len(buried))
	_ = pool.Each(len(buried), func(i int) error {
		keep[i] = !isPeripheral(i, buried, grid, opts.TrimKN, threshold, spacing)
		return nil
	})

	var out []surface.Dot
	for i, k := range keep {
		if k {
			out = append(out, buried[i])
		}
	}
	return out
}

// isPeripheral reports whether dot i's mean distance to its k nearest
// neighbors (within the buried set) exceeds threshold.
func isPeripheral(i int, buried []surface.Dot, grid *spatialindex.Grid, k int, threshold, spacing float64) bool {
	p := buried[i].Pos
	radius := spacing * 2
	var candidates []spatialindex.Point
	for attempt := 0; attempt < 8; attempt++ {
		candidates = grid.Neighbors(p, radius, spatialindex.AnyMolecule)
		if len(candidates) > k { // +1 for self
			break
		}
		radius *= 2
	}

	type neighbor struct {
		id   int
		dist float64
	}
	var neighbors []neighbor
	for _, c := range candidates {
		if c.ID == i {
			continue
		}
		neighbors = append(neighbors, neighbor{id: c.ID, dist: p.Dist(c.Pos)})
	}
	sort.Slice(neighbors, func(a, b int) bool {
		if neighbors[a].dist != neighbors[b].dist {
			return neighbors[a].dist < neighbors[b].dist
		}
		return neighbors[a].id < neighbors[b].id
	})

	n := k
	if n > len(neighbors) {
		n = len(neighbors)
	}
	if n == 0 {
		return true // isolated dot: treat as peripheral
	}

	var sum float64
	for _, nb := range neighbors[:n] {
		sum += nb.dist
	}
	mean := sum / float64(n)
	return mean > threshold
}

// kahanAreaSum sums per-dot areas in id order with Kahan compensation, so
// the result never depends on worker count or summation order.
func kahanAreaSum(dots []surface.Dot) float64 {
	sorted := make([]surface.Dot, len(dots))
	copy(sorted, dots)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	var sum, c float64
	for _, d := range sorted {
		y := d.Area - c
		t := sum + y
		c = (t - sum) - y
		sum = t
	}
	return sum
}

