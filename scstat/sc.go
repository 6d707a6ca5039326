// File: sc.go
// Role: the Sc statistic itself: average of two medians of
// -(n_a·n_b)*exp(-w*r²) over nearest-neighbor interface dot pairs.
package scstat

import (
	"github.com/surfacescore/shapecomp/surface"
	"github.com/surfacescore/shapecomp/workerpool"
)

// Stat is the aggregated result of one Sc computation.
type Stat struct {
	Sc             float64
	MedianDistance float64
}

// Compute runs both nearest-neighbor scans (A→B and B→A) and aggregates
// them into the Sc statistic. ok is false when either trimmed set is
// empty — callers surface that as EmptyInterface.
func Compute(trimmedA, trimmedB []surface.Dot, weight float64, pool *workerpool.Pool) (Stat, bool) {
	if len(trimmedA) == 0 || len(trimmedB) == 0 {
		return Stat{}, false
	}

	aToB := NearestPairs(trimmedA, trimmedB, weight, pool)
	bToA := NearestPairs(trimmedB, trimmedA, weight, pool)

	scoresAB := toScored(aToB, func(p Pair) float64 { return p.Score })
	scoresBA := toScored(bToA, func(p Pair) float64 { return p.Score })
	distAB := toScored(aToB, func(p Pair) float64 { return p.Dist })
	distBA := toScored(bToA, func(p Pair) float64 { return p.Dist })

	mAB := median(scoresAB)
	mBA := median(scoresBA)
	dAB := median(distAB)
	dBA := median(distBA)

	return Stat{
		Sc:             (mAB + mBA) / 2,
		MedianDistance: (dAB + dBA) / 2,
	}, true
}

func toScored(pairs []Pair, extract func(Pair) float64) []scored {
	out := make([]scored, len(pairs))
	for i, p := range pairs {
		out[i] = scored{id: p.DotID, val: extract(p)}
	}
	return out
}
