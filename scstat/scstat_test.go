package scstat_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/surfacescore/shapecomp/scstat"
	"github.com/surfacescore/shapecomp/surface"
	"github.com/surfacescore/shapecomp/vecmath"
	"github.com/surfacescore/shapecomp/workerpool"
)

func facingPlates(gap float64, n int, spacing float64) (a, b []surface.Dot) {
	id := 0
	half := n / 2
	for x := -half; x <= half; x++ {
		for y := -half; y <= half; y++ {
			a = append(a, surface.Dot{
				ID:     id,
				Pos:    vecmath.New(float64(x)*spacing, float64(y)*spacing, 0),
				Normal: vecmath.New(0, 0, 1),
				Area:   spacing * spacing,
			})
			id++
		}
	}
	id = 0
	for x := -half; x <= half; x++ {
		for y := -half; y <= half; y++ {
			b = append(b, surface.Dot{
				ID:     id,
				Pos:    vecmath.New(float64(x)*spacing, float64(y)*spacing, gap),
				Normal: vecmath.New(0, 0, -1),
				Area:   spacing * spacing,
			})
			id++
		}
	}
	return a, b
}

func TestComputeEmptySetsNotOK(t *testing.T) {
	_, ok := scstat.Compute(nil, []surface.Dot{{ID: 0}}, 0.5, workerpool.Serial())
	require.False(t, ok)
}

func TestComputePerfectlyFacingPlatesScoreGaussianOfGap(t *testing.T) {
	// Antiparallel normals at gap r score exp(-w*r²): exp(-0.5) for r=1, w=0.5.
	a, b := facingPlates(1.0, 10, 0.5)
	stat, ok := scstat.Compute(a, b, 0.5, workerpool.Serial())
	require.True(t, ok)
	require.InDelta(t, math.Exp(-0.5), stat.Sc, 1e-9)
	require.InDelta(t, 1.0, stat.MedianDistance, 1e-6)
}

func TestComputeSymmetricUnderSwap(t *testing.T) {
	a, b := facingPlates(1.3, 8, 0.7)
	s1, ok1 := scstat.Compute(a, b, 0.5, workerpool.Serial())
	s2, ok2 := scstat.Compute(b, a, 0.5, workerpool.Serial())
	require.True(t, ok1)
	require.True(t, ok2)
	require.InDelta(t, s1.Sc, s2.Sc, 1e-9)
	require.InDelta(t, s1.MedianDistance, s2.MedianDistance, 1e-9)
}

func TestComputeDeterministicAcrossPoolSize(t *testing.T) {
	a, b := facingPlates(1.1, 12, 0.6)
	serial, ok1 := scstat.Compute(a, b, 0.5, workerpool.Serial())
	parallel, ok2 := scstat.Compute(a, b, 0.5, workerpool.New())
	require.True(t, ok1)
	require.True(t, ok2)
	require.Equal(t, serial.Sc, parallel.Sc)
	require.Equal(t, serial.MedianDistance, parallel.MedianDistance)
}

func TestParallelNormalsLowerScoreThanAntiparallel(t *testing.T) {
	// Same-direction normals (bad complementarity) should score lower than
	// opposite-direction normals (good complementarity) at equal distance.
	goodA, goodB := facingPlates(1.0, 6, 0.5)

	var badB []surface.Dot
	for _, d := range goodB {
		bd := d
		bd.Normal = vecmath.New(0, 0, 1) // same direction as goodA, not opposite
		badB = append(badB, bd)
	}

	good, ok := scstat.Compute(goodA, goodB, 0.5, workerpool.Serial())
	require.True(t, ok)
	bad, ok := scstat.Compute(goodA, badB, 0.5, workerpool.Serial())
	require.True(t, ok)

	require.Greater(t, good.Sc, bad.Sc)
	require.Less(t, math.Abs(bad.Sc-(-math.Exp(-0.5))), 0.05)
}
