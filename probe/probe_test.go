package probe

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/surfacescore/shapecomp/vecmath"
)

const testEps = 1e-9

func TestIntersectionCircleOverlapping(t *testing.T) {
	ci := vecmath.New(0, 0, 0)
	cj := vecmath.New(3, 0, 0)
	center, axis, radius, ok := intersectionCircle(ci, 2.0, cj, 2.0, testEps)
	require.True(t, ok)
	require.InDelta(t, 1.5, center.X, 1e-9)
	require.InDelta(t, 1, axis.X, 1e-9)
	require.Greater(t, radius, 0.0)
}

func TestIntersectionCircleTooFar(t *testing.T) {
	ci := vecmath.New(0, 0, 0)
	cj := vecmath.New(10, 0, 0)
	_, _, _, ok := intersectionCircle(ci, 1.0, cj, 1.0, testEps)
	require.False(t, ok)
}

func TestIntersectionCircleOneInsideOther(t *testing.T) {
	ci := vecmath.New(0, 0, 0)
	cj := vecmath.New(0.1, 0, 0)
	_, _, _, ok := intersectionCircle(ci, 5.0, cj, 1.0, testEps)
	require.False(t, ok)
}

func TestTrilaterateEquilateralGivesSymmetricSolutions(t *testing.T) {
	ci := vecmath.New(0, 0, 0)
	cj := vecmath.New(2, 0, 0)
	ck := vecmath.New(1, math.Sqrt(3), 0)

	p1, p2, two, ok := trilaterate(ci, 2.0, cj, 2.0, ck, 2.0, testEps)
	require.True(t, ok)
	require.True(t, two)

	// Both solutions must be equidistant (2.0) from all three centers.
	for _, p := range []vecmath.Vec{p1, p2} {
		require.InDelta(t, 2.0, p.Dist(ci), 1e-6)
		require.InDelta(t, 2.0, p.Dist(cj), 1e-6)
		require.InDelta(t, 2.0, p.Dist(ck), 1e-6)
	}
	// The two solutions should be mirror images across the z=0 plane.
	require.InDelta(t, p1.Z, -p2.Z, 1e-6)
}

func TestTrilaterateCollinearDegenerates(t *testing.T) {
	ci := vecmath.New(0, 0, 0)
	cj := vecmath.New(1, 0, 0)
	ck := vecmath.New(2, 0, 0)
	_, _, _, ok := trilaterate(ci, 1.5, cj, 1.5, ck, 1.5, testEps)
	require.False(t, ok)
}

func TestToroidalProbeSuppressedWhenBuried(t *testing.T) {
	atoms := []Atom{
		{ID: 0, Pos: vecmath.New(0, 0, 0), Radius: 1.0},
		{ID: 1, Pos: vecmath.New(1.5, 0, 0), Radius: 1.0},
		// A huge third atom centered on the midpoint swallows the whole circle.
		{ID: 2, Pos: vecmath.New(0.75, 0, 0), Radius: 10.0},
	}
	_, ok := toroidalProbe(atoms, 0, 1, 0.5, testEps)
	require.False(t, ok)
}

func TestToroidalProbeSurvivesWithoutOcclusion(t *testing.T) {
	atoms := []Atom{
		{ID: 0, Pos: vecmath.New(0, 0, 0), Radius: 1.0},
		{ID: 1, Pos: vecmath.New(1.5, 0, 0), Radius: 1.0},
	}
	p, ok := toroidalProbe(atoms, 0, 1, 0.5, testEps)
	require.True(t, ok)
	require.Equal(t, Toroidal, p.Kind)
	require.Equal(t, []int{0, 1}, p.Contacts)
}

func TestConcaveProbesBuriedByFourthAtom(t *testing.T) {
	atoms := []Atom{
		{ID: 0, Pos: vecmath.New(0, 0, 0), Radius: 1.5},
		{ID: 1, Pos: vecmath.New(2, 0, 0), Radius: 1.5},
		{ID: 2, Pos: vecmath.New(1, 1.7, 0), Radius: 1.5},
		// Fourth atom sitting right where the concave probe would form.
		{ID: 3, Pos: vecmath.New(1, 0.6, 0.3), Radius: 3.0},
	}
	probes := concaveProbes(atoms, 0, 1, 2, 0.5, testEps)
	require.Empty(t, probes)
}

func TestConcaveProbesSurviveWithoutFourthAtom(t *testing.T) {
	atoms := []Atom{
		{ID: 0, Pos: vecmath.New(0, 0, 0), Radius: 1.5},
		{ID: 1, Pos: vecmath.New(2, 0, 0), Radius: 1.5},
		{ID: 2, Pos: vecmath.New(1, 1.7, 0), Radius: 1.5},
	}
	probes := concaveProbes(atoms, 0, 1, 2, 0.5, testEps)
	require.NotEmpty(t, probes)
	for _, p := range probes {
		require.Equal(t, Concave, p.Kind)
		require.InDelta(t, atoms[0].Radius+0.5, p.Center.Dist(atoms[0].Pos), 1e-6)
		require.InDelta(t, atoms[1].Radius+0.5, p.Center.Dist(atoms[1].Pos), 1e-6)
		require.InDelta(t, atoms[2].Radius+0.5, p.Center.Dist(atoms[2].Pos), 1e-6)
	}
}

func TestEnumeratorOrdersByAscendingIndex(t *testing.T) {
	atoms := []Atom{
		{ID: 0, Pos: vecmath.New(0, 0, 0), Radius: 1.5},
		{ID: 1, Pos: vecmath.New(2, 0, 0), Radius: 1.5},
		{ID: 2, Pos: vecmath.New(1, 1.7, 0), Radius: 1.5},
	}
	e := NewEnumerator(atoms, 0.5, testEps)
	tori := e.ToroidalProbes()
	require.NotEmpty(t, tori)
	for i := 1; i < len(tori); i++ {
		prevKey := tori[i-1].Contacts[0]*1000 + tori[i-1].Contacts[1]
		curKey := tori[i].Contacts[0]*1000 + tori[i].Contacts[1]
		require.Less(t, prevKey, curKey)
	}

	concave := e.ConcaveProbes()
	require.NotEmpty(t, concave)
}
