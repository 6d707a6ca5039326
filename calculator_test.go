package shapecomp_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/surfacescore/shapecomp"
	"github.com/surfacescore/shapecomp/vecmath"
)

func TestAddAtomUnknownResidueFails(t *testing.T) {
	calc := shapecomp.NewCalculator()
	_, err := calc.AddAtom(0, vecmath.New(0, 0, 0), "ZZZZ", "???")
	require.Error(t, err)
	require.ErrorIs(t, err, shapecomp.ErrUnknownRadius)
}

func TestAddAtomDuplicateCoordFails(t *testing.T) {
	calc := shapecomp.NewCalculator()
	_, err := calc.AddAtom(0, vecmath.New(1, 2, 3), "CA", "ALA")
	require.NoError(t, err)
	_, err = calc.AddAtom(0, vecmath.New(1, 2, 3), "CA", "GLY")
	require.Error(t, err)
	require.ErrorIs(t, err, shapecomp.ErrDuplicateCoord)
}

func TestAddAtomRejectsBadMoleculeIndex(t *testing.T) {
	calc := shapecomp.NewCalculator()
	_, err := calc.AddAtom(2, vecmath.New(0, 0, 0), "CA", "ALA")
	require.Error(t, err)
}

func TestCalcInsufficientAtoms(t *testing.T) {
	calc := shapecomp.NewCalculator()
	_, err := calc.AddAtom(0, vecmath.New(0, 0, 0), "CA", "ALA")
	require.NoError(t, err)
	_, err = calc.Calc()
	require.ErrorIs(t, err, shapecomp.ErrInsufficientAtoms)
}

func TestSettingsMutAffectsValidation(t *testing.T) {
	calc := shapecomp.NewCalculator()
	calc.SettingsMut().Weight = -1
	_, err := calc.AddAtom(0, vecmath.New(0, 0, 0), "CA", "ALA")
	require.NoError(t, err)
	_, err = calc.AddAtom(1, vecmath.New(0, 0, 5), "CA", "GLY")
	require.NoError(t, err)
	_, err = calc.Calc()
	require.ErrorIs(t, err, shapecomp.ErrInvalidSettings)
}

func TestResetClearsAtoms(t *testing.T) {
	calc := shapecomp.NewCalculator()
	_, err := calc.AddAtom(0, vecmath.New(0, 0, 0), "CA", "ALA")
	require.NoError(t, err)
	calc.Reset()
	_, err = calc.AddAtom(1, vecmath.New(0, 0, 5), "CA", "GLY")
	require.NoError(t, err)
	_, err = calc.Calc()
	require.ErrorIs(t, err, shapecomp.ErrInsufficientAtoms)
}

// buildInterfacingPlates populates two molecules whose atoms form two
// parallel sheets close enough to produce a non-empty trimmed interface.
func buildInterfacingPlates(t *testing.T, calc *shapecomp.Calculator) {
	t.Helper()
	const n = 4
	const spacing = 2.2
	const gap = 4.2 // close enough that 1.7Å probes on ~1.87Å atoms touch

	for x := -n; x <= n; x++ {
		for y := -n; y <= n; y++ {
			_, err := calc.AddAtom(0, vecmath.New(float64(x)*spacing, float64(y)*spacing, 0), "CA", "ALA")
			require.NoError(t, err)
			_, err = calc.AddAtom(1, vecmath.New(float64(x)*spacing, float64(y)*spacing, gap), "CA", "GLY")
			require.NoError(t, err)
		}
	}
}

func TestCalcEndToEndProducesBoundedSc(t *testing.T) {
	calc := shapecomp.NewCalculator()
	buildInterfacingPlates(t, calc)

	res, err := calc.Calc()
	require.NoError(t, err)
	require.GreaterOrEqual(t, res.Sc, -1.0)
	require.LessOrEqual(t, res.Sc, 1.0)
	require.Equal(t, 81, res.AtomsMol1)
	require.Equal(t, 81, res.AtomsMol2)
	require.GreaterOrEqual(t, res.ElapsedMs, int64(0))
}

func TestCalcDeterministicAcrossParallelSetting(t *testing.T) {
	calcSerial := shapecomp.NewCalculator()
	calcSerial.SettingsMut().EnableParallel = false
	buildInterfacingPlates(t, calcSerial)
	serialRes, err := calcSerial.Calc()
	require.NoError(t, err)

	calcParallel := shapecomp.NewCalculator()
	buildInterfacingPlates(t, calcParallel)
	parallelRes, err := calcParallel.Calc()
	require.NoError(t, err)

	require.Equal(t, serialRes.Sc, parallelRes.Sc)
	require.Equal(t, serialRes.MedianDistance, parallelRes.MedianDistance)
}
