// File: results.go
// Role: the record Calc returns.
package shapecomp

// Results is the outcome of one Calc run.
type Results struct {
	// Sc is the shape complementarity statistic, in [-1, 1].
	Sc float64

	// MedianDistance is the median nearest-neighbor gap between the two
	// trimmed interface surfaces, averaged over both directions.
	MedianDistance float64

	// TrimmedArea is the total interface area (Å²) summed over both
	// molecules' trimmed dot sets. Swap-invariant: computed as a sum, it
	// does not depend on which molecule is "A" and which is "B".
	TrimmedArea float64

	// AtomsMol1 and AtomsMol2 are the atom counts the two molecules held
	// at Calc time.
	AtomsMol1 int
	AtomsMol2 int

	// ElapsedMs is wall-clock run time in milliseconds. Diagnostic only —
	// it never feeds back into Sc or MedianDistance, so it has no effect
	// on run-to-run determinism.
	ElapsedMs int64

	// Warnings counts non-fatal anomalies swallowed during the run:
	// element-fallback radius lookups and atoms fully skipped during
	// surface generation.
	Warnings int
}
