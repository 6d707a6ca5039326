// Package shapecomp computes the Lawrence–Colman shape complementarity
// (Sc) statistic between two molecular surfaces.
//
// 🧬 What is shapecomp?
//
//	A deterministic, parallel-safe Go implementation of the Connolly
//	molecular surface and the Sc statistic derived from it:
//
//	  • Surface generation: convex, toroidal and concave dot patches
//	  • Spatial indexing: uniform voxel grid for O(1) expected neighbor queries
//	  • Peripheral trimming: buried-dot filter + k-NN rim erosion
//	  • Sc aggregation: nearest-neighbor pairing, deterministic median
//
// ✨ Why choose shapecomp?
//
//   - Deterministic   — bitwise-identical Sc regardless of worker count
//   - Parallel-safe   — id-indexed output slots, Kahan-compensated sums
//   - Extensible      — inject your own radii table or structured logger
//   - Grounded math   — closed-form sphere/torus/trilateration geometry
//
// Under the hood, everything is organized under focused subpackages:
//
//	vecmath/      — Vec primitive (wraps gonum's spatial/r3)
//	radii/        — per-(residue,atom) van der Waals radius lookup
//	spatialindex/ — uniform voxel grid, neighbor and pair queries
//	probe/        — toroidal and concave probe enumeration
//	surface/      — convex/toroidal/concave dot generation (Connolly surface)
//	trim/         — peripheral trimming down to interface dots
//	scstat/       — nearest-neighbor pairing and the Sc statistic itself
//	workerpool/   — errgroup-backed, env-sized or serial worker pool
//
// Quick usage:
//
//	calc := shapecomp.NewCalculator()
//	calc.AddAtom(0, vecmath.New(0, 0, 0), "CA", "ALA")
//	calc.AddAtom(1, vecmath.New(0, 0, 3.8), "CA", "GLY")
//	res, err := calc.Calc()
//
// See DESIGN.md for the grounding ledger behind each package, and
// SPEC_FULL.md for the full requirements this module implements.
package shapecomp
