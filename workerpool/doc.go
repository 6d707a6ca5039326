// Package workerpool is the parallel worker pool behind shapecomp's two
// data-parallel stages: peripheral trimming (package trim) and
// nearest-neighbor pairing (package scstat). Each Calculator.Calc run
// builds its own Pool; no pool is shared across runs.
//
// It is a thin wrapper over golang.org/x/sync/errgroup: every call writes
// its output to a pre-sized, index-addressed slot, so the pool's degree of
// parallelism never affects the result — only wall-clock time. Pool size
// defaults to runtime.NumCPU(), overridable by the SHAPECOMP_WORKERS
// environment variable, or forced to 1 by passing
// Settings.EnableParallel=false at the call site.
package workerpool
