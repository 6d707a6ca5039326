// Package trim is the peripheral trimmer: it reduces one molecule's full
// surface-dot set down to its interface dots, discarding both dots too far
// from the other molecule (not buried) and dots at the rim of the contact
// patch (peripheral erosion).
//
// Both stages run over workerpool.Pool, partitioned by dot index, with
// every worker writing to its own pre-sized slot — trimming only ever
// removes dots, one stage's surviving set is always a subset of the
// previous stage's.
package trim
