// File: enumerator.go
// Role: orchestrates toroidal and concave probe enumeration over one
// molecule's atoms, in a fixed deterministic order.
package probe

import "sort"

// Enumerator enumerates toroidal and concave probes for a fixed atom set.
type Enumerator struct {
	atoms []Atom
	rho   float64
	eps   float64
}

// NewEnumerator builds an Enumerator over atoms (a single molecule's worth),
// with rolling-probe radius rho and geometric tolerance eps.
func NewEnumerator(atoms []Atom, rho, eps float64) *Enumerator {
	return &Enumerator{atoms: atoms, rho: rho, eps: eps}
}

// candidatePairs returns, for each atom i, the indices j > i whose expanded
// spheres (r+rho) could plausibly overlap, by brute-force distance check.
// The atom counts per molecule in this domain (hundreds to low thousands)
// make O(n²) pair screening acceptable; spatialindex.Grid is used by
// packages trim and scstat for the larger, higher-fanout neighbor queries.
func (e *Enumerator) candidatePairs() [][2]int {
	var pairs [][2]int
	n := len(e.atoms)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := e.atoms[i].Pos.Dist(e.atoms[j].Pos)
			if d < e.atoms[i].Radius+e.atoms[j].Radius+2*e.rho {
				pairs = append(pairs, [2]int{i, j})
			}
		}
	}
	return pairs
}

// ToroidalProbes enumerates every surviving toroidal probe, ordered by
// ascending (i, j) atom-slice index.
func (e *Enumerator) ToroidalProbes() []Probe {
	pairs := e.candidatePairs()
	sort.Slice(pairs, func(a, b int) bool {
		if pairs[a][0] != pairs[b][0] {
			return pairs[a][0] < pairs[b][0]
		}
		return pairs[a][1] < pairs[b][1]
	})

	var out []Probe
	for _, pr := range pairs {
		if p, ok := toroidalProbe(e.atoms, pr[0], pr[1], e.rho, e.eps); ok {
			out = append(out, p)
		}
	}
	return out
}

// ConcaveProbes enumerates every surviving concave probe, ordered by
// ascending (i, j, k) atom-slice index. Triples are built from pairs that
// already passed the toroidal overlap screen, restricted to k > j so each
// unordered triple is considered once.
func (e *Enumerator) ConcaveProbes() []Probe {
	pairs := e.candidatePairs()
	overlap := make(map[[2]int]bool, len(pairs))
	for _, pr := range pairs {
		overlap[pr] = true
	}

	n := len(e.atoms)
	var triples [][3]int
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if !overlap[[2]int{i, j}] {
				continue
			}
			for k := j + 1; k < n; k++ {
				if overlap[[2]int{i, k}] && overlap[[2]int{j, k}] {
					triples = append(triples, [3]int{i, j, k})
				}
			}
		}
	}
	sort.Slice(triples, func(a, b int) bool {
		if triples[a][0] != triples[b][0] {
			return triples[a][0] < triples[b][0]
		}
		if triples[a][1] != triples[b][1] {
			return triples[a][1] < triples[b][1]
		}
		return triples[a][2] < triples[b][2]
	})

	var out []Probe
	for _, tr := range triples {
		out = append(out, concaveProbes(e.atoms, tr[0], tr[1], tr[2], e.rho, e.eps)...)
	}
	return out
}
