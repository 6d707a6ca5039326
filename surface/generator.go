// File: generator.go
// Role: orchestrates convex, toroidal, and concave dot generation for one
// molecule's atoms into a single, densely-id'd Dot slice.
package surface

import (
	"sort"

	"github.com/surfacescore/shapecomp/probe"
)

// SkippedPatch records a patch that emitted zero dots due to degenerate
// geometry. Generate returns these so the façade can decide whether to
// warn; a patch is only reported up as a warning when every patch on its
// atom(s) was skipped.
type SkippedPatch struct {
	Kind     PatchKind
	Contacts []int // atom ids involved
}

// Result is everything Generate produces for one molecule.
type Result struct {
	Dots     []Dot
	Skipped  []SkippedPatch
	AtomsFullySkipped []int // atom ids where every patch (convex included) emitted nothing
}

// Generate runs the full convex/toroidal/concave pipeline for one
// molecule's atoms, serially, in sorted-id order, and assigns dense dot
// ids 0..N-1 in emission order.
func Generate(atoms []Atom, st Settings) Result {
	sorted := make([]Atom, len(atoms))
	copy(sorted, atoms)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	probeAtoms := make([]probe.Atom, len(sorted))
	for i, a := range sorted {
		probeAtoms[i] = probe.Atom{ID: i, Pos: a.Pos, Radius: a.Radius}
	}
	enumerator := probe.NewEnumerator(probeAtoms, st.ProbeRadius, st.Epsilon)
	toroidal := enumerator.ToroidalProbes()
	concave := enumerator.ConcaveProbes()

	var occludingSpheres []probeSphere
	for _, p := range toroidal {
		occludingSpheres = append(occludingSpheres, probeSphere{Center: p.Center, Radius: p.Radius})
	}
	for _, p := range concave {
		occludingSpheres = append(occludingSpheres, probeSphere{Center: p.Center, Radius: p.Radius})
	}

	var res Result
	emittedPerAtom := make(map[int]bool, len(sorted))

	for i, a := range sorted {
		others := otherAtoms(sorted, i)
		dots := convexDots(a, others, occludingSpheres, st)
		if len(dots) == 0 {
			res.Skipped = append(res.Skipped, SkippedPatch{Kind: Convex, Contacts: []int{a.ID}})
		} else {
			emittedPerAtom[a.ID] = true
		}
		res.Dots = append(res.Dots, dots...)
	}

	for _, p := range toroidal {
		dots := toroidalDots(p, sorted, st)
		ids := []int{sorted[p.Contacts[0]].ID, sorted[p.Contacts[1]].ID}
		if len(dots) == 0 {
			res.Skipped = append(res.Skipped, SkippedPatch{Kind: ToroidalPatch, Contacts: ids})
		} else {
			emittedPerAtom[ids[0]] = true
			emittedPerAtom[ids[1]] = true
		}
		res.Dots = append(res.Dots, dots...)
	}

	for _, p := range concave {
		dots := concaveDotsFor(p, sorted, st)
		ids := []int{sorted[p.Contacts[0]].ID, sorted[p.Contacts[1]].ID, sorted[p.Contacts[2]].ID}
		if len(dots) == 0 {
			res.Skipped = append(res.Skipped, SkippedPatch{Kind: ConcavePatch, Contacts: ids})
		} else {
			for _, id := range ids {
				emittedPerAtom[id] = true
			}
		}
		res.Dots = append(res.Dots, dots...)
	}

	for _, a := range sorted {
		if !emittedPerAtom[a.ID] {
			res.AtomsFullySkipped = append(res.AtomsFullySkipped, a.ID)
		}
	}

	for i := range res.Dots {
		res.Dots[i].ID = i
	}
	return res
}

func otherAtoms(all []Atom, skip int) []Atom {
	out := make([]Atom, 0, len(all)-1)
	for i, a := range all {
		if i != skip {
			out = append(out, a)
		}
	}
	return out
}
