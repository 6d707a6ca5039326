// Package surface generates sampled molecular-surface dots: convex caps
// on each atom's van der Waals sphere, toroidal patches swept by the rolling
// probe between atom pairs, and concave spherical triangles on three-atom
// probes.
//
// Generation runs serially, per molecule, in sorted-id patch order —
// determinism of the whole pipeline hinges on this ordering; parallelizing
// patch enumeration would need a separate deterministic sort and isn't
// worth the complexity at this density.
package surface
