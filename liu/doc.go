// Package liu implements the Liu et al. structural-controllability model:
// driver-node discovery and control-path reconstruction via maximum
// bipartite matching, plus a Régin-style edge classifier over the same
// matching.
//
// Algorithm (Solver.Calculate), following spec.md §4.C and netctrl's
// LiuControllabilityModel::calculate:
//
//  1. Build the bipartite graph B(G): 2n vertices split into left {0..n-1}
//     and right {n..2n-1}; for each edge (u,v) of G, B(G) has edge
//     {u, v+n}.
//  2. Compute a maximum matching on B(G) via the injected
//     graphiface.BipartiteMatcher.
//  3. Drivers are the vertices whose right-side copy v+n is unmatched
//     (no edge of the matching enters them). If every vertex ends up
//     matched, vertex 0 is force-inserted as a driver so that downstream
//     computation always has at least one input (spec.md's documented,
//     deliberately non-minimal fallback).
//  4. A stem is grown from each original driver by following MatchOut until
//     the chain runs out.
//  5. Every matched vertex not already claimed by a stem starts a bud,
//     grown the same way until it closes on itself or hits a used vertex;
//     each bud is attached to a stem if any of its vertices has an
//     in-neighbor belonging to one.
//
// ClassifyEdges implements the classifier adapted from:
//
//	Régin, J-C. "A filtering algorithm for constraints of difference in
//	CSPs." AAAI'94, pp. 362-367.
//
// It orients B(G) by the matching, runs backward and forward reachability
// from unmatched/unmatching seeds, computes strongly-connected components
// of the oriented graph, and promotes any still-redundant matched edge to
// critical.
package liu
