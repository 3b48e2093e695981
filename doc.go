// Package netctrl is the computational core of a structural-controllability
// analyzer for directed complex networks. Given a directed graph, it finds a
// minimum set of driver nodes under one of two dynamical models, reconstructs
// the control paths that route signals from those drivers, and classifies
// every edge by how its removal would change the number of drivers required.
//
// The core is organized as a set of leaf packages, each owning one piece of
// the computation:
//
//	graphiface/ — the abstract contract the core requires from a graph library
//	matching/   — one-to-many directed matching (component A)
//	controlpath/ — stem/bud/open-walk/closed-walk control paths (component B)
//	liu/        — bipartite-matching driver discovery + Régin-style classifier (C, E)
//	sbd/        — degree-imbalance driver discovery + walk packing + classifier (D, F)
//	nullmodel/  — random-graph-ensemble significance testing (G)
//	analysis/   — orchestrator selecting one of five downstream outputs (H)
//	memgraph/   — a minimal in-memory graphiface implementation for tests and callers without their own graph library
//
// None of the solver packages depend on memgraph; they depend only on the
// graphiface contract, so any graph library that implements it (vertex/edge
// counts, neighbor queries, component analysis, maximum bipartite matching,
// random-graph generation) can drive the core.
//
// The core is single-threaded and deterministic modulo the random graphs
// used for null-model comparison: calling Calculate twice on the same solver
// attached to the same graph yields identical drivers, matching, and control
// paths.
package netctrl
