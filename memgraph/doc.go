// Package memgraph is a minimal in-memory implementation of graphiface's
// interfaces: an adjacency-list directed multigraph, a Kuhn's-algorithm
// bipartite matcher, and random-graph generators for the null-model driver.
//
// It exists so the solvers in liu, sbd, and nullmodel are exercisable without
// an external graph library — spec.md deliberately puts the graph backend
// out of scope for the core, and memgraph is the reference backend that
// fills that role in this repository's own tests and examples. Production
// callers are free to supply any other graphiface implementation instead.
//
// Following the teacher's core.Graph, a Graph here is safe for concurrent
// reads and protects its adjacency structures with a mutex; unlike the
// teacher, vertices are addressed by dense zero-based index rather than by
// string ID, per graphiface's contract.
package memgraph
