// Package nullmodel implements the null-model comparison driver described
// in spec.md §4.G: repeat a controllability solver across three random
// graph ensembles derived from an observed graph, and report the mean
// observed controllability for each.
//
// The three ensembles are an Erdős–Rényi G(n, m) graph (preserves vertex
// and edge counts and directedness only), a configuration-model graph
// (preserves the joint in/out-degree sequence), and a configuration-model
// graph built from independently shuffled out- and in-degree sequences
// (preserves the marginal degree distributions but destroys the pairing
// between a vertex's out-degree and its in-degree).
package nullmodel
