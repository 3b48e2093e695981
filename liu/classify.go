package liu

import (
	"fmt"

	"github.com/corvidae/netctrl/graphiface"
	"github.com/corvidae/netctrl/matching"
)

// EdgeClass is an edge's classification under the Liu model.
type EdgeClass int

const (
	// EdgeRedundant edges can be removed without changing the driver count.
	EdgeRedundant EdgeClass = iota
	// EdgeOrdinary edges are neither redundant nor critical.
	EdgeOrdinary
	// EdgeCritical edges force an additional driver in every control
	// configuration if removed.
	EdgeCritical
)

// String renders the class using the spec's edge_class vocabulary.
func (c EdgeClass) String() string {
	switch c {
	case EdgeRedundant:
		return "redundant"
	case EdgeOrdinary:
		return "ordinary"
	case EdgeCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// bipartiteArc is one oriented arc of the directed orientation of B(G)
// built for classification; it remembers which original edge of G it came
// from so traversal results can be projected back onto edge indices.
type bipartiteArc struct {
	from, to int
	edgeID   int
}

// ClassifyEdges classifies every edge of g as redundant, ordinary, or
// critical, given the completed matching m produced by Solver.Calculate on
// the same graph. It is adapted from Régin (1994)'s filtering algorithm for
// all-different CSP constraints (spec.md §4.E): orient B(G) by the
// matching, run backward and forward reachability from unmatched seeds,
// mark everything in a nontrivial strongly-connected component, and
// promote any still-redundant matched edge to critical.
//
// ClassifyEdges takes no target set and never returns
// ErrUnsupportedTargeted itself: a Solver with targets set fails in
// Calculate with that error and produces no matching to classify.
func ClassifyEdges(g graphiface.Graph, m *matching.Matching) ([]EdgeClass, error) {
	n := g.VCount()
	ecount := g.ECount()
	result := make([]EdgeClass, ecount)
	// (1) Every edge starts out redundant.
	for i := range result {
		result[i] = EdgeRedundant
	}

	// (2) Orient B(G), using the same left=source-role (index x),
	// right=target-role (index x+n) layout as the matching step: an
	// unmatched edge (u,v) points source-role u -> target-role v+n; a
	// matched edge (in(v) = u) reverses this, target-role v+n -> source-role u.
	arcs := make([]bipartiteArc, 0, ecount)
	adjOut := make([][]int, 2*n) // adjOut[node] = indices into arcs
	adjIn := make([][]int, 2*n)

	edgeList := g.EdgeList()
	for eid, e := range edgeList {
		u, v := e.Source, e.Target
		var from, to int
		if m.MatchIn(v) == u {
			from, to = v+n, u
		} else {
			from, to = u, v+n
		}
		arcs = append(arcs, bipartiteArc{from: from, to: to, edgeID: eid})
		idx := len(arcs) - 1
		adjOut[from] = append(adjOut[from], idx)
		adjIn[to] = append(adjIn[to], idx)
	}

	// A source-role node x is free if it matches nothing (out(x) empty); a
	// target-role node x+n is free if nothing matches it (in(x) unset).
	seeds := make([]int, 0, 2*n)
	for x := 0; x < n; x++ {
		if !m.IsMatching(x) {
			seeds = append(seeds, x)
		}
		if !m.IsMatched(x) {
			seeds = append(seeds, x+n)
		}
	}

	// (3a) Backward BFS: mark every arc traversed ORDINARY.
	markReachable(arcs, adjIn, seeds, result, func(a bipartiteArc) int { return a.from })

	// (3b) Forward BFS.
	markReachable(arcs, adjOut, seeds, result, func(a bipartiteArc) int { return a.to })

	// (4) Strongly-connected components: mark every arc within a single
	// component ORDINARY.
	comp := tarjanSCC(2*n, adjOut, arcs)
	for _, a := range arcs {
		if comp[a.from] == comp[a.to] {
			result[a.edgeID] = EdgeOrdinary
		}
	}

	// (5) Promote still-redundant matched edges to CRITICAL.
	for u := 0; u < n; u++ {
		out := m.MatchOut(u)
		if len(out) == 0 {
			continue
		}
		v := out[0]
		eid := g.EID(u, v)
		if eid < 0 {
			return nil, fmt.Errorf("liu: classify: matched pair %d->%d has no edge in graph", u, v)
		}
		if result[eid] == EdgeRedundant {
			result[eid] = EdgeCritical
		}
	}

	return result, nil
}

// markReachable runs a BFS from seeds over the arcs reachable through adj
// (adjIn for the backward pass, adjOut for the forward pass), marking every
// traversed arc's underlying edge EdgeOrdinary in result and continuing the
// search from next(arc) — the endpoint of the arc opposite the node it was
// reached from.
func markReachable(
	arcs []bipartiteArc,
	adj [][]int,
	seeds []int,
	result []EdgeClass,
	next func(a bipartiteArc) int,
) {
	seen := make(map[int]bool, len(seeds))
	queue := make([]int, 0, len(seeds))
	for _, s := range seeds {
		if !seen[s] {
			seen[s] = true
			queue = append(queue, s)
		}
	}
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		for _, arcIdx := range adj[node] {
			a := arcs[arcIdx]
			result[a.edgeID] = EdgeOrdinary
			nextNode := next(a)
			if !seen[nextNode] {
				seen[nextNode] = true
				queue = append(queue, nextNode)
			}
		}
	}
}
