package memgraph

import "github.com/corvidae/netctrl/graphiface"

// unmatched marks an unmatched vertex in the match arrays.
const unmatched = -1

// Matcher computes maximum-cardinality bipartite matchings via Kuhn's
// algorithm (DFS augmenting paths), adapted from a left/right-indexed Kuhn
// implementation to graphiface.BipartiteMatcher's single-graph-plus-types
// signature: types partitions g's vertices into a left and right side.
type Matcher struct{}

// MaxBipartiteMatching implements graphiface.BipartiteMatcher.
func (Matcher) MaxBipartiteMatching(g graphiface.Graph, types []bool) ([]int, error) {
	n := g.VCount()
	partner := make([]int, n)
	for i := range partner {
		partner[i] = unmatched
	}

	visitMark := make([]int, n)
	visitStamp := 0

	var findAugmentingPath func(left int) bool
	findAugmentingPath = func(left int) bool {
		if visitMark[left] == visitStamp {
			return false
		}
		visitMark[left] = visitStamp
		for _, right := range g.Neighbors(left, graphiface.DirAll) {
			if types[right] == types[left] {
				continue // both sides supplied via DirAll; only cross-side arcs count
			}
			if partner[right] == unmatched || findAugmentingPath(partner[right]) {
				partner[right] = left
				partner[left] = right
				return true
			}
		}
		return false
	}

	for left := 0; left < n; left++ {
		if types[left] || partner[left] != unmatched {
			continue
		}
		visitStamp++
		findAugmentingPath(left)
	}

	return partner, nil
}
