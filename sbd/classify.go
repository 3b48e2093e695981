package sbd

import "github.com/corvidae/netctrl/graphiface"

// EdgeClass identifies how removing an edge would affect SBD's driver
// count, following spec.md §4.F and netctrl's
// SwitchboardControllabilityModel::edgeClasses.
type EdgeClass int

const (
	// EdgeRedundant edges never change the driver count if removed.
	EdgeRedundant EdgeClass = iota
	// EdgeCritical edges increase the driver count by one if removed.
	EdgeCritical
	// EdgeDistinguished edges decrease the driver count by one if removed
	// (the removal merges two driver roles into one).
	EdgeDistinguished
)

// String renders the class using spec.md's edge_class vocabulary.
func (c EdgeClass) String() string {
	switch c {
	case EdgeRedundant:
		return "redundant"
	case EdgeCritical:
		return "critical"
	case EdgeDistinguished:
		return "distinguished"
	default:
		return "unknown"
	}
}

// ClassifyEdges classifies every edge of g by the change it would cause in
// the SBD driver count if removed, following netctrl's
// changesInDriverNodesAfterEdgeRemoval. Targeted control is not supported;
// passing a non-nil targets slice returns ErrUnsupportedTargeted.
func ClassifyEdges(g graphiface.Graph, targets []int) ([]EdgeClass, error) {
	if targets != nil {
		return nil, ErrUnsupportedTargeted
	}

	n := g.VCount()
	diff := make([]int, n)
	for v := 0; v < n; v++ {
		diff[v] = g.Degree(v, graphiface.DirIn) - g.Degree(v, graphiface.DirOut)
	}

	edges := g.EdgeList()
	classes := make([]EdgeClass, len(edges))
	for i, e := range edges {
		classes[i] = classifyEdgeToClass(classifyEdge(g, diff, e.Source, e.Target))
	}
	return classes, nil
}

// classifyEdge scores the removal of edge u->v, following netctrl's
// changesInDriverNodesAfterEdgeRemoval: diff[x] is in(x)-out(x); removing
// the edge raises diff[u] by one (u loses an out-edge) and lowers diff[v]
// by one (v loses an in-edge).
func classifyEdge(g graphiface.Graph, diff []int, u, v int) int {
	score := 0

	if diff[u] == -1 {
		// u was divergent by exactly one; it becomes balanced, losing its
		// driver status.
		score--
	}
	if diff[v] == 0 {
		// v was balanced; it becomes divergent, gaining driver status
		// unconditionally.
		score++
	}

	if diff[u] == 0 && diff[v] == 0 {
		// Both endpoints are currently balanced. If u's component is
		// already fully balanced, it already has a driver of its own;
		// that driver is lost once u (or v, the same component) stops
		// being balanced.
		if isInBalancedComponent(g, u, diff) {
			score--
		}
	}

	if diff[v] == 1 {
		// v is convergent by exactly one; it becomes balanced. If doing
		// so makes it part of an otherwise-balanced component, that
		// component now needs a driver of its own.
		diff[v]--
		diff[u]++
		if isInBalancedComponentExcept(g, v, u, diff) {
			score++
		}
		diff[v]++
		diff[u]--
	}

	if diff[u] == -1 {
		// u is divergent by exactly one; it becomes balanced. Symmetric
		// to the diff[v] == 1 case above.
		diff[v]--
		diff[u]++
		if isInBalancedComponentExcept(g, u, v, diff) {
			score++
		}
		diff[v]++
		diff[u]--
	}

	return score
}

func classifyEdgeToClass(score int) EdgeClass {
	switch {
	case score < 0:
		return EdgeDistinguished
	case score == 0:
		return EdgeRedundant
	default:
		return EdgeCritical
	}
}

// isInBalancedComponent reports whether v sits in a non-trivial,
// fully-balanced weakly-connected component (every member has diff == 0).
func isInBalancedComponent(g graphiface.Graph, v int, diff []int) bool {
	return isInBalancedComponentExcept(g, v, -1, diff)
}

// isInBalancedComponentExcept is isInBalancedComponent as it would be
// evaluated with vertex exclude removed from the graph entirely (not just
// the edge between v and exclude), following netctrl's
// isInBalancedComponentExcept.
func isInBalancedComponentExcept(g graphiface.Graph, v, exclude int, diff []int) bool {
	if diff[v] != 0 {
		return false
	}

	neighbors := g.Neighbors(v, graphiface.DirAll)
	if len(neighbors) == 0 || (len(neighbors) == 1 && neighbors[0] == exclude) {
		return false
	}

	visited := make(map[int]bool)
	visited[v] = true
	if exclude >= 0 {
		visited[exclude] = true
	}
	queue := []int{v}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, w := range g.Neighbors(cur, graphiface.DirAll) {
			if visited[w] {
				continue
			}
			if diff[w] != 0 {
				return false
			}
			visited[w] = true
			queue = append(queue, w)
		}
	}
	return true
}
