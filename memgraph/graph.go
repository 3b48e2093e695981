package memgraph

import (
	"sync"

	"github.com/corvidae/netctrl/graphiface"
)

// Graph is an adjacency-list directed multigraph over a dense vertex index
// range [0, n), following the teacher's core.Graph layout (per-vertex
// neighbor maps under a single mutex) adapted from string IDs to graphiface's
// dense int indices.
type Graph struct {
	mu       sync.RWMutex
	n        int
	directed bool
	edges    []graphiface.Edge
	out      [][]int // out[v] = indices into edges, in append order
	in       [][]int

	vertexAttrs map[int]map[string]interface{}
	edgeAttrs   map[int]map[string]interface{}
}

// NewGraph returns an empty graph with n vertices and no edges. It satisfies
// graphiface.MutableGraph.
func NewGraph(n int, directed bool) *Graph {
	return &Graph{
		n:        n,
		directed: directed,
		out:      make([][]int, n),
		in:       make([][]int, n),
	}
}

// Factory adapts NewGraph to graphiface.Factory.
type Factory struct{}

// NewGraph implements graphiface.Factory.
func (Factory) NewGraph(n int, directed bool) graphiface.MutableGraph {
	return NewGraph(n, directed)
}

// AddEdges implements graphiface.MutableGraph. For an undirected graph, each
// pair is also mirrored into the opposite adjacency so Neighbors/Degree see
// both endpoints; EdgeList still reports only the edge as given.
func (g *Graph) AddEdges(pairs []graphiface.Edge) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	for _, e := range pairs {
		idx := len(g.edges)
		g.edges = append(g.edges, e)
		g.out[e.Source] = append(g.out[e.Source], idx)
		g.in[e.Target] = append(g.in[e.Target], idx)
		if !g.directed && e.Source != e.Target {
			g.out[e.Target] = append(g.out[e.Target], idx)
			g.in[e.Source] = append(g.in[e.Source], idx)
		}
	}
	return nil
}

// VCount implements graphiface.Graph.
func (g *Graph) VCount() int {
	return g.n
}

// ECount implements graphiface.Graph.
func (g *Graph) ECount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.edges)
}

// IsDirected implements graphiface.Graph.
func (g *Graph) IsDirected() bool {
	return g.directed
}

// EdgeList implements graphiface.Graph.
func (g *Graph) EdgeList() []graphiface.Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]graphiface.Edge, len(g.edges))
	copy(out, g.edges)
	return out
}

// EID implements graphiface.Graph. Among parallel edges u->v, the
// lowest-indexed one is returned.
func (g *Graph) EID(u, v int) int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	for _, idx := range g.out[u] {
		if g.edges[idx].Target == v || (!g.directed && g.edges[idx].Source == v) {
			return idx
		}
	}
	return -1
}

// Degree implements graphiface.Graph.
func (g *Graph) Degree(v int, dir graphiface.Direction) int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	switch dir {
	case graphiface.DirOut:
		return len(g.out[v])
	case graphiface.DirIn:
		return len(g.in[v])
	default:
		return len(g.out[v]) + len(g.in[v])
	}
}

// Neighbors implements graphiface.Graph.
func (g *Graph) Neighbors(v int, dir graphiface.Direction) []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	seen := make(map[int]bool)
	var result []int
	add := func(w int) {
		if !seen[w] {
			seen[w] = true
			result = append(result, w)
		}
	}
	if dir == graphiface.DirOut || dir == graphiface.DirAll {
		for _, idx := range g.out[v] {
			e := g.edges[idx]
			if e.Source == v {
				add(e.Target)
			} else {
				add(e.Source)
			}
		}
	}
	if dir == graphiface.DirIn || dir == graphiface.DirAll {
		for _, idx := range g.in[v] {
			e := g.edges[idx]
			if e.Target == v {
				add(e.Source)
			} else {
				add(e.Target)
			}
		}
	}
	return result
}

// Incident implements graphiface.Graph.
func (g *Graph) Incident(v int, dir graphiface.Direction) []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	switch dir {
	case graphiface.DirOut:
		out := make([]int, len(g.out[v]))
		copy(out, g.out[v])
		return out
	case graphiface.DirIn:
		out := make([]int, len(g.in[v]))
		copy(out, g.in[v])
		return out
	default:
		seen := make(map[int]bool, len(g.out[v])+len(g.in[v]))
		var out []int
		for _, idx := range g.out[v] {
			if !seen[idx] {
				seen[idx] = true
				out = append(out, idx)
			}
		}
		for _, idx := range g.in[v] {
			if !seen[idx] {
				seen[idx] = true
				out = append(out, idx)
			}
		}
		return out
	}
}

// SetVertexAttr and SetEdgeAttr implement graphiface.AttributeWriter.
func (g *Graph) SetVertexAttr(v int, key string, value interface{}) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.vertexAttrs == nil {
		g.vertexAttrs = make(map[int]map[string]interface{})
	}
	if g.vertexAttrs[v] == nil {
		g.vertexAttrs[v] = make(map[string]interface{})
	}
	g.vertexAttrs[v][key] = value
}

func (g *Graph) SetEdgeAttr(e int, key string, value interface{}) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.edgeAttrs == nil {
		g.edgeAttrs = make(map[int]map[string]interface{})
	}
	if g.edgeAttrs[e] == nil {
		g.edgeAttrs[e] = make(map[string]interface{})
	}
	g.edgeAttrs[e][key] = value
}

// VertexAttr returns an attribute set via SetVertexAttr, or (nil, false).
func (g *Graph) VertexAttr(v int, key string) (interface{}, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	m, ok := g.vertexAttrs[v]
	if !ok {
		return nil, false
	}
	val, ok := m[key]
	return val, ok
}
