package sbd

import (
	"fmt"
	"sort"

	"github.com/corvidae/netctrl/controlpath"
	"github.com/corvidae/netctrl/graphiface"
)

// Measure selects which of spec.md's two controllability measures
// Controllability reports.
type Measure int

const (
	// NodeMeasure reports |drivers| / |V|.
	NodeMeasure Measure = iota
	// EdgeMeasure reports (open paths + balanced components) / |E|.
	EdgeMeasure
)

// Option configures a Solver at construction time.
type Option func(*Solver)

// WithMeasure overrides the default NodeMeasure.
func WithMeasure(m Measure) Option {
	return func(s *Solver) { s.measure = m }
}

// Solver computes driver nodes and control paths for the Switchboard (SBD)
// untargeted controllability model.
type Solver struct {
	measure Measure

	graph   graphiface.Graph
	targets []int

	calculated     bool
	drivers        []int
	balancedDriven int // number of balanced components that contributed a driver
	paths          []*controlpath.Path
}

// NewSolver returns a Solver configured by opts.
func NewSolver(opts ...Option) *Solver {
	s := &Solver{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetGraph attaches g to the solver, invalidating any previous result.
func (s *Solver) SetGraph(g graphiface.Graph) {
	s.graph = g
	s.calculated = false
	s.drivers = nil
	s.balancedDriven = 0
	s.paths = nil
}

// SetTargets restricts the solver to targeted control. The SBD model never
// supports this; Calculate returns ErrUnsupportedTargeted once targets have
// been set. Passing nil clears any previously set restriction.
func (s *Solver) SetTargets(targets []int) {
	s.targets = targets
}

// Clone returns a stateless duplicate of s, attached to the same graph but
// with no computed results.
func (s *Solver) Clone() *Solver {
	return &Solver{measure: s.measure, graph: s.graph, targets: s.targets}
}

// Calculate computes the driver set and control paths for the attached
// graph, replacing any previous result.
func (s *Solver) Calculate() error {
	if s.graph == nil {
		return ErrNoGraph
	}
	if s.targets != nil {
		return ErrUnsupportedTargeted
	}

	g := s.graph
	n := g.VCount()

	outDeg := make([]int, n)
	inDeg := make([]int, n)
	for v := 0; v < n; v++ {
		outDeg[v] = g.Degree(v, graphiface.DirOut)
		inDeg[v] = g.Degree(v, graphiface.DirIn)
	}

	isBalanced := func(v int) bool { return outDeg[v] == inDeg[v] && outDeg[v] > 0 }

	drivers := make([]int, 0)
	balancedCount := 0
	for v := 0; v < n; v++ {
		if outDeg[v] > inDeg[v] {
			drivers = append(drivers, v)
		} else if isBalanced(v) {
			balancedCount++
		}
	}

	balancedDriven := 0
	if balancedCount > 0 {
		membership, count := g.WeakComponents()
		balancedComponent := make([]bool, count)
		for i := range balancedComponent {
			balancedComponent[i] = true
		}
		for v := 0; v < n; v++ {
			if !isBalanced(v) {
				balancedComponent[membership[v]] = false
			}
		}
		for v := 0; v < n; v++ {
			c := membership[v]
			if balancedComponent[c] {
				drivers = append(drivers, v)
				balancedComponent[c] = false
				balancedDriven++
			}
		}
	}

	edgeUsed := make([]bool, g.ECount())
	byNode := make([]*controlpath.Path, n)
	var paths []*controlpath.Path

	// Phase 1: drain every divergent node's surplus out-degree into stems
	// (open walks), following netctrl's calculate(): drivers currently
	// holds the divergent nodes first, the balanced-component picks last;
	// walking from a balanced pick never enters this loop since its
	// residual out/in degrees are already equal.
	for _, d := range drivers {
		for outDeg[d] > inDeg[d] {
			p := walkFrom(g, d, edgeUsed, outDeg, inDeg)
			if p == nil {
				break
			}
			assignNodes(byNode, p, p.Nodes())
			paths = append(paths, p)
		}
	}

	// Phase 2: every remaining vertex is now balanced w.r.t. its residual
	// degrees; drain any leftover outgoing edges into closed walks.
	var closedWalksToMerge []*controlpath.Path
	for v := 0; v < n; v++ {
		for outDeg[v] > 0 {
			p := walkFrom(g, v, edgeUsed, outDeg, inDeg)
			if p == nil {
				break
			}
			closedWalksToMerge = append(closedWalksToMerge, p)
		}
	}

	// Try merging closed walks into open walks first, then into each other.
	closedWalksToMerge = mergeClosedWalks(closedWalksToMerge, byNode, paths)
	paths = append(paths, closedWalksToMerge...)

	s.drivers = drivers
	s.balancedDriven = balancedDriven
	s.paths = paths
	s.calculated = true
	return nil
}

// walkFrom repeatedly follows the lowest-indexed unused outgoing edge from
// v until it gets stuck, following netctrl's createControlPathFromNode. It
// returns nil if v has no available outgoing edge at all.
func walkFrom(g graphiface.Graph, start int, edgeUsed []bool, outDeg, inDeg []int) *controlpath.Path {
	nodes := make([]int, 0)
	v := start
	for {
		var eid, target int = -1, -1
		for _, idx := range g.Incident(v, graphiface.DirOut) {
			if !edgeUsed[idx] {
				eid = idx
				break
			}
		}
		if eid == -1 {
			break
		}
		e := g.EdgeList()[eid]
		target = e.Target

		nodes = append(nodes, v)
		edgeUsed[eid] = true
		outDeg[v]--
		inDeg[target]--
		v = target
	}

	if v != start {
		nodes = append(nodes, v)
		return controlpath.NewOpenWalk(nodes)
	}
	if len(nodes) == 0 {
		return nil
	}
	return controlpath.NewClosedWalk(nodes)
}

// assignNodes records that every node in nodes belongs to p.
func assignNodes(byNode []*controlpath.Path, p *controlpath.Path, nodes []int) {
	for _, v := range nodes {
		byNode[v] = p
	}
}

// findAdjacent returns a control path other than p that shares a node with
// p, or nil.
func findAdjacent(p *controlpath.Path, byNode []*controlpath.Path) *controlpath.Path {
	for _, v := range p.Nodes() {
		if other := byNode[v]; other != nil && other != p {
			return other
		}
	}
	return nil
}

// mergeClosedWalks implements netctrl's tryToMergeClosedWalks, run twice:
// first against open walks (openPaths already populates byNode), then
// against the surviving closed walks themselves. It returns the closed
// walks that could not be merged into anything.
func mergeClosedWalks(closed []*controlpath.Path, byNode []*controlpath.Path, openPaths []*controlpath.Path) []*controlpath.Path {
	remaining := closed
	for {
		progressed := false
		next := make([]*controlpath.Path, 0, len(remaining))
		for _, w := range remaining {
			if adj := findAdjacent(w, byNode); adj != nil {
				_ = adj.Extend(w)
				assignNodes(byNode, adj, w.Nodes())
				progressed = true
				continue
			}
			next = append(next, w)
		}
		remaining = next
		if !progressed {
			break
		}
	}

	// Second round: closed walks may now be adjacent to each other once
	// every surviving one has been registered in byNode.
	for _, w := range remaining {
		assignNodes(byNode, w, w.Nodes())
	}
	for {
		progressed := false
		next := make([]*controlpath.Path, 0, len(remaining))
		for _, w := range remaining {
			if adj := findAdjacent(w, byNode); adj != nil {
				_ = adj.Extend(w)
				assignNodes(byNode, adj, w.Nodes())
				progressed = true
				continue
			}
			next = append(next, w)
		}
		remaining = next
		if !progressed {
			break
		}
	}
	return remaining
}

// Controllability reports the configured measure. Returns ErrNotCalculated
// if Calculate has not run successfully.
func (s *Solver) Controllability() (float64, error) {
	if !s.calculated {
		return 0, ErrNotCalculated
	}
	switch s.measure {
	case NodeMeasure:
		return float64(len(s.drivers)) / float64(s.graph.VCount()), nil
	case EdgeMeasure:
		open := 0
		for _, p := range s.paths {
			if p.NeedsInputSignal() {
				open++
			}
		}
		return float64(open+s.balancedDriven) / float64(s.graph.ECount()), nil
	default:
		return 0, fmt.Errorf("sbd: measure %d: %w", s.measure, ErrUnknownMeasure)
	}
}

// DriverNodes returns the driver set computed by the most recent Calculate
// call, in ascending order. Returns nil if Calculate has not run.
func (s *Solver) DriverNodes() []int {
	if !s.calculated {
		return nil
	}
	out := make([]int, len(s.drivers))
	copy(out, s.drivers)
	sort.Ints(out)
	return out
}

// ControlPaths returns the control paths computed by the most recent
// Calculate call.
func (s *Solver) ControlPaths() []*controlpath.Path {
	return s.paths
}

// Graph returns the graph currently attached to the solver.
func (s *Solver) Graph() graphiface.Graph {
	return s.graph
}
