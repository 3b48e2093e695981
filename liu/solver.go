package liu

import (
	"fmt"
	"io"
	"log/slog"
	"sort"

	"github.com/corvidae/netctrl/controlpath"
	"github.com/corvidae/netctrl/graphiface"
	"github.com/corvidae/netctrl/matching"
)

// Option configures a Solver at construction time.
type Option func(*Solver)

// WithLogger attaches a structured logger used to report the forced-driver
// fallback (spec.md's Open Question about vertex 0). Defaults to a
// discard logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Solver) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// Solver computes driver nodes and control paths for the Liu untargeted
// controllability model. A Solver instance owns its result state (driver
// set, matching, control paths) for the duration of a calculation; it must
// not be shared across goroutines without external synchronization.
type Solver struct {
	factory graphiface.Factory
	matcher graphiface.BipartiteMatcher
	logger  *slog.Logger

	graph   graphiface.Graph
	targets []int // non-nil means targeted mode was requested (unsupported)

	calculated bool
	drivers    []int
	m          *matching.Matching
	paths      []*controlpath.Path
}

// NewSolver returns a Solver that builds its bipartite graph via factory
// and matches it via matcher. Both must be non-nil.
func NewSolver(factory graphiface.Factory, matcher graphiface.BipartiteMatcher, opts ...Option) *Solver {
	s := &Solver{
		factory: factory,
		matcher: matcher,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
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
	s.m = nil
	s.paths = nil
}

// SetTargets restricts the solver to targeted control of the given vertex
// subset. Targeted control is not implemented (see package doc and
// spec.md's Open Questions); Calculate returns ErrUnsupportedTargeted once
// targets have been set. Passing nil clears any
// previously set target restriction.
func (s *Solver) SetTargets(targets []int) {
	s.targets = targets
}

// Clone returns a stateless duplicate of s, attached to the same graph but
// with no computed results.
func (s *Solver) Clone() *Solver {
	return &Solver{
		factory: s.factory,
		matcher: s.matcher,
		logger:  s.logger,
		graph:   s.graph,
		targets: s.targets,
	}
}

// Calculate computes the driver set and control paths for the attached
// graph, replacing any previous result. Returns ErrNoGraph if no graph has
// been attached, or ErrUnsupportedTargeted if SetTargets was called with a
// non-nil slice.
func (s *Solver) Calculate() error {
	if s.graph == nil {
		return ErrNoGraph
	}
	if s.targets != nil {
		return ErrUnsupportedTargeted
	}

	g := s.graph
	n := g.VCount()

	m, err := s.computeMatching(g, n)
	if err != nil {
		return fmt.Errorf("liu: %w", err)
	}
	s.m = m

	drivers := make([]int, 0)
	for v := 0; v < n; v++ {
		if !m.IsMatched(v) {
			drivers = append(drivers, v)
		}
	}

	paths := make([]*controlpath.Path, 0)
	used := make([]bool, n)
	stemOf := make([]*controlpath.Path, n)

	for _, d := range drivers {
		nodes := []int{d}
		used[d] = true
		u := d
		for {
			out := m.MatchOut(u)
			if len(out) == 0 {
				break
			}
			u = out[0]
			nodes = append(nodes, u)
			used[u] = true
		}
		stem := controlpath.NewStem(nodes)
		for _, v := range nodes {
			stemOf[v] = stem
		}
		paths = append(paths, stem)
	}

	for start := 0; start < n; start++ {
		if used[start] || !m.IsMatched(start) {
			continue
		}
		nodes := make([]int, 0)
		u := start
		for !used[u] {
			nodes = append(nodes, u)
			used[u] = true
			out := m.MatchOut(u)
			if len(out) == 0 {
				break
			}
			u = out[0]
		}
		if len(nodes) > 1 && nodes[0] == nodes[len(nodes)-1] {
			nodes = nodes[:len(nodes)-1]
		}
		bud := controlpath.NewBud(nodes)

		for _, v := range nodes {
			if bud.AttachedStem() != nil {
				break
			}
			for _, w := range g.Neighbors(v, graphiface.DirIn) {
				if stemOf[w] != nil {
					bud.AttachStem(stemOf[w])
					break
				}
			}
		}
		paths = append(paths, bud)
	}

	if len(drivers) == 0 {
		s.logger.Info("liu: no unmatched vertex found, forcing vertex 0 as driver")
		drivers = []int{0}
	}

	s.drivers = drivers
	s.paths = paths
	s.calculated = true
	return nil
}

// computeMatching builds B(G) and runs the injected BipartiteMatcher,
// returning the result as a matching.Matching keyed by G's vertex indices.
func (s *Solver) computeMatching(g graphiface.Graph, n int) (*matching.Matching, error) {
	bipartite := s.factory.NewGraph(2*n, false)
	edges := make([]graphiface.Edge, 0, g.ECount())
	for _, e := range g.EdgeList() {
		edges = append(edges, graphiface.Edge{Source: e.Source, Target: e.Target + n})
	}
	if err := bipartite.AddEdges(edges); err != nil {
		return nil, fmt.Errorf("building bipartite graph: %w", err)
	}

	types := make([]bool, 2*n)
	for v := n; v < 2*n; v++ {
		types[v] = true
	}

	partner, err := s.matcher.MaxBipartiteMatching(bipartite, types)
	if err != nil {
		return nil, fmt.Errorf("maximum bipartite matching: %w", err)
	}

	m := matching.New(n)
	for u := 0; u < n; u++ {
		p := partner[u]
		if p == -1 {
			continue
		}
		m.SetMatch(u, p-n)
	}
	return m, nil
}

// Controllability returns |drivers| / |V|. Returns ErrNotCalculated if
// Calculate has not run successfully.
func (s *Solver) Controllability() (float64, error) {
	if !s.calculated {
		return 0, ErrNotCalculated
	}
	return float64(len(s.drivers)) / float64(s.graph.VCount()), nil
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
// Calculate call. The returned slice and its Paths are owned by the
// solver; callers must copy before a subsequent Calculate or SetGraph call.
func (s *Solver) ControlPaths() []*controlpath.Path {
	return s.paths
}

// Matching returns the directed matching computed by the most recent
// Calculate call, or nil if Calculate has not run.
func (s *Solver) Matching() *matching.Matching {
	return s.m
}

// Graph returns the graph currently attached to the solver.
func (s *Solver) Graph() graphiface.Graph {
	return s.graph
}
