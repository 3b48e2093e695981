package analysis

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/corvidae/netctrl/controlpath"
	"github.com/corvidae/netctrl/graphiface"
	"github.com/corvidae/netctrl/liu"
	"github.com/corvidae/netctrl/nullmodel"
	"github.com/corvidae/netctrl/sbd"
)

// ModelKind selects which controllability model an Orchestrator runs.
type ModelKind int

const (
	// LiuModel selects the bipartite-matching-based Liu solver.
	LiuModel ModelKind = iota
	// SwitchboardModel selects the degree-imbalance-based SBD solver.
	SwitchboardModel
)

// Mode selects which of the five outputs Run produces (spec.md §6).
type Mode int

const (
	ModeDrivers Mode = iota
	ModeControlPaths
	ModeStatistics
	ModeSignificance
	ModeGraph
)

// Option configures an Orchestrator at construction time.
type Option func(*Orchestrator)

// WithLogger overrides the default discarding logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Orchestrator) { o.logger = l }
}

// WithMetrics attaches a Metrics instance the orchestrator updates during
// Run. Without one, metrics are simply not recorded.
func WithMetrics(m *Metrics) Option {
	return func(o *Orchestrator) { o.metrics = m }
}

// WithSwitchboardMeasure selects the SBD controllability measure. Ignored
// for LiuModel.
func WithSwitchboardMeasure(measure sbd.Measure) Option {
	return func(o *Orchestrator) { o.sbdMeasure = measure }
}

// WithNullModel supplies the generator and random source the significance
// mode needs, and optionally the trial count (spec.md §4.G defaults to
// 100).
func WithNullModel(gen graphiface.RandomGraphGenerator, r *rand.Rand, trials int) Option {
	return func(o *Orchestrator) {
		o.generator = gen
		o.rand = r
		o.nullTrials = trials
	}
}

// WithFactory overrides the bipartite-graph factory the Liu solver uses.
// Required for LiuModel.
func WithFactory(f graphiface.Factory) Option {
	return func(o *Orchestrator) { o.factory = f }
}

// WithMatcher overrides the bipartite matcher the Liu solver uses.
// Required for LiuModel.
func WithMatcher(m graphiface.BipartiteMatcher) Option {
	return func(o *Orchestrator) { o.matcher = m }
}

// Orchestrator dispatches a graph and a model selection to one of the five
// outputs spec.md §6 describes, following netctrl's
// NetworkControllabilityApp.
type Orchestrator struct {
	kind ModelKind
	graph graphiface.Graph

	factory graphiface.Factory
	matcher graphiface.BipartiteMatcher

	sbdMeasure sbd.Measure

	generator  graphiface.RandomGraphGenerator
	rand       *rand.Rand
	nullTrials int

	logger  *slog.Logger
	metrics *Metrics
}

// NewOrchestrator returns an Orchestrator for the given model kind and
// graph. Returns ErrUnknownModelKind for any kind other than LiuModel or
// SwitchboardModel.
func NewOrchestrator(kind ModelKind, g graphiface.Graph, opts ...Option) (*Orchestrator, error) {
	if kind != LiuModel && kind != SwitchboardModel {
		return nil, fmt.Errorf("analysis: kind %d: %w", kind, ErrUnknownModelKind)
	}
	o := &Orchestrator{
		kind:       kind,
		graph:      g,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		nullTrials: nullmodel.DefaultTrials,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o, nil
}

// newSolver returns a freshly configured solver of the orchestrator's
// model kind, satisfying nullmodel.ControllabilitySolver.
func (o *Orchestrator) newSolver() nullmodel.ControllabilitySolver {
	switch o.kind {
	case LiuModel:
		return liu.NewSolver(o.factory, o.matcher)
	default:
		return sbd.NewSolver(sbd.WithMeasure(o.sbdMeasure))
	}
}

// calculate attaches the orchestrator's graph to a fresh solver of its
// model kind, runs Calculate, and records metrics. It returns the solver
// so callers can pull driver nodes, control paths, and controllability
// from it, plus the classified edges.
func (o *Orchestrator) calculate() (nullmodel.ControllabilitySolver, []EdgeClass, error) {
	if o.graph == nil {
		return nil, nil, ErrNoGraph
	}

	o.logger.Info("calculating", "vertices", o.graph.VCount(), "edges", o.graph.ECount())
	start := time.Now()

	solver := o.newSolver()
	solver.SetGraph(o.graph)
	if err := solver.Calculate(); err != nil {
		return nil, nil, fmt.Errorf("analysis: calculate: %w", err)
	}

	if o.metrics != nil {
		o.metrics.CalculateDuration.Observe(time.Since(start).Seconds())
	}

	var driverCount int
	var classes []EdgeClass
	switch o.kind {
	case LiuModel:
		s := solver.(*liu.Solver)
		driverCount = len(s.DriverNodes())
		liuClasses, err := liu.ClassifyEdges(o.graph, s.Matching())
		if err != nil {
			return nil, nil, fmt.Errorf("analysis: classify edges: %w", err)
		}
		classes = make([]EdgeClass, len(liuClasses))
		for i, c := range liuClasses {
			classes[i] = fromLiuClass(c)
		}
	case SwitchboardModel:
		s := solver.(*sbd.Solver)
		driverCount = len(s.DriverNodes())
		sbdClasses, err := sbd.ClassifyEdges(o.graph, nil)
		if err != nil {
			return nil, nil, fmt.Errorf("analysis: classify edges: %w", err)
		}
		classes = make([]EdgeClass, len(sbdClasses))
		for i, c := range sbdClasses {
			classes[i] = fromSbdClass(c)
		}
	}

	if o.metrics != nil {
		o.metrics.DriverCount.Set(float64(driverCount))
	}

	return solver, classes, nil
}

func fromLiuClass(c liu.EdgeClass) EdgeClass {
	switch c {
	case liu.EdgeRedundant:
		return EdgeRedundant
	case liu.EdgeOrdinary:
		return EdgeOrdinary
	default:
		return EdgeCritical
	}
}

func fromSbdClass(c sbd.EdgeClass) EdgeClass {
	switch c {
	case sbd.EdgeRedundant:
		return EdgeRedundant
	case sbd.EdgeDistinguished:
		return EdgeDistinguished
	default:
		return EdgeCritical
	}
}

// driverNodesOf returns the driver set from whichever concrete solver Run
// attached.
func driverNodesOf(solver nullmodel.ControllabilitySolver) []int {
	switch s := solver.(type) {
	case *liu.Solver:
		return s.DriverNodes()
	case *sbd.Solver:
		return s.DriverNodes()
	default:
		return nil
	}
}

// controlPathsOf returns the control paths from whichever concrete solver
// Run attached.
func controlPathsOf(solver nullmodel.ControllabilitySolver) []*controlpath.Path {
	switch s := solver.(type) {
	case *liu.Solver:
		return s.ControlPaths()
	case *sbd.Solver:
		return s.ControlPaths()
	default:
		return nil
	}
}

// Drivers runs Calculate and returns the driver set (spec.md §6 "drivers").
func (o *Orchestrator) Drivers() (DriversResult, error) {
	solver, _, err := o.calculate()
	if err != nil {
		return DriversResult{}, err
	}

	namer, _ := o.graph.(graphiface.VertexNamer)
	nodes := make([]DriverNode, 0, len(driverNodesOf(solver)))
	for _, v := range driverNodesOf(solver) {
		dn := DriverNode{Index: v}
		if namer != nil {
			if name, ok := namer.VertexName(v); ok {
				dn.Name = name
			}
		}
		nodes = append(nodes, dn)
	}
	o.logger.Info("found driver nodes", "count", len(nodes))
	return DriversResult{Nodes: nodes}, nil
}

// ControlPaths runs Calculate and returns every control path's textual
// form (spec.md §6 "control_paths").
func (o *Orchestrator) ControlPaths() (ControlPathsResult, error) {
	solver, _, err := o.calculate()
	if err != nil {
		return ControlPathsResult{}, err
	}

	paths := controlPathsOf(solver)
	o.logger.Info("found control paths", "count", len(paths))

	namer, _ := o.graph.(graphiface.VertexNamer)
	rendered := make([]string, len(paths))
	for i, p := range paths {
		if namer == nil {
			rendered[i] = p.String()
			continue
		}
		names := make([]string, o.graph.VCount())
		for v := range names {
			if name, ok := namer.VertexName(v); ok {
				names[v] = name
			}
		}
		rendered[i] = p.StringWithNames(names)
	}
	return ControlPathsResult{Paths: rendered}, nil
}

// Statistics runs Calculate and ClassifyEdges and returns the raw counts
// and fractions of drivers and each edge class (spec.md §6 "statistics").
func (o *Orchestrator) Statistics() (StatisticsResult, error) {
	solver, classes, err := o.calculate()
	if err != nil {
		return StatisticsResult{}, err
	}

	result := StatisticsResult{
		VertexCount: o.graph.VCount(),
		EdgeCount:   o.graph.ECount(),
		DriverCount: len(driverNodesOf(solver)),
	}
	for _, c := range classes {
		switch c {
		case EdgeRedundant:
			result.Redundant++
		case EdgeOrdinary:
			result.Ordinary++
		case EdgeCritical:
			result.Critical++
		case EdgeDistinguished:
			result.Distinguished++
		}
	}
	return result, nil
}

// Significance runs Calculate once on the observed graph and T trials each
// of the three null-model ensembles, returning the observed controllability
// alongside the three ensemble means (spec.md §6 "significance").
func (o *Orchestrator) Significance() (SignificanceResult, error) {
	if o.graph == nil {
		return SignificanceResult{}, ErrNoGraph
	}

	runID := uuid.New()
	logger := o.logger.With("run_id", runID)

	solver, _, err := o.calculate()
	if err != nil {
		return SignificanceResult{}, err
	}
	observed, err := solver.Controllability()
	if err != nil {
		return SignificanceResult{}, fmt.Errorf("analysis: observed controllability: %w", err)
	}

	logger.Info("testing null models", "trials", o.nullTrials)
	report, err := nullmodel.Run(o.newSolver, o.graph, o.generator,
		nullmodel.WithTrials(o.nullTrials), nullmodel.WithRand(o.rand))
	if err != nil {
		return SignificanceResult{}, fmt.Errorf("analysis: null model: %w", err)
	}

	if o.metrics != nil {
		o.metrics.NullModelTrials.Add(float64(3 * report.Trials))
	}

	return SignificanceResult{
		RunID:                runID,
		Observed:             observed,
		ErdosRenyi:           report.ErdosRenyiMean,
		Configuration:        report.ConfigModelMean,
		ConfigurationNoJoint: report.ShuffledConfigModelMean,
	}, nil
}

// Graph runs Calculate and ClassifyEdges and annotates the attached graph
// in place: vertex attribute is_driver, edge attributes path_type,
// path_indices, path_order, edge_class (spec.md §6 "graph"). The graph
// must implement graphiface.AttributeWriter; writing the result to a file
// format (GraphML, GML, ...) is left to the caller's I/O collaborator.
func (o *Orchestrator) Graph() (graphiface.Graph, error) {
	writer, ok := o.graph.(graphiface.AttributeWriter)
	if !ok {
		return nil, fmt.Errorf("analysis: graph: %w", graphiface.ErrNotImplemented)
	}

	solver, classes, err := o.calculate()
	if err != nil {
		return nil, err
	}

	for _, v := range driverNodesOf(solver) {
		writer.SetVertexAttr(v, "is_driver", true)
	}

	paths := controlPathsOf(solver)
	for j, p := range paths {
		edges, err := p.Edges(o.graph)
		if err != nil {
			return nil, fmt.Errorf("analysis: graph: %w", err)
		}
		for i, eid := range edges {
			writer.SetEdgeAttr(eid, "path_type", p.Kind().String())
			writer.SetEdgeAttr(eid, "path_indices", j)
			writer.SetEdgeAttr(eid, "path_order", i)
		}
	}

	for i, c := range classes {
		writer.SetEdgeAttr(i, "edge_class", c.String())
	}

	return o.graph, nil
}

// Run dispatches to the method matching mode, returning a fmt.Stringer
// result. Returns ErrUnknownMode for any value other than the five Mode
// constants.
func (o *Orchestrator) Run(mode Mode) (fmt.Stringer, error) {
	switch mode {
	case ModeDrivers:
		r, err := o.Drivers()
		return r, err
	case ModeControlPaths:
		r, err := o.ControlPaths()
		return r, err
	case ModeStatistics:
		r, err := o.Statistics()
		return r, err
	case ModeSignificance:
		r, err := o.Significance()
		return r, err
	case ModeGraph:
		if _, err := o.Graph(); err != nil {
			return nil, err
		}
		return graphModeResult{}, nil
	default:
		return nil, fmt.Errorf("analysis: mode %d: %w", mode, ErrUnknownMode)
	}
}

// graphModeResult is Run's placeholder Stringer for ModeGraph: the
// annotated graph itself is the real result, available via Orchestrator.Graph;
// writing it to GraphML/GML is an external I/O concern (spec.md §6).
type graphModeResult struct{}

func (graphModeResult) String() string { return "" }
