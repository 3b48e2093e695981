package nullmodel

import (
	"fmt"
	"math/rand"

	"github.com/corvidae/netctrl/graphiface"
)

// DefaultTrials is T, the number of trials run per ensemble when no
// WithTrials option overrides it (spec.md §4.G).
const DefaultTrials = 100

// ControllabilitySolver is the minimal capability Run needs from a
// controllability solver. liu.Solver and sbd.Solver both satisfy it.
//
// Run takes a factory closure rather than calling a Clone method on an
// existing solver: liu.Solver.Clone and sbd.Solver.Clone each return their
// own concrete type, and Go has no covariant return types, so no single
// interface method could express "clone yourself as a ControllabilitySolver"
// across both. A closure that constructs a fresh solver sidesteps the
// problem entirely and is what spec.md's "clone the solver" per trial
// reduces to in Go: a fresh instance carrying the same configuration.
type ControllabilitySolver interface {
	SetGraph(g graphiface.Graph)
	Calculate() error
	Controllability() (float64, error)
}

// Option configures a Run call.
type Option func(*config)

type config struct {
	trials int
	rand   *rand.Rand
}

// WithTrials overrides DefaultTrials.
func WithTrials(trials int) Option {
	return func(c *config) { c.trials = trials }
}

// WithRand supplies the random source used to permute degree sequences for
// the shuffled configuration-model ensemble. Required; Run returns
// ErrNeedRandSource without it.
func WithRand(r *rand.Rand) Option {
	return func(c *config) { c.rand = r }
}

// Report holds the mean observed controllability across each of the three
// ensembles (spec.md §4.G, §6's "significance" output mode).
type Report struct {
	Trials                  int
	ErdosRenyiMean          float64
	ConfigModelMean         float64
	ShuffledConfigModelMean float64
}

// Run executes Trials trials of each of the three ensembles described in
// spec.md §4.G against g, using gen to produce the random graphs and
// newSolver to obtain one fresh solver instance per trial.
func Run(newSolver func() ControllabilitySolver, g graphiface.Graph, gen graphiface.RandomGraphGenerator, opts ...Option) (Report, error) {
	if g == nil {
		return Report{}, ErrNoGraph
	}

	cfg := config{trials: DefaultTrials}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.trials <= 0 {
		cfg.trials = DefaultTrials
	}
	if cfg.rand == nil {
		return Report{}, ErrNeedRandSource
	}

	n, m, directed := g.VCount(), g.ECount(), g.IsDirected()
	outDeg := make([]int, n)
	inDeg := make([]int, n)
	for v := 0; v < n; v++ {
		outDeg[v] = g.Degree(v, graphiface.DirOut)
		inDeg[v] = g.Degree(v, graphiface.DirIn)
	}

	erMean, err := runEnsemble(cfg.trials, newSolver, func() (graphiface.Graph, error) {
		return gen.ErdosRenyiGNM(n, m, directed)
	})
	if err != nil {
		return Report{}, err
	}

	cmMean, err := runEnsemble(cfg.trials, newSolver, func() (graphiface.Graph, error) {
		return gen.DegreeSequenceGame(outDeg, inDeg)
	})
	if err != nil {
		return Report{}, err
	}

	shuffledOut := append([]int(nil), outDeg...)
	shuffledIn := append([]int(nil), inDeg...)
	scMean, err := runEnsemble(cfg.trials, newSolver, func() (graphiface.Graph, error) {
		cfg.rand.Shuffle(n, func(i, j int) { shuffledOut[i], shuffledOut[j] = shuffledOut[j], shuffledOut[i] })
		cfg.rand.Shuffle(n, func(i, j int) { shuffledIn[i], shuffledIn[j] = shuffledIn[j], shuffledIn[i] })
		return gen.DegreeSequenceGame(shuffledOut, shuffledIn)
	})
	if err != nil {
		return Report{}, err
	}

	return Report{
		Trials:                  cfg.trials,
		ErdosRenyiMean:          erMean,
		ConfigModelMean:         cmMean,
		ShuffledConfigModelMean: scMean,
	}, nil
}

// runEnsemble runs trials independent trials of one ensemble and returns
// the mean observed controllability.
func runEnsemble(trials int, newSolver func() ControllabilitySolver, generate func() (graphiface.Graph, error)) (float64, error) {
	sum := 0.0
	for i := 0; i < trials; i++ {
		randomGraph, err := generate()
		if err != nil {
			return 0, fmt.Errorf("%w: trial %d: generate graph: %v", ErrTrialFailed, i, err)
		}

		solver := newSolver()
		solver.SetGraph(randomGraph)
		if err := solver.Calculate(); err != nil {
			return 0, fmt.Errorf("%w: trial %d: calculate: %v", ErrTrialFailed, i, err)
		}
		c, err := solver.Controllability()
		if err != nil {
			return 0, fmt.Errorf("%w: trial %d: controllability: %v", ErrTrialFailed, i, err)
		}
		sum += c
	}
	return sum / float64(trials), nil
}
