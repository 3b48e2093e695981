package nullmodel_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corvidae/netctrl/graphiface"
	"github.com/corvidae/netctrl/liu"
	"github.com/corvidae/netctrl/memgraph"
	"github.com/corvidae/netctrl/nullmodel"
	"github.com/corvidae/netctrl/sbd"
)

func buildGraph(t *testing.T, n int, edges [][2]int) graphiface.Graph {
	t.Helper()
	g := memgraph.NewGraph(n, true)
	pairs := make([]graphiface.Edge, len(edges))
	for i, e := range edges {
		pairs[i] = graphiface.Edge{Source: e[0], Target: e[1]}
	}
	require.NoError(t, g.AddEdges(pairs))
	return g
}

func TestRunWithoutGraphReturnsErrNoGraph(t *testing.T) {
	gen := &memgraph.Generator{Rand: rand.New(rand.NewSource(1))}
	_, err := nullmodel.Run(func() nullmodel.ControllabilitySolver {
		return sbd.NewSolver()
	}, nil, gen, nullmodel.WithRand(rand.New(rand.NewSource(1))))
	assert.ErrorIs(t, err, nullmodel.ErrNoGraph)
}

func TestRunWithoutRandReturnsErrNeedRandSource(t *testing.T) {
	g := buildGraph(t, 4, [][2]int{{0, 1}, {1, 2}, {2, 3}})
	gen := &memgraph.Generator{Rand: rand.New(rand.NewSource(1))}
	_, err := nullmodel.Run(func() nullmodel.ControllabilitySolver {
		return sbd.NewSolver()
	}, g, gen)
	assert.ErrorIs(t, err, nullmodel.ErrNeedRandSource)
}

func TestRunSbdReportsMeansInUnitInterval(t *testing.T) {
	g := buildGraph(t, 6, [][2]int{
		{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 5}, {5, 0}, {0, 3},
	})
	gen := &memgraph.Generator{Rand: rand.New(rand.NewSource(7))}

	report, err := nullmodel.Run(func() nullmodel.ControllabilitySolver {
		return sbd.NewSolver()
	}, g, gen, nullmodel.WithTrials(10), nullmodel.WithRand(rand.New(rand.NewSource(7))))
	require.NoError(t, err)

	assert.Equal(t, 10, report.Trials)
	for _, mean := range []float64{report.ErdosRenyiMean, report.ConfigModelMean, report.ShuffledConfigModelMean} {
		assert.GreaterOrEqual(t, mean, 0.0)
		assert.LessOrEqual(t, mean, 1.0)
	}
}

func TestRunLiuReportsMeansInUnitInterval(t *testing.T) {
	g := buildGraph(t, 5, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}})
	gen := &memgraph.Generator{Rand: rand.New(rand.NewSource(3))}

	report, err := nullmodel.Run(func() nullmodel.ControllabilitySolver {
		return liu.NewSolver(memgraph.Factory{}, memgraph.Matcher{})
	}, g, gen, nullmodel.WithTrials(5), nullmodel.WithRand(rand.New(rand.NewSource(3))))
	require.NoError(t, err)

	assert.Equal(t, 5, report.Trials)
	for _, mean := range []float64{report.ErdosRenyiMean, report.ConfigModelMean, report.ShuffledConfigModelMean} {
		assert.GreaterOrEqual(t, mean, 0.0)
		assert.LessOrEqual(t, mean, 1.0)
	}
}

func TestRunDefaultsToOneHundredTrials(t *testing.T) {
	g := buildGraph(t, 3, [][2]int{{0, 1}, {1, 2}})
	gen := &memgraph.Generator{Rand: rand.New(rand.NewSource(2))}

	report, err := nullmodel.Run(func() nullmodel.ControllabilitySolver {
		return sbd.NewSolver()
	}, g, gen, nullmodel.WithRand(rand.New(rand.NewSource(2))))
	require.NoError(t, err)
	assert.Equal(t, nullmodel.DefaultTrials, report.Trials)
}
