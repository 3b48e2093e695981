package liu_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corvidae/netctrl/controlpath"
	"github.com/corvidae/netctrl/graphiface"
	"github.com/corvidae/netctrl/liu"
	"github.com/corvidae/netctrl/memgraph"
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

func newSolver() *liu.Solver {
	return liu.NewSolver(memgraph.Factory{}, memgraph.Matcher{})
}

func TestCalculateWithoutGraphReturnsErrNoGraph(t *testing.T) {
	s := newSolver()
	assert.ErrorIs(t, s.Calculate(), liu.ErrNoGraph)
}

func TestControllabilityBeforeCalculateReturnsErrNotCalculated(t *testing.T) {
	s := newSolver()
	_, err := s.Controllability()
	assert.ErrorIs(t, err, liu.ErrNotCalculated)
}

func TestDirectedPathSingleDriverSingleStem(t *testing.T) {
	g := buildGraph(t, 4, [][2]int{{0, 1}, {1, 2}, {2, 3}})
	s := newSolver()
	s.SetGraph(g)
	require.NoError(t, s.Calculate())

	assert.Equal(t, []int{0}, s.DriverNodes())
	c, err := s.Controllability()
	require.NoError(t, err)
	assert.InDelta(t, 0.25, c, 1e-9)

	paths := s.ControlPaths()
	require.Len(t, paths, 1)
	assert.Equal(t, []int{0, 1, 2, 3}, paths[0].Nodes())
}

func TestPureCycleForcesVertexZeroAsDriverWithOneBud(t *testing.T) {
	g := buildGraph(t, 3, [][2]int{{0, 1}, {1, 2}, {2, 0}})
	s := newSolver()
	s.SetGraph(g)
	require.NoError(t, s.Calculate())

	assert.Equal(t, []int{0}, s.DriverNodes())

	paths := s.ControlPaths()
	require.Len(t, paths, 1)
	assert.Equal(t, controlpath.KindBud, paths[0].Kind())
	assert.True(t, paths[0].NeedsInputSignal())
	assert.Equal(t, []int{0, 1, 2}, paths[0].Nodes())
}

func TestSetTargetsMakesCalculateUnsupported(t *testing.T) {
	g := buildGraph(t, 2, [][2]int{{0, 1}})
	s := newSolver()
	s.SetGraph(g)
	s.SetTargets([]int{0})
	assert.ErrorIs(t, s.Calculate(), liu.ErrUnsupportedTargeted)
}

func TestCloneSharesGraphNotResults(t *testing.T) {
	g := buildGraph(t, 2, [][2]int{{0, 1}})
	s := newSolver()
	s.SetGraph(g)
	require.NoError(t, s.Calculate())

	clone := s.Clone()
	assert.Same(t, s.Graph(), clone.Graph())
	assert.Nil(t, clone.Matching())
	_, err := clone.Controllability()
	assert.ErrorIs(t, err, liu.ErrNotCalculated)
}
