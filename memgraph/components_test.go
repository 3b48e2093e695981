package memgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corvidae/netctrl/graphiface"
	"github.com/corvidae/netctrl/memgraph"
)

func TestStrongComponentsFindsCycle(t *testing.T) {
	g := memgraph.NewGraph(5, true)
	require.NoError(t, g.AddEdges([]graphiface.Edge{
		{Source: 0, Target: 1},
		{Source: 1, Target: 2},
		{Source: 2, Target: 0},
		{Source: 2, Target: 3},
		{Source: 3, Target: 4},
	}))
	membership, count := g.StrongComponents()
	assert.Equal(t, 3, count)
	assert.Equal(t, membership[0], membership[1])
	assert.Equal(t, membership[1], membership[2])
	assert.NotEqual(t, membership[2], membership[3])
	assert.NotEqual(t, membership[3], membership[4])
}

func TestWeakComponentsGroupsDisconnectedSubgraphs(t *testing.T) {
	g := memgraph.NewGraph(4, true)
	require.NoError(t, g.AddEdges([]graphiface.Edge{
		{Source: 0, Target: 1},
		{Source: 2, Target: 3},
	}))
	membership, count := g.WeakComponents()
	assert.Equal(t, 2, count)
	assert.Equal(t, membership[0], membership[1])
	assert.Equal(t, membership[2], membership[3])
	assert.NotEqual(t, membership[0], membership[2])
}
