package memgraph_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corvidae/netctrl/memgraph"
)

func TestErdosRenyiGNMProducesExactEdgeCount(t *testing.T) {
	gen := memgraph.Generator{Rand: rand.New(rand.NewSource(1))}
	g, err := gen.ErdosRenyiGNM(10, 15, true)
	require.NoError(t, err)
	assert.Equal(t, 10, g.VCount())
	assert.Equal(t, 15, g.ECount())
}

func TestErdosRenyiGNMRejectsTooManyEdges(t *testing.T) {
	gen := memgraph.Generator{Rand: rand.New(rand.NewSource(1))}
	_, err := gen.ErdosRenyiGNM(3, 100, true)
	assert.ErrorIs(t, err, memgraph.ErrTooFewVertices)
}

func TestDegreeSequenceGameMatchesRequestedDegrees(t *testing.T) {
	gen := memgraph.Generator{Rand: rand.New(rand.NewSource(7))}
	outDeg := []int{2, 1, 1, 0}
	inDeg := []int{0, 1, 1, 2}
	g, err := gen.DegreeSequenceGame(outDeg, inDeg)
	require.NoError(t, err)

	for v, want := range outDeg {
		assert.Equal(t, want, g.Degree(v, 0))
	}
	for v, want := range inDeg {
		assert.Equal(t, want, g.Degree(v, 1))
	}
}

func TestDegreeSequenceGameRejectsImbalancedSums(t *testing.T) {
	gen := memgraph.Generator{Rand: rand.New(rand.NewSource(1))}
	_, err := gen.DegreeSequenceGame([]int{1, 1}, []int{1, 0})
	assert.ErrorIs(t, err, memgraph.ErrTooFewVertices)
}
