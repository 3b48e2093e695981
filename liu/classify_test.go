package liu_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corvidae/netctrl/liu"
)

func classify(t *testing.T, n int, edges [][2]int) []liu.EdgeClass {
	t.Helper()
	g := buildGraph(t, n, edges)
	s := newSolver()
	s.SetGraph(g)
	require.NoError(t, s.Calculate())
	classes, err := liu.ClassifyEdges(g, s.Matching())
	require.NoError(t, err)
	return classes
}

func TestClassifyDirectedPathAllCritical(t *testing.T) {
	classes := classify(t, 4, [][2]int{{0, 1}, {1, 2}, {2, 3}})
	assert.Equal(t, []liu.EdgeClass{liu.EdgeCritical, liu.EdgeCritical, liu.EdgeCritical}, classes)
}

func TestClassifyPureCycleAllCritical(t *testing.T) {
	// A self-contained directed cycle is entirely matched; removing any
	// single edge always lowers the maximum matching size by one (the
	// freed endpoint becomes unmatched), so every edge is critical.
	classes := classify(t, 3, [][2]int{{0, 1}, {1, 2}, {2, 0}})
	assert.Equal(t, []liu.EdgeClass{liu.EdgeCritical, liu.EdgeCritical, liu.EdgeCritical}, classes)
}

func TestClassifyCompleteBipartiteAllOrdinary(t *testing.T) {
	// K(2,2)-> from {0,1} to {2,3}: two distinct maximum matchings exist
	// (0-2/1-3 and 0-3/1-2) and every edge belongs to exactly one of them,
	// the textbook definition of an edge lying on an alternating cycle.
	// No edge is in every maximum matching, so none is critical.
	classes := classify(t, 4, [][2]int{{0, 2}, {0, 3}, {1, 2}, {1, 3}})
	assert.Equal(t, []liu.EdgeClass{liu.EdgeOrdinary, liu.EdgeOrdinary, liu.EdgeOrdinary, liu.EdgeOrdinary}, classes)
}

func TestClassifyStarOutHubAllOrdinary(t *testing.T) {
	// 0 -> {1,2,3}: any one of the three edges can serve as the matched
	// edge interchangeably (removing any single one still leaves a
	// matching of the same size via one of the other two), so none is
	// critical; each is in some but not all maximum matchings, so all are
	// ordinary.
	classes := classify(t, 4, [][2]int{{0, 1}, {0, 2}, {0, 3}})
	assert.Equal(t, []liu.EdgeClass{liu.EdgeOrdinary, liu.EdgeOrdinary, liu.EdgeOrdinary}, classes)
}

func TestClassifyChainWithShortcutChainCriticalShortcutRedundant(t *testing.T) {
	// 0->1->2 plus a shortcut 0->2: the shortcut can never be in any
	// maximum matching alongside both chain edges (it competes with 1->2
	// for vertex 2), so it is redundant; the two chain edges are each
	// forced, since neither lies on an alternating cycle.
	classes := classify(t, 3, [][2]int{{0, 1}, {1, 2}, {0, 2}})
	assert.Equal(t, []liu.EdgeClass{liu.EdgeCritical, liu.EdgeCritical, liu.EdgeRedundant}, classes)
}
