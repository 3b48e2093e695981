package controlpath_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corvidae/netctrl/controlpath"
)

// fakeGraph maps consecutive vertex pairs to edge indices for Edges tests.
type fakeGraph struct {
	eid map[[2]int]int
}

func newFakeGraph(edges [][2]int) *fakeGraph {
	m := make(map[[2]int]int, len(edges))
	for i, e := range edges {
		m[e] = i
	}
	return &fakeGraph{eid: m}
}

func (g *fakeGraph) EID(u, v int) int {
	if eid, ok := g.eid[[2]int{u, v}]; ok {
		return eid
	}
	return -1
}

func TestStemEdgesAndNeedsInputSignal(t *testing.T) {
	g := newFakeGraph([][2]int{{0, 1}, {1, 2}, {2, 3}})
	stem := controlpath.NewStem([]int{0, 1, 2, 3})

	assert.Equal(t, controlpath.KindStem, stem.Kind())
	assert.True(t, stem.NeedsInputSignal())
	assert.Equal(t, 0, stem.Root())
	assert.Equal(t, 3, stem.Tip())

	edges, err := stem.Edges(g)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, edges)
	assert.Equal(t, "Stem: 0 1 2 3", stem.String())
}

func TestBudEdgesWrapAround(t *testing.T) {
	g := newFakeGraph([][2]int{{0, 1}, {1, 2}, {2, 0}})
	bud := controlpath.NewBud([]int{0, 1, 2})

	assert.True(t, bud.NeedsInputSignal()) // unattached

	edges, err := bud.Edges(g)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, edges)
}

func TestBudSelfLoop(t *testing.T) {
	g := newFakeGraph([][2]int{{5, 5}})
	bud := controlpath.NewBud([]int{5})

	edges, err := bud.Edges(g)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, edges)
}

func TestBudAttachedToStemNeedsNoSignal(t *testing.T) {
	stem := controlpath.NewStem([]int{7, 8})
	bud := controlpath.NewBud([]int{1, 2, 3})

	assert.True(t, bud.NeedsInputSignal())
	bud.AttachStem(stem)
	assert.False(t, bud.NeedsInputSignal())
	assert.Same(t, stem, bud.AttachedStem())
	assert.Contains(t, bud.String(), "assigned to Stem: 7 8")
}

func TestOpenWalkAndClosedWalkEdges(t *testing.T) {
	g := newFakeGraph([][2]int{{0, 1}, {1, 2}, {2, 3}})
	ow := controlpath.NewOpenWalk([]int{0, 1, 2, 3})
	assert.True(t, ow.NeedsInputSignal())
	edges, err := ow.Edges(g)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, edges)

	g2 := newFakeGraph([][2]int{{0, 1}, {1, 0}})
	cw := controlpath.NewClosedWalk([]int{0, 1})
	assert.False(t, cw.NeedsInputSignal())
	edges2, err := cw.Edges(g2)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, edges2)
}

func TestEdgesMissingReturnsError(t *testing.T) {
	g := newFakeGraph(nil)
	stem := controlpath.NewStem([]int{0, 1})
	_, err := stem.Edges(g)
	assert.ErrorIs(t, err, controlpath.ErrEdgeMissing)
}

func TestExtendSplicesClosedWalkAtSharedVertex(t *testing.T) {
	open := controlpath.NewOpenWalk([]int{0, 1, 2, 3})
	closed := controlpath.NewClosedWalk([]int{2, 5, 6})

	require.NoError(t, open.Extend(closed))
	assert.Equal(t, []int{0, 1, 2, 5, 6, 2, 3}, open.Nodes())
}

func TestExtendNoSharedVertexErrors(t *testing.T) {
	open := controlpath.NewOpenWalk([]int{0, 1})
	closed := controlpath.NewClosedWalk([]int{9, 10})
	assert.ErrorIs(t, open.Extend(closed), controlpath.ErrCannotExtend)
}

func TestStringWithNames(t *testing.T) {
	stem := controlpath.NewStem([]int{0, 1})
	names := []string{"alpha", "beta"}
	assert.Equal(t, "Stem: alpha beta", stem.StringWithNames(names))
}
