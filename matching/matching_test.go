package matching_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/corvidae/netctrl/matching"
)

func TestNewAllUnmatched(t *testing.T) {
	m := matching.New(4)
	for v := 0; v < 4; v++ {
		assert.False(t, m.IsMatched(v))
		assert.False(t, m.IsMatching(v))
		assert.Equal(t, matching.Unmatched, m.MatchIn(v))
		assert.Empty(t, m.MatchOut(v))
	}
}

func TestSetMatchEstablishesBothDirections(t *testing.T) {
	m := matching.New(4)
	m.SetMatch(0, 1)

	assert.True(t, m.IsMatched(1))
	assert.True(t, m.IsMatching(0))
	assert.Equal(t, 0, m.MatchIn(1))
	assert.Equal(t, []int{1}, m.MatchOut(0))
}

func TestSetMatchIsOneToMany(t *testing.T) {
	m := matching.New(4)
	m.SetMatch(0, 1)
	m.SetMatch(0, 2)

	assert.ElementsMatch(t, []int{1, 2}, m.MatchOut(0))
	assert.Equal(t, 0, m.MatchIn(1))
	assert.Equal(t, 0, m.MatchIn(2))
}

func TestSetMatchDissolvesPriorMatchOnRightVertex(t *testing.T) {
	m := matching.New(4)
	m.SetMatch(0, 1)
	m.SetMatch(2, 1) // vertex 1 re-matched by vertex 2

	assert.Equal(t, 2, m.MatchIn(1))
	assert.Empty(t, m.MatchOut(0))
	assert.Equal(t, []int{1}, m.MatchOut(2))
}

func TestSetMatchNoOpWhenAlreadyMatched(t *testing.T) {
	m := matching.New(4)
	m.SetMatch(0, 1)
	m.SetMatch(0, 1)

	assert.Equal(t, []int{1}, m.MatchOut(0))
}

func TestUnmatch(t *testing.T) {
	m := matching.New(4)
	m.SetMatch(0, 1)
	m.Unmatch(1)

	assert.False(t, m.IsMatched(1))
	assert.False(t, m.IsMatching(0))
	assert.Equal(t, matching.Unmatched, m.MatchIn(1))
}

func TestUnmatchUnmatchedVertexIsNoOp(t *testing.T) {
	m := matching.New(4)
	assert.NotPanics(t, func() { m.Unmatch(2) })
}

func TestUnmatchPreservesOtherOutEntries(t *testing.T) {
	m := matching.New(4)
	m.SetMatch(0, 1)
	m.SetMatch(0, 2)
	m.Unmatch(1)

	assert.Equal(t, []int{2}, m.MatchOut(0))
	assert.True(t, m.IsMatching(0))
}

func TestInvariantOutContainsVIffInEqualsU(t *testing.T) {
	m := matching.New(5)
	m.SetMatch(0, 3)
	m.SetMatch(1, 4)

	for u := 0; u < 5; u++ {
		for _, v := range m.MatchOut(u) {
			assert.Equal(t, u, m.MatchIn(v))
		}
	}
	for v := 0; v < 5; v++ {
		if u := m.MatchIn(v); u != matching.Unmatched {
			assert.Contains(t, m.MatchOut(u), v)
		}
	}
}
