// Package matching implements a directed matching: a pairing between
// vertices of a graph where each right-side vertex is matched by at most
// one left-side vertex, but a left-side vertex may match several right-side
// vertices (a one-to-many matching). Both left and right sides are drawn
// from the same vertex domain 0..n-1, following netctrl's DirectedMatching.
//
// The in-direction is dense: in(v) is a plain slice indexed by vertex, with
// -1 meaning unmatched. The out-direction is sparse: most left vertices
// match nothing, so out(u) is only materialized for vertices that do.
//
// Complexity:
//
//	IsMatched, IsMatching, MatchIn: O(1)
//	MatchOut: O(1) to obtain the slice; callers must not mutate it
//	SetMatch: O(k) where k = len(out(w)) for the vertex w that previously
//	matched v, to remove v from out(w); O(1) amortized if v was unmatched
//	Unmatch: O(k) where k = len(out(matchIn(v))), to remove v from out(u)
package matching

// Unmatched is the sentinel value returned for an unmatched vertex.
const Unmatched = -1

// Matching is a directed matching over a vertex domain of size n.
type Matching struct {
	n   int
	in  []int          // in[v] = u, or Unmatched
	out map[int][]int  // out[u] = right vertices matched by u, insertion order
}

// New returns an empty matching over n vertices; every vertex starts
// unmatched.
func New(n int) *Matching {
	in := make([]int, n)
	for i := range in {
		in[i] = Unmatched
	}
	return &Matching{
		n:   n,
		in:  in,
		out: make(map[int][]int),
	}
}

// Len returns the size of the vertex domain the matching was constructed
// over.
func (m *Matching) Len() int {
	return m.n
}

// IsMatched reports whether v is matched by some left vertex.
func (m *Matching) IsMatched(v int) bool {
	return m.in[v] != Unmatched
}

// IsMatching reports whether u matches at least one right vertex.
func (m *Matching) IsMatching(u int) bool {
	return len(m.out[u]) > 0
}

// MatchIn returns the vertex that matches v, or Unmatched if v is
// unmatched.
func (m *Matching) MatchIn(v int) int {
	return m.in[v]
}

// MatchOut returns the vertices matched by u, in the order they were
// added. The returned slice is a borrowed view: callers must not retain or
// mutate it across a subsequent SetMatch/Unmatch call.
func (m *Matching) MatchOut(u int) []int {
	return m.out[u]
}

// SetMatch establishes a match between u and v. If v was already matched
// by some other vertex, that pairing is dissolved first, preserving the
// invariant that each right vertex has at most one match. A no-op if the
// pair (u, v) is already matched.
func (m *Matching) SetMatch(u, v int) {
	if m.in[v] == u {
		return // already matched; nothing to do
	}
	if m.in[v] != Unmatched {
		m.removeFromOut(m.in[v], v)
	}
	m.in[v] = u
	m.out[u] = append(m.out[u], v)
}

// Unmatch dissolves the pairing covering v, if any.
func (m *Matching) Unmatch(v int) {
	u := m.in[v]
	if u == Unmatched {
		return
	}
	m.in[v] = Unmatched
	m.removeFromOut(u, v)
}

// removeFromOut deletes v from out[u], preserving the relative order of
// the remaining entries.
func (m *Matching) removeFromOut(u, v int) {
	entries := m.out[u]
	for i, w := range entries {
		if w == v {
			entries = append(entries[:i], entries[i+1:]...)
			break
		}
	}
	if len(entries) == 0 {
		delete(m.out, u)
	} else {
		m.out[u] = entries
	}
}
