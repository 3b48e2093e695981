package memgraph

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/corvidae/netctrl/graphiface"
)

// ErrTooFewVertices is returned when a requested graph's parameters cannot
// be satisfied: too few vertices for the requested edge count, or out- and
// in-degree sequences whose lengths or sums differ.
var ErrTooFewVertices = errors.New("memgraph: too few vertices for the requested parameters")

// ErrConstructFailed is returned when a bounded number of randomized
// construction attempts all failed to satisfy the graph's constraints.
var ErrConstructFailed = errors.New("memgraph: construction failed after bounded retries")

const maxStubMatchingAttempts = 100

// Generator produces the random-graph ensembles nullmodel.Run consumes,
// adapted from the teacher's stub-matching and uniform-sampling
// constructors (builder.RandomSparse, builder.RandomRegular) to directed
// graphs addressed by dense int index rather than string vertex IDs.
type Generator struct {
	Rand *rand.Rand
}

// ErdosRenyiGNM implements graphiface.RandomGraphGenerator: it samples m
// distinct ordered pairs uniformly without replacement out of the n*(n-1)
// admissible self-loop-free pairs (Erdős–Rényi's G(n,m) model).
func (gen Generator) ErdosRenyiGNM(n, m int, directed bool) (graphiface.Graph, error) {
	if n < 1 {
		return nil, fmt.Errorf("memgraph: ErdosRenyiGNM: n=%d: %w", n, ErrTooFewVertices)
	}
	maxEdges := n * (n - 1)
	if !directed {
		maxEdges /= 2
	}
	if m < 0 || m > maxEdges {
		return nil, fmt.Errorf("memgraph: ErdosRenyiGNM: m=%d exceeds the %d admissible pairs for n=%d: %w",
			m, maxEdges, n, ErrTooFewVertices)
	}

	g := NewGraph(n, directed)
	chosen := make(map[[2]int]bool, m)
	for len(chosen) < m {
		i := gen.Rand.Intn(n)
		j := gen.Rand.Intn(n)
		if i == j {
			continue
		}
		if !directed && i > j {
			i, j = j, i
		}
		key := [2]int{i, j}
		if chosen[key] {
			continue
		}
		chosen[key] = true
	}

	edges := make([]graphiface.Edge, 0, m)
	for pair := range chosen {
		edges = append(edges, graphiface.Edge{Source: pair[0], Target: pair[1]})
	}
	if err := g.AddEdges(edges); err != nil {
		return nil, fmt.Errorf("memgraph: ErdosRenyiGNM: %w", err)
	}
	return g, nil
}

// DegreeSequenceGame implements graphiface.RandomGraphGenerator via directed
// stub-matching (the configuration model): out-stubs are listed in vertex
// order, in-stubs are shuffled, and the two lists are paired positionally.
// Pairings producing a self-loop or a duplicate edge are rejected and the
// in-stub shuffle retried, bounded by maxStubMatchingAttempts — following
// the teacher's RandomRegular bounded-retry stub matching, generalized from
// a single undirected degree d to independent per-vertex out/in sequences.
func (gen Generator) DegreeSequenceGame(outDeg, inDeg []int) (graphiface.Graph, error) {
	n := len(outDeg)
	if len(inDeg) != n {
		return nil, fmt.Errorf("memgraph: DegreeSequenceGame: len(outDeg)=%d != len(inDeg)=%d: %w",
			n, len(inDeg), ErrTooFewVertices)
	}

	var total int
	outStubs := make([]int, 0)
	for v, d := range outDeg {
		total += d
		for k := 0; k < d; k++ {
			outStubs = append(outStubs, v)
		}
	}
	inTotal := 0
	for _, d := range inDeg {
		inTotal += d
	}
	if total != inTotal {
		return nil, fmt.Errorf("memgraph: DegreeSequenceGame: sum(outDeg)=%d != sum(inDeg)=%d: %w",
			total, inTotal, ErrTooFewVertices)
	}

	inStubs := make([]int, 0, total)
	for v, d := range inDeg {
		for k := 0; k < d; k++ {
			inStubs = append(inStubs, v)
		}
	}

	for attempt := 1; attempt <= maxStubMatchingAttempts; attempt++ {
		gen.Rand.Shuffle(len(inStubs), func(i, j int) {
			inStubs[i], inStubs[j] = inStubs[j], inStubs[i]
		})

		seen := make(map[[2]int]bool, total)
		valid := true
		for i := 0; i < total; i++ {
			u, v := outStubs[i], inStubs[i]
			if u == v {
				valid = false
				break
			}
			key := [2]int{u, v}
			if seen[key] {
				valid = false
				break
			}
			seen[key] = true
		}
		if !valid {
			continue
		}

		g := NewGraph(n, true)
		edges := make([]graphiface.Edge, total)
		for i := 0; i < total; i++ {
			edges[i] = graphiface.Edge{Source: outStubs[i], Target: inStubs[i]}
		}
		if err := g.AddEdges(edges); err != nil {
			return nil, fmt.Errorf("memgraph: DegreeSequenceGame: %w", err)
		}
		return g, nil
	}

	return nil, fmt.Errorf("memgraph: DegreeSequenceGame: %w", ErrConstructFailed)
}
