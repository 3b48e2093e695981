package memgraph

import "github.com/corvidae/netctrl/graphiface"

// WeakComponents implements graphiface.Graph via breadth-first search over
// the graph treated as undirected, following the teacher's bfs.BFS
// traversal shape (queue plus a visited set) adapted to dense int vertices.
func (g *Graph) WeakComponents() ([]int, int) {
	n := g.VCount()
	membership := make([]int, n)
	for i := range membership {
		membership[i] = -1
	}

	count := 0
	for start := 0; start < n; start++ {
		if membership[start] != -1 {
			continue
		}
		membership[start] = count
		queue := []int{start}
		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]
			for _, w := range g.Neighbors(v, graphiface.DirAll) {
				if membership[w] == -1 {
					membership[w] = count
					queue = append(queue, w)
				}
			}
		}
		count++
	}
	return membership, count
}

// StrongComponents implements graphiface.Graph via iterative Tarjan's
// algorithm, the same shape as liu.tarjanSCC but driven by Neighbors(DirOut)
// instead of a bipartiteArc slice.
func (g *Graph) StrongComponents() ([]int, int) {
	n := g.VCount()
	const unvisited = -1

	index := make([]int, n)
	lowlink := make([]int, n)
	onStack := make([]bool, n)
	comp := make([]int, n)
	for i := range index {
		index[i] = unvisited
		comp[i] = unvisited
	}

	var stack []int
	nextIndex := 0
	nextComp := 0

	type frame struct {
		node   int
		nbrs   []int
		nbrPos int
	}

	for start := 0; start < n; start++ {
		if index[start] != unvisited {
			continue
		}

		work := []frame{{node: start, nbrs: g.Neighbors(start, graphiface.DirOut)}}
		index[start] = nextIndex
		lowlink[start] = nextIndex
		nextIndex++
		stack = append(stack, start)
		onStack[start] = true

		for len(work) > 0 {
			top := &work[len(work)-1]
			v := top.node

			if top.nbrPos < len(top.nbrs) {
				w := top.nbrs[top.nbrPos]
				top.nbrPos++

				switch {
				case index[w] == unvisited:
					index[w] = nextIndex
					lowlink[w] = nextIndex
					nextIndex++
					stack = append(stack, w)
					onStack[w] = true
					work = append(work, frame{node: w, nbrs: g.Neighbors(w, graphiface.DirOut)})
				case onStack[w]:
					if index[w] < lowlink[v] {
						lowlink[v] = index[w]
					}
				}
				continue
			}

			work = work[:len(work)-1]
			if len(work) > 0 {
				parent := &work[len(work)-1]
				if lowlink[v] < lowlink[parent.node] {
					lowlink[parent.node] = lowlink[v]
				}
			}

			if lowlink[v] == index[v] {
				for {
					w := stack[len(stack)-1]
					stack = stack[:len(stack)-1]
					onStack[w] = false
					comp[w] = nextComp
					if w == v {
						break
					}
				}
				nextComp++
			}
		}
	}

	return comp, nextComp
}
