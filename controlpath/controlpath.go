// Package controlpath implements the control-path model shared by both
// controllability solvers: a typed sum of stem, bud, open walk, and closed
// walk, following spec.md §3-4.B and netctrl's ControlPath hierarchy
// (include/netctrl/model/controllability.h, model/switchboard.h).
//
// A Path is represented as a single struct carrying a Kind tag rather than
// as a class hierarchy: the capability surface (edge enumeration, textual
// form, whether the path needs an independent input signal) is small and
// closed, so dispatch-by-tag is simpler than an interface per kind.
//
// Ownership: a Path is owned by whichever solver created it; callers
// receive borrowed views (Nodes) and must copy before the owning solver's
// next Calculate call, which replaces and invalidates all previous paths.
package controlpath

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrEdgeMissing is returned by Edges when two consecutive nodes on a path
// are not joined by an edge in the supplied graph. This indicates a solver
// bug: a path's nodes should always be connected by the graph that produced
// the path.
var ErrEdgeMissing = errors.New("controlpath: consecutive path nodes have no edge between them")

// ErrCannotExtend is returned by Extend when the closed walk shares no
// vertex with the receiver, so it cannot be spliced in.
var ErrCannotExtend = errors.New("controlpath: no shared vertex to splice the closed walk into")

// Kind identifies which of the four control-path variants a Path is.
type Kind int

const (
	// KindStem is a directed path of matched edges starting at a driver.
	KindStem Kind = iota
	// KindBud is a directed cycle of matched edges.
	KindBud
	// KindOpenWalk is an SBD trail whose endpoints differ.
	KindOpenWalk
	// KindClosedWalk is an SBD trail that returns to its start.
	KindClosedWalk
)

// String renders the Kind using the spec's path_type vocabulary.
func (k Kind) String() string {
	switch k {
	case KindStem:
		return "stem"
	case KindBud:
		return "bud"
	case KindOpenWalk:
		return "open walk"
	case KindClosedWalk:
		return "closed walk"
	default:
		return "unknown"
	}
}

// edgeLookup is the minimal capability Edges needs from a graph: mapping a
// consecutive pair of nodes to an edge index. graphiface.Graph satisfies
// this; it is spelled out locally to avoid an import cycle with graphiface
// (graphiface has no reason to depend on controlpath).
type edgeLookup interface {
	EID(u, v int) int
}

// Path is a control path: a stem, a bud, an open walk, or a closed walk.
type Path struct {
	kind  Kind
	nodes []int
	// stem is a non-owning reference to the Stem this Bud was attached to
	// during reconstruction, or nil. Only meaningful when kind == KindBud.
	// The stem never points back to its buds.
	stem *Path
}

// NewStem returns a new stem over the given node sequence. nodes must be
// non-empty; it is not copied, so callers must not retain it afterwards.
func NewStem(nodes []int) *Path {
	return &Path{kind: KindStem, nodes: nodes}
}

// NewBud returns a new, unattached bud over the given cyclic node sequence.
func NewBud(nodes []int) *Path {
	return &Path{kind: KindBud, nodes: nodes}
}

// NewOpenWalk returns a new open walk over the given node sequence.
func NewOpenWalk(nodes []int) *Path {
	return &Path{kind: KindOpenWalk, nodes: nodes}
}

// NewClosedWalk returns a new closed walk over the given cyclic node
// sequence.
func NewClosedWalk(nodes []int) *Path {
	return &Path{kind: KindClosedWalk, nodes: nodes}
}

// Kind reports which variant this Path is.
func (p *Path) Kind() Kind {
	return p.kind
}

// Nodes returns the path's vertex sequence. For a stem or open walk this is
// a simple chain; for a bud or closed walk the last node's successor wraps
// back to the first. The returned slice is a borrowed view.
func (p *Path) Nodes() []int {
	return p.nodes
}

// Root returns the first node of the path — the driver-node entry point
// for a stem, or the arbitrary start of a bud/walk.
func (p *Path) Root() int {
	return p.nodes[0]
}

// Tip returns the last node of the path.
func (p *Path) Tip() int {
	return p.nodes[len(p.nodes)-1]
}

// AttachedStem returns the stem this bud was attached to during
// reconstruction, or nil if it is unattached or p is not a bud.
func (p *Path) AttachedStem() *Path {
	if p.kind != KindBud {
		return nil
	}
	return p.stem
}

// AttachStem records that p (a bud) is routed through s (a stem): s does
// not point back to p. Calling this on a non-bud is a no-op.
func (p *Path) AttachStem(s *Path) {
	if p.kind != KindBud {
		return
	}
	p.stem = s
}

// NeedsInputSignal reports whether the path requires its own independent
// input signal. Stems and open walks always do. A closed walk never does
// (it has no endpoints to drive). A bud needs one only when it has not
// been attached to a stem.
func (p *Path) NeedsInputSignal() bool {
	switch p.kind {
	case KindStem, KindOpenWalk:
		return true
	case KindClosedWalk:
		return false
	case KindBud:
		return p.stem == nil
	default:
		return false
	}
}

// Edges returns the indices of the edges that make up the path, in walk
// order, by looking up each consecutive pair of nodes (and, for a bud or
// closed walk, the wraparound edge) in g. Returns ErrEdgeMissing if any
// consecutive pair has no edge.
func (p *Path) Edges(g edgeLookup) ([]int, error) {
	switch p.kind {
	case KindStem, KindOpenWalk:
		return p.chainEdges(g)
	case KindBud, KindClosedWalk:
		return p.cyclicEdges(g)
	default:
		return nil, nil
	}
}

func (p *Path) chainEdges(g edgeLookup) ([]int, error) {
	if len(p.nodes) < 2 {
		return nil, nil
	}
	result := make([]int, 0, len(p.nodes)-1)
	for i := 0; i+1 < len(p.nodes); i++ {
		u, v := p.nodes[i], p.nodes[i+1]
		eid := g.EID(u, v)
		if eid < 0 {
			return nil, fmt.Errorf("controlpath: edge %d->%d: %w", u, v, ErrEdgeMissing)
		}
		result = append(result, eid)
	}
	return result, nil
}

func (p *Path) cyclicEdges(g edgeLookup) ([]int, error) {
	if len(p.nodes) == 0 {
		return nil, nil
	}
	if len(p.nodes) == 1 {
		v := p.nodes[0]
		eid := g.EID(v, v)
		if eid < 0 {
			return nil, nil
		}
		return []int{eid}, nil
	}
	result := make([]int, 0, len(p.nodes))
	for i := 0; i+1 < len(p.nodes); i++ {
		u, v := p.nodes[i], p.nodes[i+1]
		eid := g.EID(u, v)
		if eid < 0 {
			return nil, fmt.Errorf("controlpath: edge %d->%d: %w", u, v, ErrEdgeMissing)
		}
		result = append(result, eid)
	}
	last, first := p.nodes[len(p.nodes)-1], p.nodes[0]
	eid := g.EID(last, first)
	if eid < 0 {
		return nil, fmt.Errorf("controlpath: wraparound edge %d->%d: %w", last, first, ErrEdgeMissing)
	}
	result = append(result, eid)
	return result, nil
}

// Extend splices a closed walk into p at their first shared vertex,
// following netctrl's SwitchboardControlPath::extendWith. Both the closed
// walk's cyclic node sequence and p's sequence are rotated/copied so that
// walking p after the splice first detours around the closed walk and then
// resumes the original path; p's Kind is unchanged. closed must be a
// KindClosedWalk. Returns ErrCannotExtend if no vertex is shared.
func (p *Path) Extend(closed *Path) error {
	sharedPos, closedPos := -1, -1
outer:
	for i, v := range p.nodes {
		for j, w := range closed.nodes {
			if v == w {
				sharedPos, closedPos = i, j
				break outer
			}
		}
	}
	if sharedPos == -1 {
		return ErrCannotExtend
	}

	rotated := make([]int, len(closed.nodes))
	for i := range rotated {
		rotated[i] = closed.nodes[(closedPos+i)%len(closed.nodes)]
	}

	merged := make([]int, 0, len(p.nodes)+len(rotated))
	merged = append(merged, p.nodes[:sharedPos]...)
	merged = append(merged, rotated...)
	merged = append(merged, p.nodes[sharedPos:]...)
	p.nodes = merged
	return nil
}

// String renders the path using netctrl's toString() convention, e.g.
// "Stem: 0 1 2 3" or "Bud: 4 5 (assigned to Stem: 0 1 2)".
func (p *Path) String() string {
	return p.render(nil)
}

// StringWithNames renders the path like String, but substitutes a name for
// each vertex index when names[index] is non-empty.
func (p *Path) StringWithNames(names []string) string {
	return p.render(names)
}

func (p *Path) render(names []string) string {
	var b strings.Builder
	b.WriteString(kindLabel(p.kind))
	b.WriteString(":")
	for _, v := range p.nodes {
		b.WriteString(" ")
		b.WriteString(vertexLabel(v, names))
	}
	if p.kind == KindBud && p.stem != nil {
		b.WriteString(" (assigned to ")
		b.WriteString(p.stem.render(names))
		b.WriteString(")")
	}
	return b.String()
}

func kindLabel(k Kind) string {
	switch k {
	case KindStem:
		return "Stem"
	case KindBud:
		return "Bud"
	case KindOpenWalk:
		return "Open walk"
	case KindClosedWalk:
		return "Closed walk"
	default:
		return "Path"
	}
}

func vertexLabel(v int, names []string) string {
	if names != nil && v >= 0 && v < len(names) && names[v] != "" {
		return names[v]
	}
	return strconv.Itoa(v)
}
