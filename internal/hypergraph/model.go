// Package hypergraph holds the vertex/edge model that the core-query engine
// operates over: an immutable, once-loaded hypergraph plus the incidence
// index that makes neighbor lookups cheap.
package hypergraph

import (
	"fmt"
	"sort"

	kgerrors "github.com/kgcore/kgcore/pkg/errors"
)

// Vertex is a non-negative integer identifier. Identity only — no payload
// is ever attached to a vertex beyond its id.
type Vertex uint32

// Edge is an unordered set of vertices. Edges are value types: two edges
// with the same members but built independently are distinct entries in a
// Hypergraph's edge list, and duplicates are meaningful (they add to
// co-occurrence counts).
type Edge struct {
	Vertices []Vertex
}

// NewEdge builds an Edge from a vertex slice, collapsing duplicates within
// the slice (an edge is a set, not a multiset of its own members).
func NewEdge(vs []Vertex) Edge {
	if len(vs) == 0 {
		return Edge{}
	}
	seen := make(map[Vertex]struct{}, len(vs))
	out := make([]Vertex, 0, len(vs))
	for _, v := range vs {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return Edge{Vertices: out}
}

// Contains reports whether v is a member of the edge.
func (e Edge) Contains(v Vertex) bool {
	for _, u := range e.Vertices {
		if u == v {
			return true
		}
	}
	return false
}

// Hypergraph is two consistent projections of the same edge set: the
// ordered edge list, and vertex -> incident-edges. Built once via AddEdge
// calls at load time; immutable thereafter.
type Hypergraph struct {
	edges     []Edge
	incidence map[Vertex][]int // vertex -> indices into edges
}

// New returns an empty hypergraph ready to receive edges.
func New() *Hypergraph {
	return &Hypergraph{
		incidence: make(map[Vertex][]int),
	}
}

// AddEdge appends e to the edge list and extends every incident vertex's
// incidence list to reference it. No deduplication against existing edges:
// the same vertex set may be added any number of times.
func (h *Hypergraph) AddEdge(e Edge) {
	idx := len(h.edges)
	h.edges = append(h.edges, e)
	for _, v := range e.Vertices {
		h.incidence[v] = append(h.incidence[v], idx)
	}
}

// Vertices returns the set of keys of the incidence map, i.e. every vertex
// that appears in at least one edge.
func (h *Hypergraph) Vertices() []Vertex {
	out := make([]Vertex, 0, len(h.incidence))
	for v := range h.incidence {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// NumVertices returns the number of distinct vertices.
func (h *Hypergraph) NumVertices() int {
	return len(h.incidence)
}

// NumEdges returns the number of edges, counting duplicates.
func (h *Hypergraph) NumEdges() int {
	return len(h.edges)
}

// MaxVertexID returns the largest vertex id present, or -1 if the
// hypergraph has no vertices. Callers size bitmaps to MaxVertexID()+1.
func (h *Hypergraph) MaxVertexID() int {
	max := -1
	for v := range h.incidence {
		if int(v) > max {
			max = int(v)
		}
	}
	return max
}

// EdgesOf returns the list of hyperedges containing v. Fails with an
// InvariantViolation-tagged error (UnknownVertex) if v never appeared in
// any AddEdge call — this should be unreachable against a well-formed,
// already-loaded hypergraph; if it is reached, the caller signals a bug,
// not a user condition.
func (h *Hypergraph) EdgesOf(v Vertex) ([]Edge, error) {
	idxs, ok := h.incidence[v]
	if !ok {
		return nil, kgerrors.Wrap(kgerrors.CodeInvariantViolation,
			fmt.Sprintf("unknown vertex %d", v), nil)
	}
	out := make([]Edge, len(idxs))
	for i, idx := range idxs {
		out[i] = h.edges[idx]
	}
	return out, nil
}

// HasVertex reports whether v appears in the hypergraph.
func (h *Hypergraph) HasVertex(v Vertex) bool {
	_, ok := h.incidence[v]
	return ok
}

// Edges returns the full, ordered edge list. Callers must not mutate the
// returned slice's contents.
func (h *Hypergraph) Edges() []Edge {
	return h.edges
}
