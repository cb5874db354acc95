package kgcore

import (
	"github.com/kgcore/kgcore/internal/hypergraph"
	"github.com/kgcore/kgcore/internal/vertexset"
)

// FindKGCore computes the (k,g)-core of h by fixed-point removal: starting
// from all vertices, repeatedly drop any vertex whose neighbor count
// (restricted to the current active set) falls below k, until a full pass
// removes nothing. This is the reference implementation every index
// representation's query path is checked against (property 1).
//
// Edge cases: k > |V| converges to the empty set; g larger than the max
// edge multiplicity empties on the first pass; an isolated vertex fails
// immediately.
func FindKGCore(h *hypergraph.Hypergraph, k, g int) *vertexset.VertexSet {
	active := vertexset.VertexSetOf(h.Vertices()...)
	if k <= 0 {
		return active
	}

	nc := NewNeighborCounter(h)

	for {
		var toRemove []hypergraph.Vertex

		active.Each(func(v hypergraph.Vertex) {
			counts, err := nc.NeighborCounts(v, g, active)
			if err != nil {
				return
			}
			n := len(counts)
			nc.Release(counts)
			if n < k {
				toRemove = append(toRemove, v)
			}
		})

		if len(toRemove) == 0 {
			break
		}
		for _, v := range toRemove {
			active.Remove(v)
		}
	}

	return active
}
