// Package kgcore implements the (k,g)-core peeling primitives: the
// neighbor-count service, the reference peeler, and the frontier-driven
// fixed-g enumerator that the index builders in kgindex run against.
package kgcore

import (
	"github.com/kgcore/kgcore/internal/hypergraph"
	"github.com/kgcore/kgcore/pkg/collections"
)

// countMapPool reuses the scratch map that NeighborCounts accumulates
// into, one per call, so peeling a large hypergraph doesn't allocate a
// fresh map per vertex per pass.
var countMapPool = collections.NewMapPool[hypergraph.Vertex, int](64)

// NeighborCounter answers g-neighbor queries against a fixed, read-only
// hypergraph.
type NeighborCounter struct {
	h *hypergraph.Hypergraph
}

// NewNeighborCounter binds a counter to h. h must not change for the
// counter's lifetime.
func NewNeighborCounter(h *hypergraph.Hypergraph) *NeighborCounter {
	return &NeighborCounter{h: h}
}

// Active restricts which co-members of an edge are counted as neighbors.
// A nil Active accepts every vertex.
type Active interface {
	Contains(v hypergraph.Vertex) bool
}

// NeighborCounts returns, for v, the set of u != v such that u co-occurs
// with v in at least g of v's incident hyperedges, where "co-occurs" only
// counts an edge's members that pass the active filter (active itself is
// never applied to v). The edge is always traversed in full; only the
// resulting candidate neighbors are filtered. Returns a map restricted to
// entries with count >= g; callers own the returned map and must not
// retain it past a call to Release.
func (nc *NeighborCounter) NeighborCounts(v hypergraph.Vertex, g int, active Active) (map[hypergraph.Vertex]int, error) {
	counts := countMapPool.Get()

	edges, err := nc.h.EdgesOf(v)
	if err != nil {
		return nil, err
	}

	for _, e := range edges {
		for _, u := range e.Vertices {
			if u == v {
				continue
			}
			if active != nil && !active.Contains(u) {
				continue
			}
			counts[u]++
		}
	}

	for u, c := range counts {
		if c < g {
			delete(counts, u)
		}
	}

	return counts, nil
}

// Release returns a map obtained from NeighborCounts to the internal pool.
// Optional: callers that don't call Release simply forgo the reuse; it is
// never required for correctness.
func (nc *NeighborCounter) Release(counts map[hypergraph.Vertex]int) {
	countMapPool.Put(counts)
}
