package kgcore

import (
	"github.com/kgcore/kgcore/internal/hypergraph"
	"github.com/kgcore/kgcore/internal/vertexset"
	"github.com/kgcore/kgcore/pkg/collections"
)

// bitActive adapts a raw collections.Bitset to the Active interface
// NeighborCounts expects, without going through vertexset.VertexSet's
// ownership semantics — the enumerator mutates its active/frontier bitmaps
// directly per the performance requirement in the memory-discipline notes.
type bitActive struct {
	bits *collections.Bitset
}

func (a bitActive) Contains(v hypergraph.Vertex) bool {
	return a.bits.Test(int(v))
}

// EnumerateFixedG produces, for a fixed g, the strictly decreasing chain
// S_g = [C(1,g), C(2,g), ...] up to the largest k for which the core is
// non-empty; the empty tail is not emitted. Implements the frontier-driven
// peeling algorithm: a bitmap active set A and a bitmap removal frontier T
// track which vertices must be re-scanned after each pass, so that only
// vertices whose neighborhood may have shrunk are re-examined.
func EnumerateFixedG(h *hypergraph.Hypergraph, g int) []*vertexset.VertexSet {
	maxID := h.MaxVertexID()
	if maxID < 0 {
		return nil
	}
	size := maxID + 1

	active := collections.NewBitset(size)
	for _, v := range h.Vertices() {
		active.Set(int(v))
	}
	frontier := collections.NewBitset(size)

	nc := NewNeighborCounter(h)
	var result []*vertexset.VertexSet

	numVertices := h.NumVertices()
	for k := 1; k <= numVertices; k++ {
		if active.Count() <= k {
			break
		}

		for {
			var scan []int
			if frontier.Count() == 0 {
				scan = active.ToSlice()
			} else {
				scanSet := active.Clone()
				scanSet.And(frontier)
				scan = scanSet.ToSlice()
			}

			if len(scan) == 0 {
				break
			}

			var staged []hypergraph.Vertex
			nextFrontier := collections.NewBitset(size)

			for _, idx := range scan {
				frontier.Clear(idx)

				v := hypergraph.Vertex(idx)
				counts, err := nc.NeighborCounts(v, g, bitActive{active})
				if err != nil {
					continue
				}
				n := len(counts)
				nc.Release(counts)

				if n < k {
					staged = append(staged, v)
					edges, err := h.EdgesOf(v)
					if err != nil {
						continue
					}
					for _, e := range edges {
						for _, u := range e.Vertices {
							if active.Test(int(u)) {
								nextFrontier.Set(int(u))
							}
						}
					}
				}
			}

			if len(staged) == 0 {
				break
			}
			for _, v := range staged {
				active.Clear(int(v))
			}
			frontier.Or(nextFrontier)
		}

		// Full pass with no removals: active is C(k,g).
		if active.Count() == 0 {
			break
		}
		snapshot := vertexset.NewVertexSet(size)
		active.Iterate(func(i int) bool {
			snapshot.Add(hypergraph.Vertex(i))
			return true
		})
		result = append(result, snapshot)
		frontier.ClearAll()
	}

	return result
}
