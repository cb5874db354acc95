package kgindex

import (
	"github.com/kgcore/kgcore/internal/hypergraph"
	"github.com/kgcore/kgcore/internal/kgcore"
)

// BuildOneLevel builds the One-Level compressed index: for each g, only
// the horizontal residual D(k,g) = C(k,g) \ C(k+1,g) is stored at node
// (k,g), with the last nonempty core's node storing its full payload
// (its horizontal successor is nil). Each node links to its (k+1,g)
// successor via Horizontal.
//
// The residual computed here (chain[i] \ chain[i+1], i.e. C(k)\C(k+1)) is
// the single-pass equivalent of "temp \ A_new" from the enumerator's own
// convergence snapshots: chain[i] is exactly the snapshot taken when k=i+1
// converges, and chain[i+1] is exactly the next k's converged active set.
func BuildOneLevel(h *hypergraph.Hypergraph) *Index {
	arena := &Arena{}

	for g := 1; ; g++ {
		chain := kgcore.EnumerateFixedG(h, g)
		if len(chain) == 0 {
			break
		}

		row := make([]*Node, len(chain))
		for i, core := range chain {
			var residual *VertexSet
			if i+1 < len(chain) {
				residual = Difference(core, chain[i+1])
			} else {
				residual = core.Clone()
			}
			row[i] = newNode(g, i+1, residual)
		}
		for i := 0; i+1 < len(row); i++ {
			row[i].Horizontal = row[i+1]
		}
		arena.Rows = append(arena.Rows, row)
	}

	return &Index{arena: arena, kind: OneLevel}
}

// queryOneLevel walks the horizontal chain starting at node, unioning
// every residual payload along the way; the union equals C(k,g).
func queryOneLevel(node *Node) *VertexSet {
	result := NewVertexSet(0)
	for n := node; n != nil; n = n.Horizontal {
		result.UnionInto(n.Payload)
	}
	return result
}
