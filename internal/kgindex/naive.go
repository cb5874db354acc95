package kgindex

import (
	"github.com/kgcore/kgcore/internal/hypergraph"
	"github.com/kgcore/kgcore/internal/kgcore"
)

// BuildNaive materializes all cores in a 2D (g,k) grid: for g = 1, 2, …
// it runs the fixed-g enumerator and stops at the first empty chain.
// levels[g-1][k-1].Payload is the full core C(k,g) — no compression.
func BuildNaive(h *hypergraph.Hypergraph) *Index {
	arena := &Arena{}

	for g := 1; ; g++ {
		chain := kgcore.EnumerateFixedG(h, g)
		if len(chain) == 0 {
			break
		}
		row := make([]*Node, len(chain))
		for i, core := range chain {
			row[i] = newNode(g, i+1, core)
		}
		arena.Rows = append(arena.Rows, row)
	}

	return &Index{arena: arena, kind: Naive}
}

// queryNaive returns the node's payload directly: Naive stores the full
// core at every node, so no traversal is needed.
func queryNaive(node *Node) *VertexSet {
	if node.Payload == nil {
		return NewVertexSet(0)
	}
	return node.Payload.Clone()
}
