package kgindex

import "github.com/kgcore/kgcore/internal/hypergraph"

// BuildJump builds the Jump compressed index on top of a freshly built
// One-Level index: every node (k,g) that has a counterpart (k,g+1) gets a
// Vertical link to it, and its payload is replaced by the vertical
// residual payload(k,g) \ payload(k,g+1). Post-processing reads row g+1
// and mutates row g only; rows are visited in ascending g, so row g+1 still
// holds its One-Level payload when row g is reduced against it.
func BuildJump(h *hypergraph.Hypergraph) *Index {
	idx := BuildOneLevel(h)
	arena := idx.arena

	for g := 1; g <= arena.GMax(); g++ {
		row := arena.RowForG(g)
		for _, node := range row {
			counterpart := arena.NodeAt(node.k, g+1)
			if counterpart == nil {
				continue
			}
			node.Vertical = counterpart
			node.Payload = Difference(node.Payload, counterpart.Payload)
		}
	}

	return &Index{arena: arena, kind: Jump}
}

// queryJump walks the vertical chain from node collecting starter nodes,
// then unions every payload reachable via each starter's horizontal chain.
func queryJump(node *Node) *VertexSet {
	result := NewVertexSet(0)
	for starter := node; starter != nil; starter = starter.Vertical {
		for n := starter; n != nil; n = n.Horizontal {
			result.UnionInto(n.Payload)
		}
	}
	return result
}
