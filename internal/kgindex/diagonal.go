package kgindex

import "github.com/kgcore/kgcore/internal/hypergraph"

// BuildDiagonal builds the Diagonal compressed index on top of a freshly
// built Jump index. For each row g, walking left to right (increasing k)
// is required: a node's existing aux entries are exactly what the
// previous horizontal step wrote onto it (via its vertical target's
// Horizontal link), and separately every row g's pass may deposit aux
// entries onto row g+1's nodes that row g+1's own pass then consumes —
// so rows must be processed in ascending g order, g=1 first.
func BuildDiagonal(h *hypergraph.Hypergraph) *Index {
	idx := BuildJump(h)
	arena := idx.arena

	for g := 1; g <= arena.GMax(); g++ {
		diagonalPassForRow(g, arena)
	}

	return &Index{arena: arena, kind: Diagonal}
}

// diagonalPassForRow implements one row's build pass exactly as specified:
// walk node by node along the horizontal chain of row g, pulling the
// diagonal overlap with row g+1 into aux[1] (and propagating any deeper
// aux depths the row-g+1 side already carries), subtracting what was
// exported from the row-g payload, then — once the vertical chain runs
// out — draining the remainder of the horizontal chain's inherited aux
// into the current payload/aux the same way.
func diagonalPassForRow(g int, arena *Arena) {
	head := arena.NodeAt(1, g)

	for head != nil && head.Vertical != nil {
		diag := head.Vertical // row g+1, same k as head
		nextHead := head.Horizontal
		if nextHead == nil {
			break
		}

		d := Intersect(nextHead.Payload, diag.Payload)

		if diag.Horizontal == nil {
			tail := newNode(g+1, -1, NewVertexSet(0))
			diag.Horizontal = tail
			// Preserve the walk path: (k+1,g) now continues diagonally
			// through the placeholder instead of dead-ending.
			nextHead.Vertical = tail
		}
		diag.Horizontal.SetAux(1, d)

		for i, auxSet := range diag.Aux {
			overlap := Intersect(auxSet, nextHead.AuxAt(i))
			diag.Horizontal.SetAux(i+1, overlap)
			if nextHead.AuxAt(i) != nil {
				nextHead.Aux[i] = Difference(nextHead.AuxAt(i), overlap)
			}
		}

		nextHead.Payload = Difference(nextHead.Payload, d)
		subtractSuccessorAux(nextHead)

		head = nextHead
	}

	// Vertical chain exhausted (or never existed for this row): drain the
	// remainder of the horizontal chain, consuming whatever aux the row
	// below deposited on these nodes.
	for head != nil && head.Horizontal != nil {
		subtractSuccessorAux(head)
		head = head.Horizontal
	}
}

// subtractSuccessorAux subtracts node.Horizontal's aux[1] from node's
// payload, and node.Horizontal's aux[i-1] from node's own aux[i] for every
// i node already carries, to avoid double-counting residuals that the
// horizontal successor already accounts for.
func subtractSuccessorAux(node *Node) {
	nxt := node.Horizontal
	if nxt == nil {
		return
	}
	if a1 := nxt.AuxAt(1); a1 != nil {
		node.Payload = Difference(node.Payload, a1)
	}
	for i, set := range node.Aux {
		if prev := nxt.AuxAt(i - 1); prev != nil {
			node.Aux[i] = Difference(set, prev)
		}
	}
}

// queryDiagonal collects starter nodes by walking the vertical chain from
// node (as in Jump), then for each starter at vertical depth s, adds its
// payload plus aux[1..s], then walks the starter's horizontal chain adding
// each successor's payload plus aux[1..cnt] where cnt is the 1-based
// horizontal step count.
func queryDiagonal(node *Node) *VertexSet {
	result := NewVertexSet(0)

	s := 0
	for starter := node; starter != nil; starter, s = starter.Vertical, s+1 {
		result.UnionInto(starter.Payload)
		if s > 0 {
			for i := 1; i <= s; i++ {
				if a := starter.AuxAt(i); a != nil {
					result.UnionInto(a)
				}
			}
		}

		cnt := 1
		for n := starter.Horizontal; n != nil; n = n.Horizontal {
			result.UnionInto(n.Payload)
			for i := 1; i <= cnt; i++ {
				if a := n.AuxAt(i); a != nil {
					result.UnionInto(a)
				}
			}
			cnt++
		}
	}

	return result
}
