package kgindex

import "github.com/kgcore/kgcore/internal/vertexset"

// VertexSet is the vertex-set type used for node payloads and aux
// residuals throughout this package.
type VertexSet = vertexset.VertexSet

// NewVertexSet returns an empty set sized to hold ids up to capacity-1.
var NewVertexSet = vertexset.NewVertexSet

// Union, Intersect, Difference and Equal re-export the vertexset set
// algebra primitives so build/query code in this package can use them
// without an extra import qualifier.
var (
	Union      = vertexset.Union
	Intersect  = vertexset.Intersect
	Difference = vertexset.Difference
	Equal      = vertexset.Equal
)

// Node is the universal node type shared by all four representations.
// Payload's meaning depends on the representation (full core for Naive,
// horizontal residual for One-Level, vertical residual for Jump, further
// diagonal-reduced residual for Diagonal). Horizontal/Vertical are
// non-owning back-references into the same arena; Aux is populated only
// by Diagonal.
type Node struct {
	Payload    *VertexSet
	Horizontal *Node
	Vertical   *Node
	Aux        map[int]*VertexSet

	g, k int // 1-based (g,k) this node was built for; tail nodes carry k=-1
}

// G returns the node's g coordinate (1-based).
func (n *Node) G() int { return n.g }

// K returns the node's k coordinate (1-based), or -1 for a tail placeholder
// node allocated during Diagonal construction that has no (k,g) counterpart
// in the original grid.
func (n *Node) K() int { return n.k }

func newNode(g, k int, payload *VertexSet) *Node {
	return &Node{Payload: payload, g: g, k: k}
}

// AuxAt returns the aux[i] set for the node, or nil if absent.
func (n *Node) AuxAt(i int) *VertexSet {
	if n.Aux == nil {
		return nil
	}
	return n.Aux[i]
}

// SetAux stores aux[i] = set, allocating the map lazily.
func (n *Node) SetAux(i int, set *VertexSet) {
	if n.Aux == nil {
		n.Aux = make(map[int]*VertexSet)
	}
	n.Aux[i] = set
}

// Arena is the two-level outer structure owning the grid nodes: Rows[gi]
// holds the nodes for g = gi+1, indexed by their k position. Placeholder
// tail nodes created by Diagonal construction are not stored in Rows; they
// are reachable only through the Horizontal/Vertical links that attach them.
type Arena struct {
	Rows [][]*Node
}

// RowForG returns the node slice for g (1-based), or nil if g is out of
// range.
func (a *Arena) RowForG(g int) []*Node {
	if g < 1 || g > len(a.Rows) {
		return nil
	}
	return a.Rows[g-1]
}

// NodeAt returns the node at (k,g) (1-based), or nil if out of range.
func (a *Arena) NodeAt(k, g int) *Node {
	row := a.RowForG(g)
	if row == nil || k < 1 || k > len(row) {
		return nil
	}
	return row[k-1]
}

// GMax returns the number of rows (max g with a non-empty chain).
func (a *Arena) GMax() int {
	return len(a.Rows)
}

// KMax returns the number of original (non-tail) nodes in row g, or 0 if g
// is out of range.
func (a *Arena) KMax(g int) int {
	row := a.RowForG(g)
	count := 0
	for _, n := range row {
		if n.k > 0 {
			count++
		}
	}
	return count
}
