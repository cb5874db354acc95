package kgindex

// Representation identifies which of the four compressed layouts an Index
// holds. The outer (g,k) shape is identical across all four; only what a
// node's Payload/Aux mean, and how Query reconstructs a core from them,
// differs.
type Representation int

const (
	Naive Representation = iota
	OneLevel
	Jump
	Diagonal
)

// String returns a human-readable representation name, used by the
// benchmark CSV header and the advisor's recommendations.
func (r Representation) String() string {
	switch r {
	case Naive:
		return "naive"
	case OneLevel:
		return "one_level"
	case Jump:
		return "jump"
	case Diagonal:
		return "diagonal"
	default:
		return "unknown"
	}
}

// Index is the frozen, queryable result of a build. All nodes are created
// during the build and never mutated afterward — freezing is a contract
// enforced by construction (nothing outside this package can obtain a
// mutable *Arena from an *Index), not a runtime check.
type Index struct {
	arena *Arena
	kind  Representation
}

// Kind returns which representation this index holds.
func (idx *Index) Kind() Representation { return idx.kind }

// GMax returns the number of g-rows present.
func (idx *Index) GMax() int { return idx.arena.GMax() }

// KMax returns the number of k-entries in row g (1-based), or 0 if out of
// range.
func (idx *Index) KMax(g int) int { return idx.arena.KMax(g) }

// NodeCount returns the total number of nodes across every row. Diagonal's
// placeholder tail nodes are not in the rows and are not counted. Used by
// the benchmark harness to compare representations' memory footprint.
func (idx *Index) NodeCount() int {
	n := 0
	for _, row := range idx.arena.Rows {
		n += len(row)
	}
	return n
}

// AuxEntryCount returns the total number of aux map entries across every
// node in the rows (always 0 for Naive/One-Level/Jump, which never populate
// Aux). Aux entries held by Diagonal's placeholder tail nodes are not
// counted.
func (idx *Index) AuxEntryCount() int {
	n := 0
	for _, row := range idx.arena.Rows {
		for _, node := range row {
			n += len(node.Aux)
		}
	}
	return n
}

// Query reconstructs C(k,g) using the traversal appropriate to this
// index's representation. Out-of-range (k,g) silently returns an empty
// set — this is not an error condition (OutOfRangeQuery policy).
func (idx *Index) Query(k, g int) *VertexSet {
	if k <= 0 || g <= 0 || g > idx.arena.GMax() {
		return NewVertexSet(0)
	}
	node := idx.arena.NodeAt(k, g)
	if node == nil {
		return NewVertexSet(0)
	}

	switch idx.kind {
	case Naive:
		return queryNaive(node)
	case OneLevel:
		return queryOneLevel(node)
	case Jump:
		return queryJump(node)
	case Diagonal:
		return queryDiagonal(node)
	default:
		return NewVertexSet(0)
	}
}

