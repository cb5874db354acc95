// Package vertexset provides the dense, bitmap-backed vertex set shared by
// the peeling engine (active/frontier sets) and every index representation
// (node payloads and aux residuals).
package vertexset

import (
	"github.com/kgcore/kgcore/internal/hypergraph"
	"github.com/kgcore/kgcore/pkg/collections"
)

// VertexSet is a dense, order-independent set of vertices backed by a
// bitmap. Union/intersect/difference are word-at-a-time rather than
// per-element hash operations, which is the representation Diagonal's
// aux-map algebra leans on heavily. Grounded on pkg/collections.Bitset,
// which is already the codebase's bitmap-set primitive.
type VertexSet struct {
	bits *collections.Bitset
}

// NewVertexSet returns an empty set sized to hold ids up to capacity-1
// without an immediate grow.
func NewVertexSet(capacity int) *VertexSet {
	return &VertexSet{bits: collections.NewBitset(capacity)}
}

// VertexSetOf builds a VertexSet from a slice of vertices.
func VertexSetOf(vs ...hypergraph.Vertex) *VertexSet {
	max := 0
	for _, v := range vs {
		if int(v) >= max {
			max = int(v) + 1
		}
	}
	s := NewVertexSet(max)
	for _, v := range vs {
		s.Add(v)
	}
	return s
}

// Add inserts v into the set.
func (s *VertexSet) Add(v hypergraph.Vertex) {
	s.bits.Set(int(v))
}

// Remove deletes v from the set.
func (s *VertexSet) Remove(v hypergraph.Vertex) {
	s.bits.Clear(int(v))
}

// Contains reports whether v is a member.
func (s *VertexSet) Contains(v hypergraph.Vertex) bool {
	return s.bits.Test(int(v))
}

// Len returns the number of members.
func (s *VertexSet) Len() int {
	return s.bits.Count()
}

// Clone returns an independent copy.
func (s *VertexSet) Clone() *VertexSet {
	return &VertexSet{bits: s.bits.Clone()}
}

// Slice returns the members as a sorted slice of vertices.
func (s *VertexSet) Slice() []hypergraph.Vertex {
	idxs := s.bits.ToSlice()
	out := make([]hypergraph.Vertex, len(idxs))
	for i, idx := range idxs {
		out[i] = hypergraph.Vertex(idx)
	}
	return out
}

// Each calls fn for every member, in ascending vertex order.
func (s *VertexSet) Each(fn func(v hypergraph.Vertex)) {
	s.bits.Iterate(func(i int) bool {
		fn(hypergraph.Vertex(i))
		return true
	})
}

// Union returns a new set containing the members of any of sets (nil
// entries are skipped). No input is mutated.
func Union(sets ...*VertexSet) *VertexSet {
	out := NewVertexSet(0)
	for _, s := range sets {
		if s == nil {
			continue
		}
		out.bits.Or(s.bits)
	}
	return out
}

// UnionInto unions other into s in place, returning s.
func (s *VertexSet) UnionInto(other *VertexSet) *VertexSet {
	if other != nil {
		s.bits.Or(other.bits)
	}
	return s
}

// Intersect returns a new set containing members present in both a and b.
func Intersect(a, b *VertexSet) *VertexSet {
	out := a.Clone()
	if b == nil {
		return NewVertexSet(0)
	}
	out.bits.And(b.bits)
	return out
}

// Difference returns a new set containing members of a not present in b
// (a \ b).
func Difference(a, b *VertexSet) *VertexSet {
	out := a.Clone()
	if b != nil {
		out.bits.AndNot(b.bits)
	}
	return out
}

// DifferenceInto subtracts other from s in place, returning s.
func (s *VertexSet) DifferenceInto(other *VertexSet) *VertexSet {
	if other != nil {
		s.bits.AndNot(other.bits)
	}
	return s
}

// Equal reports whether a and b contain exactly the same members.
// Order-independent by construction (bitmap comparison).
func Equal(a, b *VertexSet) bool {
	if a == nil {
		a = NewVertexSet(0)
	}
	if b == nil {
		b = NewVertexSet(0)
	}
	as, bs := a.Slice(), b.Slice()
	if len(as) != len(bs) {
		return false
	}
	for i := range as {
		if as[i] != bs[i] {
			return false
		}
	}
	return true
}

// IsSubset reports whether every member of a is also a member of b.
func IsSubset(a, b *VertexSet) bool {
	if a == nil || a.Len() == 0 {
		return true
	}
	ok := true
	a.Each(func(v hypergraph.Vertex) {
		if !b.Contains(v) {
			ok = false
		}
	})
	return ok
}
