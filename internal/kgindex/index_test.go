package kgindex

import (
	"testing"

	"github.com/kgcore/kgcore/internal/hypergraph"
	"github.com/kgcore/kgcore/internal/kgcore"
)

// sampleHypergraph builds a small hypergraph with enough overlap between
// edges to exercise several (k,g) pairs: two overlapping "fans" around
// vertex 2 and vertex 6, bridged by a shared edge.
func sampleHypergraph() *hypergraph.Hypergraph {
	h := hypergraph.New()
	h.AddEdge(hypergraph.NewEdge([]hypergraph.Vertex{0, 1, 2}))
	h.AddEdge(hypergraph.NewEdge([]hypergraph.Vertex{1, 2, 3}))
	h.AddEdge(hypergraph.NewEdge([]hypergraph.Vertex{2, 3, 4}))
	h.AddEdge(hypergraph.NewEdge([]hypergraph.Vertex{3, 4, 5}))
	h.AddEdge(hypergraph.NewEdge([]hypergraph.Vertex{4, 5, 6}))
	h.AddEdge(hypergraph.NewEdge([]hypergraph.Vertex{5, 6, 7}))
	h.AddEdge(hypergraph.NewEdge([]hypergraph.Vertex{6, 7, 8}))
	return h
}

// denseHypergraph builds a hypergraph whose g rows go to 4: a 5-vertex
// clique C where every pair co-occurs in 3 clique triples (so g=1,2,3 all
// hold the full clique), plus a ring of bridge vertices that only survive
// at g=1 and only up to k=2. Each bridge triple adds a 4th co-occurrence to
// one ring pair (10-11, 11-12, 12-13, 13-14, 14-10), so g=4 keeps the
// clique for k<=2 and g=5 empties it. This gives diagonal passes
// for both g=1->2 and g=2->3 a live vertical chain across every k column,
// which is what lets aux entries accumulate past depth 1 before row g=2's
// own pass consumes them — the shallow fan-shaped sampleHypergraph never
// reaches g=3, so that accumulation path went untested.
func denseHypergraph() *hypergraph.Hypergraph {
	h := hypergraph.New()

	clique := []hypergraph.Vertex{10, 11, 12, 13, 14}
	for i := 0; i < len(clique); i++ {
		for j := i + 1; j < len(clique); j++ {
			for k := j + 1; k < len(clique); k++ {
				h.AddEdge(hypergraph.NewEdge([]hypergraph.Vertex{clique[i], clique[j], clique[k]}))
			}
		}
	}

	bridges := [][3]hypergraph.Vertex{
		{10, 11, 20},
		{11, 12, 21},
		{12, 13, 22},
		{13, 14, 23},
		{14, 10, 24},
	}
	for _, b := range bridges {
		h.AddEdge(hypergraph.NewEdge([]hypergraph.Vertex{b[0], b[1], b[2]}))
	}

	return h
}

// TestDiagonalAuxChainingAtDepthTwoOrMore exercises the diagonal builder on
// a grid with GMax >= 3, so BuildDiagonal runs a second consuming pass
// (g=2's pass reading aux row g=1's pass left on row 2, itself depositing
// onto row 3) instead of stopping after a single row-to-row hop.
func TestDiagonalAuxChainingAtDepthTwoOrMore(t *testing.T) {
	h := denseHypergraph()

	idx := BuildDiagonal(h)
	if idx.GMax() < 3 {
		t.Fatalf("fixture regressed: GMax() = %d, want >= 3 to exercise depth-2+ aux chaining", idx.GMax())
	}

	for g := 1; g <= idx.GMax(); g++ {
		kmax := idx.KMax(g)
		for k := 1; k <= kmax; k++ {
			got := idx.Query(k, g)
			want := kgcore.FindKGCore(h, k, g)
			if !Equal(got, want) {
				t.Errorf("diagonal: Query(%d,%d) = %v, want %v (FindKGCore)", k, g, got.Slice(), want.Slice())
			}
		}
	}

	// Cross-check against every other representation too, same as
	// TestRepresentationsAgreeWithEachOther, on this deeper grid.
	naive := BuildNaive(h)
	for _, b := range builders[1:] {
		other := b.fn(h)
		for g := 1; g <= naive.GMax(); g++ {
			for k := 1; k <= naive.KMax(g); k++ {
				want := naive.Query(k, g)
				got := other.Query(k, g)
				if !Equal(got, want) {
					t.Errorf("%s vs naive on dense fixture: Query(%d,%d) = %v, want %v",
						b.name, k, g, got.Slice(), want.Slice())
				}
			}
		}
	}
}

var builders = []struct {
	name string
	fn   func(*hypergraph.Hypergraph) *Index
}{
	{"naive", BuildNaive},
	{"one_level", BuildOneLevel},
	{"jump", BuildJump},
	{"diagonal", BuildDiagonal},
}

// TestAllRepresentationsMatchReferencePeeler is properties 1-4: every
// representation's Query(k,g) must equal the reference peeler's output for
// every (k,g) the grid covers.
func TestAllRepresentationsMatchReferencePeeler(t *testing.T) {
	h := sampleHypergraph()

	for _, b := range builders {
		idx := b.fn(h)
		for g := 1; g <= idx.GMax(); g++ {
			kmax := idx.KMax(g)
			for k := 1; k <= kmax; k++ {
				got := idx.Query(k, g)
				want := kgcore.FindKGCore(h, k, g)
				if !Equal(got, want) {
					t.Errorf("%s: Query(%d,%d) = %v, want %v (FindKGCore)",
						b.name, k, g, got.Slice(), want.Slice())
				}
			}
		}
	}
}

// TestRepresentationsAgreeWithEachOther is a cross-check: regardless of
// which compression scheme built the index, querying the same (k,g) must
// return the same vertex set.
func TestRepresentationsAgreeWithEachOther(t *testing.T) {
	h := sampleHypergraph()

	naive := BuildNaive(h)
	for _, b := range builders[1:] {
		idx := b.fn(h)
		for g := 1; g <= naive.GMax(); g++ {
			for k := 1; k <= naive.KMax(g); k++ {
				want := naive.Query(k, g)
				got := idx.Query(k, g)
				if !Equal(got, want) {
					t.Errorf("%s vs naive: Query(%d,%d) = %v, want %v",
						b.name, k, g, got.Slice(), want.Slice())
				}
			}
		}
	}
}

// TestQueryMonotonicity is property 5: increasing k never returns a larger
// set; Query(k+1,g) must be a subset of Query(k,g).
func TestQueryMonotonicity(t *testing.T) {
	h := sampleHypergraph()
	for _, b := range builders {
		idx := b.fn(h)
		for g := 1; g <= idx.GMax(); g++ {
			kmax := idx.KMax(g)
			for k := 1; k < kmax; k++ {
				inner := idx.Query(k+1, g)
				outer := idx.Query(k, g)
				if !IsSubsetForTest(inner, outer) {
					t.Errorf("%s: Query(%d,%d) is not a subset of Query(%d,%d)", b.name, k+1, g, k, g)
				}
			}
		}
	}
}

// TestQueryOutOfRangeReturnsEmpty is property 6: queries outside the built
// grid silently return an empty set, never an error.
func TestQueryOutOfRangeReturnsEmpty(t *testing.T) {
	h := sampleHypergraph()
	for _, b := range builders {
		idx := b.fn(h)
		cases := [][2]int{{0, 1}, {1, 0}, {-1, 1}, {1, idx.GMax() + 1}, {idx.KMax(1) + 1000, 1}}
		for _, c := range cases {
			got := idx.Query(c[0], c[1])
			if got.Len() != 0 {
				t.Errorf("%s: Query(%d,%d) expected empty, got %v", b.name, c[0], c[1], got.Slice())
			}
		}
	}
}

// TestRepresentationString checks the human-readable names used by the
// benchmark CSV header.
func TestRepresentationString(t *testing.T) {
	cases := map[Representation]string{
		Naive:           "naive",
		OneLevel:        "one_level",
		Jump:            "jump",
		Diagonal:        "diagonal",
		Representation(99): "unknown",
	}
	for rep, want := range cases {
		if got := rep.String(); got != want {
			t.Errorf("Representation(%d).String() = %q, want %q", rep, got, want)
		}
	}
}

// IsSubsetForTest avoids importing vertexset directly in the test just to
// re-expose IsSubset; kgindex already re-exports the rest of the algebra.
func IsSubsetForTest(a, b *VertexSet) bool {
	result := true
	a.Each(func(v hypergraph.Vertex) {
		if !b.Contains(v) {
			result = false
		}
	})
	return result
}
