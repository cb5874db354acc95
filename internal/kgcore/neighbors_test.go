package kgcore

import (
	"testing"

	"github.com/kgcore/kgcore/internal/hypergraph"
	"github.com/kgcore/kgcore/internal/vertexset"
)

// triangleHypergraph builds two overlapping triangles sharing vertex 2:
// {0,1,2}, {1,2,3}, {2,3,4}. Vertex 2 co-occurs with every other vertex
// across these three edges; vertex 0 only co-occurs with 1 and 2.
func triangleHypergraph() *hypergraph.Hypergraph {
	h := hypergraph.New()
	h.AddEdge(hypergraph.NewEdge([]hypergraph.Vertex{0, 1, 2}))
	h.AddEdge(hypergraph.NewEdge([]hypergraph.Vertex{1, 2, 3}))
	h.AddEdge(hypergraph.NewEdge([]hypergraph.Vertex{2, 3, 4}))
	return h
}

func TestNeighborCountsBasic(t *testing.T) {
	h := triangleHypergraph()
	nc := NewNeighborCounter(h)

	counts, err := nc.NeighborCounts(2, 1, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// vertex 2 co-occurs with 0 (1x), 1 (2x), 3 (2x), 4 (1x); all pass g=1.
	for _, v := range []hypergraph.Vertex{0, 1, 3, 4} {
		if _, ok := counts[v]; !ok {
			t.Errorf("expected %d to be a g=1 neighbor of 2", v)
		}
	}
	nc.Release(counts)
}

func TestNeighborCountsThreshold(t *testing.T) {
	h := triangleHypergraph()
	nc := NewNeighborCounter(h)

	counts, err := nc.NeighborCounts(2, 2, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// only 1 and 3 co-occur with 2 in 2 distinct edges.
	if _, ok := counts[1]; !ok {
		t.Error("expected 1 to pass g=2")
	}
	if _, ok := counts[3]; !ok {
		t.Error("expected 3 to pass g=2")
	}
	if _, ok := counts[0]; ok {
		t.Error("expected 0 to fail g=2 (only 1 co-occurrence)")
	}
	nc.Release(counts)
}

func TestNeighborCountsRespectsActiveFilter(t *testing.T) {
	h := triangleHypergraph()
	nc := NewNeighborCounter(h)

	active := vertexset.VertexSetOf(0, 1, 2) // excludes 3 and 4
	counts, err := nc.NeighborCounts(2, 1, active)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := counts[3]; ok {
		t.Error("expected 3 to be filtered out by the active set")
	}
	if _, ok := counts[1]; !ok {
		t.Error("expected 1 to remain (it is active)")
	}
	nc.Release(counts)
}
