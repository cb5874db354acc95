package statistics

import (
	"testing"

	"github.com/kgcore/kgcore/internal/hypergraph"
	"github.com/kgcore/kgcore/internal/vertexset"
)

func TestCoreStatsCalculate(t *testing.T) {
	h := hypergraph.New()
	h.AddEdge(hypergraph.NewEdge([]hypergraph.Vertex{0, 1, 2}))
	h.AddEdge(hypergraph.NewEdge([]hypergraph.Vertex{1, 2, 3}))
	h.AddEdge(hypergraph.NewEdge([]hypergraph.Vertex{5, 6})) // outside the core

	core := vertexset.VertexSetOf(0, 1, 2, 3)
	result := NewCoreStatsCalculator(WithTopN(2)).Calculate(h, core)

	if result.VertexCount != 4 {
		t.Fatalf("expected 4 vertices, got %d", result.VertexCount)
	}
	if result.EdgeCount != 2 {
		t.Fatalf("expected 2 edges restricted to the core, got %d", result.EdgeCount)
	}
	if len(result.TopDegree) != 2 {
		t.Fatalf("expected topN=2 entries, got %d", len(result.TopDegree))
	}
	if result.MeanEdgeSize <= 0 {
		t.Error("expected a positive mean edge size")
	}
}

func TestCoreStatsEmptyCore(t *testing.T) {
	h := hypergraph.New()
	h.AddEdge(hypergraph.NewEdge([]hypergraph.Vertex{0, 1}))

	result := NewCoreStatsCalculator().Calculate(h, vertexset.NewVertexSet(0))
	if result.VertexCount != 0 || result.EdgeCount != 0 {
		t.Fatalf("expected an empty result for an empty core, got %+v", result)
	}
}
