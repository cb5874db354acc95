package hypergraph

import "testing"

func TestInducedSubhypergraphRestrictsEdges(t *testing.T) {
	h := New()
	h.AddEdge(NewEdge([]Vertex{0, 1, 2}))
	h.AddEdge(NewEdge([]Vertex{2, 3, 4}))
	h.AddEdge(NewEdge([]Vertex{5, 6}))

	sub := h.InducedSubhypergraphSlice([]Vertex{0, 1, 2, 3})

	if sub.NumEdges() != 2 {
		t.Fatalf("expected 2 edges to survive restriction, got %d", sub.NumEdges())
	}
	edges := sub.Edges()
	for _, e := range edges {
		for _, v := range e.Vertices {
			if v == 4 || v == 5 || v == 6 {
				t.Fatalf("edge %v retained a vertex outside the induced set", e.Vertices)
			}
		}
	}
}

func TestInducedSubhypergraphDropsEmptiedEdges(t *testing.T) {
	h := New()
	h.AddEdge(NewEdge([]Vertex{0, 1}))
	h.AddEdge(NewEdge([]Vertex{5, 6}))

	sub := h.InducedSubhypergraphSlice([]Vertex{0, 1})

	if sub.NumEdges() != 1 {
		t.Fatalf("expected the fully-external edge to be dropped, got %d edges", sub.NumEdges())
	}
	if sub.NumVertices() != 2 {
		t.Fatalf("expected 2 vertices in induced subhypergraph, got %d", sub.NumVertices())
	}
}

func TestInducedSubhypergraphEmptySet(t *testing.T) {
	h := New()
	h.AddEdge(NewEdge([]Vertex{0, 1}))

	sub := h.InducedSubhypergraph(map[Vertex]struct{}{})
	if sub.NumEdges() != 0 {
		t.Fatalf("expected no edges against an empty induced set, got %d", sub.NumEdges())
	}
}
