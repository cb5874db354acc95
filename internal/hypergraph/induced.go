package hypergraph

// InducedSubhypergraph returns the hypergraph induced on S: every edge is
// restricted to its members in S, and edges that become empty after the
// restriction are dropped. Supplements the distilled core contract per the
// reference implementation's get_induced_subhypergraph — used by the
// benchmark harness and the statistics package to report density (edges
// and mean edge size) within a reported core without re-deriving it from
// the raw hypergraph at every call site.
func (h *Hypergraph) InducedSubhypergraph(s map[Vertex]struct{}) *Hypergraph {
	out := New()
	for _, e := range h.edges {
		restricted := make([]Vertex, 0, len(e.Vertices))
		for _, v := range e.Vertices {
			if _, ok := s[v]; ok {
				restricted = append(restricted, v)
			}
		}
		if len(restricted) == 0 {
			continue
		}
		out.AddEdge(Edge{Vertices: restricted})
	}
	return out
}

// InducedSubhypergraphSlice is a convenience wrapper over a vertex slice.
func (h *Hypergraph) InducedSubhypergraphSlice(s []Vertex) *Hypergraph {
	set := make(map[Vertex]struct{}, len(s))
	for _, v := range s {
		set[v] = struct{}{}
	}
	return h.InducedSubhypergraph(set)
}
