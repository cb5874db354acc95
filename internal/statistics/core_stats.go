// Package statistics provides utilities for summarizing a reported core's
// shape: induced density and degree distribution.
package statistics

import (
	"sort"

	"github.com/kgcore/kgcore/internal/hypergraph"
	"github.com/kgcore/kgcore/internal/vertexset"
	"github.com/kgcore/kgcore/pkg/filter"
)

// CoreStatsCalculator computes shape statistics for a reported (k,g)-core
// against the hypergraph it was drawn from.
type CoreStatsCalculator struct {
	topN int
}

// CoreStatsOption configures a CoreStatsCalculator.
type CoreStatsOption func(*CoreStatsCalculator)

// WithTopN sets how many highest-degree vertices to report.
func WithTopN(n int) CoreStatsOption {
	return func(c *CoreStatsCalculator) { c.topN = n }
}

// NewCoreStatsCalculator creates a calculator with topN defaulting to 10.
func NewCoreStatsCalculator(opts ...CoreStatsOption) *CoreStatsCalculator {
	c := &CoreStatsCalculator{topN: 10}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// DegreeEntry is a single vertex's degree within the induced subhypergraph.
type DegreeEntry struct {
	Vertex hypergraph.Vertex
	Degree int
}

// CoreStatsResult holds the calculation result.
type CoreStatsResult struct {
	VertexCount    int
	EdgeCount      int
	MeanEdgeSize   float64
	Density        float64 // edges / vertices
	TopDegree      []DegreeEntry
	CategoryCounts map[string]int
}

// Calculate restricts h to core's members and reports its shape.
func (c *CoreStatsCalculator) Calculate(h *hypergraph.Hypergraph, core *vertexset.VertexSet) *CoreStatsResult {
	members := core.Slice()
	sub := h.InducedSubhypergraphSlice(members)

	result := &CoreStatsResult{
		VertexCount:    sub.NumVertices(),
		EdgeCount:      sub.NumEdges(),
		CategoryCounts: make(map[string]int),
	}
	if result.VertexCount > 0 {
		result.Density = float64(result.EdgeCount) / float64(result.VertexCount)
	}

	totalArity := 0
	for _, e := range sub.Edges() {
		totalArity += len(e.Vertices)
	}
	if result.EdgeCount > 0 {
		result.MeanEdgeSize = float64(totalArity) / float64(result.EdgeCount)
	}

	vf := filter.NewVertexFilter()
	entries := make([]DegreeEntry, 0, len(members))
	for _, v := range sub.Vertices() {
		edges, err := sub.EdgesOf(v)
		degree := 0
		if err == nil {
			degree = len(edges)
		}
		entries = append(entries, DegreeEntry{Vertex: v, Degree: degree})
		result.CategoryCounts[vf.Classify(uint32(v), degree).String()]++
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Degree > entries[j].Degree })
	topN := c.topN
	if topN > len(entries) {
		topN = len(entries)
	}
	result.TopDegree = entries[:topN]

	return result
}
