package statistics

import "github.com/kgcore/kgcore/internal/kgindex"

// CompressionStatsResult reports a built index's footprint, used by the
// benchmark harness to compare representations.
type CompressionStatsResult struct {
	Representation string
	NodeCount      int
	AuxEntryCount  int
}

// CalculateCompressionStats reports idx's footprint.
func CalculateCompressionStats(idx *kgindex.Index) *CompressionStatsResult {
	return &CompressionStatsResult{
		Representation: idx.Kind().String(),
		NodeCount:      idx.NodeCount(),
		AuxEntryCount:  idx.AuxEntryCount(),
	}
}
