// Package model defines the persisted and wire-level data structures
// shared between the CLI, the repository layer, and the benchmark harness.
package model

import "time"

// IndexMetadata is the persisted record of a single build: which source
// file, which representation, and the resulting grid shape and cost. One
// row per (source, representation) build.
type IndexMetadata struct {
	ID              int64     `json:"id" db:"id"`
	SourcePath      string    `json:"source_path" db:"source_path"`
	Representation  string    `json:"representation" db:"representation"`
	GMax            int       `json:"g_max" db:"g_max"`
	KMaxTotal       int64     `json:"k_max_total" db:"k_max_total"`
	VertexCount     int64     `json:"vertex_count" db:"vertex_count"`
	EdgeCount       int64     `json:"edge_count" db:"edge_count"`
	BuildDurationMS int64     `json:"build_duration_ms" db:"build_duration_ms"`
	NodeCount       int64     `json:"node_count" db:"node_count"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
}

// NewIndexMetadata builds an IndexMetadata row with CreatedAt set to now.
func NewIndexMetadata(sourcePath, representation string) *IndexMetadata {
	return &IndexMetadata{
		SourcePath:     sourcePath,
		Representation: representation,
		CreatedAt:      time.Now(),
	}
}

// IsCompressed reports whether the representation stores anything less
// than the full materialized core at every node.
func (m *IndexMetadata) IsCompressed() bool {
	return m.Representation != "naive"
}
