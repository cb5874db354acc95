package repository

import (
	"time"

	"github.com/kgcore/kgcore/pkg/model"
)

// IndexMetadataRecord represents the index_metadata table.
type IndexMetadataRecord struct {
	ID              int64     `gorm:"column:id;primaryKey;autoIncrement"`
	SourcePath      string    `gorm:"column:source_path;type:varchar(512);index"`
	Representation  string    `gorm:"column:representation;type:varchar(32)"`
	GMax            int       `gorm:"column:g_max"`
	KMaxTotal       int64     `gorm:"column:k_max_total"`
	VertexCount     int64     `gorm:"column:vertex_count"`
	EdgeCount       int64     `gorm:"column:edge_count"`
	BuildDurationMS int64     `gorm:"column:build_duration_ms"`
	NodeCount       int64     `gorm:"column:node_count"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime"`
}

// TableName returns the table name for IndexMetadataRecord.
func (IndexMetadataRecord) TableName() string {
	return "index_metadata"
}

// ToModel converts IndexMetadataRecord to model.IndexMetadata.
func (r *IndexMetadataRecord) ToModel() *model.IndexMetadata {
	return &model.IndexMetadata{
		ID:              r.ID,
		SourcePath:      r.SourcePath,
		Representation:  r.Representation,
		GMax:            r.GMax,
		KMaxTotal:       r.KMaxTotal,
		VertexCount:     r.VertexCount,
		EdgeCount:       r.EdgeCount,
		BuildDurationMS: r.BuildDurationMS,
		NodeCount:       r.NodeCount,
		CreatedAt:       r.CreatedAt,
	}
}

// indexMetadataRecordFromModel builds an IndexMetadataRecord from a model.
func indexMetadataRecordFromModel(m *model.IndexMetadata) *IndexMetadataRecord {
	return &IndexMetadataRecord{
		ID:              m.ID,
		SourcePath:      m.SourcePath,
		Representation:  m.Representation,
		GMax:            m.GMax,
		KMaxTotal:       m.KMaxTotal,
		VertexCount:     m.VertexCount,
		EdgeCount:       m.EdgeCount,
		BuildDurationMS: m.BuildDurationMS,
		NodeCount:       m.NodeCount,
		CreatedAt:       m.CreatedAt,
	}
}

// BenchmarkRunRecord represents the benchmark_run table.
type BenchmarkRunRecord struct {
	ID         int64     `gorm:"column:id;primaryKey;autoIncrement"`
	SourcePath string    `gorm:"column:source_path;type:varchar(512);index"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime"`
}

// TableName returns the table name for BenchmarkRunRecord.
func (BenchmarkRunRecord) TableName() string {
	return "benchmark_run"
}

// BenchmarkRowRecord represents the benchmark_row table.
type BenchmarkRowRecord struct {
	ID              int64     `gorm:"column:id;primaryKey;autoIncrement"`
	RunID           int64     `gorm:"column:run_id;index"`
	Representation  string    `gorm:"column:representation;type:varchar(32)"`
	BuildDurationMS int64     `gorm:"column:build_duration_ms"`
	NodeCount       int64     `gorm:"column:node_count"`
	AuxEntryCount   int64     `gorm:"column:aux_entry_count"`
	QuerySamples    int       `gorm:"column:query_samples"`
	AvgQueryMicros  float64   `gorm:"column:avg_query_micros"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime"`
}

// TableName returns the table name for BenchmarkRowRecord.
func (BenchmarkRowRecord) TableName() string {
	return "benchmark_row"
}

// ToModel converts BenchmarkRowRecord to model.BenchmarkRow.
func (r *BenchmarkRowRecord) ToModel() model.BenchmarkRow {
	return model.BenchmarkRow{
		ID:              r.ID,
		RunID:           r.RunID,
		Representation:  r.Representation,
		BuildDurationMS: r.BuildDurationMS,
		NodeCount:       r.NodeCount,
		AuxEntryCount:   r.AuxEntryCount,
		QuerySamples:    r.QuerySamples,
		AvgQueryMicros:  r.AvgQueryMicros,
		CreatedAt:       r.CreatedAt,
	}
}

// benchmarkRowRecordFromModel builds a BenchmarkRowRecord from a model, tied
// to runID.
func benchmarkRowRecordFromModel(runID int64, row *model.BenchmarkRow) *BenchmarkRowRecord {
	return &BenchmarkRowRecord{
		RunID:           runID,
		Representation:  row.Representation,
		BuildDurationMS: row.BuildDurationMS,
		NodeCount:       row.NodeCount,
		AuxEntryCount:   row.AuxEntryCount,
		QuerySamples:    row.QuerySamples,
		AvgQueryMicros:  row.AvgQueryMicros,
		CreatedAt:       row.CreatedAt,
	}
}
