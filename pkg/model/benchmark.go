package model

import "time"

// BenchmarkRow is one representation's measured cost for a single source
// hypergraph: build time, resulting node/aux footprint, and average query
// latency sampled over a fixed set of (k,g) probes. Persisted by the
// benchmark command's --persist path; CSVRecord renders it as a CSV row,
// while the benchmark --export file uses its own one-row-per-run layout.
type BenchmarkRow struct {
	ID              int64     `json:"id" db:"id"`
	RunID           int64     `json:"run_id" db:"run_id"`
	Representation  string    `json:"representation" db:"representation"`
	BuildDurationMS int64     `json:"build_duration_ms" db:"build_duration_ms"`
	NodeCount       int64     `json:"node_count" db:"node_count"`
	AuxEntryCount   int64     `json:"aux_entry_count" db:"aux_entry_count"`
	QuerySamples    int       `json:"query_samples" db:"query_samples"`
	AvgQueryMicros  float64   `json:"avg_query_micros" db:"avg_query_micros"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
}

// CSVHeader returns the column names in the order CSVRecord emits them.
func CSVHeader() []string {
	return []string{
		"representation", "build_duration_ms", "node_count",
		"aux_entry_count", "query_samples", "avg_query_micros",
	}
}

// CSVRecord renders the row as a slice of strings matching CSVHeader.
func (r *BenchmarkRow) CSVRecord() []string {
	return []string{
		r.Representation,
		itoa64(r.BuildDurationMS),
		itoa64(r.NodeCount),
		itoa64(r.AuxEntryCount),
		itoa(r.QuerySamples),
		ftoa(r.AvgQueryMicros),
	}
}

// BenchmarkRun groups every representation's row for one source hypergraph
// run, so the repository layer can persist and fetch them together.
type BenchmarkRun struct {
	ID         int64          `json:"id" db:"id"`
	SourcePath string         `json:"source_path" db:"source_path"`
	CreatedAt  time.Time      `json:"created_at" db:"created_at"`
	Rows       []BenchmarkRow `json:"rows" db:"-" gorm:"-"`
}

// NewBenchmarkRun starts a run for sourcePath with CreatedAt set to now.
func NewBenchmarkRun(sourcePath string) *BenchmarkRun {
	return &BenchmarkRun{SourcePath: sourcePath, CreatedAt: time.Now()}
}
