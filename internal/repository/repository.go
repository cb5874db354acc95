// Package repository provides database abstraction for index metadata and
// benchmark results.
package repository

import (
	"context"

	"github.com/kgcore/kgcore/pkg/model"
)

// IndexMetadataRepository defines the interface for persisted index build
// records.
type IndexMetadataRepository interface {
	// Save persists a new index metadata row.
	Save(ctx context.Context, meta *model.IndexMetadata) error

	// GetByID retrieves an index metadata row by its ID.
	GetByID(ctx context.Context, id int64) (*model.IndexMetadata, error)

	// ListBySource retrieves every build recorded for sourcePath, most
	// recent first.
	ListBySource(ctx context.Context, sourcePath string) ([]*model.IndexMetadata, error)
}

// BenchmarkRepository defines the interface for persisted benchmark runs.
type BenchmarkRepository interface {
	// SaveRun persists a benchmark run and its rows.
	SaveRun(ctx context.Context, run *model.BenchmarkRun) error

	// GetRun retrieves a benchmark run and its rows by run ID.
	GetRun(ctx context.Context, id int64) (*model.BenchmarkRun, error)

	// ListRuns retrieves every benchmark run recorded for sourcePath, most
	// recent first.
	ListRuns(ctx context.Context, sourcePath string) ([]*model.BenchmarkRun, error)
}
