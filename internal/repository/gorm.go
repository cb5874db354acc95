package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/kgcore/kgcore/pkg/model"
	"gorm.io/gorm"
)

// GormIndexMetadataRepository implements IndexMetadataRepository using GORM.
type GormIndexMetadataRepository struct {
	db *gorm.DB
}

// NewGormIndexMetadataRepository creates a new GormIndexMetadataRepository.
func NewGormIndexMetadataRepository(db *gorm.DB) *GormIndexMetadataRepository {
	return &GormIndexMetadataRepository{db: db}
}

// Save persists a new index metadata row.
func (r *GormIndexMetadataRepository) Save(ctx context.Context, meta *model.IndexMetadata) error {
	record := indexMetadataRecordFromModel(meta)
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return fmt.Errorf("failed to save index metadata: %w", err)
	}
	meta.ID = record.ID
	return nil
}

// GetByID retrieves an index metadata row by its ID.
func (r *GormIndexMetadataRepository) GetByID(ctx context.Context, id int64) (*model.IndexMetadata, error) {
	var record IndexMetadataRecord

	err := r.db.WithContext(ctx).Where("id = ?", id).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("index metadata not found: %d", id)
		}
		return nil, fmt.Errorf("failed to get index metadata: %w", err)
	}

	return record.ToModel(), nil
}

// ListBySource retrieves every build recorded for sourcePath, most recent
// first.
func (r *GormIndexMetadataRepository) ListBySource(ctx context.Context, sourcePath string) ([]*model.IndexMetadata, error) {
	var records []IndexMetadataRecord

	err := r.db.WithContext(ctx).
		Where("source_path = ?", sourcePath).
		Order("created_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list index metadata: %w", err)
	}

	result := make([]*model.IndexMetadata, len(records))
	for i := range records {
		result[i] = records[i].ToModel()
	}
	return result, nil
}

// GormBenchmarkRepository implements BenchmarkRepository using GORM.
type GormBenchmarkRepository struct {
	db *gorm.DB
}

// NewGormBenchmarkRepository creates a new GormBenchmarkRepository.
func NewGormBenchmarkRepository(db *gorm.DB) *GormBenchmarkRepository {
	return &GormBenchmarkRepository{db: db}
}

// SaveRun persists a benchmark run and its rows in a single transaction.
func (r *GormBenchmarkRepository) SaveRun(ctx context.Context, run *model.BenchmarkRun) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		runRecord := &BenchmarkRunRecord{SourcePath: run.SourcePath, CreatedAt: run.CreatedAt}
		if err := tx.Create(runRecord).Error; err != nil {
			return fmt.Errorf("failed to save benchmark run: %w", err)
		}
		run.ID = runRecord.ID

		for i := range run.Rows {
			rowRecord := benchmarkRowRecordFromModel(run.ID, &run.Rows[i])
			if err := tx.Create(rowRecord).Error; err != nil {
				return fmt.Errorf("failed to save benchmark row: %w", err)
			}
			run.Rows[i].ID = rowRecord.ID
			run.Rows[i].RunID = run.ID
		}

		return nil
	})
}

// GetRun retrieves a benchmark run and its rows by run ID.
func (r *GormBenchmarkRepository) GetRun(ctx context.Context, id int64) (*model.BenchmarkRun, error) {
	var runRecord BenchmarkRunRecord
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&runRecord).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("benchmark run not found: %d", id)
		}
		return nil, fmt.Errorf("failed to get benchmark run: %w", err)
	}

	var rowRecords []BenchmarkRowRecord
	if err := r.db.WithContext(ctx).Where("run_id = ?", id).Find(&rowRecords).Error; err != nil {
		return nil, fmt.Errorf("failed to get benchmark rows: %w", err)
	}

	run := &model.BenchmarkRun{ID: runRecord.ID, SourcePath: runRecord.SourcePath, CreatedAt: runRecord.CreatedAt}
	run.Rows = make([]model.BenchmarkRow, len(rowRecords))
	for i := range rowRecords {
		run.Rows[i] = rowRecords[i].ToModel()
	}
	return run, nil
}

// ListRuns retrieves every benchmark run recorded for sourcePath, most
// recent first. Rows are not populated; call GetRun for a run's detail.
func (r *GormBenchmarkRepository) ListRuns(ctx context.Context, sourcePath string) ([]*model.BenchmarkRun, error) {
	var records []BenchmarkRunRecord

	err := r.db.WithContext(ctx).
		Where("source_path = ?", sourcePath).
		Order("created_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list benchmark runs: %w", err)
	}

	result := make([]*model.BenchmarkRun, len(records))
	for i := range records {
		result[i] = &model.BenchmarkRun{ID: records[i].ID, SourcePath: records[i].SourcePath, CreatedAt: records[i].CreatedAt}
	}
	return result, nil
}
