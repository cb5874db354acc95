package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/kgcore/kgcore/pkg/model"
)

// MySQLIndexMetadataRepository implements IndexMetadataRepository for MySQL.
type MySQLIndexMetadataRepository struct {
	db *sql.DB
}

// NewMySQLIndexMetadataRepository creates a new MySQLIndexMetadataRepository.
func NewMySQLIndexMetadataRepository(db *sql.DB) *MySQLIndexMetadataRepository {
	return &MySQLIndexMetadataRepository{db: db}
}

// Save persists a new index metadata row.
func (r *MySQLIndexMetadataRepository) Save(ctx context.Context, meta *model.IndexMetadata) error {
	query := `
		INSERT INTO index_metadata
			(source_path, representation, g_max, k_max_total, vertex_count, edge_count, build_duration_ms, node_count, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		meta.SourcePath, meta.Representation, meta.GMax, meta.KMaxTotal,
		meta.VertexCount, meta.EdgeCount, meta.BuildDurationMS, meta.NodeCount, meta.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save index metadata: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get inserted id: %w", err)
	}
	meta.ID = id
	return nil
}

// GetByID retrieves an index metadata row by its ID.
func (r *MySQLIndexMetadataRepository) GetByID(ctx context.Context, id int64) (*model.IndexMetadata, error) {
	query := `
		SELECT id, source_path, representation, g_max, k_max_total, vertex_count, edge_count, build_duration_ms, node_count, created_at
		FROM index_metadata
		WHERE id = ?
	`

	meta := &model.IndexMetadata{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&meta.ID, &meta.SourcePath, &meta.Representation, &meta.GMax, &meta.KMaxTotal,
		&meta.VertexCount, &meta.EdgeCount, &meta.BuildDurationMS, &meta.NodeCount, &meta.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("index metadata not found: %d", id)
		}
		return nil, fmt.Errorf("failed to get index metadata: %w", err)
	}

	return meta, nil
}

// ListBySource retrieves every build recorded for sourcePath, most recent
// first.
func (r *MySQLIndexMetadataRepository) ListBySource(ctx context.Context, sourcePath string) ([]*model.IndexMetadata, error) {
	query := `
		SELECT id, source_path, representation, g_max, k_max_total, vertex_count, edge_count, build_duration_ms, node_count, created_at
		FROM index_metadata
		WHERE source_path = ?
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, sourcePath)
	if err != nil {
		return nil, fmt.Errorf("failed to list index metadata: %w", err)
	}
	defer rows.Close()

	var result []*model.IndexMetadata
	for rows.Next() {
		meta := &model.IndexMetadata{}
		err := rows.Scan(
			&meta.ID, &meta.SourcePath, &meta.Representation, &meta.GMax, &meta.KMaxTotal,
			&meta.VertexCount, &meta.EdgeCount, &meta.BuildDurationMS, &meta.NodeCount, &meta.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan index metadata row: %w", err)
		}
		result = append(result, meta)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return result, nil
}

// MySQLBenchmarkRepository implements BenchmarkRepository for MySQL.
type MySQLBenchmarkRepository struct {
	db *sql.DB
}

// NewMySQLBenchmarkRepository creates a new MySQLBenchmarkRepository.
func NewMySQLBenchmarkRepository(db *sql.DB) *MySQLBenchmarkRepository {
	return &MySQLBenchmarkRepository{db: db}
}

// SaveRun persists a benchmark run and its rows in a single transaction.
func (r *MySQLBenchmarkRepository) SaveRun(ctx context.Context, run *model.BenchmarkRun) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	runResult, err := tx.ExecContext(ctx,
		`INSERT INTO benchmark_run (source_path, created_at) VALUES (?, ?)`,
		run.SourcePath, run.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save benchmark run: %w", err)
	}
	runID, err := runResult.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get inserted run id: %w", err)
	}
	run.ID = runID

	rowQuery := `
		INSERT INTO benchmark_row
			(run_id, representation, build_duration_ms, node_count, aux_entry_count, query_samples, avg_query_micros, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`
	for i := range run.Rows {
		row := &run.Rows[i]
		rowResult, err := tx.ExecContext(ctx, rowQuery,
			runID, row.Representation, row.BuildDurationMS, row.NodeCount,
			row.AuxEntryCount, row.QuerySamples, row.AvgQueryMicros, row.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to save benchmark row: %w", err)
		}
		rowID, err := rowResult.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to get inserted row id: %w", err)
		}
		row.ID = rowID
		row.RunID = runID
	}

	return tx.Commit()
}

// GetRun retrieves a benchmark run and its rows by run ID.
func (r *MySQLBenchmarkRepository) GetRun(ctx context.Context, id int64) (*model.BenchmarkRun, error) {
	run := &model.BenchmarkRun{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, source_path, created_at FROM benchmark_run WHERE id = ?`, id,
	).Scan(&run.ID, &run.SourcePath, &run.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("benchmark run not found: %d", id)
		}
		return nil, fmt.Errorf("failed to get benchmark run: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, run_id, representation, build_duration_ms, node_count, aux_entry_count, query_samples, avg_query_micros, created_at
		FROM benchmark_row
		WHERE run_id = ?
	`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get benchmark rows: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var row model.BenchmarkRow
		err := rows.Scan(
			&row.ID, &row.RunID, &row.Representation, &row.BuildDurationMS,
			&row.NodeCount, &row.AuxEntryCount, &row.QuerySamples, &row.AvgQueryMicros, &row.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan benchmark row: %w", err)
		}
		run.Rows = append(run.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return run, nil
}

// ListRuns retrieves every benchmark run recorded for sourcePath, most
// recent first. Rows are not populated; call GetRun for a run's detail.
func (r *MySQLBenchmarkRepository) ListRuns(ctx context.Context, sourcePath string) ([]*model.BenchmarkRun, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, source_path, created_at FROM benchmark_run
		WHERE source_path = ?
		ORDER BY created_at DESC
	`, sourcePath)
	if err != nil {
		return nil, fmt.Errorf("failed to list benchmark runs: %w", err)
	}
	defer rows.Close()

	var result []*model.BenchmarkRun
	for rows.Next() {
		run := &model.BenchmarkRun{}
		if err := rows.Scan(&run.ID, &run.SourcePath, &run.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan benchmark run: %w", err)
		}
		result = append(result, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return result, nil
}
