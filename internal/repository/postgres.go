package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/kgcore/kgcore/pkg/model"
)

// PostgresIndexMetadataRepository implements IndexMetadataRepository for
// PostgreSQL.
type PostgresIndexMetadataRepository struct {
	db *sql.DB
}

// NewPostgresIndexMetadataRepository creates a new PostgresIndexMetadataRepository.
func NewPostgresIndexMetadataRepository(db *sql.DB) *PostgresIndexMetadataRepository {
	return &PostgresIndexMetadataRepository{db: db}
}

// Save persists a new index metadata row.
func (r *PostgresIndexMetadataRepository) Save(ctx context.Context, meta *model.IndexMetadata) error {
	query := `
		INSERT INTO index_metadata
			(source_path, representation, g_max, k_max_total, vertex_count, edge_count, build_duration_ms, node_count, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`

	err := r.db.QueryRowContext(ctx, query,
		meta.SourcePath, meta.Representation, meta.GMax, meta.KMaxTotal,
		meta.VertexCount, meta.EdgeCount, meta.BuildDurationMS, meta.NodeCount, meta.CreatedAt,
	).Scan(&meta.ID)
	if err != nil {
		return fmt.Errorf("failed to save index metadata: %w", err)
	}

	return nil
}

// GetByID retrieves an index metadata row by its ID.
func (r *PostgresIndexMetadataRepository) GetByID(ctx context.Context, id int64) (*model.IndexMetadata, error) {
	query := `
		SELECT id, source_path, representation, g_max, k_max_total, vertex_count, edge_count, build_duration_ms, node_count, created_at
		FROM index_metadata
		WHERE id = $1
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
func (r *PostgresIndexMetadataRepository) ListBySource(ctx context.Context, sourcePath string) ([]*model.IndexMetadata, error) {
	query := `
		SELECT id, source_path, representation, g_max, k_max_total, vertex_count, edge_count, build_duration_ms, node_count, created_at
		FROM index_metadata
		WHERE source_path = $1
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

// PostgresBenchmarkRepository implements BenchmarkRepository for
// PostgreSQL.
type PostgresBenchmarkRepository struct {
	db *sql.DB
}

// NewPostgresBenchmarkRepository creates a new PostgresBenchmarkRepository.
func NewPostgresBenchmarkRepository(db *sql.DB) *PostgresBenchmarkRepository {
	return &PostgresBenchmarkRepository{db: db}
}

// SaveRun persists a benchmark run and its rows in a single transaction.
func (r *PostgresBenchmarkRepository) SaveRun(ctx context.Context, run *model.BenchmarkRun) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	err = tx.QueryRowContext(ctx,
		`INSERT INTO benchmark_run (source_path, created_at) VALUES ($1, $2) RETURNING id`,
		run.SourcePath, run.CreatedAt,
	).Scan(&run.ID)
	if err != nil {
		return fmt.Errorf("failed to save benchmark run: %w", err)
	}

	rowQuery := `
		INSERT INTO benchmark_row
			(run_id, representation, build_duration_ms, node_count, aux_entry_count, query_samples, avg_query_micros, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`
	for i := range run.Rows {
		row := &run.Rows[i]
		err := tx.QueryRowContext(ctx, rowQuery,
			run.ID, row.Representation, row.BuildDurationMS, row.NodeCount,
			row.AuxEntryCount, row.QuerySamples, row.AvgQueryMicros, row.CreatedAt,
		).Scan(&row.ID)
		if err != nil {
			return fmt.Errorf("failed to save benchmark row: %w", err)
		}
		row.RunID = run.ID
	}

	return tx.Commit()
}

// GetRun retrieves a benchmark run and its rows by run ID.
func (r *PostgresBenchmarkRepository) GetRun(ctx context.Context, id int64) (*model.BenchmarkRun, error) {
	run := &model.BenchmarkRun{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, source_path, created_at FROM benchmark_run WHERE id = $1`, id,
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
		WHERE run_id = $1
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
func (r *PostgresBenchmarkRepository) ListRuns(ctx context.Context, sourcePath string) ([]*model.BenchmarkRun, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, source_path, created_at FROM benchmark_run
		WHERE source_path = $1
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
