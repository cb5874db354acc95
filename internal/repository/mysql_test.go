package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kgcore/kgcore/pkg/model"
)

func TestMySQLIndexMetadataRepository_Save(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewMySQLIndexMetadataRepository(db)

	meta := model.NewIndexMetadata("testdata/sample.txt", "jump")
	meta.GMax = 3

	mock.ExpectExec("INSERT INTO index_metadata").
		WithArgs(meta.SourcePath, meta.Representation, meta.GMax, meta.KMaxTotal,
			meta.VertexCount, meta.EdgeCount, meta.BuildDurationMS, meta.NodeCount, meta.CreatedAt).
		WillReturnResult(sqlmock.NewResult(7, 1))

	require.NoError(t, repo.Save(context.Background(), meta))
	assert.Equal(t, int64(7), meta.ID)
}

func TestMySQLIndexMetadataRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewMySQLIndexMetadataRepository(db)

	rows := sqlmock.NewRows([]string{
		"id", "source_path", "representation", "g_max", "k_max_total",
		"vertex_count", "edge_count", "build_duration_ms", "node_count", "created_at",
	}).AddRow(int64(1), "testdata/sample.txt", "diagonal", 4, int64(200), int64(100), int64(50), int64(12), int64(80), time.Now())

	mock.ExpectQuery("SELECT id, source_path").WillReturnRows(rows)

	meta, err := repo.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "diagonal", meta.Representation)
}

func TestMySQLIndexMetadataRepository_GetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewMySQLIndexMetadataRepository(db)

	mock.ExpectQuery("SELECT id, source_path").WillReturnRows(sqlmock.NewRows(nil))

	meta, err := repo.GetByID(context.Background(), 999)
	assert.Error(t, err)
	assert.Nil(t, meta)
}

func TestMySQLBenchmarkRepository_SaveRun(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewMySQLBenchmarkRepository(db)

	run := model.NewBenchmarkRun("testdata/sample.txt")
	run.Rows = []model.BenchmarkRow{
		{Representation: "naive", BuildDurationMS: 5, NodeCount: 20, CreatedAt: time.Now()},
	}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO benchmark_run").
		WithArgs(run.SourcePath, run.CreatedAt).
		WillReturnResult(sqlmock.NewResult(3, 1))
	mock.ExpectExec("INSERT INTO benchmark_row").
		WithArgs(int64(3), "naive", int64(5), int64(20), int64(0), 0, float64(0), run.Rows[0].CreatedAt).
		WillReturnResult(sqlmock.NewResult(9, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.SaveRun(context.Background(), run))
	assert.Equal(t, int64(3), run.ID)
	assert.Equal(t, int64(9), run.Rows[0].ID)
}

func TestMySQLBenchmarkRepository_GetRunNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewMySQLBenchmarkRepository(db)

	mock.ExpectQuery("SELECT id, source_path, created_at FROM benchmark_run").WillReturnRows(sqlmock.NewRows(nil))

	run, err := repo.GetRun(context.Background(), 999)
	assert.Error(t, err)
	assert.Nil(t, run)
}
