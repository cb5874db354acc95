package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/kgcore/kgcore/pkg/telemetry"
	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/plugin/opentelemetry/tracing"
)

// DBConfig holds database configuration. For DBTypeSQLite, Database is the
// file path (or ":memory:"); Host/Port/User/Password are unused.
type DBConfig struct {
	Type     string `mapstructure:"type"` // postgres, mysql, or sqlite
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Database string `mapstructure:"database"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	MaxConns int    `mapstructure:"max_conns"`
}

// DBType represents the database type.
type DBType string

const (
	DBTypePostgres DBType = "postgres"
	DBTypeMySQL    DBType = "mysql"
	DBTypeSQLite   DBType = "sqlite"
)

// NewGormDB creates a new GORM database connection based on configuration.
// sqlite is the zero-setup default for `--persist` without a `--config`
// database section: CLI runs that only want a local record of a build or
// benchmark shouldn't need a postgres/mysql instance standing by.
func NewGormDB(cfg *DBConfig) (*gorm.DB, error) {
	var dialector gorm.Dialector

	switch DBType(cfg.Type) {
	case DBTypePostgres, DBType("postgresql"):
		dsn := fmt.Sprintf(
			"host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
			cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Database,
		)
		dialector = postgres.Open(dsn)
	case DBTypeMySQL:
		dsn := fmt.Sprintf(
			"%s:%s@tcp(%s:%d)/%s?parseTime=true&loc=Local",
			cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Database,
		)
		dialector = mysql.Open(dsn)
	case DBTypeSQLite, DBType(""):
		path := cfg.Database
		if path == "" {
			path = "kgcore.db"
		}
		dialector = sqlite.Open(path)
	default:
		return nil, fmt.Errorf("unsupported database type: %s", cfg.Type)
	}

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable OpenTelemetry tracing if OTEL_ENABLED=true
	if telemetry.Enabled() {
		if err := db.Use(tracing.NewPlugin()); err != nil {
			return nil, fmt.Errorf("failed to enable telemetry: %w", err)
		}
	}

	// Configure connection pool
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	maxConns := cfg.MaxConns
	if maxConns <= 0 {
		maxConns = 10
	}
	sqlDB.SetMaxOpenConns(maxConns)
	sqlDB.SetMaxIdleConns(maxConns / 2)
	sqlDB.SetConnMaxLifetime(time.Hour)
	sqlDB.SetConnMaxIdleTime(30 * time.Minute)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// NewRawRepositories opens a plain database/sql connection and wires the
// hand-written MySQL/Postgres repository implementations directly, bypassing
// GORM. Unlike NewRepositories it never migrates: callers are expected to
// have the index_metadata/benchmark_run/benchmark_row tables already in
// place, the traditional assumption of a hand-rolled SQL repository layer.
// There is no raw-SQL sqlite implementation, so DBTypeSQLite is rejected.
func NewRawRepositories(cfg *DBConfig) (*Repositories, error) {
	var driverName, dsn string

	switch DBType(cfg.Type) {
	case DBTypeMySQL:
		driverName = "mysql"
		dsn = fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&loc=Local",
			cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Database)
	case DBTypePostgres, DBType("postgresql"):
		driverName = "pgx"
		dsn = fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
			cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Database)
	default:
		return nil, fmt.Errorf("raw-sql backend does not support database type: %s", cfg.Type)
	}

	sqlDB, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	maxConns := cfg.MaxConns
	if maxConns <= 0 {
		maxConns = 10
	}
	sqlDB.SetMaxOpenConns(maxConns)
	sqlDB.SetMaxIdleConns(maxConns / 2)
	sqlDB.SetConnMaxLifetime(time.Hour)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	repos := &Repositories{sqlDB: sqlDB, dbType: cfg.Type}
	if DBType(cfg.Type) == DBTypeMySQL {
		repos.IndexMetadata = NewMySQLIndexMetadataRepository(sqlDB)
		repos.Benchmark = NewMySQLBenchmarkRepository(sqlDB)
	} else {
		repos.IndexMetadata = NewPostgresIndexMetadataRepository(sqlDB)
		repos.Benchmark = NewPostgresBenchmarkRepository(sqlDB)
	}
	return repos, nil
}

// Repositories holds all repository instances.
type Repositories struct {
	IndexMetadata IndexMetadataRepository
	Benchmark     BenchmarkRepository
	gormDB        *gorm.DB
	sqlDB         *sql.DB
	dbType        string
}

// NewRepositories creates all repositories using GORM, migrating the
// index_metadata/benchmark_run/benchmark_row tables if they don't exist yet.
func NewRepositories(gormDB *gorm.DB, dbType string) *Repositories {
	repos := &Repositories{gormDB: gormDB, dbType: dbType}

	_ = gormDB.AutoMigrate(
		&IndexMetadataRecord{},
		&BenchmarkRunRecord{},
		&BenchmarkRowRecord{},
	)

	repos.IndexMetadata = NewGormIndexMetadataRepository(gormDB)
	repos.Benchmark = NewGormBenchmarkRepository(gormDB)

	return repos
}

// Close closes the database connection, whichever backend opened it.
func (r *Repositories) Close() error {
	if r.sqlDB != nil {
		return r.sqlDB.Close()
	}
	if r.gormDB != nil {
		sqlDB, err := r.gormDB.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}
	return nil
}

// HealthCheck verifies the database connection is still alive.
func (r *Repositories) HealthCheck(ctx context.Context) error {
	return r.DB().PingContext(ctx)
}

// DB returns the underlying sql.DB connection.
func (r *Repositories) DB() *sql.DB {
	if r.sqlDB != nil {
		return r.sqlDB
	}
	sqlDB, _ := r.gormDB.DB()
	return sqlDB
}

// GormDB returns the underlying GORM DB instance. Repositories opened via
// NewRawRepositories have no GORM layer and return nil.
func (r *Repositories) GormDB() *gorm.DB {
	return r.gormDB
}
