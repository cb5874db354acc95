package cmd

import (
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/kgcore/kgcore/internal/repository"
	"github.com/kgcore/kgcore/internal/vertexset"
)

// sortedVertexLine renders a VertexSet as a single space-separated, numerically
// sorted line, the way the interactive and core commands print results.
func sortedVertexLine(set *vertexset.VertexSet) string {
	if set == nil {
		return ""
	}
	vs := set.Slice()
	sort.Slice(vs, func(i, j int) bool { return vs[i] < vs[j] })

	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = strconv.FormatUint(uint64(v), 10)
	}
	return strings.Join(parts, " ")
}

// parseKG parses a whitespace- or comma-separated "k g" pair.
func parseKG(line string) (k, g int, ok bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return 0, 0, false
	}
	fields := strings.FieldsFunc(line, func(r rune) bool {
		return r == ' ' || r == '\t' || r == ','
	})
	if len(fields) != 2 {
		return 0, 0, false
	}
	kv, err1 := strconv.Atoi(fields[0])
	gv, err2 := strconv.Atoi(fields[1])
	if err1 != nil || err2 != nil {
		return 0, 0, false
	}
	return kv, gv, true
}

// rawSQLPersist selects the hand-written database/sql repositories
// (repository.NewRawRepositories) over GORM when --persist is combined with
// --raw-sql. Only meaningful for postgres/mysql, and only when tables were
// created out of band: unlike the GORM path it never migrates.
var rawSQLPersist bool

// openRepositories opens either the GORM-backed repositories (the default,
// self-migrating) or, with --raw-sql, the hand-written database/sql ones.
func openRepositories(dbCfg *repository.DBConfig) (*repository.Repositories, error) {
	if rawSQLPersist {
		return repository.NewRawRepositories(dbCfg)
	}
	gormDB, err := repository.NewGormDB(dbCfg)
	if err != nil {
		return nil, err
	}
	return repository.NewRepositories(gormDB, dbCfg.Type), nil
}

// resolvePersistDBConfig builds the repository.DBConfig for --persist. With
// --config, it uses the loaded database section as-is (postgres/mysql).
// Without it, --persist still works: it falls back to a local sqlite file
// named after the hypergraph source, so ad hoc runs never need a database
// to be already standing by.
func resolvePersistDBConfig() *repository.DBConfig {
	cfg := GetConfig()
	if cfg != nil {
		return &repository.DBConfig{
			Type:     cfg.Database.Type,
			Host:     cfg.Database.Host,
			Port:     cfg.Database.Port,
			Database: cfg.Database.Database,
			User:     cfg.Database.User,
			Password: cfg.Database.Password,
			MaxConns: cfg.Database.MaxConns,
		}
	}

	base := strings.TrimSuffix(filepath.Base(hgFile), filepath.Ext(hgFile))
	return &repository.DBConfig{
		Type:     "sqlite",
		Database: base + ".kgcore.db",
	}
}
