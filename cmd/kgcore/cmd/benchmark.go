package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/kgcore/kgcore/internal/advisor"
	"github.com/kgcore/kgcore/internal/hypergraph"
	"github.com/kgcore/kgcore/internal/kgindex"
	"github.com/kgcore/kgcore/internal/statistics"
	"github.com/kgcore/kgcore/internal/storage"
	"github.com/kgcore/kgcore/internal/vertexset"
	"github.com/kgcore/kgcore/pkg/compression"
	"github.com/kgcore/kgcore/pkg/config"
	"github.com/kgcore/kgcore/pkg/model"
	"github.com/kgcore/kgcore/pkg/parallel"
	"github.com/kgcore/kgcore/pkg/utils"
	"github.com/kgcore/kgcore/pkg/writer"
)

var (
	benchPersist bool
	benchExport  string
)

var benchmarkCmd = &cobra.Command{
	Use:   "benchmark",
	Short: "Build all four representations and compare build/query cost",
	Long: `benchmark builds the naive, one-level, jump, and diagonal indices
over the same hypergraph, runs the same set of (k,g) probes against each,
and appends one CSV row recording build time, query time, and probe count
per representation.`,
	RunE: runBenchmark,
}

func init() {
	rootCmd.AddCommand(benchmarkCmd)
	benchmarkCmd.Flags().BoolVar(&benchPersist, "persist", false, "Persist the run and its rows (local sqlite file unless --config names a database)")
	benchmarkCmd.Flags().StringVar(&benchExport, "export", "", "Upload the CSV (and for cos, a gzip index snapshot): local|cos")
}

// representationTiming holds the measured cost for one representation.
type representationTiming struct {
	name            string
	buildDurationMS int64
	nodeCount       int64
	auxEntryCount   int64
	querySamples    int
	avgQueryMicros  float64
}

func runBenchmark(cmd *cobra.Command, args []string) error {
	if err := requireHGFile(); err != nil {
		return err
	}
	log := GetLogger()

	h, err := loadHypergraph()
	if err != nil {
		return fmt.Errorf("failed to load hypergraph: %w", err)
	}
	if h.NumVertices() == 0 {
		return fmt.Errorf("hypergraph %q is empty", hgFile)
	}
	log.Info("Loaded hypergraph: %d vertices, %d edges", h.NumVertices(), h.NumEdges())

	builds := []struct {
		name  string
		build buildFunc
	}{
		{"naive", kgindex.BuildNaive},
		{"one_level", kgindex.BuildOneLevel},
		{"jump", kgindex.BuildJump},
		{"diagonal", kgindex.BuildDiagonal},
	}

	// Build all four representations up front; build cost is measured here,
	// before the four are handed to ParallelAggregate as already-built,
	// immutable indexes to query concurrently.
	entries := make([]builtEntry, 0, len(builds))
	var naiveIdx *kgindex.Index
	for _, b := range builds {
		start := time.Now()
		idx := b.build(h)
		buildDuration := time.Since(start)
		if b.name == "naive" {
			naiveIdx = idx
		}
		entries = append(entries, builtEntry{name: b.name, idx: idx, buildDurationMS: buildDuration.Milliseconds()})

		stat := statistics.CalculateCompressionStats(idx)
		log.Info("%-10s build=%s nodes=%d aux=%d", b.name, buildDuration, stat.NodeCount, stat.AuxEntryCount)
	}

	probes := buildProbeSet(naiveIdx)

	// Run the fixed query workload against each of the four already-built,
	// immutable indexes concurrently: one ParallelAggregate worker per
	// representation, each in turn fanning its own probe set out across an
	// inner WorkerPool.
	aggregated := parallel.ParallelAggregate[builtEntry, string, *representationTiming](
		context.Background(), entries, parallel.DefaultPoolConfig(),
		func(entry builtEntry) (string, *representationTiming) {
			return entry.name, queryRepresentation(entry, probes)
		},
		func(existing, fresh *representationTiming) *representationTiming {
			return fresh
		},
	)

	timings := make(map[string]*representationTiming, len(aggregated))
	for name, t := range aggregated {
		timings[name] = t
		log.Info("%-10s build=%dms nodes=%d aux=%d avg_query=%.1fus",
			t.name, t.buildDurationMS, t.nodeCount, t.auxEntryCount, t.avgQueryMicros)
	}

	if naiveIdx != nil {
		recommendAdvisor(log, h, naiveIdx)
	}

	timestamp := time.Now().UTC().Format(time.RFC3339)
	dataset := filepath.Base(hgFile)
	row := []string{
		dataset,
		strconv.FormatInt(timings["naive"].buildDurationMS, 10),
		strconv.FormatInt(timings["one_level"].buildDurationMS, 10),
		strconv.FormatInt(timings["jump"].buildDurationMS, 10),
		strconv.FormatInt(timings["diagonal"].buildDurationMS, 10),
		formatMicrosAsMS(timings["naive"].avgQueryMicros*float64(timings["naive"].querySamples)),
		formatMicrosAsMS(timings["one_level"].avgQueryMicros*float64(timings["one_level"].querySamples)),
		formatMicrosAsMS(timings["jump"].avgQueryMicros*float64(timings["jump"].querySamples)),
		formatMicrosAsMS(timings["diagonal"].avgQueryMicros*float64(timings["diagonal"].querySamples)),
		strconv.Itoa(len(probes)),
		timestamp,
	}

	csvPath := benchmarkCSVPath(hgFile)
	csvWriter := writer.NewBenchmarkCSVWriter(csvPath)
	if err := csvWriter.AppendRow(row); err != nil {
		return fmt.Errorf("failed to write benchmark csv: %w", err)
	}
	log.Info("Wrote benchmark row to %s", csvPath)

	if benchPersist {
		if err := persistBenchmarkRun(log, hgFile, timings); err != nil {
			log.Warn("Failed to persist benchmark run: %v", err)
		}
	}

	if benchExport != "" {
		if err := exportBenchmarkArtifacts(log, csvPath, naiveIdx); err != nil {
			log.Warn("Failed to export benchmark artifacts: %v", err)
		}
	}

	return nil
}

// builtEntry pairs an already-built, immutable index with its build cost,
// the unit ParallelAggregate fans out over to query each representation
// concurrently.
type builtEntry struct {
	name            string
	idx             *kgindex.Index
	buildDurationMS int64
}

// queryRepresentation runs probes against entry's index, fanning the probe
// set itself out across an inner worker pool.
func queryRepresentation(entry builtEntry, probes []model.QueryRequest) *representationTiming {
	pool := parallel.NewWorkerPool[model.QueryRequest, *model.QueryResult](parallel.DefaultPoolConfig())
	idx := entry.idx

	results := pool.ExecuteFunc(context.Background(), probes,
		func(ctx context.Context, req model.QueryRequest) (*model.QueryResult, error) {
			qStart := time.Now()
			set := idx.Query(req.K, req.G)
			elapsed := time.Since(qStart)
			return &model.QueryResult{K: req.K, G: req.G, Size: set.Len(), DurationMicros: elapsed.Microseconds()}, nil
		})

	var totalMicros int64
	for _, r := range results {
		totalMicros += r.Result.DurationMicros
	}
	avg := 0.0
	if len(results) > 0 {
		avg = float64(totalMicros) / float64(len(results))
	}

	return &representationTiming{
		name:            entry.name,
		buildDurationMS: entry.buildDurationMS,
		nodeCount:       int64(idx.NodeCount()),
		auxEntryCount:   int64(idx.AuxEntryCount()),
		querySamples:    len(results),
		avgQueryMicros:  avg,
	}
}

// recommendAdvisor scores the four representations against the loaded
// hypergraph's shape and logs the ranked recommendations, so a benchmark
// run doubles as an explanation of which representation the shape favors.
func recommendAdvisor(log utils.Logger, h *hypergraph.Hypergraph, naiveIdx *kgindex.Index) {
	full := statistics.NewCoreStatsCalculator().Calculate(h, fullVertexSet(h))

	meanKMax := 0.0
	if gMax := naiveIdx.GMax(); gMax > 0 {
		total := 0
		for g := 1; g <= gMax; g++ {
			total += naiveIdx.KMax(g)
		}
		meanKMax = float64(total) / float64(gMax)
	}

	ctx := &advisor.RuleContext{
		VertexCount:  full.VertexCount,
		EdgeCount:    full.EdgeCount,
		MeanEdgeSize: full.MeanEdgeSize,
		GMax:         naiveIdx.GMax(),
		MeanKMax:     meanKMax,
	}

	recs := advisor.NewAdvisor().Advise(ctx)
	for _, rec := range recs {
		log.Info("advisor: %s (score=%.2f) — %s", rec.Representation, rec.Score, rec.Reason)
	}
}

// fullVertexSet returns a VertexSet containing every vertex in h, used to
// feed the whole-hypergraph shape (not a specific core's) to the advisor.
func fullVertexSet(h *hypergraph.Hypergraph) *vertexset.VertexSet {
	return vertexset.VertexSetOf(h.Vertices()...)
}

// buildProbeSet samples every (k,g) cell present in the naive grid, the
// cheapest exhaustive workload since the naive index enumerates the full
// grid by construction.
func buildProbeSet(idx *kgindex.Index) []model.QueryRequest {
	var probes []model.QueryRequest
	for g := 1; g <= idx.GMax(); g++ {
		kMax := idx.KMax(g)
		for k := 1; k <= kMax; k++ {
			probes = append(probes, model.QueryRequest{K: k, G: g})
		}
	}
	if len(probes) == 0 {
		probes = []model.QueryRequest{{K: 1, G: 1}}
	}
	return probes
}

func formatMicrosAsMS(micros float64) string {
	return strconv.FormatFloat(micros/1000.0, 'f', 3, 64)
}

// benchmarkCSVPath places the report next to the source file, following
// the "<dataset-dir>/<dataset-base>_benchmark.csv" convention.
func benchmarkCSVPath(sourcePath string) string {
	dir := filepath.Dir(sourcePath)
	base := filepath.Base(sourcePath)
	ext := filepath.Ext(base)
	base = strings.TrimSuffix(base, ext)
	return filepath.Join(dir, base+"_benchmark.csv")
}

func persistBenchmarkRun(log utils.Logger, sourcePath string, timings map[string]*representationTiming) error {
	dbCfg := resolvePersistDBConfig()

	repos, err := openRepositories(dbCfg)
	if err != nil {
		return err
	}
	defer repos.Close()

	run := model.NewBenchmarkRun(sourcePath)
	for _, name := range []string{"naive", "one_level", "jump", "diagonal"} {
		t := timings[name]
		run.Rows = append(run.Rows, model.BenchmarkRow{
			Representation:  t.name,
			BuildDurationMS: t.buildDurationMS,
			NodeCount:       t.nodeCount,
			AuxEntryCount:   t.auxEntryCount,
			QuerySamples:    t.querySamples,
			AvgQueryMicros:  t.avgQueryMicros,
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := repos.Benchmark.SaveRun(ctx, run); err != nil {
		return err
	}
	log.Info("Persisted benchmark run (id=%d)", run.ID)
	return nil
}

// exportBenchmarkArtifacts uploads the CSV and, for cos, a gzip snapshot of
// the naive index's metadata, via the configured storage backend.
func exportBenchmarkArtifacts(log utils.Logger, csvPath string, naiveIdx *kgindex.Index) error {
	cfg := GetConfig()
	storageCfg := &config.StorageConfig{Type: benchExport, LocalPath: "./storage"}
	if cfg != nil {
		storageCfg = &cfg.Storage
		storageCfg.Type = benchExport
	}

	store, err := storage.NewStorage(storageCfg)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	key := filepath.Base(csvPath)
	if err := store.UploadFile(ctx, key, csvPath); err != nil {
		return err
	}
	log.Info("Uploaded %s to %s storage", key, benchExport)

	if benchExport == "cos" && naiveIdx != nil {
		snapshot, err := gzipIndexSnapshot(naiveIdx)
		if err != nil {
			return err
		}
		snapshotKey := strings.TrimSuffix(key, filepath.Ext(key)) + "_index.json.gz"
		if err := store.Upload(ctx, snapshotKey, snapshot); err != nil {
			return err
		}
		log.Info("Uploaded %s snapshot to cos storage", snapshotKey)
	}

	return nil
}

// gzipIndexSnapshot serializes a naive index's shape (not its payload, which
// can be large) as gzipped JSON for the cos export path.
func gzipIndexSnapshot(idx *kgindex.Index) (io.Reader, error) {
	snapshot := struct {
		Kind          string `json:"kind"`
		GMax          int    `json:"g_max"`
		NodeCount     int    `json:"node_count"`
		AuxEntryCount int    `json:"aux_entry_count"`
	}{
		Kind:          idx.Kind().String(),
		GMax:          idx.GMax(),
		NodeCount:     idx.NodeCount(),
		AuxEntryCount: idx.AuxEntryCount(),
	}

	raw, err := json.Marshal(snapshot)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal index snapshot: %w", err)
	}

	gz := compression.NewGzipCompressor(compression.LevelDefault)
	compressed, err := gz.Compress(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to gzip index snapshot: %w", err)
	}

	return bytes.NewReader(compressed), nil
}
