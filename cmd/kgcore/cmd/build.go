package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/kgcore/kgcore/internal/hypergraph"
	"github.com/kgcore/kgcore/internal/kgindex"
	"github.com/kgcore/kgcore/pkg/model"
	"github.com/kgcore/kgcore/pkg/utils"
)

// buildFunc is one of kgindex.BuildNaive/BuildOneLevel/BuildJump/BuildDiagonal.
type buildFunc func(h *hypergraph.Hypergraph) *kgindex.Index

// buildOptions carries the flags shared by naive/one-level/jump/diagonal.
type buildOptions struct {
	k, g    int
	persist bool
}

// runBuild loads the hypergraph, builds the named representation, logs and
// prints its shape, optionally runs a single (k,g) query, and optionally
// persists an IndexMetadata row. It's the common body of naive/one-level/
// jump/diagonal; they differ only in which buildFunc they pass.
func runBuild(representation string, build buildFunc, opts buildOptions) error {
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

	start := time.Now()
	idx := build(h)
	buildDuration := time.Since(start)

	log.Info("Built %s index: %d nodes, %d aux entries, g_max=%d, in %s",
		representation, idx.NodeCount(), idx.AuxEntryCount(), idx.GMax(), buildDuration)

	if opts.persist {
		if err := persistIndexMetadata(log, representation, h, idx, buildDuration); err != nil {
			log.Warn("Failed to persist index metadata: %v", err)
		}
	}

	if opts.k > 0 || opts.g > 0 {
		k, g := opts.k, opts.g
		if k == 0 {
			k = 1
		}
		if g == 0 {
			g = 1
		}
		qStart := time.Now()
		set := idx.Query(k, g)
		qElapsed := time.Since(qStart)
		log.Info("(%d,%d)-core: %d vertices, queried in %s", k, g, set.Len(), qElapsed)
		fmt.Println(sortedVertexLine(set))
	}

	return nil
}

// persistIndexMetadata saves a build's shape to the optional gorm-backed
// repository. Without --config, it falls back to a local sqlite file so
// --persist works with zero setup.
func persistIndexMetadata(log utils.Logger, representation string, h *hypergraph.Hypergraph, idx *kgindex.Index, buildDuration time.Duration) error {
	dbCfg := resolvePersistDBConfig()

	repos, err := openRepositories(dbCfg)
	if err != nil {
		return err
	}
	defer repos.Close()

	meta := model.NewIndexMetadata(hgFile, representation)
	meta.GMax = idx.GMax()
	meta.VertexCount = int64(h.NumVertices())
	meta.EdgeCount = int64(h.NumEdges())
	meta.BuildDurationMS = buildDuration.Milliseconds()
	meta.NodeCount = int64(idx.NodeCount())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := repos.IndexMetadata.Save(ctx, meta); err != nil {
		return err
	}
	log.Info("Persisted index metadata (id=%d)", meta.ID)
	return nil
}
