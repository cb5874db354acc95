package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/kgcore/kgcore/internal/kgindex"
	"github.com/kgcore/kgcore/pkg/model"
	"github.com/kgcore/kgcore/pkg/utils"
)

// DefaultQueryProcessor resolves queued jobs against a single frozen index
// held in memory. The index is built once (by the owning command) and never
// mutated while the scheduler is running, and kgindex.Index.Query only reads
// it, so concurrent workers can query it without any locking.
type DefaultQueryProcessor struct {
	index  *kgindex.Index
	logger utils.Logger
}

// NewDefaultQueryProcessor creates a processor bound to a built index.
func NewDefaultQueryProcessor(index *kgindex.Index, logger utils.Logger) *DefaultQueryProcessor {
	if logger == nil {
		logger = utils.NewDefaultLogger(utils.LevelInfo, nil)
	}
	return &DefaultQueryProcessor{index: index, logger: logger}
}

// Process resolves a single (k,g) query against the bound index.
func (p *DefaultQueryProcessor) Process(ctx context.Context, job *Job) (*model.QueryResult, error) {
	if p.index == nil {
		return nil, fmt.Errorf("scheduler: no index loaded")
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	start := time.Now()
	set := p.index.Query(job.Request.K, job.Request.G)
	elapsed := time.Since(start)

	result := &model.QueryResult{
		K:              job.Request.K,
		G:              job.Request.G,
		DurationMicros: elapsed.Microseconds(),
	}
	if set != nil {
		slice := set.Slice()
		vertices := make([]uint32, len(slice))
		for i, v := range slice {
			vertices[i] = uint32(v)
		}
		result.Vertices = vertices
		result.Size = len(vertices)
	}

	p.logger.Debug("resolved query k=%d g=%d -> %d vertices in %v", job.Request.K, job.Request.G, result.Size, elapsed)

	return result, nil
}
