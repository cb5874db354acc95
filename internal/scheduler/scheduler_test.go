package scheduler

import (
	"context"
	"io"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/kgcore/kgcore/internal/scheduler/source"
	"github.com/kgcore/kgcore/pkg/model"
	"github.com/kgcore/kgcore/pkg/utils"
)

// MockQueryProcessor is a mock implementation of QueryProcessor.
type MockQueryProcessor struct {
	mock.Mock
	processedCount int32
}

func (m *MockQueryProcessor) Process(ctx context.Context, job *Job) (*model.QueryResult, error) {
	atomic.AddInt32(&m.processedCount, 1)
	args := m.Called(ctx, job)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.QueryResult), args.Error(1)
}

func (m *MockQueryProcessor) GetProcessedCount() int32 {
	return atomic.LoadInt32(&m.processedCount)
}

func TestScheduler_New(t *testing.T) {
	processor := &MockQueryProcessor{}
	logger := utils.NewDefaultLogger(utils.LevelDebug, io.Discard)

	aggregator := source.NewAggregator(nil, 10, logger)

	t.Run("WithDefaultConfig", func(t *testing.T) {
		s := New(nil, aggregator, processor, nil)
		require.NotNil(t, s)
		assert.Equal(t, 5, s.config.WorkerCount)
		assert.Equal(t, 2*time.Second, s.config.PollInterval)
	})

	t.Run("WithCustomConfig", func(t *testing.T) {
		config := &SchedulerConfig{
			PollInterval:  5 * time.Second,
			WorkerCount:   10,
			PrioritySlots: 3,
			TaskBatchSize: 20,
		}
		s := New(config, aggregator, processor, nil)
		require.NotNil(t, s)
		assert.Equal(t, 10, s.config.WorkerCount)
		assert.Equal(t, 5*time.Second, s.config.PollInterval)
	})
}

func TestScheduler_Stats(t *testing.T) {
	processor := &MockQueryProcessor{}
	logger := utils.NewDefaultLogger(utils.LevelDebug, io.Discard)
	aggregator := source.NewAggregator(nil, 10, logger)

	config := &SchedulerConfig{
		WorkerCount: 5,
	}

	s := New(config, aggregator, processor, nil)

	stats := s.Stats()
	// Before Start(), workerPool is empty, so ActiveWorkers = WorkerCount - 0 = WorkerCount
	assert.Equal(t, 5, stats.ActiveWorkers)
	assert.Equal(t, 5, stats.TotalWorkers)
	assert.False(t, stats.Running)
}

func TestScheduler_ShouldAcceptJob(t *testing.T) {
	processor := &MockQueryProcessor{}
	logger := utils.NewDefaultLogger(utils.LevelDebug, io.Discard)
	aggregator := source.NewAggregator(nil, 10, logger)

	config := &SchedulerConfig{
		WorkerCount:   5,
		PrioritySlots: 2,
		PollInterval:  100 * time.Millisecond,
		TaskBatchSize: 5,
	}

	s := New(config, aggregator, processor, logger)

	for i := 0; i < config.WorkerCount; i++ {
		s.workerPool <- struct{}{}
	}

	t.Run("HighPriorityJob", func(t *testing.T) {
		job := &Job{Priority: 1}
		assert.True(t, s.shouldAcceptJob(job))
	})

	t.Run("NormalPriorityJob", func(t *testing.T) {
		job := &Job{Priority: 0}
		assert.True(t, s.shouldAcceptJob(job))
	})
}

func TestScheduler_StartStop(t *testing.T) {
	processor := &MockQueryProcessor{}
	logger := utils.NewDefaultLogger(utils.LevelDebug, io.Discard)
	aggregator := source.NewAggregator(nil, 10, logger)

	config := &SchedulerConfig{
		PollInterval:  100 * time.Millisecond,
		WorkerCount:   2,
		PrioritySlots: 1,
		TaskBatchSize: 5,
	}

	s := New(config, aggregator, processor, logger)

	ctx, cancel := context.WithCancel(context.Background())

	err := s.Start(ctx)
	require.NoError(t, err)

	stats := s.Stats()
	assert.True(t, stats.Running)

	time.Sleep(200 * time.Millisecond)

	cancel()
	s.Stop()

	stats = s.Stats()
	assert.False(t, stats.Running)
}

func TestDefaultSchedulerConfig(t *testing.T) {
	config := DefaultSchedulerConfig()
	assert.Equal(t, 2*time.Second, config.PollInterval)
	assert.Equal(t, 5, config.WorkerCount)
	assert.Equal(t, 2, config.PrioritySlots)
	assert.Equal(t, 10, config.TaskBatchSize)
}

func TestScheduler_ConvertEventToJob(t *testing.T) {
	processor := &MockQueryProcessor{}
	logger := utils.NewDefaultLogger(utils.LevelDebug, io.Discard)
	aggregator := source.NewAggregator(nil, 10, logger)

	s := New(nil, aggregator, processor, logger)

	event := source.NewQueryEvent(model.QueryRequest{K: 3, G: 1}, source.SourceTypeHTTP, "test-source")
	event.ID = "evt-1"
	job := s.convertEventToJob(event)

	assert.Equal(t, "evt-1", job.ID)
	assert.Equal(t, 3, job.Request.K)
	assert.Equal(t, 1, job.Request.G)
	assert.Equal(t, 1, job.Priority) // shallow g => high priority
}

func TestScheduler_ConvertEventToJob_Priority(t *testing.T) {
	processor := &MockQueryProcessor{}
	logger := utils.NewDefaultLogger(utils.LevelDebug, io.Discard)
	aggregator := source.NewAggregator(nil, 10, logger)

	s := New(nil, aggregator, processor, logger)

	t.Run("ShallowGHighPriority", func(t *testing.T) {
		event := source.NewQueryEvent(model.QueryRequest{K: 4, G: 1}, source.SourceTypeHTTP, "test-source")
		job := s.convertEventToJob(event)
		assert.Equal(t, 1, job.Priority)
	})

	t.Run("DeepGNormalPriority", func(t *testing.T) {
		event := source.NewQueryEvent(model.QueryRequest{K: 4, G: 9}, source.SourceTypeHTTP, "test-source")
		job := s.convertEventToJob(event)
		assert.Equal(t, 0, job.Priority)
	})
}
