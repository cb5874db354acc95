// Package scheduler dispatches incoming (k,g)-core query requests onto a
// bounded worker pool with priority-based admission control.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/kgcore/kgcore/internal/scheduler/source"
	"github.com/kgcore/kgcore/pkg/config"
	"github.com/kgcore/kgcore/pkg/model"
	"github.com/kgcore/kgcore/pkg/utils"
)

// Job is a single query request queued for processing, annotated with the
// provenance and priority the originating source event carried.
type Job struct {
	ID       string
	Request  model.QueryRequest
	Priority int // Higher value = higher priority
}

// QueryProcessor resolves a single queued job against the active index.
type QueryProcessor interface {
	Process(ctx context.Context, job *Job) (*model.QueryResult, error)
}

// SchedulerConfig holds scheduler configuration.
type SchedulerConfig struct {
	PollInterval  time.Duration // How often housekeeping ticks run
	WorkerCount   int           // Number of concurrent workers
	PrioritySlots int           // Reserved slots for high priority jobs
	TaskBatchSize int           // Job queue capacity multiplier
}

// DefaultSchedulerConfig returns default scheduler configuration.
func DefaultSchedulerConfig() *SchedulerConfig {
	return &SchedulerConfig{
		PollInterval:  2 * time.Second,
		WorkerCount:   5,
		PrioritySlots: 2,
		TaskBatchSize: 10,
	}
}

// FromConfig creates scheduler config from application config.
func FromConfig(cfg *config.SchedulerConfig) *SchedulerConfig {
	return &SchedulerConfig{
		PollInterval:  time.Duration(cfg.PollInterval) * time.Second,
		WorkerCount:   cfg.WorkerCount,
		PrioritySlots: cfg.PrioritySlots,
		TaskBatchSize: cfg.TaskBatchSize,
	}
}

// Scheduler manages query job scheduling and worker pool.
type Scheduler struct {
	config    *SchedulerConfig
	processor QueryProcessor
	logger    utils.Logger

	aggregator *source.Aggregator

	workerPool chan struct{} // Semaphore for worker count
	jobQueue   chan *jobEvent
	wg         sync.WaitGroup

	running bool
	stopCh  chan struct{}
}

// jobEvent pairs a queued Job with the source event it was derived from, so
// the event can be acked or nacked once processing finishes.
type jobEvent struct {
	job   *Job
	event *source.QueryEvent
}

// New creates a new Scheduler wired to a source aggregator.
func New(config *SchedulerConfig, aggregator *source.Aggregator, processor QueryProcessor, logger utils.Logger) *Scheduler {
	if config == nil {
		config = DefaultSchedulerConfig()
	}
	if logger == nil {
		logger = utils.NewDefaultLogger(utils.LevelInfo, nil)
	}

	return &Scheduler{
		config:     config,
		aggregator: aggregator,
		processor:  processor,
		logger:     logger,
		workerPool: make(chan struct{}, config.WorkerCount),
		jobQueue:   make(chan *jobEvent, config.TaskBatchSize*2),
		stopCh:     make(chan struct{}),
	}
}

// Start starts the scheduler.
func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("Starting scheduler with %d workers", s.config.WorkerCount)

	s.running = true

	for i := 0; i < s.config.WorkerCount; i++ {
		s.workerPool <- struct{}{}
	}

	if err := s.aggregator.Start(ctx); err != nil {
		return err
	}

	go s.sourceEventLoop(ctx)
	go s.processLoop(ctx)

	return nil
}

// Stop stops the scheduler gracefully.
func (s *Scheduler) Stop() {
	s.logger.Info("Stopping scheduler...")
	s.running = false
	close(s.stopCh)

	s.wg.Wait()
	s.logger.Info("Scheduler stopped")
}

// shouldAcceptJob determines if a job should be accepted based on priority.
func (s *Scheduler) shouldAcceptJob(job *Job) bool {
	activeWorkers := s.config.WorkerCount - len(s.workerPool)
	reservedSlots := s.config.WorkerCount - s.config.PrioritySlots

	if job.Priority > 0 {
		return activeWorkers < s.config.WorkerCount
	}

	return activeWorkers < reservedSlots
}

// processLoop processes queued jobs.
func (s *Scheduler) processLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-s.stopCh:
			return
		case je := <-s.jobQueue:
			select {
			case <-s.workerPool:
				s.wg.Add(1)
				go s.processJob(ctx, je)
			case <-ctx.Done():
				return
			case <-s.stopCh:
				return
			}
		}
	}
}

// processJob resolves a single job and acks/nacks its originating event.
func (s *Scheduler) processJob(ctx context.Context, je *jobEvent) {
	defer func() {
		s.workerPool <- struct{}{}
		s.wg.Done()
	}()

	job := je.job
	s.logger.Info("Processing query %s (k=%d, g=%d)", job.ID, job.Request.K, job.Request.G)

	startTime := time.Now()
	_, err := s.processor.Process(ctx, job)
	duration := time.Since(startTime)

	if err != nil {
		s.logger.Error("Query %s failed after %v: %v", job.ID, duration, err)
		if je.event != nil {
			if nackErr := s.aggregator.Nack(ctx, je.event, err.Error()); nackErr != nil {
				s.logger.Error("Failed to nack event: %v", nackErr)
			}
		}
		return
	}

	s.logger.Info("Query %s resolved in %v", job.ID, duration)
	if je.event != nil {
		if ackErr := s.aggregator.Ack(ctx, je.event); ackErr != nil {
			s.logger.Error("Failed to ack event: %v", ackErr)
		}
	}
}

// sourceEventLoop receives query events from the aggregator and queues them for processing.
func (s *Scheduler) sourceEventLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-s.stopCh:
			return
		case event, ok := <-s.aggregator.Events():
			if !ok {
				s.logger.Info("Aggregator channel closed")
				return
			}

			job := s.convertEventToJob(event)

			if !s.shouldAcceptJob(job) {
				s.logger.Debug("Skipping query %s due to priority constraints", job.ID)
				continue
			}

			select {
			case s.jobQueue <- &jobEvent{job: job, event: event}:
				s.logger.Info("Queued query %s (k=%d, g=%d) from source %s/%s",
					job.ID, job.Request.K, job.Request.G, event.SourceType, event.SourceName)
			default:
				s.logger.Warn("Job queue full, nacking query %s", job.ID)
				if err := s.aggregator.Nack(ctx, event, "job queue full"); err != nil {
					s.logger.Error("Failed to nack event: %v", err)
				}
			}
		}
	}
}

// convertEventToJob converts a source.QueryEvent to a scheduler.Job.
func (s *Scheduler) convertEventToJob(event *source.QueryEvent) *Job {
	return &Job{
		ID:       event.ID,
		Request:  event.Request,
		Priority: event.Priority,
	}
}

// Stats returns current scheduler statistics.
func (s *Scheduler) Stats() SchedulerStats {
	return SchedulerStats{
		ActiveWorkers: s.config.WorkerCount - len(s.workerPool),
		TotalWorkers:  s.config.WorkerCount,
		QueuedJobs:    len(s.jobQueue),
		Running:       s.running,
	}
}

// SchedulerStats holds scheduler statistics.
type SchedulerStats struct {
	ActiveWorkers int  `json:"active_workers"`
	TotalWorkers  int  `json:"total_workers"`
	QueuedJobs    int  `json:"queued_jobs"`
	Running       bool `json:"running"`
}
