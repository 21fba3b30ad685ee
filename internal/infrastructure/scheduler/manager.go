// Package scheduler runs the raffle's periodic batch jobs on gocron v2.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"

	"raffle/internal/shared/biztime"
	"raffle/internal/shared/goroutine"
	"raffle/internal/shared/logger"
)

// BatchJob defines the interface for a scheduled batch processing job.
// Each Execute call processes a batch and returns the number of items processed.
type BatchJob interface {
	Execute(ctx context.Context) (int, error)
}

// JobMetrics records the outcome of every run.
type JobMetrics interface {
	JobRun(job string, success bool)
}

const retryNotificationsJob = "retry_winner_notifications"

// SchedulerManager owns a single gocron scheduler for all jobs.
type SchedulerManager struct {
	scheduler gocron.Scheduler
	logger    logger.Interface
	metrics   JobMetrics

	started   bool
	startedMu sync.Mutex
}

// NewSchedulerManager creates a SchedulerManager whose cron expressions are
// evaluated in the business timezone.
func NewSchedulerManager(log logger.Interface, metrics JobMetrics) (*SchedulerManager, error) {
	s, err := gocron.NewScheduler(
		gocron.WithLocation(biztime.Location()),
		gocron.WithLogger(cronLogger{log: log}),
	)
	if err != nil {
		return nil, err
	}

	return &SchedulerManager{
		scheduler: s,
		logger:    log,
		metrics:   metrics,
	}, nil
}

// RegisterWinnerNotificationRetry schedules the job that resends failed or
// stale winner notifications. A run that is still going when the next tick
// fires pushes that tick back instead of overlapping.
func (m *SchedulerManager) RegisterWinnerNotificationRetry(spec string, job BatchJob, timeout time.Duration) error {
	if timeout <= 0 {
		timeout = 5 * time.Minute
	}

	_, err := m.scheduler.NewJob(
		gocron.CronJob(spec, false),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			defer cancel()
			m.run(ctx, retryNotificationsJob, job)
		}),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithTags("notification", "retry"),
		gocron.WithName(retryNotificationsJob),
	)
	if err != nil {
		return fmt.Errorf("failed to register %s job: %w", retryNotificationsJob, err)
	}

	m.logger.Infow("registered winner notification retry job", "schedule", spec)
	return nil
}

func (m *SchedulerManager) run(ctx context.Context, name string, job BatchJob) {
	m.logger.Debugw("scheduled job started", "job", name)

	startTime := biztime.NowUTC()
	count, err := job.Execute(ctx)
	if m.metrics != nil {
		m.metrics.JobRun(name, err == nil)
	}
	if err != nil {
		// graceful shutdown
		if ctx.Err() != nil {
			return
		}
		m.logger.Errorw("scheduled job failed",
			"job", name,
			"error", err,
			"duration", time.Since(startTime),
		)
		return
	}

	if count > 0 {
		m.logger.Infow("scheduled job processed items",
			"job", name,
			"count", count,
			"duration", time.Since(startTime),
		)
	} else {
		m.logger.Debugw("scheduled job had nothing to process",
			"job", name,
			"duration", time.Since(startTime),
		)
	}
}

// Start begins running registered jobs. Calling it twice is a no-op.
func (m *SchedulerManager) Start() {
	m.startedMu.Lock()
	defer m.startedMu.Unlock()

	if m.started {
		return
	}
	m.scheduler.Start()
	m.started = true
	m.logger.Infow("scheduler started", "jobs", len(m.scheduler.Jobs()))
}

// Shutdown stops the scheduler and waits for running jobs until ctx is done.
func (m *SchedulerManager) Shutdown(ctx context.Context) error {
	m.startedMu.Lock()
	defer m.startedMu.Unlock()

	if !m.started {
		return nil
	}
	m.started = false

	stopped := goroutine.SafeGoErr(m.logger, "scheduler-shutdown", m.scheduler.Shutdown)
	select {
	case err := <-stopped:
		if err != nil {
			return fmt.Errorf("scheduler shutdown: %w", err)
		}
		m.logger.Infow("scheduler stopped")
		return nil
	case <-ctx.Done():
		return fmt.Errorf("scheduler shutdown: %w", ctx.Err())
	}
}

// IsStarted reports whether Start has been called without a later Shutdown.
func (m *SchedulerManager) IsStarted() bool {
	m.startedMu.Lock()
	defer m.startedMu.Unlock()
	return m.started
}

// cronLogger adapts logger.Interface to gocron.Logger.
type cronLogger struct {
	log logger.Interface
}

func (l cronLogger) Debug(msg string, args ...any) { l.log.Debugw("gocron: "+msg, args...) }
func (l cronLogger) Info(msg string, args ...any)  { l.log.Debugw("gocron: "+msg, args...) }
func (l cronLogger) Warn(msg string, args ...any)  { l.log.Warnw("gocron: "+msg, args...) }
func (l cronLogger) Error(msg string, args ...any) { l.log.Errorw("gocron: "+msg, args...) }
