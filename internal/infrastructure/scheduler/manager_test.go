package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"raffle/internal/shared/logger"
)

type countingJob struct {
	mu    sync.Mutex
	calls int
	err   error
}

func (j *countingJob) Execute(context.Context) (int, error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.calls++
	return 1, j.err
}

func (j *countingJob) Calls() int {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.calls
}

// slowJob outlasts its schedule interval and tracks how many runs overlap.
type slowJob struct {
	mu      sync.Mutex
	running int
	maxSeen int
	calls   int
	hold    time.Duration
}

func (j *slowJob) Execute(ctx context.Context) (int, error) {
	j.mu.Lock()
	j.running++
	j.calls++
	if j.running > j.maxSeen {
		j.maxSeen = j.running
	}
	j.mu.Unlock()

	select {
	case <-time.After(j.hold):
	case <-ctx.Done():
	}

	j.mu.Lock()
	j.running--
	j.mu.Unlock()
	return 0, nil
}

func (j *slowJob) stats() (calls, maxSeen int) {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.calls, j.maxSeen
}

type recordedRuns struct {
	mu   sync.Mutex
	runs map[bool]int
}

func (r *recordedRuns) JobRun(_ string, success bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.runs == nil {
		r.runs = map[bool]int{}
	}
	r.runs[success]++
}

func TestSchedulerManager_RunRecordsOutcome(t *testing.T) {
	metrics := &recordedRuns{}
	m, err := NewSchedulerManager(logger.NewNop(), metrics)
	require.NoError(t, err)

	m.run(context.Background(), "ok", &countingJob{})
	m.run(context.Background(), "broken", &countingJob{err: errors.New("db down")})

	assert.Equal(t, 1, metrics.runs[true])
	assert.Equal(t, 1, metrics.runs[false])
}

func TestSchedulerManager_RejectsBadSchedule(t *testing.T) {
	m, err := NewSchedulerManager(logger.NewNop(), nil)
	require.NoError(t, err)

	err = m.RegisterWinnerNotificationRetry("every now and then", &countingJob{}, time.Second)
	assert.Error(t, err)
}

func TestSchedulerManager_RunsRegisteredJob(t *testing.T) {
	m, err := NewSchedulerManager(logger.NewNop(), nil)
	require.NoError(t, err)
	job := &countingJob{}

	require.NoError(t, m.RegisterWinnerNotificationRetry("@every 1s", job, time.Second))
	m.Start()
	m.Start()
	assert.True(t, m.IsStarted())

	assert.Eventually(t, func() bool { return job.Calls() > 0 }, 3*time.Second, 50*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, m.Shutdown(ctx))
	assert.False(t, m.IsStarted())
}

func TestSchedulerManager_SlowRunsDoNotOverlap(t *testing.T) {
	m, err := NewSchedulerManager(logger.NewNop(), nil)
	require.NoError(t, err)
	job := &slowJob{hold: 1500 * time.Millisecond}

	require.NoError(t, m.RegisterWinnerNotificationRetry("@every 1s", job, 5*time.Second))
	m.Start()

	assert.Eventually(t, func() bool {
		calls, _ := job.stats()
		return calls >= 2
	}, 6*time.Second, 50*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, m.Shutdown(ctx))

	_, maxSeen := job.stats()
	assert.Equal(t, 1, maxSeen)
}
