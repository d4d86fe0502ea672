package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/CatchCup_Go/internal/worker"
)

// MockJob is a simple job for testing
type MockJob struct {
	RunCount atomic.Int32
	Done     chan struct{}
}

func (m *MockJob) Process(ctx context.Context) error {
	m.RunCount.Add(1)
	select {
	case m.Done <- struct{}{}:
	default:
	}
	return nil
}

func TestScheduler(t *testing.T) {
	pool := worker.NewPool(1, 10)
	pool.Start()
	defer pool.Stop()

	sched := New(pool)
	defer sched.Stop()

	job := &MockJob{Done: make(chan struct{}, 10)}
	sched.Schedule(10*time.Millisecond, job)

	timeout := time.After(time.Second)
	runCount := 0
	for runCount < 2 {
		select {
		case <-job.Done:
			runCount++
		case <-timeout:
			t.Fatal("Timeout waiting for job execution")
		}
	}

	assert.GreaterOrEqual(t, runCount, 2)
}

func TestScheduler_ScheduleNowRunsImmediately(t *testing.T) {
	pool := worker.NewPool(1, 10)
	pool.Start()
	defer pool.Stop()

	sched := New(pool)
	defer sched.Stop()

	job := &MockJob{Done: make(chan struct{}, 10)}
	sched.ScheduleNow(time.Hour, job)

	select {
	case <-job.Done:
	case <-time.After(time.Second):
		t.Fatal("ScheduleNow did not enqueue right away")
	}
	assert.Equal(t, int32(1), job.RunCount.Load())
}

func TestScheduler_NonPositiveIntervalIsIgnored(t *testing.T) {
	pool := worker.NewPool(1, 10)
	pool.Start()
	defer pool.Stop()

	sched := New(pool)
	job := &MockJob{Done: make(chan struct{}, 1)}
	sched.ScheduleNow(0, job)
	sched.Stop()

	assert.Equal(t, int32(0), job.RunCount.Load())
}

func TestScheduler_StopEndsTicking(t *testing.T) {
	pool := worker.NewPool(1, 10)
	pool.Start()
	defer pool.Stop()

	sched := New(pool)
	job := &MockJob{Done: make(chan struct{}, 100)}
	sched.Schedule(5*time.Millisecond, job)

	<-job.Done
	sched.Stop()
	time.Sleep(20 * time.Millisecond)
	after := job.RunCount.Load()
	time.Sleep(30 * time.Millisecond)

	assert.Equal(t, after, job.RunCount.Load())
}
