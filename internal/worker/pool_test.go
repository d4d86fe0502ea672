package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/CatchCup_Go/internal/testing/leaktest"
)

const (
	testWorkerCount = 2
	testQueueSize   = 10
)

type testJob struct {
	executed *int32
	err      error
}

func (j *testJob) Process(ctx context.Context) error {
	atomic.AddInt32(j.executed, 1)
	return j.err
}

func TestPool(t *testing.T) {
	var executed int32
	pool := NewPool(testWorkerCount, testQueueSize)
	pool.Start()

	job := &testJob{executed: &executed}
	pool.Enqueue(job)
	pool.Enqueue(job)

	assert.Eventually(t, func() bool {
		return atomic.LoadInt32(&executed) == 2
	}, time.Second, 5*time.Millisecond)

	pool.Stop()
}

func TestPool_FailingJobDoesNotStopWorker(t *testing.T) {
	var executed int32
	pool := NewPool(1, testQueueSize)
	pool.Start()
	defer pool.Stop()

	pool.Enqueue(&testJob{executed: &executed, err: errors.New("boom")})
	pool.Enqueue(&testJob{executed: &executed})

	assert.Eventually(t, func() bool {
		return atomic.LoadInt32(&executed) == 2
	}, time.Second, 5*time.Millisecond)
}

func TestPool_TryEnqueueFull(t *testing.T) {
	var executed int32
	// Not started, so nothing drains the queue
	pool := NewPool(1, 1)

	assert.True(t, pool.TryEnqueue(&testJob{executed: &executed}))
	assert.False(t, pool.TryEnqueue(&testJob{executed: &executed}))
}

func TestPool_EnqueueAfterStopDoesNotBlock(t *testing.T) {
	var executed int32
	pool := NewPool(1, 0)
	pool.Start()
	pool.Stop()

	done := make(chan struct{})
	go func() {
		pool.Enqueue(&testJob{executed: &executed})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Enqueue blocked on a stopped pool")
	}
}

func TestPool_StopReleasesWorkers(t *testing.T) {
	checker := leaktest.NewGoroutineChecker(t)

	var executed int32
	pool := NewPool(4, 4)
	pool.Start()
	pool.Enqueue(&testJob{executed: &executed})
	pool.Stop()

	checker.Check(0)
}

type blockingJob struct {
	started   chan struct{}
	cancelled chan struct{}
}

func (j *blockingJob) Process(ctx context.Context) error {
	close(j.started)
	<-ctx.Done()
	close(j.cancelled)
	return ctx.Err()
}

func TestPool_StopCancelsRunningJob(t *testing.T) {
	pool := NewPool(1, 1)
	pool.Start()

	job := &blockingJob{started: make(chan struct{}), cancelled: make(chan struct{})}
	pool.Enqueue(job)
	<-job.started

	pool.Stop()

	select {
	case <-job.cancelled:
	default:
		t.Fatal("running job did not see cancellation")
	}
	assert.False(t, pool.TryEnqueue(&testJob{executed: new(int32)}), "stopped pool refuses work")
}

type panicJob struct{}

func (panicJob) Process(context.Context) error { panic("sweep exploded") }
func (panicJob) Name() string                  { return "panic" }

func TestPool_PanickingJobDoesNotKillWorker(t *testing.T) {
	var executed int32
	pool := NewPool(1, testQueueSize)
	pool.Start()
	defer pool.Stop()

	pool.Enqueue(panicJob{})
	pool.Enqueue(&testJob{executed: &executed})

	assert.Eventually(t, func() bool {
		return atomic.LoadInt32(&executed) == 1
	}, time.Second, 5*time.Millisecond)
}

func TestJobName(t *testing.T) {
	assert.Equal(t, "panic", jobName(panicJob{}))
	assert.Equal(t, "finalize_sweep", jobName(NewFinalizeSweepJob(nil, nil)))
	assert.Equal(t, "*worker.testJob", jobName(&testJob{}))
}
