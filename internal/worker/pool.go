package worker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/CatchCup_Go/internal/logger"
)

// Job is a unit of background work, such as one finalize sweep.
type Job interface {
	Process(ctx context.Context) error
}

// Named jobs report a stable name in logs instead of their Go type.
type Named interface {
	Name() string
}

// Pool runs queued jobs on a fixed set of goroutines. Jobs receive a context
// that is cancelled when the pool stops, so a long sweep ends between days.
type Pool struct {
	workers  int
	jobQueue chan Job
	wg       sync.WaitGroup
	ctx      context.Context
	cancel   context.CancelFunc
	stopOnce sync.Once
}

func NewPool(workers int, queueSize int) *Pool {
	if workers < 1 {
		workers = 1
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Pool{
		workers:  workers,
		jobQueue: make(chan Job, queueSize),
		ctx:      ctx,
		cancel:   cancel,
	}
}

func (p *Pool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker(i)
	}
}

func (p *Pool) worker(id int) {
	defer p.wg.Done()
	for {
		select {
		case <-p.ctx.Done():
			return
		case job := <-p.jobQueue:
			p.run(id, job)
		}
	}
}

func (p *Pool) run(id int, job Job) {
	name := jobName(job)
	log := logger.FromContext(p.ctx).With("worker", id, "job", name)
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			log.Error(LogMsgWorkerJobPanicked, "panic", r)
		}
	}()

	if err := job.Process(p.ctx); err != nil {
		log.Error(LogMsgWorkerJobFailed, "error", err, "duration", time.Since(start))
		return
	}
	log.Debug(LogMsgWorkerJobDone, "duration", time.Since(start))
}

func jobName(job Job) string {
	if n, ok := job.(Named); ok {
		return n.Name()
	}
	return fmt.Sprintf("%T", job)
}

// Enqueue blocks while the queue is full. Jobs offered after Stop are dropped.
func (p *Pool) Enqueue(job Job) {
	select {
	case p.jobQueue <- job:
	case <-p.ctx.Done():
	}
}

// TryEnqueue adds a job without blocking and reports whether it was queued.
func (p *Pool) TryEnqueue(job Job) bool {
	if p.ctx.Err() != nil {
		return false
	}
	select {
	case p.jobQueue <- job:
		return true
	default:
		return false
	}
}

// Stop cancels running jobs and waits for the workers to exit. Queued jobs
// that have not started are discarded.
func (p *Pool) Stop() {
	p.stopOnce.Do(p.cancel)
	p.wg.Wait()
}
