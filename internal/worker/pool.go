// Package worker provides a small fixed-size pool for fire-and-forget
// background tasks, used to run compliance validation off the request path.
//
// Tasks are detached from the submitting request: they receive a fresh
// context with the pool's task timeout, so client disconnects and request
// cancellation never abort a validation already underway. Task failures are
// logged and dropped; they must never surface to the request that scheduled
// them.
package worker

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Defaults applied when the corresponding Pool field is zero.
const (
	DefaultWorkers     = 4
	DefaultQueueSize   = 64
	DefaultTaskTimeout = 2 * time.Minute
)

// Task is a unit of detached background work. The context carries the task
// timeout, not the lifetime of any HTTP request.
type Task struct {
	Name string
	Run  func(ctx context.Context) error
}

// Pool executes submitted tasks on a fixed number of goroutines. The zero
// value is not usable; construct with New and stop with Close.
type Pool struct {
	log         zerolog.Logger
	taskTimeout time.Duration

	tasks chan Task
	wg    sync.WaitGroup

	mu     sync.Mutex
	closed bool
}

// New starts a pool with the given worker count, queue size, and per-task
// timeout. Non-positive values fall back to the package defaults.
func New(workers, queueSize int, taskTimeout time.Duration, log zerolog.Logger) *Pool {
	if workers <= 0 {
		workers = DefaultWorkers
	}
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}
	if taskTimeout <= 0 {
		taskTimeout = DefaultTaskTimeout
	}
	p := &Pool{
		log:         log,
		taskTimeout: taskTimeout,
		tasks:       make(chan Task, queueSize),
	}
	p.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go p.worker()
	}
	return p
}

// Go schedules fn for background execution. When the queue is full or the
// pool is closed the task is logged and dropped; submission never blocks the
// caller.
func (p *Pool) Go(name string, fn func(ctx context.Context) error) {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		p.log.Warn().Str("task", name).Msg("background task dropped: pool closed")
		return
	}
	select {
	case p.tasks <- Task{Name: name, Run: fn}:
		p.mu.Unlock()
	default:
		p.mu.Unlock()
		p.log.Warn().Str("task", name).Msg("background task dropped: queue full")
	}
}

// Close stops accepting tasks and waits for queued ones to drain, up to the
// given grace period. It returns false when the deadline expired with tasks
// still running.
func (p *Pool) Close(grace time.Duration) bool {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return true
	}
	p.closed = true
	close(p.tasks)
	p.mu.Unlock()

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return true
	case <-time.After(grace):
		p.log.Warn().Dur("grace", grace).Msg("worker pool drain deadline expired")
		return false
	}
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for t := range p.tasks {
		p.run(t)
	}
}

func (p *Pool) run(t Task) {
	defer func() {
		if r := recover(); r != nil {
			p.log.Error().Str("task", t.Name).Interface("panic", r).Msg("background task panicked")
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), p.taskTimeout)
	defer cancel()

	start := time.Now()
	if err := t.Run(ctx); err != nil {
		p.log.Error().Err(err).Str("task", t.Name).Dur("elapsed", time.Since(start)).Msg("background task failed")
		return
	}
	p.log.Debug().Str("task", t.Name).Dur("elapsed", time.Since(start)).Msg("background task done")
}
