// Package pool provides a fixed-size pool of worker goroutines draining one
// work queue.
package pool

import (
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/taskwell/taskwell/pkg/task"
	"github.com/taskwell/taskwell/pkg/types"
)

// pool states
const (
	stateCreated int32 = iota
	stateRunning
	stateStopped
)

// WorkQueue is the queue surface the pool drives. Both *task.Queue and
// *task.InstrumentedQueue satisfy it.
type WorkQueue interface {
	AddWork(task.Task)
	GetWork() task.Task
	Stop()
	Len() int
}

// Config defines configuration for a fixed pool
type Config struct {
	// Workers is the number of worker goroutines
	Workers int

	// Queue is the work queue to drain; a fresh unbounded queue when nil
	Queue WorkQueue

	// Clock for time operations (optional, defaults to real clock)
	Clock types.Clock

	// Logger receives lifecycle and failure events (optional, defaults to
	// slog.Default)
	Logger *slog.Logger

	// OnTaskComplete, when set, is invoked after every executed task with
	// its measured duration and outcome
	OnTaskComplete func(d time.Duration, failed bool)
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		Workers: 4,
		Clock:   types.NewRealClock(),
	}
}

// FixedPool runs a fixed number of worker goroutines over one queue. Workers
// exit when the queue stops; the pool itself is single-use: created, started
// once, stopped once.
type FixedPool struct {
	config *Config
	queue  WorkQueue

	state atomic.Int32
	wg    sync.WaitGroup

	totalProcessed atomic.Int64
	totalFailed    atomic.Int64
}

// New creates a fixed pool from config. A nil config uses defaults.
func New(config *Config) (*FixedPool, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if config.Workers <= 0 {
		return nil, fmt.Errorf("worker count must be positive, got %d", config.Workers)
	}
	if config.Clock == nil {
		config.Clock = types.NewRealClock()
	}
	if config.Logger == nil {
		config.Logger = slog.Default()
	}

	q := config.Queue
	if q == nil {
		q = task.NewQueue()
	}

	return &FixedPool{
		config: config,
		queue:  q,
	}, nil
}

// Queue returns the pool's work queue. Submit tasks against it with
// task.Submit and friends.
func (p *FixedPool) Queue() WorkQueue {
	return p.queue
}

// Start launches the worker goroutines.
func (p *FixedPool) Start() error {
	if !p.state.CompareAndSwap(stateCreated, stateRunning) {
		if p.state.Load() == stateRunning {
			return types.ErrPoolRunning
		}
		return types.ErrPoolStopped
	}

	p.config.Logger.Info("worker pool starting", "workers", p.config.Workers)

	for i := 0; i < p.config.Workers; i++ {
		p.wg.Add(1)
		go p.runWorker(i)
	}
	return nil
}

// runWorker is the per-goroutine worker loop with duration and failure
// accounting around each execution.
func (p *FixedPool) runWorker(id int) {
	defer p.wg.Done()

	logger := p.config.Logger
	clock := p.config.Clock
	logger.Debug("worker started", "worker_id", id)

	for {
		t := p.queue.GetWork()
		if !t.Valid() {
			logger.Debug("worker exiting", "worker_id", id)
			return
		}

		start := clock.Now()
		err := t.Execute()
		elapsed := clock.Since(start)

		if err != nil {
			p.totalFailed.Add(1)
			logger.Debug("task failed", "worker_id", id, "duration", elapsed, "error", err)
		} else {
			p.totalProcessed.Add(1)
		}

		if cb := p.config.OnTaskComplete; cb != nil {
			cb(elapsed, err != nil)
		}
	}
}

// Stop stops the queue, abandoning any tasks still queued, and waits for
// every worker to observe shutdown and exit. Stopping an already stopped
// pool is a no-op.
func (p *FixedPool) Stop() error {
	if !p.state.CompareAndSwap(stateRunning, stateStopped) {
		if p.state.Load() == stateStopped {
			return nil
		}
		return types.ErrPoolNotStarted
	}

	p.queue.Stop()
	p.wg.Wait()

	p.config.Logger.Info("worker pool stopped",
		"processed", p.totalProcessed.Load(),
		"failed", p.totalFailed.Load())
	return nil
}

// Stats is a snapshot of pool activity.
type Stats struct {
	Workers   int
	Processed int64
	Failed    int64
	Queued    int
}

// Stats returns a snapshot of pool activity.
func (p *FixedPool) Stats() Stats {
	return Stats{
		Workers:   p.config.Workers,
		Processed: p.totalProcessed.Load(),
		Failed:    p.totalFailed.Load(),
		Queued:    p.queue.Len(),
	}
}
