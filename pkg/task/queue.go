package task

import (
	"sync"
)

// Queue is a blocking multi-producer/multi-consumer container of Tasks with
// a one-way shutdown signal. All methods are safe for concurrent use.
type Queue struct {
	mu      sync.Mutex
	work    *sync.Cond
	tasks   []Task
	stopped bool
}

// NewQueue creates an empty, unbounded work queue.
func NewQueue() *Queue {
	q := &Queue{}
	q.work = sync.NewCond(&q.mu)
	return q
}

// AddWork appends t and wakes one blocked consumer. The queue is unbounded,
// so AddWork never blocks. After Stop the task is not retained: its result
// is abandoned immediately so observers fail instead of hanging forever.
func (q *Queue) AddWork(t Task) {
	q.add(t)
}

// add reports whether the task was accepted.
func (q *Queue) add(t Task) bool {
	q.mu.Lock()
	if q.stopped {
		q.mu.Unlock()
		t.discard()
		return false
	}
	q.tasks = append(q.tasks, t)
	q.work.Signal()
	q.mu.Unlock()
	return true
}

// GetWork blocks while the queue is empty and not stopped. Once stopped it
// returns the zero (invalid) Task immediately, regardless of whether tasks
// remain queued. Otherwise it removes and returns the most recently added
// task: dequeue order is stack discipline, not FIFO, and callers must not
// assume submission order is preserved across concurrent workers.
func (q *Queue) GetWork() Task {
	q.mu.Lock()
	defer q.mu.Unlock()
	for !q.stopped && len(q.tasks) == 0 {
		q.work.Wait()
	}
	var t Task
	if !q.stopped {
		n := len(q.tasks) - 1
		t = q.tasks[n]
		q.tasks[n] = Task{}
		q.tasks = q.tasks[:n]
	}
	return t
}

// Stop sets the shutdown flag and wakes every blocked consumer. The flag is
// one-way: a stopped queue never restarts. Tasks still queued are never
// executed; their results are abandoned here so pending Get calls return
// types.ErrResultAbandoned. Idempotent and safe to call concurrently with
// AddWork and GetWork.
func (q *Queue) Stop() {
	q.stop()
}

// stop reports how many queued tasks were abandoned.
func (q *Queue) stop() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.stopped {
		return 0
	}
	q.stopped = true
	n := len(q.tasks)
	for i := range q.tasks {
		q.tasks[i].discard()
	}
	q.tasks = nil
	q.work.Broadcast()
	return n
}

// Len returns a snapshot of the number of queued tasks.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.tasks)
}

// Stopped reports whether Stop has been called.
func (q *Queue) Stopped() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.stopped
}
