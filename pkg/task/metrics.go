package task

import (
	"github.com/taskwell/taskwell/pkg/metrics"
)

// InstrumentedQueue wraps a Queue with Prometheus metrics collection. It
// tracks queue depth, accepted submissions, and abandoned tasks under the
// given queue name. Execution-side metrics (durations, failures) belong to
// whoever drives the workers; see pool.NewWithMetrics.
type InstrumentedQueue struct {
	q    *Queue
	name string
	reg  *metrics.Registry
}

// NewInstrumentedQueue creates an empty queue reporting to reg under name.
// A nil registry yields a plain uninstrumented queue behind the same type.
func NewInstrumentedQueue(name string, reg *metrics.Registry) *InstrumentedQueue {
	return &InstrumentedQueue{
		q:    NewQueue(),
		name: name,
		reg:  reg,
	}
}

// AddWork enqueues t, counting the submission. Tasks refused because the
// queue is stopped count as abandoned.
func (iq *InstrumentedQueue) AddWork(t Task) {
	accepted := iq.q.add(t)
	if iq.reg == nil {
		return
	}
	if accepted {
		iq.reg.TasksSubmitted.WithLabelValues(iq.name).Inc()
	} else {
		iq.reg.TasksAbandoned.WithLabelValues(iq.name).Inc()
	}
	iq.reg.QueueDepth.WithLabelValues(iq.name).Set(float64(iq.q.Len()))
}

// GetWork behaves exactly like Queue.GetWork and refreshes the depth gauge.
func (iq *InstrumentedQueue) GetWork() Task {
	t := iq.q.GetWork()
	if iq.reg != nil {
		iq.reg.QueueDepth.WithLabelValues(iq.name).Set(float64(iq.q.Len()))
	}
	return t
}

// Stop stops the underlying queue; tasks still queued count as abandoned.
func (iq *InstrumentedQueue) Stop() {
	abandoned := iq.q.stop()
	if iq.reg == nil {
		return
	}
	if abandoned > 0 {
		iq.reg.TasksAbandoned.WithLabelValues(iq.name).Add(float64(abandoned))
	}
	iq.reg.QueueDepth.WithLabelValues(iq.name).Set(0)
}

// Len returns a snapshot of the number of queued tasks.
func (iq *InstrumentedQueue) Len() int {
	return iq.q.Len()
}

// Stopped reports whether Stop has been called.
func (iq *InstrumentedQueue) Stopped() bool {
	return iq.q.Stopped()
}
