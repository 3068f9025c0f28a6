package pool

import (
	"time"

	"github.com/taskwell/taskwell/pkg/metrics"
	"github.com/taskwell/taskwell/pkg/task"
)

// NewWithMetrics creates a fixed pool whose queue depth, submissions,
// abandonments, executions, failures, and task durations are exported
// through Prometheus under the given name.
func NewWithMetrics(workers int, name string, cfg metrics.Config) (*FixedPool, error) {
	if !cfg.Enabled {
		return New(&Config{Workers: workers})
	}
	return NewWithRegistry(workers, name, metrics.NewRegistry(cfg))
}

// NewWithRegistry is NewWithMetrics against an already built registry,
// allowing several components to share collectors.
func NewWithRegistry(workers int, name string, reg *metrics.Registry) (*FixedPool, error) {
	return New(&Config{
		Workers: workers,
		Queue:   task.NewInstrumentedQueue(name, reg),
		OnTaskComplete: func(d time.Duration, failed bool) {
			reg.TasksExecuted.WithLabelValues(name).Inc()
			if failed {
				reg.TasksFailed.WithLabelValues(name).Inc()
			}
			reg.TaskDuration.WithLabelValues(name).Observe(d.Seconds())
		},
	})
}
