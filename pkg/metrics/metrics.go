// Package metrics provides Prometheus instrumentation for taskwell
// components.
//
// Enable metrics by constructing instrumented components:
//
//	q := task.NewInstrumentedQueue("device_ops", metrics.NewRegistry(metrics.DefaultConfig()))
//	pool, err := pool.NewWithMetrics(8, "device_ops", metrics.DefaultConfig())
//
// Then expose metrics via HTTP:
//
//	http.Handle("/metrics", promhttp.Handler())
//
// Available metrics:
//
//   - taskwell_queue_depth: number of tasks currently queued
//   - taskwell_queue_tasks_submitted_total: tasks accepted by the queue
//   - taskwell_queue_tasks_abandoned_total: tasks discarded without executing
//   - taskwell_pool_tasks_executed_total: tasks executed by a pool
//   - taskwell_pool_tasks_failed_total: executed tasks that reported failure
//   - taskwell_pool_task_duration_seconds: task execution time
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const defaultNamespace = "taskwell"

// Registry holds the Prometheus collectors shared by instrumented taskwell
// components. Queue-level collectors are labeled by queue name, pool-level
// collectors by pool name.
type Registry struct {
	QueueDepth     *prometheus.GaugeVec
	TasksSubmitted *prometheus.CounterVec
	TasksAbandoned *prometheus.CounterVec
	TasksExecuted  *prometheus.CounterVec
	TasksFailed    *prometheus.CounterVec
	TaskDuration   *prometheus.HistogramVec
}

// NewRegistry creates collectors under cfg.Namespace and registers them with
// cfg.Registry.
func NewRegistry(cfg Config) *Registry {
	ns := cfg.Namespace
	if ns == "" {
		ns = defaultNamespace
	}
	registerer := cfg.Registry
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	r := &Registry{
		QueueDepth: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: ns,
			Subsystem: "queue",
			Name:      "depth",
			Help:      "Number of tasks currently queued.",
		}, []string{"queue"}),
		TasksSubmitted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: ns,
			Subsystem: "queue",
			Name:      "tasks_submitted_total",
			Help:      "Total number of tasks accepted by the queue.",
		}, []string{"queue"}),
		TasksAbandoned: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: ns,
			Subsystem: "queue",
			Name:      "tasks_abandoned_total",
			Help:      "Total number of tasks discarded without executing.",
		}, []string{"queue"}),
		TasksExecuted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: ns,
			Subsystem: "pool",
			Name:      "tasks_executed_total",
			Help:      "Total number of tasks executed by the pool.",
		}, []string{"pool"}),
		TasksFailed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: ns,
			Subsystem: "pool",
			Name:      "tasks_failed_total",
			Help:      "Total number of executed tasks that reported failure.",
		}, []string{"pool"}),
		TaskDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: ns,
			Subsystem: "pool",
			Name:      "task_duration_seconds",
			Help:      "Time spent executing tasks.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"pool"}),
	}

	registerer.MustRegister(
		r.QueueDepth,
		r.TasksSubmitted,
		r.TasksAbandoned,
		r.TasksExecuted,
		r.TasksFailed,
		r.TaskDuration,
	)

	return r
}
