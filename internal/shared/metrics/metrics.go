package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"go-closures/internal/shared/logger"
)

// Metrics holds all Prometheus metrics.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	// Counter metrics
	countersCreatedTotal    prometheus.Counter
	counterInvocationsTotal prometheus.Counter
	counterSaturatedTotal   prometheus.Counter
	countersLive            prometheus.Gauge

	// Job metrics
	jobRunsTotal   *prometheus.CounterVec
	jobRunDuration *prometheus.HistogramVec

	// System metrics
	uptime prometheus.Gauge

	logger *logger.Logger
}

// New creates a new metrics instance registered with reg
func New(reg prometheus.Registerer, logger *logger.Logger) *Metrics {
	m := &Metrics{
		logger: logger.Named("metrics"),
	}

	factory := promauto.With(reg)
	m.initCounterMetrics(factory)
	m.initJobMetrics(factory)
	m.initSystemMetrics(factory)

	m.logger.Info("Metrics initialized")

	return m
}

// initCounterMetrics initializes counter-related metrics
func (m *Metrics) initCounterMetrics(factory promauto.Factory) {
	m.countersCreatedTotal = factory.NewCounter(
		prometheus.CounterOpts{
			Name: "closure_counters_created_total",
			Help: "Total number of counter instances created",
		},
	)

	m.counterInvocationsTotal = factory.NewCounter(
		prometheus.CounterOpts{
			Name: "closure_counter_invocations_total",
			Help: "Total number of counter invocations across all instances",
		},
	)

	m.counterSaturatedTotal = factory.NewCounter(
		prometheus.CounterOpts{
			Name: "closure_counter_saturated_total",
			Help: "Total number of counter instances that reached their ceiling",
		},
	)

	m.countersLive = factory.NewGauge(
		prometheus.GaugeOpts{
			Name: "closure_counters_live",
			Help: "Number of counter instances currently held by the service",
		},
	)
}

// initJobMetrics initializes scheduled job metrics
func (m *Metrics) initJobMetrics(factory promauto.Factory) {
	m.jobRunsTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "job_runs_total",
			Help: "Total number of scheduled job runs",
		},
		[]string{"job", "status"},
	)

	m.jobRunDuration = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "job_run_duration_seconds",
			Help:    "Scheduled job run duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"job"},
	)
}

// initSystemMetrics initializes system metrics
func (m *Metrics) initSystemMetrics(factory promauto.Factory) {
	m.uptime = factory.NewGauge(
		prometheus.GaugeOpts{
			Name: "app_uptime_seconds",
			Help: "Application uptime in seconds",
		},
	)
}

// Counter Metrics Methods

// RecordCreated records a new counter instance
func (m *Metrics) RecordCreated() {
	if m == nil {
		return
	}
	m.countersCreatedTotal.Inc()
	m.countersLive.Inc()
}

// RecordReleased records a counter instance dropped by the service
func (m *Metrics) RecordReleased() {
	if m == nil {
		return
	}
	m.countersLive.Dec()
}

// RecordInvocation records one counter invocation
func (m *Metrics) RecordInvocation() {
	if m == nil {
		return
	}
	m.counterInvocationsTotal.Inc()
}

// RecordSaturated records a counter reaching its ceiling
func (m *Metrics) RecordSaturated() {
	if m == nil {
		return
	}
	m.counterSaturatedTotal.Inc()
}

// Job Metrics Methods

// RecordJobRun records a scheduled job run
func (m *Metrics) RecordJobRun(job string, duration time.Duration, err error) {
	if m == nil {
		return
	}
	status := "success"
	if err != nil {
		status = "error"
	}

	m.jobRunsTotal.WithLabelValues(job, status).Inc()
	m.jobRunDuration.WithLabelValues(job).Observe(duration.Seconds())
}

// System Metrics Methods

// RecordUptime records the application uptime
func (m *Metrics) RecordUptime(uptime time.Duration) {
	if m == nil {
		return
	}
	m.uptime.Set(uptime.Seconds())
}
