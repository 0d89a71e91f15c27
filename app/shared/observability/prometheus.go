package observability

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusMetrics implements Metrics on a prometheus registry.
type PrometheusMetrics struct {
	operationAttempts  *prometheus.CounterVec
	operationSuccesses *prometheus.CounterVec
	operationFailures  *prometheus.CounterVec
	operationDuration  *prometheus.HistogramVec

	handlerAttempts  *prometheus.CounterVec
	handlerSuccesses *prometheus.CounterVec
	handlerFailures  *prometheus.CounterVec
	handlerDuration  *prometheus.HistogramVec

	runsScored           prometheus.Counter
	outsClamped          prometheus.Counter
	halfInningsFinalized prometheus.Counter
	lineupsSaved         prometheus.Counter
}

var _ Metrics = (*PrometheusMetrics)(nil)

// NewPrometheusMetrics registers all collectors on the given registry.
func NewPrometheusMetrics(reg prometheus.Registerer) *PrometheusMetrics {
	m := &PrometheusMetrics{
		operationAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "scorebook_operation_attempts_total",
			Help: "Service operation attempts by operation and module.",
		}, []string{"operation", "module"}),
		operationSuccesses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "scorebook_operation_successes_total",
			Help: "Service operation successes by operation and module.",
		}, []string{"operation", "module"}),
		operationFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "scorebook_operation_failures_total",
			Help: "Service operation failures by operation and module.",
		}, []string{"operation", "module"}),
		operationDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "scorebook_operation_duration_seconds",
			Help:    "Service operation duration by operation and module.",
			Buckets: prometheus.DefBuckets,
		}, []string{"operation", "module"}),
		handlerAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "scorebook_handler_attempts_total",
			Help: "Event handler attempts by handler.",
		}, []string{"handler"}),
		handlerSuccesses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "scorebook_handler_successes_total",
			Help: "Event handler successes by handler.",
		}, []string{"handler"}),
		handlerFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "scorebook_handler_failures_total",
			Help: "Event handler failures by handler.",
		}, []string{"handler"}),
		handlerDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "scorebook_handler_duration_seconds",
			Help:    "Event handler duration by handler.",
			Buckets: prometheus.DefBuckets,
		}, []string{"handler"}),
		runsScored: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "scorebook_runs_scored_total",
			Help: "Runs recorded by the batting event processor.",
		}),
		outsClamped: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "scorebook_outs_clamped_total",
			Help: "Plate appearances whose out count was clamped at three.",
		}),
		halfInningsFinalized: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "scorebook_half_innings_finalized_total",
			Help: "Half-innings finalized at three outs.",
		}),
		lineupsSaved: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "scorebook_lineups_saved_total",
			Help: "Lineup save operations completed.",
		}),
	}

	reg.MustRegister(
		m.operationAttempts, m.operationSuccesses, m.operationFailures, m.operationDuration,
		m.handlerAttempts, m.handlerSuccesses, m.handlerFailures, m.handlerDuration,
		m.runsScored, m.outsClamped, m.halfInningsFinalized, m.lineupsSaved,
	)
	return m
}

func (m *PrometheusMetrics) RecordOperationAttempt(_ context.Context, operation, module string) {
	m.operationAttempts.WithLabelValues(operation, module).Inc()
}

func (m *PrometheusMetrics) RecordOperationSuccess(_ context.Context, operation, module string) {
	m.operationSuccesses.WithLabelValues(operation, module).Inc()
}

func (m *PrometheusMetrics) RecordOperationFailure(_ context.Context, operation, module string) {
	m.operationFailures.WithLabelValues(operation, module).Inc()
}

func (m *PrometheusMetrics) RecordOperationDuration(_ context.Context, operation, module string, duration time.Duration) {
	m.operationDuration.WithLabelValues(operation, module).Observe(duration.Seconds())
}

func (m *PrometheusMetrics) RecordHandlerAttempt(_ context.Context, handlerName string) {
	m.handlerAttempts.WithLabelValues(handlerName).Inc()
}

func (m *PrometheusMetrics) RecordHandlerSuccess(_ context.Context, handlerName string) {
	m.handlerSuccesses.WithLabelValues(handlerName).Inc()
}

func (m *PrometheusMetrics) RecordHandlerFailure(_ context.Context, handlerName string) {
	m.handlerFailures.WithLabelValues(handlerName).Inc()
}

func (m *PrometheusMetrics) RecordHandlerDuration(_ context.Context, handlerName string, duration time.Duration) {
	m.handlerDuration.WithLabelValues(handlerName).Observe(duration.Seconds())
}

func (m *PrometheusMetrics) RecordRunsScored(_ context.Context, _ string, runs int) {
	m.runsScored.Add(float64(runs))
}

func (m *PrometheusMetrics) RecordOutsClamped(_ context.Context, _ string) {
	m.outsClamped.Inc()
}

func (m *PrometheusMetrics) RecordHalfInningFinalized(_ context.Context, _ string) {
	m.halfInningsFinalized.Inc()
}

func (m *PrometheusMetrics) RecordLineupSaved(_ context.Context, _ string) {
	m.lineupsSaved.Inc()
}
