// Package metrics holds the instruments exported by the drills service: a
// Prometheus histogram for HTTP traffic and OpenTelemetry instruments for
// evaluations.
package metrics

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

// HTTPMetrics records request latency per method, route pattern and status.
type HTTPMetrics struct {
	duration *prometheus.HistogramVec
}

// NewHTTPMetrics creates the HTTP instruments and registers them with reg.
func NewHTTPMetrics(reg prometheus.Registerer) (*HTTPMetrics, error) {
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "drills",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "Duration of HTTP requests by method, route and status code.",
		Buckets:   DefaultBuckets,
	}, []string{"method", "route", "status"})

	if err := reg.Register(duration); err != nil {
		return nil, fmt.Errorf("could not register http duration histogram: %w", err)
	}

	return &HTTPMetrics{duration: duration}, nil
}

// Observe records one request.
func (m *HTTPMetrics) Observe(method, route string, status int, took time.Duration) {
	if m == nil {
		return
	}
	m.duration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(took.Seconds())
}

// EvaluationRecorder counts evaluations and measures how long they take.
// A nil recorder is valid and records nothing.
type EvaluationRecorder struct {
	count    metric.Int64Counter
	duration metric.Float64Histogram
}

// NewEvaluationRecorder creates the evaluation instruments from meter.
func NewEvaluationRecorder(meter metric.Meter) (*EvaluationRecorder, error) {
	count, err := meter.Int64Counter("drills.evaluations",
		metric.WithDescription("Number of drill evaluations by operation and outcome."),
		metric.WithUnit("{evaluation}"))
	if err != nil {
		return nil, fmt.Errorf("could not create evaluations counter: %w", err)
	}

	duration, err := meter.Float64Histogram("drills.evaluation.duration",
		metric.WithDescription("Time spent computing a drill evaluation."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(DefaultBuckets...))
	if err != nil {
		return nil, fmt.Errorf("could not create evaluation duration histogram: %w", err)
	}

	return &EvaluationRecorder{count: count, duration: duration}, nil
}

// Record adds one evaluation of operation with the given outcome.
func (r *EvaluationRecorder) Record(ctx context.Context, operation, outcome string, took time.Duration) {
	if r == nil {
		return
	}

	attrs := metric.WithAttributes(
		attribute.String("operation", operation),
		attribute.String("outcome", outcome),
	)
	r.count.Add(ctx, 1, attrs)
	r.duration.Record(ctx, took.Seconds(), attrs)
}
