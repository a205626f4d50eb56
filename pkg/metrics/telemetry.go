package metrics

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// MeterName is the instrumentation scope of the drills meters.
const MeterName = "drills"

// Telemetry owns the Prometheus registry served by the API and the otel meter
// provider exporting into it, together with the instruments built on them.
type Telemetry struct {
	Registry      *prometheus.Registry
	MeterProvider *sdkmetric.MeterProvider

	HTTP        *HTTPMetrics
	Evaluations *EvaluationRecorder
}

// NewTelemetry creates a registry with the Go runtime and process collectors,
// an otel meter provider backed by a Prometheus exporter on that registry,
// and the drills instruments.
func NewTelemetry() (*Telemetry, error) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	exp, err := otelprom.New(otelprom.WithRegisterer(reg))
	if err != nil {
		return nil, fmt.Errorf("could not create otel exporter: %w", err)
	}
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(exp))

	httpMetrics, err := NewHTTPMetrics(reg)
	if err != nil {
		return nil, err
	}

	evaluations, err := NewEvaluationRecorder(mp.Meter(MeterName))
	if err != nil {
		return nil, err
	}

	return &Telemetry{
		Registry:      reg,
		MeterProvider: mp,
		HTTP:          httpMetrics,
		Evaluations:   evaluations,
	}, nil
}

// Shutdown flushes and stops the meter provider.
func (t *Telemetry) Shutdown(ctx context.Context) error {
	if err := t.MeterProvider.Shutdown(ctx); err != nil {
		return fmt.Errorf("could not shut down meter provider: %w", err)
	}

	return nil
}
