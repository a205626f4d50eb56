package metrics_test

import (
	"context"
	"drills/pkg/metrics"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func TestHTTPMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := metrics.NewHTTPMetrics(reg)
	require.NoError(t, err)

	m.Observe("GET", "GET /v1/halving", 200, 3*time.Millisecond)
	m.Observe("GET", "GET /v1/halving", 400, time.Millisecond)

	count, err := testutil.GatherAndCount(reg, "drills_http_request_duration_seconds")
	require.NoError(t, err)
	require.Equal(t, 2, count, "one series per status code")

	// registering twice fails
	_, err = metrics.NewHTTPMetrics(reg)
	require.Error(t, err)

	// nil is a no-op
	var nilMetrics *metrics.HTTPMetrics
	require.NotPanics(t, func() { nilMetrics.Observe("GET", "/", 200, time.Second) })
}

func TestEvaluationRecorder(t *testing.T) {
	ctx := context.Background()
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	rec, err := metrics.NewEvaluationRecorder(mp.Meter("drills-test"))
	require.NoError(t, err)

	rec.Record(ctx, "HALVING", "completed", time.Millisecond)
	rec.Record(ctx, "HALVING", "completed", time.Millisecond)
	rec.Record(ctx, "EXPONENTIATION", "overflow", time.Millisecond)

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(ctx, &rm))

	counts := map[string]int64{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != "drills.evaluations" {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			require.True(t, ok)
			for _, dp := range sum.DataPoints {
				op, _ := dp.Attributes.Value(attribute.Key("operation"))
				counts[op.AsString()] += dp.Value
			}
		}
	}
	require.Equal(t, map[string]int64{"HALVING": 2, "EXPONENTIATION": 1}, counts)

	var nilRec *metrics.EvaluationRecorder
	require.NotPanics(t, func() { nilRec.Record(ctx, "HALVING", "completed", time.Second) })
}
