package metrics_test

import (
	"context"
	"drills/pkg/metrics"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTelemetry_ExportsEvaluationsToRegistry(t *testing.T) {
	tel, err := metrics.NewTelemetry()
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, tel.Shutdown(context.Background())) })

	tel.Evaluations.Record(context.Background(), "HALVING", "ok", time.Millisecond)
	tel.HTTP.Observe("GET", "GET /v1/halving", 200, time.Millisecond)

	families, err := tel.Registry.Gather()
	require.NoError(t, err)

	var names []string
	for _, f := range families {
		names = append(names, f.GetName())
	}
	joined := strings.Join(names, " ")
	require.Contains(t, joined, "drills_evaluations")
	require.Contains(t, joined, "drills_http_request_duration_seconds")
	require.Contains(t, joined, "go_goroutines")
}
