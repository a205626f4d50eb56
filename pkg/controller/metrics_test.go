package controller_test

import (
	"drills/pkg/controller"
	"drills/pkg/metrics"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestWithMetrics_LabelsRoutePattern(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := metrics.NewHTTPMetrics(reg)
	require.NoError(t, err)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /items/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	})
	handler := controller.WithMetrics(m)(mux)

	for _, path := range []string{"/items/1", "/items/2", "/missing"} {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	}

	count, err := testutil.GatherAndCount(reg, "drills_http_request_duration_seconds")
	require.NoError(t, err)
	require.Equal(t, 2, count)

	families, err := reg.Gather()
	require.NoError(t, err)
	require.Len(t, families, 1)

	routes := map[string]uint64{}
	for _, metric := range families[0].GetMetric() {
		var route, status string
		for _, label := range metric.GetLabel() {
			switch label.GetName() {
			case "route":
				route = label.GetValue()
			case "status":
				status = label.GetValue()
			}
		}
		routes[strings.Join([]string{route, status}, " ")] = metric.GetHistogram().GetSampleCount()
	}

	want := map[string]uint64{"GET /items/{id} 202": 2}
	want[controller.UnmatchedRoute+" 404"] = 1
	require.Equal(t, want, routes)
}
