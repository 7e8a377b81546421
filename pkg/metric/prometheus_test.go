package metric_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klwxsrx/project-manager/pkg/metric"
)

func TestPrometheusMetrics(t *testing.T) {
	t.Parallel()

	registry := prometheus.NewRegistry()
	metrics := metric.NewPrometheusMetrics("pm", registry)

	metrics.WithLabel("result", "success").Increment("auth_login_total")
	metrics.WithLabel("result", "success").Increment("auth_login_total")
	metrics.WithLabel("result", "failure").Count("auth_login_total", 3)
	metrics.With(metric.Labels{"method": "GET", "code": 200}).Duration("http_api_request_duration_seconds", time.Second)
	metrics.Gauge("projects_total", 5)

	count, err := testutil.GatherAndCount(registry, "pm_auth_login_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	srv := httptest.NewServer(metrics.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `pm_auth_login_total{result="failure"} 3`)
	assert.Contains(t, string(body), `pm_auth_login_total{result="success"} 2`)
	assert.Contains(t, string(body), `pm_projects_total 5`)
	assert.Contains(t, string(body), `pm_http_api_request_duration_seconds_count{code="200",method="GET"} 1`)
}

func TestPrometheusMetricsIgnoresConflictingLabels(t *testing.T) {
	t.Parallel()

	registry := prometheus.NewRegistry()
	metrics := metric.NewPrometheusMetrics("pm", registry)

	metrics.WithLabel("a", "1").Increment("conflict_total")
	assert.NotPanics(t, func() {
		metrics.WithLabel("b", "1").Increment("conflict_total")
	})
}
