package metrics_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/carelink-lab/carelink/pkg/metrics"
	"github.com/m-mizutani/gt"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetricsCounters(t *testing.T) {
	m := metrics.New()

	m.ObserveHTTP(http.MethodGet, "/patient/dashboard", http.StatusOK, 10*time.Millisecond)
	m.ObserveHTTP(http.MethodGet, "/patient/dashboard", http.StatusOK, 20*time.Millisecond)
	m.PageRendered("/patient/dashboard")
	m.ShellTransition("open", true)
	m.ShellTransition("navigate", false)
	m.ProxyForwarded("/users", http.StatusBadGateway)

	count, err := testutil.GatherAndCount(m.Registry(), "carelink_http_requests_total")
	gt.NoError(t, err)
	gt.Equal(t, count, 1)

	count, err = testutil.GatherAndCount(m.Registry(), "carelink_shell_transitions_total")
	gt.NoError(t, err)
	gt.Equal(t, count, 2)

	count, err = testutil.GatherAndCount(m.Registry(), "carelink_page_renders_total", "carelink_proxy_requests_total")
	gt.NoError(t, err)
	gt.Equal(t, count, 2)
}

func TestMetricsHandler(t *testing.T) {
	m := metrics.New(metrics.WithRuntimeCollectors())
	m.PageRendered("/patient/records")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	gt.Equal(t, rec.Code, http.StatusOK)
	body, err := io.ReadAll(rec.Body)
	gt.NoError(t, err)
	gt.S(t, string(body)).Contains(`carelink_page_renders_total{page="/patient/records"} 1`)
	gt.S(t, string(body)).Contains("go_goroutines")
}

func TestIndependentRegistries(t *testing.T) {
	a := metrics.New()
	b := metrics.New()
	a.PageRendered("/patient/dashboard")

	count, err := testutil.GatherAndCount(b.Registry(), "carelink_page_renders_total")
	gt.NoError(t, err)
	gt.Equal(t, count, 0)
}
