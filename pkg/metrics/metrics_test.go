package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/churchconnect/edge/pkg/metrics"
)

func TestRecorder(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	rec := metrics.NewWithRegistry(reg, reg)

	rec.ObserveDecision("redirect", "lookup_failed")
	rec.ObserveDecision("redirect", "lookup_failed")
	rec.ObserveDecision("rewrite", "tenant_found")
	rec.ObserveLookup(3*time.Millisecond, "found")

	n, err := testutil.GatherAndCount(reg, "churchconnect_tenant_routing_decisions_total")
	require.NoError(t, err)
	require.Equal(t, 2, n)

	srv := httptest.NewRecorder()
	rec.Handler().ServeHTTP(srv, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, srv.Code)
	require.Contains(t, srv.Body.String(), `churchconnect_tenant_routing_decisions_total{action="redirect",reason="lookup_failed"} 2`)
	require.Contains(t, srv.Body.String(), `churchconnect_tenant_directory_lookup_seconds_count{outcome="found"} 1`)
}

func TestRecorder_Nil(t *testing.T) {
	t.Parallel()

	var rec *metrics.Recorder
	rec.ObserveDecision("rewrite", "tenant_found")
	rec.ObserveLookup(time.Millisecond, "found")

	srv := httptest.NewRecorder()
	rec.Handler().ServeHTTP(srv, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusNotFound, srv.Code)
}
