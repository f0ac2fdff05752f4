package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/costaverde/backend/internal/telemetry/metrics"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestMetricsMiddleware(t *testing.T) {
	metricsManager, reg := metrics.NewTestManagerAndRegistry()

	router := mux.NewRouter()
	router.Use(RequestMetrics(metricsManager))
	router.HandleFunc("/banners", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Name("banners-list")
	router.HandleFunc("/missing", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}).Name("not-found")

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest("GET", "/banners", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest("GET", "/missing", nil))
	require.Equal(t, http.StatusNotFound, rr.Code)

	// https://pkg.go.dev/github.com/prometheus/client_golang/prometheus/testutil
	histRequestDuration, err := testutil.GatherAndCount(reg, "backend_test_server_request_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 2, histRequestDuration)

	okRequests := metricsManager.CounterRequests.With(prometheus.Labels{
		"method": "GET",
		"status": "200",
	})
	notFoundRequests := metricsManager.CounterRequests.With(prometheus.Labels{
		"method": "GET",
		"status": "404",
	})
	assert.Equal(t, float64(1), testutil.ToFloat64(okRequests))
	assert.Equal(t, float64(1), testutil.ToFloat64(notFoundRequests))
}
