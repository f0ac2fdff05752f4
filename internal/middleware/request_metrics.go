package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/costaverde/backend/internal/telemetry/metrics"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
)

func RequestMetrics(metricsManager *metrics.Manager) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(respWriter http.ResponseWriter, req *http.Request) {
			resp := &responseWriter{respWriter, http.StatusOK}
			begin := time.Now()

			// handler call
			next.ServeHTTP(resp, req)

			statusCode := strconv.Itoa(resp.statusCode)
			routeName := "unknown"
			if route := mux.CurrentRoute(req); route != nil && route.GetName() != "" {
				routeName = route.GetName()
			}

			metricsManager.HistogramRequestDuration.With(prometheus.Labels{
				"route":       routeName,
				"method":      req.Method,
				"status_code": statusCode,
			}).Observe(time.Since(begin).Seconds())

			metricsManager.CounterRequests.With(
				prometheus.Labels{
					"method": req.Method,
					"status": statusCode,
				},
			).Inc()
		})
	}
}

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (r *responseWriter) WriteHeader(statusCode int) {
	r.ResponseWriter.WriteHeader(statusCode)
	r.statusCode = statusCode
}
