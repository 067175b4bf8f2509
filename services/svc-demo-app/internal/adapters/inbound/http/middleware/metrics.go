package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/architeacher/k8s-simulator/pkg/metrics"
	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/attribute"
)

const (
	RequestsTotal          = "requests_total"
	RequestDurationSeconds = "request_duration_seconds"

	unmatchedEndpoint = "unmatched"
)

// Descriptors are the help strings for the HTTP instruments.
var Descriptors = map[string]metrics.Descriptor{
	RequestsTotal:          {Description: "Total app requests"},
	RequestDurationSeconds: {Description: "Request duration"},
}

type MetricsMiddleware struct {
	client metrics.Client
}

func NewMetricsMiddleware(client metrics.Client) *MetricsMiddleware {
	return &MetricsMiddleware{client: client}
}

// Middleware labels by chi route pattern rather than raw path to keep cardinality bounded.
func (m *MetricsMiddleware) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapped := NewStatusRecorder(w)

		next.ServeHTTP(wrapped, r)

		attrs := []attribute.KeyValue{
			attribute.String("method", r.Method),
			attribute.String("endpoint", routePattern(r)),
			attribute.String("status", strconv.Itoa(wrapped.StatusCode())),
		}

		m.client.Inc(r.Context(), RequestsTotal, 1, attrs...)
		m.client.Observe(r.Context(), RequestDurationSeconds, time.Since(start).Seconds(), attrs...)
	})
}

func routePattern(r *http.Request) string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return unmatchedEndpoint
	}

	if pattern := rctx.RoutePattern(); pattern != "" {
		return pattern
	}

	return unmatchedEndpoint
}
