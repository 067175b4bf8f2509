package middleware

import (
	"context"
	"net/http"
	"strings"
)

const skipAccessLogKey contextKey = "skip_access_log"

// Kubelet and the dashboard poll these every few seconds.
var probeEndpoints = map[string]struct{}{
	"/health":      {},
	"/ready":       {},
	"/api/info":    {},
	"/metrics":     {},
	"/admin/state": {},
}

type ProbeFilter struct {
	logProbes bool
}

func NewProbeFilter(logProbes bool) *ProbeFilter {
	return &ProbeFilter{logProbes: logProbes}
}

func (f *ProbeFilter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if f.logProbes || !IsProbeEndpoint(r.URL.Path) {
			next.ServeHTTP(w, r)

			return
		}

		ctx := context.WithValue(r.Context(), skipAccessLogKey, true)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func IsProbeEndpoint(path string) bool {
	if path != "/" {
		path = strings.TrimSuffix(path, "/")
	}

	_, ok := probeEndpoints[path]

	return ok
}

func ShouldSkipAccessLog(ctx context.Context) bool {
	skip, ok := ctx.Value(skipAccessLogKey).(bool)

	return ok && skip
}
