package middleware

import (
	"context"
	"net/http"

	"github.com/architeacher/k8s-simulator/pkg/logger"
	"github.com/google/uuid"
)

type contextKey string

const RequestIDHeader = "X-Request-Id"

// RequestID propagates the caller's X-Request-Id or mints one, and stores it where
// logger.WithContext picks it up.
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := r.Header.Get(RequestIDHeader)
			if requestID == "" {
				requestID = uuid.New().String()
			}

			ctx := context.WithValue(r.Context(), logger.ContextKeyRequestID, requestID)
			w.Header().Set(RequestIDHeader, requestID)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetRequestID(ctx context.Context) string {
	if id, ok := ctx.Value(logger.ContextKeyRequestID).(string); ok {
		return id
	}

	return ""
}
