package grpc

import (
	"context"
	"strings"
	"time"

	"github.com/architeacher/k8s-simulator/pkg/logger"
	"github.com/architeacher/k8s-simulator/services/svc-demo-app/internal/config"
	"github.com/google/uuid"
	"google.golang.org/grpc"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

const MetadataKeyRequestID = "x-request-id"

// RequestIDInterceptor stores the caller's x-request-id, or a fresh one, for logger.WithContext.
func RequestIDInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, _ *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		var requestID string

		if md, ok := metadata.FromIncomingContext(ctx); ok {
			if ids := md.Get(MetadataKeyRequestID); len(ids) > 0 {
				requestID = ids[0]
			}
		}

		if requestID == "" {
			requestID = uuid.New().String()
		}

		return handler(context.WithValue(ctx, logger.ContextKeyRequestID, requestID), req)
	}
}

// AccessLogInterceptor logs completed calls. Health RPCs are skipped unless configured,
// since kubelet calls them every few seconds.
func AccessLogInterceptor(log logger.Logger, cfg config.AccessLog) grpc.UnaryServerInterceptor {
	log = log.Component("grpc")

	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if !cfg.Enabled || (!cfg.LogHealthChecks && isHealthCheck(info.FullMethod)) {
			return handler(ctx, req)
		}

		start := time.Now()
		resp, err := handler(ctx, req)

		callLogger := log.WithContext(ctx)
		event := callLogger.Info().
			Str("method", info.FullMethod).
			Dur("duration", time.Since(start))

		if err != nil {
			st, _ := status.FromError(err)
			event.Str("grpc_code", st.Code().String()).
				Str("error", st.Message()).
				Msg("gRPC request failed")

			return resp, err
		}

		event.Msg("gRPC request completed")

		return resp, nil
	}
}

func isHealthCheck(fullMethod string) bool {
	return strings.HasPrefix(fullMethod, "/"+healthpb.Health_ServiceDesc.ServiceName+"/")
}
