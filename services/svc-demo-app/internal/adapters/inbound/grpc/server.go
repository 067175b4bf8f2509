package grpc

import (
	"github.com/architeacher/k8s-simulator/pkg/logger"
	"github.com/architeacher/k8s-simulator/services/svc-demo-app/internal/config"
	"github.com/architeacher/k8s-simulator/services/svc-demo-app/internal/usecases"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	otelTrace "go.opentelemetry.io/otel/trace"
	"google.golang.org/grpc"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// NewServer returns a gRPC server exposing only grpc.health.v1.Health.
func NewServer(
	app *usecases.WebApplication,
	log logger.Logger,
	accessLog config.AccessLog,
	tracerProvider otelTrace.TracerProvider,
) *grpc.Server {
	server := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler(otelgrpc.WithTracerProvider(tracerProvider))),
		grpc.ChainUnaryInterceptor(
			RequestIDInterceptor(),
			AccessLogInterceptor(log, accessLog),
		),
	)

	healthpb.RegisterHealthServer(server, NewHealthHandler(app))
	reflection.Register(server)

	return server
}
