package grpc

import (
	"context"

	"github.com/architeacher/k8s-simulator/services/svc-demo-app/internal/usecases"
	"github.com/architeacher/k8s-simulator/services/svc-demo-app/internal/usecases/queries"
	"google.golang.org/grpc/codes"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
)

const (
	// ServiceOverall is what kubelet sends when the probe has no service set.
	ServiceOverall   = ""
	ServiceLiveness  = "liveness"
	ServiceReadiness = "readiness"
)

// HealthHandler exposes the probe flags through grpc.health.v1 so Kubernetes gRPC
// probes see the same state as the HTTP ones.
type HealthHandler struct {
	healthpb.UnimplementedHealthServer
	app *usecases.WebApplication
}

var _ healthpb.HealthServer = (*HealthHandler)(nil)

func NewHealthHandler(app *usecases.WebApplication) *HealthHandler {
	return &HealthHandler{app: app}
}

func (h *HealthHandler) Check(ctx context.Context, req *healthpb.HealthCheckRequest) (*healthpb.HealthCheckResponse, error) {
	serving, err := h.serving(ctx, req.GetService())
	if err != nil {
		return nil, err
	}

	return &healthpb.HealthCheckResponse{Status: servingStatus(serving)}, nil
}

func (h *HealthHandler) List(ctx context.Context, _ *healthpb.HealthListRequest) (*healthpb.HealthListResponse, error) {
	statuses := make(map[string]*healthpb.HealthCheckResponse, 3)

	for _, service := range []string{ServiceOverall, ServiceLiveness, ServiceReadiness} {
		serving, err := h.serving(ctx, service)
		if err != nil {
			return nil, err
		}

		statuses[service] = &healthpb.HealthCheckResponse{Status: servingStatus(serving)}
	}

	return &healthpb.HealthListResponse{Statuses: statuses}, nil
}

func (h *HealthHandler) serving(ctx context.Context, service string) (bool, error) {
	switch service {
	case ServiceOverall, ServiceLiveness:
		report, err := h.app.Queries.FetchLiveness.Execute(ctx, queries.FetchLivenessQuery{})
		if err != nil {
			return false, nil
		}

		return report.IsHealthy(), nil
	case ServiceReadiness:
		report, err := h.app.Queries.FetchReadiness.Execute(ctx, queries.FetchReadinessQuery{})
		if err != nil {
			return false, nil
		}

		return report.IsReady(), nil
	default:
		return false, status.Errorf(codes.NotFound, "unknown service %q", service)
	}
}

func servingStatus(serving bool) healthpb.HealthCheckResponse_ServingStatus {
	if serving {
		return healthpb.HealthCheckResponse_SERVING
	}

	return healthpb.HealthCheckResponse_NOT_SERVING
}
