//go:generate go tool github.com/maxbrunsfeld/counterfeiter/v6 -generate

package ports

//counterfeiter:generate -o ../mocks/health_checker.go . HealthChecker
//counterfeiter:generate -o ../mocks/health_simulator.go . HealthSimulator

import (
	"context"

	"github.com/architeacher/k8s-simulator/services/svc-demo-app/internal/domain/model"
)

type (
	// HealthChecker builds the reports served to probes and operators.
	HealthChecker interface {
		Liveness(ctx context.Context) (*model.LivenessReport, error)
		Readiness(ctx context.Context) (*model.ReadinessReport, error)
		Health(ctx context.Context) (*model.HealthReport, error)
	}

	// HealthSimulator flips the probe flags on operator request.
	HealthSimulator interface {
		SimulateCrash(ctx context.Context) model.HealthSnapshot
		SimulateNotReady(ctx context.Context) model.HealthSnapshot
		Reset(ctx context.Context) model.HealthSnapshot
		Snapshot(ctx context.Context) model.HealthSnapshot
	}
)
