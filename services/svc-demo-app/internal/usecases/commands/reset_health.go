package commands

import (
	"context"

	"github.com/architeacher/k8s-simulator/pkg/decorator"
	"github.com/architeacher/k8s-simulator/pkg/logger"
	"github.com/architeacher/k8s-simulator/pkg/metrics"
	"github.com/architeacher/k8s-simulator/services/svc-demo-app/internal/domain/model"
	"github.com/architeacher/k8s-simulator/services/svc-demo-app/internal/ports"
	otelTrace "go.opentelemetry.io/otel/trace"
)

type (
	ResetHealthCommand struct{}

	ResetHealthCommandHandler = decorator.CommandHandler[ResetHealthCommand, model.HealthSnapshot]

	resetHealthCommandHandler struct {
		simulator ports.HealthSimulator
	}
)

func NewResetHealthCommandHandler(
	simulator ports.HealthSimulator,
	log logger.Logger,
	metricsClient metrics.Client,
	tracerProvider otelTrace.TracerProvider,
) ResetHealthCommandHandler {
	return decorator.ApplyCommandDecorators[ResetHealthCommand, model.HealthSnapshot](
		resetHealthCommandHandler{simulator: simulator},
		log,
		metricsClient,
		tracerProvider,
	)
}

func (h resetHealthCommandHandler) Handle(ctx context.Context, _ ResetHealthCommand) (model.HealthSnapshot, error) {
	return h.simulator.Reset(ctx), nil
}
