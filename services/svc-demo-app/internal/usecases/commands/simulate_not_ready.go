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
	SimulateNotReadyCommand struct{}

	SimulateNotReadyCommandHandler = decorator.CommandHandler[SimulateNotReadyCommand, model.HealthSnapshot]

	simulateNotReadyCommandHandler struct {
		simulator ports.HealthSimulator
	}
)

func NewSimulateNotReadyCommandHandler(
	simulator ports.HealthSimulator,
	log logger.Logger,
	metricsClient metrics.Client,
	tracerProvider otelTrace.TracerProvider,
) SimulateNotReadyCommandHandler {
	return decorator.ApplyCommandDecorators[SimulateNotReadyCommand, model.HealthSnapshot](
		simulateNotReadyCommandHandler{simulator: simulator},
		log,
		metricsClient,
		tracerProvider,
	)
}

func (h simulateNotReadyCommandHandler) Handle(ctx context.Context, _ SimulateNotReadyCommand) (model.HealthSnapshot, error) {
	return h.simulator.SimulateNotReady(ctx), nil
}
