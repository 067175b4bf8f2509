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
	SimulateCrashCommand struct{}

	SimulateCrashCommandHandler = decorator.CommandHandler[SimulateCrashCommand, model.HealthSnapshot]

	simulateCrashCommandHandler struct {
		simulator ports.HealthSimulator
	}
)

func NewSimulateCrashCommandHandler(
	simulator ports.HealthSimulator,
	log logger.Logger,
	metricsClient metrics.Client,
	tracerProvider otelTrace.TracerProvider,
) SimulateCrashCommandHandler {
	return decorator.ApplyCommandDecorators[SimulateCrashCommand, model.HealthSnapshot](
		simulateCrashCommandHandler{simulator: simulator},
		log,
		metricsClient,
		tracerProvider,
	)
}

func (h simulateCrashCommandHandler) Handle(ctx context.Context, _ SimulateCrashCommand) (model.HealthSnapshot, error) {
	return h.simulator.SimulateCrash(ctx), nil
}
