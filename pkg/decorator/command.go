package decorator

import (
	"context"
	"fmt"
	"strings"

	"github.com/architeacher/k8s-simulator/pkg/logger"
	"github.com/architeacher/k8s-simulator/pkg/metrics"
	otelTrace "go.opentelemetry.io/otel/trace"
)

type (
	Command any

	CommandHandler[C Command, R any] interface {
		Handle(context.Context, C) (R, error)
	}
)

// ApplyCommandDecorators wraps handler so that every call is traced, counted and logged.
// Tracing is outermost so log lines carry the span of the call.
func ApplyCommandDecorators[C Command, R any](
	handler CommandHandler[C, R],
	log logger.Logger,
	metricsClient metrics.Client,
	tracerProvider otelTrace.TracerProvider,
) CommandHandler[C, R] {
	return commandTracingDecorator[C, R]{
		base: commandLoggingDecorator[C, R]{
			base: commandMetricsDecorator[C, R]{
				base:   handler,
				client: metricsClient,
			},
			logger: log,
		},
		tracerProvider: tracerProvider,
	}
}

func generateActionName(handler any) string {
	parts := strings.Split(fmt.Sprintf("%T", handler), ".")

	return parts[len(parts)-1]
}
