package decorator

import (
	"context"

	"github.com/architeacher/k8s-simulator/pkg/logger"
	"github.com/architeacher/k8s-simulator/pkg/metrics"
	otelTrace "go.opentelemetry.io/otel/trace"
)

type (
	Query  any
	Result any

	QueryHandler[Q Query, R Result] interface {
		Execute(ctx context.Context, query Q) (R, error)
	}
)

func ApplyQueryDecorators[Q Query, R Result](
	handler QueryHandler[Q, R],
	log logger.Logger,
	metricsClient metrics.Client,
	tracerProvider otelTrace.TracerProvider,
) QueryHandler[Q, R] {
	return queryTracingDecorator[Q, R]{
		base: queryLoggingDecorator[Q, R]{
			base: queryMetricsDecorator[Q, R]{
				base:   handler,
				client: metricsClient,
			},
			logger: log,
		},
		tracerProvider: tracerProvider,
	}
}
