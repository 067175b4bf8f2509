package queries

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
	FetchAppInfoQuery struct{}

	FetchAppInfoQueryHandler = decorator.QueryHandler[FetchAppInfoQuery, model.AppInfo]

	fetchAppInfoQueryHandler struct {
		provider ports.AppInfoProvider
	}
)

func NewFetchAppInfoQueryHandler(
	provider ports.AppInfoProvider,
	log logger.Logger,
	metricsClient metrics.Client,
	tracerProvider otelTrace.TracerProvider,
) FetchAppInfoQueryHandler {
	return decorator.ApplyQueryDecorators[FetchAppInfoQuery, model.AppInfo](
		fetchAppInfoQueryHandler{provider: provider},
		log,
		metricsClient,
		tracerProvider,
	)
}

func (h fetchAppInfoQueryHandler) Execute(ctx context.Context, _ FetchAppInfoQuery) (model.AppInfo, error) {
	return h.provider.AppInfo(ctx), nil
}
