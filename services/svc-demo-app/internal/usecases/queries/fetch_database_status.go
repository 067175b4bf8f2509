package queries

import (
	"context"

	"github.com/architeacher/k8s-simulator/pkg/decorator"
	"github.com/architeacher/k8s-simulator/pkg/logger"
	"github.com/architeacher/k8s-simulator/pkg/metrics"
	"github.com/architeacher/k8s-simulator/services/svc-demo-app/internal/domain/model"
	"github.com/architeacher/k8s-simulator/services/svc-demo-app/internal/ports"
	"go.opentelemetry.io/otel/attribute"
	otelTrace "go.opentelemetry.io/otel/trace"
)

type (
	FetchDatabaseStatusQuery struct{}

	FetchDatabaseStatusQueryHandler = decorator.QueryHandler[FetchDatabaseStatusQuery, *model.DatabaseStatus]

	fetchDatabaseStatusQueryHandler struct {
		database ports.DatabaseHealthChecker
	}
)

// NewFetchDatabaseStatusQueryHandler caches successful checks for cacheConfig.TTL so the
// dashboard poll does not hit the database on every refresh.
func NewFetchDatabaseStatusQueryHandler(
	database ports.DatabaseHealthChecker,
	cacheConfig decorator.CacheConfig,
	log logger.Logger,
	metricsClient metrics.Client,
	tracerProvider otelTrace.TracerProvider,
) FetchDatabaseStatusQueryHandler {
	cached := decorator.NewQueryCachingDecorator[FetchDatabaseStatusQuery, *model.DatabaseStatus](
		fetchDatabaseStatusQueryHandler{database: database},
		decorator.NewMemoryCache[FetchDatabaseStatusQuery, *model.DatabaseStatus](),
		cacheConfig,
		func(status decorator.CacheStatus) {
			if metricsClient != nil {
				metricsClient.Inc(context.Background(), "query_cache_lookups_total", 1,
					attribute.String("query", "database_status"),
					attribute.String("status", string(status)),
				)
			}
		},
	)

	return decorator.ApplyQueryDecorators[FetchDatabaseStatusQuery, *model.DatabaseStatus](
		cached,
		log,
		metricsClient,
		tracerProvider,
	)
}

func (h fetchDatabaseStatusQueryHandler) Execute(ctx context.Context, _ FetchDatabaseStatusQuery) (*model.DatabaseStatus, error) {
	return h.database.Check(ctx)
}
