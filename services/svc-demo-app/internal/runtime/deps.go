package runtime

import (
	"context"
	"fmt"
	"net/http"

	"github.com/architeacher/k8s-simulator/pkg/logger"
	"github.com/architeacher/k8s-simulator/pkg/metrics"
	"github.com/architeacher/k8s-simulator/services/svc-demo-app/internal/adapters/repos"
	"github.com/architeacher/k8s-simulator/services/svc-demo-app/internal/config"
	"github.com/architeacher/k8s-simulator/services/svc-demo-app/internal/infrastructure"
	"github.com/architeacher/k8s-simulator/services/svc-demo-app/internal/ports"
	"github.com/architeacher/k8s-simulator/services/svc-demo-app/internal/services"
	"github.com/architeacher/k8s-simulator/services/svc-demo-app/internal/usecases"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/throttled/throttled/v2"
	otelTrace "go.opentelemetry.io/otel/trace"
	"google.golang.org/grpc"
)

type (
	infrastructureDep struct {
		publicHttpServer *http.Server
		adminHttpServer  *http.Server
		grpcServer       *grpc.Server
		dbPool           *pgxpool.Pool
		cacheClient      *infrastructure.KeydbClient
		logger           logger.Logger
		metricsClient    metrics.Client
		tracerProvider   otelTrace.TracerProvider
	}

	repositories struct {
		secretsRepo    ports.SecretsRepository
		databaseRepo   *repos.DatabaseRepository
		rateLimitStore throttled.GCRAStoreCtx
	}

	servicesDep struct {
		health  *services.HealthService
		appInfo *services.AppInfoService
	}

	applications struct {
		webApp *usecases.WebApplication
	}

	dependencies struct {
		config       *config.ServiceConfig
		configStore  *config.Store
		configLoader *config.Loader

		infra infrastructureDep

		repos repositories

		services servicesDep

		apps applications

		cleanupFuncs []cleanupFunc
	}

	cleanupFunc struct {
		resource string
		fn       func(ctx context.Context) error
	}

	DependencyOption func(*dependencies) error
)

func initializeDependencies(ctx context.Context, opts ...DependencyOption) (*dependencies, error) {
	deps := &dependencies{}

	allOpts := append(defaultOptions(ctx), opts...)

	for _, opt := range allOpts {
		if err := opt(deps); err != nil {
			return nil, fmt.Errorf("failed to apply dependency option: %w", err)
		}
	}

	return deps, nil
}

// onShutdown registers a cleanup. Cleanups run in reverse registration order so
// servers stop before the resources they use.
func (d *dependencies) onShutdown(resource string, fn func(ctx context.Context) error) {
	d.cleanupFuncs = append(d.cleanupFuncs, cleanupFunc{resource: resource, fn: fn})
}
