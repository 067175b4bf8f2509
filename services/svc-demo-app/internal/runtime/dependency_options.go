package runtime

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"strconv"

	"github.com/architeacher/k8s-simulator/pkg/decorator"
	"github.com/architeacher/k8s-simulator/pkg/logger"
	"github.com/architeacher/k8s-simulator/pkg/metrics/noop"
	prommetrics "github.com/architeacher/k8s-simulator/pkg/metrics/prometheus"
	inboundgrpc "github.com/architeacher/k8s-simulator/services/svc-demo-app/internal/adapters/inbound/grpc"
	inboundhttp "github.com/architeacher/k8s-simulator/services/svc-demo-app/internal/adapters/inbound/http"
	"github.com/architeacher/k8s-simulator/services/svc-demo-app/internal/adapters/inbound/http/middleware"
	"github.com/architeacher/k8s-simulator/services/svc-demo-app/internal/adapters/repos"
	"github.com/architeacher/k8s-simulator/services/svc-demo-app/internal/config"
	"github.com/architeacher/k8s-simulator/services/svc-demo-app/internal/domain/model"
	"github.com/architeacher/k8s-simulator/services/svc-demo-app/internal/infrastructure"
	"github.com/architeacher/k8s-simulator/services/svc-demo-app/internal/services"
	"github.com/architeacher/k8s-simulator/services/svc-demo-app/internal/usecases"
)

func defaultOptions(ctx context.Context) []DependencyOption {
	return []DependencyOption{
		WithConfig(),
		WithLogger(),
		WithSecretsRepository(),
		WithConfigLoader(ctx),
		WithTracing(ctx),
		WithMetrics(),
		WithDatabase(ctx),
		WithRateLimitStore(ctx),
		WithServices(),
		WithApplication(),
		WithHTTPServer(),
		WithAdminHTTPServer(),
		WithGRPCServer(),
	}
}

func WithConfig() DependencyOption {
	return func(d *dependencies) error {
		cfg, err := config.Init()
		if err != nil {
			return fmt.Errorf("initializing configuration: %w", err)
		}

		d.config = cfg
		d.configStore = config.NewStore(cfg)

		return nil
	}
}

func WithLogger() DependencyOption {
	return func(d *dependencies) error {
		log := logger.New(d.config.Logging.Level, d.config.Logging.Format)
		log.Logger = log.With().
			Str("app", d.config.App.Name).
			Str("pod", d.config.App.PodName).
			Logger()

		d.infra.logger = log

		return nil
	}
}

func WithSecretsRepository() DependencyOption {
	return func(d *dependencies) error {
		if !d.config.SecretsStorage.Enabled {
			return nil
		}

		client, err := repos.NewVaultClient(d.config.SecretsStorage)
		if err != nil {
			return fmt.Errorf("creating Vault client: %w", err)
		}

		d.repos.secretsRepo = repos.NewVaultRepository(client)

		return nil
	}
}

func WithConfigLoader(ctx context.Context) DependencyOption {
	return func(d *dependencies) error {
		if !d.config.SecretsStorage.Enabled || d.repos.secretsRepo == nil {
			return nil
		}

		loader := config.NewLoader(d.configStore, d.repos.secretsRepo, d.infra.logger.Component("config"))

		if err := loader.Load(ctx); err != nil {
			return fmt.Errorf("loading secrets from Vault: %w", err)
		}

		d.config = d.configStore.Load()
		d.configLoader = loader

		return nil
	}
}

func WithTracing(ctx context.Context) DependencyOption {
	return func(d *dependencies) error {
		if !d.config.Telemetry.Enabled && !d.config.Telemetry.Traces.Enabled {
			d.infra.tracerProvider = infrastructure.NewNoopTracerProvider()

			return nil
		}

		tp, shutdown, err := infrastructure.NewTracerProvider(ctx, d.config.App, d.config.Telemetry, os.Stdout)
		if err != nil {
			return fmt.Errorf("initializing tracer: %w", err)
		}

		d.infra.tracerProvider = tp
		d.onShutdown("tracer", shutdown)

		return nil
	}
}

func WithMetrics() DependencyOption {
	return func(d *dependencies) error {
		if !d.config.Telemetry.Metrics.Enabled {
			d.infra.metricsClient = noop.NewMetricsClient()

			return nil
		}

		client := prommetrics.NewClient(
			d.config.Telemetry.Metrics.Namespace,
			prommetrics.WithDescriptors(middleware.Descriptors),
			prommetrics.WithRuntimeCollectors(),
		)

		d.infra.metricsClient = client
		d.onShutdown("metrics", client.Shutdown)

		return nil
	}
}

func WithDatabase(ctx context.Context) DependencyOption {
	return func(d *dependencies) error {
		log := d.infra.logger

		if d.config.Database.URL == "" {
			log.Info().Msg("DATABASE_URL is not set, database checks are disabled")
			d.repos.databaseRepo = repos.NewDatabaseRepository(nil, d.config.Database, log)

			return nil
		}

		pool, err := infrastructure.NewPostgresPool(ctx, d.config.Database)
		if err != nil {
			return fmt.Errorf("connecting to database: %w", err)
		}

		d.infra.dbPool = pool
		d.repos.databaseRepo = repos.NewDatabaseRepository(pool, d.config.Database, log)
		d.onShutdown("database", func(context.Context) error {
			pool.Close()

			return nil
		})

		log.Info().
			Str("target", model.DatabaseTarget(d.config.Database.URL)).
			Msg("database connectivity checks enabled")

		return nil
	}
}

func WithRateLimitStore(ctx context.Context) DependencyOption {
	return func(d *dependencies) error {
		cfg := d.config.ThrottledRateLimiting
		if !cfg.Enabled {
			return nil
		}

		if cfg.Store == config.RateLimitStoreRedis {
			client := infrastructure.NewKeyDBClient(d.config.Cache, d.infra.logger)

			if err := client.Ping(ctx); err != nil {
				d.infra.logger.Warn().
					Err(err).
					Str("address", d.config.Cache.Address).
					Msg("rate limit store is unreachable")
			}

			d.infra.cacheClient = client
			d.onShutdown("cache", func(context.Context) error {
				return client.Close()
			})
		}

		store, err := repos.NewGCRAStore(cfg, d.infra.cacheClient)
		if err != nil {
			return fmt.Errorf("creating rate limit store: %w", err)
		}

		d.repos.rateLimitStore = store

		return nil
	}
}

func WithServices() DependencyOption {
	return func(d *dependencies) error {
		d.services.health = services.NewHealthService(
			model.NewHealthState(),
			d.repos.databaseRepo,
			d.infra.logger,
			d.config.App.ServiceVersion,
			d.config.App.CommitSHA,
		)
		d.services.appInfo = services.NewAppInfoService(d.configStore)

		return nil
	}
}

func WithApplication() DependencyOption {
	return func(d *dependencies) error {
		d.apps.webApp = usecases.NewWebApplication(
			usecases.Dependencies{
				HealthChecker:   d.services.health,
				HealthSimulator: d.services.health,
				AppInfoProvider: d.services.appInfo,
				DatabaseChecker: d.repos.databaseRepo,
				DatabaseCache: decorator.CacheConfig{
					Enabled: d.config.QueryCache.Enabled,
					TTL:     d.config.QueryCache.DatabaseStatusTTL,
				},
			},
			d.infra.logger,
			d.infra.metricsClient,
			d.infra.tracerProvider,
		)

		return nil
	}
}

func WithHTTPServer() DependencyOption {
	return func(d *dependencies) error {
		router, err := inboundhttp.NewRouter(inboundhttp.RouterConfig{
			App:            d.apps.webApp,
			Logger:         d.infra.logger,
			MetricsClient:  d.infra.metricsClient,
			TracerProvider: d.infra.tracerProvider,
			RateLimitStore: d.repos.rateLimitStore,
			Config:         d.config,
		})
		if err != nil {
			return fmt.Errorf("building public router: %w", err)
		}

		cfg := d.config.PublicHTTPServer

		d.infra.publicHttpServer = &http.Server{
			Addr:         hostPort(cfg.Host, cfg.Port),
			Handler:      router,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  cfg.IdleTimeout,
		}
		d.onShutdown("public_http_server", d.infra.publicHttpServer.Shutdown)

		return nil
	}
}

func WithAdminHTTPServer() DependencyOption {
	return func(d *dependencies) error {
		cfg := d.config.AdminHTTPServer
		if !cfg.Enabled {
			return nil
		}

		router := inboundhttp.NewAdminRouter(inboundhttp.AdminRouterConfig{
			App:       d.apps.webApp,
			Simulator: d.services.health,
			Config:    d.configStore,
			Logger:    d.infra.logger,
		})

		d.infra.adminHttpServer = &http.Server{
			Addr:         hostPort(cfg.Host, cfg.Port),
			Handler:      router,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  cfg.IdleTimeout,
		}
		d.onShutdown("admin_http_server", d.infra.adminHttpServer.Shutdown)

		return nil
	}
}

func WithGRPCServer() DependencyOption {
	return func(d *dependencies) error {
		if !d.config.GRPCHealthServer.Enabled {
			return nil
		}

		server := inboundgrpc.NewServer(
			d.apps.webApp,
			d.infra.logger,
			d.config.Logging.AccessLog,
			d.infra.tracerProvider,
		)

		d.infra.grpcServer = server
		d.onShutdown("grpc_server", func(ctx context.Context) error {
			stopped := make(chan struct{})

			go func() {
				server.GracefulStop()
				close(stopped)
			}()

			select {
			case <-stopped:
				return nil
			case <-ctx.Done():
				server.Stop()

				return ctx.Err()
			}
		})

		return nil
	}
}

func hostPort(host string, port uint) string {
	return net.JoinHostPort(host, strconv.FormatUint(uint64(port), 10))
}
