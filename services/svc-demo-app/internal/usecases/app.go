package usecases

import (
	"github.com/architeacher/k8s-simulator/pkg/decorator"
	"github.com/architeacher/k8s-simulator/pkg/logger"
	"github.com/architeacher/k8s-simulator/pkg/metrics"
	"github.com/architeacher/k8s-simulator/services/svc-demo-app/internal/ports"
	"github.com/architeacher/k8s-simulator/services/svc-demo-app/internal/usecases/commands"
	"github.com/architeacher/k8s-simulator/services/svc-demo-app/internal/usecases/queries"
	otelTrace "go.opentelemetry.io/otel/trace"
)

type (
	Commands struct {
		SimulateCrash    commands.SimulateCrashCommandHandler
		SimulateNotReady commands.SimulateNotReadyCommandHandler
		ResetHealth      commands.ResetHealthCommandHandler
	}

	Queries struct {
		FetchLiveness       queries.FetchLivenessQueryHandler
		FetchReadiness      queries.FetchReadinessQueryHandler
		FetchHealthReport   queries.FetchHealthReportQueryHandler
		FetchAppInfo        queries.FetchAppInfoQueryHandler
		FetchDatabaseStatus queries.FetchDatabaseStatusQueryHandler
	}

	WebApplication struct {
		Commands Commands
		Queries  Queries
	}

	Dependencies struct {
		HealthChecker   ports.HealthChecker
		HealthSimulator ports.HealthSimulator
		AppInfoProvider ports.AppInfoProvider
		DatabaseChecker ports.DatabaseHealthChecker
		DatabaseCache   decorator.CacheConfig
	}
)

func NewWebApplication(
	deps Dependencies,
	log logger.Logger,
	metricsClient metrics.Client,
	tracerProvider otelTrace.TracerProvider,
) *WebApplication {
	return &WebApplication{
		Commands: Commands{
			SimulateCrash:    commands.NewSimulateCrashCommandHandler(deps.HealthSimulator, log, metricsClient, tracerProvider),
			SimulateNotReady: commands.NewSimulateNotReadyCommandHandler(deps.HealthSimulator, log, metricsClient, tracerProvider),
			ResetHealth:      commands.NewResetHealthCommandHandler(deps.HealthSimulator, log, metricsClient, tracerProvider),
		},
		Queries: Queries{
			FetchLiveness:     queries.NewFetchLivenessQueryHandler(deps.HealthChecker, log, metricsClient, tracerProvider),
			FetchReadiness:    queries.NewFetchReadinessQueryHandler(deps.HealthChecker, log, metricsClient, tracerProvider),
			FetchHealthReport: queries.NewFetchHealthReportQueryHandler(deps.HealthChecker, log, metricsClient, tracerProvider),
			FetchAppInfo:      queries.NewFetchAppInfoQueryHandler(deps.AppInfoProvider, log, metricsClient, tracerProvider),
			FetchDatabaseStatus: queries.NewFetchDatabaseStatusQueryHandler(
				deps.DatabaseChecker,
				deps.DatabaseCache,
				log,
				metricsClient,
				tracerProvider,
			),
		},
	}
}
