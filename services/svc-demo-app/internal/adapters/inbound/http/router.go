package http

import (
	"fmt"
	"net/http"

	"github.com/architeacher/k8s-simulator/pkg/logger"
	"github.com/architeacher/k8s-simulator/pkg/metrics"
	"github.com/architeacher/k8s-simulator/services/svc-demo-app/internal/adapters/inbound/http/handlers"
	"github.com/architeacher/k8s-simulator/services/svc-demo-app/internal/adapters/inbound/http/handlers/public"
	"github.com/architeacher/k8s-simulator/services/svc-demo-app/internal/adapters/inbound/http/middleware"
	"github.com/architeacher/k8s-simulator/services/svc-demo-app/internal/config"
	"github.com/architeacher/k8s-simulator/services/svc-demo-app/internal/usecases"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/throttled/throttled/v2"
	otelTrace "go.opentelemetry.io/otel/trace"
)

type RouterConfig struct {
	App            *usecases.WebApplication
	Logger         logger.Logger
	MetricsClient  metrics.Client
	TracerProvider otelTrace.TracerProvider
	RateLimitStore throttled.GCRAStoreCtx
	Config         *config.ServiceConfig
}

// NewRouter builds the public router: dashboard, probes, fault injection controls and /metrics.
func NewRouter(cfg RouterConfig) (http.Handler, error) {
	router := chi.NewRouter()

	router.Use(middleware.RequestID())
	router.Use(chimiddleware.RealIP)
	router.Use(middleware.Recovery(cfg.Logger))
	router.Use(chimiddleware.Timeout(cfg.Config.PublicHTTPServer.WriteTimeout))
	router.Use(middleware.CORS([]string{"*"}))

	if cfg.Config.Telemetry.Traces.Enabled && cfg.TracerProvider != nil {
		router.Use(middleware.Tracer(cfg.TracerProvider))
		cfg.Logger.Info().Msg("distributed tracing enabled")
	}

	if cfg.Config.Telemetry.Metrics.Enabled {
		router.Use(middleware.NewMetricsMiddleware(cfg.MetricsClient).Middleware)
		cfg.Logger.Info().Msg("HTTP metrics collection enabled")
	}

	if cfg.Config.Logging.AccessLog.Enabled {
		router.Use(middleware.NewProbeFilter(cfg.Config.Logging.AccessLog.LogHealthChecks).Middleware)
		router.Use(middleware.AccessLogger(cfg.Logger, cfg.Config.Logging.AccessLog.IncludeQueryParams))
		cfg.Logger.Info().
			Bool("log_health_checks", cfg.Config.Logging.AccessLog.LogHealthChecks).
			Msg("structured access logging enabled")
	}

	router.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		handlers.WriteJSON(w, http.StatusNotFound, map[string]string{"code": "NOT_FOUND", "message": "resource not found"})
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		handlers.WriteJSON(w, http.StatusMethodNotAllowed, map[string]string{"code": "METHOD_NOT_ALLOWED", "message": "method not allowed"})
	})

	controls := func(next http.Handler) http.Handler { return next }

	if cfg.Config.ThrottledRateLimiting.Enabled {
		limiter, err := middleware.ThrottledRateLimiting(cfg.Config.ThrottledRateLimiting, cfg.RateLimitStore, cfg.Logger)
		if err != nil {
			return nil, fmt.Errorf("configuring control rate limiting: %w", err)
		}

		controls = limiter
		cfg.Logger.Info().
			Str("store", cfg.Config.ThrottledRateLimiting.Store).
			Uint("requests_per_second", cfg.Config.ThrottledRateLimiting.RequestsPerSecond).
			Msg("rate limiting enabled for control endpoints")
	}

	handler := public.NewHandler(cfg.App)

	router.With(middleware.SecurityHeaders(middleware.DashboardContentSecurityPolicy)).Get("/", handler.Dashboard)

	router.Group(func(r chi.Router) {
		r.Use(middleware.SecurityHeaders(middleware.APIContentSecurityPolicy))

		r.Get("/health", handler.Liveness)
		r.Get("/ready", handler.Readiness)
		r.Get("/api/info", handler.AppInfo)
		r.Get("/api/db/status", handler.DatabaseStatus)

		if cfg.Config.Telemetry.Metrics.Enabled {
			r.Method(http.MethodGet, "/metrics", cfg.MetricsClient.Handler())
		}

		r.Group(func(r chi.Router) {
			r.Use(controls)

			r.Post("/simulate/crash", handler.SimulateCrash)
			r.Post("/simulate/notready", handler.SimulateNotReady)
			r.Post("/reset", handler.Reset)
		})
	})

	return router, nil
}
