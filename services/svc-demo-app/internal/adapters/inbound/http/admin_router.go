package http

import (
	"net/http"

	"github.com/architeacher/k8s-simulator/pkg/logger"
	"github.com/architeacher/k8s-simulator/services/svc-demo-app/internal/adapters/inbound/http/handlers/admin"
	"github.com/architeacher/k8s-simulator/services/svc-demo-app/internal/adapters/inbound/http/middleware"
	"github.com/architeacher/k8s-simulator/services/svc-demo-app/internal/config"
	"github.com/architeacher/k8s-simulator/services/svc-demo-app/internal/ports"
	"github.com/architeacher/k8s-simulator/services/svc-demo-app/internal/usecases"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

type AdminRouterConfig struct {
	App       *usecases.WebApplication
	Simulator ports.HealthSimulator
	Config    *config.Store
	Logger    logger.Logger
}

// NewAdminRouter serves diagnostics on the internal admin port.
func NewAdminRouter(cfg AdminRouterConfig) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID())
	router.Use(chimiddleware.RealIP)
	router.Use(middleware.Recovery(cfg.Logger))
	router.Use(middleware.SecurityHeaders(middleware.APIContentSecurityPolicy))

	handler := admin.NewAdminHandler(cfg.App, cfg.Simulator, cfg.Config)

	router.Route("/admin", func(r chi.Router) {
		r.Get("/health", handler.Health)
		r.Get("/state", handler.State)
		r.Get("/config", handler.Config)
	})

	return router
}
