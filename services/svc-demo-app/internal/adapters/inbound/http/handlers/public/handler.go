package public

import (
	_ "embed"
	"errors"
	"net/http"
	"time"

	"github.com/architeacher/k8s-simulator/services/svc-demo-app/internal/adapters/inbound/http/handlers"
	"github.com/architeacher/k8s-simulator/services/svc-demo-app/internal/domain/model"
	"github.com/architeacher/k8s-simulator/services/svc-demo-app/internal/usecases"
	"github.com/architeacher/k8s-simulator/services/svc-demo-app/internal/usecases/commands"
	"github.com/architeacher/k8s-simulator/services/svc-demo-app/internal/usecases/queries"
)

const (
	statusHealthy   = "healthy"
	statusUnhealthy = "unhealthy"
	statusReady     = "ready"
	statusNotReady  = "not ready"

	dbStatusConnected     = "connected"
	dbStatusDisconnected  = "disconnected"
	dbStatusNotConfigured = "not_configured"

	msgCrashed  = "App is now unhealthy - will be restarted by Kubernetes"
	msgNotReady = "App is now not ready - Kubernetes will stop routing traffic"
	msgReset    = "App reset to healthy state"

	secretConfiguredYes = "yes"
	secretConfiguredNo  = "no"
)

//go:embed dashboard.html
var dashboardHTML []byte

type (
	probeResponse struct {
		Status string `json:"status"`
	}

	messageResponse struct {
		Message string `json:"message"`
	}

	errorResponse struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}

	appInfoResponse struct {
		AppName          string `json:"app_name"`
		Environment      string `json:"environment"`
		SecretConfigured string `json:"secret_configured"`
		Status           string `json:"status"`
	}

	databaseStatusResponse struct {
		Status       string     `json:"status"`
		Connected    bool       `json:"connected"`
		Target       string     `json:"target,omitempty"`
		LatencyMs    *float64   `json:"latency_ms,omitempty"`
		BreakerState string     `json:"breaker_state,omitempty"`
		CheckedAt    *time.Time `json:"checked_at,omitempty"`
		Error        string     `json:"error,omitempty"`
	}

	// Handler serves the dashboard, the probe endpoints and the fault injection controls.
	Handler struct {
		app *usecases.WebApplication
	}
)

func NewHandler(app *usecases.WebApplication) *Handler {
	return &Handler{app: app}
}

// Dashboard serves the embedded single page UI.
func (h *Handler) Dashboard(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set(handlers.ContentTypeHeader, "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)

	_, _ = w.Write(dashboardHTML)
}

// Liveness answers the kubelet liveness probe: 200 while healthy, 500 otherwise.
func (h *Handler) Liveness(w http.ResponseWriter, r *http.Request) {
	report, err := h.app.Queries.FetchLiveness.Execute(r.Context(), queries.FetchLivenessQuery{})
	if err != nil || !report.IsHealthy() {
		handlers.WriteJSON(w, http.StatusInternalServerError, probeResponse{Status: statusUnhealthy})

		return
	}

	handlers.WriteJSON(w, http.StatusOK, probeResponse{Status: statusHealthy})
}

// Readiness answers the kubelet readiness probe: 200 while ready, 503 otherwise.
func (h *Handler) Readiness(w http.ResponseWriter, r *http.Request) {
	report, err := h.app.Queries.FetchReadiness.Execute(r.Context(), queries.FetchReadinessQuery{})
	if err != nil || !report.IsReady() {
		handlers.WriteJSON(w, http.StatusServiceUnavailable, probeResponse{Status: statusNotReady})

		return
	}

	handlers.WriteJSON(w, http.StatusOK, probeResponse{Status: statusReady})
}

func (h *Handler) SimulateCrash(w http.ResponseWriter, r *http.Request) {
	if _, err := h.app.Commands.SimulateCrash.Handle(r.Context(), commands.SimulateCrashCommand{}); err != nil {
		writeInternalError(w)

		return
	}

	handlers.WriteJSON(w, http.StatusOK, messageResponse{Message: msgCrashed})
}

func (h *Handler) SimulateNotReady(w http.ResponseWriter, r *http.Request) {
	if _, err := h.app.Commands.SimulateNotReady.Handle(r.Context(), commands.SimulateNotReadyCommand{}); err != nil {
		writeInternalError(w)

		return
	}

	handlers.WriteJSON(w, http.StatusOK, messageResponse{Message: msgNotReady})
}

func (h *Handler) Reset(w http.ResponseWriter, r *http.Request) {
	if _, err := h.app.Commands.ResetHealth.Handle(r.Context(), commands.ResetHealthCommand{}); err != nil {
		writeInternalError(w)

		return
	}

	handlers.WriteJSON(w, http.StatusOK, messageResponse{Message: msgReset})
}

func (h *Handler) AppInfo(w http.ResponseWriter, r *http.Request) {
	info, err := h.app.Queries.FetchAppInfo.Execute(r.Context(), queries.FetchAppInfoQuery{})
	if err != nil {
		writeInternalError(w)

		return
	}

	secretConfigured := secretConfiguredNo
	if info.SecretConfigured {
		secretConfigured = secretConfiguredYes
	}

	handlers.WriteJSON(w, http.StatusOK, appInfoResponse{
		AppName:          info.AppName,
		Environment:      info.Environment,
		SecretConfigured: secretConfigured,
		Status:           info.Status,
	})
}

// DatabaseStatus reports connectivity: 200 connected, 503 disconnected, 404 when no
// database is configured. It never touches the probe flags.
func (h *Handler) DatabaseStatus(w http.ResponseWriter, r *http.Request) {
	status, err := h.app.Queries.FetchDatabaseStatus.Execute(r.Context(), queries.FetchDatabaseStatusQuery{})

	switch {
	case errors.Is(err, model.ErrDatabaseNotConfigured):
		handlers.WriteJSON(w, http.StatusNotFound, databaseStatusResponse{Status: dbStatusNotConfigured})
	case err != nil:
		resp := toDatabaseStatusResponse(status)
		resp.Status = dbStatusDisconnected

		if resp.Error == "" {
			resp.Error = err.Error()
		}

		handlers.WriteJSON(w, http.StatusServiceUnavailable, resp)
	default:
		handlers.WriteJSON(w, http.StatusOK, toDatabaseStatusResponse(status))
	}
}

func toDatabaseStatusResponse(status *model.DatabaseStatus) databaseStatusResponse {
	if status == nil {
		return databaseStatusResponse{Status: dbStatusDisconnected}
	}

	resp := databaseStatusResponse{
		Status:       dbStatusDisconnected,
		Connected:    status.Connected,
		Target:       status.Target,
		BreakerState: status.BreakerState,
		Error:        status.Error,
	}

	if !status.CheckedAt.IsZero() {
		checkedAt := status.CheckedAt
		resp.CheckedAt = &checkedAt
	}

	if status.Connected {
		latency := float64(status.Latency.Microseconds()) / 1000
		resp.Status = dbStatusConnected
		resp.LatencyMs = &latency
	}

	return resp
}

func writeInternalError(w http.ResponseWriter) {
	handlers.WriteJSON(w, http.StatusInternalServerError, errorResponse{
		Code:    "INTERNAL_ERROR",
		Message: "internal server error",
	})
}
