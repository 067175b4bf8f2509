package admin

import (
	"net/http"
	"time"

	"github.com/architeacher/k8s-simulator/services/svc-demo-app/internal/adapters/inbound/http/handlers"
	"github.com/architeacher/k8s-simulator/services/svc-demo-app/internal/config"
	"github.com/architeacher/k8s-simulator/services/svc-demo-app/internal/domain/model"
	"github.com/architeacher/k8s-simulator/services/svc-demo-app/internal/ports"
	"github.com/architeacher/k8s-simulator/services/svc-demo-app/internal/usecases"
	"github.com/architeacher/k8s-simulator/services/svc-demo-app/internal/usecases/queries"
)

type (
	dependencyCheck struct {
		Status      string    `json:"status"`
		LatencyMs   uint64    `json:"latencyMs"`
		Message     string    `json:"message,omitempty"`
		LastChecked time.Time `json:"lastChecked"`
		Error       string    `json:"error,omitempty"`
	}

	healthReport struct {
		Status    string                     `json:"status"`
		State     model.HealthSnapshot       `json:"state"`
		Timestamp time.Time                  `json:"timestamp"`
		Version   versionInfo                `json:"version"`
		Uptime    uptimeInfo                 `json:"uptime"`
		Checks    map[string]dependencyCheck `json:"checks"`
		System    systemInfo                 `json:"system"`
	}

	versionInfo struct {
		App    string `json:"app"`
		Commit string `json:"commit,omitempty"`
		Go     string `json:"go"`
	}

	uptimeInfo struct {
		StartedAt       time.Time `json:"startedAt"`
		Duration        string    `json:"duration"`
		DurationSeconds uint64    `json:"durationSeconds"`
	}

	systemInfo struct {
		Goroutines uint       `json:"goroutines"`
		CPUCores   uint       `json:"cpuCores"`
		Memory     memoryInfo `json:"memory"`
	}

	memoryInfo struct {
		AllocMB      float64 `json:"allocMb"`
		TotalAllocMB float64 `json:"totalAllocMb"`
		SysMB        float64 `json:"sysMb"`
		GCCycles     uint32  `json:"gcCycles"`
	}

	// AdminHandler serves internal diagnostics. It is bound to the admin port only.
	AdminHandler struct {
		app       *usecases.WebApplication
		simulator ports.HealthSimulator
		config    *config.Store
	}
)

func NewAdminHandler(app *usecases.WebApplication, simulator ports.HealthSimulator, cfg *config.Store) *AdminHandler {
	return &AdminHandler{
		app:       app,
		simulator: simulator,
		config:    cfg,
	}
}

// Health returns the detailed report; 200 only when both flags are set.
func (h *AdminHandler) Health(w http.ResponseWriter, r *http.Request) {
	report, err := h.app.Queries.FetchHealthReport.Execute(r.Context(), queries.FetchHealthReportQuery{})
	if err != nil {
		handlers.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": string(model.HealthStatusDown),
			"error":  err.Error(),
		})

		return
	}

	status := http.StatusOK
	if report.Status != model.HealthStatusOK {
		status = http.StatusServiceUnavailable
	}

	handlers.WriteJSON(w, status, toHealthReport(report))
}

// State returns the raw flags without running dependency checks.
func (h *AdminHandler) State(w http.ResponseWriter, r *http.Request) {
	handlers.WriteJSON(w, http.StatusOK, h.simulator.Snapshot(r.Context()))
}

// Config dumps the effective configuration with credentials masked.
func (h *AdminHandler) Config(w http.ResponseWriter, _ *http.Request) {
	handlers.WriteJSON(w, http.StatusOK, h.config.Load().Redacted())
}

func toHealthReport(report *model.HealthReport) healthReport {
	checks := make(map[string]dependencyCheck, len(report.Checks))
	for name, check := range report.Checks {
		checks[name] = dependencyCheck{
			Status:      string(check.Status),
			LatencyMs:   check.LatencyMs,
			Message:     check.Message,
			LastChecked: check.LastChecked,
			Error:       check.Error,
		}
	}

	return healthReport{
		Status:    string(report.Status),
		State:     report.State,
		Timestamp: report.Timestamp,
		Version: versionInfo{
			App:    report.Version.App,
			Commit: report.Version.Commit,
			Go:     report.Version.Go,
		},
		Uptime: uptimeInfo{
			StartedAt:       report.Uptime.StartedAt,
			Duration:        report.Uptime.Duration,
			DurationSeconds: report.Uptime.DurationSeconds,
		},
		Checks: checks,
		System: systemInfo{
			Goroutines: report.System.Goroutines,
			CPUCores:   report.System.CPUCores,
			Memory: memoryInfo{
				AllocMB:      report.System.Memory.AllocMB,
				TotalAllocMB: report.System.Memory.TotalAllocMB,
				SysMB:        report.System.Memory.SysMB,
				GCCycles:     report.System.Memory.GCCycles,
			},
		},
	}
}
