package services

import (
	"context"
	"errors"
	"runtime"
	"time"

	"github.com/architeacher/k8s-simulator/pkg/logger"
	"github.com/architeacher/k8s-simulator/services/svc-demo-app/internal/domain/model"
	"github.com/architeacher/k8s-simulator/services/svc-demo-app/internal/ports"
)

const databaseCheckName = "database"

// HealthService owns the process health state. Dependency checks are reported
// alongside the flags but never change them.
type HealthService struct {
	state     *model.HealthState
	database  ports.DatabaseHealthChecker
	logger    logger.Logger
	version   model.VersionInfo
	startedAt time.Time
	now       func() time.Time
}

var (
	_ ports.HealthChecker   = (*HealthService)(nil)
	_ ports.HealthSimulator = (*HealthService)(nil)
)

// NewHealthService wires the shared state. database may be nil when no database is configured.
func NewHealthService(
	state *model.HealthState,
	database ports.DatabaseHealthChecker,
	log logger.Logger,
	version, commit string,
) *HealthService {
	return &HealthService{
		state:    state,
		database: database,
		logger:   log.Component("health"),
		version: model.VersionInfo{
			App:    version,
			Commit: commit,
			Go:     runtime.Version(),
		},
		startedAt: time.Now().UTC(),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (s *HealthService) Liveness(_ context.Context) (*model.LivenessReport, error) {
	return &model.LivenessReport{
		Status:    model.StatusFromFlag(s.state.IsHealthy()),
		Timestamp: s.now(),
		Version:   s.version.App,
	}, nil
}

func (s *HealthService) Readiness(_ context.Context) (*model.ReadinessReport, error) {
	return &model.ReadinessReport{
		Status:    model.StatusFromFlag(s.state.IsReady()),
		Timestamp: s.now(),
		Version:   s.version.App,
	}, nil
}

func (s *HealthService) Health(ctx context.Context) (*model.HealthReport, error) {
	snapshot := s.state.Snapshot()
	now := s.now()

	return &model.HealthReport{
		Status:    overallStatus(snapshot),
		State:     snapshot,
		Timestamp: now,
		Version:   s.version,
		Uptime:    s.uptime(now),
		Checks: map[string]model.DependencyCheck{
			databaseCheckName: s.checkDatabase(ctx, now),
		},
		System: systemInfo(),
	}, nil
}

func (s *HealthService) SimulateCrash(ctx context.Context) model.HealthSnapshot {
	s.state.SimulateCrash()

	log := s.logger.WithContext(ctx)
	log.Error().Msg("health set to unhealthy, liveness probe will fail")

	return s.state.Snapshot()
}

func (s *HealthService) SimulateNotReady(ctx context.Context) model.HealthSnapshot {
	s.state.SimulateNotReady()

	log := s.logger.WithContext(ctx)
	log.Warn().Msg("readiness set to false, pod will stop receiving traffic")

	return s.state.Snapshot()
}

func (s *HealthService) Reset(ctx context.Context) model.HealthSnapshot {
	s.state.Reset()

	log := s.logger.WithContext(ctx)
	log.Info().Msg("health reset to healthy and ready")

	return s.state.Snapshot()
}

func (s *HealthService) Snapshot(_ context.Context) model.HealthSnapshot {
	return s.state.Snapshot()
}

func (s *HealthService) checkDatabase(ctx context.Context, now time.Time) model.DependencyCheck {
	if s.database == nil {
		return model.DependencyCheck{
			Status:      model.DependencyStatusDisabled,
			Message:     model.ErrDatabaseNotConfigured.Error(),
			LastChecked: now,
		}
	}

	status, err := s.database.Check(ctx)

	switch {
	case errors.Is(err, model.ErrDatabaseNotConfigured):
		return model.DependencyCheck{
			Status:      model.DependencyStatusDisabled,
			Message:     err.Error(),
			LastChecked: now,
		}
	case err != nil:
		return model.DependencyCheck{
			Status:      model.DependencyStatusDown,
			Message:     "database connection failed",
			LastChecked: now,
			Error:       err.Error(),
		}
	default:
		return model.DependencyCheck{
			Status:      model.DependencyStatusUp,
			LatencyMs:   uint64(status.Latency.Milliseconds()),
			Message:     "database connection successful",
			LastChecked: now,
		}
	}
}

func (s *HealthService) uptime(now time.Time) model.UptimeInfo {
	elapsed := now.Sub(s.startedAt).Truncate(time.Second)

	return model.UptimeInfo{
		StartedAt:       s.startedAt,
		Duration:        elapsed.String(),
		DurationSeconds: uint64(elapsed.Seconds()),
	}
}

func overallStatus(snapshot model.HealthSnapshot) model.HealthStatus {
	switch {
	case !snapshot.Healthy:
		return model.HealthStatusDown
	case !snapshot.Ready:
		return model.HealthStatusDegraded
	default:
		return model.HealthStatusOK
	}
}

func systemInfo() model.SystemInfo {
	const mb = 1024 * 1024

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	return model.SystemInfo{
		Memory: model.MemoryInfo{
			AllocMB:      float64(mem.Alloc) / mb,
			TotalAllocMB: float64(mem.TotalAlloc) / mb,
			SysMB:        float64(mem.Sys) / mb,
			GCCycles:     mem.NumGC,
		},
		Goroutines: uint(runtime.NumGoroutine()),
		CPUCores:   uint(runtime.NumCPU()),
	}
}
