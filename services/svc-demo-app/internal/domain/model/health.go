package model

import "time"

type (
	HealthStatus string

	DependencyStatus string

	DependencyCheck struct {
		Status      DependencyStatus
		LatencyMs   uint64
		Message     string
		LastChecked time.Time
		Error       string
	}

	LivenessReport struct {
		Status    HealthStatus
		Timestamp time.Time
		Version   string
	}

	ReadinessReport struct {
		Status    HealthStatus
		Timestamp time.Time
		Version   string
	}

	// HealthReport is the detailed view served on the admin port. Checks never
	// influence State: the flags only change through the control operations.
	HealthReport struct {
		Status    HealthStatus
		State     HealthSnapshot
		Timestamp time.Time
		Version   VersionInfo
		Uptime    UptimeInfo
		Checks    map[string]DependencyCheck
		System    SystemInfo
	}

	VersionInfo struct {
		App    string
		Commit string
		Go     string
	}

	UptimeInfo struct {
		StartedAt       time.Time
		Duration        string
		DurationSeconds uint64
	}

	SystemInfo struct {
		Memory     MemoryInfo
		Goroutines uint
		CPUCores   uint
	}

	MemoryInfo struct {
		AllocMB      float64
		TotalAllocMB float64
		SysMB        float64
		GCCycles     uint32
	}
)

const (
	HealthStatusOK       HealthStatus = "ok"
	HealthStatusDegraded HealthStatus = "degraded"
	HealthStatusDown     HealthStatus = "down"

	DependencyStatusUp       DependencyStatus = "up"
	DependencyStatusDown     DependencyStatus = "down"
	DependencyStatusDisabled DependencyStatus = "disabled"
)

// StatusFromFlag maps a probe flag to its report status.
func StatusFromFlag(ok bool) HealthStatus {
	if ok {
		return HealthStatusOK
	}

	return HealthStatusDown
}

func (r *LivenessReport) IsHealthy() bool {
	return r != nil && r.Status == HealthStatusOK
}

func (r *ReadinessReport) IsReady() bool {
	return r != nil && r.Status == HealthStatusOK
}
